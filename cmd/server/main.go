package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	_ "jobtrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobtrack/internal/auth"
	"jobtrack/internal/cache"
	"jobtrack/internal/config"
	"jobtrack/internal/db"
	"jobtrack/internal/handler"
	"jobtrack/internal/repository"
	"jobtrack/internal/router"
	"jobtrack/internal/service"
	"jobtrack/internal/sheets"
)

// @title Job Application Tracker API
// @version 1.0
// @description Job application tracker with candidate profiles and a Google Sheets mirror of application rows.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.DropAll(gormDB); err != nil {
			log.Printf("Warning: failed to drop tables (may not exist): %v", err)
		} else {
			log.Println("Tables dropped")
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)

	// Initialize the spreadsheet mirror
	mirror := sheets.NewMirror(openWorksheet(context.Background(), cfg))

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	profileService := service.NewProfileService(profileRepo, cacheClient)
	applicationService := service.NewApplicationService(applicationRepo, mirror)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		profileHandler,
		applicationHandler,
	)

	// Log swagger full path
	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	} else if !strings.HasPrefix(swaggerHost, "http://") && !strings.HasPrefix(swaggerHost, "https://") {
		swaggerHost = "http://" + swaggerHost
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// openWorksheet connects to the configured spreadsheet tab. When the mirror
// is unconfigured or unreachable it hands back a disabled worksheet, so
// mirror calls report a failure message instead of taking the server down.
func openWorksheet(ctx context.Context, cfg *config.Config) sheets.Worksheet {
	if cfg.SpreadsheetID == "" {
		log.Println("SPREADSHEET_ID not set, Google Sheets mirror disabled")
		return sheets.Disabled(errors.New("mirror disabled: SPREADSHEET_ID not set"))
	}

	ws, err := sheets.NewGoogleSheet(ctx, cfg.SheetsCredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		log.Printf("Google Sheets unavailable, mirror calls will report failure: %v", err)
		return sheets.Disabled(err)
	}
	return ws
}
