package main

import (
	"context"
	"errors"
	"log"

	"jobtrack/internal/config"
	"jobtrack/internal/db"
	"jobtrack/internal/sheets"
)

// Full reset: drop and recreate every table, then clear the spreadsheet
// mirror down to its header row. A mirror failure is reported but does not
// undo the database reset.
func main() {
	log.Println("Starting full reset...")

	cfg := config.Load()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.DropAll(gormDB); err != nil {
		log.Printf("Warning: failed to drop tables (may not exist): %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to recreate tables: %v", err)
	}
	log.Println("Database fully cleared and reinitialized.")

	ctx := context.Background()
	mirror := sheets.NewMirror(openWorksheet(ctx, cfg))
	if err := mirror.Reset(ctx); err != nil {
		log.Printf("Failed to clear Google Sheet: %v", err)
		return
	}
	log.Println("Google Sheet cleared and headers re-added.")
}

// openWorksheet connects to the configured spreadsheet tab, degrading to a
// disabled worksheet when the mirror is unconfigured or unreachable.
func openWorksheet(ctx context.Context, cfg *config.Config) sheets.Worksheet {
	if cfg.SpreadsheetID == "" {
		return sheets.Disabled(errors.New("mirror disabled: SPREADSHEET_ID not set"))
	}

	ws, err := sheets.NewGoogleSheet(ctx, cfg.SheetsCredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		return sheets.Disabled(err)
	}
	return ws
}
