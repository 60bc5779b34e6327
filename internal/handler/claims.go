package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobtrack/internal/auth"
	"jobtrack/internal/errors"
)

// currentUserEmail pulls the authenticated user's email out of the JWT
// claims the router placed on the context. The request body never decides
// whose data is touched.
func currentUserEmail(c echo.Context) (string, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims.Email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}
	return claims.Email, nil
}
