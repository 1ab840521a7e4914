package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RichardBobik/eye-know-api-2/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its
// presence proves the gate ran; a handler reached without it is a routing
// mistake, rejected rather than served unauthenticated.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return userID, nil
}
