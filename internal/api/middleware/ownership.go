package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

// RequireOwner enforces that the session's user id matches the :id route
// parameter. The legacy service validated the session but skipped this check,
// letting any signed-in user read or edit any profile.
func RequireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(UserIDKey).(string)
			if userID == "" || userID != c.Param("id") {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
