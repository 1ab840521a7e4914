package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/RichardBobik/eye-know-api-2/internal/api/metrics"
	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

// UserIDKey is the echo context key under which the gate stores the
// authenticated user's id.
const UserIDKey = "user_id"

// ExtractToken pulls the bearer token out of an Authorization header value.
// Legacy clients send the raw token; a "Bearer " prefix is also accepted.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// Auth gates protected routes on session-store state. The store is the sole
// authority: no token claim is trusted and the lookup never refreshes the TTL.
// A store outage is reported as a server fault, never as "not logged in".
// Every denial is recorded on the audit trail with the request id.
func Auth(sessions ports.SessionStore, audit ports.AuditRecorder, log zerolog.Logger) echo.MiddlewareFunc {
	deny := func(c echo.Context, detail string) {
		if audit == nil {
			return
		}
		audit.Record(domain.AuthEvent{
			Type:      domain.AuditGateDenied,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
			Detail:    detail,
			At:        time.Now().UTC(),
		})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.GateDecisionsTotal.WithLabelValues("deny_no_token").Inc()
				deny(c, "no token provided")
				return c.JSON(http.StatusUnauthorized, "Unauthorized - no token provided")
			}

			userID, err := sessions.Get(c.Request().Context(), ExtractToken(header))
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					metrics.GateDecisionsTotal.WithLabelValues("deny_invalid").Inc()
					deny(c, "invalid token")
					return c.JSON(http.StatusUnauthorized, "Unauthorized - invalid token")
				}
				metrics.GateDecisionsTotal.WithLabelValues("error").Inc()
				log.Error().Err(err).Str("path", c.Path()).Msg("session lookup failed")
				return c.JSON(http.StatusInternalServerError, "Server error")
			}

			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			c.Set(UserIDKey, userID)

			return next(c)
		}
	}
}
