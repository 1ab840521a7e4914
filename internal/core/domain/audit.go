package domain

import "time"

// Audit event types.
const (
	AuditLogin      = "login"
	AuditWhoAmI     = "whoami"
	AuditRegister   = "register"
	AuditGateDenied = "gate_denied"
)

// AuthEvent is a single entry in the authentication audit trail. Events are
// recorded off the request path; losing one is logged, never surfaced.
type AuthEvent struct {
	ID        string
	Type      string
	Email     string
	UserID    string
	RequestID string
	Success   bool
	Detail    string
	At        time.Time
}
