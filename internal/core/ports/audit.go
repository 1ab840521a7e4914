package ports

import (
	"context"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

// AuditRecorder accepts auth events for asynchronous persistence. Record must
// never block the request path; implementations drop under backpressure.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditRepository persists auth events to durable storage.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
