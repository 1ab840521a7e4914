package queue

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// Dispatcher moves auth audit events off the request path: Record enqueues
// without blocking and a small worker pool persists events in the background.
// Under backpressure events are dropped and counted, never allowed to stall
// a sign-in.
type Dispatcher struct {
	events  chan domain.AuthEvent
	repo    ports.AuditRepository
	workers int
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers persistence workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		events:  make(chan domain.AuthEvent, channelBuffer),
		repo:    repo,
		workers: numWorkers,
		log:     log,
	}
	return d
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Record enqueues an event, assigning its id. Non-blocking: drops when the
// buffer is full.
func (d *Dispatcher) Record(event domain.AuthEvent) {
	event.ID = uuid.NewString()
	select {
	case d.events <- event:
	default:
		d.log.Debug().Str("type", event.Type).Msg("audit buffer full, event dropped")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.events:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("type", event.Type).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
