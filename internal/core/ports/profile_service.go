package ports

import (
	"context"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error)

	// RecordEntry increments the user's image submission counter and
	// returns the new count.
	RecordEntry(ctx context.Context, id string) (int64, error)
}
