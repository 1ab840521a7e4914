package ports

import (
	"context"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

// UserRepository defines the interface for credential and identity persistence.
type UserRepository interface {
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)

	// CreateUser inserts the credential and the identity atomically: both
	// records land or neither does.
	CreateUser(ctx context.Context, cred *domain.Credential, user *domain.User) (*domain.User, error)

	UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error)

	// IncrementEntries bumps the user's submission counter and returns the
	// new value.
	IncrementEntries(ctx context.Context, id string) (int64, error)
}
