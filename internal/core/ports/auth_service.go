package ports

import (
	"context"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

// AuthService implements registration and the two sign-in entry points.
// Login and WhoAmI are deliberately distinct operations even though the HTTP
// surface exposes them behind a single route.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	WhoAmI(ctx context.Context, token string) (string, error)
}
