package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

// AuthService orchestrates credential verification, token issuance and
// session registration.
type AuthService struct {
	repo       ports.UserRepository
	sessions   ports.SessionStore
	issuer     *TokenIssuer
	audit      ports.AuditRecorder
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	sessions ports.SessionStore,
	issuer *TokenIssuer,
	audit ports.AuditRecorder,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 48 * time.Hour
	}
	return &AuthService{
		repo:       repo,
		sessions:   sessions,
		issuer:     issuer,
		audit:      audit,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Register creates the credential and identity records atomically. The
// plaintext password is hashed here and never stored or logged.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || name == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{Email: email, PasswordHash: string(hash)}
	user := &domain.User{Email: email, Name: name, Joined: time.Now().UTC()}

	created, err := s.repo.CreateUser(ctx, cred, user)
	if err != nil {
		s.record(domain.AuthEvent{Type: domain.AuditRegister, Email: email, Detail: err.Error()})
		return nil, err
	}

	s.record(domain.AuthEvent{Type: domain.AuditRegister, Email: email, UserID: created.ID, Success: true})
	return created, nil
}

// Login is the fresh sign-in path: verify the credential, mint a token and
// register the session. Each call produces a new independent session; prior
// tokens stay valid until their TTL elapses.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuthEvent{Type: domain.AuditLogin, Email: email, Detail: "unknown email"})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		s.record(domain.AuthEvent{Type: domain.AuditLogin, Email: email, Detail: "password mismatch"})
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Registration is transactional, so a credential without an
			// identity should be unreachable. Fail closed.
			s.log.Warn().Str("email", email).Msg("credential found but identity missing")
			s.record(domain.AuthEvent{Type: domain.AuditLogin, Email: email, Detail: "identity missing"})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.issuer.Issue(email)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, token, user.ID, s.sessionTTL); err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Type: domain.AuditLogin, Email: email, UserID: user.ID, Success: true})
	s.log.Info().Str("user_id", user.ID).Msg("session issued")

	return &domain.Session{UserID: user.ID, Token: token}, nil
}

// WhoAmI resolves an already-held token to its user id. The session store is
// the only authority consulted; a well-signed token with no store entry is
// rejected.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrSessionNotFound
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			s.record(domain.AuthEvent{Type: domain.AuditWhoAmI, Detail: "no session"})
		}
		return "", err
	}

	s.record(domain.AuthEvent{Type: domain.AuditWhoAmI, UserID: userID, Success: true})
	return userID, nil
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.At = time.Now().UTC()
	s.audit.Record(event)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
