package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

type profileService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewProfileService returns a ProfileService implementation.
func NewProfileService(repo ports.UserRepository, log zerolog.Logger) ports.ProfileService {
	return &profileService{repo: repo, log: log}
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, id)
}

func (s *profileService) Update(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := s.repo.UpdateProfile(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("profile updated")
	return user, nil
}

func (s *profileService) RecordEntry(ctx context.Context, id string) (int64, error) {
	return s.repo.IncrementEntries(ctx, id)
}
