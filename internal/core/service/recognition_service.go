package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

type recognitionService struct {
	recognizer ports.ImageRecognizer
	log        zerolog.Logger
}

// NewRecognitionService returns a RecognitionService backed by the given
// recognizer client.
func NewRecognitionService(recognizer ports.ImageRecognizer, log zerolog.Logger) ports.RecognitionService {
	return &recognitionService{recognizer: recognizer, log: log}
}

// Classify relays the image at imageURL to the recognition model and returns
// the provider response verbatim. Any upstream failure collapses into
// domain.ErrRecognitionFailed; the caller never sees provider error detail.
func (s *recognitionService) Classify(ctx context.Context, userID, imageURL string) (json.RawMessage, error) {
	if imageURL == "" {
		return nil, domain.ErrRecognitionFailed
	}

	out, err := s.recognizer.Predict(ctx, imageURL)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("image recognition failed")
		return nil, fmt.Errorf("classify: %w", domain.ErrRecognitionFailed)
	}

	s.log.Debug().Str("user_id", userID).Msg("image classified")
	return out, nil
}
