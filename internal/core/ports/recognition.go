package ports

import (
	"context"
	"encoding/json"
)

// ImageRecognizer is the outbound port to the third-party recognition model.
// The raw provider response is relayed to the caller unmodified.
type ImageRecognizer interface {
	Predict(ctx context.Context, imageURL string) (json.RawMessage, error)
}

// RecognitionService classifies an image by URL on behalf of a user.
type RecognitionService interface {
	Classify(ctx context.Context, userID, imageURL string) (json.RawMessage, error)
}
