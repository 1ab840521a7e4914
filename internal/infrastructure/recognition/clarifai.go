package recognition

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 15 * time.Second

// Config carries the Clarifai credentials and model selection.
type Config struct {
	BaseURL string
	PAT     string
	UserID  string
	AppID   string
	ModelID string
}

// ClarifaiClient calls the Clarifai model-outputs endpoint with a base64
// encoded copy of the image fetched from the caller-supplied URL.
type ClarifaiClient struct {
	http  *resty.Client
	fetch *resty.Client
	cfg   Config
}

func NewClarifaiClient(cfg Config) *ClarifaiClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")
	// Separate client for image downloads: no base URL, absolute URLs only.
	fetch := resty.New().SetTimeout(requestTimeout)
	return &ClarifaiClient{http: client, fetch: fetch, cfg: cfg}
}

type predictRequest struct {
	UserAppID userAppID `json:"user_app_id"`
	Inputs    []input   `json:"inputs"`
}

type userAppID struct {
	UserID string `json:"user_id"`
	AppID  string `json:"app_id"`
}

type input struct {
	Data inputData `json:"data"`
}

type inputData struct {
	Image inputImage `json:"image"`
}

type inputImage struct {
	Base64 string `json:"base64"`
}

// Predict fetches the image, encodes it, and relays the raw model response.
func (c *ClarifaiClient) Predict(ctx context.Context, imageURL string) (json.RawMessage, error) {
	img, err := c.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	body := predictRequest{
		UserAppID: userAppID{UserID: c.cfg.UserID, AppID: c.cfg.AppID},
		Inputs: []input{
			{Data: inputData{Image: inputImage{Base64: base64.StdEncoding.EncodeToString(img)}}},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Key "+c.cfg.PAT).
		SetBody(body).
		Post(fmt.Sprintf("/v2/models/%s/outputs", c.cfg.ModelID))
	if err != nil {
		return nil, fmt.Errorf("clarifai request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("clarifai request: status %d", resp.StatusCode())
	}

	return json.RawMessage(resp.Body()), nil
}

func (c *ClarifaiClient) fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	resp, err := c.fetch.R().
		SetContext(ctx).
		Get(imageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
