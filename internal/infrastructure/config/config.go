package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,        default=8080"`
	Env       string `env:"ENV,         default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,   default=info"`

	// SessionTTL bounds every issued session. 48h matches the legacy
	// deployment (172800 seconds).
	SessionTTL time.Duration `env:"SESSION_TTL, default=48h"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Clarifai ClarifaiConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=eye_know"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ClarifaiConfig struct {
	BaseURL string `env:"CLARIFAI_BASE_URL, default=https://api.clarifai.com"`
	PAT     string `env:"CLARIFAI_PAT"`
	UserID  string `env:"CLARIFAI_USER_ID"`
	AppID   string `env:"CLARIFAI_APP_ID"`
	ModelID string `env:"CLARIFAI_MODEL_ID, default=general-image-recognition"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
