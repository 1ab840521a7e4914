package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/RichardBobik/eye-know-api-2/internal/api/handler"
	"github.com/RichardBobik/eye-know-api-2/internal/api/middleware"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
	"github.com/RichardBobik/eye-know-api-2/internal/core/service"
	"github.com/RichardBobik/eye-know-api-2/internal/infrastructure/config"
	mongodb "github.com/RichardBobik/eye-know-api-2/internal/infrastructure/db/mongo"
	redisdb "github.com/RichardBobik/eye-know-api-2/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Gating stages compose in a fixed order: rate limit → input validation →
// auth gate → handler; each stage short-circuits with its own error kind.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	recognizer ports.ImageRecognizer,
	audit ports.AuditRecorder,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("eyeknow"))
	e.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb)
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, sessions, issuer, audit, cfg.SessionTTL, log)
	profileService := service.NewProfileService(userRepo, log)
	recognitionService := service.NewRecognitionService(recognizer, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	imageHandler := handler.NewImageHandler(profileService, recognitionService)
	authGate := middleware.Auth(sessions, audit, log)

	// --- Public routes ---
	e.POST("/signin", authHandler.SignIn)
	e.POST("/register", authHandler.Register)

	// --- Protected routes ---
	e.PUT("/image", imageHandler.RecordEntry, authGate)
	e.POST("/imageurl", imageHandler.RecognizeURL, authGate)

	profile := e.Group("/profile", authGate, middleware.RequireOwner())
	profile.GET("/:id", profileHandler.Get)
	profile.PUT("/:id", profileHandler.Update)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
