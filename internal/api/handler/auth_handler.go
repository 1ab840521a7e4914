package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RichardBobik/eye-know-api-2/internal/api/metrics"
	"github.com/RichardBobik/eye-know-api-2/internal/api/middleware"
	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Success string `json:"success"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

type whoAmIResponse struct {
	ID string `json:"id"`
}

// SignIn authenticates a caller in one of two modes.
//
// Without an Authorization header it is a fresh login: credentials are
// verified and a new session token is issued. With a header it acts as a
// session check and returns the identity bound to the presented token. The
// two modes have distinct response shapes, kept for client compatibility.
//
// @Summary      Sign in or validate an existing session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  false  "Credentials (ignored when a token is presented)"
// @Success      200   {object}  signInResponse
// @Failure      400   {string}  string
// @Failure      500   {object}  map[string]string
// @Router       /signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		return h.whoAmI(c, middleware.ExtractToken(header))
	}

	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "Wrong credentials")
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusBadRequest, "Wrong credentials")
		}
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	metrics.SessionsIssuedTotal.Inc()

	return c.JSON(http.StatusOK, signInResponse{
		Success: "true",
		UserID:  session.UserID,
		Token:   session.Token,
	})
}

func (h *AuthHandler) whoAmI(c echo.Context, token string) error {
	userID, err := h.authService.WhoAmI(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusBadRequest, "Unauthorized")
		}
		return err
	}
	return c.JSON(http.StatusOK, whoAmIResponse{ID: userID})
}

// Register creates a new account: credential and identity in one transaction.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}
