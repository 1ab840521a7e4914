package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RichardBobik/eye-know-api-2/internal/api/metrics"
	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

type ImageHandler struct {
	profileService     ports.ProfileService
	recognitionService ports.RecognitionService
}

func NewImageHandler(profileService ports.ProfileService, recognitionService ports.RecognitionService) *ImageHandler {
	return &ImageHandler{profileService: profileService, recognitionService: recognitionService}
}

type imageEntryRequest struct {
	ID string `json:"id" validate:"required"`
}

type imageURLRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

// RecordEntry increments the caller's image submission counter.
//
// @Summary      Record an image submission
// @Tags         image
// @Accept       json
// @Produce      json
// @Param        body  body      imageEntryRequest  true  "User id"
// @Success      200   {integer} int64
// @Failure      403   {string}  string
// @Router       /image [put]
func (h *ImageHandler) RecordEntry(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req imageEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The body id is legacy client shape; the session owns the counter.
	if req.ID != userID {
		return domain.ErrForbidden
	}

	entries, err := h.profileService.RecordEntry(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// RecognizeURL relays an image URL to the recognition model.
//
// @Summary      Classify an image by URL
// @Tags         image
// @Accept       json
// @Produce      json
// @Param        body  body      imageURLRequest  true  "Image URL"
// @Success      200   {object}  object
// @Failure      400   {string}  string
// @Router       /imageurl [post]
func (h *ImageHandler) RecognizeURL(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req imageURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.recognitionService.Classify(c.Request().Context(), userID, req.ImageURL)
	if err != nil {
		if errors.Is(err, domain.ErrRecognitionFailed) {
			metrics.RecognitionsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusBadRequest, "Unable to fetch or process image.")
		}
		return err
	}

	metrics.RecognitionsTotal.WithLabelValues("success").Inc()
	return c.JSONBlob(http.StatusOK, out)
}
