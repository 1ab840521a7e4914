package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type updateProfileRequest struct {
	FormInput struct {
		Name string `json:"name" validate:"required"`
		Age  int    `json:"age" validate:"gte=0"`
		Pet  string `json:"pet"`
	} `json:"formInput"`
}

// Get returns the profile for the requested user id.
//
// @Summary      Fetch a user profile
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      401  {string}  string
// @Failure      403  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /profile/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.profileService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update modifies the mutable profile fields and returns the updated user.
//
// @Summary      Update a user profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /profile/{id} [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := domain.ProfilePatch{
		Name: req.FormInput.Name,
		Age:  req.FormInput.Age,
		Pet:  req.FormInput.Pet,
	}

	user, err := h.profileService.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
