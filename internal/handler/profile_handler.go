package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobtrack/internal/errors"
	"jobtrack/internal/model"
	"jobtrack/internal/service"
)

// ProfileHandler handles candidate profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest carries the editable profile fields. Every field is
// optional; absent fields are saved as their zero value.
type ProfileRequest struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Address            string `json:"address"`
	City               string `json:"city"`
	MobileNumber       string `json:"mobile_number"`
	GithubURL          string `json:"github_url"`
	JobPosition        string `json:"job_position"`
	ExperienceMonths   int    `json:"experience_months"`
	Skills             string `json:"skills"`
	PreferredLocations string `json:"preferred_locations"`
}

func (r *ProfileRequest) toModel(userEmail string) *model.Profile {
	return &model.Profile{
		UserEmail:          userEmail,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Address:            r.Address,
		City:               r.City,
		MobileNumber:       r.MobileNumber,
		GithubURL:          r.GithubURL,
		JobPosition:        r.JobPosition,
		ExperienceMonths:   r.ExperienceMonths,
		Skills:             r.Skills,
		PreferredLocations: r.PreferredLocations,
	}
}

// GetProfile godoc
// @Summary Get the current profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	email, err := currentUserEmail(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetCurrent(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if profile == nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "no profile found",
			Code:  "PROFILE_NOT_FOUND",
		})
	}

	return c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Create or update the current profile
// @Description Appends a first profile snapshot, or rewrites the latest one when the user already has one.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	email, err := currentUserEmail(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	ctx := c.Request().Context()
	existing, err := h.profileService.GetCurrent(ctx, email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// First save starts the history, later saves rewrite the latest row.
	if existing == nil {
		err = h.profileService.Save(ctx, req.toModel(email))
	} else {
		err = h.profileService.UpdateCurrent(ctx, email, req.toModel(email))
	}
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "profile saved successfully",
	})
}
