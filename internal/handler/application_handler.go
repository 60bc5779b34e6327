package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"jobtrack/internal/errors"
	"jobtrack/internal/model"
	"jobtrack/internal/service"
)

// ApplicationHandler handles job application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ApplicationRequest represents a job application create or update request.
// The job link is stored exactly as given; it is not normalized or checked
// as a URL, so two spellings of one link count as different jobs.
type ApplicationRequest struct {
	JobLink        string `json:"job_link" validate:"required"`
	CompanyName    string `json:"company_name"`
	JobRole        string `json:"job_role"`
	JobLocation    string `json:"job_location"`
	Status         string `json:"status"`
	RecruiterName  string `json:"recruiter_name"`
	RecruiterEmail string `json:"recruiter_email"`
	RecruiterPhone string `json:"recruiter_phone"`
	Comments       string `json:"comments"`
}

func (r *ApplicationRequest) toModel(userEmail string) *model.JobApplication {
	return &model.JobApplication{
		UserEmail:      userEmail,
		JobLink:        r.JobLink,
		CompanyName:    r.CompanyName,
		JobRole:        r.JobRole,
		JobLocation:    r.JobLocation,
		Status:         r.Status,
		RecruiterName:  r.RecruiterName,
		RecruiterEmail: r.RecruiterEmail,
		RecruiterPhone: r.RecruiterPhone,
		Comments:       r.Comments,
	}
}

// ApplicationResponse carries the stored application and the spreadsheet
// mirror outcome. The sync status is informational; the application is
// saved even when the mirror reports a failure.
type ApplicationResponse struct {
	Application *model.JobApplication `json:"application"`
	SyncStatus  string                `json:"sync_status"`
}

// ApplicationListItem is one row of the applications list, with the
// display-only age derived from the stored timestamp.
type ApplicationListItem struct {
	model.JobApplication
	DaysSinceCreated int `json:"days_since_created"`
}

// DeleteApplicationResponse reports a deletion and the mirror outcome.
type DeleteApplicationResponse struct {
	Message    string `json:"message"`
	SyncStatus string `json:"sync_status"`
}

// CreateApplication godoc
// @Summary Track a new job application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApplicationRequest true "Application data"
// @Success 201 {object} ApplicationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	email, err := currentUserEmail(c)
	if err != nil {
		return err
	}

	var req ApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	created, syncStatus, err := h.applicationService.Create(c.Request().Context(), req.toModel(email))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ApplicationResponse{
		Application: created,
		SyncStatus:  syncStatus,
	})
}

// ListApplications godoc
// @Summary List tracked applications, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ApplicationListItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	email, err := currentUserEmail(c)
	if err != nil {
		return err
	}

	apps, err := h.applicationService.ListForUser(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	now := time.Now().UTC()
	items := make([]ApplicationListItem, 0, len(apps))
	for _, app := range apps {
		items = append(items, ApplicationListItem{
			JobApplication:   app,
			DaysSinceCreated: int(now.Sub(app.CreatedAt).Hours() / 24),
		})
	}

	return c.JSON(http.StatusOK, items)
}

// UpdateApplication godoc
// @Summary Update a tracked application in place
// @Description Rewrites the application's fields. The spreadsheet mirror is not updated.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body ApplicationRequest true "Application data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c echo.Context) error {
	email, err := currentUserEmail(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid application id",
			Code:  "INVALID_ID",
		})
	}

	var req ApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.applicationService.Update(c.Request().Context(), uint(id), req.toModel(email)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "application updated successfully",
	})
}

// DeleteApplication godoc
// @Summary Delete a tracked application
// @Description Removes the application and its spreadsheet mirror row.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} DeleteApplicationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c echo.Context) error {
	if _, err := currentUserEmail(c); err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid application id",
			Code:  "INVALID_ID",
		})
	}

	syncStatus, err := h.applicationService.Delete(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DeleteApplicationResponse{
		Message:    "application deleted successfully",
		SyncStatus: syncStatus,
	})
}
