package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobtracker/internal/api/middleware"
	"jobtracker/internal/database"
	"jobtracker/internal/tracker"
)

// ApplicationHandler serves the job application endpoints.
type ApplicationHandler struct {
	service *tracker.ApplicationService
}

// NewApplicationHandler constructs the handler.
func NewApplicationHandler(service *tracker.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applicationRequest struct {
	Company           string   `json:"company"`
	RoleTitle         string   `json:"role_title"`
	Location          string   `json:"location"`
	HourlyRate        *float64 `json:"hourly_rate"`
	AppliedDate       string   `json:"applied_date"`
	Status            string   `json:"status"`
	ApplicationSource string   `json:"application_source"`
	ContactEmail      string   `json:"contact_email"`
	PriorityLevel     string   `json:"priority_level"`
}

func (r applicationRequest) toInput() tracker.ApplicationInput {
	return tracker.ApplicationInput{
		Company:           r.Company,
		RoleTitle:         r.RoleTitle,
		Location:          r.Location,
		HourlyRate:        r.HourlyRate,
		AppliedDate:       r.AppliedDate,
		Status:            r.Status,
		ApplicationSource: r.ApplicationSource,
		ContactEmail:      r.ContactEmail,
		PriorityLevel:     r.PriorityLevel,
	}
}

type applicationResponse struct {
	ID                uint      `json:"id"`
	Company           string    `json:"company"`
	RoleTitle         string    `json:"role_title"`
	Location          *string   `json:"location"`
	HourlyRate        *float64  `json:"hourly_rate"`
	AppliedDate       *string   `json:"applied_date"`
	Status            string    `json:"status"`
	ApplicationSource *string   `json:"application_source"`
	ContactEmail      *string   `json:"contact_email"`
	PriorityLevel     *string   `json:"priority_level"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newApplicationResponse(app *database.JobApplication) applicationResponse {
	return applicationResponse{
		ID:                app.ID,
		Company:           app.Company,
		RoleTitle:         app.RoleTitle,
		Location:          app.Location,
		HourlyRate:        app.HourlyRate,
		AppliedDate:       tracker.FormatDate(app.AppliedDate),
		Status:            app.Status,
		ApplicationSource: app.ApplicationSource,
		ContactEmail:      app.ContactEmail,
		PriorityLevel:     app.PriorityLevel,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
}

// ListApplications returns every application owned by the current user.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	apps, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list applications failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	items := make([]applicationResponse, 0, len(apps))
	for i := range apps {
		items = append(items, newApplicationResponse(&apps[i]))
	}
	c.JSON(http.StatusOK, gin.H{"applications": items})
}

// CreateApplication creates a new application for the current user.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	app, err := h.service.Create(c.Request.Context(), userID, req.toInput(), requestMeta(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application created successfully",
		"application": newApplicationResponse(app),
	})
}

// GetApplication returns a single application scoped to the current user.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		NotFound(c, "Application not found")
		return
	}

	app, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": newApplicationResponse(app)})
}

// UpdateApplication replaces every mutable field of an application.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		NotFound(c, "Application not found")
		return
	}

	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	app, err := h.service.Update(c.Request.Context(), id, userID, req.toInput(), requestMeta(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application updated successfully",
		"application": newApplicationResponse(app),
	})
}

// DeleteApplication removes an application owned by the current user.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		NotFound(c, "Application not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID, requestMeta(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

func (h *ApplicationHandler) respondError(c *gin.Context, err error) {
	var validationErr *tracker.ValidationError
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		NotFound(c, "Application not found")
	case errors.As(err, &validationErr):
		BadRequest(c, validationErr.Error())
	default:
		middleware.LoggerFromContext(c).Error("application mutation failed", slog.Any("error", err))
		Internal(c, "internal error")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
