package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobtracker/internal/api/middleware"
	"jobtracker/internal/database"
	"jobtracker/internal/tracker"
)

// CompanyHandler serves the target company endpoints.
type CompanyHandler struct {
	service *tracker.CompanyService
}

// NewCompanyHandler constructs the handler.
func NewCompanyHandler(service *tracker.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type companyRequest struct {
	Name              string `json:"name"`
	Role              string `json:"role"`
	Website           string `json:"website"`
	Size              string `json:"size"`
	Industry          string `json:"industry"`
	RemotePolicy      string `json:"remote_policy"`
	ApplicationStatus string `json:"application_status"`
	Priority          string `json:"priority"`
}

func (r companyRequest) toInput() tracker.CompanyInput {
	return tracker.CompanyInput{
		Name:              r.Name,
		RoleTitle:         r.Role,
		Website:           r.Website,
		CompanySize:       r.Size,
		Industry:          r.Industry,
		RemotePolicy:      r.RemotePolicy,
		ApplicationStatus: r.ApplicationStatus,
		Priority:          r.Priority,
	}
}

type companyResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Role              *string   `json:"role"`
	Website           *string   `json:"website"`
	Size              *string   `json:"size"`
	Industry          *string   `json:"industry"`
	RemotePolicy      *string   `json:"remote_policy"`
	ApplicationStatus string    `json:"application_status"`
	Priority          string    `json:"priority"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newCompanyResponse(company *database.TargetCompany) companyResponse {
	return companyResponse{
		ID:                company.ID,
		Name:              company.Name,
		Role:              company.RoleTitle,
		Website:           company.Website,
		Size:              company.CompanySize,
		Industry:          company.Industry,
		RemotePolicy:      company.RemotePolicy,
		ApplicationStatus: company.ApplicationStatus,
		Priority:          company.Priority,
		CreatedAt:         company.CreatedAt,
		UpdatedAt:         company.UpdatedAt,
	}
}

// ListCompanies returns every target company owned by the current user.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	companies, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list target companies failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	items := make([]companyResponse, 0, len(companies))
	for i := range companies {
		items = append(items, newCompanyResponse(&companies[i]))
	}
	c.JSON(http.StatusOK, gin.H{"companies": items})
}

// CreateCompany adds a new target company for the current user.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	company, err := h.service.Create(c.Request.Context(), userID, req.toInput(), requestMeta(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Target company added successfully",
		"company": newCompanyResponse(company),
	})
}

// GetCompany returns a single target company scoped to the current user.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		NotFound(c, "Target company not found")
		return
	}

	company, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": newCompanyResponse(company)})
}

// UpdateCompany replaces every mutable field of a target company.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		NotFound(c, "Target company not found")
		return
	}

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	company, err := h.service.Update(c.Request.Context(), id, userID, req.toInput(), requestMeta(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Target company updated successfully",
		"company": newCompanyResponse(company),
	})
}

// DeleteCompany removes a target company owned by the current user.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		NotFound(c, "Target company not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID, requestMeta(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Target company deleted successfully"})
}

func (h *CompanyHandler) respondError(c *gin.Context, err error) {
	var validationErr *tracker.ValidationError
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		NotFound(c, "Target company not found")
	case errors.As(err, &validationErr):
		BadRequest(c, validationErr.Error())
	default:
		middleware.LoggerFromContext(c).Error("target company mutation failed", slog.Any("error", err))
		Internal(c, "internal error")
	}
}
