package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jobtracker/internal/api/middleware"
	"jobtracker/internal/audit"
	"jobtracker/internal/database"
)

// AuditHandler serves the read side of the audit trail.
type AuditHandler struct {
	db *gorm.DB
}

// NewAuditHandler constructs the handler.
func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

type auditLogResponse struct {
	ID        uint           `json:"id"`
	Action    string         `json:"action"`
	TableName string         `json:"table_name"`
	RecordID  string         `json:"record_id"`
	OldValues datatypes.JSON `json:"old_values"`
	NewValues datatypes.JSON `json:"new_values"`
	Timestamp time.Time      `json:"timestamp"`
	IPAddress string         `json:"ip_address"`
	UserAgent string         `json:"user_agent"`
}

func newAuditLogResponse(log *database.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		TableName: log.TableName,
		RecordID:  log.RecordID,
		OldValues: log.OldValues,
		NewValues: log.NewValues,
		Timestamp: log.Timestamp,
		IPAddress: log.IPAddress,
		UserAgent: log.UserAgent,
	}
}

// ListAuditLogs returns the current user's audit entries, newest first.
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)

	logs, pagination, err := audit.ListByUser(c.Request.Context(), h.db, userID, page, perPage)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list audit logs failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	items := make([]auditLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, newAuditLogResponse(&logs[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":       items,
		"pagination": pagination,
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
