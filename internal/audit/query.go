package audit

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobtracker/internal/database"
)

// Pagination describes the page window returned by ListByUser.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// ListByUser returns the user's audit entries newest first. Page and
// perPage are 1-based; a page past the end yields an empty slice, not an
// error.
func ListByUser(ctx context.Context, db *gorm.DB, userID uint, page, perPage int) ([]database.AuditLog, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var total int64
	if err := db.WithContext(ctx).
		Model(&database.AuditLog{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("count audit logs: %w", err)
	}

	var logs []database.AuditLog
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&logs).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("list audit logs: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return logs, Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
	}, nil
}
