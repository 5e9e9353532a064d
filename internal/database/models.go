package database

import (
	"time"

	"gorm.io/datatypes"
)

// User is an account that owns applications and target companies.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:80;not null"`
	Email        string    `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// JobApplication is a single tracked application. Ownership is fixed at
// creation; every read is scoped by (id, user_id).
type JobApplication struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"not null;index"`
	Company           string `gorm:"size:200;not null"`
	RoleTitle         string `gorm:"size:200;not null"`
	Location          *string
	HourlyRate        *float64
	AppliedDate       *time.Time `gorm:"type:date"`
	Status            string     `gorm:"size:50;default:'Applied'"`
	ApplicationSource *string    `gorm:"size:100"`
	ContactEmail      *string    `gorm:"size:200"`
	PriorityLevel     *string    `gorm:"size:20"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

// TargetCompany is a company the user intends to apply to.
type TargetCompany struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"not null;index"`
	Name              string `gorm:"size:200;not null"`
	RoleTitle         *string
	Website           *string `gorm:"size:200"`
	CompanySize       *string `gorm:"size:50"`
	Industry          *string `gorm:"size:100"`
	RemotePolicy      *string `gorm:"size:50"`
	ApplicationStatus string  `gorm:"size:50;default:'To Apply'"`
	Priority          string  `gorm:"size:20;default:'Medium'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AuditLog is one immutable audit trail row. Rows are only ever appended;
// old_values is null for CREATE and new_values is null for DELETE.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index"`
	Action    string         `gorm:"size:50;not null"`
	TableName string         `gorm:"size:100;not null"`
	RecordID  string         `gorm:"size:100"`
	OldValues datatypes.JSON `gorm:"type:jsonb"`
	NewValues datatypes.JSON `gorm:"type:jsonb"`
	Timestamp time.Time      `gorm:"autoCreateTime;index"`
	IPAddress string         `gorm:"size:45"`
	UserAgent string
}
