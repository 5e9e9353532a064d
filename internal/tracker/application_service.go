package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"jobtracker/internal/audit"
	"jobtracker/internal/database"
)

const defaultApplicationStatus = "Applied"

// ApplicationInput is the full mutable field set of a job application.
// Updates replace every field: an empty optional clears the stored value.
type ApplicationInput struct {
	Company           string
	RoleTitle         string
	Location          string
	HourlyRate        *float64
	AppliedDate       string
	Status            string
	ApplicationSource string
	ContactEmail      string
	PriorityLevel     string
}

// ApplicationService orchestrates audited mutations of job applications.
type ApplicationService struct {
	db       *gorm.DB
	recorder audit.Recorder
}

// NewApplicationService constructs the service.
func NewApplicationService(db *gorm.DB, recorder audit.Recorder) *ApplicationService {
	return &ApplicationService{db: db, recorder: recorder}
}

// Create validates the input, persists a new application and records a
// CREATE audit entry in the same transaction.
func (s *ApplicationService) Create(ctx context.Context, userID uint, in ApplicationInput, meta RequestMeta) (*database.JobApplication, error) {
	if err := validateApplicationInput(in); err != nil {
		return nil, err
	}
	appliedDate, err := parseDate("applied_date", in.AppliedDate)
	if err != nil {
		return nil, err
	}

	app := database.JobApplication{UserID: userID}
	applyApplicationInput(&app, in, appliedDate)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return fmt.Errorf("create application: %w", err)
		}
		return s.recorder.Record(ctx, tx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionCreate,
			TableName: audit.TableJobApplications,
			RecordID:  strconv.FormatUint(uint64(app.ID), 10),
			NewValues: snapshotApplication(&app),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Get returns the application scoped by (id, user_id).
func (s *ApplicationService) Get(ctx context.Context, id, userID uint) (*database.JobApplication, error) {
	var app database.JobApplication
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &app, nil
}

// List returns all applications owned by the user.
func (s *ApplicationService) List(ctx context.Context, userID uint) ([]database.JobApplication, error) {
	var apps []database.JobApplication
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Update replaces every mutable field of the application and records an
// UPDATE audit entry carrying before and after snapshots.
func (s *ApplicationService) Update(ctx context.Context, id, userID uint, in ApplicationInput, meta RequestMeta) (*database.JobApplication, error) {
	if err := validateApplicationInput(in); err != nil {
		return nil, err
	}
	appliedDate, err := parseDate("applied_date", in.AppliedDate)
	if err != nil {
		return nil, err
	}

	var app database.JobApplication
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load application: %w", err)
		}

		oldValues := snapshotApplication(&app)
		applyApplicationInput(&app, in, appliedDate)

		if err := tx.Save(&app).Error; err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		return s.recorder.Record(ctx, tx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionUpdate,
			TableName: audit.TableJobApplications,
			RecordID:  strconv.FormatUint(uint64(id), 10),
			OldValues: oldValues,
			NewValues: snapshotApplication(&app),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Delete removes the application and records a DELETE audit entry
// capturing its last known state.
func (s *ApplicationService) Delete(ctx context.Context, id, userID uint, meta RequestMeta) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app database.JobApplication
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load application: %w", err)
		}

		oldValues := snapshotApplication(&app)
		if err := tx.Delete(&app).Error; err != nil {
			return fmt.Errorf("delete application: %w", err)
		}
		return s.recorder.Record(ctx, tx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionDelete,
			TableName: audit.TableJobApplications,
			RecordID:  strconv.FormatUint(uint64(id), 10),
			OldValues: oldValues,
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	})
}

func validateApplicationInput(in ApplicationInput) error {
	if in.Company == "" {
		return requiredField("company")
	}
	if in.RoleTitle == "" {
		return requiredField("role_title")
	}
	return nil
}

func applyApplicationInput(app *database.JobApplication, in ApplicationInput, appliedDate *time.Time) {
	app.Company = in.Company
	app.RoleTitle = in.RoleTitle
	app.Location = optional(in.Location)
	app.HourlyRate = in.HourlyRate
	app.AppliedDate = appliedDate
	if in.Status != "" {
		app.Status = in.Status
	} else {
		app.Status = defaultApplicationStatus
	}
	app.ApplicationSource = optional(in.ApplicationSource)
	app.ContactEmail = optional(in.ContactEmail)
	app.PriorityLevel = optional(in.PriorityLevel)
}

func snapshotApplication(app *database.JobApplication) audit.Snapshot {
	return audit.Snapshot{
		snapshotField("company", app.Company),
		snapshotField("role_title", app.RoleTitle),
		snapshotField("location", app.Location),
		snapshotField("hourly_rate", app.HourlyRate),
		snapshotField("applied_date", FormatDate(app.AppliedDate)),
		snapshotField("status", app.Status),
		snapshotField("application_source", app.ApplicationSource),
		snapshotField("contact_email", app.ContactEmail),
		snapshotField("priority_level", app.PriorityLevel),
	}
}
