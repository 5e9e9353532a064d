package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"jobtracker/internal/audit"
	"jobtracker/internal/database"
)

const (
	defaultCompanyStatus   = "To Apply"
	defaultCompanyPriority = "Medium"
)

// CompanyInput is the full mutable field set of a target company.
type CompanyInput struct {
	Name              string
	RoleTitle         string
	Website           string
	CompanySize       string
	Industry          string
	RemotePolicy      string
	ApplicationStatus string
	Priority          string
}

// CompanyService orchestrates audited mutations of target companies.
type CompanyService struct {
	db       *gorm.DB
	recorder audit.Recorder
}

// NewCompanyService constructs the service.
func NewCompanyService(db *gorm.DB, recorder audit.Recorder) *CompanyService {
	return &CompanyService{db: db, recorder: recorder}
}

// Create validates the input, persists a new target company and records a
// CREATE audit entry in the same transaction.
func (s *CompanyService) Create(ctx context.Context, userID uint, in CompanyInput, meta RequestMeta) (*database.TargetCompany, error) {
	if in.Name == "" {
		return nil, requiredField("name")
	}

	company := database.TargetCompany{UserID: userID}
	applyCompanyInput(&company, in)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return fmt.Errorf("create target company: %w", err)
		}
		return s.recorder.Record(ctx, tx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionCreate,
			TableName: audit.TableTargetCompanies,
			RecordID:  strconv.FormatUint(uint64(company.ID), 10),
			NewValues: snapshotCompany(&company),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Get returns the target company scoped by (id, user_id).
func (s *CompanyService) Get(ctx context.Context, id, userID uint) (*database.TargetCompany, error) {
	var company database.TargetCompany
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get target company: %w", err)
	}
	return &company, nil
}

// List returns all target companies owned by the user.
func (s *CompanyService) List(ctx context.Context, userID uint) ([]database.TargetCompany, error) {
	var companies []database.TargetCompany
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("list target companies: %w", err)
	}
	return companies, nil
}

// Update replaces every mutable field of the target company and records an
// UPDATE audit entry carrying before and after snapshots.
func (s *CompanyService) Update(ctx context.Context, id, userID uint, in CompanyInput, meta RequestMeta) (*database.TargetCompany, error) {
	if in.Name == "" {
		return nil, requiredField("name")
	}

	var company database.TargetCompany
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&company).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load target company: %w", err)
		}

		oldValues := snapshotCompany(&company)
		applyCompanyInput(&company, in)

		if err := tx.Save(&company).Error; err != nil {
			return fmt.Errorf("update target company: %w", err)
		}
		return s.recorder.Record(ctx, tx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionUpdate,
			TableName: audit.TableTargetCompanies,
			RecordID:  strconv.FormatUint(uint64(id), 10),
			OldValues: oldValues,
			NewValues: snapshotCompany(&company),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Delete removes the target company and records a DELETE audit entry
// capturing its last known state.
func (s *CompanyService) Delete(ctx context.Context, id, userID uint, meta RequestMeta) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company database.TargetCompany
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&company).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load target company: %w", err)
		}

		oldValues := snapshotCompany(&company)
		if err := tx.Delete(&company).Error; err != nil {
			return fmt.Errorf("delete target company: %w", err)
		}
		return s.recorder.Record(ctx, tx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionDelete,
			TableName: audit.TableTargetCompanies,
			RecordID:  strconv.FormatUint(uint64(id), 10),
			OldValues: oldValues,
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	})
}

func applyCompanyInput(company *database.TargetCompany, in CompanyInput) {
	company.Name = in.Name
	company.RoleTitle = optional(in.RoleTitle)
	company.Website = optional(in.Website)
	company.CompanySize = optional(in.CompanySize)
	company.Industry = optional(in.Industry)
	company.RemotePolicy = optional(in.RemotePolicy)
	if in.ApplicationStatus != "" {
		company.ApplicationStatus = in.ApplicationStatus
	} else {
		company.ApplicationStatus = defaultCompanyStatus
	}
	if in.Priority != "" {
		company.Priority = in.Priority
	} else {
		company.Priority = defaultCompanyPriority
	}
}

func snapshotCompany(company *database.TargetCompany) audit.Snapshot {
	return audit.Snapshot{
		snapshotField("name", company.Name),
		snapshotField("role", company.RoleTitle),
		snapshotField("website", company.Website),
		snapshotField("size", company.CompanySize),
		snapshotField("industry", company.Industry),
		snapshotField("remote_policy", company.RemotePolicy),
		snapshotField("application_status", company.ApplicationStatus),
		snapshotField("priority", company.Priority),
	}
}
