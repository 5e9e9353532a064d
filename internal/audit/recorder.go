package audit

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jobtracker/internal/database"
)

// Entry describes one mutation to be recorded. OldValues is nil for
// CREATE, NewValues is nil for DELETE; both are present for UPDATE.
type Entry struct {
	UserID    uint
	Action    Action
	TableName string
	RecordID  string
	OldValues Snapshot
	NewValues Snapshot
	IPAddress string
	UserAgent string
}

// Recorder appends audit entries. It runs on the caller's transaction
// handle so a failed write aborts the enclosing mutation.
type Recorder interface {
	Record(ctx context.Context, tx *gorm.DB, entry Entry) error
}

// LogRecorder is the gorm-backed Recorder.
type LogRecorder struct{}

// NewLogRecorder constructs a LogRecorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// Record validates the entry shape and appends one audit row on tx.
func (r *LogRecorder) Record(ctx context.Context, tx *gorm.DB, entry Entry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	oldValues, err := marshalSnapshot(entry.OldValues)
	if err != nil {
		return fmt.Errorf("marshal old values: %w", err)
	}
	newValues, err := marshalSnapshot(entry.NewValues)
	if err != nil {
		return fmt.Errorf("marshal new values: %w", err)
	}

	row := database.AuditLog{
		UserID:    entry.UserID,
		Action:    string(entry.Action),
		TableName: entry.TableName,
		RecordID:  entry.RecordID,
		OldValues: oldValues,
		NewValues: newValues,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
	}
	if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

func validateEntry(entry Entry) error {
	if entry.UserID == 0 {
		return fmt.Errorf("audit entry requires a user id")
	}
	if entry.TableName == "" {
		return fmt.Errorf("audit entry requires a table name")
	}
	switch entry.Action {
	case ActionCreate:
		if entry.OldValues != nil {
			return fmt.Errorf("CREATE entry must not carry old values")
		}
		if entry.NewValues == nil {
			return fmt.Errorf("CREATE entry requires new values")
		}
	case ActionUpdate:
		if entry.OldValues == nil || entry.NewValues == nil {
			return fmt.Errorf("UPDATE entry requires both snapshots")
		}
	case ActionDelete:
		if entry.OldValues == nil {
			return fmt.Errorf("DELETE entry requires old values")
		}
		if entry.NewValues != nil {
			return fmt.Errorf("DELETE entry must not carry new values")
		}
	default:
		return fmt.Errorf("unknown audit action %q", entry.Action)
	}
	return nil
}

func marshalSnapshot(snapshot Snapshot) (datatypes.JSON, error) {
	if snapshot == nil {
		return nil, nil
	}
	raw, err := snapshot.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
