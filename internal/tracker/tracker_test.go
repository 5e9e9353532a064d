package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobtracker/internal/audit"
	"jobtracker/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testMeta() RequestMeta {
	return RequestMeta{IPAddress: "192.0.2.1", UserAgent: "tracker-test"}
}

func auditLogs(t *testing.T, db *gorm.DB, userID uint) []database.AuditLog {
	t.Helper()
	var logs []database.AuditLog
	if err := db.Where("user_id = ?", userID).Order("id").Find(&logs).Error; err != nil {
		t.Fatalf("load audit logs: %v", err)
	}
	return logs
}

type failingRecorder struct{}

func (failingRecorder) Record(_ context.Context, _ *gorm.DB, _ audit.Entry) error {
	return errors.New("audit write failed")
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// isNullJSON reports whether a stored snapshot column is SQL NULL; the
// driver may hand back either an empty value or a literal JSON null.
func isNullJSON(v datatypes.JSON) bool {
	return len(v) == 0 || string(v) == "null"
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
