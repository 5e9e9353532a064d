package audit

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobtracker/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSnapshotMarshal_PreservesFieldOrder(t *testing.T) {
	var rate *float64
	snapshot := Snapshot{
		{Name: "company", Value: "Acme"},
		{Name: "hourly_rate", Value: rate},
		{Name: "status", Value: "Applied"},
	}

	raw, err := snapshot.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	want := `{"company":"Acme","hourly_rate":null,"status":"Applied"}`
	if string(raw) != want {
		t.Fatalf("snapshot json = %s, want %s", raw, want)
	}
}

func TestRecord_RejectsMalformedEntries(t *testing.T) {
	db := newTestDB(t)
	recorder := NewLogRecorder()
	ctx := context.Background()
	snapshot := Snapshot{{Name: "company", Value: "Acme"}}

	cases := []struct {
		name  string
		entry Entry
	}{
		{"create with old values", Entry{UserID: 1, TableName: TableJobApplications, Action: ActionCreate, OldValues: snapshot, NewValues: snapshot}},
		{"create without new values", Entry{UserID: 1, TableName: TableJobApplications, Action: ActionCreate}},
		{"update missing snapshot", Entry{UserID: 1, TableName: TableJobApplications, Action: ActionUpdate, OldValues: snapshot}},
		{"delete with new values", Entry{UserID: 1, TableName: TableJobApplications, Action: ActionDelete, OldValues: snapshot, NewValues: snapshot}},
		{"unknown action", Entry{UserID: 1, TableName: TableJobApplications, Action: Action("READ"), NewValues: snapshot}},
		{"missing user", Entry{TableName: TableJobApplications, Action: ActionCreate, NewValues: snapshot}},
	}

	for _, c := range cases {
		if err := recorder.Record(ctx, db, c.entry); err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}

	var count int64
	if err := db.Model(&database.AuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count audit logs: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected entries must not be persisted, found %d", count)
	}
}

func TestRecord_PersistsEntry(t *testing.T) {
	db := newTestDB(t)
	recorder := NewLogRecorder()

	err := recorder.Record(context.Background(), db, Entry{
		UserID:    1,
		Action:    ActionUpdate,
		TableName: TableTargetCompanies,
		RecordID:  "42",
		OldValues: Snapshot{{Name: "name", Value: "Acme"}},
		NewValues: Snapshot{{Name: "name", Value: "Acme Corp"}},
		IPAddress: "192.0.2.1",
		UserAgent: "audit-test",
	})
	if err != nil {
		t.Fatalf("record entry: %v", err)
	}

	var row database.AuditLog
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load audit row: %v", err)
	}
	if row.Action != "UPDATE" || row.TableName != TableTargetCompanies || row.RecordID != "42" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if string(row.OldValues) != `{"name":"Acme"}` {
		t.Fatalf("old_values = %s", row.OldValues)
	}
	if string(row.NewValues) != `{"name":"Acme Corp"}` {
		t.Fatalf("new_values = %s", row.NewValues)
	}
}
