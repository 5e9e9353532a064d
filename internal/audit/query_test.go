package audit

import (
	"context"
	"testing"
)

func TestListByUser_PaginationBoundary(t *testing.T) {
	db := newTestDB(t)
	recorder := NewLogRecorder()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := recorder.Record(ctx, db, Entry{
			UserID:    1,
			Action:    ActionCreate,
			TableName: TableJobApplications,
			RecordID:  "1",
			NewValues: Snapshot{{Name: "company", Value: "Acme"}},
		})
		if err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}

	logs, pagination, err := ListByUser(ctx, db, 1, 2, 10)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("out-of-range page should be empty, got %d entries", len(logs))
	}
	if pagination.Total != 3 || pagination.Pages != 1 {
		t.Fatalf("pagination = %+v, want total=3 pages=1", pagination)
	}

	logs, pagination, err = ListByUser(ctx, db, 1, 1, 2)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("page 1 with per_page=2 should hold 2 entries, got %d", len(logs))
	}
	if pagination.Pages != 2 {
		t.Fatalf("pages = %d, want 2", pagination.Pages)
	}
}

func TestListByUser_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	recorder := NewLogRecorder()
	ctx := context.Background()

	err := recorder.Record(ctx, db, Entry{
		UserID:    7,
		Action:    ActionCreate,
		TableName: TableTargetCompanies,
		RecordID:  "1",
		NewValues: Snapshot{{Name: "name", Value: "Acme"}},
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	logs, pagination, err := ListByUser(ctx, db, 1, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 0 || pagination.Total != 0 {
		t.Fatalf("user 1 should see no entries, got %d (total=%d)", len(logs), pagination.Total)
	}
}

func TestListByUser_DefaultsInvalidPaging(t *testing.T) {
	db := newTestDB(t)
	recorder := NewLogRecorder()
	ctx := context.Background()

	err := recorder.Record(ctx, db, Entry{
		UserID:    1,
		Action:    ActionCreate,
		TableName: TableJobApplications,
		RecordID:  "1",
		NewValues: Snapshot{{Name: "company", Value: "Acme"}},
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	logs, pagination, err := ListByUser(ctx, db, 1, 0, -5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected clamped paging to return the entry, got %d", len(logs))
	}
	if pagination.Page != 1 || pagination.PerPage != 10 {
		t.Fatalf("pagination = %+v, want page=1 per_page=10", pagination)
	}
}
