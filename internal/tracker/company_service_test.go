package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobtracker/internal/audit"
)

func TestCompanyCreate_AppliesDefaultsAndAudits(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, audit.NewLogRecorder())

	company, err := svc.Create(context.Background(), 1, CompanyInput{
		Name:     "Acme",
		Industry: "Technology",
	}, testMeta())
	mustNoErr(t, err)

	if company.ApplicationStatus != "To Apply" {
		t.Fatalf("application_status = %q, want To Apply", company.ApplicationStatus)
	}
	if company.Priority != "Medium" {
		t.Fatalf("priority = %q, want Medium", company.Priority)
	}

	logs := auditLogs(t, db, 1)
	if len(logs) != 1 {
		t.Fatalf("expected exactly 1 audit entry, got %d", len(logs))
	}
	entry := logs[0]
	if entry.Action != "CREATE" || entry.TableName != "target_companies" {
		t.Fatalf("unexpected audit entry: action=%q table=%q", entry.Action, entry.TableName)
	}
	if isNullJSON(entry.NewValues) {
		t.Fatal("CREATE entry should capture new_values")
	}
	if !strings.Contains(string(entry.NewValues), `"application_status":"To Apply"`) {
		t.Fatalf("new_values missing defaulted status: %s", entry.NewValues)
	}
}

func TestCompanyCreate_MissingName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, audit.NewLogRecorder())

	_, err := svc.Create(context.Background(), 1, CompanyInput{Industry: "Tech"}, testMeta())
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "name" {
		t.Fatalf("validation error field = %q, want name", validationErr.Field)
	}
}

func TestCompanyUpdate_FullReplace(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, audit.NewLogRecorder())
	ctx := context.Background()

	company, err := svc.Create(ctx, 1, CompanyInput{
		Name:         "Acme",
		Website:      "https://acme.example",
		RemotePolicy: "Hybrid",
	}, testMeta())
	mustNoErr(t, err)

	updated, err := svc.Update(ctx, company.ID, 1, CompanyInput{
		Name:     "Acme Corp",
		Priority: "High",
	}, testMeta())
	mustNoErr(t, err)

	if updated.Website != nil {
		t.Fatalf("omitted website should be cleared, got %q", *updated.Website)
	}
	if updated.RemotePolicy != nil {
		t.Fatalf("omitted remote_policy should be cleared, got %q", *updated.RemotePolicy)
	}
	if updated.Priority != "High" {
		t.Fatalf("priority = %q, want High", updated.Priority)
	}
	if updated.ApplicationStatus != "To Apply" {
		t.Fatalf("unset application_status should fall back to default, got %q", updated.ApplicationStatus)
	}

	logs := auditLogs(t, db, 1)
	if len(logs) != 2 || logs[1].Action != "UPDATE" {
		t.Fatalf("expected CREATE + UPDATE entries, got %d", len(logs))
	}
	if !strings.Contains(string(logs[1].OldValues), `"website":"https://acme.example"`) {
		t.Fatalf("old_values missing previous website: %s", logs[1].OldValues)
	}
}

func TestCompanyOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, audit.NewLogRecorder())
	ctx := context.Background()

	company, err := svc.Create(ctx, 1, CompanyInput{Name: "Acme"}, testMeta())
	mustNoErr(t, err)

	if _, err := svc.Get(ctx, company.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get by other user: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, company.ID, 2, testMeta()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete by other user: expected ErrNotFound, got %v", err)
	}
}

func TestCompanyDelete_WritesAuditEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, audit.NewLogRecorder())
	ctx := context.Background()

	company, err := svc.Create(ctx, 1, CompanyInput{Name: "Acme", RoleTitle: "Backend Engineer"}, testMeta())
	mustNoErr(t, err)
	mustNoErr(t, svc.Delete(ctx, company.ID, 1, testMeta()))

	logs := auditLogs(t, db, 1)
	if len(logs) != 2 || logs[1].Action != "DELETE" {
		t.Fatalf("expected CREATE + DELETE entries, got %d", len(logs))
	}
	if !isNullJSON(logs[1].NewValues) {
		t.Fatalf("DELETE entry should have null new_values, got %s", logs[1].NewValues)
	}
	if !strings.Contains(string(logs[1].OldValues), `"role":"Backend Engineer"`) {
		t.Fatalf("old_values missing role: %s", logs[1].OldValues)
	}
}

func TestCompanyMutation_RollsBackWhenAuditFails(t *testing.T) {
	db := newTestDB(t)
	broken := NewCompanyService(db, failingRecorder{})

	if _, err := broken.Create(context.Background(), 1, CompanyInput{Name: "Acme"}, testMeta()); err == nil {
		t.Fatal("expected create to fail when audit write fails")
	}

	healthy := NewCompanyService(db, audit.NewLogRecorder())
	companies, err := healthy.List(context.Background(), 1)
	mustNoErr(t, err)
	if len(companies) != 0 {
		t.Fatalf("create should roll back with audit write, found %d rows", len(companies))
	}
}
