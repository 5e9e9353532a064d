package tracker

import (
	"context"
	"testing"
	"time"

	"jobtracker/internal/database"
)

func TestDashboard_EmptySetIsAllZeroes(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)

	metrics, err := svc.Dashboard(context.Background(), 1)
	mustNoErr(t, err)

	if metrics != (DashboardMetrics{}) {
		t.Fatalf("expected zero-valued metrics, got %+v", metrics)
	}
}

func TestDashboard_AggregatesLiveApplications(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	fiveDaysAgo := today.AddDate(0, 0, -5)

	apps := []database.JobApplication{
		{
			UserID:        1,
			Company:       "Acme",
			RoleTitle:     "Engineer",
			HourlyRate:    floatPtr(40),
			AppliedDate:   &today,
			Status:        "Interview Scheduled",
			PriorityLevel: strPtr("High"),
		},
		{
			UserID:        1,
			Company:       "Globex",
			RoleTitle:     "Engineer",
			AppliedDate:   &fiveDaysAgo,
			Status:        "Offer Extended",
			PriorityLevel: strPtr("Medium"),
		},
		{
			UserID:        1,
			Company:       "Initech",
			RoleTitle:     "Engineer",
			HourlyRate:    floatPtr(60),
			Status:        "Applied",
			PriorityLevel: strPtr("high"),
		},
	}
	for i := range apps {
		if err := db.Create(&apps[i]).Error; err != nil {
			t.Fatalf("seed application: %v", err)
		}
	}

	metrics, err := svc.Dashboard(context.Background(), 1)
	mustNoErr(t, err)

	if metrics.TotalApplications != 3 {
		t.Errorf("total_applications = %d, want 3", metrics.TotalApplications)
	}
	if metrics.ApplicationsThisWeek != 2 {
		t.Errorf("applications_this_week = %d, want 2", metrics.ApplicationsThisWeek)
	}
	if metrics.ApplicationsToday != 1 {
		t.Errorf("applications_today = %d, want 1", metrics.ApplicationsToday)
	}
	if metrics.InterviewsScheduled != 1 {
		t.Errorf("interviews_scheduled = %d, want 1", metrics.InterviewsScheduled)
	}
	if metrics.OffersReceived != 1 {
		t.Errorf("offers_received = %d, want 1", metrics.OffersReceived)
	}
	if metrics.HighPriorityApplications != 2 {
		t.Errorf("high_priority_applications = %d, want 2", metrics.HighPriorityApplications)
	}
	if metrics.AverageHourlyRate != 50.00 {
		t.Errorf("average_hourly_rate = %v, want 50.00", metrics.AverageHourlyRate)
	}
	if metrics.SuccessRate != 33.33 {
		t.Errorf("success_rate = %v, want 33.33", metrics.SuccessRate)
	}
}

func TestDashboard_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewMetricsService(db)

	app := database.JobApplication{UserID: 7, Company: "Acme", RoleTitle: "Engineer", Status: "Offer"}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}

	metrics, err := svc.Dashboard(context.Background(), 1)
	mustNoErr(t, err)
	if metrics.TotalApplications != 0 {
		t.Fatalf("user 1 should see no applications, got %d", metrics.TotalApplications)
	}

	metrics, err = svc.Dashboard(context.Background(), 7)
	mustNoErr(t, err)
	if metrics.TotalApplications != 1 || metrics.OffersReceived != 1 {
		t.Fatalf("user 7 metrics = %+v", metrics)
	}
	if metrics.SuccessRate != 100.00 {
		t.Fatalf("success_rate = %v, want 100.00", metrics.SuccessRate)
	}
}
