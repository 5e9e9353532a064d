package tracker

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"jobtracker/internal/database"
)

// DashboardMetrics is the derived figure set for a user's dashboard.
type DashboardMetrics struct {
	TotalApplications        int     `json:"total_applications"`
	ApplicationsThisWeek     int     `json:"applications_this_week"`
	InterviewsScheduled      int     `json:"interviews_scheduled"`
	OffersReceived           int     `json:"offers_received"`
	HighPriorityApplications int     `json:"high_priority_applications"`
	AverageHourlyRate        float64 `json:"average_hourly_rate"`
	ApplicationsToday        int     `json:"applications_today"`
	SuccessRate              float64 `json:"success_rate"`
}

// MetricsService recomputes dashboard figures from the live application
// set on every call. There is no cached or materialized state.
type MetricsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMetricsService constructs the service using the server clock.
func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db, now: time.Now}
}

// Dashboard scans the user's applications and derives the metric set. A
// user with no applications gets all zeroes rather than computed ratios.
func (s *MetricsService) Dashboard(ctx context.Context, userID uint) (DashboardMetrics, error) {
	var apps []database.JobApplication
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&apps).Error; err != nil {
		return DashboardMetrics{}, fmt.Errorf("load applications: %w", err)
	}

	if len(apps) == 0 {
		return DashboardMetrics{}, nil
	}

	today := dateOnly(s.now())
	weekStart := today.AddDate(0, 0, -7)

	metrics := DashboardMetrics{TotalApplications: len(apps)}
	var rateSum float64
	var rateCount int

	for _, app := range apps {
		if app.AppliedDate != nil {
			applied := dateOnly(*app.AppliedDate)
			if !applied.Before(weekStart) && !applied.After(today) {
				metrics.ApplicationsThisWeek++
			}
			if applied.Equal(today) {
				metrics.ApplicationsToday++
			}
		}

		status := strings.ToLower(app.Status)
		if strings.Contains(status, "interview") {
			metrics.InterviewsScheduled++
		}
		if strings.Contains(status, "offer") {
			metrics.OffersReceived++
		}

		if app.PriorityLevel != nil && strings.EqualFold(*app.PriorityLevel, "high") {
			metrics.HighPriorityApplications++
		}

		if app.HourlyRate != nil {
			rateSum += *app.HourlyRate
			rateCount++
		}
	}

	if rateCount > 0 {
		metrics.AverageHourlyRate = round2(rateSum / float64(rateCount))
	}

	total := metrics.TotalApplications
	if total < 1 {
		total = 1
	}
	metrics.SuccessRate = round2(float64(metrics.OffersReceived) / float64(total) * 100)

	return metrics, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
