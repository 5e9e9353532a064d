// Package tracker implements the mutation services and the dashboard
// aggregator. Every mutation runs snapshot, apply and audit write inside
// one transaction so a failed audit write rolls the domain change back.
package tracker

import (
	"time"

	"jobtracker/internal/audit"
)

// DateLayout is the canonical text form of date-valued fields.
const DateLayout = "2006-01-02"

// RequestMeta carries the request attributes recorded on audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be formatted as YYYY-MM-DD"}
	}
	return &t, nil
}

// FormatDate renders a nullable date in its canonical text form.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func snapshotField(name string, value interface{}) audit.Field {
	return audit.Field{Name: name, Value: value}
}
