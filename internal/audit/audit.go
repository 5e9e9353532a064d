// Package audit persists an immutable before/after trail for every
// domain mutation. Rows are append-only: nothing in this package (or
// anywhere else) updates or deletes an existing entry.
package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Action is the closed set of mutation kinds an audit entry can describe.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Audited table names.
const (
	TableJobApplications = "job_applications"
	TableTargetCompanies = "target_companies"
)

// Field is one named value inside a snapshot.
type Field struct {
	Name  string
	Value interface{}
}

// Snapshot captures a record's mutable fields at a point in time. Field
// order is fixed per entity type so serialized snapshots stay diffable.
type Snapshot []Field

// MarshalJSON renders the snapshot as a JSON object preserving field order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(field.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal field name %q: %w", field.Name, err)
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", field.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
