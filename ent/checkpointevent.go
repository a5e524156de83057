// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/geomiz/ent/checkpointevent"
)

// CheckpointEvent is the model entity for the CheckpointEvent schema.
type CheckpointEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Lesson session this checkpoint belongs to
	SessionID string `json:"session_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// SectionIndex holds the value of the "section_index" field.
	SectionIndex int `json:"section_index,omitempty"`
	// define, compute, or scenario
	Intent string `json:"intent,omitempty"`
	// ai or fallback
	Source string `json:"source,omitempty"`
	// Why the fallback ran: assistant_unavailable or generation_error
	Reason string `json:"reason,omitempty"`
	// FromCache holds the value of the "from_cache" field.
	FromCache    bool `json:"from_cache,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckpointEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpointevent.FieldFromCache:
			values[i] = new(sql.NullBool)
		case checkpointevent.FieldID, checkpointevent.FieldSequence, checkpointevent.FieldSectionIndex:
			values[i] = new(sql.NullInt64)
		case checkpointevent.FieldSessionID, checkpointevent.FieldLessonID, checkpointevent.FieldIntent, checkpointevent.FieldSource, checkpointevent.FieldReason:
			values[i] = new(sql.NullString)
		case checkpointevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckpointEvent fields.
func (_m *CheckpointEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpointevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case checkpointevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case checkpointevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case checkpointevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case checkpointevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case checkpointevent.FieldSectionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field section_index", values[i])
			} else if value.Valid {
				_m.SectionIndex = int(value.Int64)
			}
		case checkpointevent.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case checkpointevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case checkpointevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case checkpointevent.FieldFromCache:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_cache", values[i])
			} else if value.Valid {
				_m.FromCache = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckpointEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CheckpointEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckpointEvent.
// Note that you need to call CheckpointEvent.Unwrap() before calling this method if this CheckpointEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckpointEvent) Update() *CheckpointEventUpdateOne {
	return NewCheckpointEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckpointEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckpointEvent) Unwrap() *CheckpointEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckpointEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckpointEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CheckpointEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("section_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionIndex))
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("from_cache=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromCache))
	builder.WriteByte(')')
	return builder.String()
}

// CheckpointEvents is a parsable slice of CheckpointEvent.
type CheckpointEvents []*CheckpointEvent
