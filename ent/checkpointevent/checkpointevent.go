// Code generated by ent, DO NOT EDIT.

package checkpointevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkpointevent type in the database.
	Label = "checkpoint_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldSectionIndex holds the string denoting the section_index field in the database.
	FieldSectionIndex = "section_index"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldFromCache holds the string denoting the from_cache field in the database.
	FieldFromCache = "from_cache"
	// Table holds the table name of the checkpointevent in the database.
	Table = "checkpoint_events"
)

// Columns holds all SQL columns for checkpointevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLessonID,
	FieldSectionIndex,
	FieldIntent,
	FieldSource,
	FieldReason,
	FieldFromCache,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// IntentValidator is a validator for the "intent" field. It is called by the builders before save.
	IntentValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// DefaultFromCache holds the default value on creation for the "from_cache" field.
	DefaultFromCache bool
)

// OrderOption defines the ordering options for the CheckpointEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// BySectionIndex orders the results by the section_index field.
func BySectionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionIndex, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByFromCache orders the results by the from_cache field.
func ByFromCache(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromCache, opts...).ToFunc()
}
