// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIDTest holds the string denoting the id_test field in the database.
	FieldIDTest = "id_test"
	// FieldRunAt holds the string denoting the run_at field in the database.
	FieldRunAt = "run_at"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldRecoveryAttempt holds the string denoting the recovery_attempt field in the database.
	FieldRecoveryAttempt = "recovery_attempt"
	// Table holds the table name of the event in the database.
	Table = "events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldIDTest,
	FieldRunAt,
	FieldSource,
	FieldRecoveryAttempt,
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
	// DefaultRecoveryAttempt holds the default value on creation for the "recovery_attempt" field.
	DefaultRecoveryAttempt int
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceRequest  Source = "request"
	SourceCalendar Source = "calendar"
	SourceRecovery Source = "recovery"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceRequest, SourceCalendar, SourceRecovery:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIDTest orders the results by the id_test field.
func ByIDTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDTest, opts...).ToFunc()
}

// ByRunAt orders the results by the run_at field.
func ByRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunAt, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByRecoveryAttempt orders the results by the recovery_attempt field.
func ByRecoveryAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempt, opts...).ToFunc()
}
