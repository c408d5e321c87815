// Code generated by ent, DO NOT EDIT.

package result

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the result type in the database.
	Label = "result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIDTest holds the string denoting the id_test field in the database.
	FieldIDTest = "id_test"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldPlanned holds the string denoting the planned field in the database.
	FieldPlanned = "planned"
	// FieldStarted holds the string denoting the started field in the database.
	FieldStarted = "started"
	// FieldFinished holds the string denoting the finished field in the database.
	FieldFinished = "finished"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRecoveryAttempt holds the string denoting the recovery_attempt field in the database.
	FieldRecoveryAttempt = "recovery_attempt"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the result in the database.
	Table = "results"
)

// Columns holds all SQL columns for result fields.
var Columns = []string{
	FieldID,
	FieldIDTest,
	FieldVersion,
	FieldPlanned,
	FieldStarted,
	FieldFinished,
	FieldStatus,
	FieldRecoveryAttempt,
	FieldData,
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

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess    Status = "success"
	StatusTerminated Status = "terminated"
	StatusError      Status = "error"
	StatusCrashed    Status = "crashed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusTerminated, StatusError, StatusCrashed:
		return nil
	default:
		return fmt.Errorf("result: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Result queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIDTest orders the results by the id_test field.
func ByIDTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDTest, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPlanned orders the results by the planned field.
func ByPlanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanned, opts...).ToFunc()
}

// ByStarted orders the results by the started field.
func ByStarted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStarted, opts...).ToFunc()
}

// ByFinished orders the results by the finished field.
func ByFinished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinished, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRecoveryAttempt orders the results by the recovery_attempt field.
func ByRecoveryAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempt, opts...).ToFunc()
}

// ByData orders the results by the data field.
func ByData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldData, opts...).ToFunc()
}
