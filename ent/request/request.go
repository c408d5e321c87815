// Code generated by ent, DO NOT EDIT.

package request

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIDTest holds the string denoting the id_test field in the database.
	FieldIDTest = "id_test"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldRecoveryAttempt holds the string denoting the recovery_attempt field in the database.
	FieldRecoveryAttempt = "recovery_attempt"
	// FieldAddedTime holds the string denoting the added_time field in the database.
	FieldAddedTime = "added_time"
	// Table holds the table name of the request in the database.
	Table = "requests"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldIDTest,
	FieldReason,
	FieldRecoveryAttempt,
	FieldAddedTime,
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

// Reason defines the type for the "reason" enum field.
type Reason string

// Reason values.
const (
	ReasonNew    Reason = "new"
	ReasonUpdate Reason = "update"
	ReasonFailed Reason = "failed"
)

func (r Reason) String() string {
	return string(r)
}

// ReasonValidator is a validator for the "reason" field enum values. It is called by the builders before save.
func ReasonValidator(r Reason) error {
	switch r {
	case ReasonNew, ReasonUpdate, ReasonFailed:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for reason field: %q", r)
	}
}

// OrderOption defines the ordering options for the Request queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIDTest orders the results by the id_test field.
func ByIDTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDTest, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByRecoveryAttempt orders the results by the recovery_attempt field.
func ByRecoveryAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempt, opts...).ToFunc()
}

// ByAddedTime orders the results by the added_time field.
func ByAddedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddedTime, opts...).ToFunc()
}
