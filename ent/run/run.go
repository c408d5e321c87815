// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIDTest holds the string denoting the id_test field in the database.
	FieldIDTest = "id_test"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPid holds the string denoting the pid field in the database.
	FieldPid = "pid"
	// FieldPlanned holds the string denoting the planned field in the database.
	FieldPlanned = "planned"
	// FieldStarted holds the string denoting the started field in the database.
	FieldStarted = "started"
	// FieldDeadline holds the string denoting the deadline field in the database.
	FieldDeadline = "deadline"
	// FieldRecoveryAttempt holds the string denoting the recovery_attempt field in the database.
	FieldRecoveryAttempt = "recovery_attempt"
	// Table holds the table name of the run in the database.
	Table = "runs"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldIDTest,
	FieldVersion,
	FieldState,
	FieldPid,
	FieldPlanned,
	FieldStarted,
	FieldDeadline,
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

// State defines the type for the "state" enum field.
type State string

// State values.
const (
	StateWaiting     State = "waiting"
	StateRunning     State = "running"
	StateTerminating State = "terminating"
	StateKilling     State = "killing"
	StateZombie      State = "zombie"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateWaiting, StateRunning, StateTerminating, StateKilling, StateZombie:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
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

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPid orders the results by the pid field.
func ByPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPid, opts...).ToFunc()
}

// ByPlanned orders the results by the planned field.
func ByPlanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanned, opts...).ToFunc()
}

// ByStarted orders the results by the started field.
func ByStarted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStarted, opts...).ToFunc()
}

// ByDeadline orders the results by the deadline field.
func ByDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadline, opts...).ToFunc()
}

// ByRecoveryAttempt orders the results by the recovery_attempt field.
func ByRecoveryAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempt, opts...).ToFunc()
}
