// Code generated by ent, DO NOT EDIT.

package test

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the test type in the database.
	Label = "test"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldTestParams holds the string denoting the test_params field in the database.
	FieldTestParams = "test_params"
	// FieldTimeout holds the string denoting the timeout field in the database.
	FieldTimeout = "timeout"
	// FieldSchedulingInterval holds the string denoting the scheduling_interval field in the database.
	FieldSchedulingInterval = "scheduling_interval"
	// FieldSchedulingFrom holds the string denoting the scheduling_from field in the database.
	FieldSchedulingFrom = "scheduling_from"
	// FieldSchedulingUntil holds the string denoting the scheduling_until field in the database.
	FieldSchedulingUntil = "scheduling_until"
	// FieldRecoveryInterval holds the string denoting the recovery_interval field in the database.
	FieldRecoveryInterval = "recovery_interval"
	// FieldRecoveryAttemptLimit holds the string denoting the recovery_attempt_limit field in the database.
	FieldRecoveryAttemptLimit = "recovery_attempt_limit"
	// FieldKeyRo holds the string denoting the key_ro field in the database.
	FieldKeyRo = "key_ro"
	// FieldKeyRw holds the string denoting the key_rw field in the database.
	FieldKeyRw = "key_rw"
	// FieldCreated holds the string denoting the created field in the database.
	FieldCreated = "created"
	// FieldLastStartedTime holds the string denoting the last_started_time field in the database.
	FieldLastStartedTime = "last_started_time"
	// FieldLastResultTime holds the string denoting the last_result_time field in the database.
	FieldLastResultTime = "last_result_time"
	// FieldLastResultStatus holds the string denoting the last_result_status field in the database.
	FieldLastResultStatus = "last_result_status"
	// FieldLastDownloadedTime holds the string denoting the last_downloaded_time field in the database.
	FieldLastDownloadedTime = "last_downloaded_time"
	// Table holds the table name of the test in the database.
	Table = "tests"
)

// Columns holds all SQL columns for test fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldVersion,
	FieldState,
	FieldTestParams,
	FieldTimeout,
	FieldSchedulingInterval,
	FieldSchedulingFrom,
	FieldSchedulingUntil,
	FieldRecoveryInterval,
	FieldRecoveryAttemptLimit,
	FieldKeyRo,
	FieldKeyRw,
	FieldCreated,
	FieldLastStartedTime,
	FieldLastResultTime,
	FieldLastResultStatus,
	FieldLastDownloadedTime,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
)

// State defines the type for the "state" enum field.
type State string

// State values.
const (
	StateEnabled       State = "enabled"
	StateDisabled      State = "disabled"
	StateDeleted       State = "deleted"
	StateMigratingFrom State = "migrating_from"
	StateMigratingTo   State = "migrating_to"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateEnabled, StateDisabled, StateDeleted, StateMigratingFrom, StateMigratingTo:
		return nil
	default:
		return fmt.Errorf("test: invalid enum value for state field: %q", s)
	}
}

// LastResultStatus defines the type for the "last_result_status" enum field.
type LastResultStatus string

// LastResultStatus values.
const (
	LastResultStatusSuccess    LastResultStatus = "success"
	LastResultStatusTerminated LastResultStatus = "terminated"
	LastResultStatusError      LastResultStatus = "error"
	LastResultStatusCrashed    LastResultStatus = "crashed"
)

func (lrs LastResultStatus) String() string {
	return string(lrs)
}

// LastResultStatusValidator is a validator for the "last_result_status" field enum values. It is called by the builders before save.
func LastResultStatusValidator(lrs LastResultStatus) error {
	switch lrs {
	case LastResultStatusSuccess, LastResultStatusTerminated, LastResultStatusError, LastResultStatusCrashed:
		return nil
	default:
		return fmt.Errorf("test: invalid enum value for last_result_status field: %q", lrs)
	}
}

// OrderOption defines the ordering options for the Test queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByTestParams orders the results by the test_params field.
func ByTestParams(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestParams, opts...).ToFunc()
}

// ByTimeout orders the results by the timeout field.
func ByTimeout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeout, opts...).ToFunc()
}

// BySchedulingInterval orders the results by the scheduling_interval field.
func BySchedulingInterval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulingInterval, opts...).ToFunc()
}

// BySchedulingFrom orders the results by the scheduling_from field.
func BySchedulingFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulingFrom, opts...).ToFunc()
}

// BySchedulingUntil orders the results by the scheduling_until field.
func BySchedulingUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedulingUntil, opts...).ToFunc()
}

// ByRecoveryInterval orders the results by the recovery_interval field.
func ByRecoveryInterval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryInterval, opts...).ToFunc()
}

// ByRecoveryAttemptLimit orders the results by the recovery_attempt_limit field.
func ByRecoveryAttemptLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttemptLimit, opts...).ToFunc()
}

// ByKeyRo orders the results by the key_ro field.
func ByKeyRo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyRo, opts...).ToFunc()
}

// ByKeyRw orders the results by the key_rw field.
func ByKeyRw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyRw, opts...).ToFunc()
}

// ByCreated orders the results by the created field.
func ByCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreated, opts...).ToFunc()
}

// ByLastStartedTime orders the results by the last_started_time field.
func ByLastStartedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStartedTime, opts...).ToFunc()
}

// ByLastResultTime orders the results by the last_result_time field.
func ByLastResultTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResultTime, opts...).ToFunc()
}

// ByLastResultStatus orders the results by the last_result_status field.
func ByLastResultStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResultStatus, opts...).ToFunc()
}

// ByLastDownloadedTime orders the results by the last_downloaded_time field.
func ByLastDownloadedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDownloadedTime, opts...).ToFunc()
}
