// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/result"
)

// Result is the model entity for the Result schema.
type Result struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IDTest holds the value of the "id_test" field.
	IDTest int `json:"id_test,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Planned holds the value of the "planned" field.
	Planned time.Time `json:"planned,omitempty"`
	// Absent for runs that never spawned
	Started *time.Time `json:"started,omitempty"`
	// Finished holds the value of the "finished" field.
	Finished time.Time `json:"finished,omitempty"`
	// Status holds the value of the "status" field.
	Status result.Status `json:"status,omitempty"`
	// RecoveryAttempt holds the value of the "recovery_attempt" field.
	RecoveryAttempt int `json:"recovery_attempt,omitempty"`
	// Probe output JSON; empty for terminated and crashed runs
	Data         string `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Result) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case result.FieldID, result.FieldIDTest, result.FieldVersion, result.FieldRecoveryAttempt:
			values[i] = new(sql.NullInt64)
		case result.FieldStatus, result.FieldData:
			values[i] = new(sql.NullString)
		case result.FieldPlanned, result.FieldStarted, result.FieldFinished:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Result fields.
func (_m *Result) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case result.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case result.FieldIDTest:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field id_test", values[i])
			} else if value.Valid {
				_m.IDTest = int(value.Int64)
			}
		case result.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case result.FieldPlanned:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field planned", values[i])
			} else if value.Valid {
				_m.Planned = value.Time
			}
		case result.FieldStarted:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started", values[i])
			} else if value.Valid {
				_m.Started = new(time.Time)
				*_m.Started = value.Time
			}
		case result.FieldFinished:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished", values[i])
			} else if value.Valid {
				_m.Finished = value.Time
			}
		case result.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = result.Status(value.String)
			}
		case result.FieldRecoveryAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_attempt", values[i])
			} else if value.Valid {
				_m.RecoveryAttempt = int(value.Int64)
			}
		case result.FieldData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value.Valid {
				_m.Data = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Result.
// This includes values selected through modifiers, order, etc.
func (_m *Result) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Result.
// Note that you need to call Result.Unwrap() before calling this method if this Result
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Result) Update() *ResultUpdateOne {
	return NewResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Result entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Result) Unwrap() *Result {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Result is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Result) String() string {
	var builder strings.Builder
	builder.WriteString("Result(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("id_test=")
	builder.WriteString(fmt.Sprintf("%v", _m.IDTest))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("planned=")
	builder.WriteString(_m.Planned.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Started; v != nil {
		builder.WriteString("started=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("finished=")
	builder.WriteString(_m.Finished.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("recovery_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryAttempt))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(_m.Data)
	builder.WriteByte(')')
	return builder.String()
}

// Results is a parsable slice of Result.
type Results []*Result
