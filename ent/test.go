// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/test"
)

// Test is the model entity for the Test schema.
type Test struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Probe name resolved through the probe registry (e.g. 'network.icmp.ping')
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Bumped by one every time test_params changes; old params go to old_params
	Version int `json:"version,omitempty"`
	// State holds the value of the "state" field.
	State test.State `json:"state,omitempty"`
	// Opaque JSON blob interpreted by the probe
	TestParams string `json:"test_params,omitempty"`
	// Per-run deadline in seconds
	Timeout int `json:"timeout,omitempty"`
	// Seconds between periodic runs; absent or 0 means one-shot
	SchedulingInterval *int `json:"scheduling_interval,omitempty"`
	// SchedulingFrom holds the value of the "scheduling_from" field.
	SchedulingFrom *time.Time `json:"scheduling_from,omitempty"`
	// SchedulingUntil holds the value of the "scheduling_until" field.
	SchedulingUntil *time.Time `json:"scheduling_until,omitempty"`
	// Seconds to wait before a recovery run after a failure
	RecoveryInterval *int `json:"recovery_interval,omitempty"`
	// 0 disables recovery, absent means unlimited attempts
	RecoveryAttemptLimit *int `json:"recovery_attempt_limit,omitempty"`
	// Authorization key for read access to this test
	KeyRo string `json:"key_ro,omitempty"`
	// Authorization key for changing this test
	KeyRw string `json:"key_rw,omitempty"`
	// Created holds the value of the "created" field.
	Created time.Time `json:"created,omitempty"`
	// LastStartedTime holds the value of the "last_started_time" field.
	LastStartedTime *time.Time `json:"last_started_time,omitempty"`
	// LastResultTime holds the value of the "last_result_time" field.
	LastResultTime *time.Time `json:"last_result_time,omitempty"`
	// LastResultStatus holds the value of the "last_result_status" field.
	LastResultStatus test.LastResultStatus `json:"last_result_status,omitempty"`
	// LastDownloadedTime holds the value of the "last_downloaded_time" field.
	LastDownloadedTime *time.Time `json:"last_downloaded_time,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Test) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case test.FieldID, test.FieldVersion, test.FieldTimeout, test.FieldSchedulingInterval, test.FieldRecoveryInterval, test.FieldRecoveryAttemptLimit:
			values[i] = new(sql.NullInt64)
		case test.FieldName, test.FieldDescription, test.FieldState, test.FieldTestParams, test.FieldKeyRo, test.FieldKeyRw, test.FieldLastResultStatus:
			values[i] = new(sql.NullString)
		case test.FieldSchedulingFrom, test.FieldSchedulingUntil, test.FieldCreated, test.FieldLastStartedTime, test.FieldLastResultTime, test.FieldLastDownloadedTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Test fields.
func (_m *Test) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case test.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case test.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case test.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case test.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case test.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = test.State(value.String)
			}
		case test.FieldTestParams:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_params", values[i])
			} else if value.Valid {
				_m.TestParams = value.String
			}
		case test.FieldTimeout:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout", values[i])
			} else if value.Valid {
				_m.Timeout = int(value.Int64)
			}
		case test.FieldSchedulingInterval:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scheduling_interval", values[i])
			} else if value.Valid {
				_m.SchedulingInterval = new(int)
				*_m.SchedulingInterval = int(value.Int64)
			}
		case test.FieldSchedulingFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduling_from", values[i])
			} else if value.Valid {
				_m.SchedulingFrom = new(time.Time)
				*_m.SchedulingFrom = value.Time
			}
		case test.FieldSchedulingUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduling_until", values[i])
			} else if value.Valid {
				_m.SchedulingUntil = new(time.Time)
				*_m.SchedulingUntil = value.Time
			}
		case test.FieldRecoveryInterval:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_interval", values[i])
			} else if value.Valid {
				_m.RecoveryInterval = new(int)
				*_m.RecoveryInterval = int(value.Int64)
			}
		case test.FieldRecoveryAttemptLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_attempt_limit", values[i])
			} else if value.Valid {
				_m.RecoveryAttemptLimit = new(int)
				*_m.RecoveryAttemptLimit = int(value.Int64)
			}
		case test.FieldKeyRo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_ro", values[i])
			} else if value.Valid {
				_m.KeyRo = value.String
			}
		case test.FieldKeyRw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_rw", values[i])
			} else if value.Valid {
				_m.KeyRw = value.String
			}
		case test.FieldCreated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created", values[i])
			} else if value.Valid {
				_m.Created = value.Time
			}
		case test.FieldLastStartedTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_started_time", values[i])
			} else if value.Valid {
				_m.LastStartedTime = new(time.Time)
				*_m.LastStartedTime = value.Time
			}
		case test.FieldLastResultTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_result_time", values[i])
			} else if value.Valid {
				_m.LastResultTime = new(time.Time)
				*_m.LastResultTime = value.Time
			}
		case test.FieldLastResultStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_result_status", values[i])
			} else if value.Valid {
				_m.LastResultStatus = test.LastResultStatus(value.String)
			}
		case test.FieldLastDownloadedTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_downloaded_time", values[i])
			} else if value.Valid {
				_m.LastDownloadedTime = new(time.Time)
				*_m.LastDownloadedTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Test.
// This includes values selected through modifiers, order, etc.
func (_m *Test) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Test.
// Note that you need to call Test.Unwrap() before calling this method if this Test
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Test) Update() *TestUpdateOne {
	return NewTestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Test entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Test) Unwrap() *Test {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Test is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Test) String() string {
	var builder strings.Builder
	builder.WriteString("Test(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("test_params=")
	builder.WriteString(_m.TestParams)
	builder.WriteString(", ")
	builder.WriteString("timeout=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timeout))
	builder.WriteString(", ")
	if v := _m.SchedulingInterval; v != nil {
		builder.WriteString("scheduling_interval=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SchedulingFrom; v != nil {
		builder.WriteString("scheduling_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SchedulingUntil; v != nil {
		builder.WriteString("scheduling_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecoveryInterval; v != nil {
		builder.WriteString("recovery_interval=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RecoveryAttemptLimit; v != nil {
		builder.WriteString("recovery_attempt_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("key_ro=")
	builder.WriteString(_m.KeyRo)
	builder.WriteString(", ")
	builder.WriteString("key_rw=")
	builder.WriteString(_m.KeyRw)
	builder.WriteString(", ")
	builder.WriteString("created=")
	builder.WriteString(_m.Created.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastStartedTime; v != nil {
		builder.WriteString("last_started_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastResultTime; v != nil {
		builder.WriteString("last_result_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_result_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastResultStatus))
	builder.WriteString(", ")
	if v := _m.LastDownloadedTime; v != nil {
		builder.WriteString("last_downloaded_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tests is a parsable slice of Test.
type Tests []*Test
