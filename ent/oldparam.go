// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/oldparam"
)

// OldParam is the model entity for the OldParam schema.
type OldParam struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IDTest holds the value of the "id_test" field.
	IDTest int `json:"id_test,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// TestParams holds the value of the "test_params" field.
	TestParams string `json:"test_params,omitempty"`
	// Changed holds the value of the "changed" field.
	Changed      time.Time `json:"changed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OldParam) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case oldparam.FieldID, oldparam.FieldIDTest, oldparam.FieldVersion:
			values[i] = new(sql.NullInt64)
		case oldparam.FieldTestParams:
			values[i] = new(sql.NullString)
		case oldparam.FieldChanged:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OldParam fields.
func (_m *OldParam) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case oldparam.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case oldparam.FieldIDTest:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field id_test", values[i])
			} else if value.Valid {
				_m.IDTest = int(value.Int64)
			}
		case oldparam.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case oldparam.FieldTestParams:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_params", values[i])
			} else if value.Valid {
				_m.TestParams = value.String
			}
		case oldparam.FieldChanged:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field changed", values[i])
			} else if value.Valid {
				_m.Changed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OldParam.
// This includes values selected through modifiers, order, etc.
func (_m *OldParam) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OldParam.
// Note that you need to call OldParam.Unwrap() before calling this method if this OldParam
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OldParam) Update() *OldParamUpdateOne {
	return NewOldParamClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OldParam entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OldParam) Unwrap() *OldParam {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OldParam is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OldParam) String() string {
	var builder strings.Builder
	builder.WriteString("OldParam(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("id_test=")
	builder.WriteString(fmt.Sprintf("%v", _m.IDTest))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("test_params=")
	builder.WriteString(_m.TestParams)
	builder.WriteString(", ")
	builder.WriteString("changed=")
	builder.WriteString(_m.Changed.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OldParams is a parsable slice of OldParam.
type OldParams []*OldParam
