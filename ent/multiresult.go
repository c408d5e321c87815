// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/multiresult"
)

// MultiResult is the model entity for the MultiResult schema.
type MultiResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// OrchestratorName holds the value of the "orchestrator_name" field.
	OrchestratorName string `json:"orchestrator_name,omitempty"`
	// TestIds holds the value of the "test_ids" field.
	TestIds []int `json:"test_ids,omitempty"`
	// Authorization key for downloading through this view
	Key string `json:"key,omitempty"`
	// LastUsedTime holds the value of the "last_used_time" field.
	LastUsedTime *time.Time `json:"last_used_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MultiResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case multiresult.FieldTestIds:
			values[i] = new([]byte)
		case multiresult.FieldID:
			values[i] = new(sql.NullInt64)
		case multiresult.FieldOrchestratorName, multiresult.FieldKey:
			values[i] = new(sql.NullString)
		case multiresult.FieldLastUsedTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MultiResult fields.
func (_m *MultiResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case multiresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case multiresult.FieldOrchestratorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestrator_name", values[i])
			} else if value.Valid {
				_m.OrchestratorName = value.String
			}
		case multiresult.FieldTestIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestIds); err != nil {
					return fmt.Errorf("unmarshal field test_ids: %w", err)
				}
			}
		case multiresult.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case multiresult.FieldLastUsedTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_time", values[i])
			} else if value.Valid {
				_m.LastUsedTime = new(time.Time)
				*_m.LastUsedTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MultiResult.
// This includes values selected through modifiers, order, etc.
func (_m *MultiResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MultiResult.
// Note that you need to call MultiResult.Unwrap() before calling this method if this MultiResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MultiResult) Update() *MultiResultUpdateOne {
	return NewMultiResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MultiResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MultiResult) Unwrap() *MultiResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MultiResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MultiResult) String() string {
	var builder strings.Builder
	builder.WriteString("MultiResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("orchestrator_name=")
	builder.WriteString(_m.OrchestratorName)
	builder.WriteString(", ")
	builder.WriteString("test_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestIds))
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	if v := _m.LastUsedTime; v != nil {
		builder.WriteString("last_used_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MultiResults is a parsable slice of MultiResult.
type MultiResults []*MultiResult
