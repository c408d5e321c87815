// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/inventor-project/symon/ent/multiresult"
	"github.com/inventor-project/symon/ent/predicate"
)

// MultiResultUpdate is the builder for updating MultiResult entities.
type MultiResultUpdate struct {
	config
	hooks    []Hook
	mutation *MultiResultMutation
}

// Where appends a list predicates to the MultiResultUpdate builder.
func (_u *MultiResultUpdate) Where(ps ...predicate.MultiResult) *MultiResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrchestratorName sets the "orchestrator_name" field.
func (_u *MultiResultUpdate) SetOrchestratorName(v string) *MultiResultUpdate {
	_u.mutation.SetOrchestratorName(v)
	return _u
}

// SetNillableOrchestratorName sets the "orchestrator_name" field if the given value is not nil.
func (_u *MultiResultUpdate) SetNillableOrchestratorName(v *string) *MultiResultUpdate {
	if v != nil {
		_u.SetOrchestratorName(*v)
	}
	return _u
}

// SetTestIds sets the "test_ids" field.
func (_u *MultiResultUpdate) SetTestIds(v []int) *MultiResultUpdate {
	_u.mutation.SetTestIds(v)
	return _u
}

// AppendTestIds appends value to the "test_ids" field.
func (_u *MultiResultUpdate) AppendTestIds(v []int) *MultiResultUpdate {
	_u.mutation.AppendTestIds(v)
	return _u
}

// SetKey sets the "key" field.
func (_u *MultiResultUpdate) SetKey(v string) *MultiResultUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *MultiResultUpdate) SetNillableKey(v *string) *MultiResultUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetLastUsedTime sets the "last_used_time" field.
func (_u *MultiResultUpdate) SetLastUsedTime(v time.Time) *MultiResultUpdate {
	_u.mutation.SetLastUsedTime(v)
	return _u
}

// SetNillableLastUsedTime sets the "last_used_time" field if the given value is not nil.
func (_u *MultiResultUpdate) SetNillableLastUsedTime(v *time.Time) *MultiResultUpdate {
	if v != nil {
		_u.SetLastUsedTime(*v)
	}
	return _u
}

// ClearLastUsedTime clears the value of the "last_used_time" field.
func (_u *MultiResultUpdate) ClearLastUsedTime() *MultiResultUpdate {
	_u.mutation.ClearLastUsedTime()
	return _u
}

// Mutation returns the MultiResultMutation object of the builder.
func (_u *MultiResultUpdate) Mutation() *MultiResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MultiResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MultiResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MultiResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MultiResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MultiResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(multiresult.Table, multiresult.Columns, sqlgraph.NewFieldSpec(multiresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrchestratorName(); ok {
		_spec.SetField(multiresult.FieldOrchestratorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestIds(); ok {
		_spec.SetField(multiresult.FieldTestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, multiresult.FieldTestIds, value)
		})
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(multiresult.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUsedTime(); ok {
		_spec.SetField(multiresult.FieldLastUsedTime, field.TypeTime, value)
	}
	if _u.mutation.LastUsedTimeCleared() {
		_spec.ClearField(multiresult.FieldLastUsedTime, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{multiresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MultiResultUpdateOne is the builder for updating a single MultiResult entity.
type MultiResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MultiResultMutation
}

// SetOrchestratorName sets the "orchestrator_name" field.
func (_u *MultiResultUpdateOne) SetOrchestratorName(v string) *MultiResultUpdateOne {
	_u.mutation.SetOrchestratorName(v)
	return _u
}

// SetNillableOrchestratorName sets the "orchestrator_name" field if the given value is not nil.
func (_u *MultiResultUpdateOne) SetNillableOrchestratorName(v *string) *MultiResultUpdateOne {
	if v != nil {
		_u.SetOrchestratorName(*v)
	}
	return _u
}

// SetTestIds sets the "test_ids" field.
func (_u *MultiResultUpdateOne) SetTestIds(v []int) *MultiResultUpdateOne {
	_u.mutation.SetTestIds(v)
	return _u
}

// AppendTestIds appends value to the "test_ids" field.
func (_u *MultiResultUpdateOne) AppendTestIds(v []int) *MultiResultUpdateOne {
	_u.mutation.AppendTestIds(v)
	return _u
}

// SetKey sets the "key" field.
func (_u *MultiResultUpdateOne) SetKey(v string) *MultiResultUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *MultiResultUpdateOne) SetNillableKey(v *string) *MultiResultUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetLastUsedTime sets the "last_used_time" field.
func (_u *MultiResultUpdateOne) SetLastUsedTime(v time.Time) *MultiResultUpdateOne {
	_u.mutation.SetLastUsedTime(v)
	return _u
}

// SetNillableLastUsedTime sets the "last_used_time" field if the given value is not nil.
func (_u *MultiResultUpdateOne) SetNillableLastUsedTime(v *time.Time) *MultiResultUpdateOne {
	if v != nil {
		_u.SetLastUsedTime(*v)
	}
	return _u
}

// ClearLastUsedTime clears the value of the "last_used_time" field.
func (_u *MultiResultUpdateOne) ClearLastUsedTime() *MultiResultUpdateOne {
	_u.mutation.ClearLastUsedTime()
	return _u
}

// Mutation returns the MultiResultMutation object of the builder.
func (_u *MultiResultUpdateOne) Mutation() *MultiResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the MultiResultUpdate builder.
func (_u *MultiResultUpdateOne) Where(ps ...predicate.MultiResult) *MultiResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MultiResultUpdateOne) Select(field string, fields ...string) *MultiResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MultiResult entity.
func (_u *MultiResultUpdateOne) Save(ctx context.Context) (*MultiResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MultiResultUpdateOne) SaveX(ctx context.Context) *MultiResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MultiResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MultiResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MultiResultUpdateOne) sqlSave(ctx context.Context) (_node *MultiResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(multiresult.Table, multiresult.Columns, sqlgraph.NewFieldSpec(multiresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MultiResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, multiresult.FieldID)
		for _, f := range fields {
			if !multiresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != multiresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrchestratorName(); ok {
		_spec.SetField(multiresult.FieldOrchestratorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestIds(); ok {
		_spec.SetField(multiresult.FieldTestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, multiresult.FieldTestIds, value)
		})
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(multiresult.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastUsedTime(); ok {
		_spec.SetField(multiresult.FieldLastUsedTime, field.TypeTime, value)
	}
	if _u.mutation.LastUsedTimeCleared() {
		_spec.ClearField(multiresult.FieldLastUsedTime, field.TypeTime)
	}
	_node = &MultiResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{multiresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
