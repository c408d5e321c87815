// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inventor-project/symon/ent/predicate"
	"github.com/inventor-project/symon/ent/stat"
)

// StatUpdate is the builder for updating Stat entities.
type StatUpdate struct {
	config
	hooks    []Hook
	mutation *StatMutation
}

// Where appends a list predicates to the StatUpdate builder.
func (_u *StatUpdate) Where(ps ...predicate.Stat) *StatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTime sets the "time" field.
func (_u *StatUpdate) SetTime(v time.Time) *StatUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *StatUpdate) SetNillableTime(v *time.Time) *StatUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetTableName sets the "table_name" field.
func (_u *StatUpdate) SetTableName(v string) *StatUpdate {
	_u.mutation.SetTableName(v)
	return _u
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (_u *StatUpdate) SetNillableTableName(v *string) *StatUpdate {
	if v != nil {
		_u.SetTableName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *StatUpdate) SetCategory(v string) *StatUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *StatUpdate) SetNillableCategory(v *string) *StatUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *StatUpdate) SetValue(v int) *StatUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *StatUpdate) SetNillableValue(v *int) *StatUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *StatUpdate) AddValue(v int) *StatUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the StatMutation object of the builder.
func (_u *StatUpdate) Mutation() *StatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stat.Table, stat.Columns, sqlgraph.NewFieldSpec(stat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(stat.FieldTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TableName(); ok {
		_spec.SetField(stat.FieldTableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(stat.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(stat.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(stat.FieldValue, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatUpdateOne is the builder for updating a single Stat entity.
type StatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatMutation
}

// SetTime sets the "time" field.
func (_u *StatUpdateOne) SetTime(v time.Time) *StatUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *StatUpdateOne) SetNillableTime(v *time.Time) *StatUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetTableName sets the "table_name" field.
func (_u *StatUpdateOne) SetTableName(v string) *StatUpdateOne {
	_u.mutation.SetTableName(v)
	return _u
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (_u *StatUpdateOne) SetNillableTableName(v *string) *StatUpdateOne {
	if v != nil {
		_u.SetTableName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *StatUpdateOne) SetCategory(v string) *StatUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *StatUpdateOne) SetNillableCategory(v *string) *StatUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *StatUpdateOne) SetValue(v int) *StatUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *StatUpdateOne) SetNillableValue(v *int) *StatUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *StatUpdateOne) AddValue(v int) *StatUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the StatMutation object of the builder.
func (_u *StatUpdateOne) Mutation() *StatMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatUpdate builder.
func (_u *StatUpdateOne) Where(ps ...predicate.Stat) *StatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatUpdateOne) Select(field string, fields ...string) *StatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stat entity.
func (_u *StatUpdateOne) Save(ctx context.Context) (*Stat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatUpdateOne) SaveX(ctx context.Context) *Stat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StatUpdateOne) sqlSave(ctx context.Context) (_node *Stat, err error) {
	_spec := sqlgraph.NewUpdateSpec(stat.Table, stat.Columns, sqlgraph.NewFieldSpec(stat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stat.FieldID)
		for _, f := range fields {
			if !stat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stat.FieldID {
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
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(stat.FieldTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TableName(); ok {
		_spec.SetField(stat.FieldTableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(stat.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(stat.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(stat.FieldValue, field.TypeInt, value)
	}
	_node = &Stat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
