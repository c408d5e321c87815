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
	"github.com/inventor-project/symon/ent/event"
	"github.com/inventor-project/symon/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIDTest sets the "id_test" field.
func (_u *EventUpdate) SetIDTest(v int) *EventUpdate {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIDTest(v *int) *EventUpdate {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *EventUpdate) AddIDTest(v int) *EventUpdate {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *EventUpdate) SetRunAt(v time.Time) *EventUpdate {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRunAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EventUpdate) SetSource(v event.Source) *EventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSource(v *event.Source) *EventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *EventUpdate) SetRecoveryAttempt(v int) *EventUpdate {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRecoveryAttempt(v *int) *EventUpdate {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *EventUpdate) AddRecoveryAttempt(v int) *EventUpdate {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := event.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Event.source": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(event.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(event.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(event.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(event.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(event.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(event.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetIDTest sets the "id_test" field.
func (_u *EventUpdateOne) SetIDTest(v int) *EventUpdateOne {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIDTest(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *EventUpdateOne) AddIDTest(v int) *EventUpdateOne {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetRunAt sets the "run_at" field.
func (_u *EventUpdateOne) SetRunAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetRunAt(v)
	return _u
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRunAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetRunAt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EventUpdateOne) SetSource(v event.Source) *EventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSource(v *event.Source) *EventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *EventUpdateOne) SetRecoveryAttempt(v int) *EventUpdateOne {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRecoveryAttempt(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *EventUpdateOne) AddRecoveryAttempt(v int) *EventUpdateOne {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := event.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Event.source": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(event.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(event.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAt(); ok {
		_spec.SetField(event.FieldRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(event.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(event.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(event.FieldRecoveryAttempt, field.TypeInt, value)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
