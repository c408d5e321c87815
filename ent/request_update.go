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
	"github.com/inventor-project/symon/ent/request"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIDTest sets the "id_test" field.
func (_u *RequestUpdate) SetIDTest(v int) *RequestUpdate {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIDTest(v *int) *RequestUpdate {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *RequestUpdate) AddIDTest(v int) *RequestUpdate {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RequestUpdate) SetReason(v request.Reason) *RequestUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableReason(v *request.Reason) *RequestUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *RequestUpdate) SetRecoveryAttempt(v int) *RequestUpdate {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRecoveryAttempt(v *int) *RequestUpdate {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *RequestUpdate) AddRecoveryAttempt(v int) *RequestUpdate {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// SetAddedTime sets the "added_time" field.
func (_u *RequestUpdate) SetAddedTime(v time.Time) *RequestUpdate {
	_u.mutation.SetAddedTime(v)
	return _u
}

// SetNillableAddedTime sets the "added_time" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableAddedTime(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetAddedTime(*v)
	}
	return _u
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := request.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Request.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(request.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(request.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(request.FieldReason, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(request.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(request.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTime(); ok {
		_spec.SetField(request.FieldAddedTime, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetIDTest sets the "id_test" field.
func (_u *RequestUpdateOne) SetIDTest(v int) *RequestUpdateOne {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIDTest(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *RequestUpdateOne) AddIDTest(v int) *RequestUpdateOne {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *RequestUpdateOne) SetReason(v request.Reason) *RequestUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableReason(v *request.Reason) *RequestUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *RequestUpdateOne) SetRecoveryAttempt(v int) *RequestUpdateOne {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRecoveryAttempt(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *RequestUpdateOne) AddRecoveryAttempt(v int) *RequestUpdateOne {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// SetAddedTime sets the "added_time" field.
func (_u *RequestUpdateOne) SetAddedTime(v time.Time) *RequestUpdateOne {
	_u.mutation.SetAddedTime(v)
	return _u
}

// SetNillableAddedTime sets the "added_time" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableAddedTime(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetAddedTime(*v)
	}
	return _u
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := request.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Request.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
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
		_spec.SetField(request.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(request.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(request.FieldReason, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(request.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(request.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTime(); ok {
		_spec.SetField(request.FieldAddedTime, field.TypeTime, value)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
