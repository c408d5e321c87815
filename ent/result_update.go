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
	"github.com/inventor-project/symon/ent/result"
)

// ResultUpdate is the builder for updating Result entities.
type ResultUpdate struct {
	config
	hooks    []Hook
	mutation *ResultMutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdate) Where(ps ...predicate.Result) *ResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIDTest sets the "id_test" field.
func (_u *ResultUpdate) SetIDTest(v int) *ResultUpdate {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableIDTest(v *int) *ResultUpdate {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *ResultUpdate) AddIDTest(v int) *ResultUpdate {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResultUpdate) SetVersion(v int) *ResultUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableVersion(v *int) *ResultUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResultUpdate) AddVersion(v int) *ResultUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPlanned sets the "planned" field.
func (_u *ResultUpdate) SetPlanned(v time.Time) *ResultUpdate {
	_u.mutation.SetPlanned(v)
	return _u
}

// SetNillablePlanned sets the "planned" field if the given value is not nil.
func (_u *ResultUpdate) SetNillablePlanned(v *time.Time) *ResultUpdate {
	if v != nil {
		_u.SetPlanned(*v)
	}
	return _u
}

// SetStarted sets the "started" field.
func (_u *ResultUpdate) SetStarted(v time.Time) *ResultUpdate {
	_u.mutation.SetStarted(v)
	return _u
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableStarted(v *time.Time) *ResultUpdate {
	if v != nil {
		_u.SetStarted(*v)
	}
	return _u
}

// ClearStarted clears the value of the "started" field.
func (_u *ResultUpdate) ClearStarted() *ResultUpdate {
	_u.mutation.ClearStarted()
	return _u
}

// SetFinished sets the "finished" field.
func (_u *ResultUpdate) SetFinished(v time.Time) *ResultUpdate {
	_u.mutation.SetFinished(v)
	return _u
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableFinished(v *time.Time) *ResultUpdate {
	if v != nil {
		_u.SetFinished(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResultUpdate) SetStatus(v result.Status) *ResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableStatus(v *result.Status) *ResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *ResultUpdate) SetRecoveryAttempt(v int) *ResultUpdate {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableRecoveryAttempt(v *int) *ResultUpdate {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *ResultUpdate) AddRecoveryAttempt(v int) *ResultUpdate {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *ResultUpdate) SetData(v string) *ResultUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableData(v *string) *ResultUpdate {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ResultUpdate) ClearData() *ResultUpdate {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdate) Mutation() *ResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := result.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Result.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(result.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(result.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(result.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(result.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Planned(); ok {
		_spec.SetField(result.FieldPlanned, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Started(); ok {
		_spec.SetField(result.FieldStarted, field.TypeTime, value)
	}
	if _u.mutation.StartedCleared() {
		_spec.ClearField(result.FieldStarted, field.TypeTime)
	}
	if value, ok := _u.mutation.Finished(); ok {
		_spec.SetField(result.FieldFinished, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(result.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(result.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(result.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeString, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(result.FieldData, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultUpdateOne is the builder for updating a single Result entity.
type ResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultMutation
}

// SetIDTest sets the "id_test" field.
func (_u *ResultUpdateOne) SetIDTest(v int) *ResultUpdateOne {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableIDTest(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *ResultUpdateOne) AddIDTest(v int) *ResultUpdateOne {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResultUpdateOne) SetVersion(v int) *ResultUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableVersion(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResultUpdateOne) AddVersion(v int) *ResultUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPlanned sets the "planned" field.
func (_u *ResultUpdateOne) SetPlanned(v time.Time) *ResultUpdateOne {
	_u.mutation.SetPlanned(v)
	return _u
}

// SetNillablePlanned sets the "planned" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillablePlanned(v *time.Time) *ResultUpdateOne {
	if v != nil {
		_u.SetPlanned(*v)
	}
	return _u
}

// SetStarted sets the "started" field.
func (_u *ResultUpdateOne) SetStarted(v time.Time) *ResultUpdateOne {
	_u.mutation.SetStarted(v)
	return _u
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableStarted(v *time.Time) *ResultUpdateOne {
	if v != nil {
		_u.SetStarted(*v)
	}
	return _u
}

// ClearStarted clears the value of the "started" field.
func (_u *ResultUpdateOne) ClearStarted() *ResultUpdateOne {
	_u.mutation.ClearStarted()
	return _u
}

// SetFinished sets the "finished" field.
func (_u *ResultUpdateOne) SetFinished(v time.Time) *ResultUpdateOne {
	_u.mutation.SetFinished(v)
	return _u
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableFinished(v *time.Time) *ResultUpdateOne {
	if v != nil {
		_u.SetFinished(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResultUpdateOne) SetStatus(v result.Status) *ResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableStatus(v *result.Status) *ResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *ResultUpdateOne) SetRecoveryAttempt(v int) *ResultUpdateOne {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableRecoveryAttempt(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *ResultUpdateOne) AddRecoveryAttempt(v int) *ResultUpdateOne {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *ResultUpdateOne) SetData(v string) *ResultUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableData(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ResultUpdateOne) ClearData() *ResultUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdateOne) Mutation() *ResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdateOne) Where(ps ...predicate.Result) *ResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultUpdateOne) Select(field string, fields ...string) *ResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Result entity.
func (_u *ResultUpdateOne) Save(ctx context.Context) (*Result, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdateOne) SaveX(ctx context.Context) *Result {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := result.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Result.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdateOne) sqlSave(ctx context.Context) (_node *Result, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Result.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, result.FieldID)
		for _, f := range fields {
			if !result.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != result.FieldID {
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
		_spec.SetField(result.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(result.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(result.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(result.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Planned(); ok {
		_spec.SetField(result.FieldPlanned, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Started(); ok {
		_spec.SetField(result.FieldStarted, field.TypeTime, value)
	}
	if _u.mutation.StartedCleared() {
		_spec.ClearField(result.FieldStarted, field.TypeTime)
	}
	if value, ok := _u.mutation.Finished(); ok {
		_spec.SetField(result.FieldFinished, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(result.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(result.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(result.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeString, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(result.FieldData, field.TypeString)
	}
	_node = &Result{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
