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
	"github.com/inventor-project/symon/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIDTest sets the "id_test" field.
func (_u *RunUpdate) SetIDTest(v int) *RunUpdate {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *RunUpdate) SetNillableIDTest(v *int) *RunUpdate {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *RunUpdate) AddIDTest(v int) *RunUpdate {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *RunUpdate) SetVersion(v int) *RunUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RunUpdate) SetNillableVersion(v *int) *RunUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RunUpdate) AddVersion(v int) *RunUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetState sets the "state" field.
func (_u *RunUpdate) SetState(v run.State) *RunUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunUpdate) SetNillableState(v *run.State) *RunUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *RunUpdate) SetPid(v int) *RunUpdate {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePid(v *int) *RunUpdate {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *RunUpdate) AddPid(v int) *RunUpdate {
	_u.mutation.AddPid(v)
	return _u
}

// ClearPid clears the value of the "pid" field.
func (_u *RunUpdate) ClearPid() *RunUpdate {
	_u.mutation.ClearPid()
	return _u
}

// SetPlanned sets the "planned" field.
func (_u *RunUpdate) SetPlanned(v time.Time) *RunUpdate {
	_u.mutation.SetPlanned(v)
	return _u
}

// SetNillablePlanned sets the "planned" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePlanned(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetPlanned(*v)
	}
	return _u
}

// SetStarted sets the "started" field.
func (_u *RunUpdate) SetStarted(v time.Time) *RunUpdate {
	_u.mutation.SetStarted(v)
	return _u
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStarted(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStarted(*v)
	}
	return _u
}

// ClearStarted clears the value of the "started" field.
func (_u *RunUpdate) ClearStarted() *RunUpdate {
	_u.mutation.ClearStarted()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *RunUpdate) SetDeadline(v time.Time) *RunUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *RunUpdate) SetNillableDeadline(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *RunUpdate) ClearDeadline() *RunUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *RunUpdate) SetRecoveryAttempt(v int) *RunUpdate {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRecoveryAttempt(v *int) *RunUpdate {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *RunUpdate) AddRecoveryAttempt(v int) *RunUpdate {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(run.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(run.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(run.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(run.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(run.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(run.FieldPid, field.TypeInt, value)
	}
	if _u.mutation.PidCleared() {
		_spec.ClearField(run.FieldPid, field.TypeInt)
	}
	if value, ok := _u.mutation.Planned(); ok {
		_spec.SetField(run.FieldPlanned, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Started(); ok {
		_spec.SetField(run.FieldStarted, field.TypeTime, value)
	}
	if _u.mutation.StartedCleared() {
		_spec.ClearField(run.FieldStarted, field.TypeTime)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(run.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(run.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(run.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(run.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetIDTest sets the "id_test" field.
func (_u *RunUpdateOne) SetIDTest(v int) *RunUpdateOne {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableIDTest(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *RunUpdateOne) AddIDTest(v int) *RunUpdateOne {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *RunUpdateOne) SetVersion(v int) *RunUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableVersion(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RunUpdateOne) AddVersion(v int) *RunUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetState sets the "state" field.
func (_u *RunUpdateOne) SetState(v run.State) *RunUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableState(v *run.State) *RunUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *RunUpdateOne) SetPid(v int) *RunUpdateOne {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePid(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *RunUpdateOne) AddPid(v int) *RunUpdateOne {
	_u.mutation.AddPid(v)
	return _u
}

// ClearPid clears the value of the "pid" field.
func (_u *RunUpdateOne) ClearPid() *RunUpdateOne {
	_u.mutation.ClearPid()
	return _u
}

// SetPlanned sets the "planned" field.
func (_u *RunUpdateOne) SetPlanned(v time.Time) *RunUpdateOne {
	_u.mutation.SetPlanned(v)
	return _u
}

// SetNillablePlanned sets the "planned" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePlanned(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetPlanned(*v)
	}
	return _u
}

// SetStarted sets the "started" field.
func (_u *RunUpdateOne) SetStarted(v time.Time) *RunUpdateOne {
	_u.mutation.SetStarted(v)
	return _u
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStarted(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStarted(*v)
	}
	return _u
}

// ClearStarted clears the value of the "started" field.
func (_u *RunUpdateOne) ClearStarted() *RunUpdateOne {
	_u.mutation.ClearStarted()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *RunUpdateOne) SetDeadline(v time.Time) *RunUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableDeadline(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *RunUpdateOne) ClearDeadline() *RunUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *RunUpdateOne) SetRecoveryAttempt(v int) *RunUpdateOne {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRecoveryAttempt(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *RunUpdateOne) AddRecoveryAttempt(v int) *RunUpdateOne {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
		_spec.SetField(run.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(run.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(run.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(run.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(run.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(run.FieldPid, field.TypeInt, value)
	}
	if _u.mutation.PidCleared() {
		_spec.ClearField(run.FieldPid, field.TypeInt)
	}
	if value, ok := _u.mutation.Planned(); ok {
		_spec.SetField(run.FieldPlanned, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Started(); ok {
		_spec.SetField(run.FieldStarted, field.TypeTime, value)
	}
	if _u.mutation.StartedCleared() {
		_spec.ClearField(run.FieldStarted, field.TypeTime)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(run.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(run.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(run.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(run.FieldRecoveryAttempt, field.TypeInt, value)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
