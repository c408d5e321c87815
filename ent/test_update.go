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
	"github.com/inventor-project/symon/ent/test"
)

// TestUpdate is the builder for updating Test entities.
type TestUpdate struct {
	config
	hooks    []Hook
	mutation *TestMutation
}

// Where appends a list predicates to the TestUpdate builder.
func (_u *TestUpdate) Where(ps ...predicate.Test) *TestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TestUpdate) SetName(v string) *TestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestUpdate) SetNillableName(v *string) *TestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestUpdate) SetDescription(v string) *TestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestUpdate) SetNillableDescription(v *string) *TestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TestUpdate) SetVersion(v int) *TestUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TestUpdate) SetNillableVersion(v *int) *TestUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TestUpdate) AddVersion(v int) *TestUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetState sets the "state" field.
func (_u *TestUpdate) SetState(v test.State) *TestUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TestUpdate) SetNillableState(v *test.State) *TestUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTestParams sets the "test_params" field.
func (_u *TestUpdate) SetTestParams(v string) *TestUpdate {
	_u.mutation.SetTestParams(v)
	return _u
}

// SetNillableTestParams sets the "test_params" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTestParams(v *string) *TestUpdate {
	if v != nil {
		_u.SetTestParams(*v)
	}
	return _u
}

// SetTimeout sets the "timeout" field.
func (_u *TestUpdate) SetTimeout(v int) *TestUpdate {
	_u.mutation.ResetTimeout()
	_u.mutation.SetTimeout(v)
	return _u
}

// SetNillableTimeout sets the "timeout" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTimeout(v *int) *TestUpdate {
	if v != nil {
		_u.SetTimeout(*v)
	}
	return _u
}

// AddTimeout adds value to the "timeout" field.
func (_u *TestUpdate) AddTimeout(v int) *TestUpdate {
	_u.mutation.AddTimeout(v)
	return _u
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (_u *TestUpdate) SetSchedulingInterval(v int) *TestUpdate {
	_u.mutation.ResetSchedulingInterval()
	_u.mutation.SetSchedulingInterval(v)
	return _u
}

// SetNillableSchedulingInterval sets the "scheduling_interval" field if the given value is not nil.
func (_u *TestUpdate) SetNillableSchedulingInterval(v *int) *TestUpdate {
	if v != nil {
		_u.SetSchedulingInterval(*v)
	}
	return _u
}

// AddSchedulingInterval adds value to the "scheduling_interval" field.
func (_u *TestUpdate) AddSchedulingInterval(v int) *TestUpdate {
	_u.mutation.AddSchedulingInterval(v)
	return _u
}

// ClearSchedulingInterval clears the value of the "scheduling_interval" field.
func (_u *TestUpdate) ClearSchedulingInterval() *TestUpdate {
	_u.mutation.ClearSchedulingInterval()
	return _u
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (_u *TestUpdate) SetSchedulingFrom(v time.Time) *TestUpdate {
	_u.mutation.SetSchedulingFrom(v)
	return _u
}

// SetNillableSchedulingFrom sets the "scheduling_from" field if the given value is not nil.
func (_u *TestUpdate) SetNillableSchedulingFrom(v *time.Time) *TestUpdate {
	if v != nil {
		_u.SetSchedulingFrom(*v)
	}
	return _u
}

// ClearSchedulingFrom clears the value of the "scheduling_from" field.
func (_u *TestUpdate) ClearSchedulingFrom() *TestUpdate {
	_u.mutation.ClearSchedulingFrom()
	return _u
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (_u *TestUpdate) SetSchedulingUntil(v time.Time) *TestUpdate {
	_u.mutation.SetSchedulingUntil(v)
	return _u
}

// SetNillableSchedulingUntil sets the "scheduling_until" field if the given value is not nil.
func (_u *TestUpdate) SetNillableSchedulingUntil(v *time.Time) *TestUpdate {
	if v != nil {
		_u.SetSchedulingUntil(*v)
	}
	return _u
}

// ClearSchedulingUntil clears the value of the "scheduling_until" field.
func (_u *TestUpdate) ClearSchedulingUntil() *TestUpdate {
	_u.mutation.ClearSchedulingUntil()
	return _u
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (_u *TestUpdate) SetRecoveryInterval(v int) *TestUpdate {
	_u.mutation.ResetRecoveryInterval()
	_u.mutation.SetRecoveryInterval(v)
	return _u
}

// SetNillableRecoveryInterval sets the "recovery_interval" field if the given value is not nil.
func (_u *TestUpdate) SetNillableRecoveryInterval(v *int) *TestUpdate {
	if v != nil {
		_u.SetRecoveryInterval(*v)
	}
	return _u
}

// AddRecoveryInterval adds value to the "recovery_interval" field.
func (_u *TestUpdate) AddRecoveryInterval(v int) *TestUpdate {
	_u.mutation.AddRecoveryInterval(v)
	return _u
}

// ClearRecoveryInterval clears the value of the "recovery_interval" field.
func (_u *TestUpdate) ClearRecoveryInterval() *TestUpdate {
	_u.mutation.ClearRecoveryInterval()
	return _u
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (_u *TestUpdate) SetRecoveryAttemptLimit(v int) *TestUpdate {
	_u.mutation.ResetRecoveryAttemptLimit()
	_u.mutation.SetRecoveryAttemptLimit(v)
	return _u
}

// SetNillableRecoveryAttemptLimit sets the "recovery_attempt_limit" field if the given value is not nil.
func (_u *TestUpdate) SetNillableRecoveryAttemptLimit(v *int) *TestUpdate {
	if v != nil {
		_u.SetRecoveryAttemptLimit(*v)
	}
	return _u
}

// AddRecoveryAttemptLimit adds value to the "recovery_attempt_limit" field.
func (_u *TestUpdate) AddRecoveryAttemptLimit(v int) *TestUpdate {
	_u.mutation.AddRecoveryAttemptLimit(v)
	return _u
}

// ClearRecoveryAttemptLimit clears the value of the "recovery_attempt_limit" field.
func (_u *TestUpdate) ClearRecoveryAttemptLimit() *TestUpdate {
	_u.mutation.ClearRecoveryAttemptLimit()
	return _u
}

// SetKeyRo sets the "key_ro" field.
func (_u *TestUpdate) SetKeyRo(v string) *TestUpdate {
	_u.mutation.SetKeyRo(v)
	return _u
}

// SetNillableKeyRo sets the "key_ro" field if the given value is not nil.
func (_u *TestUpdate) SetNillableKeyRo(v *string) *TestUpdate {
	if v != nil {
		_u.SetKeyRo(*v)
	}
	return _u
}

// SetKeyRw sets the "key_rw" field.
func (_u *TestUpdate) SetKeyRw(v string) *TestUpdate {
	_u.mutation.SetKeyRw(v)
	return _u
}

// SetNillableKeyRw sets the "key_rw" field if the given value is not nil.
func (_u *TestUpdate) SetNillableKeyRw(v *string) *TestUpdate {
	if v != nil {
		_u.SetKeyRw(*v)
	}
	return _u
}

// SetCreated sets the "created" field.
func (_u *TestUpdate) SetCreated(v time.Time) *TestUpdate {
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *TestUpdate) SetNillableCreated(v *time.Time) *TestUpdate {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// SetLastStartedTime sets the "last_started_time" field.
func (_u *TestUpdate) SetLastStartedTime(v time.Time) *TestUpdate {
	_u.mutation.SetLastStartedTime(v)
	return _u
}

// SetNillableLastStartedTime sets the "last_started_time" field if the given value is not nil.
func (_u *TestUpdate) SetNillableLastStartedTime(v *time.Time) *TestUpdate {
	if v != nil {
		_u.SetLastStartedTime(*v)
	}
	return _u
}

// ClearLastStartedTime clears the value of the "last_started_time" field.
func (_u *TestUpdate) ClearLastStartedTime() *TestUpdate {
	_u.mutation.ClearLastStartedTime()
	return _u
}

// SetLastResultTime sets the "last_result_time" field.
func (_u *TestUpdate) SetLastResultTime(v time.Time) *TestUpdate {
	_u.mutation.SetLastResultTime(v)
	return _u
}

// SetNillableLastResultTime sets the "last_result_time" field if the given value is not nil.
func (_u *TestUpdate) SetNillableLastResultTime(v *time.Time) *TestUpdate {
	if v != nil {
		_u.SetLastResultTime(*v)
	}
	return _u
}

// ClearLastResultTime clears the value of the "last_result_time" field.
func (_u *TestUpdate) ClearLastResultTime() *TestUpdate {
	_u.mutation.ClearLastResultTime()
	return _u
}

// SetLastResultStatus sets the "last_result_status" field.
func (_u *TestUpdate) SetLastResultStatus(v test.LastResultStatus) *TestUpdate {
	_u.mutation.SetLastResultStatus(v)
	return _u
}

// SetNillableLastResultStatus sets the "last_result_status" field if the given value is not nil.
func (_u *TestUpdate) SetNillableLastResultStatus(v *test.LastResultStatus) *TestUpdate {
	if v != nil {
		_u.SetLastResultStatus(*v)
	}
	return _u
}

// ClearLastResultStatus clears the value of the "last_result_status" field.
func (_u *TestUpdate) ClearLastResultStatus() *TestUpdate {
	_u.mutation.ClearLastResultStatus()
	return _u
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (_u *TestUpdate) SetLastDownloadedTime(v time.Time) *TestUpdate {
	_u.mutation.SetLastDownloadedTime(v)
	return _u
}

// SetNillableLastDownloadedTime sets the "last_downloaded_time" field if the given value is not nil.
func (_u *TestUpdate) SetNillableLastDownloadedTime(v *time.Time) *TestUpdate {
	if v != nil {
		_u.SetLastDownloadedTime(*v)
	}
	return _u
}

// ClearLastDownloadedTime clears the value of the "last_downloaded_time" field.
func (_u *TestUpdate) ClearLastDownloadedTime() *TestUpdate {
	_u.mutation.ClearLastDownloadedTime()
	return _u
}

// Mutation returns the TestMutation object of the builder.
func (_u *TestUpdate) Mutation() *TestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := test.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Test.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastResultStatus(); ok {
		if err := test.LastResultStatusValidator(v); err != nil {
			return &ValidationError{Name: "last_result_status", err: fmt.Errorf(`ent: validator failed for field "Test.last_result_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(test.Table, test.Columns, sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(test.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(test.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(test.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(test.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(test.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestParams(); ok {
		_spec.SetField(test.FieldTestParams, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timeout(); ok {
		_spec.SetField(test.FieldTimeout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeout(); ok {
		_spec.AddField(test.FieldTimeout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SchedulingInterval(); ok {
		_spec.SetField(test.FieldSchedulingInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchedulingInterval(); ok {
		_spec.AddField(test.FieldSchedulingInterval, field.TypeInt, value)
	}
	if _u.mutation.SchedulingIntervalCleared() {
		_spec.ClearField(test.FieldSchedulingInterval, field.TypeInt)
	}
	if value, ok := _u.mutation.SchedulingFrom(); ok {
		_spec.SetField(test.FieldSchedulingFrom, field.TypeTime, value)
	}
	if _u.mutation.SchedulingFromCleared() {
		_spec.ClearField(test.FieldSchedulingFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.SchedulingUntil(); ok {
		_spec.SetField(test.FieldSchedulingUntil, field.TypeTime, value)
	}
	if _u.mutation.SchedulingUntilCleared() {
		_spec.ClearField(test.FieldSchedulingUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryInterval(); ok {
		_spec.SetField(test.FieldRecoveryInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryInterval(); ok {
		_spec.AddField(test.FieldRecoveryInterval, field.TypeInt, value)
	}
	if _u.mutation.RecoveryIntervalCleared() {
		_spec.ClearField(test.FieldRecoveryInterval, field.TypeInt)
	}
	if value, ok := _u.mutation.RecoveryAttemptLimit(); ok {
		_spec.SetField(test.FieldRecoveryAttemptLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttemptLimit(); ok {
		_spec.AddField(test.FieldRecoveryAttemptLimit, field.TypeInt, value)
	}
	if _u.mutation.RecoveryAttemptLimitCleared() {
		_spec.ClearField(test.FieldRecoveryAttemptLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.KeyRo(); ok {
		_spec.SetField(test.FieldKeyRo, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyRw(); ok {
		_spec.SetField(test.FieldKeyRw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(test.FieldCreated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastStartedTime(); ok {
		_spec.SetField(test.FieldLastStartedTime, field.TypeTime, value)
	}
	if _u.mutation.LastStartedTimeCleared() {
		_spec.ClearField(test.FieldLastStartedTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResultTime(); ok {
		_spec.SetField(test.FieldLastResultTime, field.TypeTime, value)
	}
	if _u.mutation.LastResultTimeCleared() {
		_spec.ClearField(test.FieldLastResultTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResultStatus(); ok {
		_spec.SetField(test.FieldLastResultStatus, field.TypeEnum, value)
	}
	if _u.mutation.LastResultStatusCleared() {
		_spec.ClearField(test.FieldLastResultStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.LastDownloadedTime(); ok {
		_spec.SetField(test.FieldLastDownloadedTime, field.TypeTime, value)
	}
	if _u.mutation.LastDownloadedTimeCleared() {
		_spec.ClearField(test.FieldLastDownloadedTime, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{test.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestUpdateOne is the builder for updating a single Test entity.
type TestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestMutation
}

// SetName sets the "name" field.
func (_u *TestUpdateOne) SetName(v string) *TestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableName(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestUpdateOne) SetDescription(v string) *TestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableDescription(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TestUpdateOne) SetVersion(v int) *TestUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableVersion(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TestUpdateOne) AddVersion(v int) *TestUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetState sets the "state" field.
func (_u *TestUpdateOne) SetState(v test.State) *TestUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableState(v *test.State) *TestUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTestParams sets the "test_params" field.
func (_u *TestUpdateOne) SetTestParams(v string) *TestUpdateOne {
	_u.mutation.SetTestParams(v)
	return _u
}

// SetNillableTestParams sets the "test_params" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTestParams(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetTestParams(*v)
	}
	return _u
}

// SetTimeout sets the "timeout" field.
func (_u *TestUpdateOne) SetTimeout(v int) *TestUpdateOne {
	_u.mutation.ResetTimeout()
	_u.mutation.SetTimeout(v)
	return _u
}

// SetNillableTimeout sets the "timeout" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTimeout(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetTimeout(*v)
	}
	return _u
}

// AddTimeout adds value to the "timeout" field.
func (_u *TestUpdateOne) AddTimeout(v int) *TestUpdateOne {
	_u.mutation.AddTimeout(v)
	return _u
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (_u *TestUpdateOne) SetSchedulingInterval(v int) *TestUpdateOne {
	_u.mutation.ResetSchedulingInterval()
	_u.mutation.SetSchedulingInterval(v)
	return _u
}

// SetNillableSchedulingInterval sets the "scheduling_interval" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableSchedulingInterval(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetSchedulingInterval(*v)
	}
	return _u
}

// AddSchedulingInterval adds value to the "scheduling_interval" field.
func (_u *TestUpdateOne) AddSchedulingInterval(v int) *TestUpdateOne {
	_u.mutation.AddSchedulingInterval(v)
	return _u
}

// ClearSchedulingInterval clears the value of the "scheduling_interval" field.
func (_u *TestUpdateOne) ClearSchedulingInterval() *TestUpdateOne {
	_u.mutation.ClearSchedulingInterval()
	return _u
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (_u *TestUpdateOne) SetSchedulingFrom(v time.Time) *TestUpdateOne {
	_u.mutation.SetSchedulingFrom(v)
	return _u
}

// SetNillableSchedulingFrom sets the "scheduling_from" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableSchedulingFrom(v *time.Time) *TestUpdateOne {
	if v != nil {
		_u.SetSchedulingFrom(*v)
	}
	return _u
}

// ClearSchedulingFrom clears the value of the "scheduling_from" field.
func (_u *TestUpdateOne) ClearSchedulingFrom() *TestUpdateOne {
	_u.mutation.ClearSchedulingFrom()
	return _u
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (_u *TestUpdateOne) SetSchedulingUntil(v time.Time) *TestUpdateOne {
	_u.mutation.SetSchedulingUntil(v)
	return _u
}

// SetNillableSchedulingUntil sets the "scheduling_until" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableSchedulingUntil(v *time.Time) *TestUpdateOne {
	if v != nil {
		_u.SetSchedulingUntil(*v)
	}
	return _u
}

// ClearSchedulingUntil clears the value of the "scheduling_until" field.
func (_u *TestUpdateOne) ClearSchedulingUntil() *TestUpdateOne {
	_u.mutation.ClearSchedulingUntil()
	return _u
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (_u *TestUpdateOne) SetRecoveryInterval(v int) *TestUpdateOne {
	_u.mutation.ResetRecoveryInterval()
	_u.mutation.SetRecoveryInterval(v)
	return _u
}

// SetNillableRecoveryInterval sets the "recovery_interval" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableRecoveryInterval(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetRecoveryInterval(*v)
	}
	return _u
}

// AddRecoveryInterval adds value to the "recovery_interval" field.
func (_u *TestUpdateOne) AddRecoveryInterval(v int) *TestUpdateOne {
	_u.mutation.AddRecoveryInterval(v)
	return _u
}

// ClearRecoveryInterval clears the value of the "recovery_interval" field.
func (_u *TestUpdateOne) ClearRecoveryInterval() *TestUpdateOne {
	_u.mutation.ClearRecoveryInterval()
	return _u
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (_u *TestUpdateOne) SetRecoveryAttemptLimit(v int) *TestUpdateOne {
	_u.mutation.ResetRecoveryAttemptLimit()
	_u.mutation.SetRecoveryAttemptLimit(v)
	return _u
}

// SetNillableRecoveryAttemptLimit sets the "recovery_attempt_limit" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableRecoveryAttemptLimit(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetRecoveryAttemptLimit(*v)
	}
	return _u
}

// AddRecoveryAttemptLimit adds value to the "recovery_attempt_limit" field.
func (_u *TestUpdateOne) AddRecoveryAttemptLimit(v int) *TestUpdateOne {
	_u.mutation.AddRecoveryAttemptLimit(v)
	return _u
}

// ClearRecoveryAttemptLimit clears the value of the "recovery_attempt_limit" field.
func (_u *TestUpdateOne) ClearRecoveryAttemptLimit() *TestUpdateOne {
	_u.mutation.ClearRecoveryAttemptLimit()
	return _u
}

// SetKeyRo sets the "key_ro" field.
func (_u *TestUpdateOne) SetKeyRo(v string) *TestUpdateOne {
	_u.mutation.SetKeyRo(v)
	return _u
}

// SetNillableKeyRo sets the "key_ro" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableKeyRo(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetKeyRo(*v)
	}
	return _u
}

// SetKeyRw sets the "key_rw" field.
func (_u *TestUpdateOne) SetKeyRw(v string) *TestUpdateOne {
	_u.mutation.SetKeyRw(v)
	return _u
}

// SetNillableKeyRw sets the "key_rw" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableKeyRw(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetKeyRw(*v)
	}
	return _u
}

// SetCreated sets the "created" field.
func (_u *TestUpdateOne) SetCreated(v time.Time) *TestUpdateOne {
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableCreated(v *time.Time) *TestUpdateOne {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// SetLastStartedTime sets the "last_started_time" field.
func (_u *TestUpdateOne) SetLastStartedTime(v time.Time) *TestUpdateOne {
	_u.mutation.SetLastStartedTime(v)
	return _u
}

// SetNillableLastStartedTime sets the "last_started_time" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableLastStartedTime(v *time.Time) *TestUpdateOne {
	if v != nil {
		_u.SetLastStartedTime(*v)
	}
	return _u
}

// ClearLastStartedTime clears the value of the "last_started_time" field.
func (_u *TestUpdateOne) ClearLastStartedTime() *TestUpdateOne {
	_u.mutation.ClearLastStartedTime()
	return _u
}

// SetLastResultTime sets the "last_result_time" field.
func (_u *TestUpdateOne) SetLastResultTime(v time.Time) *TestUpdateOne {
	_u.mutation.SetLastResultTime(v)
	return _u
}

// SetNillableLastResultTime sets the "last_result_time" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableLastResultTime(v *time.Time) *TestUpdateOne {
	if v != nil {
		_u.SetLastResultTime(*v)
	}
	return _u
}

// ClearLastResultTime clears the value of the "last_result_time" field.
func (_u *TestUpdateOne) ClearLastResultTime() *TestUpdateOne {
	_u.mutation.ClearLastResultTime()
	return _u
}

// SetLastResultStatus sets the "last_result_status" field.
func (_u *TestUpdateOne) SetLastResultStatus(v test.LastResultStatus) *TestUpdateOne {
	_u.mutation.SetLastResultStatus(v)
	return _u
}

// SetNillableLastResultStatus sets the "last_result_status" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableLastResultStatus(v *test.LastResultStatus) *TestUpdateOne {
	if v != nil {
		_u.SetLastResultStatus(*v)
	}
	return _u
}

// ClearLastResultStatus clears the value of the "last_result_status" field.
func (_u *TestUpdateOne) ClearLastResultStatus() *TestUpdateOne {
	_u.mutation.ClearLastResultStatus()
	return _u
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (_u *TestUpdateOne) SetLastDownloadedTime(v time.Time) *TestUpdateOne {
	_u.mutation.SetLastDownloadedTime(v)
	return _u
}

// SetNillableLastDownloadedTime sets the "last_downloaded_time" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableLastDownloadedTime(v *time.Time) *TestUpdateOne {
	if v != nil {
		_u.SetLastDownloadedTime(*v)
	}
	return _u
}

// ClearLastDownloadedTime clears the value of the "last_downloaded_time" field.
func (_u *TestUpdateOne) ClearLastDownloadedTime() *TestUpdateOne {
	_u.mutation.ClearLastDownloadedTime()
	return _u
}

// Mutation returns the TestMutation object of the builder.
func (_u *TestUpdateOne) Mutation() *TestMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestUpdate builder.
func (_u *TestUpdateOne) Where(ps ...predicate.Test) *TestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestUpdateOne) Select(field string, fields ...string) *TestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Test entity.
func (_u *TestUpdateOne) Save(ctx context.Context) (*Test, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestUpdateOne) SaveX(ctx context.Context) *Test {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := test.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Test.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastResultStatus(); ok {
		if err := test.LastResultStatusValidator(v); err != nil {
			return &ValidationError{Name: "last_result_status", err: fmt.Errorf(`ent: validator failed for field "Test.last_result_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TestUpdateOne) sqlSave(ctx context.Context) (_node *Test, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(test.Table, test.Columns, sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Test.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, test.FieldID)
		for _, f := range fields {
			if !test.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != test.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(test.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(test.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(test.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(test.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(test.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestParams(); ok {
		_spec.SetField(test.FieldTestParams, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timeout(); ok {
		_spec.SetField(test.FieldTimeout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeout(); ok {
		_spec.AddField(test.FieldTimeout, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SchedulingInterval(); ok {
		_spec.SetField(test.FieldSchedulingInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchedulingInterval(); ok {
		_spec.AddField(test.FieldSchedulingInterval, field.TypeInt, value)
	}
	if _u.mutation.SchedulingIntervalCleared() {
		_spec.ClearField(test.FieldSchedulingInterval, field.TypeInt)
	}
	if value, ok := _u.mutation.SchedulingFrom(); ok {
		_spec.SetField(test.FieldSchedulingFrom, field.TypeTime, value)
	}
	if _u.mutation.SchedulingFromCleared() {
		_spec.ClearField(test.FieldSchedulingFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.SchedulingUntil(); ok {
		_spec.SetField(test.FieldSchedulingUntil, field.TypeTime, value)
	}
	if _u.mutation.SchedulingUntilCleared() {
		_spec.ClearField(test.FieldSchedulingUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryInterval(); ok {
		_spec.SetField(test.FieldRecoveryInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryInterval(); ok {
		_spec.AddField(test.FieldRecoveryInterval, field.TypeInt, value)
	}
	if _u.mutation.RecoveryIntervalCleared() {
		_spec.ClearField(test.FieldRecoveryInterval, field.TypeInt)
	}
	if value, ok := _u.mutation.RecoveryAttemptLimit(); ok {
		_spec.SetField(test.FieldRecoveryAttemptLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttemptLimit(); ok {
		_spec.AddField(test.FieldRecoveryAttemptLimit, field.TypeInt, value)
	}
	if _u.mutation.RecoveryAttemptLimitCleared() {
		_spec.ClearField(test.FieldRecoveryAttemptLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.KeyRo(); ok {
		_spec.SetField(test.FieldKeyRo, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyRw(); ok {
		_spec.SetField(test.FieldKeyRw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(test.FieldCreated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastStartedTime(); ok {
		_spec.SetField(test.FieldLastStartedTime, field.TypeTime, value)
	}
	if _u.mutation.LastStartedTimeCleared() {
		_spec.ClearField(test.FieldLastStartedTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResultTime(); ok {
		_spec.SetField(test.FieldLastResultTime, field.TypeTime, value)
	}
	if _u.mutation.LastResultTimeCleared() {
		_spec.ClearField(test.FieldLastResultTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResultStatus(); ok {
		_spec.SetField(test.FieldLastResultStatus, field.TypeEnum, value)
	}
	if _u.mutation.LastResultStatusCleared() {
		_spec.ClearField(test.FieldLastResultStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.LastDownloadedTime(); ok {
		_spec.SetField(test.FieldLastDownloadedTime, field.TypeTime, value)
	}
	if _u.mutation.LastDownloadedTimeCleared() {
		_spec.ClearField(test.FieldLastDownloadedTime, field.TypeTime)
	}
	_node = &Test{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{test.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
