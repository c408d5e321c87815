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
	"github.com/inventor-project/symon/ent/test"
)

// TestCreate is the builder for creating a Test entity.
type TestCreate struct {
	config
	mutation *TestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *TestCreate) SetName(v string) *TestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TestCreate) SetDescription(v string) *TestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *TestCreate) SetVersion(v int) *TestCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TestCreate) SetNillableVersion(v *int) *TestCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *TestCreate) SetState(v test.State) *TestCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetTestParams sets the "test_params" field.
func (_c *TestCreate) SetTestParams(v string) *TestCreate {
	_c.mutation.SetTestParams(v)
	return _c
}

// SetTimeout sets the "timeout" field.
func (_c *TestCreate) SetTimeout(v int) *TestCreate {
	_c.mutation.SetTimeout(v)
	return _c
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (_c *TestCreate) SetSchedulingInterval(v int) *TestCreate {
	_c.mutation.SetSchedulingInterval(v)
	return _c
}

// SetNillableSchedulingInterval sets the "scheduling_interval" field if the given value is not nil.
func (_c *TestCreate) SetNillableSchedulingInterval(v *int) *TestCreate {
	if v != nil {
		_c.SetSchedulingInterval(*v)
	}
	return _c
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (_c *TestCreate) SetSchedulingFrom(v time.Time) *TestCreate {
	_c.mutation.SetSchedulingFrom(v)
	return _c
}

// SetNillableSchedulingFrom sets the "scheduling_from" field if the given value is not nil.
func (_c *TestCreate) SetNillableSchedulingFrom(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetSchedulingFrom(*v)
	}
	return _c
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (_c *TestCreate) SetSchedulingUntil(v time.Time) *TestCreate {
	_c.mutation.SetSchedulingUntil(v)
	return _c
}

// SetNillableSchedulingUntil sets the "scheduling_until" field if the given value is not nil.
func (_c *TestCreate) SetNillableSchedulingUntil(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetSchedulingUntil(*v)
	}
	return _c
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (_c *TestCreate) SetRecoveryInterval(v int) *TestCreate {
	_c.mutation.SetRecoveryInterval(v)
	return _c
}

// SetNillableRecoveryInterval sets the "recovery_interval" field if the given value is not nil.
func (_c *TestCreate) SetNillableRecoveryInterval(v *int) *TestCreate {
	if v != nil {
		_c.SetRecoveryInterval(*v)
	}
	return _c
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (_c *TestCreate) SetRecoveryAttemptLimit(v int) *TestCreate {
	_c.mutation.SetRecoveryAttemptLimit(v)
	return _c
}

// SetNillableRecoveryAttemptLimit sets the "recovery_attempt_limit" field if the given value is not nil.
func (_c *TestCreate) SetNillableRecoveryAttemptLimit(v *int) *TestCreate {
	if v != nil {
		_c.SetRecoveryAttemptLimit(*v)
	}
	return _c
}

// SetKeyRo sets the "key_ro" field.
func (_c *TestCreate) SetKeyRo(v string) *TestCreate {
	_c.mutation.SetKeyRo(v)
	return _c
}

// SetKeyRw sets the "key_rw" field.
func (_c *TestCreate) SetKeyRw(v string) *TestCreate {
	_c.mutation.SetKeyRw(v)
	return _c
}

// SetCreated sets the "created" field.
func (_c *TestCreate) SetCreated(v time.Time) *TestCreate {
	_c.mutation.SetCreated(v)
	return _c
}

// SetLastStartedTime sets the "last_started_time" field.
func (_c *TestCreate) SetLastStartedTime(v time.Time) *TestCreate {
	_c.mutation.SetLastStartedTime(v)
	return _c
}

// SetNillableLastStartedTime sets the "last_started_time" field if the given value is not nil.
func (_c *TestCreate) SetNillableLastStartedTime(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetLastStartedTime(*v)
	}
	return _c
}

// SetLastResultTime sets the "last_result_time" field.
func (_c *TestCreate) SetLastResultTime(v time.Time) *TestCreate {
	_c.mutation.SetLastResultTime(v)
	return _c
}

// SetNillableLastResultTime sets the "last_result_time" field if the given value is not nil.
func (_c *TestCreate) SetNillableLastResultTime(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetLastResultTime(*v)
	}
	return _c
}

// SetLastResultStatus sets the "last_result_status" field.
func (_c *TestCreate) SetLastResultStatus(v test.LastResultStatus) *TestCreate {
	_c.mutation.SetLastResultStatus(v)
	return _c
}

// SetNillableLastResultStatus sets the "last_result_status" field if the given value is not nil.
func (_c *TestCreate) SetNillableLastResultStatus(v *test.LastResultStatus) *TestCreate {
	if v != nil {
		_c.SetLastResultStatus(*v)
	}
	return _c
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (_c *TestCreate) SetLastDownloadedTime(v time.Time) *TestCreate {
	_c.mutation.SetLastDownloadedTime(v)
	return _c
}

// SetNillableLastDownloadedTime sets the "last_downloaded_time" field if the given value is not nil.
func (_c *TestCreate) SetNillableLastDownloadedTime(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetLastDownloadedTime(*v)
	}
	return _c
}

// Mutation returns the TestMutation object of the builder.
func (_c *TestCreate) Mutation() *TestMutation {
	return _c.mutation
}

// Save creates the Test in the database.
func (_c *TestCreate) Save(ctx context.Context) (*Test, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCreate) SaveX(ctx context.Context) *Test {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := test.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Test.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Test.description"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Test.version"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Test.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := test.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Test.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestParams(); !ok {
		return &ValidationError{Name: "test_params", err: errors.New(`ent: missing required field "Test.test_params"`)}
	}
	if _, ok := _c.mutation.Timeout(); !ok {
		return &ValidationError{Name: "timeout", err: errors.New(`ent: missing required field "Test.timeout"`)}
	}
	if _, ok := _c.mutation.KeyRo(); !ok {
		return &ValidationError{Name: "key_ro", err: errors.New(`ent: missing required field "Test.key_ro"`)}
	}
	if _, ok := _c.mutation.KeyRw(); !ok {
		return &ValidationError{Name: "key_rw", err: errors.New(`ent: missing required field "Test.key_rw"`)}
	}
	if _, ok := _c.mutation.Created(); !ok {
		return &ValidationError{Name: "created", err: errors.New(`ent: missing required field "Test.created"`)}
	}
	if v, ok := _c.mutation.LastResultStatus(); ok {
		if err := test.LastResultStatusValidator(v); err != nil {
			return &ValidationError{Name: "last_result_status", err: fmt.Errorf(`ent: validator failed for field "Test.last_result_status": %w`, err)}
		}
	}
	return nil
}

func (_c *TestCreate) sqlSave(ctx context.Context) (*Test, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestCreate) createSpec() (*Test, *sqlgraph.CreateSpec) {
	var (
		_node = &Test{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(test.Table, sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(test.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(test.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(test.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(test.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.TestParams(); ok {
		_spec.SetField(test.FieldTestParams, field.TypeString, value)
		_node.TestParams = value
	}
	if value, ok := _c.mutation.Timeout(); ok {
		_spec.SetField(test.FieldTimeout, field.TypeInt, value)
		_node.Timeout = value
	}
	if value, ok := _c.mutation.SchedulingInterval(); ok {
		_spec.SetField(test.FieldSchedulingInterval, field.TypeInt, value)
		_node.SchedulingInterval = &value
	}
	if value, ok := _c.mutation.SchedulingFrom(); ok {
		_spec.SetField(test.FieldSchedulingFrom, field.TypeTime, value)
		_node.SchedulingFrom = &value
	}
	if value, ok := _c.mutation.SchedulingUntil(); ok {
		_spec.SetField(test.FieldSchedulingUntil, field.TypeTime, value)
		_node.SchedulingUntil = &value
	}
	if value, ok := _c.mutation.RecoveryInterval(); ok {
		_spec.SetField(test.FieldRecoveryInterval, field.TypeInt, value)
		_node.RecoveryInterval = &value
	}
	if value, ok := _c.mutation.RecoveryAttemptLimit(); ok {
		_spec.SetField(test.FieldRecoveryAttemptLimit, field.TypeInt, value)
		_node.RecoveryAttemptLimit = &value
	}
	if value, ok := _c.mutation.KeyRo(); ok {
		_spec.SetField(test.FieldKeyRo, field.TypeString, value)
		_node.KeyRo = value
	}
	if value, ok := _c.mutation.KeyRw(); ok {
		_spec.SetField(test.FieldKeyRw, field.TypeString, value)
		_node.KeyRw = value
	}
	if value, ok := _c.mutation.Created(); ok {
		_spec.SetField(test.FieldCreated, field.TypeTime, value)
		_node.Created = value
	}
	if value, ok := _c.mutation.LastStartedTime(); ok {
		_spec.SetField(test.FieldLastStartedTime, field.TypeTime, value)
		_node.LastStartedTime = &value
	}
	if value, ok := _c.mutation.LastResultTime(); ok {
		_spec.SetField(test.FieldLastResultTime, field.TypeTime, value)
		_node.LastResultTime = &value
	}
	if value, ok := _c.mutation.LastResultStatus(); ok {
		_spec.SetField(test.FieldLastResultStatus, field.TypeEnum, value)
		_node.LastResultStatus = value
	}
	if value, ok := _c.mutation.LastDownloadedTime(); ok {
		_spec.SetField(test.FieldLastDownloadedTime, field.TypeTime, value)
		_node.LastDownloadedTime = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Test.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TestCreate) OnConflict(opts ...sql.ConflictOption) *TestUpsertOne {
	_c.conflict = opts
	return &TestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestCreate) OnConflictColumns(columns ...string) *TestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestUpsertOne{
		create: _c,
	}
}

type (
	// TestUpsertOne is the builder for "upsert"-ing
	//  one Test node.
	TestUpsertOne struct {
		create *TestCreate
	}

	// TestUpsert is the "OnConflict" setter.
	TestUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *TestUpsert) SetName(v string) *TestUpsert {
	u.Set(test.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TestUpsert) UpdateName() *TestUpsert {
	u.SetExcluded(test.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *TestUpsert) SetDescription(v string) *TestUpsert {
	u.Set(test.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TestUpsert) UpdateDescription() *TestUpsert {
	u.SetExcluded(test.FieldDescription)
	return u
}

// SetVersion sets the "version" field.
func (u *TestUpsert) SetVersion(v int) *TestUpsert {
	u.Set(test.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TestUpsert) UpdateVersion() *TestUpsert {
	u.SetExcluded(test.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *TestUpsert) AddVersion(v int) *TestUpsert {
	u.Add(test.FieldVersion, v)
	return u
}

// SetState sets the "state" field.
func (u *TestUpsert) SetState(v test.State) *TestUpsert {
	u.Set(test.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *TestUpsert) UpdateState() *TestUpsert {
	u.SetExcluded(test.FieldState)
	return u
}

// SetTestParams sets the "test_params" field.
func (u *TestUpsert) SetTestParams(v string) *TestUpsert {
	u.Set(test.FieldTestParams, v)
	return u
}

// UpdateTestParams sets the "test_params" field to the value that was provided on create.
func (u *TestUpsert) UpdateTestParams() *TestUpsert {
	u.SetExcluded(test.FieldTestParams)
	return u
}

// SetTimeout sets the "timeout" field.
func (u *TestUpsert) SetTimeout(v int) *TestUpsert {
	u.Set(test.FieldTimeout, v)
	return u
}

// UpdateTimeout sets the "timeout" field to the value that was provided on create.
func (u *TestUpsert) UpdateTimeout() *TestUpsert {
	u.SetExcluded(test.FieldTimeout)
	return u
}

// AddTimeout adds v to the "timeout" field.
func (u *TestUpsert) AddTimeout(v int) *TestUpsert {
	u.Add(test.FieldTimeout, v)
	return u
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (u *TestUpsert) SetSchedulingInterval(v int) *TestUpsert {
	u.Set(test.FieldSchedulingInterval, v)
	return u
}

// UpdateSchedulingInterval sets the "scheduling_interval" field to the value that was provided on create.
func (u *TestUpsert) UpdateSchedulingInterval() *TestUpsert {
	u.SetExcluded(test.FieldSchedulingInterval)
	return u
}

// AddSchedulingInterval adds v to the "scheduling_interval" field.
func (u *TestUpsert) AddSchedulingInterval(v int) *TestUpsert {
	u.Add(test.FieldSchedulingInterval, v)
	return u
}

// ClearSchedulingInterval clears the value of the "scheduling_interval" field.
func (u *TestUpsert) ClearSchedulingInterval() *TestUpsert {
	u.SetNull(test.FieldSchedulingInterval)
	return u
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (u *TestUpsert) SetSchedulingFrom(v time.Time) *TestUpsert {
	u.Set(test.FieldSchedulingFrom, v)
	return u
}

// UpdateSchedulingFrom sets the "scheduling_from" field to the value that was provided on create.
func (u *TestUpsert) UpdateSchedulingFrom() *TestUpsert {
	u.SetExcluded(test.FieldSchedulingFrom)
	return u
}

// ClearSchedulingFrom clears the value of the "scheduling_from" field.
func (u *TestUpsert) ClearSchedulingFrom() *TestUpsert {
	u.SetNull(test.FieldSchedulingFrom)
	return u
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (u *TestUpsert) SetSchedulingUntil(v time.Time) *TestUpsert {
	u.Set(test.FieldSchedulingUntil, v)
	return u
}

// UpdateSchedulingUntil sets the "scheduling_until" field to the value that was provided on create.
func (u *TestUpsert) UpdateSchedulingUntil() *TestUpsert {
	u.SetExcluded(test.FieldSchedulingUntil)
	return u
}

// ClearSchedulingUntil clears the value of the "scheduling_until" field.
func (u *TestUpsert) ClearSchedulingUntil() *TestUpsert {
	u.SetNull(test.FieldSchedulingUntil)
	return u
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (u *TestUpsert) SetRecoveryInterval(v int) *TestUpsert {
	u.Set(test.FieldRecoveryInterval, v)
	return u
}

// UpdateRecoveryInterval sets the "recovery_interval" field to the value that was provided on create.
func (u *TestUpsert) UpdateRecoveryInterval() *TestUpsert {
	u.SetExcluded(test.FieldRecoveryInterval)
	return u
}

// AddRecoveryInterval adds v to the "recovery_interval" field.
func (u *TestUpsert) AddRecoveryInterval(v int) *TestUpsert {
	u.Add(test.FieldRecoveryInterval, v)
	return u
}

// ClearRecoveryInterval clears the value of the "recovery_interval" field.
func (u *TestUpsert) ClearRecoveryInterval() *TestUpsert {
	u.SetNull(test.FieldRecoveryInterval)
	return u
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (u *TestUpsert) SetRecoveryAttemptLimit(v int) *TestUpsert {
	u.Set(test.FieldRecoveryAttemptLimit, v)
	return u
}

// UpdateRecoveryAttemptLimit sets the "recovery_attempt_limit" field to the value that was provided on create.
func (u *TestUpsert) UpdateRecoveryAttemptLimit() *TestUpsert {
	u.SetExcluded(test.FieldRecoveryAttemptLimit)
	return u
}

// AddRecoveryAttemptLimit adds v to the "recovery_attempt_limit" field.
func (u *TestUpsert) AddRecoveryAttemptLimit(v int) *TestUpsert {
	u.Add(test.FieldRecoveryAttemptLimit, v)
	return u
}

// ClearRecoveryAttemptLimit clears the value of the "recovery_attempt_limit" field.
func (u *TestUpsert) ClearRecoveryAttemptLimit() *TestUpsert {
	u.SetNull(test.FieldRecoveryAttemptLimit)
	return u
}

// SetKeyRo sets the "key_ro" field.
func (u *TestUpsert) SetKeyRo(v string) *TestUpsert {
	u.Set(test.FieldKeyRo, v)
	return u
}

// UpdateKeyRo sets the "key_ro" field to the value that was provided on create.
func (u *TestUpsert) UpdateKeyRo() *TestUpsert {
	u.SetExcluded(test.FieldKeyRo)
	return u
}

// SetKeyRw sets the "key_rw" field.
func (u *TestUpsert) SetKeyRw(v string) *TestUpsert {
	u.Set(test.FieldKeyRw, v)
	return u
}

// UpdateKeyRw sets the "key_rw" field to the value that was provided on create.
func (u *TestUpsert) UpdateKeyRw() *TestUpsert {
	u.SetExcluded(test.FieldKeyRw)
	return u
}

// SetCreated sets the "created" field.
func (u *TestUpsert) SetCreated(v time.Time) *TestUpsert {
	u.Set(test.FieldCreated, v)
	return u
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *TestUpsert) UpdateCreated() *TestUpsert {
	u.SetExcluded(test.FieldCreated)
	return u
}

// SetLastStartedTime sets the "last_started_time" field.
func (u *TestUpsert) SetLastStartedTime(v time.Time) *TestUpsert {
	u.Set(test.FieldLastStartedTime, v)
	return u
}

// UpdateLastStartedTime sets the "last_started_time" field to the value that was provided on create.
func (u *TestUpsert) UpdateLastStartedTime() *TestUpsert {
	u.SetExcluded(test.FieldLastStartedTime)
	return u
}

// ClearLastStartedTime clears the value of the "last_started_time" field.
func (u *TestUpsert) ClearLastStartedTime() *TestUpsert {
	u.SetNull(test.FieldLastStartedTime)
	return u
}

// SetLastResultTime sets the "last_result_time" field.
func (u *TestUpsert) SetLastResultTime(v time.Time) *TestUpsert {
	u.Set(test.FieldLastResultTime, v)
	return u
}

// UpdateLastResultTime sets the "last_result_time" field to the value that was provided on create.
func (u *TestUpsert) UpdateLastResultTime() *TestUpsert {
	u.SetExcluded(test.FieldLastResultTime)
	return u
}

// ClearLastResultTime clears the value of the "last_result_time" field.
func (u *TestUpsert) ClearLastResultTime() *TestUpsert {
	u.SetNull(test.FieldLastResultTime)
	return u
}

// SetLastResultStatus sets the "last_result_status" field.
func (u *TestUpsert) SetLastResultStatus(v test.LastResultStatus) *TestUpsert {
	u.Set(test.FieldLastResultStatus, v)
	return u
}

// UpdateLastResultStatus sets the "last_result_status" field to the value that was provided on create.
func (u *TestUpsert) UpdateLastResultStatus() *TestUpsert {
	u.SetExcluded(test.FieldLastResultStatus)
	return u
}

// ClearLastResultStatus clears the value of the "last_result_status" field.
func (u *TestUpsert) ClearLastResultStatus() *TestUpsert {
	u.SetNull(test.FieldLastResultStatus)
	return u
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (u *TestUpsert) SetLastDownloadedTime(v time.Time) *TestUpsert {
	u.Set(test.FieldLastDownloadedTime, v)
	return u
}

// UpdateLastDownloadedTime sets the "last_downloaded_time" field to the value that was provided on create.
func (u *TestUpsert) UpdateLastDownloadedTime() *TestUpsert {
	u.SetExcluded(test.FieldLastDownloadedTime)
	return u
}

// ClearLastDownloadedTime clears the value of the "last_downloaded_time" field.
func (u *TestUpsert) ClearLastDownloadedTime() *TestUpsert {
	u.SetNull(test.FieldLastDownloadedTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TestUpsertOne) UpdateNewValues() *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Test.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestUpsertOne) Ignore() *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestUpsertOne) DoNothing() *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestCreate.OnConflict
// documentation for more info.
func (u *TestUpsertOne) Update(set func(*TestUpsert)) *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TestUpsertOne) SetName(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateName() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TestUpsertOne) SetDescription(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateDescription() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateDescription()
	})
}

// SetVersion sets the "version" field.
func (u *TestUpsertOne) SetVersion(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TestUpsertOne) AddVersion(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateVersion() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateVersion()
	})
}

// SetState sets the "state" field.
func (u *TestUpsertOne) SetState(v test.State) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateState() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateState()
	})
}

// SetTestParams sets the "test_params" field.
func (u *TestUpsertOne) SetTestParams(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetTestParams(v)
	})
}

// UpdateTestParams sets the "test_params" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateTestParams() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateTestParams()
	})
}

// SetTimeout sets the "timeout" field.
func (u *TestUpsertOne) SetTimeout(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetTimeout(v)
	})
}

// AddTimeout adds v to the "timeout" field.
func (u *TestUpsertOne) AddTimeout(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddTimeout(v)
	})
}

// UpdateTimeout sets the "timeout" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateTimeout() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateTimeout()
	})
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (u *TestUpsertOne) SetSchedulingInterval(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetSchedulingInterval(v)
	})
}

// AddSchedulingInterval adds v to the "scheduling_interval" field.
func (u *TestUpsertOne) AddSchedulingInterval(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddSchedulingInterval(v)
	})
}

// UpdateSchedulingInterval sets the "scheduling_interval" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateSchedulingInterval() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateSchedulingInterval()
	})
}

// ClearSchedulingInterval clears the value of the "scheduling_interval" field.
func (u *TestUpsertOne) ClearSchedulingInterval() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearSchedulingInterval()
	})
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (u *TestUpsertOne) SetSchedulingFrom(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetSchedulingFrom(v)
	})
}

// UpdateSchedulingFrom sets the "scheduling_from" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateSchedulingFrom() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateSchedulingFrom()
	})
}

// ClearSchedulingFrom clears the value of the "scheduling_from" field.
func (u *TestUpsertOne) ClearSchedulingFrom() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearSchedulingFrom()
	})
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (u *TestUpsertOne) SetSchedulingUntil(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetSchedulingUntil(v)
	})
}

// UpdateSchedulingUntil sets the "scheduling_until" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateSchedulingUntil() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateSchedulingUntil()
	})
}

// ClearSchedulingUntil clears the value of the "scheduling_until" field.
func (u *TestUpsertOne) ClearSchedulingUntil() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearSchedulingUntil()
	})
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (u *TestUpsertOne) SetRecoveryInterval(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetRecoveryInterval(v)
	})
}

// AddRecoveryInterval adds v to the "recovery_interval" field.
func (u *TestUpsertOne) AddRecoveryInterval(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddRecoveryInterval(v)
	})
}

// UpdateRecoveryInterval sets the "recovery_interval" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateRecoveryInterval() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateRecoveryInterval()
	})
}

// ClearRecoveryInterval clears the value of the "recovery_interval" field.
func (u *TestUpsertOne) ClearRecoveryInterval() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearRecoveryInterval()
	})
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (u *TestUpsertOne) SetRecoveryAttemptLimit(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetRecoveryAttemptLimit(v)
	})
}

// AddRecoveryAttemptLimit adds v to the "recovery_attempt_limit" field.
func (u *TestUpsertOne) AddRecoveryAttemptLimit(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddRecoveryAttemptLimit(v)
	})
}

// UpdateRecoveryAttemptLimit sets the "recovery_attempt_limit" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateRecoveryAttemptLimit() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateRecoveryAttemptLimit()
	})
}

// ClearRecoveryAttemptLimit clears the value of the "recovery_attempt_limit" field.
func (u *TestUpsertOne) ClearRecoveryAttemptLimit() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearRecoveryAttemptLimit()
	})
}

// SetKeyRo sets the "key_ro" field.
func (u *TestUpsertOne) SetKeyRo(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetKeyRo(v)
	})
}

// UpdateKeyRo sets the "key_ro" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateKeyRo() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateKeyRo()
	})
}

// SetKeyRw sets the "key_rw" field.
func (u *TestUpsertOne) SetKeyRw(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetKeyRw(v)
	})
}

// UpdateKeyRw sets the "key_rw" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateKeyRw() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateKeyRw()
	})
}

// SetCreated sets the "created" field.
func (u *TestUpsertOne) SetCreated(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetCreated(v)
	})
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateCreated() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateCreated()
	})
}

// SetLastStartedTime sets the "last_started_time" field.
func (u *TestUpsertOne) SetLastStartedTime(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetLastStartedTime(v)
	})
}

// UpdateLastStartedTime sets the "last_started_time" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateLastStartedTime() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastStartedTime()
	})
}

// ClearLastStartedTime clears the value of the "last_started_time" field.
func (u *TestUpsertOne) ClearLastStartedTime() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastStartedTime()
	})
}

// SetLastResultTime sets the "last_result_time" field.
func (u *TestUpsertOne) SetLastResultTime(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetLastResultTime(v)
	})
}

// UpdateLastResultTime sets the "last_result_time" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateLastResultTime() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastResultTime()
	})
}

// ClearLastResultTime clears the value of the "last_result_time" field.
func (u *TestUpsertOne) ClearLastResultTime() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastResultTime()
	})
}

// SetLastResultStatus sets the "last_result_status" field.
func (u *TestUpsertOne) SetLastResultStatus(v test.LastResultStatus) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetLastResultStatus(v)
	})
}

// UpdateLastResultStatus sets the "last_result_status" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateLastResultStatus() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastResultStatus()
	})
}

// ClearLastResultStatus clears the value of the "last_result_status" field.
func (u *TestUpsertOne) ClearLastResultStatus() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastResultStatus()
	})
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (u *TestUpsertOne) SetLastDownloadedTime(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetLastDownloadedTime(v)
	})
}

// UpdateLastDownloadedTime sets the "last_downloaded_time" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateLastDownloadedTime() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastDownloadedTime()
	})
}

// ClearLastDownloadedTime clears the value of the "last_downloaded_time" field.
func (u *TestUpsertOne) ClearLastDownloadedTime() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastDownloadedTime()
	})
}

// Exec executes the query.
func (u *TestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestCreateBulk is the builder for creating many Test entities in bulk.
type TestCreateBulk struct {
	config
	err      error
	builders []*TestCreate
	conflict []sql.ConflictOption
}

// Save creates the Test entities in the database.
func (_c *TestCreateBulk) Save(ctx context.Context) ([]*Test, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Test, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestCreateBulk) SaveX(ctx context.Context) []*Test {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Test.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TestCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestUpsertBulk {
	_c.conflict = opts
	return &TestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestCreateBulk) OnConflictColumns(columns ...string) *TestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestUpsertBulk{
		create: _c,
	}
}

// TestUpsertBulk is the builder for "upsert"-ing
// a bulk of Test nodes.
type TestUpsertBulk struct {
	create *TestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TestUpsertBulk) UpdateNewValues() *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestUpsertBulk) Ignore() *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestUpsertBulk) DoNothing() *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestCreateBulk.OnConflict
// documentation for more info.
func (u *TestUpsertBulk) Update(set func(*TestUpsert)) *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TestUpsertBulk) SetName(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateName() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TestUpsertBulk) SetDescription(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateDescription() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateDescription()
	})
}

// SetVersion sets the "version" field.
func (u *TestUpsertBulk) SetVersion(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TestUpsertBulk) AddVersion(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateVersion() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateVersion()
	})
}

// SetState sets the "state" field.
func (u *TestUpsertBulk) SetState(v test.State) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateState() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateState()
	})
}

// SetTestParams sets the "test_params" field.
func (u *TestUpsertBulk) SetTestParams(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetTestParams(v)
	})
}

// UpdateTestParams sets the "test_params" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateTestParams() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateTestParams()
	})
}

// SetTimeout sets the "timeout" field.
func (u *TestUpsertBulk) SetTimeout(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetTimeout(v)
	})
}

// AddTimeout adds v to the "timeout" field.
func (u *TestUpsertBulk) AddTimeout(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddTimeout(v)
	})
}

// UpdateTimeout sets the "timeout" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateTimeout() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateTimeout()
	})
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (u *TestUpsertBulk) SetSchedulingInterval(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetSchedulingInterval(v)
	})
}

// AddSchedulingInterval adds v to the "scheduling_interval" field.
func (u *TestUpsertBulk) AddSchedulingInterval(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddSchedulingInterval(v)
	})
}

// UpdateSchedulingInterval sets the "scheduling_interval" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateSchedulingInterval() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateSchedulingInterval()
	})
}

// ClearSchedulingInterval clears the value of the "scheduling_interval" field.
func (u *TestUpsertBulk) ClearSchedulingInterval() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearSchedulingInterval()
	})
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (u *TestUpsertBulk) SetSchedulingFrom(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetSchedulingFrom(v)
	})
}

// UpdateSchedulingFrom sets the "scheduling_from" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateSchedulingFrom() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateSchedulingFrom()
	})
}

// ClearSchedulingFrom clears the value of the "scheduling_from" field.
func (u *TestUpsertBulk) ClearSchedulingFrom() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearSchedulingFrom()
	})
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (u *TestUpsertBulk) SetSchedulingUntil(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetSchedulingUntil(v)
	})
}

// UpdateSchedulingUntil sets the "scheduling_until" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateSchedulingUntil() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateSchedulingUntil()
	})
}

// ClearSchedulingUntil clears the value of the "scheduling_until" field.
func (u *TestUpsertBulk) ClearSchedulingUntil() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearSchedulingUntil()
	})
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (u *TestUpsertBulk) SetRecoveryInterval(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetRecoveryInterval(v)
	})
}

// AddRecoveryInterval adds v to the "recovery_interval" field.
func (u *TestUpsertBulk) AddRecoveryInterval(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddRecoveryInterval(v)
	})
}

// UpdateRecoveryInterval sets the "recovery_interval" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateRecoveryInterval() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateRecoveryInterval()
	})
}

// ClearRecoveryInterval clears the value of the "recovery_interval" field.
func (u *TestUpsertBulk) ClearRecoveryInterval() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearRecoveryInterval()
	})
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (u *TestUpsertBulk) SetRecoveryAttemptLimit(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetRecoveryAttemptLimit(v)
	})
}

// AddRecoveryAttemptLimit adds v to the "recovery_attempt_limit" field.
func (u *TestUpsertBulk) AddRecoveryAttemptLimit(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddRecoveryAttemptLimit(v)
	})
}

// UpdateRecoveryAttemptLimit sets the "recovery_attempt_limit" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateRecoveryAttemptLimit() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateRecoveryAttemptLimit()
	})
}

// ClearRecoveryAttemptLimit clears the value of the "recovery_attempt_limit" field.
func (u *TestUpsertBulk) ClearRecoveryAttemptLimit() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearRecoveryAttemptLimit()
	})
}

// SetKeyRo sets the "key_ro" field.
func (u *TestUpsertBulk) SetKeyRo(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetKeyRo(v)
	})
}

// UpdateKeyRo sets the "key_ro" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateKeyRo() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateKeyRo()
	})
}

// SetKeyRw sets the "key_rw" field.
func (u *TestUpsertBulk) SetKeyRw(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetKeyRw(v)
	})
}

// UpdateKeyRw sets the "key_rw" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateKeyRw() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateKeyRw()
	})
}

// SetCreated sets the "created" field.
func (u *TestUpsertBulk) SetCreated(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetCreated(v)
	})
}

// UpdateCreated sets the "created" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateCreated() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateCreated()
	})
}

// SetLastStartedTime sets the "last_started_time" field.
func (u *TestUpsertBulk) SetLastStartedTime(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetLastStartedTime(v)
	})
}

// UpdateLastStartedTime sets the "last_started_time" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateLastStartedTime() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastStartedTime()
	})
}

// ClearLastStartedTime clears the value of the "last_started_time" field.
func (u *TestUpsertBulk) ClearLastStartedTime() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastStartedTime()
	})
}

// SetLastResultTime sets the "last_result_time" field.
func (u *TestUpsertBulk) SetLastResultTime(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetLastResultTime(v)
	})
}

// UpdateLastResultTime sets the "last_result_time" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateLastResultTime() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastResultTime()
	})
}

// ClearLastResultTime clears the value of the "last_result_time" field.
func (u *TestUpsertBulk) ClearLastResultTime() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastResultTime()
	})
}

// SetLastResultStatus sets the "last_result_status" field.
func (u *TestUpsertBulk) SetLastResultStatus(v test.LastResultStatus) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetLastResultStatus(v)
	})
}

// UpdateLastResultStatus sets the "last_result_status" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateLastResultStatus() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastResultStatus()
	})
}

// ClearLastResultStatus clears the value of the "last_result_status" field.
func (u *TestUpsertBulk) ClearLastResultStatus() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastResultStatus()
	})
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (u *TestUpsertBulk) SetLastDownloadedTime(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetLastDownloadedTime(v)
	})
}

// UpdateLastDownloadedTime sets the "last_downloaded_time" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateLastDownloadedTime() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateLastDownloadedTime()
	})
}

// ClearLastDownloadedTime clears the value of the "last_downloaded_time" field.
func (u *TestUpsertBulk) ClearLastDownloadedTime() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearLastDownloadedTime()
	})
}

// Exec executes the query.
func (u *TestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
