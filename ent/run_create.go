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
	"github.com/inventor-project/symon/ent/run"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIDTest sets the "id_test" field.
func (_c *RunCreate) SetIDTest(v int) *RunCreate {
	_c.mutation.SetIDTest(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RunCreate) SetVersion(v int) *RunCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetState sets the "state" field.
func (_c *RunCreate) SetState(v run.State) *RunCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetPid sets the "pid" field.
func (_c *RunCreate) SetPid(v int) *RunCreate {
	_c.mutation.SetPid(v)
	return _c
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_c *RunCreate) SetNillablePid(v *int) *RunCreate {
	if v != nil {
		_c.SetPid(*v)
	}
	return _c
}

// SetPlanned sets the "planned" field.
func (_c *RunCreate) SetPlanned(v time.Time) *RunCreate {
	_c.mutation.SetPlanned(v)
	return _c
}

// SetStarted sets the "started" field.
func (_c *RunCreate) SetStarted(v time.Time) *RunCreate {
	_c.mutation.SetStarted(v)
	return _c
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_c *RunCreate) SetNillableStarted(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStarted(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *RunCreate) SetDeadline(v time.Time) *RunCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *RunCreate) SetNillableDeadline(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_c *RunCreate) SetRecoveryAttempt(v int) *RunCreate {
	_c.mutation.SetRecoveryAttempt(v)
	return _c
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_c *RunCreate) SetNillableRecoveryAttempt(v *int) *RunCreate {
	if v != nil {
		_c.SetRecoveryAttempt(*v)
	}
	return _c
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		v := run.DefaultRecoveryAttempt
		_c.mutation.SetRecoveryAttempt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.IDTest(); !ok {
		return &ValidationError{Name: "id_test", err: errors.New(`ent: missing required field "Run.id_test"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Run.version"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Run.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Planned(); !ok {
		return &ValidationError{Name: "planned", err: errors.New(`ent: missing required field "Run.planned"`)}
	}
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		return &ValidationError{Name: "recovery_attempt", err: errors.New(`ent: missing required field "Run.recovery_attempt"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.IDTest(); ok {
		_spec.SetField(run.FieldIDTest, field.TypeInt, value)
		_node.IDTest = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(run.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Pid(); ok {
		_spec.SetField(run.FieldPid, field.TypeInt, value)
		_node.Pid = &value
	}
	if value, ok := _c.mutation.Planned(); ok {
		_spec.SetField(run.FieldPlanned, field.TypeTime, value)
		_node.Planned = value
	}
	if value, ok := _c.mutation.Started(); ok {
		_spec.SetField(run.FieldStarted, field.TypeTime, value)
		_node.Started = &value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(run.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.RecoveryAttempt(); ok {
		_spec.SetField(run.FieldRecoveryAttempt, field.TypeInt, value)
		_node.RecoveryAttempt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.Create().
//		SetIDTest(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetIDTest sets the "id_test" field.
func (u *RunUpsert) SetIDTest(v int) *RunUpsert {
	u.Set(run.FieldIDTest, v)
	return u
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *RunUpsert) UpdateIDTest() *RunUpsert {
	u.SetExcluded(run.FieldIDTest)
	return u
}

// AddIDTest adds v to the "id_test" field.
func (u *RunUpsert) AddIDTest(v int) *RunUpsert {
	u.Add(run.FieldIDTest, v)
	return u
}

// SetVersion sets the "version" field.
func (u *RunUpsert) SetVersion(v int) *RunUpsert {
	u.Set(run.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *RunUpsert) UpdateVersion() *RunUpsert {
	u.SetExcluded(run.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *RunUpsert) AddVersion(v int) *RunUpsert {
	u.Add(run.FieldVersion, v)
	return u
}

// SetState sets the "state" field.
func (u *RunUpsert) SetState(v run.State) *RunUpsert {
	u.Set(run.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *RunUpsert) UpdateState() *RunUpsert {
	u.SetExcluded(run.FieldState)
	return u
}

// SetPid sets the "pid" field.
func (u *RunUpsert) SetPid(v int) *RunUpsert {
	u.Set(run.FieldPid, v)
	return u
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *RunUpsert) UpdatePid() *RunUpsert {
	u.SetExcluded(run.FieldPid)
	return u
}

// AddPid adds v to the "pid" field.
func (u *RunUpsert) AddPid(v int) *RunUpsert {
	u.Add(run.FieldPid, v)
	return u
}

// ClearPid clears the value of the "pid" field.
func (u *RunUpsert) ClearPid() *RunUpsert {
	u.SetNull(run.FieldPid)
	return u
}

// SetPlanned sets the "planned" field.
func (u *RunUpsert) SetPlanned(v time.Time) *RunUpsert {
	u.Set(run.FieldPlanned, v)
	return u
}

// UpdatePlanned sets the "planned" field to the value that was provided on create.
func (u *RunUpsert) UpdatePlanned() *RunUpsert {
	u.SetExcluded(run.FieldPlanned)
	return u
}

// SetStarted sets the "started" field.
func (u *RunUpsert) SetStarted(v time.Time) *RunUpsert {
	u.Set(run.FieldStarted, v)
	return u
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *RunUpsert) UpdateStarted() *RunUpsert {
	u.SetExcluded(run.FieldStarted)
	return u
}

// ClearStarted clears the value of the "started" field.
func (u *RunUpsert) ClearStarted() *RunUpsert {
	u.SetNull(run.FieldStarted)
	return u
}

// SetDeadline sets the "deadline" field.
func (u *RunUpsert) SetDeadline(v time.Time) *RunUpsert {
	u.Set(run.FieldDeadline, v)
	return u
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *RunUpsert) UpdateDeadline() *RunUpsert {
	u.SetExcluded(run.FieldDeadline)
	return u
}

// ClearDeadline clears the value of the "deadline" field.
func (u *RunUpsert) ClearDeadline() *RunUpsert {
	u.SetNull(run.FieldDeadline)
	return u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *RunUpsert) SetRecoveryAttempt(v int) *RunUpsert {
	u.Set(run.FieldRecoveryAttempt, v)
	return u
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *RunUpsert) UpdateRecoveryAttempt() *RunUpsert {
	u.SetExcluded(run.FieldRecoveryAttempt)
	return u
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *RunUpsert) AddRecoveryAttempt(v int) *RunUpsert {
	u.Add(run.FieldRecoveryAttempt, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *RunUpsertOne) SetIDTest(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *RunUpsertOne) AddIDTest(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateIDTest() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateIDTest()
	})
}

// SetVersion sets the "version" field.
func (u *RunUpsertOne) SetVersion(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *RunUpsertOne) AddVersion(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateVersion() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateVersion()
	})
}

// SetState sets the "state" field.
func (u *RunUpsertOne) SetState(v run.State) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateState() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateState()
	})
}

// SetPid sets the "pid" field.
func (u *RunUpsertOne) SetPid(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *RunUpsertOne) AddPid(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePid() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePid()
	})
}

// ClearPid clears the value of the "pid" field.
func (u *RunUpsertOne) ClearPid() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearPid()
	})
}

// SetPlanned sets the "planned" field.
func (u *RunUpsertOne) SetPlanned(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPlanned(v)
	})
}

// UpdatePlanned sets the "planned" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePlanned() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePlanned()
	})
}

// SetStarted sets the "started" field.
func (u *RunUpsertOne) SetStarted(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStarted(v)
	})
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStarted() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStarted()
	})
}

// ClearStarted clears the value of the "started" field.
func (u *RunUpsertOne) ClearStarted() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStarted()
	})
}

// SetDeadline sets the "deadline" field.
func (u *RunUpsertOne) SetDeadline(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateDeadline() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *RunUpsertOne) ClearDeadline() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearDeadline()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *RunUpsertOne) SetRecoveryAttempt(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *RunUpsertOne) AddRecoveryAttempt(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateRecoveryAttempt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *RunUpsertBulk) SetIDTest(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *RunUpsertBulk) AddIDTest(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateIDTest() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateIDTest()
	})
}

// SetVersion sets the "version" field.
func (u *RunUpsertBulk) SetVersion(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *RunUpsertBulk) AddVersion(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateVersion() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateVersion()
	})
}

// SetState sets the "state" field.
func (u *RunUpsertBulk) SetState(v run.State) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateState() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateState()
	})
}

// SetPid sets the "pid" field.
func (u *RunUpsertBulk) SetPid(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *RunUpsertBulk) AddPid(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePid() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePid()
	})
}

// ClearPid clears the value of the "pid" field.
func (u *RunUpsertBulk) ClearPid() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearPid()
	})
}

// SetPlanned sets the "planned" field.
func (u *RunUpsertBulk) SetPlanned(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPlanned(v)
	})
}

// UpdatePlanned sets the "planned" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePlanned() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePlanned()
	})
}

// SetStarted sets the "started" field.
func (u *RunUpsertBulk) SetStarted(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStarted(v)
	})
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStarted() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStarted()
	})
}

// ClearStarted clears the value of the "started" field.
func (u *RunUpsertBulk) ClearStarted() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStarted()
	})
}

// SetDeadline sets the "deadline" field.
func (u *RunUpsertBulk) SetDeadline(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateDeadline() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *RunUpsertBulk) ClearDeadline() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearDeadline()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *RunUpsertBulk) SetRecoveryAttempt(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *RunUpsertBulk) AddRecoveryAttempt(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateRecoveryAttempt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
