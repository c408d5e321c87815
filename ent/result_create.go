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
	"github.com/inventor-project/symon/ent/result"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIDTest sets the "id_test" field.
func (_c *ResultCreate) SetIDTest(v int) *ResultCreate {
	_c.mutation.SetIDTest(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ResultCreate) SetVersion(v int) *ResultCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetPlanned sets the "planned" field.
func (_c *ResultCreate) SetPlanned(v time.Time) *ResultCreate {
	_c.mutation.SetPlanned(v)
	return _c
}

// SetStarted sets the "started" field.
func (_c *ResultCreate) SetStarted(v time.Time) *ResultCreate {
	_c.mutation.SetStarted(v)
	return _c
}

// SetNillableStarted sets the "started" field if the given value is not nil.
func (_c *ResultCreate) SetNillableStarted(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetStarted(*v)
	}
	return _c
}

// SetFinished sets the "finished" field.
func (_c *ResultCreate) SetFinished(v time.Time) *ResultCreate {
	_c.mutation.SetFinished(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResultCreate) SetStatus(v result.Status) *ResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_c *ResultCreate) SetRecoveryAttempt(v int) *ResultCreate {
	_c.mutation.SetRecoveryAttempt(v)
	return _c
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_c *ResultCreate) SetNillableRecoveryAttempt(v *int) *ResultCreate {
	if v != nil {
		_c.SetRecoveryAttempt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ResultCreate) SetData(v string) *ResultCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_c *ResultCreate) SetNillableData(v *string) *ResultCreate {
	if v != nil {
		_c.SetData(*v)
	}
	return _c
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		v := result.DefaultRecoveryAttempt
		_c.mutation.SetRecoveryAttempt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.IDTest(); !ok {
		return &ValidationError{Name: "id_test", err: errors.New(`ent: missing required field "Result.id_test"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Result.version"`)}
	}
	if _, ok := _c.mutation.Planned(); !ok {
		return &ValidationError{Name: "planned", err: errors.New(`ent: missing required field "Result.planned"`)}
	}
	if _, ok := _c.mutation.Finished(); !ok {
		return &ValidationError{Name: "finished", err: errors.New(`ent: missing required field "Result.finished"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Result.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := result.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Result.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		return &ValidationError{Name: "recovery_attempt", err: errors.New(`ent: missing required field "Result.recovery_attempt"`)}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
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

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.IDTest(); ok {
		_spec.SetField(result.FieldIDTest, field.TypeInt, value)
		_node.IDTest = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(result.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Planned(); ok {
		_spec.SetField(result.FieldPlanned, field.TypeTime, value)
		_node.Planned = value
	}
	if value, ok := _c.mutation.Started(); ok {
		_spec.SetField(result.FieldStarted, field.TypeTime, value)
		_node.Started = &value
	}
	if value, ok := _c.mutation.Finished(); ok {
		_spec.SetField(result.FieldFinished, field.TypeTime, value)
		_node.Finished = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(result.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RecoveryAttempt(); ok {
		_spec.SetField(result.FieldRecoveryAttempt, field.TypeInt, value)
		_node.RecoveryAttempt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(result.FieldData, field.TypeString, value)
		_node.Data = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Result.Create().
//		SetIDTest(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResultUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *ResultCreate) OnConflict(opts ...sql.ConflictOption) *ResultUpsertOne {
	_c.conflict = opts
	return &ResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResultCreate) OnConflictColumns(columns ...string) *ResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResultUpsertOne{
		create: _c,
	}
}

type (
	// ResultUpsertOne is the builder for "upsert"-ing
	//  one Result node.
	ResultUpsertOne struct {
		create *ResultCreate
	}

	// ResultUpsert is the "OnConflict" setter.
	ResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetIDTest sets the "id_test" field.
func (u *ResultUpsert) SetIDTest(v int) *ResultUpsert {
	u.Set(result.FieldIDTest, v)
	return u
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *ResultUpsert) UpdateIDTest() *ResultUpsert {
	u.SetExcluded(result.FieldIDTest)
	return u
}

// AddIDTest adds v to the "id_test" field.
func (u *ResultUpsert) AddIDTest(v int) *ResultUpsert {
	u.Add(result.FieldIDTest, v)
	return u
}

// SetVersion sets the "version" field.
func (u *ResultUpsert) SetVersion(v int) *ResultUpsert {
	u.Set(result.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ResultUpsert) UpdateVersion() *ResultUpsert {
	u.SetExcluded(result.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *ResultUpsert) AddVersion(v int) *ResultUpsert {
	u.Add(result.FieldVersion, v)
	return u
}

// SetPlanned sets the "planned" field.
func (u *ResultUpsert) SetPlanned(v time.Time) *ResultUpsert {
	u.Set(result.FieldPlanned, v)
	return u
}

// UpdatePlanned sets the "planned" field to the value that was provided on create.
func (u *ResultUpsert) UpdatePlanned() *ResultUpsert {
	u.SetExcluded(result.FieldPlanned)
	return u
}

// SetStarted sets the "started" field.
func (u *ResultUpsert) SetStarted(v time.Time) *ResultUpsert {
	u.Set(result.FieldStarted, v)
	return u
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *ResultUpsert) UpdateStarted() *ResultUpsert {
	u.SetExcluded(result.FieldStarted)
	return u
}

// ClearStarted clears the value of the "started" field.
func (u *ResultUpsert) ClearStarted() *ResultUpsert {
	u.SetNull(result.FieldStarted)
	return u
}

// SetFinished sets the "finished" field.
func (u *ResultUpsert) SetFinished(v time.Time) *ResultUpsert {
	u.Set(result.FieldFinished, v)
	return u
}

// UpdateFinished sets the "finished" field to the value that was provided on create.
func (u *ResultUpsert) UpdateFinished() *ResultUpsert {
	u.SetExcluded(result.FieldFinished)
	return u
}

// SetStatus sets the "status" field.
func (u *ResultUpsert) SetStatus(v result.Status) *ResultUpsert {
	u.Set(result.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResultUpsert) UpdateStatus() *ResultUpsert {
	u.SetExcluded(result.FieldStatus)
	return u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *ResultUpsert) SetRecoveryAttempt(v int) *ResultUpsert {
	u.Set(result.FieldRecoveryAttempt, v)
	return u
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *ResultUpsert) UpdateRecoveryAttempt() *ResultUpsert {
	u.SetExcluded(result.FieldRecoveryAttempt)
	return u
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *ResultUpsert) AddRecoveryAttempt(v int) *ResultUpsert {
	u.Add(result.FieldRecoveryAttempt, v)
	return u
}

// SetData sets the "data" field.
func (u *ResultUpsert) SetData(v string) *ResultUpsert {
	u.Set(result.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ResultUpsert) UpdateData() *ResultUpsert {
	u.SetExcluded(result.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *ResultUpsert) ClearData() *ResultUpsert {
	u.SetNull(result.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResultUpsertOne) UpdateNewValues() *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Result.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResultUpsertOne) Ignore() *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResultUpsertOne) DoNothing() *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResultCreate.OnConflict
// documentation for more info.
func (u *ResultUpsertOne) Update(set func(*ResultUpsert)) *ResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *ResultUpsertOne) SetIDTest(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *ResultUpsertOne) AddIDTest(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateIDTest() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateIDTest()
	})
}

// SetVersion sets the "version" field.
func (u *ResultUpsertOne) SetVersion(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ResultUpsertOne) AddVersion(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateVersion() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateVersion()
	})
}

// SetPlanned sets the "planned" field.
func (u *ResultUpsertOne) SetPlanned(v time.Time) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetPlanned(v)
	})
}

// UpdatePlanned sets the "planned" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdatePlanned() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdatePlanned()
	})
}

// SetStarted sets the "started" field.
func (u *ResultUpsertOne) SetStarted(v time.Time) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetStarted(v)
	})
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateStarted() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateStarted()
	})
}

// ClearStarted clears the value of the "started" field.
func (u *ResultUpsertOne) ClearStarted() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.ClearStarted()
	})
}

// SetFinished sets the "finished" field.
func (u *ResultUpsertOne) SetFinished(v time.Time) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetFinished(v)
	})
}

// UpdateFinished sets the "finished" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateFinished() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateFinished()
	})
}

// SetStatus sets the "status" field.
func (u *ResultUpsertOne) SetStatus(v result.Status) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateStatus() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateStatus()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *ResultUpsertOne) SetRecoveryAttempt(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *ResultUpsertOne) AddRecoveryAttempt(v int) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateRecoveryAttempt() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// SetData sets the "data" field.
func (u *ResultUpsertOne) SetData(v string) *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ResultUpsertOne) UpdateData() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *ResultUpsertOne) ClearData() *ResultUpsertOne {
	return u.Update(func(s *ResultUpsert) {
		s.ClearData()
	})
}

// Exec executes the query.
func (u *ResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResultUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResultUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
	conflict []sql.ConflictOption
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
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
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Result.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResultUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *ResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResultUpsertBulk {
	_c.conflict = opts
	return &ResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResultCreateBulk) OnConflictColumns(columns ...string) *ResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResultUpsertBulk{
		create: _c,
	}
}

// ResultUpsertBulk is the builder for "upsert"-ing
// a bulk of Result nodes.
type ResultUpsertBulk struct {
	create *ResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResultUpsertBulk) UpdateNewValues() *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Result.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResultUpsertBulk) Ignore() *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResultUpsertBulk) DoNothing() *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResultCreateBulk.OnConflict
// documentation for more info.
func (u *ResultUpsertBulk) Update(set func(*ResultUpsert)) *ResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *ResultUpsertBulk) SetIDTest(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *ResultUpsertBulk) AddIDTest(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateIDTest() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateIDTest()
	})
}

// SetVersion sets the "version" field.
func (u *ResultUpsertBulk) SetVersion(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ResultUpsertBulk) AddVersion(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateVersion() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateVersion()
	})
}

// SetPlanned sets the "planned" field.
func (u *ResultUpsertBulk) SetPlanned(v time.Time) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetPlanned(v)
	})
}

// UpdatePlanned sets the "planned" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdatePlanned() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdatePlanned()
	})
}

// SetStarted sets the "started" field.
func (u *ResultUpsertBulk) SetStarted(v time.Time) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetStarted(v)
	})
}

// UpdateStarted sets the "started" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateStarted() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateStarted()
	})
}

// ClearStarted clears the value of the "started" field.
func (u *ResultUpsertBulk) ClearStarted() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.ClearStarted()
	})
}

// SetFinished sets the "finished" field.
func (u *ResultUpsertBulk) SetFinished(v time.Time) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetFinished(v)
	})
}

// UpdateFinished sets the "finished" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateFinished() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateFinished()
	})
}

// SetStatus sets the "status" field.
func (u *ResultUpsertBulk) SetStatus(v result.Status) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateStatus() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateStatus()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *ResultUpsertBulk) SetRecoveryAttempt(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *ResultUpsertBulk) AddRecoveryAttempt(v int) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateRecoveryAttempt() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// SetData sets the "data" field.
func (u *ResultUpsertBulk) SetData(v string) *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *ResultUpsertBulk) UpdateData() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *ResultUpsertBulk) ClearData() *ResultUpsertBulk {
	return u.Update(func(s *ResultUpsert) {
		s.ClearData()
	})
}

// Exec executes the query.
func (u *ResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
