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
	"github.com/inventor-project/symon/ent/multiresult"
)

// MultiResultCreate is the builder for creating a MultiResult entity.
type MultiResultCreate struct {
	config
	mutation *MultiResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrchestratorName sets the "orchestrator_name" field.
func (_c *MultiResultCreate) SetOrchestratorName(v string) *MultiResultCreate {
	_c.mutation.SetOrchestratorName(v)
	return _c
}

// SetTestIds sets the "test_ids" field.
func (_c *MultiResultCreate) SetTestIds(v []int) *MultiResultCreate {
	_c.mutation.SetTestIds(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *MultiResultCreate) SetKey(v string) *MultiResultCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetLastUsedTime sets the "last_used_time" field.
func (_c *MultiResultCreate) SetLastUsedTime(v time.Time) *MultiResultCreate {
	_c.mutation.SetLastUsedTime(v)
	return _c
}

// SetNillableLastUsedTime sets the "last_used_time" field if the given value is not nil.
func (_c *MultiResultCreate) SetNillableLastUsedTime(v *time.Time) *MultiResultCreate {
	if v != nil {
		_c.SetLastUsedTime(*v)
	}
	return _c
}

// Mutation returns the MultiResultMutation object of the builder.
func (_c *MultiResultCreate) Mutation() *MultiResultMutation {
	return _c.mutation
}

// Save creates the MultiResult in the database.
func (_c *MultiResultCreate) Save(ctx context.Context) (*MultiResult, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MultiResultCreate) SaveX(ctx context.Context) *MultiResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MultiResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MultiResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MultiResultCreate) check() error {
	if _, ok := _c.mutation.OrchestratorName(); !ok {
		return &ValidationError{Name: "orchestrator_name", err: errors.New(`ent: missing required field "MultiResult.orchestrator_name"`)}
	}
	if _, ok := _c.mutation.TestIds(); !ok {
		return &ValidationError{Name: "test_ids", err: errors.New(`ent: missing required field "MultiResult.test_ids"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "MultiResult.key"`)}
	}
	return nil
}

func (_c *MultiResultCreate) sqlSave(ctx context.Context) (*MultiResult, error) {
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

func (_c *MultiResultCreate) createSpec() (*MultiResult, *sqlgraph.CreateSpec) {
	var (
		_node = &MultiResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(multiresult.Table, sqlgraph.NewFieldSpec(multiresult.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OrchestratorName(); ok {
		_spec.SetField(multiresult.FieldOrchestratorName, field.TypeString, value)
		_node.OrchestratorName = value
	}
	if value, ok := _c.mutation.TestIds(); ok {
		_spec.SetField(multiresult.FieldTestIds, field.TypeJSON, value)
		_node.TestIds = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(multiresult.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.LastUsedTime(); ok {
		_spec.SetField(multiresult.FieldLastUsedTime, field.TypeTime, value)
		_node.LastUsedTime = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MultiResult.Create().
//		SetOrchestratorName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MultiResultUpsert) {
//			SetOrchestratorName(v+v).
//		}).
//		Exec(ctx)
func (_c *MultiResultCreate) OnConflict(opts ...sql.ConflictOption) *MultiResultUpsertOne {
	_c.conflict = opts
	return &MultiResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MultiResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MultiResultCreate) OnConflictColumns(columns ...string) *MultiResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MultiResultUpsertOne{
		create: _c,
	}
}

type (
	// MultiResultUpsertOne is the builder for "upsert"-ing
	//  one MultiResult node.
	MultiResultUpsertOne struct {
		create *MultiResultCreate
	}

	// MultiResultUpsert is the "OnConflict" setter.
	MultiResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrchestratorName sets the "orchestrator_name" field.
func (u *MultiResultUpsert) SetOrchestratorName(v string) *MultiResultUpsert {
	u.Set(multiresult.FieldOrchestratorName, v)
	return u
}

// UpdateOrchestratorName sets the "orchestrator_name" field to the value that was provided on create.
func (u *MultiResultUpsert) UpdateOrchestratorName() *MultiResultUpsert {
	u.SetExcluded(multiresult.FieldOrchestratorName)
	return u
}

// SetTestIds sets the "test_ids" field.
func (u *MultiResultUpsert) SetTestIds(v []int) *MultiResultUpsert {
	u.Set(multiresult.FieldTestIds, v)
	return u
}

// UpdateTestIds sets the "test_ids" field to the value that was provided on create.
func (u *MultiResultUpsert) UpdateTestIds() *MultiResultUpsert {
	u.SetExcluded(multiresult.FieldTestIds)
	return u
}

// SetKey sets the "key" field.
func (u *MultiResultUpsert) SetKey(v string) *MultiResultUpsert {
	u.Set(multiresult.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *MultiResultUpsert) UpdateKey() *MultiResultUpsert {
	u.SetExcluded(multiresult.FieldKey)
	return u
}

// SetLastUsedTime sets the "last_used_time" field.
func (u *MultiResultUpsert) SetLastUsedTime(v time.Time) *MultiResultUpsert {
	u.Set(multiresult.FieldLastUsedTime, v)
	return u
}

// UpdateLastUsedTime sets the "last_used_time" field to the value that was provided on create.
func (u *MultiResultUpsert) UpdateLastUsedTime() *MultiResultUpsert {
	u.SetExcluded(multiresult.FieldLastUsedTime)
	return u
}

// ClearLastUsedTime clears the value of the "last_used_time" field.
func (u *MultiResultUpsert) ClearLastUsedTime() *MultiResultUpsert {
	u.SetNull(multiresult.FieldLastUsedTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MultiResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MultiResultUpsertOne) UpdateNewValues() *MultiResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MultiResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MultiResultUpsertOne) Ignore() *MultiResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MultiResultUpsertOne) DoNothing() *MultiResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MultiResultCreate.OnConflict
// documentation for more info.
func (u *MultiResultUpsertOne) Update(set func(*MultiResultUpsert)) *MultiResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MultiResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrchestratorName sets the "orchestrator_name" field.
func (u *MultiResultUpsertOne) SetOrchestratorName(v string) *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetOrchestratorName(v)
	})
}

// UpdateOrchestratorName sets the "orchestrator_name" field to the value that was provided on create.
func (u *MultiResultUpsertOne) UpdateOrchestratorName() *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateOrchestratorName()
	})
}

// SetTestIds sets the "test_ids" field.
func (u *MultiResultUpsertOne) SetTestIds(v []int) *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetTestIds(v)
	})
}

// UpdateTestIds sets the "test_ids" field to the value that was provided on create.
func (u *MultiResultUpsertOne) UpdateTestIds() *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateTestIds()
	})
}

// SetKey sets the "key" field.
func (u *MultiResultUpsertOne) SetKey(v string) *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *MultiResultUpsertOne) UpdateKey() *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateKey()
	})
}

// SetLastUsedTime sets the "last_used_time" field.
func (u *MultiResultUpsertOne) SetLastUsedTime(v time.Time) *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetLastUsedTime(v)
	})
}

// UpdateLastUsedTime sets the "last_used_time" field to the value that was provided on create.
func (u *MultiResultUpsertOne) UpdateLastUsedTime() *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateLastUsedTime()
	})
}

// ClearLastUsedTime clears the value of the "last_used_time" field.
func (u *MultiResultUpsertOne) ClearLastUsedTime() *MultiResultUpsertOne {
	return u.Update(func(s *MultiResultUpsert) {
		s.ClearLastUsedTime()
	})
}

// Exec executes the query.
func (u *MultiResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MultiResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MultiResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MultiResultUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MultiResultUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MultiResultCreateBulk is the builder for creating many MultiResult entities in bulk.
type MultiResultCreateBulk struct {
	config
	err      error
	builders []*MultiResultCreate
	conflict []sql.ConflictOption
}

// Save creates the MultiResult entities in the database.
func (_c *MultiResultCreateBulk) Save(ctx context.Context) ([]*MultiResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MultiResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MultiResultMutation)
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
func (_c *MultiResultCreateBulk) SaveX(ctx context.Context) []*MultiResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MultiResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MultiResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MultiResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MultiResultUpsert) {
//			SetOrchestratorName(v+v).
//		}).
//		Exec(ctx)
func (_c *MultiResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *MultiResultUpsertBulk {
	_c.conflict = opts
	return &MultiResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MultiResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MultiResultCreateBulk) OnConflictColumns(columns ...string) *MultiResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MultiResultUpsertBulk{
		create: _c,
	}
}

// MultiResultUpsertBulk is the builder for "upsert"-ing
// a bulk of MultiResult nodes.
type MultiResultUpsertBulk struct {
	create *MultiResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MultiResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MultiResultUpsertBulk) UpdateNewValues() *MultiResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MultiResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MultiResultUpsertBulk) Ignore() *MultiResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MultiResultUpsertBulk) DoNothing() *MultiResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MultiResultCreateBulk.OnConflict
// documentation for more info.
func (u *MultiResultUpsertBulk) Update(set func(*MultiResultUpsert)) *MultiResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MultiResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrchestratorName sets the "orchestrator_name" field.
func (u *MultiResultUpsertBulk) SetOrchestratorName(v string) *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetOrchestratorName(v)
	})
}

// UpdateOrchestratorName sets the "orchestrator_name" field to the value that was provided on create.
func (u *MultiResultUpsertBulk) UpdateOrchestratorName() *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateOrchestratorName()
	})
}

// SetTestIds sets the "test_ids" field.
func (u *MultiResultUpsertBulk) SetTestIds(v []int) *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetTestIds(v)
	})
}

// UpdateTestIds sets the "test_ids" field to the value that was provided on create.
func (u *MultiResultUpsertBulk) UpdateTestIds() *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateTestIds()
	})
}

// SetKey sets the "key" field.
func (u *MultiResultUpsertBulk) SetKey(v string) *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *MultiResultUpsertBulk) UpdateKey() *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateKey()
	})
}

// SetLastUsedTime sets the "last_used_time" field.
func (u *MultiResultUpsertBulk) SetLastUsedTime(v time.Time) *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.SetLastUsedTime(v)
	})
}

// UpdateLastUsedTime sets the "last_used_time" field to the value that was provided on create.
func (u *MultiResultUpsertBulk) UpdateLastUsedTime() *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.UpdateLastUsedTime()
	})
}

// ClearLastUsedTime clears the value of the "last_used_time" field.
func (u *MultiResultUpsertBulk) ClearLastUsedTime() *MultiResultUpsertBulk {
	return u.Update(func(s *MultiResultUpsert) {
		s.ClearLastUsedTime()
	})
}

// Exec executes the query.
func (u *MultiResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MultiResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MultiResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MultiResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
