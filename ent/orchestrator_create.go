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
	"github.com/inventor-project/symon/ent/orchestrator"
)

// OrchestratorCreate is the builder for creating a Orchestrator entity.
type OrchestratorCreate struct {
	config
	mutation *OrchestratorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *OrchestratorCreate) SetName(v string) *OrchestratorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *OrchestratorCreate) SetLastSeen(v time.Time) *OrchestratorCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// Mutation returns the OrchestratorMutation object of the builder.
func (_c *OrchestratorCreate) Mutation() *OrchestratorMutation {
	return _c.mutation
}

// Save creates the Orchestrator in the database.
func (_c *OrchestratorCreate) Save(ctx context.Context) (*Orchestrator, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestratorCreate) SaveX(ctx context.Context) *Orchestrator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestratorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Orchestrator.name"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Orchestrator.last_seen"`)}
	}
	return nil
}

func (_c *OrchestratorCreate) sqlSave(ctx context.Context) (*Orchestrator, error) {
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

func (_c *OrchestratorCreate) createSpec() (*Orchestrator, *sqlgraph.CreateSpec) {
	var (
		_node = &Orchestrator{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestrator.Table, sqlgraph.NewFieldSpec(orchestrator.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(orchestrator.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(orchestrator.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Orchestrator.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrchestratorUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *OrchestratorCreate) OnConflict(opts ...sql.ConflictOption) *OrchestratorUpsertOne {
	_c.conflict = opts
	return &OrchestratorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Orchestrator.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrchestratorCreate) OnConflictColumns(columns ...string) *OrchestratorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrchestratorUpsertOne{
		create: _c,
	}
}

type (
	// OrchestratorUpsertOne is the builder for "upsert"-ing
	//  one Orchestrator node.
	OrchestratorUpsertOne struct {
		create *OrchestratorCreate
	}

	// OrchestratorUpsert is the "OnConflict" setter.
	OrchestratorUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *OrchestratorUpsert) SetName(v string) *OrchestratorUpsert {
	u.Set(orchestrator.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *OrchestratorUpsert) UpdateName() *OrchestratorUpsert {
	u.SetExcluded(orchestrator.FieldName)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *OrchestratorUpsert) SetLastSeen(v time.Time) *OrchestratorUpsert {
	u.Set(orchestrator.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *OrchestratorUpsert) UpdateLastSeen() *OrchestratorUpsert {
	u.SetExcluded(orchestrator.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Orchestrator.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrchestratorUpsertOne) UpdateNewValues() *OrchestratorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Orchestrator.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrchestratorUpsertOne) Ignore() *OrchestratorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrchestratorUpsertOne) DoNothing() *OrchestratorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrchestratorCreate.OnConflict
// documentation for more info.
func (u *OrchestratorUpsertOne) Update(set func(*OrchestratorUpsert)) *OrchestratorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrchestratorUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *OrchestratorUpsertOne) SetName(v string) *OrchestratorUpsertOne {
	return u.Update(func(s *OrchestratorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *OrchestratorUpsertOne) UpdateName() *OrchestratorUpsertOne {
	return u.Update(func(s *OrchestratorUpsert) {
		s.UpdateName()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *OrchestratorUpsertOne) SetLastSeen(v time.Time) *OrchestratorUpsertOne {
	return u.Update(func(s *OrchestratorUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *OrchestratorUpsertOne) UpdateLastSeen() *OrchestratorUpsertOne {
	return u.Update(func(s *OrchestratorUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *OrchestratorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrchestratorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrchestratorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrchestratorUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrchestratorUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrchestratorCreateBulk is the builder for creating many Orchestrator entities in bulk.
type OrchestratorCreateBulk struct {
	config
	err      error
	builders []*OrchestratorCreate
	conflict []sql.ConflictOption
}

// Save creates the Orchestrator entities in the database.
func (_c *OrchestratorCreateBulk) Save(ctx context.Context) ([]*Orchestrator, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Orchestrator, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestratorMutation)
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
func (_c *OrchestratorCreateBulk) SaveX(ctx context.Context) []*Orchestrator {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Orchestrator.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrchestratorUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *OrchestratorCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrchestratorUpsertBulk {
	_c.conflict = opts
	return &OrchestratorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Orchestrator.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrchestratorCreateBulk) OnConflictColumns(columns ...string) *OrchestratorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrchestratorUpsertBulk{
		create: _c,
	}
}

// OrchestratorUpsertBulk is the builder for "upsert"-ing
// a bulk of Orchestrator nodes.
type OrchestratorUpsertBulk struct {
	create *OrchestratorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Orchestrator.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrchestratorUpsertBulk) UpdateNewValues() *OrchestratorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Orchestrator.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrchestratorUpsertBulk) Ignore() *OrchestratorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrchestratorUpsertBulk) DoNothing() *OrchestratorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrchestratorCreateBulk.OnConflict
// documentation for more info.
func (u *OrchestratorUpsertBulk) Update(set func(*OrchestratorUpsert)) *OrchestratorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrchestratorUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *OrchestratorUpsertBulk) SetName(v string) *OrchestratorUpsertBulk {
	return u.Update(func(s *OrchestratorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *OrchestratorUpsertBulk) UpdateName() *OrchestratorUpsertBulk {
	return u.Update(func(s *OrchestratorUpsert) {
		s.UpdateName()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *OrchestratorUpsertBulk) SetLastSeen(v time.Time) *OrchestratorUpsertBulk {
	return u.Update(func(s *OrchestratorUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *OrchestratorUpsertBulk) UpdateLastSeen() *OrchestratorUpsertBulk {
	return u.Update(func(s *OrchestratorUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *OrchestratorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrchestratorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrchestratorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrchestratorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
