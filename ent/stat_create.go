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
	"github.com/inventor-project/symon/ent/stat"
)

// StatCreate is the builder for creating a Stat entity.
type StatCreate struct {
	config
	mutation *StatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTime sets the "time" field.
func (_c *StatCreate) SetTime(v time.Time) *StatCreate {
	_c.mutation.SetTime(v)
	return _c
}

// SetTableName sets the "table_name" field.
func (_c *StatCreate) SetTableName(v string) *StatCreate {
	_c.mutation.SetTableName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *StatCreate) SetCategory(v string) *StatCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *StatCreate) SetValue(v int) *StatCreate {
	_c.mutation.SetValue(v)
	return _c
}

// Mutation returns the StatMutation object of the builder.
func (_c *StatCreate) Mutation() *StatMutation {
	return _c.mutation
}

// Save creates the Stat in the database.
func (_c *StatCreate) Save(ctx context.Context) (*Stat, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatCreate) SaveX(ctx context.Context) *Stat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatCreate) check() error {
	if _, ok := _c.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`ent: missing required field "Stat.time"`)}
	}
	if _, ok := _c.mutation.TableName(); !ok {
		return &ValidationError{Name: "table_name", err: errors.New(`ent: missing required field "Stat.table_name"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Stat.category"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Stat.value"`)}
	}
	return nil
}

func (_c *StatCreate) sqlSave(ctx context.Context) (*Stat, error) {
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

func (_c *StatCreate) createSpec() (*Stat, *sqlgraph.CreateSpec) {
	var (
		_node = &Stat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stat.Table, sqlgraph.NewFieldSpec(stat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Time(); ok {
		_spec.SetField(stat.FieldTime, field.TypeTime, value)
		_node.Time = value
	}
	if value, ok := _c.mutation.TableName(); ok {
		_spec.SetField(stat.FieldTableName, field.TypeString, value)
		_node.TableName = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(stat.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(stat.FieldValue, field.TypeInt, value)
		_node.Value = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stat.Create().
//		SetTime(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatUpsert) {
//			SetTime(v+v).
//		}).
//		Exec(ctx)
func (_c *StatCreate) OnConflict(opts ...sql.ConflictOption) *StatUpsertOne {
	_c.conflict = opts
	return &StatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StatCreate) OnConflictColumns(columns ...string) *StatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StatUpsertOne{
		create: _c,
	}
}

type (
	// StatUpsertOne is the builder for "upsert"-ing
	//  one Stat node.
	StatUpsertOne struct {
		create *StatCreate
	}

	// StatUpsert is the "OnConflict" setter.
	StatUpsert struct {
		*sql.UpdateSet
	}
)

// SetTime sets the "time" field.
func (u *StatUpsert) SetTime(v time.Time) *StatUpsert {
	u.Set(stat.FieldTime, v)
	return u
}

// UpdateTime sets the "time" field to the value that was provided on create.
func (u *StatUpsert) UpdateTime() *StatUpsert {
	u.SetExcluded(stat.FieldTime)
	return u
}

// SetTableName sets the "table_name" field.
func (u *StatUpsert) SetTableName(v string) *StatUpsert {
	u.Set(stat.FieldTableName, v)
	return u
}

// UpdateTableName sets the "table_name" field to the value that was provided on create.
func (u *StatUpsert) UpdateTableName() *StatUpsert {
	u.SetExcluded(stat.FieldTableName)
	return u
}

// SetCategory sets the "category" field.
func (u *StatUpsert) SetCategory(v string) *StatUpsert {
	u.Set(stat.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *StatUpsert) UpdateCategory() *StatUpsert {
	u.SetExcluded(stat.FieldCategory)
	return u
}

// SetValue sets the "value" field.
func (u *StatUpsert) SetValue(v int) *StatUpsert {
	u.Set(stat.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *StatUpsert) UpdateValue() *StatUpsert {
	u.SetExcluded(stat.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *StatUpsert) AddValue(v int) *StatUpsert {
	u.Add(stat.FieldValue, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Stat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StatUpsertOne) UpdateNewValues() *StatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StatUpsertOne) Ignore() *StatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatUpsertOne) DoNothing() *StatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatCreate.OnConflict
// documentation for more info.
func (u *StatUpsertOne) Update(set func(*StatUpsert)) *StatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatUpsert{UpdateSet: update})
	}))
	return u
}

// SetTime sets the "time" field.
func (u *StatUpsertOne) SetTime(v time.Time) *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.SetTime(v)
	})
}

// UpdateTime sets the "time" field to the value that was provided on create.
func (u *StatUpsertOne) UpdateTime() *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.UpdateTime()
	})
}

// SetTableName sets the "table_name" field.
func (u *StatUpsertOne) SetTableName(v string) *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.SetTableName(v)
	})
}

// UpdateTableName sets the "table_name" field to the value that was provided on create.
func (u *StatUpsertOne) UpdateTableName() *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.UpdateTableName()
	})
}

// SetCategory sets the "category" field.
func (u *StatUpsertOne) SetCategory(v string) *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *StatUpsertOne) UpdateCategory() *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.UpdateCategory()
	})
}

// SetValue sets the "value" field.
func (u *StatUpsertOne) SetValue(v int) *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *StatUpsertOne) AddValue(v int) *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *StatUpsertOne) UpdateValue() *StatUpsertOne {
	return u.Update(func(s *StatUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *StatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StatCreateBulk is the builder for creating many Stat entities in bulk.
type StatCreateBulk struct {
	config
	err      error
	builders []*StatCreate
	conflict []sql.ConflictOption
}

// Save creates the Stat entities in the database.
func (_c *StatCreateBulk) Save(ctx context.Context) ([]*Stat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatMutation)
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
func (_c *StatCreateBulk) SaveX(ctx context.Context) []*Stat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatUpsert) {
//			SetTime(v+v).
//		}).
//		Exec(ctx)
func (_c *StatCreateBulk) OnConflict(opts ...sql.ConflictOption) *StatUpsertBulk {
	_c.conflict = opts
	return &StatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StatCreateBulk) OnConflictColumns(columns ...string) *StatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StatUpsertBulk{
		create: _c,
	}
}

// StatUpsertBulk is the builder for "upsert"-ing
// a bulk of Stat nodes.
type StatUpsertBulk struct {
	create *StatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Stat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StatUpsertBulk) UpdateNewValues() *StatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StatUpsertBulk) Ignore() *StatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatUpsertBulk) DoNothing() *StatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatCreateBulk.OnConflict
// documentation for more info.
func (u *StatUpsertBulk) Update(set func(*StatUpsert)) *StatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatUpsert{UpdateSet: update})
	}))
	return u
}

// SetTime sets the "time" field.
func (u *StatUpsertBulk) SetTime(v time.Time) *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.SetTime(v)
	})
}

// UpdateTime sets the "time" field to the value that was provided on create.
func (u *StatUpsertBulk) UpdateTime() *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.UpdateTime()
	})
}

// SetTableName sets the "table_name" field.
func (u *StatUpsertBulk) SetTableName(v string) *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.SetTableName(v)
	})
}

// UpdateTableName sets the "table_name" field to the value that was provided on create.
func (u *StatUpsertBulk) UpdateTableName() *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.UpdateTableName()
	})
}

// SetCategory sets the "category" field.
func (u *StatUpsertBulk) SetCategory(v string) *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *StatUpsertBulk) UpdateCategory() *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.UpdateCategory()
	})
}

// SetValue sets the "value" field.
func (u *StatUpsertBulk) SetValue(v int) *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *StatUpsertBulk) AddValue(v int) *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *StatUpsertBulk) UpdateValue() *StatUpsertBulk {
	return u.Update(func(s *StatUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *StatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
