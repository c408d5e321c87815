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
	"github.com/inventor-project/symon/ent/nonce"
)

// NonceCreate is the builder for creating a Nonce entity.
type NonceCreate struct {
	config
	mutation *NonceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNonce sets the "nonce" field.
func (_c *NonceCreate) SetNonce(v string) *NonceCreate {
	_c.mutation.SetNonce(v)
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *NonceCreate) SetUsedAt(v time.Time) *NonceCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// Mutation returns the NonceMutation object of the builder.
func (_c *NonceCreate) Mutation() *NonceMutation {
	return _c.mutation
}

// Save creates the Nonce in the database.
func (_c *NonceCreate) Save(ctx context.Context) (*Nonce, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NonceCreate) SaveX(ctx context.Context) *Nonce {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NonceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NonceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NonceCreate) check() error {
	if _, ok := _c.mutation.Nonce(); !ok {
		return &ValidationError{Name: "nonce", err: errors.New(`ent: missing required field "Nonce.nonce"`)}
	}
	if _, ok := _c.mutation.UsedAt(); !ok {
		return &ValidationError{Name: "used_at", err: errors.New(`ent: missing required field "Nonce.used_at"`)}
	}
	return nil
}

func (_c *NonceCreate) sqlSave(ctx context.Context) (*Nonce, error) {
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

func (_c *NonceCreate) createSpec() (*Nonce, *sqlgraph.CreateSpec) {
	var (
		_node = &Nonce{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nonce.Table, sqlgraph.NewFieldSpec(nonce.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Nonce(); ok {
		_spec.SetField(nonce.FieldNonce, field.TypeString, value)
		_node.Nonce = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(nonce.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Nonce.Create().
//		SetNonce(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NonceUpsert) {
//			SetNonce(v+v).
//		}).
//		Exec(ctx)
func (_c *NonceCreate) OnConflict(opts ...sql.ConflictOption) *NonceUpsertOne {
	_c.conflict = opts
	return &NonceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Nonce.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NonceCreate) OnConflictColumns(columns ...string) *NonceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NonceUpsertOne{
		create: _c,
	}
}

type (
	// NonceUpsertOne is the builder for "upsert"-ing
	//  one Nonce node.
	NonceUpsertOne struct {
		create *NonceCreate
	}

	// NonceUpsert is the "OnConflict" setter.
	NonceUpsert struct {
		*sql.UpdateSet
	}
)

// SetNonce sets the "nonce" field.
func (u *NonceUpsert) SetNonce(v string) *NonceUpsert {
	u.Set(nonce.FieldNonce, v)
	return u
}

// UpdateNonce sets the "nonce" field to the value that was provided on create.
func (u *NonceUpsert) UpdateNonce() *NonceUpsert {
	u.SetExcluded(nonce.FieldNonce)
	return u
}

// SetUsedAt sets the "used_at" field.
func (u *NonceUpsert) SetUsedAt(v time.Time) *NonceUpsert {
	u.Set(nonce.FieldUsedAt, v)
	return u
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *NonceUpsert) UpdateUsedAt() *NonceUpsert {
	u.SetExcluded(nonce.FieldUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Nonce.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *NonceUpsertOne) UpdateNewValues() *NonceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Nonce.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NonceUpsertOne) Ignore() *NonceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NonceUpsertOne) DoNothing() *NonceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NonceCreate.OnConflict
// documentation for more info.
func (u *NonceUpsertOne) Update(set func(*NonceUpsert)) *NonceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NonceUpsert{UpdateSet: update})
	}))
	return u
}

// SetNonce sets the "nonce" field.
func (u *NonceUpsertOne) SetNonce(v string) *NonceUpsertOne {
	return u.Update(func(s *NonceUpsert) {
		s.SetNonce(v)
	})
}

// UpdateNonce sets the "nonce" field to the value that was provided on create.
func (u *NonceUpsertOne) UpdateNonce() *NonceUpsertOne {
	return u.Update(func(s *NonceUpsert) {
		s.UpdateNonce()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *NonceUpsertOne) SetUsedAt(v time.Time) *NonceUpsertOne {
	return u.Update(func(s *NonceUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *NonceUpsertOne) UpdateUsedAt() *NonceUpsertOne {
	return u.Update(func(s *NonceUpsert) {
		s.UpdateUsedAt()
	})
}

// Exec executes the query.
func (u *NonceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NonceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NonceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NonceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NonceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NonceCreateBulk is the builder for creating many Nonce entities in bulk.
type NonceCreateBulk struct {
	config
	err      error
	builders []*NonceCreate
	conflict []sql.ConflictOption
}

// Save creates the Nonce entities in the database.
func (_c *NonceCreateBulk) Save(ctx context.Context) ([]*Nonce, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Nonce, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NonceMutation)
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
func (_c *NonceCreateBulk) SaveX(ctx context.Context) []*Nonce {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NonceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NonceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Nonce.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NonceUpsert) {
//			SetNonce(v+v).
//		}).
//		Exec(ctx)
func (_c *NonceCreateBulk) OnConflict(opts ...sql.ConflictOption) *NonceUpsertBulk {
	_c.conflict = opts
	return &NonceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Nonce.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NonceCreateBulk) OnConflictColumns(columns ...string) *NonceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NonceUpsertBulk{
		create: _c,
	}
}

// NonceUpsertBulk is the builder for "upsert"-ing
// a bulk of Nonce nodes.
type NonceUpsertBulk struct {
	create *NonceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Nonce.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *NonceUpsertBulk) UpdateNewValues() *NonceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Nonce.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NonceUpsertBulk) Ignore() *NonceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NonceUpsertBulk) DoNothing() *NonceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NonceCreateBulk.OnConflict
// documentation for more info.
func (u *NonceUpsertBulk) Update(set func(*NonceUpsert)) *NonceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NonceUpsert{UpdateSet: update})
	}))
	return u
}

// SetNonce sets the "nonce" field.
func (u *NonceUpsertBulk) SetNonce(v string) *NonceUpsertBulk {
	return u.Update(func(s *NonceUpsert) {
		s.SetNonce(v)
	})
}

// UpdateNonce sets the "nonce" field to the value that was provided on create.
func (u *NonceUpsertBulk) UpdateNonce() *NonceUpsertBulk {
	return u.Update(func(s *NonceUpsert) {
		s.UpdateNonce()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *NonceUpsertBulk) SetUsedAt(v time.Time) *NonceUpsertBulk {
	return u.Update(func(s *NonceUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *NonceUpsertBulk) UpdateUsedAt() *NonceUpsertBulk {
	return u.Update(func(s *NonceUpsert) {
		s.UpdateUsedAt()
	})
}

// Exec executes the query.
func (u *NonceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the NonceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NonceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NonceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
