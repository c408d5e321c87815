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
	"github.com/inventor-project/symon/ent/oldparam"
)

// OldParamCreate is the builder for creating a OldParam entity.
type OldParamCreate struct {
	config
	mutation *OldParamMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIDTest sets the "id_test" field.
func (_c *OldParamCreate) SetIDTest(v int) *OldParamCreate {
	_c.mutation.SetIDTest(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *OldParamCreate) SetVersion(v int) *OldParamCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetTestParams sets the "test_params" field.
func (_c *OldParamCreate) SetTestParams(v string) *OldParamCreate {
	_c.mutation.SetTestParams(v)
	return _c
}

// SetChanged sets the "changed" field.
func (_c *OldParamCreate) SetChanged(v time.Time) *OldParamCreate {
	_c.mutation.SetChanged(v)
	return _c
}

// Mutation returns the OldParamMutation object of the builder.
func (_c *OldParamCreate) Mutation() *OldParamMutation {
	return _c.mutation
}

// Save creates the OldParam in the database.
func (_c *OldParamCreate) Save(ctx context.Context) (*OldParam, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OldParamCreate) SaveX(ctx context.Context) *OldParam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OldParamCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OldParamCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OldParamCreate) check() error {
	if _, ok := _c.mutation.IDTest(); !ok {
		return &ValidationError{Name: "id_test", err: errors.New(`ent: missing required field "OldParam.id_test"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "OldParam.version"`)}
	}
	if _, ok := _c.mutation.TestParams(); !ok {
		return &ValidationError{Name: "test_params", err: errors.New(`ent: missing required field "OldParam.test_params"`)}
	}
	if _, ok := _c.mutation.Changed(); !ok {
		return &ValidationError{Name: "changed", err: errors.New(`ent: missing required field "OldParam.changed"`)}
	}
	return nil
}

func (_c *OldParamCreate) sqlSave(ctx context.Context) (*OldParam, error) {
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

func (_c *OldParamCreate) createSpec() (*OldParam, *sqlgraph.CreateSpec) {
	var (
		_node = &OldParam{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oldparam.Table, sqlgraph.NewFieldSpec(oldparam.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.IDTest(); ok {
		_spec.SetField(oldparam.FieldIDTest, field.TypeInt, value)
		_node.IDTest = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(oldparam.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.TestParams(); ok {
		_spec.SetField(oldparam.FieldTestParams, field.TypeString, value)
		_node.TestParams = value
	}
	if value, ok := _c.mutation.Changed(); ok {
		_spec.SetField(oldparam.FieldChanged, field.TypeTime, value)
		_node.Changed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OldParam.Create().
//		SetIDTest(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OldParamUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *OldParamCreate) OnConflict(opts ...sql.ConflictOption) *OldParamUpsertOne {
	_c.conflict = opts
	return &OldParamUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OldParam.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OldParamCreate) OnConflictColumns(columns ...string) *OldParamUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OldParamUpsertOne{
		create: _c,
	}
}

type (
	// OldParamUpsertOne is the builder for "upsert"-ing
	//  one OldParam node.
	OldParamUpsertOne struct {
		create *OldParamCreate
	}

	// OldParamUpsert is the "OnConflict" setter.
	OldParamUpsert struct {
		*sql.UpdateSet
	}
)

// SetIDTest sets the "id_test" field.
func (u *OldParamUpsert) SetIDTest(v int) *OldParamUpsert {
	u.Set(oldparam.FieldIDTest, v)
	return u
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *OldParamUpsert) UpdateIDTest() *OldParamUpsert {
	u.SetExcluded(oldparam.FieldIDTest)
	return u
}

// AddIDTest adds v to the "id_test" field.
func (u *OldParamUpsert) AddIDTest(v int) *OldParamUpsert {
	u.Add(oldparam.FieldIDTest, v)
	return u
}

// SetVersion sets the "version" field.
func (u *OldParamUpsert) SetVersion(v int) *OldParamUpsert {
	u.Set(oldparam.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *OldParamUpsert) UpdateVersion() *OldParamUpsert {
	u.SetExcluded(oldparam.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *OldParamUpsert) AddVersion(v int) *OldParamUpsert {
	u.Add(oldparam.FieldVersion, v)
	return u
}

// SetTestParams sets the "test_params" field.
func (u *OldParamUpsert) SetTestParams(v string) *OldParamUpsert {
	u.Set(oldparam.FieldTestParams, v)
	return u
}

// UpdateTestParams sets the "test_params" field to the value that was provided on create.
func (u *OldParamUpsert) UpdateTestParams() *OldParamUpsert {
	u.SetExcluded(oldparam.FieldTestParams)
	return u
}

// SetChanged sets the "changed" field.
func (u *OldParamUpsert) SetChanged(v time.Time) *OldParamUpsert {
	u.Set(oldparam.FieldChanged, v)
	return u
}

// UpdateChanged sets the "changed" field to the value that was provided on create.
func (u *OldParamUpsert) UpdateChanged() *OldParamUpsert {
	u.SetExcluded(oldparam.FieldChanged)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OldParam.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OldParamUpsertOne) UpdateNewValues() *OldParamUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OldParam.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OldParamUpsertOne) Ignore() *OldParamUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OldParamUpsertOne) DoNothing() *OldParamUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OldParamCreate.OnConflict
// documentation for more info.
func (u *OldParamUpsertOne) Update(set func(*OldParamUpsert)) *OldParamUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OldParamUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *OldParamUpsertOne) SetIDTest(v int) *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *OldParamUpsertOne) AddIDTest(v int) *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *OldParamUpsertOne) UpdateIDTest() *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateIDTest()
	})
}

// SetVersion sets the "version" field.
func (u *OldParamUpsertOne) SetVersion(v int) *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *OldParamUpsertOne) AddVersion(v int) *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *OldParamUpsertOne) UpdateVersion() *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateVersion()
	})
}

// SetTestParams sets the "test_params" field.
func (u *OldParamUpsertOne) SetTestParams(v string) *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.SetTestParams(v)
	})
}

// UpdateTestParams sets the "test_params" field to the value that was provided on create.
func (u *OldParamUpsertOne) UpdateTestParams() *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateTestParams()
	})
}

// SetChanged sets the "changed" field.
func (u *OldParamUpsertOne) SetChanged(v time.Time) *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.SetChanged(v)
	})
}

// UpdateChanged sets the "changed" field to the value that was provided on create.
func (u *OldParamUpsertOne) UpdateChanged() *OldParamUpsertOne {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateChanged()
	})
}

// Exec executes the query.
func (u *OldParamUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OldParamCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OldParamUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OldParamUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OldParamUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OldParamCreateBulk is the builder for creating many OldParam entities in bulk.
type OldParamCreateBulk struct {
	config
	err      error
	builders []*OldParamCreate
	conflict []sql.ConflictOption
}

// Save creates the OldParam entities in the database.
func (_c *OldParamCreateBulk) Save(ctx context.Context) ([]*OldParam, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OldParam, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OldParamMutation)
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
func (_c *OldParamCreateBulk) SaveX(ctx context.Context) []*OldParam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OldParamCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OldParamCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OldParam.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OldParamUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *OldParamCreateBulk) OnConflict(opts ...sql.ConflictOption) *OldParamUpsertBulk {
	_c.conflict = opts
	return &OldParamUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OldParam.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OldParamCreateBulk) OnConflictColumns(columns ...string) *OldParamUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OldParamUpsertBulk{
		create: _c,
	}
}

// OldParamUpsertBulk is the builder for "upsert"-ing
// a bulk of OldParam nodes.
type OldParamUpsertBulk struct {
	create *OldParamCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OldParam.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OldParamUpsertBulk) UpdateNewValues() *OldParamUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OldParam.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OldParamUpsertBulk) Ignore() *OldParamUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OldParamUpsertBulk) DoNothing() *OldParamUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OldParamCreateBulk.OnConflict
// documentation for more info.
func (u *OldParamUpsertBulk) Update(set func(*OldParamUpsert)) *OldParamUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OldParamUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *OldParamUpsertBulk) SetIDTest(v int) *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *OldParamUpsertBulk) AddIDTest(v int) *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *OldParamUpsertBulk) UpdateIDTest() *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateIDTest()
	})
}

// SetVersion sets the "version" field.
func (u *OldParamUpsertBulk) SetVersion(v int) *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *OldParamUpsertBulk) AddVersion(v int) *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *OldParamUpsertBulk) UpdateVersion() *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateVersion()
	})
}

// SetTestParams sets the "test_params" field.
func (u *OldParamUpsertBulk) SetTestParams(v string) *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.SetTestParams(v)
	})
}

// UpdateTestParams sets the "test_params" field to the value that was provided on create.
func (u *OldParamUpsertBulk) UpdateTestParams() *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateTestParams()
	})
}

// SetChanged sets the "changed" field.
func (u *OldParamUpsertBulk) SetChanged(v time.Time) *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.SetChanged(v)
	})
}

// UpdateChanged sets the "changed" field to the value that was provided on create.
func (u *OldParamUpsertBulk) UpdateChanged() *OldParamUpsertBulk {
	return u.Update(func(s *OldParamUpsert) {
		s.UpdateChanged()
	})
}

// Exec executes the query.
func (u *OldParamUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OldParamCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OldParamCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OldParamUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
