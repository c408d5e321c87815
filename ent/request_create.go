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
	"github.com/inventor-project/symon/ent/request"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIDTest sets the "id_test" field.
func (_c *RequestCreate) SetIDTest(v int) *RequestCreate {
	_c.mutation.SetIDTest(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *RequestCreate) SetReason(v request.Reason) *RequestCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_c *RequestCreate) SetRecoveryAttempt(v int) *RequestCreate {
	_c.mutation.SetRecoveryAttempt(v)
	return _c
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRecoveryAttempt(v *int) *RequestCreate {
	if v != nil {
		_c.SetRecoveryAttempt(*v)
	}
	return _c
}

// SetAddedTime sets the "added_time" field.
func (_c *RequestCreate) SetAddedTime(v time.Time) *RequestCreate {
	_c.mutation.SetAddedTime(v)
	return _c
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		v := request.DefaultRecoveryAttempt
		_c.mutation.SetRecoveryAttempt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.IDTest(); !ok {
		return &ValidationError{Name: "id_test", err: errors.New(`ent: missing required field "Request.id_test"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "Request.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := request.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "Request.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		return &ValidationError{Name: "recovery_attempt", err: errors.New(`ent: missing required field "Request.recovery_attempt"`)}
	}
	if _, ok := _c.mutation.AddedTime(); !ok {
		return &ValidationError{Name: "added_time", err: errors.New(`ent: missing required field "Request.added_time"`)}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
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

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.IDTest(); ok {
		_spec.SetField(request.FieldIDTest, field.TypeInt, value)
		_node.IDTest = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(request.FieldReason, field.TypeEnum, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RecoveryAttempt(); ok {
		_spec.SetField(request.FieldRecoveryAttempt, field.TypeInt, value)
		_node.RecoveryAttempt = value
	}
	if value, ok := _c.mutation.AddedTime(); ok {
		_spec.SetField(request.FieldAddedTime, field.TypeTime, value)
		_node.AddedTime = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Request.Create().
//		SetIDTest(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RequestUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *RequestCreate) OnConflict(opts ...sql.ConflictOption) *RequestUpsertOne {
	_c.conflict = opts
	return &RequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Request.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RequestCreate) OnConflictColumns(columns ...string) *RequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RequestUpsertOne{
		create: _c,
	}
}

type (
	// RequestUpsertOne is the builder for "upsert"-ing
	//  one Request node.
	RequestUpsertOne struct {
		create *RequestCreate
	}

	// RequestUpsert is the "OnConflict" setter.
	RequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetIDTest sets the "id_test" field.
func (u *RequestUpsert) SetIDTest(v int) *RequestUpsert {
	u.Set(request.FieldIDTest, v)
	return u
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *RequestUpsert) UpdateIDTest() *RequestUpsert {
	u.SetExcluded(request.FieldIDTest)
	return u
}

// AddIDTest adds v to the "id_test" field.
func (u *RequestUpsert) AddIDTest(v int) *RequestUpsert {
	u.Add(request.FieldIDTest, v)
	return u
}

// SetReason sets the "reason" field.
func (u *RequestUpsert) SetReason(v request.Reason) *RequestUpsert {
	u.Set(request.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RequestUpsert) UpdateReason() *RequestUpsert {
	u.SetExcluded(request.FieldReason)
	return u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *RequestUpsert) SetRecoveryAttempt(v int) *RequestUpsert {
	u.Set(request.FieldRecoveryAttempt, v)
	return u
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *RequestUpsert) UpdateRecoveryAttempt() *RequestUpsert {
	u.SetExcluded(request.FieldRecoveryAttempt)
	return u
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *RequestUpsert) AddRecoveryAttempt(v int) *RequestUpsert {
	u.Add(request.FieldRecoveryAttempt, v)
	return u
}

// SetAddedTime sets the "added_time" field.
func (u *RequestUpsert) SetAddedTime(v time.Time) *RequestUpsert {
	u.Set(request.FieldAddedTime, v)
	return u
}

// UpdateAddedTime sets the "added_time" field to the value that was provided on create.
func (u *RequestUpsert) UpdateAddedTime() *RequestUpsert {
	u.SetExcluded(request.FieldAddedTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Request.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RequestUpsertOne) UpdateNewValues() *RequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Request.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RequestUpsertOne) Ignore() *RequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RequestUpsertOne) DoNothing() *RequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RequestCreate.OnConflict
// documentation for more info.
func (u *RequestUpsertOne) Update(set func(*RequestUpsert)) *RequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *RequestUpsertOne) SetIDTest(v int) *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *RequestUpsertOne) AddIDTest(v int) *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *RequestUpsertOne) UpdateIDTest() *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateIDTest()
	})
}

// SetReason sets the "reason" field.
func (u *RequestUpsertOne) SetReason(v request.Reason) *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RequestUpsertOne) UpdateReason() *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateReason()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *RequestUpsertOne) SetRecoveryAttempt(v int) *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *RequestUpsertOne) AddRecoveryAttempt(v int) *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *RequestUpsertOne) UpdateRecoveryAttempt() *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// SetAddedTime sets the "added_time" field.
func (u *RequestUpsertOne) SetAddedTime(v time.Time) *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.SetAddedTime(v)
	})
}

// UpdateAddedTime sets the "added_time" field to the value that was provided on create.
func (u *RequestUpsertOne) UpdateAddedTime() *RequestUpsertOne {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateAddedTime()
	})
}

// Exec executes the query.
func (u *RequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RequestUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RequestUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
	conflict []sql.ConflictOption
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
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
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Request.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RequestUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *RequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *RequestUpsertBulk {
	_c.conflict = opts
	return &RequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Request.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RequestCreateBulk) OnConflictColumns(columns ...string) *RequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RequestUpsertBulk{
		create: _c,
	}
}

// RequestUpsertBulk is the builder for "upsert"-ing
// a bulk of Request nodes.
type RequestUpsertBulk struct {
	create *RequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Request.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RequestUpsertBulk) UpdateNewValues() *RequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Request.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RequestUpsertBulk) Ignore() *RequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RequestUpsertBulk) DoNothing() *RequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RequestCreateBulk.OnConflict
// documentation for more info.
func (u *RequestUpsertBulk) Update(set func(*RequestUpsert)) *RequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *RequestUpsertBulk) SetIDTest(v int) *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *RequestUpsertBulk) AddIDTest(v int) *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *RequestUpsertBulk) UpdateIDTest() *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateIDTest()
	})
}

// SetReason sets the "reason" field.
func (u *RequestUpsertBulk) SetReason(v request.Reason) *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RequestUpsertBulk) UpdateReason() *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateReason()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *RequestUpsertBulk) SetRecoveryAttempt(v int) *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *RequestUpsertBulk) AddRecoveryAttempt(v int) *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *RequestUpsertBulk) UpdateRecoveryAttempt() *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// SetAddedTime sets the "added_time" field.
func (u *RequestUpsertBulk) SetAddedTime(v time.Time) *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.SetAddedTime(v)
	})
}

// UpdateAddedTime sets the "added_time" field to the value that was provided on create.
func (u *RequestUpsertBulk) UpdateAddedTime() *RequestUpsertBulk {
	return u.Update(func(s *RequestUpsert) {
		s.UpdateAddedTime()
	})
}

// Exec executes the query.
func (u *RequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
