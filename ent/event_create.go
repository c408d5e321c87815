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
	"github.com/inventor-project/symon/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIDTest sets the "id_test" field.
func (_c *EventCreate) SetIDTest(v int) *EventCreate {
	_c.mutation.SetIDTest(v)
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *EventCreate) SetRunAt(v time.Time) *EventCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EventCreate) SetSource(v event.Source) *EventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_c *EventCreate) SetRecoveryAttempt(v int) *EventCreate {
	_c.mutation.SetRecoveryAttempt(v)
	return _c
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_c *EventCreate) SetNillableRecoveryAttempt(v *int) *EventCreate {
	if v != nil {
		_c.SetRecoveryAttempt(*v)
	}
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		v := event.DefaultRecoveryAttempt
		_c.mutation.SetRecoveryAttempt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.IDTest(); !ok {
		return &ValidationError{Name: "id_test", err: errors.New(`ent: missing required field "Event.id_test"`)}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "Event.run_at"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Event.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := event.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Event.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		return &ValidationError{Name: "recovery_attempt", err: errors.New(`ent: missing required field "Event.recovery_attempt"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.IDTest(); ok {
		_spec.SetField(event.FieldIDTest, field.TypeInt, value)
		_node.IDTest = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(event.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(event.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.RecoveryAttempt(); ok {
		_spec.SetField(event.FieldRecoveryAttempt, field.TypeInt, value)
		_node.RecoveryAttempt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetIDTest(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetIDTest sets the "id_test" field.
func (u *EventUpsert) SetIDTest(v int) *EventUpsert {
	u.Set(event.FieldIDTest, v)
	return u
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *EventUpsert) UpdateIDTest() *EventUpsert {
	u.SetExcluded(event.FieldIDTest)
	return u
}

// AddIDTest adds v to the "id_test" field.
func (u *EventUpsert) AddIDTest(v int) *EventUpsert {
	u.Add(event.FieldIDTest, v)
	return u
}

// SetRunAt sets the "run_at" field.
func (u *EventUpsert) SetRunAt(v time.Time) *EventUpsert {
	u.Set(event.FieldRunAt, v)
	return u
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateRunAt() *EventUpsert {
	u.SetExcluded(event.FieldRunAt)
	return u
}

// SetSource sets the "source" field.
func (u *EventUpsert) SetSource(v event.Source) *EventUpsert {
	u.Set(event.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EventUpsert) UpdateSource() *EventUpsert {
	u.SetExcluded(event.FieldSource)
	return u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *EventUpsert) SetRecoveryAttempt(v int) *EventUpsert {
	u.Set(event.FieldRecoveryAttempt, v)
	return u
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *EventUpsert) UpdateRecoveryAttempt() *EventUpsert {
	u.SetExcluded(event.FieldRecoveryAttempt)
	return u
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *EventUpsert) AddRecoveryAttempt(v int) *EventUpsert {
	u.Add(event.FieldRecoveryAttempt, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *EventUpsertOne) SetIDTest(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *EventUpsertOne) AddIDTest(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateIDTest() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIDTest()
	})
}

// SetRunAt sets the "run_at" field.
func (u *EventUpsertOne) SetRunAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRunAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRunAt()
	})
}

// SetSource sets the "source" field.
func (u *EventUpsertOne) SetSource(v event.Source) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSource() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSource()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *EventUpsertOne) SetRecoveryAttempt(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *EventUpsertOne) AddRecoveryAttempt(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRecoveryAttempt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetIDTest(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetIDTest sets the "id_test" field.
func (u *EventUpsertBulk) SetIDTest(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetIDTest(v)
	})
}

// AddIDTest adds v to the "id_test" field.
func (u *EventUpsertBulk) AddIDTest(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddIDTest(v)
	})
}

// UpdateIDTest sets the "id_test" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateIDTest() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIDTest()
	})
}

// SetRunAt sets the "run_at" field.
func (u *EventUpsertBulk) SetRunAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRunAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRunAt()
	})
}

// SetSource sets the "source" field.
func (u *EventUpsertBulk) SetSource(v event.Source) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSource() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSource()
	})
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (u *EventUpsertBulk) SetRecoveryAttempt(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRecoveryAttempt(v)
	})
}

// AddRecoveryAttempt adds v to the "recovery_attempt" field.
func (u *EventUpsertBulk) AddRecoveryAttempt(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddRecoveryAttempt(v)
	})
}

// UpdateRecoveryAttempt sets the "recovery_attempt" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRecoveryAttempt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRecoveryAttempt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
