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
	"github.com/inventor-project/symon/ent/predicate"
)

// OrchestratorUpdate is the builder for updating Orchestrator entities.
type OrchestratorUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestratorMutation
}

// Where appends a list predicates to the OrchestratorUpdate builder.
func (_u *OrchestratorUpdate) Where(ps ...predicate.Orchestrator) *OrchestratorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OrchestratorUpdate) SetName(v string) *OrchestratorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrchestratorUpdate) SetNillableName(v *string) *OrchestratorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *OrchestratorUpdate) SetLastSeen(v time.Time) *OrchestratorUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *OrchestratorUpdate) SetNillableLastSeen(v *time.Time) *OrchestratorUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the OrchestratorMutation object of the builder.
func (_u *OrchestratorUpdate) Mutation() *OrchestratorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestratorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestratorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrchestratorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestrator.Table, orchestrator.Columns, sqlgraph.NewFieldSpec(orchestrator.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(orchestrator.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(orchestrator.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestrator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestratorUpdateOne is the builder for updating a single Orchestrator entity.
type OrchestratorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestratorMutation
}

// SetName sets the "name" field.
func (_u *OrchestratorUpdateOne) SetName(v string) *OrchestratorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrchestratorUpdateOne) SetNillableName(v *string) *OrchestratorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *OrchestratorUpdateOne) SetLastSeen(v time.Time) *OrchestratorUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *OrchestratorUpdateOne) SetNillableLastSeen(v *time.Time) *OrchestratorUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the OrchestratorMutation object of the builder.
func (_u *OrchestratorUpdateOne) Mutation() *OrchestratorMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestratorUpdate builder.
func (_u *OrchestratorUpdateOne) Where(ps ...predicate.Orchestrator) *OrchestratorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestratorUpdateOne) Select(field string, fields ...string) *OrchestratorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Orchestrator entity.
func (_u *OrchestratorUpdateOne) Save(ctx context.Context) (*Orchestrator, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorUpdateOne) SaveX(ctx context.Context) *Orchestrator {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestratorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrchestratorUpdateOne) sqlSave(ctx context.Context) (_node *Orchestrator, err error) {
	_spec := sqlgraph.NewUpdateSpec(orchestrator.Table, orchestrator.Columns, sqlgraph.NewFieldSpec(orchestrator.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Orchestrator.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestrator.FieldID)
		for _, f := range fields {
			if !orchestrator.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestrator.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(orchestrator.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(orchestrator.FieldLastSeen, field.TypeTime, value)
	}
	_node = &Orchestrator{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestrator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
