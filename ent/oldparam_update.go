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
	"github.com/inventor-project/symon/ent/predicate"
)

// OldParamUpdate is the builder for updating OldParam entities.
type OldParamUpdate struct {
	config
	hooks    []Hook
	mutation *OldParamMutation
}

// Where appends a list predicates to the OldParamUpdate builder.
func (_u *OldParamUpdate) Where(ps ...predicate.OldParam) *OldParamUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIDTest sets the "id_test" field.
func (_u *OldParamUpdate) SetIDTest(v int) *OldParamUpdate {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *OldParamUpdate) SetNillableIDTest(v *int) *OldParamUpdate {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *OldParamUpdate) AddIDTest(v int) *OldParamUpdate {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *OldParamUpdate) SetVersion(v int) *OldParamUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *OldParamUpdate) SetNillableVersion(v *int) *OldParamUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *OldParamUpdate) AddVersion(v int) *OldParamUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTestParams sets the "test_params" field.
func (_u *OldParamUpdate) SetTestParams(v string) *OldParamUpdate {
	_u.mutation.SetTestParams(v)
	return _u
}

// SetNillableTestParams sets the "test_params" field if the given value is not nil.
func (_u *OldParamUpdate) SetNillableTestParams(v *string) *OldParamUpdate {
	if v != nil {
		_u.SetTestParams(*v)
	}
	return _u
}

// SetChanged sets the "changed" field.
func (_u *OldParamUpdate) SetChanged(v time.Time) *OldParamUpdate {
	_u.mutation.SetChanged(v)
	return _u
}

// SetNillableChanged sets the "changed" field if the given value is not nil.
func (_u *OldParamUpdate) SetNillableChanged(v *time.Time) *OldParamUpdate {
	if v != nil {
		_u.SetChanged(*v)
	}
	return _u
}

// Mutation returns the OldParamMutation object of the builder.
func (_u *OldParamUpdate) Mutation() *OldParamMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OldParamUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OldParamUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OldParamUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OldParamUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OldParamUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(oldparam.Table, oldparam.Columns, sqlgraph.NewFieldSpec(oldparam.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(oldparam.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(oldparam.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(oldparam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(oldparam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TestParams(); ok {
		_spec.SetField(oldparam.FieldTestParams, field.TypeString, value)
	}
	if value, ok := _u.mutation.Changed(); ok {
		_spec.SetField(oldparam.FieldChanged, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oldparam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OldParamUpdateOne is the builder for updating a single OldParam entity.
type OldParamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OldParamMutation
}

// SetIDTest sets the "id_test" field.
func (_u *OldParamUpdateOne) SetIDTest(v int) *OldParamUpdateOne {
	_u.mutation.ResetIDTest()
	_u.mutation.SetIDTest(v)
	return _u
}

// SetNillableIDTest sets the "id_test" field if the given value is not nil.
func (_u *OldParamUpdateOne) SetNillableIDTest(v *int) *OldParamUpdateOne {
	if v != nil {
		_u.SetIDTest(*v)
	}
	return _u
}

// AddIDTest adds value to the "id_test" field.
func (_u *OldParamUpdateOne) AddIDTest(v int) *OldParamUpdateOne {
	_u.mutation.AddIDTest(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *OldParamUpdateOne) SetVersion(v int) *OldParamUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *OldParamUpdateOne) SetNillableVersion(v *int) *OldParamUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *OldParamUpdateOne) AddVersion(v int) *OldParamUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTestParams sets the "test_params" field.
func (_u *OldParamUpdateOne) SetTestParams(v string) *OldParamUpdateOne {
	_u.mutation.SetTestParams(v)
	return _u
}

// SetNillableTestParams sets the "test_params" field if the given value is not nil.
func (_u *OldParamUpdateOne) SetNillableTestParams(v *string) *OldParamUpdateOne {
	if v != nil {
		_u.SetTestParams(*v)
	}
	return _u
}

// SetChanged sets the "changed" field.
func (_u *OldParamUpdateOne) SetChanged(v time.Time) *OldParamUpdateOne {
	_u.mutation.SetChanged(v)
	return _u
}

// SetNillableChanged sets the "changed" field if the given value is not nil.
func (_u *OldParamUpdateOne) SetNillableChanged(v *time.Time) *OldParamUpdateOne {
	if v != nil {
		_u.SetChanged(*v)
	}
	return _u
}

// Mutation returns the OldParamMutation object of the builder.
func (_u *OldParamUpdateOne) Mutation() *OldParamMutation {
	return _u.mutation
}

// Where appends a list predicates to the OldParamUpdate builder.
func (_u *OldParamUpdateOne) Where(ps ...predicate.OldParam) *OldParamUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OldParamUpdateOne) Select(field string, fields ...string) *OldParamUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OldParam entity.
func (_u *OldParamUpdateOne) Save(ctx context.Context) (*OldParam, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OldParamUpdateOne) SaveX(ctx context.Context) *OldParam {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OldParamUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OldParamUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OldParamUpdateOne) sqlSave(ctx context.Context) (_node *OldParam, err error) {
	_spec := sqlgraph.NewUpdateSpec(oldparam.Table, oldparam.Columns, sqlgraph.NewFieldSpec(oldparam.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OldParam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oldparam.FieldID)
		for _, f := range fields {
			if !oldparam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != oldparam.FieldID {
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
	if value, ok := _u.mutation.IDTest(); ok {
		_spec.SetField(oldparam.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIDTest(); ok {
		_spec.AddField(oldparam.FieldIDTest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(oldparam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(oldparam.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TestParams(); ok {
		_spec.SetField(oldparam.FieldTestParams, field.TypeString, value)
	}
	if value, ok := _u.mutation.Changed(); ok {
		_spec.SetField(oldparam.FieldChanged, field.TypeTime, value)
	}
	_node = &OldParam{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oldparam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
