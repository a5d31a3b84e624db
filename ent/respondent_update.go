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
	"github.com/ritika/selfmap/ent/predicate"
	"github.com/ritika/selfmap/ent/respondent"
)

// RespondentUpdate is the builder for updating Respondent entities.
type RespondentUpdate struct {
	config
	hooks    []Hook
	mutation *RespondentMutation
}

// Where appends a list predicates to the RespondentUpdate builder.
func (_u *RespondentUpdate) Where(ps ...predicate.Respondent) *RespondentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *RespondentUpdate) SetAttemptID(v string) *RespondentUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *RespondentUpdate) SetNillableAttemptID(v *string) *RespondentUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RespondentUpdate) SetName(v string) *RespondentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RespondentUpdate) SetNillableName(v *string) *RespondentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParentContact sets the "parent_contact" field.
func (_u *RespondentUpdate) SetParentContact(v string) *RespondentUpdate {
	_u.mutation.SetParentContact(v)
	return _u
}

// SetNillableParentContact sets the "parent_contact" field if the given value is not nil.
func (_u *RespondentUpdate) SetNillableParentContact(v *string) *RespondentUpdate {
	if v != nil {
		_u.SetParentContact(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RespondentUpdate) SetCreatedAt(v time.Time) *RespondentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RespondentUpdate) SetNillableCreatedAt(v *time.Time) *RespondentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the RespondentMutation object of the builder.
func (_u *RespondentUpdate) Mutation() *RespondentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RespondentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RespondentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RespondentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RespondentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RespondentUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := respondent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Respondent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RespondentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(respondent.Table, respondent.Columns, sqlgraph.NewFieldSpec(respondent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(respondent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(respondent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentContact(); ok {
		_spec.SetField(respondent.FieldParentContact, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(respondent.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{respondent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RespondentUpdateOne is the builder for updating a single Respondent entity.
type RespondentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RespondentMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *RespondentUpdateOne) SetAttemptID(v string) *RespondentUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *RespondentUpdateOne) SetNillableAttemptID(v *string) *RespondentUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RespondentUpdateOne) SetName(v string) *RespondentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RespondentUpdateOne) SetNillableName(v *string) *RespondentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParentContact sets the "parent_contact" field.
func (_u *RespondentUpdateOne) SetParentContact(v string) *RespondentUpdateOne {
	_u.mutation.SetParentContact(v)
	return _u
}

// SetNillableParentContact sets the "parent_contact" field if the given value is not nil.
func (_u *RespondentUpdateOne) SetNillableParentContact(v *string) *RespondentUpdateOne {
	if v != nil {
		_u.SetParentContact(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RespondentUpdateOne) SetCreatedAt(v time.Time) *RespondentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RespondentUpdateOne) SetNillableCreatedAt(v *time.Time) *RespondentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the RespondentMutation object of the builder.
func (_u *RespondentUpdateOne) Mutation() *RespondentMutation {
	return _u.mutation
}

// Where appends a list predicates to the RespondentUpdate builder.
func (_u *RespondentUpdateOne) Where(ps ...predicate.Respondent) *RespondentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RespondentUpdateOne) Select(field string, fields ...string) *RespondentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Respondent entity.
func (_u *RespondentUpdateOne) Save(ctx context.Context) (*Respondent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RespondentUpdateOne) SaveX(ctx context.Context) *Respondent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RespondentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RespondentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RespondentUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := respondent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Respondent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RespondentUpdateOne) sqlSave(ctx context.Context) (_node *Respondent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(respondent.Table, respondent.Columns, sqlgraph.NewFieldSpec(respondent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Respondent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, respondent.FieldID)
		for _, f := range fields {
			if !respondent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != respondent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(respondent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(respondent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentContact(); ok {
		_spec.SetField(respondent.FieldParentContact, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(respondent.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Respondent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{respondent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
