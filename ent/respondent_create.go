// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ritika/selfmap/ent/respondent"
)

// RespondentCreate is the builder for creating a Respondent entity.
type RespondentCreate struct {
	config
	mutation *RespondentMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *RespondentCreate) SetAttemptID(v string) *RespondentCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RespondentCreate) SetName(v string) *RespondentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *RespondentCreate) SetNillableName(v *string) *RespondentCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetParentContact sets the "parent_contact" field.
func (_c *RespondentCreate) SetParentContact(v string) *RespondentCreate {
	_c.mutation.SetParentContact(v)
	return _c
}

// SetNillableParentContact sets the "parent_contact" field if the given value is not nil.
func (_c *RespondentCreate) SetNillableParentContact(v *string) *RespondentCreate {
	if v != nil {
		_c.SetParentContact(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RespondentCreate) SetCreatedAt(v time.Time) *RespondentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RespondentCreate) SetNillableCreatedAt(v *time.Time) *RespondentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the RespondentMutation object of the builder.
func (_c *RespondentCreate) Mutation() *RespondentMutation {
	return _c.mutation
}

// Save creates the Respondent in the database.
func (_c *RespondentCreate) Save(ctx context.Context) (*Respondent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RespondentCreate) SaveX(ctx context.Context) *Respondent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RespondentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RespondentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RespondentCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := respondent.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.ParentContact(); !ok {
		v := respondent.DefaultParentContact
		_c.mutation.SetParentContact(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := respondent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RespondentCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Respondent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := respondent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Respondent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Respondent.name"`)}
	}
	if _, ok := _c.mutation.ParentContact(); !ok {
		return &ValidationError{Name: "parent_contact", err: errors.New(`ent: missing required field "Respondent.parent_contact"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Respondent.created_at"`)}
	}
	return nil
}

func (_c *RespondentCreate) sqlSave(ctx context.Context) (*Respondent, error) {
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

func (_c *RespondentCreate) createSpec() (*Respondent, *sqlgraph.CreateSpec) {
	var (
		_node = &Respondent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(respondent.Table, sqlgraph.NewFieldSpec(respondent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(respondent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(respondent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ParentContact(); ok {
		_spec.SetField(respondent.FieldParentContact, field.TypeString, value)
		_node.ParentContact = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(respondent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RespondentCreateBulk is the builder for creating many Respondent entities in bulk.
type RespondentCreateBulk struct {
	config
	err      error
	builders []*RespondentCreate
}

// Save creates the Respondent entities in the database.
func (_c *RespondentCreateBulk) Save(ctx context.Context) ([]*Respondent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Respondent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RespondentMutation)
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
func (_c *RespondentCreateBulk) SaveX(ctx context.Context) []*Respondent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RespondentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RespondentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
