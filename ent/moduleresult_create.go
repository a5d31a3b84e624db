// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ritika/selfmap/ent/moduleresult"
)

// ModuleResultCreate is the builder for creating a ModuleResult entity.
type ModuleResultCreate struct {
	config
	mutation *ModuleResultMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ModuleResultCreate) SetAttemptID(v string) *ModuleResultCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *ModuleResultCreate) SetModuleID(v string) *ModuleResultCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetResultType sets the "result_type" field.
func (_c *ModuleResultCreate) SetResultType(v string) *ModuleResultCreate {
	_c.mutation.SetResultType(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *ModuleResultCreate) SetScores(v map[string]float64) *ModuleResultCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ModuleResultCreate) SetCompletedAt(v time.Time) *ModuleResultCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ModuleResultCreate) SetNillableCompletedAt(v *time.Time) *ModuleResultCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the ModuleResultMutation object of the builder.
func (_c *ModuleResultCreate) Mutation() *ModuleResultMutation {
	return _c.mutation
}

// Save creates the ModuleResult in the database.
func (_c *ModuleResultCreate) Save(ctx context.Context) (*ModuleResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModuleResultCreate) SaveX(ctx context.Context) *ModuleResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModuleResultCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := moduleresult.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModuleResultCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ModuleResult.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := moduleresult.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "ModuleResult.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := moduleresult.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultType(); !ok {
		return &ValidationError{Name: "result_type", err: errors.New(`ent: missing required field "ModuleResult.result_type"`)}
	}
	if v, ok := _c.mutation.ResultType(); ok {
		if err := moduleresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.result_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "ModuleResult.scores"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "ModuleResult.completed_at"`)}
	}
	return nil
}

func (_c *ModuleResultCreate) sqlSave(ctx context.Context) (*ModuleResult, error) {
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

func (_c *ModuleResultCreate) createSpec() (*ModuleResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ModuleResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moduleresult.Table, sqlgraph.NewFieldSpec(moduleresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(moduleresult.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(moduleresult.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.ResultType(); ok {
		_spec.SetField(moduleresult.FieldResultType, field.TypeString, value)
		_node.ResultType = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(moduleresult.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(moduleresult.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// ModuleResultCreateBulk is the builder for creating many ModuleResult entities in bulk.
type ModuleResultCreateBulk struct {
	config
	err      error
	builders []*ModuleResultCreate
}

// Save creates the ModuleResult entities in the database.
func (_c *ModuleResultCreateBulk) Save(ctx context.Context) ([]*ModuleResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModuleResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModuleResultMutation)
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
func (_c *ModuleResultCreateBulk) SaveX(ctx context.Context) []*ModuleResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
