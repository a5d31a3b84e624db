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
	"github.com/ritika/selfmap/ent/moduleresult"
	"github.com/ritika/selfmap/ent/predicate"
)

// ModuleResultUpdate is the builder for updating ModuleResult entities.
type ModuleResultUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleResultMutation
}

// Where appends a list predicates to the ModuleResultUpdate builder.
func (_u *ModuleResultUpdate) Where(ps ...predicate.ModuleResult) *ModuleResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ModuleResultUpdate) SetAttemptID(v string) *ModuleResultUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ModuleResultUpdate) SetNillableAttemptID(v *string) *ModuleResultUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ModuleResultUpdate) SetModuleID(v string) *ModuleResultUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ModuleResultUpdate) SetNillableModuleID(v *string) *ModuleResultUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *ModuleResultUpdate) SetResultType(v string) *ModuleResultUpdate {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *ModuleResultUpdate) SetNillableResultType(v *string) *ModuleResultUpdate {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ModuleResultUpdate) SetScores(v map[string]float64) *ModuleResultUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ModuleResultUpdate) SetCompletedAt(v time.Time) *ModuleResultUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ModuleResultUpdate) SetNillableCompletedAt(v *time.Time) *ModuleResultUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the ModuleResultMutation object of the builder.
func (_u *ModuleResultUpdate) Mutation() *ModuleResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleResultUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := moduleresult.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := moduleresult.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultType(); ok {
		if err := moduleresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.result_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moduleresult.Table, moduleresult.Columns, sqlgraph.NewFieldSpec(moduleresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(moduleresult.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(moduleresult.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(moduleresult.FieldResultType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(moduleresult.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(moduleresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduleresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleResultUpdateOne is the builder for updating a single ModuleResult entity.
type ModuleResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleResultMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ModuleResultUpdateOne) SetAttemptID(v string) *ModuleResultUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ModuleResultUpdateOne) SetNillableAttemptID(v *string) *ModuleResultUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ModuleResultUpdateOne) SetModuleID(v string) *ModuleResultUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ModuleResultUpdateOne) SetNillableModuleID(v *string) *ModuleResultUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *ModuleResultUpdateOne) SetResultType(v string) *ModuleResultUpdateOne {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *ModuleResultUpdateOne) SetNillableResultType(v *string) *ModuleResultUpdateOne {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ModuleResultUpdateOne) SetScores(v map[string]float64) *ModuleResultUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ModuleResultUpdateOne) SetCompletedAt(v time.Time) *ModuleResultUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ModuleResultUpdateOne) SetNillableCompletedAt(v *time.Time) *ModuleResultUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the ModuleResultMutation object of the builder.
func (_u *ModuleResultUpdateOne) Mutation() *ModuleResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModuleResultUpdate builder.
func (_u *ModuleResultUpdateOne) Where(ps ...predicate.ModuleResult) *ModuleResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleResultUpdateOne) Select(field string, fields ...string) *ModuleResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModuleResult entity.
func (_u *ModuleResultUpdateOne) Save(ctx context.Context) (*ModuleResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleResultUpdateOne) SaveX(ctx context.Context) *ModuleResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleResultUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := moduleresult.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := moduleresult.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultType(); ok {
		if err := moduleresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "ModuleResult.result_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleResultUpdateOne) sqlSave(ctx context.Context) (_node *ModuleResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moduleresult.Table, moduleresult.Columns, sqlgraph.NewFieldSpec(moduleresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModuleResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moduleresult.FieldID)
		for _, f := range fields {
			if !moduleresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moduleresult.FieldID {
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
		_spec.SetField(moduleresult.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(moduleresult.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(moduleresult.FieldResultType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(moduleresult.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(moduleresult.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &ModuleResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduleresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
