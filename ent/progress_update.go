// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ritika/selfmap/ent/predicate"
	"github.com/ritika/selfmap/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ProgressUpdate) SetAttemptID(v string) *ProgressUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableAttemptID(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetCurrentModule sets the "current_module" field.
func (_u *ProgressUpdate) SetCurrentModule(v string) *ProgressUpdate {
	_u.mutation.SetCurrentModule(v)
	return _u
}

// SetNillableCurrentModule sets the "current_module" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCurrentModule(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetCurrentModule(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdate) SetCompleted(v []string) *ProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// AppendCompleted appends value to the "completed" field.
func (_u *ProgressUpdate) AppendCompleted(v []string) *ProgressUpdate {
	_u.mutation.AppendCompleted(v)
	return _u
}

// ClearCompleted clears the value of the "completed" field.
func (_u *ProgressUpdate) ClearCompleted() *ProgressUpdate {
	_u.mutation.ClearCompleted()
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *ProgressUpdate) SetIsComplete(v bool) *ProgressUpdate {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableIsComplete(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProgressUpdate) SetCompletedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompletedAt(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProgressUpdate) ClearCompletedAt() *ProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := progress.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Progress.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentModule(); ok {
		if err := progress.CurrentModuleValidator(v); err != nil {
			return &ValidationError{Name: "current_module", err: fmt.Errorf(`ent: validator failed for field "Progress.current_module": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(progress.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentModule(); ok {
		_spec.SetField(progress.FieldCurrentModule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldCompleted, value)
		})
	}
	if _u.mutation.CompletedCleared() {
		_spec.ClearField(progress.FieldCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(progress.FieldIsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(progress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(progress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ProgressUpdateOne) SetAttemptID(v string) *ProgressUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableAttemptID(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetCurrentModule sets the "current_module" field.
func (_u *ProgressUpdateOne) SetCurrentModule(v string) *ProgressUpdateOne {
	_u.mutation.SetCurrentModule(v)
	return _u
}

// SetNillableCurrentModule sets the "current_module" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCurrentModule(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetCurrentModule(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdateOne) SetCompleted(v []string) *ProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// AppendCompleted appends value to the "completed" field.
func (_u *ProgressUpdateOne) AppendCompleted(v []string) *ProgressUpdateOne {
	_u.mutation.AppendCompleted(v)
	return _u
}

// ClearCompleted clears the value of the "completed" field.
func (_u *ProgressUpdateOne) ClearCompleted() *ProgressUpdateOne {
	_u.mutation.ClearCompleted()
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *ProgressUpdateOne) SetIsComplete(v bool) *ProgressUpdateOne {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableIsComplete(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProgressUpdateOne) SetCompletedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProgressUpdateOne) ClearCompletedAt() *ProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := progress.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Progress.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentModule(); ok {
		if err := progress.CurrentModuleValidator(v); err != nil {
			return &ValidationError{Name: "current_module", err: fmt.Errorf(`ent: validator failed for field "Progress.current_module": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
		_spec.SetField(progress.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentModule(); ok {
		_spec.SetField(progress.FieldCurrentModule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldCompleted, value)
		})
	}
	if _u.mutation.CompletedCleared() {
		_spec.ClearField(progress.FieldCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(progress.FieldIsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(progress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(progress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
