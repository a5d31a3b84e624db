// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ritika/selfmap/ent/moduleresult"
)

// ModuleResult is the model entity for the ModuleResult schema.
type ModuleResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Assessment attempt
	AttemptID string `json:"attempt_id,omitempty"`
	// A, B, C, or D
	ModuleID string `json:"module_id,omitempty"`
	// interest, strength, skill, or comfort
	ResultType string `json:"result_type,omitempty"`
	// Per-domain scores keyed by domain code
	Scores map[string]float64 `json:"scores,omitempty"`
	// When the module was scored
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModuleResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case moduleresult.FieldScores:
			values[i] = new([]byte)
		case moduleresult.FieldID:
			values[i] = new(sql.NullInt64)
		case moduleresult.FieldAttemptID, moduleresult.FieldModuleID, moduleresult.FieldResultType:
			values[i] = new(sql.NullString)
		case moduleresult.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModuleResult fields.
func (_m *ModuleResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case moduleresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case moduleresult.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case moduleresult.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case moduleresult.FieldResultType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_type", values[i])
			} else if value.Valid {
				_m.ResultType = value.String
			}
		case moduleresult.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case moduleresult.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModuleResult.
// This includes values selected through modifiers, order, etc.
func (_m *ModuleResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModuleResult.
// Note that you need to call ModuleResult.Unwrap() before calling this method if this ModuleResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModuleResult) Update() *ModuleResultUpdateOne {
	return NewModuleResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModuleResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModuleResult) Unwrap() *ModuleResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModuleResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModuleResult) String() string {
	var builder strings.Builder
	builder.WriteString("ModuleResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("result_type=")
	builder.WriteString(_m.ResultType)
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModuleResults is a parsable slice of ModuleResult.
type ModuleResults []*ModuleResult
