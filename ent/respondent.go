// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ritika/selfmap/ent/respondent"
)

// Respondent is the model entity for the Respondent schema.
type Respondent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Assessment attempt
	AttemptID string `json:"attempt_id,omitempty"`
	// Respondent display name
	Name string `json:"name,omitempty"`
	// Optional parent or guardian contact
	ParentContact string `json:"parent_contact,omitempty"`
	// Attempt start time
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Respondent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case respondent.FieldID:
			values[i] = new(sql.NullInt64)
		case respondent.FieldAttemptID, respondent.FieldName, respondent.FieldParentContact:
			values[i] = new(sql.NullString)
		case respondent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Respondent fields.
func (_m *Respondent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case respondent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case respondent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case respondent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case respondent.FieldParentContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_contact", values[i])
			} else if value.Valid {
				_m.ParentContact = value.String
			}
		case respondent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Respondent.
// This includes values selected through modifiers, order, etc.
func (_m *Respondent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Respondent.
// Note that you need to call Respondent.Unwrap() before calling this method if this Respondent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Respondent) Update() *RespondentUpdateOne {
	return NewRespondentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Respondent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Respondent) Unwrap() *Respondent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Respondent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Respondent) String() string {
	var builder strings.Builder
	builder.WriteString("Respondent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("parent_contact=")
	builder.WriteString(_m.ParentContact)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Respondents is a parsable slice of Respondent.
type Respondents []*Respondent
