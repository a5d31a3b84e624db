package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress tracks where an attempt stands in the module sequence so a
// quit mid-assessment can resume at the start of the current module.
// In-flight item responses are deliberately not persisted.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("Assessment attempt"),
		field.String("current_module").
			NotEmpty().
			Comment("Module to administer next"),
		field.JSON("completed", []string{}).
			Optional().
			Comment("Module ids scored so far, in completion order"),
		field.Bool("is_complete").
			Default(false).
			Comment("True once all four modules are scored"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the final module was scored"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last transition time"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
