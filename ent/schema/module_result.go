package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModuleResult stores the scored outcome of a completed module. One row
// per (attempt, module); completing a module twice overwrites in place
// rather than appending.
type ModuleResult struct {
	ent.Schema
}

func (ModuleResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Assessment attempt"),
		field.String("module_id").
			NotEmpty().
			Comment("A, B, C, or D"),
		field.String("result_type").
			NotEmpty().
			Comment("interest, strength, skill, or comfort"),
		field.JSON("scores", map[string]float64{}).
			Comment("Per-domain scores keyed by domain code"),
		field.Time("completed_at").
			Default(time.Now).
			Comment("When the module was scored"),
	}
}

func (ModuleResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id", "module_id").
			Unique(),
	}
}
