package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModuleEvent records lifecycle transitions of a module within an attempt.
type ModuleEvent struct {
	ent.Schema
}

func (ModuleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ModuleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Assessment attempt"),
		field.String("module_id").
			NotEmpty().
			Comment("A, B, C, or D"),
		field.String("action").
			NotEmpty().
			Comment("started or completed"),
		field.Int("items_answered").
			Comment("Responses recorded when the action fired"),
	}
}

func (ModuleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
