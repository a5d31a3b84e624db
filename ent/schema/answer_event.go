package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single item response within an assessment attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Assessment attempt this response belongs to"),
		field.String("module_id").
			NotEmpty().
			Comment("A, B, C, or D"),
		field.String("item_id").
			NotEmpty().
			Comment("Item within the module"),
		field.Int("option_index").
			Comment("Selected option index, -1 when unanswered or open-ended"),
		field.Int64("elapsed_ms").
			Comment("Milliseconds from item display to response"),
		field.Int("word_count").
			Comment("Word count of free text, 0 for choice items"),
		field.Text("text").
			Optional().
			Comment("Free-text response for open-ended items"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("module_id"),
	}
}
