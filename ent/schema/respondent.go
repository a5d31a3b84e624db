package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Respondent holds the metadata captured at attempt start. The engine
// echoes it into reports verbatim and never validates it.
type Respondent struct {
	ent.Schema
}

func (Respondent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("Assessment attempt"),
		field.String("name").
			Default("").
			Comment("Respondent display name"),
		field.String("parent_contact").
			Default("").
			Comment("Optional parent or guardian contact"),
		field.Time("created_at").
			Default(time.Now).
			Comment("Attempt start time"),
	}
}

func (Respondent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
