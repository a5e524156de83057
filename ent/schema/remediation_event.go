package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RemediationEvent records quick-review activity: the review surfacing
// after repeated misses, and answers given on it.
type RemediationEvent struct {
	ent.Schema
}

func (RemediationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RemediationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Int("section_index"),
		field.String("action").
			NotEmpty().
			Comment("shown or answered"),
		field.Int("option_index").
			Default(-1).
			Comment("Selected option for answered actions; -1 for shown"),
		field.Bool("correct").
			Default(false),
	}
}

func (RemediationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
