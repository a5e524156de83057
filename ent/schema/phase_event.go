package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseEvent records a lesson phase transition, including the learn-phase
// section position. The latest event per session is enough to resume.
type PhaseEvent struct {
	ent.Schema
}

func (PhaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PhaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.String("phase").
			NotEmpty().
			Comment("welcome, learn, practice, review, or complete"),
		field.Int("section_index").
			Default(0).
			Comment("Current section within the learn phase"),
	}
}

func (PhaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("phase"),
	}
}
