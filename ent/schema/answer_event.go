package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer selection on a checkpoint question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Lesson session this answer belongs to"),
		field.String("lesson_id").
			NotEmpty(),
		field.Int("section_index"),
		field.String("intent").
			NotEmpty().
			Comment("define, compute, or scenario"),
		field.Int("option_index").
			Comment("Which option the learner picked"),
		field.Bool("correct"),
		field.Int("attempt").
			Comment("1-based attempt number on this checkpoint"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("correct"),
	}
}
