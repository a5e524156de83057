package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckpointEvent records a checkpoint question becoming ready for a
// lesson section, including where it came from.
type CheckpointEvent struct {
	ent.Schema
}

func (CheckpointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckpointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Lesson session this checkpoint belongs to"),
		field.String("lesson_id").
			NotEmpty(),
		field.Int("section_index"),
		field.String("intent").
			NotEmpty().
			Comment("define, compute, or scenario"),
		field.String("source").
			NotEmpty().
			Comment("ai or fallback"),
		field.String("reason").
			Default("").
			Comment("Why the fallback ran: assistant_unavailable or generation_error"),
		field.Bool("from_cache").
			Default(false),
	}
}

func (CheckpointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("source"),
	}
}
