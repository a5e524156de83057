package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckpointCache stores generated checkpoint payloads keyed by lesson,
// section, and intent, so a reload replays the same question instead of
// spending another model call. Not part of the event log.
type CheckpointCache struct {
	ent.Schema
}

func (CheckpointCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("checkpoint/<lesson>/<section>/<intent>"),
		field.Text("value").
			Comment("JSON cache entry: payload, intent, source"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CheckpointCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
