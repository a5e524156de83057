// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "section_index", Type: field.TypeInt},
		{Name: "intent", Type: field.TypeString},
		{Name: "option_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "attempt", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// CheckpointCachesColumns holds the columns for the "checkpoint_caches" table.
	CheckpointCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CheckpointCachesTable holds the schema information for the "checkpoint_caches" table.
	CheckpointCachesTable = &schema.Table{
		Name:       "checkpoint_caches",
		Columns:    CheckpointCachesColumns,
		PrimaryKey: []*schema.Column{CheckpointCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpointcache_key",
				Unique:  false,
				Columns: []*schema.Column{CheckpointCachesColumns[1]},
			},
		},
	}
	// CheckpointEventsColumns holds the columns for the "checkpoint_events" table.
	CheckpointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "section_index", Type: field.TypeInt},
		{Name: "intent", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "from_cache", Type: field.TypeBool, Default: false},
	}
	// CheckpointEventsTable holds the schema information for the "checkpoint_events" table.
	CheckpointEventsTable = &schema.Table{
		Name:       "checkpoint_events",
		Columns:    CheckpointEventsColumns,
		PrimaryKey: []*schema.Column{CheckpointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[1]},
			},
			{
				Name:    "checkpointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[2]},
			},
			{
				Name:    "checkpointevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[3]},
			},
			{
				Name:    "checkpointevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[4]},
			},
			{
				Name:    "checkpointevent_source",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PhaseEventsColumns holds the columns for the "phase_events" table.
	PhaseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "section_index", Type: field.TypeInt, Default: 0},
	}
	// PhaseEventsTable holds the schema information for the "phase_events" table.
	PhaseEventsTable = &schema.Table{
		Name:       "phase_events",
		Columns:    PhaseEventsColumns,
		PrimaryKey: []*schema.Column{PhaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "phaseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[1]},
			},
			{
				Name:    "phaseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[2]},
			},
			{
				Name:    "phaseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[3]},
			},
			{
				Name:    "phaseevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[4]},
			},
			{
				Name:    "phaseevent_phase",
				Unique:  false,
				Columns: []*schema.Column{PhaseEventsColumns[5]},
			},
		},
	}
	// RemediationEventsColumns holds the columns for the "remediation_events" table.
	RemediationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "section_index", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "option_index", Type: field.TypeInt, Default: -1},
		{Name: "correct", Type: field.TypeBool, Default: false},
	}
	// RemediationEventsTable holds the schema information for the "remediation_events" table.
	RemediationEventsTable = &schema.Table{
		Name:       "remediation_events",
		Columns:    RemediationEventsColumns,
		PrimaryKey: []*schema.Column{RemediationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "remediationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RemediationEventsColumns[1]},
			},
			{
				Name:    "remediationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RemediationEventsColumns[2]},
			},
			{
				Name:    "remediationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RemediationEventsColumns[3]},
			},
			{
				Name:    "remediationevent_action",
				Unique:  false,
				Columns: []*schema.Column{RemediationEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CheckpointCachesTable,
		CheckpointEventsTable,
		LlmRequestEventsTable,
		PhaseEventsTable,
		RemediationEventsTable,
	}
)

func init() {
}
