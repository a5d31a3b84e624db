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
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "option_index", Type: field.TypeInt},
		{Name: "elapsed_ms", Type: field.TypeInt64},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
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
				Name:    "answerevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
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
	// ModuleEventsColumns holds the columns for the "module_events" table.
	ModuleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "items_answered", Type: field.TypeInt},
	}
	// ModuleEventsTable holds the schema information for the "module_events" table.
	ModuleEventsTable = &schema.Table{
		Name:       "module_events",
		Columns:    ModuleEventsColumns,
		PrimaryKey: []*schema.Column{ModuleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moduleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[1]},
			},
			{
				Name:    "moduleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[2]},
			},
			{
				Name:    "moduleevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{ModuleEventsColumns[3]},
			},
		},
	}
	// ModuleResultsColumns holds the columns for the "module_results" table.
	ModuleResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "result_type", Type: field.TypeString},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// ModuleResultsTable holds the schema information for the "module_results" table.
	ModuleResultsTable = &schema.Table{
		Name:       "module_results",
		Columns:    ModuleResultsColumns,
		PrimaryKey: []*schema.Column{ModuleResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "moduleresult_attempt_id_module_id",
				Unique:  true,
				Columns: []*schema.Column{ModuleResultsColumns[1], ModuleResultsColumns[2]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "current_module", Type: field.TypeString},
		{Name: "completed", Type: field.TypeJSON, Nullable: true},
		{Name: "is_complete", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[1]},
			},
		},
	}
	// RespondentsColumns holds the columns for the "respondents" table.
	RespondentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "parent_contact", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RespondentsTable holds the schema information for the "respondents" table.
	RespondentsTable = &schema.Table{
		Name:       "respondents",
		Columns:    RespondentsColumns,
		PrimaryKey: []*schema.Column{RespondentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "respondent_created_at",
				Unique:  false,
				Columns: []*schema.Column{RespondentsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		LlmRequestEventsTable,
		ModuleEventsTable,
		ModuleResultsTable,
		ProgressesTable,
		RespondentsTable,
	}
)

func init() {
}
