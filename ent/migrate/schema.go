// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "activity_ref", Type: field.TypeString, Default: ""},
		{Name: "session_start", Type: field.TypeTime},
		{Name: "session_end", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "pyramid", Type: field.TypeJSON, Nullable: true},
		{Name: "vocabulary", Type: field.TypeJSON, Nullable: true},
		{Name: "writing", Type: field.TypeJSON, Nullable: true},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3]},
			},
			{
				Name:    "activityevent_user_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3], ActivityEventsColumns[4]},
			},
			{
				Name:    "activityevent_user_id_completed",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3], ActivityEventsColumns[9]},
			},
			{
				Name:    "activityevent_session_start",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[6]},
			},
		},
	}
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString, Default: ""},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1]},
			},
			{
				Name:    "activitylog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[2]},
			},
			{
				Name:    "activitylog_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[3]},
			},
			{
				Name:    "activitylog_user_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[3], ActivityLogsColumns[4]},
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
	// PyramidSessionsColumns holds the columns for the "pyramid_sessions" table.
	PyramidSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "learning_language", Type: field.TypeString},
		{Name: "system_language", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: ""},
		{Name: "total_steps", Type: field.TypeInt},
		{Name: "step_kinds", Type: field.TypeJSON},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
		{Name: "last_step_index", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "event_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PyramidSessionsTable holds the schema information for the "pyramid_sessions" table.
	PyramidSessionsTable = &schema.Table{
		Name:       "pyramid_sessions",
		Columns:    PyramidSessionsColumns,
		PrimaryKey: []*schema.Column{PyramidSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pyramidsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{PyramidSessionsColumns[1]},
			},
			{
				Name:    "pyramidsession_user_id_completed",
				Unique:  false,
				Columns: []*schema.Column{PyramidSessionsColumns[1], PyramidSessionsColumns[10]},
			},
			{
				Name:    "pyramidsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{PyramidSessionsColumns[12]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString, Default: "B1 - Intermediate"},
		{Name: "learning_language", Type: field.TypeString, Default: "English"},
		{Name: "system_language", Type: field.TypeString, Default: "Turkish"},
		{Name: "purpose", Type: field.TypeString, Default: "General Knowledge"},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		ActivityLogsTable,
		LlmRequestEventsTable,
		PyramidSessionsTable,
		UsersTable,
	}
)

func init() {
}
