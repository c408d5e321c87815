// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "id_test", Type: field.TypeInt},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"request", "calendar", "recovery"}},
		{Name: "recovery_attempt", Type: field.TypeInt, Default: 0},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_run_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_id_test",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// MultiResultsColumns holds the columns for the "multi_results" table.
	MultiResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "orchestrator_name", Type: field.TypeString, Unique: true},
		{Name: "test_ids", Type: field.TypeJSON},
		{Name: "key", Type: field.TypeString},
		{Name: "last_used_time", Type: field.TypeTime, Nullable: true},
	}
	// MultiResultsTable holds the schema information for the "multi_results" table.
	MultiResultsTable = &schema.Table{
		Name:       "multi_results",
		Columns:    MultiResultsColumns,
		PrimaryKey: []*schema.Column{MultiResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "multiresult_last_used_time",
				Unique:  false,
				Columns: []*schema.Column{MultiResultsColumns[4]},
			},
		},
	}
	// NoncesColumns holds the columns for the "nonces" table.
	NoncesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "nonce", Type: field.TypeString, Unique: true},
		{Name: "used_at", Type: field.TypeTime},
	}
	// NoncesTable holds the schema information for the "nonces" table.
	NoncesTable = &schema.Table{
		Name:       "nonces",
		Columns:    NoncesColumns,
		PrimaryKey: []*schema.Column{NoncesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nonce_used_at",
				Unique:  false,
				Columns: []*schema.Column{NoncesColumns[2]},
			},
		},
	}
	// OldParamsColumns holds the columns for the "old_params" table.
	OldParamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "id_test", Type: field.TypeInt},
		{Name: "version", Type: field.TypeInt},
		{Name: "test_params", Type: field.TypeString, Size: 2147483647},
		{Name: "changed", Type: field.TypeTime},
	}
	// OldParamsTable holds the schema information for the "old_params" table.
	OldParamsTable = &schema.Table{
		Name:       "old_params",
		Columns:    OldParamsColumns,
		PrimaryKey: []*schema.Column{OldParamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oldparam_id_test_version",
				Unique:  false,
				Columns: []*schema.Column{OldParamsColumns[1], OldParamsColumns[2]},
			},
			{
				Name:    "oldparam_changed",
				Unique:  false,
				Columns: []*schema.Column{OldParamsColumns[4]},
			},
		},
	}
	// OrchestratorsColumns holds the columns for the "orchestrators" table.
	OrchestratorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// OrchestratorsTable holds the schema information for the "orchestrators" table.
	OrchestratorsTable = &schema.Table{
		Name:       "orchestrators",
		Columns:    OrchestratorsColumns,
		PrimaryKey: []*schema.Column{OrchestratorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orchestrator_last_seen",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorsColumns[2]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "id_test", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeEnum, Enums: []string{"new", "update", "failed"}},
		{Name: "recovery_attempt", Type: field.TypeInt, Default: 0},
		{Name: "added_time", Type: field.TypeTime},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "request_added_time",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[4]},
			},
		},
	}
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "id_test", Type: field.TypeInt},
		{Name: "version", Type: field.TypeInt},
		{Name: "planned", Type: field.TypeTime},
		{Name: "started", Type: field.TypeTime, Nullable: true},
		{Name: "finished", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "terminated", "error", "crashed"}},
		{Name: "recovery_attempt", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       "results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "result_id_test_finished",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[1], ResultsColumns[5]},
			},
			{
				Name:    "result_finished",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[5]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "id_test", Type: field.TypeInt},
		{Name: "version", Type: field.TypeInt},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"waiting", "running", "terminating", "killing", "zombie"}},
		{Name: "pid", Type: field.TypeInt, Nullable: true},
		{Name: "planned", Type: field.TypeTime},
		{Name: "started", Type: field.TypeTime, Nullable: true},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "recovery_attempt", Type: field.TypeInt, Default: 0},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_state_deadline",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3], RunsColumns[7]},
			},
			{
				Name:    "run_id_test",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
		},
	}
	// StatsColumns holds the columns for the "stats" table.
	StatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "time", Type: field.TypeTime},
		{Name: "table_name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "value", Type: field.TypeInt},
	}
	// StatsTable holds the schema information for the "stats" table.
	StatsTable = &schema.Table{
		Name:       "stats",
		Columns:    StatsColumns,
		PrimaryKey: []*schema.Column{StatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stat_time",
				Unique:  false,
				Columns: []*schema.Column{StatsColumns[1]},
			},
		},
	}
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"enabled", "disabled", "deleted", "migrating_from", "migrating_to"}},
		{Name: "test_params", Type: field.TypeString, Size: 2147483647},
		{Name: "timeout", Type: field.TypeInt},
		{Name: "scheduling_interval", Type: field.TypeInt, Nullable: true},
		{Name: "scheduling_from", Type: field.TypeTime, Nullable: true},
		{Name: "scheduling_until", Type: field.TypeTime, Nullable: true},
		{Name: "recovery_interval", Type: field.TypeInt, Nullable: true},
		{Name: "recovery_attempt_limit", Type: field.TypeInt, Nullable: true},
		{Name: "key_ro", Type: field.TypeString},
		{Name: "key_rw", Type: field.TypeString},
		{Name: "created", Type: field.TypeTime},
		{Name: "last_started_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_result_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_result_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"success", "terminated", "error", "crashed"}},
		{Name: "last_downloaded_time", Type: field.TypeTime, Nullable: true},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "test_state",
				Unique:  false,
				Columns: []*schema.Column{TestsColumns[4]},
			},
			{
				Name:    "test_last_downloaded_time",
				Unique:  false,
				Columns: []*schema.Column{TestsColumns[18]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		MultiResultsTable,
		NoncesTable,
		OldParamsTable,
		OrchestratorsTable,
		RequestsTable,
		ResultsTable,
		RunsTable,
		StatsTable,
		TestsTable,
	}
)

func init() {
}
