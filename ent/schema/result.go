package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result holds the schema definition for the Result entity: the terminal
// record of a finished run. Results are append-only until the cleaner
// expires them by age.
type Result struct {
	ent.Schema
}

// Fields of the Result.
func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id_test"),
		field.Int("version"),
		field.Time("planned"),
		field.Time("started").
			Optional().
			Nillable().
			Comment("Absent for runs that never spawned"),
		field.Time("finished"),
		field.Enum("status").
			Values("success", "terminated", "error", "crashed"),
		field.Int("recovery_attempt").
			Default(0),
		field.Text("data").
			Optional().
			Comment("Probe output JSON; empty for terminated and crashed runs"),
	}
}

// Indexes of the Result.
func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id_test", "finished"),
		index.Fields("finished"),
	}
}
