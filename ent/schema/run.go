package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity: a probe execution
// tracked through its lifecycle by the tests manager.
//
// At most one waiting run may exist per test; that is enforced by a partial
// unique index created outside the ent migration (see database.CreatePartialUniqueIndexes).
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id_test"),
		field.Int("version"),
		field.Enum("state").
			Values("waiting", "running", "terminating", "killing", "zombie"),
		field.Int("pid").
			Optional().
			Nillable(),
		field.Time("planned"),
		field.Time("started").
			Optional().
			Nillable(),
		field.Time("deadline").
			Optional().
			Nillable().
			Comment("Next escalation time for the current state"),
		field.Int("recovery_attempt").
			Default(0),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "deadline"),
		index.Fields("id_test"),
	}
}
