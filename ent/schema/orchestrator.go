package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Orchestrator holds the schema definition for the Orchestrator entity:
// a remote client known to the agent, tracked for liveness.
type Orchestrator struct {
	ent.Schema
}

// Fields of the Orchestrator.
func (Orchestrator) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Time("last_seen"),
	}
}

// Indexes of the Orchestrator.
func (Orchestrator) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_seen"),
	}
}
