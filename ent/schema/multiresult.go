package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MultiResult holds the schema definition for the MultiResult entity: a named
// view over several tests that an orchestrator downloads results from in bulk.
type MultiResult struct {
	ent.Schema
}

// Fields of the MultiResult.
func (MultiResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("orchestrator_name").
			Unique(),
		field.JSON("test_ids", []int{}),
		field.String("key").
			Comment("Authorization key for downloading through this view"),
		field.Time("last_used_time").
			Optional().
			Nillable(),
	}
}

// Indexes of the MultiResult.
func (MultiResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_used_time"),
	}
}
