package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Request holds the schema definition for the Request entity: an asynchronous
// ask from the API or the tests manager to the calendar to plan a run.
type Request struct {
	ent.Schema
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id_test"),
		field.Enum("reason").
			Values("new", "update", "failed"),
		field.Int("recovery_attempt").
			Default(0).
			Comment("Nonzero only for failed-run recovery requests"),
		field.Time("added_time"),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("added_time"),
	}
}
