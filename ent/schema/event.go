package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: a planned future
// run produced by the calendar. The tests manager consumes due events.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id_test"),
		field.Time("run_at"),
		field.Enum("source").
			Values("request", "calendar", "recovery"),
		field.Int("recovery_attempt").
			Default(0),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_at"),
		index.Fields("id_test"),
	}
}
