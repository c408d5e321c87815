package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Stat holds the schema definition for the Stat entity: an hourly sample of
// per-table row counts taken by the stats process.
type Stat struct {
	ent.Schema
}

// Fields of the Stat.
func (Stat) Fields() []ent.Field {
	return []ent.Field{
		field.Time("time"),
		field.String("table_name"),
		field.String("category").
			Comment("Row bucket within the table, or 'all' for the total"),
		field.Int("value"),
	}
}

// Indexes of the Stat.
func (Stat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("time"),
	}
}
