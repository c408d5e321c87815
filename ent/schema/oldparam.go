package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OldParam holds the schema definition for the OldParam entity: a historical
// snapshot of a test's parameters, kept so results can be interpreted against
// the params that produced them.
type OldParam struct {
	ent.Schema
}

// Fields of the OldParam.
func (OldParam) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id_test"),
		field.Int("version"),
		field.Text("test_params"),
		field.Time("changed"),
	}
}

// Indexes of the OldParam.
func (OldParam) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id_test", "version"),
		index.Fields("changed"),
	}
}
