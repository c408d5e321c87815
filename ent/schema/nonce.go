package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Nonce holds the schema definition for the Nonce entity: a recently seen
// request nonce kept for replay detection until the cleaner expires it.
type Nonce struct {
	ent.Schema
}

// Fields of the Nonce.
func (Nonce) Fields() []ent.Field {
	return []ent.Field{
		field.String("nonce").
			Unique(),
		field.Time("used_at"),
	}
}

// Indexes of the Nonce.
func (Nonce) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("used_at"),
	}
}
