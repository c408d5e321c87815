package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Test holds the schema definition for the Test entity, a user-visible
// monitoring definition: which probe to run, with what parameters, and when.
type Test struct {
	ent.Schema
}

// Fields of the Test.
func (Test) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Comment("Probe name resolved through the probe registry (e.g. 'network.icmp.ping')"),
		field.String("description"),
		field.Int("version").
			Default(1).
			Comment("Bumped by one every time test_params changes; old params go to old_params"),
		field.Enum("state").
			Values("enabled", "disabled", "deleted", "migrating_from", "migrating_to"),
		field.Text("test_params").
			Comment("Opaque JSON blob interpreted by the probe"),
		field.Int("timeout").
			Comment("Per-run deadline in seconds"),
		field.Int("scheduling_interval").
			Optional().
			Nillable().
			Comment("Seconds between periodic runs; absent or 0 means one-shot"),
		field.Time("scheduling_from").
			Optional().
			Nillable(),
		field.Time("scheduling_until").
			Optional().
			Nillable(),
		field.Int("recovery_interval").
			Optional().
			Nillable().
			Comment("Seconds to wait before a recovery run after a failure"),
		field.Int("recovery_attempt_limit").
			Optional().
			Nillable().
			Comment("0 disables recovery, absent means unlimited attempts"),
		field.String("key_ro").
			Comment("Authorization key for read access to this test"),
		field.String("key_rw").
			Comment("Authorization key for changing this test"),
		field.Time("created"),
		field.Time("last_started_time").
			Optional().
			Nillable(),
		field.Time("last_result_time").
			Optional().
			Nillable(),
		field.Enum("last_result_status").
			Values("success", "terminated", "error", "crashed").
			Optional(),
		field.Time("last_downloaded_time").
			Optional().
			Nillable(),
	}
}

// Indexes of the Test.
func (Test) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("last_downloaded_time"),
	}
}
