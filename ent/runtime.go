// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/inventor-project/symon/ent/event"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/result"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/schema"
	"github.com/inventor-project/symon/ent/test"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescRecoveryAttempt is the schema descriptor for recovery_attempt field.
	eventDescRecoveryAttempt := eventFields[3].Descriptor()
	// event.DefaultRecoveryAttempt holds the default value on creation for the recovery_attempt field.
	event.DefaultRecoveryAttempt = eventDescRecoveryAttempt.Default.(int)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescRecoveryAttempt is the schema descriptor for recovery_attempt field.
	requestDescRecoveryAttempt := requestFields[2].Descriptor()
	// request.DefaultRecoveryAttempt holds the default value on creation for the recovery_attempt field.
	request.DefaultRecoveryAttempt = requestDescRecoveryAttempt.Default.(int)
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescRecoveryAttempt is the schema descriptor for recovery_attempt field.
	resultDescRecoveryAttempt := resultFields[6].Descriptor()
	// result.DefaultRecoveryAttempt holds the default value on creation for the recovery_attempt field.
	result.DefaultRecoveryAttempt = resultDescRecoveryAttempt.Default.(int)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescRecoveryAttempt is the schema descriptor for recovery_attempt field.
	runDescRecoveryAttempt := runFields[7].Descriptor()
	// run.DefaultRecoveryAttempt holds the default value on creation for the recovery_attempt field.
	run.DefaultRecoveryAttempt = runDescRecoveryAttempt.Default.(int)
	testFields := schema.Test{}.Fields()
	_ = testFields
	// testDescVersion is the schema descriptor for version field.
	testDescVersion := testFields[2].Descriptor()
	// test.DefaultVersion holds the default value on creation for the version field.
	test.DefaultVersion = testDescVersion.Default.(int)
}
