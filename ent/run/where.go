// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDTest applies equality check predicate on the "id_test" field. It's identical to IDTestEQ.
func IDTest(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIDTest, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldVersion, v))
}

// Pid applies equality check predicate on the "pid" field. It's identical to PidEQ.
func Pid(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPid, v))
}

// Planned applies equality check predicate on the "planned" field. It's identical to PlannedEQ.
func Planned(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPlanned, v))
}

// Started applies equality check predicate on the "started" field. It's identical to StartedEQ.
func Started(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStarted, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDeadline, v))
}

// RecoveryAttempt applies equality check predicate on the "recovery_attempt" field. It's identical to RecoveryAttemptEQ.
func RecoveryAttempt(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// IDTestEQ applies the EQ predicate on the "id_test" field.
func IDTestEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIDTest, v))
}

// IDTestNEQ applies the NEQ predicate on the "id_test" field.
func IDTestNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldIDTest, v))
}

// IDTestIn applies the In predicate on the "id_test" field.
func IDTestIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldIDTest, vs...))
}

// IDTestNotIn applies the NotIn predicate on the "id_test" field.
func IDTestNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldIDTest, vs...))
}

// IDTestGT applies the GT predicate on the "id_test" field.
func IDTestGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldIDTest, v))
}

// IDTestGTE applies the GTE predicate on the "id_test" field.
func IDTestGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldIDTest, v))
}

// IDTestLT applies the LT predicate on the "id_test" field.
func IDTestLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldIDTest, v))
}

// IDTestLTE applies the LTE predicate on the "id_test" field.
func IDTestLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldIDTest, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldVersion, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldState, vs...))
}

// PidEQ applies the EQ predicate on the "pid" field.
func PidEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPid, v))
}

// PidNEQ applies the NEQ predicate on the "pid" field.
func PidNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPid, v))
}

// PidIn applies the In predicate on the "pid" field.
func PidIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPid, vs...))
}

// PidNotIn applies the NotIn predicate on the "pid" field.
func PidNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPid, vs...))
}

// PidGT applies the GT predicate on the "pid" field.
func PidGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPid, v))
}

// PidGTE applies the GTE predicate on the "pid" field.
func PidGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPid, v))
}

// PidLT applies the LT predicate on the "pid" field.
func PidLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPid, v))
}

// PidLTE applies the LTE predicate on the "pid" field.
func PidLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPid, v))
}

// PidIsNil applies the IsNil predicate on the "pid" field.
func PidIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPid))
}

// PidNotNil applies the NotNil predicate on the "pid" field.
func PidNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPid))
}

// PlannedEQ applies the EQ predicate on the "planned" field.
func PlannedEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPlanned, v))
}

// PlannedNEQ applies the NEQ predicate on the "planned" field.
func PlannedNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPlanned, v))
}

// PlannedIn applies the In predicate on the "planned" field.
func PlannedIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPlanned, vs...))
}

// PlannedNotIn applies the NotIn predicate on the "planned" field.
func PlannedNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPlanned, vs...))
}

// PlannedGT applies the GT predicate on the "planned" field.
func PlannedGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPlanned, v))
}

// PlannedGTE applies the GTE predicate on the "planned" field.
func PlannedGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPlanned, v))
}

// PlannedLT applies the LT predicate on the "planned" field.
func PlannedLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPlanned, v))
}

// PlannedLTE applies the LTE predicate on the "planned" field.
func PlannedLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPlanned, v))
}

// StartedEQ applies the EQ predicate on the "started" field.
func StartedEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStarted, v))
}

// StartedNEQ applies the NEQ predicate on the "started" field.
func StartedNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStarted, v))
}

// StartedIn applies the In predicate on the "started" field.
func StartedIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStarted, vs...))
}

// StartedNotIn applies the NotIn predicate on the "started" field.
func StartedNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStarted, vs...))
}

// StartedGT applies the GT predicate on the "started" field.
func StartedGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStarted, v))
}

// StartedGTE applies the GTE predicate on the "started" field.
func StartedGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStarted, v))
}

// StartedLT applies the LT predicate on the "started" field.
func StartedLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStarted, v))
}

// StartedLTE applies the LTE predicate on the "started" field.
func StartedLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStarted, v))
}

// StartedIsNil applies the IsNil predicate on the "started" field.
func StartedIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStarted))
}

// StartedNotNil applies the NotNil predicate on the "started" field.
func StartedNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStarted))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldDeadline))
}

// RecoveryAttemptEQ applies the EQ predicate on the "recovery_attempt" field.
func RecoveryAttemptEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptNEQ applies the NEQ predicate on the "recovery_attempt" field.
func RecoveryAttemptNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptIn applies the In predicate on the "recovery_attempt" field.
func RecoveryAttemptIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptNotIn applies the NotIn predicate on the "recovery_attempt" field.
func RecoveryAttemptNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptGT applies the GT predicate on the "recovery_attempt" field.
func RecoveryAttemptGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptGTE applies the GTE predicate on the "recovery_attempt" field.
func RecoveryAttemptGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLT applies the LT predicate on the "recovery_attempt" field.
func RecoveryAttemptLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLTE applies the LTE predicate on the "recovery_attempt" field.
func RecoveryAttemptLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRecoveryAttempt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
