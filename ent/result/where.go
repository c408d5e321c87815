// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// IDTest applies equality check predicate on the "id_test" field. It's identical to IDTestEQ.
func IDTest(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldIDTest, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldVersion, v))
}

// Planned applies equality check predicate on the "planned" field. It's identical to PlannedEQ.
func Planned(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldPlanned, v))
}

// Started applies equality check predicate on the "started" field. It's identical to StartedEQ.
func Started(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStarted, v))
}

// Finished applies equality check predicate on the "finished" field. It's identical to FinishedEQ.
func Finished(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldFinished, v))
}

// RecoveryAttempt applies equality check predicate on the "recovery_attempt" field. It's identical to RecoveryAttemptEQ.
func RecoveryAttempt(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// Data applies equality check predicate on the "data" field. It's identical to DataEQ.
func Data(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldData, v))
}

// IDTestEQ applies the EQ predicate on the "id_test" field.
func IDTestEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldIDTest, v))
}

// IDTestNEQ applies the NEQ predicate on the "id_test" field.
func IDTestNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldIDTest, v))
}

// IDTestIn applies the In predicate on the "id_test" field.
func IDTestIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldIDTest, vs...))
}

// IDTestNotIn applies the NotIn predicate on the "id_test" field.
func IDTestNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldIDTest, vs...))
}

// IDTestGT applies the GT predicate on the "id_test" field.
func IDTestGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldIDTest, v))
}

// IDTestGTE applies the GTE predicate on the "id_test" field.
func IDTestGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldIDTest, v))
}

// IDTestLT applies the LT predicate on the "id_test" field.
func IDTestLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldIDTest, v))
}

// IDTestLTE applies the LTE predicate on the "id_test" field.
func IDTestLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldIDTest, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldVersion, v))
}

// PlannedEQ applies the EQ predicate on the "planned" field.
func PlannedEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldPlanned, v))
}

// PlannedNEQ applies the NEQ predicate on the "planned" field.
func PlannedNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldPlanned, v))
}

// PlannedIn applies the In predicate on the "planned" field.
func PlannedIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldPlanned, vs...))
}

// PlannedNotIn applies the NotIn predicate on the "planned" field.
func PlannedNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldPlanned, vs...))
}

// PlannedGT applies the GT predicate on the "planned" field.
func PlannedGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldPlanned, v))
}

// PlannedGTE applies the GTE predicate on the "planned" field.
func PlannedGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldPlanned, v))
}

// PlannedLT applies the LT predicate on the "planned" field.
func PlannedLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldPlanned, v))
}

// PlannedLTE applies the LTE predicate on the "planned" field.
func PlannedLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldPlanned, v))
}

// StartedEQ applies the EQ predicate on the "started" field.
func StartedEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStarted, v))
}

// StartedNEQ applies the NEQ predicate on the "started" field.
func StartedNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldStarted, v))
}

// StartedIn applies the In predicate on the "started" field.
func StartedIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldStarted, vs...))
}

// StartedNotIn applies the NotIn predicate on the "started" field.
func StartedNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldStarted, vs...))
}

// StartedGT applies the GT predicate on the "started" field.
func StartedGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldStarted, v))
}

// StartedGTE applies the GTE predicate on the "started" field.
func StartedGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldStarted, v))
}

// StartedLT applies the LT predicate on the "started" field.
func StartedLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldStarted, v))
}

// StartedLTE applies the LTE predicate on the "started" field.
func StartedLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldStarted, v))
}

// StartedIsNil applies the IsNil predicate on the "started" field.
func StartedIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldStarted))
}

// StartedNotNil applies the NotNil predicate on the "started" field.
func StartedNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldStarted))
}

// FinishedEQ applies the EQ predicate on the "finished" field.
func FinishedEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldFinished, v))
}

// FinishedNEQ applies the NEQ predicate on the "finished" field.
func FinishedNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldFinished, v))
}

// FinishedIn applies the In predicate on the "finished" field.
func FinishedIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldFinished, vs...))
}

// FinishedNotIn applies the NotIn predicate on the "finished" field.
func FinishedNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldFinished, vs...))
}

// FinishedGT applies the GT predicate on the "finished" field.
func FinishedGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldFinished, v))
}

// FinishedGTE applies the GTE predicate on the "finished" field.
func FinishedGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldFinished, v))
}

// FinishedLT applies the LT predicate on the "finished" field.
func FinishedLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldFinished, v))
}

// FinishedLTE applies the LTE predicate on the "finished" field.
func FinishedLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldFinished, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldStatus, vs...))
}

// RecoveryAttemptEQ applies the EQ predicate on the "recovery_attempt" field.
func RecoveryAttemptEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptNEQ applies the NEQ predicate on the "recovery_attempt" field.
func RecoveryAttemptNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptIn applies the In predicate on the "recovery_attempt" field.
func RecoveryAttemptIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptNotIn applies the NotIn predicate on the "recovery_attempt" field.
func RecoveryAttemptNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptGT applies the GT predicate on the "recovery_attempt" field.
func RecoveryAttemptGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptGTE applies the GTE predicate on the "recovery_attempt" field.
func RecoveryAttemptGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLT applies the LT predicate on the "recovery_attempt" field.
func RecoveryAttemptLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLTE applies the LTE predicate on the "recovery_attempt" field.
func RecoveryAttemptLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldRecoveryAttempt, v))
}

// DataEQ applies the EQ predicate on the "data" field.
func DataEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldData, v))
}

// DataNEQ applies the NEQ predicate on the "data" field.
func DataNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldData, v))
}

// DataIn applies the In predicate on the "data" field.
func DataIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldData, vs...))
}

// DataNotIn applies the NotIn predicate on the "data" field.
func DataNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldData, vs...))
}

// DataGT applies the GT predicate on the "data" field.
func DataGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldData, v))
}

// DataGTE applies the GTE predicate on the "data" field.
func DataGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldData, v))
}

// DataLT applies the LT predicate on the "data" field.
func DataLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldData, v))
}

// DataLTE applies the LTE predicate on the "data" field.
func DataLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldData, v))
}

// DataContains applies the Contains predicate on the "data" field.
func DataContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldData, v))
}

// DataHasPrefix applies the HasPrefix predicate on the "data" field.
func DataHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldData, v))
}

// DataHasSuffix applies the HasSuffix predicate on the "data" field.
func DataHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldData, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldData))
}

// DataEqualFold applies the EqualFold predicate on the "data" field.
func DataEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldData, v))
}

// DataContainsFold applies the ContainsFold predicate on the "data" field.
func DataContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldData, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}
