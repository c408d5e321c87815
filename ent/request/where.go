// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// IDTest applies equality check predicate on the "id_test" field. It's identical to IDTestEQ.
func IDTest(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIDTest, v))
}

// RecoveryAttempt applies equality check predicate on the "recovery_attempt" field. It's identical to RecoveryAttemptEQ.
func RecoveryAttempt(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// AddedTime applies equality check predicate on the "added_time" field. It's identical to AddedTimeEQ.
func AddedTime(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAddedTime, v))
}

// IDTestEQ applies the EQ predicate on the "id_test" field.
func IDTestEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIDTest, v))
}

// IDTestNEQ applies the NEQ predicate on the "id_test" field.
func IDTestNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIDTest, v))
}

// IDTestIn applies the In predicate on the "id_test" field.
func IDTestIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIDTest, vs...))
}

// IDTestNotIn applies the NotIn predicate on the "id_test" field.
func IDTestNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIDTest, vs...))
}

// IDTestGT applies the GT predicate on the "id_test" field.
func IDTestGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIDTest, v))
}

// IDTestGTE applies the GTE predicate on the "id_test" field.
func IDTestGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIDTest, v))
}

// IDTestLT applies the LT predicate on the "id_test" field.
func IDTestLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIDTest, v))
}

// IDTestLTE applies the LTE predicate on the "id_test" field.
func IDTestLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIDTest, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v Reason) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v Reason) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...Reason) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...Reason) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldReason, vs...))
}

// RecoveryAttemptEQ applies the EQ predicate on the "recovery_attempt" field.
func RecoveryAttemptEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptNEQ applies the NEQ predicate on the "recovery_attempt" field.
func RecoveryAttemptNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptIn applies the In predicate on the "recovery_attempt" field.
func RecoveryAttemptIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptNotIn applies the NotIn predicate on the "recovery_attempt" field.
func RecoveryAttemptNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptGT applies the GT predicate on the "recovery_attempt" field.
func RecoveryAttemptGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptGTE applies the GTE predicate on the "recovery_attempt" field.
func RecoveryAttemptGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLT applies the LT predicate on the "recovery_attempt" field.
func RecoveryAttemptLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLTE applies the LTE predicate on the "recovery_attempt" field.
func RecoveryAttemptLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRecoveryAttempt, v))
}

// AddedTimeEQ applies the EQ predicate on the "added_time" field.
func AddedTimeEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAddedTime, v))
}

// AddedTimeNEQ applies the NEQ predicate on the "added_time" field.
func AddedTimeNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldAddedTime, v))
}

// AddedTimeIn applies the In predicate on the "added_time" field.
func AddedTimeIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldAddedTime, vs...))
}

// AddedTimeNotIn applies the NotIn predicate on the "added_time" field.
func AddedTimeNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldAddedTime, vs...))
}

// AddedTimeGT applies the GT predicate on the "added_time" field.
func AddedTimeGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldAddedTime, v))
}

// AddedTimeGTE applies the GTE predicate on the "added_time" field.
func AddedTimeGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldAddedTime, v))
}

// AddedTimeLT applies the LT predicate on the "added_time" field.
func AddedTimeLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldAddedTime, v))
}

// AddedTimeLTE applies the LTE predicate on the "added_time" field.
func AddedTimeLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldAddedTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
