// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDTest applies equality check predicate on the "id_test" field. It's identical to IDTestEQ.
func IDTest(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIDTest, v))
}

// RunAt applies equality check predicate on the "run_at" field. It's identical to RunAtEQ.
func RunAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRunAt, v))
}

// RecoveryAttempt applies equality check predicate on the "recovery_attempt" field. It's identical to RecoveryAttemptEQ.
func RecoveryAttempt(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// IDTestEQ applies the EQ predicate on the "id_test" field.
func IDTestEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIDTest, v))
}

// IDTestNEQ applies the NEQ predicate on the "id_test" field.
func IDTestNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIDTest, v))
}

// IDTestIn applies the In predicate on the "id_test" field.
func IDTestIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldIDTest, vs...))
}

// IDTestNotIn applies the NotIn predicate on the "id_test" field.
func IDTestNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldIDTest, vs...))
}

// IDTestGT applies the GT predicate on the "id_test" field.
func IDTestGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldIDTest, v))
}

// IDTestGTE applies the GTE predicate on the "id_test" field.
func IDTestGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldIDTest, v))
}

// IDTestLT applies the LT predicate on the "id_test" field.
func IDTestLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldIDTest, v))
}

// IDTestLTE applies the LTE predicate on the "id_test" field.
func IDTestLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldIDTest, v))
}

// RunAtEQ applies the EQ predicate on the "run_at" field.
func RunAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRunAt, v))
}

// RunAtNEQ applies the NEQ predicate on the "run_at" field.
func RunAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRunAt, v))
}

// RunAtIn applies the In predicate on the "run_at" field.
func RunAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRunAt, vs...))
}

// RunAtNotIn applies the NotIn predicate on the "run_at" field.
func RunAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRunAt, vs...))
}

// RunAtGT applies the GT predicate on the "run_at" field.
func RunAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRunAt, v))
}

// RunAtGTE applies the GTE predicate on the "run_at" field.
func RunAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRunAt, v))
}

// RunAtLT applies the LT predicate on the "run_at" field.
func RunAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRunAt, v))
}

// RunAtLTE applies the LTE predicate on the "run_at" field.
func RunAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRunAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSource, vs...))
}

// RecoveryAttemptEQ applies the EQ predicate on the "recovery_attempt" field.
func RecoveryAttemptEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptNEQ applies the NEQ predicate on the "recovery_attempt" field.
func RecoveryAttemptNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptIn applies the In predicate on the "recovery_attempt" field.
func RecoveryAttemptIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptNotIn applies the NotIn predicate on the "recovery_attempt" field.
func RecoveryAttemptNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptGT applies the GT predicate on the "recovery_attempt" field.
func RecoveryAttemptGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptGTE applies the GTE predicate on the "recovery_attempt" field.
func RecoveryAttemptGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLT applies the LT predicate on the "recovery_attempt" field.
func RecoveryAttemptLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLTE applies the LTE predicate on the "recovery_attempt" field.
func RecoveryAttemptLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRecoveryAttempt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
