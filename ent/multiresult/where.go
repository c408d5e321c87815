// Code generated by ent, DO NOT EDIT.

package multiresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLTE(FieldID, id))
}

// OrchestratorName applies equality check predicate on the "orchestrator_name" field. It's identical to OrchestratorNameEQ.
func OrchestratorName(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldOrchestratorName, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldKey, v))
}

// LastUsedTime applies equality check predicate on the "last_used_time" field. It's identical to LastUsedTimeEQ.
func LastUsedTime(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldLastUsedTime, v))
}

// OrchestratorNameEQ applies the EQ predicate on the "orchestrator_name" field.
func OrchestratorNameEQ(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldOrchestratorName, v))
}

// OrchestratorNameNEQ applies the NEQ predicate on the "orchestrator_name" field.
func OrchestratorNameNEQ(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNEQ(FieldOrchestratorName, v))
}

// OrchestratorNameIn applies the In predicate on the "orchestrator_name" field.
func OrchestratorNameIn(vs ...string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldIn(FieldOrchestratorName, vs...))
}

// OrchestratorNameNotIn applies the NotIn predicate on the "orchestrator_name" field.
func OrchestratorNameNotIn(vs ...string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNotIn(FieldOrchestratorName, vs...))
}

// OrchestratorNameGT applies the GT predicate on the "orchestrator_name" field.
func OrchestratorNameGT(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGT(FieldOrchestratorName, v))
}

// OrchestratorNameGTE applies the GTE predicate on the "orchestrator_name" field.
func OrchestratorNameGTE(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGTE(FieldOrchestratorName, v))
}

// OrchestratorNameLT applies the LT predicate on the "orchestrator_name" field.
func OrchestratorNameLT(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLT(FieldOrchestratorName, v))
}

// OrchestratorNameLTE applies the LTE predicate on the "orchestrator_name" field.
func OrchestratorNameLTE(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLTE(FieldOrchestratorName, v))
}

// OrchestratorNameContains applies the Contains predicate on the "orchestrator_name" field.
func OrchestratorNameContains(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldContains(FieldOrchestratorName, v))
}

// OrchestratorNameHasPrefix applies the HasPrefix predicate on the "orchestrator_name" field.
func OrchestratorNameHasPrefix(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldHasPrefix(FieldOrchestratorName, v))
}

// OrchestratorNameHasSuffix applies the HasSuffix predicate on the "orchestrator_name" field.
func OrchestratorNameHasSuffix(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldHasSuffix(FieldOrchestratorName, v))
}

// OrchestratorNameEqualFold applies the EqualFold predicate on the "orchestrator_name" field.
func OrchestratorNameEqualFold(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEqualFold(FieldOrchestratorName, v))
}

// OrchestratorNameContainsFold applies the ContainsFold predicate on the "orchestrator_name" field.
func OrchestratorNameContainsFold(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldContainsFold(FieldOrchestratorName, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldContainsFold(FieldKey, v))
}

// LastUsedTimeEQ applies the EQ predicate on the "last_used_time" field.
func LastUsedTimeEQ(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldEQ(FieldLastUsedTime, v))
}

// LastUsedTimeNEQ applies the NEQ predicate on the "last_used_time" field.
func LastUsedTimeNEQ(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNEQ(FieldLastUsedTime, v))
}

// LastUsedTimeIn applies the In predicate on the "last_used_time" field.
func LastUsedTimeIn(vs ...time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldIn(FieldLastUsedTime, vs...))
}

// LastUsedTimeNotIn applies the NotIn predicate on the "last_used_time" field.
func LastUsedTimeNotIn(vs ...time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNotIn(FieldLastUsedTime, vs...))
}

// LastUsedTimeGT applies the GT predicate on the "last_used_time" field.
func LastUsedTimeGT(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGT(FieldLastUsedTime, v))
}

// LastUsedTimeGTE applies the GTE predicate on the "last_used_time" field.
func LastUsedTimeGTE(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldGTE(FieldLastUsedTime, v))
}

// LastUsedTimeLT applies the LT predicate on the "last_used_time" field.
func LastUsedTimeLT(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLT(FieldLastUsedTime, v))
}

// LastUsedTimeLTE applies the LTE predicate on the "last_used_time" field.
func LastUsedTimeLTE(v time.Time) predicate.MultiResult {
	return predicate.MultiResult(sql.FieldLTE(FieldLastUsedTime, v))
}

// LastUsedTimeIsNil applies the IsNil predicate on the "last_used_time" field.
func LastUsedTimeIsNil() predicate.MultiResult {
	return predicate.MultiResult(sql.FieldIsNull(FieldLastUsedTime))
}

// LastUsedTimeNotNil applies the NotNil predicate on the "last_used_time" field.
func LastUsedTimeNotNil() predicate.MultiResult {
	return predicate.MultiResult(sql.FieldNotNull(FieldLastUsedTime))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MultiResult) predicate.MultiResult {
	return predicate.MultiResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MultiResult) predicate.MultiResult {
	return predicate.MultiResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MultiResult) predicate.MultiResult {
	return predicate.MultiResult(sql.NotPredicates(p))
}
