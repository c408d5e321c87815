// Code generated by ent, DO NOT EDIT.

package oldparam

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OldParam {
	return predicate.OldParam(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OldParam {
	return predicate.OldParam(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OldParam {
	return predicate.OldParam(sql.FieldLTE(FieldID, id))
}

// IDTest applies equality check predicate on the "id_test" field. It's identical to IDTestEQ.
func IDTest(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldIDTest, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldVersion, v))
}

// TestParams applies equality check predicate on the "test_params" field. It's identical to TestParamsEQ.
func TestParams(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldTestParams, v))
}

// Changed applies equality check predicate on the "changed" field. It's identical to ChangedEQ.
func Changed(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldChanged, v))
}

// IDTestEQ applies the EQ predicate on the "id_test" field.
func IDTestEQ(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldIDTest, v))
}

// IDTestNEQ applies the NEQ predicate on the "id_test" field.
func IDTestNEQ(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldNEQ(FieldIDTest, v))
}

// IDTestIn applies the In predicate on the "id_test" field.
func IDTestIn(vs ...int) predicate.OldParam {
	return predicate.OldParam(sql.FieldIn(FieldIDTest, vs...))
}

// IDTestNotIn applies the NotIn predicate on the "id_test" field.
func IDTestNotIn(vs ...int) predicate.OldParam {
	return predicate.OldParam(sql.FieldNotIn(FieldIDTest, vs...))
}

// IDTestGT applies the GT predicate on the "id_test" field.
func IDTestGT(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldGT(FieldIDTest, v))
}

// IDTestGTE applies the GTE predicate on the "id_test" field.
func IDTestGTE(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldGTE(FieldIDTest, v))
}

// IDTestLT applies the LT predicate on the "id_test" field.
func IDTestLT(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldLT(FieldIDTest, v))
}

// IDTestLTE applies the LTE predicate on the "id_test" field.
func IDTestLTE(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldLTE(FieldIDTest, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.OldParam {
	return predicate.OldParam(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.OldParam {
	return predicate.OldParam(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.OldParam {
	return predicate.OldParam(sql.FieldLTE(FieldVersion, v))
}

// TestParamsEQ applies the EQ predicate on the "test_params" field.
func TestParamsEQ(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldTestParams, v))
}

// TestParamsNEQ applies the NEQ predicate on the "test_params" field.
func TestParamsNEQ(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldNEQ(FieldTestParams, v))
}

// TestParamsIn applies the In predicate on the "test_params" field.
func TestParamsIn(vs ...string) predicate.OldParam {
	return predicate.OldParam(sql.FieldIn(FieldTestParams, vs...))
}

// TestParamsNotIn applies the NotIn predicate on the "test_params" field.
func TestParamsNotIn(vs ...string) predicate.OldParam {
	return predicate.OldParam(sql.FieldNotIn(FieldTestParams, vs...))
}

// TestParamsGT applies the GT predicate on the "test_params" field.
func TestParamsGT(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldGT(FieldTestParams, v))
}

// TestParamsGTE applies the GTE predicate on the "test_params" field.
func TestParamsGTE(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldGTE(FieldTestParams, v))
}

// TestParamsLT applies the LT predicate on the "test_params" field.
func TestParamsLT(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldLT(FieldTestParams, v))
}

// TestParamsLTE applies the LTE predicate on the "test_params" field.
func TestParamsLTE(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldLTE(FieldTestParams, v))
}

// TestParamsContains applies the Contains predicate on the "test_params" field.
func TestParamsContains(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldContains(FieldTestParams, v))
}

// TestParamsHasPrefix applies the HasPrefix predicate on the "test_params" field.
func TestParamsHasPrefix(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldHasPrefix(FieldTestParams, v))
}

// TestParamsHasSuffix applies the HasSuffix predicate on the "test_params" field.
func TestParamsHasSuffix(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldHasSuffix(FieldTestParams, v))
}

// TestParamsEqualFold applies the EqualFold predicate on the "test_params" field.
func TestParamsEqualFold(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldEqualFold(FieldTestParams, v))
}

// TestParamsContainsFold applies the ContainsFold predicate on the "test_params" field.
func TestParamsContainsFold(v string) predicate.OldParam {
	return predicate.OldParam(sql.FieldContainsFold(FieldTestParams, v))
}

// ChangedEQ applies the EQ predicate on the "changed" field.
func ChangedEQ(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldEQ(FieldChanged, v))
}

// ChangedNEQ applies the NEQ predicate on the "changed" field.
func ChangedNEQ(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldNEQ(FieldChanged, v))
}

// ChangedIn applies the In predicate on the "changed" field.
func ChangedIn(vs ...time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldIn(FieldChanged, vs...))
}

// ChangedNotIn applies the NotIn predicate on the "changed" field.
func ChangedNotIn(vs ...time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldNotIn(FieldChanged, vs...))
}

// ChangedGT applies the GT predicate on the "changed" field.
func ChangedGT(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldGT(FieldChanged, v))
}

// ChangedGTE applies the GTE predicate on the "changed" field.
func ChangedGTE(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldGTE(FieldChanged, v))
}

// ChangedLT applies the LT predicate on the "changed" field.
func ChangedLT(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldLT(FieldChanged, v))
}

// ChangedLTE applies the LTE predicate on the "changed" field.
func ChangedLTE(v time.Time) predicate.OldParam {
	return predicate.OldParam(sql.FieldLTE(FieldChanged, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OldParam) predicate.OldParam {
	return predicate.OldParam(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OldParam) predicate.OldParam {
	return predicate.OldParam(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OldParam) predicate.OldParam {
	return predicate.OldParam(sql.NotPredicates(p))
}
