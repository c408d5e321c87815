// Code generated by ent, DO NOT EDIT.

package test

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldDescription, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldVersion, v))
}

// TestParams applies equality check predicate on the "test_params" field. It's identical to TestParamsEQ.
func TestParams(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldTestParams, v))
}

// Timeout applies equality check predicate on the "timeout" field. It's identical to TimeoutEQ.
func Timeout(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldTimeout, v))
}

// SchedulingInterval applies equality check predicate on the "scheduling_interval" field. It's identical to SchedulingIntervalEQ.
func SchedulingInterval(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldSchedulingInterval, v))
}

// SchedulingFrom applies equality check predicate on the "scheduling_from" field. It's identical to SchedulingFromEQ.
func SchedulingFrom(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldSchedulingFrom, v))
}

// SchedulingUntil applies equality check predicate on the "scheduling_until" field. It's identical to SchedulingUntilEQ.
func SchedulingUntil(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldSchedulingUntil, v))
}

// RecoveryInterval applies equality check predicate on the "recovery_interval" field. It's identical to RecoveryIntervalEQ.
func RecoveryInterval(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldRecoveryInterval, v))
}

// RecoveryAttemptLimit applies equality check predicate on the "recovery_attempt_limit" field. It's identical to RecoveryAttemptLimitEQ.
func RecoveryAttemptLimit(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldRecoveryAttemptLimit, v))
}

// KeyRo applies equality check predicate on the "key_ro" field. It's identical to KeyRoEQ.
func KeyRo(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldKeyRo, v))
}

// KeyRw applies equality check predicate on the "key_rw" field. It's identical to KeyRwEQ.
func KeyRw(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldKeyRw, v))
}

// Created applies equality check predicate on the "created" field. It's identical to CreatedEQ.
func Created(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldCreated, v))
}

// LastStartedTime applies equality check predicate on the "last_started_time" field. It's identical to LastStartedTimeEQ.
func LastStartedTime(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastStartedTime, v))
}

// LastResultTime applies equality check predicate on the "last_result_time" field. It's identical to LastResultTimeEQ.
func LastResultTime(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastResultTime, v))
}

// LastDownloadedTime applies equality check predicate on the "last_downloaded_time" field. It's identical to LastDownloadedTimeEQ.
func LastDownloadedTime(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastDownloadedTime, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Test {
	return predicate.Test(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Test {
	return predicate.Test(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Test {
	return predicate.Test(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Test {
	return predicate.Test(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Test {
	return predicate.Test(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Test {
	return predicate.Test(sql.FieldContainsFold(FieldDescription, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldVersion, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldState, vs...))
}

// TestParamsEQ applies the EQ predicate on the "test_params" field.
func TestParamsEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldTestParams, v))
}

// TestParamsNEQ applies the NEQ predicate on the "test_params" field.
func TestParamsNEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldTestParams, v))
}

// TestParamsIn applies the In predicate on the "test_params" field.
func TestParamsIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldTestParams, vs...))
}

// TestParamsNotIn applies the NotIn predicate on the "test_params" field.
func TestParamsNotIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldTestParams, vs...))
}

// TestParamsGT applies the GT predicate on the "test_params" field.
func TestParamsGT(v string) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldTestParams, v))
}

// TestParamsGTE applies the GTE predicate on the "test_params" field.
func TestParamsGTE(v string) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldTestParams, v))
}

// TestParamsLT applies the LT predicate on the "test_params" field.
func TestParamsLT(v string) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldTestParams, v))
}

// TestParamsLTE applies the LTE predicate on the "test_params" field.
func TestParamsLTE(v string) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldTestParams, v))
}

// TestParamsContains applies the Contains predicate on the "test_params" field.
func TestParamsContains(v string) predicate.Test {
	return predicate.Test(sql.FieldContains(FieldTestParams, v))
}

// TestParamsHasPrefix applies the HasPrefix predicate on the "test_params" field.
func TestParamsHasPrefix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasPrefix(FieldTestParams, v))
}

// TestParamsHasSuffix applies the HasSuffix predicate on the "test_params" field.
func TestParamsHasSuffix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasSuffix(FieldTestParams, v))
}

// TestParamsEqualFold applies the EqualFold predicate on the "test_params" field.
func TestParamsEqualFold(v string) predicate.Test {
	return predicate.Test(sql.FieldEqualFold(FieldTestParams, v))
}

// TestParamsContainsFold applies the ContainsFold predicate on the "test_params" field.
func TestParamsContainsFold(v string) predicate.Test {
	return predicate.Test(sql.FieldContainsFold(FieldTestParams, v))
}

// TimeoutEQ applies the EQ predicate on the "timeout" field.
func TimeoutEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldTimeout, v))
}

// TimeoutNEQ applies the NEQ predicate on the "timeout" field.
func TimeoutNEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldTimeout, v))
}

// TimeoutIn applies the In predicate on the "timeout" field.
func TimeoutIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldTimeout, vs...))
}

// TimeoutNotIn applies the NotIn predicate on the "timeout" field.
func TimeoutNotIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldTimeout, vs...))
}

// TimeoutGT applies the GT predicate on the "timeout" field.
func TimeoutGT(v int) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldTimeout, v))
}

// TimeoutGTE applies the GTE predicate on the "timeout" field.
func TimeoutGTE(v int) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldTimeout, v))
}

// TimeoutLT applies the LT predicate on the "timeout" field.
func TimeoutLT(v int) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldTimeout, v))
}

// TimeoutLTE applies the LTE predicate on the "timeout" field.
func TimeoutLTE(v int) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldTimeout, v))
}

// SchedulingIntervalEQ applies the EQ predicate on the "scheduling_interval" field.
func SchedulingIntervalEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldSchedulingInterval, v))
}

// SchedulingIntervalNEQ applies the NEQ predicate on the "scheduling_interval" field.
func SchedulingIntervalNEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldSchedulingInterval, v))
}

// SchedulingIntervalIn applies the In predicate on the "scheduling_interval" field.
func SchedulingIntervalIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldSchedulingInterval, vs...))
}

// SchedulingIntervalNotIn applies the NotIn predicate on the "scheduling_interval" field.
func SchedulingIntervalNotIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldSchedulingInterval, vs...))
}

// SchedulingIntervalGT applies the GT predicate on the "scheduling_interval" field.
func SchedulingIntervalGT(v int) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldSchedulingInterval, v))
}

// SchedulingIntervalGTE applies the GTE predicate on the "scheduling_interval" field.
func SchedulingIntervalGTE(v int) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldSchedulingInterval, v))
}

// SchedulingIntervalLT applies the LT predicate on the "scheduling_interval" field.
func SchedulingIntervalLT(v int) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldSchedulingInterval, v))
}

// SchedulingIntervalLTE applies the LTE predicate on the "scheduling_interval" field.
func SchedulingIntervalLTE(v int) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldSchedulingInterval, v))
}

// SchedulingIntervalIsNil applies the IsNil predicate on the "scheduling_interval" field.
func SchedulingIntervalIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldSchedulingInterval))
}

// SchedulingIntervalNotNil applies the NotNil predicate on the "scheduling_interval" field.
func SchedulingIntervalNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldSchedulingInterval))
}

// SchedulingFromEQ applies the EQ predicate on the "scheduling_from" field.
func SchedulingFromEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldSchedulingFrom, v))
}

// SchedulingFromNEQ applies the NEQ predicate on the "scheduling_from" field.
func SchedulingFromNEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldSchedulingFrom, v))
}

// SchedulingFromIn applies the In predicate on the "scheduling_from" field.
func SchedulingFromIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldSchedulingFrom, vs...))
}

// SchedulingFromNotIn applies the NotIn predicate on the "scheduling_from" field.
func SchedulingFromNotIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldSchedulingFrom, vs...))
}

// SchedulingFromGT applies the GT predicate on the "scheduling_from" field.
func SchedulingFromGT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldSchedulingFrom, v))
}

// SchedulingFromGTE applies the GTE predicate on the "scheduling_from" field.
func SchedulingFromGTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldSchedulingFrom, v))
}

// SchedulingFromLT applies the LT predicate on the "scheduling_from" field.
func SchedulingFromLT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldSchedulingFrom, v))
}

// SchedulingFromLTE applies the LTE predicate on the "scheduling_from" field.
func SchedulingFromLTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldSchedulingFrom, v))
}

// SchedulingFromIsNil applies the IsNil predicate on the "scheduling_from" field.
func SchedulingFromIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldSchedulingFrom))
}

// SchedulingFromNotNil applies the NotNil predicate on the "scheduling_from" field.
func SchedulingFromNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldSchedulingFrom))
}

// SchedulingUntilEQ applies the EQ predicate on the "scheduling_until" field.
func SchedulingUntilEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldSchedulingUntil, v))
}

// SchedulingUntilNEQ applies the NEQ predicate on the "scheduling_until" field.
func SchedulingUntilNEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldSchedulingUntil, v))
}

// SchedulingUntilIn applies the In predicate on the "scheduling_until" field.
func SchedulingUntilIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldSchedulingUntil, vs...))
}

// SchedulingUntilNotIn applies the NotIn predicate on the "scheduling_until" field.
func SchedulingUntilNotIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldSchedulingUntil, vs...))
}

// SchedulingUntilGT applies the GT predicate on the "scheduling_until" field.
func SchedulingUntilGT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldSchedulingUntil, v))
}

// SchedulingUntilGTE applies the GTE predicate on the "scheduling_until" field.
func SchedulingUntilGTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldSchedulingUntil, v))
}

// SchedulingUntilLT applies the LT predicate on the "scheduling_until" field.
func SchedulingUntilLT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldSchedulingUntil, v))
}

// SchedulingUntilLTE applies the LTE predicate on the "scheduling_until" field.
func SchedulingUntilLTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldSchedulingUntil, v))
}

// SchedulingUntilIsNil applies the IsNil predicate on the "scheduling_until" field.
func SchedulingUntilIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldSchedulingUntil))
}

// SchedulingUntilNotNil applies the NotNil predicate on the "scheduling_until" field.
func SchedulingUntilNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldSchedulingUntil))
}

// RecoveryIntervalEQ applies the EQ predicate on the "recovery_interval" field.
func RecoveryIntervalEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldRecoveryInterval, v))
}

// RecoveryIntervalNEQ applies the NEQ predicate on the "recovery_interval" field.
func RecoveryIntervalNEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldRecoveryInterval, v))
}

// RecoveryIntervalIn applies the In predicate on the "recovery_interval" field.
func RecoveryIntervalIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldRecoveryInterval, vs...))
}

// RecoveryIntervalNotIn applies the NotIn predicate on the "recovery_interval" field.
func RecoveryIntervalNotIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldRecoveryInterval, vs...))
}

// RecoveryIntervalGT applies the GT predicate on the "recovery_interval" field.
func RecoveryIntervalGT(v int) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldRecoveryInterval, v))
}

// RecoveryIntervalGTE applies the GTE predicate on the "recovery_interval" field.
func RecoveryIntervalGTE(v int) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldRecoveryInterval, v))
}

// RecoveryIntervalLT applies the LT predicate on the "recovery_interval" field.
func RecoveryIntervalLT(v int) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldRecoveryInterval, v))
}

// RecoveryIntervalLTE applies the LTE predicate on the "recovery_interval" field.
func RecoveryIntervalLTE(v int) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldRecoveryInterval, v))
}

// RecoveryIntervalIsNil applies the IsNil predicate on the "recovery_interval" field.
func RecoveryIntervalIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldRecoveryInterval))
}

// RecoveryIntervalNotNil applies the NotNil predicate on the "recovery_interval" field.
func RecoveryIntervalNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldRecoveryInterval))
}

// RecoveryAttemptLimitEQ applies the EQ predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldRecoveryAttemptLimit, v))
}

// RecoveryAttemptLimitNEQ applies the NEQ predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitNEQ(v int) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldRecoveryAttemptLimit, v))
}

// RecoveryAttemptLimitIn applies the In predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldRecoveryAttemptLimit, vs...))
}

// RecoveryAttemptLimitNotIn applies the NotIn predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitNotIn(vs ...int) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldRecoveryAttemptLimit, vs...))
}

// RecoveryAttemptLimitGT applies the GT predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitGT(v int) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldRecoveryAttemptLimit, v))
}

// RecoveryAttemptLimitGTE applies the GTE predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitGTE(v int) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldRecoveryAttemptLimit, v))
}

// RecoveryAttemptLimitLT applies the LT predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitLT(v int) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldRecoveryAttemptLimit, v))
}

// RecoveryAttemptLimitLTE applies the LTE predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitLTE(v int) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldRecoveryAttemptLimit, v))
}

// RecoveryAttemptLimitIsNil applies the IsNil predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldRecoveryAttemptLimit))
}

// RecoveryAttemptLimitNotNil applies the NotNil predicate on the "recovery_attempt_limit" field.
func RecoveryAttemptLimitNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldRecoveryAttemptLimit))
}

// KeyRoEQ applies the EQ predicate on the "key_ro" field.
func KeyRoEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldKeyRo, v))
}

// KeyRoNEQ applies the NEQ predicate on the "key_ro" field.
func KeyRoNEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldKeyRo, v))
}

// KeyRoIn applies the In predicate on the "key_ro" field.
func KeyRoIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldKeyRo, vs...))
}

// KeyRoNotIn applies the NotIn predicate on the "key_ro" field.
func KeyRoNotIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldKeyRo, vs...))
}

// KeyRoGT applies the GT predicate on the "key_ro" field.
func KeyRoGT(v string) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldKeyRo, v))
}

// KeyRoGTE applies the GTE predicate on the "key_ro" field.
func KeyRoGTE(v string) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldKeyRo, v))
}

// KeyRoLT applies the LT predicate on the "key_ro" field.
func KeyRoLT(v string) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldKeyRo, v))
}

// KeyRoLTE applies the LTE predicate on the "key_ro" field.
func KeyRoLTE(v string) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldKeyRo, v))
}

// KeyRoContains applies the Contains predicate on the "key_ro" field.
func KeyRoContains(v string) predicate.Test {
	return predicate.Test(sql.FieldContains(FieldKeyRo, v))
}

// KeyRoHasPrefix applies the HasPrefix predicate on the "key_ro" field.
func KeyRoHasPrefix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasPrefix(FieldKeyRo, v))
}

// KeyRoHasSuffix applies the HasSuffix predicate on the "key_ro" field.
func KeyRoHasSuffix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasSuffix(FieldKeyRo, v))
}

// KeyRoEqualFold applies the EqualFold predicate on the "key_ro" field.
func KeyRoEqualFold(v string) predicate.Test {
	return predicate.Test(sql.FieldEqualFold(FieldKeyRo, v))
}

// KeyRoContainsFold applies the ContainsFold predicate on the "key_ro" field.
func KeyRoContainsFold(v string) predicate.Test {
	return predicate.Test(sql.FieldContainsFold(FieldKeyRo, v))
}

// KeyRwEQ applies the EQ predicate on the "key_rw" field.
func KeyRwEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldKeyRw, v))
}

// KeyRwNEQ applies the NEQ predicate on the "key_rw" field.
func KeyRwNEQ(v string) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldKeyRw, v))
}

// KeyRwIn applies the In predicate on the "key_rw" field.
func KeyRwIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldKeyRw, vs...))
}

// KeyRwNotIn applies the NotIn predicate on the "key_rw" field.
func KeyRwNotIn(vs ...string) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldKeyRw, vs...))
}

// KeyRwGT applies the GT predicate on the "key_rw" field.
func KeyRwGT(v string) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldKeyRw, v))
}

// KeyRwGTE applies the GTE predicate on the "key_rw" field.
func KeyRwGTE(v string) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldKeyRw, v))
}

// KeyRwLT applies the LT predicate on the "key_rw" field.
func KeyRwLT(v string) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldKeyRw, v))
}

// KeyRwLTE applies the LTE predicate on the "key_rw" field.
func KeyRwLTE(v string) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldKeyRw, v))
}

// KeyRwContains applies the Contains predicate on the "key_rw" field.
func KeyRwContains(v string) predicate.Test {
	return predicate.Test(sql.FieldContains(FieldKeyRw, v))
}

// KeyRwHasPrefix applies the HasPrefix predicate on the "key_rw" field.
func KeyRwHasPrefix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasPrefix(FieldKeyRw, v))
}

// KeyRwHasSuffix applies the HasSuffix predicate on the "key_rw" field.
func KeyRwHasSuffix(v string) predicate.Test {
	return predicate.Test(sql.FieldHasSuffix(FieldKeyRw, v))
}

// KeyRwEqualFold applies the EqualFold predicate on the "key_rw" field.
func KeyRwEqualFold(v string) predicate.Test {
	return predicate.Test(sql.FieldEqualFold(FieldKeyRw, v))
}

// KeyRwContainsFold applies the ContainsFold predicate on the "key_rw" field.
func KeyRwContainsFold(v string) predicate.Test {
	return predicate.Test(sql.FieldContainsFold(FieldKeyRw, v))
}

// CreatedEQ applies the EQ predicate on the "created" field.
func CreatedEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldCreated, v))
}

// CreatedNEQ applies the NEQ predicate on the "created" field.
func CreatedNEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldCreated, v))
}

// CreatedIn applies the In predicate on the "created" field.
func CreatedIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldCreated, vs...))
}

// CreatedNotIn applies the NotIn predicate on the "created" field.
func CreatedNotIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldCreated, vs...))
}

// CreatedGT applies the GT predicate on the "created" field.
func CreatedGT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldCreated, v))
}

// CreatedGTE applies the GTE predicate on the "created" field.
func CreatedGTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldCreated, v))
}

// CreatedLT applies the LT predicate on the "created" field.
func CreatedLT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldCreated, v))
}

// CreatedLTE applies the LTE predicate on the "created" field.
func CreatedLTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldCreated, v))
}

// LastStartedTimeEQ applies the EQ predicate on the "last_started_time" field.
func LastStartedTimeEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastStartedTime, v))
}

// LastStartedTimeNEQ applies the NEQ predicate on the "last_started_time" field.
func LastStartedTimeNEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldLastStartedTime, v))
}

// LastStartedTimeIn applies the In predicate on the "last_started_time" field.
func LastStartedTimeIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldLastStartedTime, vs...))
}

// LastStartedTimeNotIn applies the NotIn predicate on the "last_started_time" field.
func LastStartedTimeNotIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldLastStartedTime, vs...))
}

// LastStartedTimeGT applies the GT predicate on the "last_started_time" field.
func LastStartedTimeGT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldLastStartedTime, v))
}

// LastStartedTimeGTE applies the GTE predicate on the "last_started_time" field.
func LastStartedTimeGTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldLastStartedTime, v))
}

// LastStartedTimeLT applies the LT predicate on the "last_started_time" field.
func LastStartedTimeLT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldLastStartedTime, v))
}

// LastStartedTimeLTE applies the LTE predicate on the "last_started_time" field.
func LastStartedTimeLTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldLastStartedTime, v))
}

// LastStartedTimeIsNil applies the IsNil predicate on the "last_started_time" field.
func LastStartedTimeIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldLastStartedTime))
}

// LastStartedTimeNotNil applies the NotNil predicate on the "last_started_time" field.
func LastStartedTimeNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldLastStartedTime))
}

// LastResultTimeEQ applies the EQ predicate on the "last_result_time" field.
func LastResultTimeEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastResultTime, v))
}

// LastResultTimeNEQ applies the NEQ predicate on the "last_result_time" field.
func LastResultTimeNEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldLastResultTime, v))
}

// LastResultTimeIn applies the In predicate on the "last_result_time" field.
func LastResultTimeIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldLastResultTime, vs...))
}

// LastResultTimeNotIn applies the NotIn predicate on the "last_result_time" field.
func LastResultTimeNotIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldLastResultTime, vs...))
}

// LastResultTimeGT applies the GT predicate on the "last_result_time" field.
func LastResultTimeGT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldLastResultTime, v))
}

// LastResultTimeGTE applies the GTE predicate on the "last_result_time" field.
func LastResultTimeGTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldLastResultTime, v))
}

// LastResultTimeLT applies the LT predicate on the "last_result_time" field.
func LastResultTimeLT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldLastResultTime, v))
}

// LastResultTimeLTE applies the LTE predicate on the "last_result_time" field.
func LastResultTimeLTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldLastResultTime, v))
}

// LastResultTimeIsNil applies the IsNil predicate on the "last_result_time" field.
func LastResultTimeIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldLastResultTime))
}

// LastResultTimeNotNil applies the NotNil predicate on the "last_result_time" field.
func LastResultTimeNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldLastResultTime))
}

// LastResultStatusEQ applies the EQ predicate on the "last_result_status" field.
func LastResultStatusEQ(v LastResultStatus) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastResultStatus, v))
}

// LastResultStatusNEQ applies the NEQ predicate on the "last_result_status" field.
func LastResultStatusNEQ(v LastResultStatus) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldLastResultStatus, v))
}

// LastResultStatusIn applies the In predicate on the "last_result_status" field.
func LastResultStatusIn(vs ...LastResultStatus) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldLastResultStatus, vs...))
}

// LastResultStatusNotIn applies the NotIn predicate on the "last_result_status" field.
func LastResultStatusNotIn(vs ...LastResultStatus) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldLastResultStatus, vs...))
}

// LastResultStatusIsNil applies the IsNil predicate on the "last_result_status" field.
func LastResultStatusIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldLastResultStatus))
}

// LastResultStatusNotNil applies the NotNil predicate on the "last_result_status" field.
func LastResultStatusNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldLastResultStatus))
}

// LastDownloadedTimeEQ applies the EQ predicate on the "last_downloaded_time" field.
func LastDownloadedTimeEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldEQ(FieldLastDownloadedTime, v))
}

// LastDownloadedTimeNEQ applies the NEQ predicate on the "last_downloaded_time" field.
func LastDownloadedTimeNEQ(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldNEQ(FieldLastDownloadedTime, v))
}

// LastDownloadedTimeIn applies the In predicate on the "last_downloaded_time" field.
func LastDownloadedTimeIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldIn(FieldLastDownloadedTime, vs...))
}

// LastDownloadedTimeNotIn applies the NotIn predicate on the "last_downloaded_time" field.
func LastDownloadedTimeNotIn(vs ...time.Time) predicate.Test {
	return predicate.Test(sql.FieldNotIn(FieldLastDownloadedTime, vs...))
}

// LastDownloadedTimeGT applies the GT predicate on the "last_downloaded_time" field.
func LastDownloadedTimeGT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGT(FieldLastDownloadedTime, v))
}

// LastDownloadedTimeGTE applies the GTE predicate on the "last_downloaded_time" field.
func LastDownloadedTimeGTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldGTE(FieldLastDownloadedTime, v))
}

// LastDownloadedTimeLT applies the LT predicate on the "last_downloaded_time" field.
func LastDownloadedTimeLT(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLT(FieldLastDownloadedTime, v))
}

// LastDownloadedTimeLTE applies the LTE predicate on the "last_downloaded_time" field.
func LastDownloadedTimeLTE(v time.Time) predicate.Test {
	return predicate.Test(sql.FieldLTE(FieldLastDownloadedTime, v))
}

// LastDownloadedTimeIsNil applies the IsNil predicate on the "last_downloaded_time" field.
func LastDownloadedTimeIsNil() predicate.Test {
	return predicate.Test(sql.FieldIsNull(FieldLastDownloadedTime))
}

// LastDownloadedTimeNotNil applies the NotNil predicate on the "last_downloaded_time" field.
func LastDownloadedTimeNotNil() predicate.Test {
	return predicate.Test(sql.FieldNotNull(FieldLastDownloadedTime))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Test) predicate.Test {
	return predicate.Test(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Test) predicate.Test {
	return predicate.Test(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Test) predicate.Test {
	return predicate.Test(sql.NotPredicates(p))
}
