// Code generated by ent, DO NOT EDIT.

package moduleresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ritika/selfmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldAttemptID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldModuleID, v))
}

// ResultType applies equality check predicate on the "result_type" field. It's identical to ResultTypeEQ.
func ResultType(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldResultType, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldCompletedAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldContainsFold(FieldAttemptID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldContainsFold(FieldModuleID, v))
}

// ResultTypeEQ applies the EQ predicate on the "result_type" field.
func ResultTypeEQ(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldResultType, v))
}

// ResultTypeNEQ applies the NEQ predicate on the "result_type" field.
func ResultTypeNEQ(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNEQ(FieldResultType, v))
}

// ResultTypeIn applies the In predicate on the "result_type" field.
func ResultTypeIn(vs ...string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldIn(FieldResultType, vs...))
}

// ResultTypeNotIn applies the NotIn predicate on the "result_type" field.
func ResultTypeNotIn(vs ...string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNotIn(FieldResultType, vs...))
}

// ResultTypeGT applies the GT predicate on the "result_type" field.
func ResultTypeGT(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGT(FieldResultType, v))
}

// ResultTypeGTE applies the GTE predicate on the "result_type" field.
func ResultTypeGTE(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGTE(FieldResultType, v))
}

// ResultTypeLT applies the LT predicate on the "result_type" field.
func ResultTypeLT(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLT(FieldResultType, v))
}

// ResultTypeLTE applies the LTE predicate on the "result_type" field.
func ResultTypeLTE(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLTE(FieldResultType, v))
}

// ResultTypeContains applies the Contains predicate on the "result_type" field.
func ResultTypeContains(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldContains(FieldResultType, v))
}

// ResultTypeHasPrefix applies the HasPrefix predicate on the "result_type" field.
func ResultTypeHasPrefix(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldHasPrefix(FieldResultType, v))
}

// ResultTypeHasSuffix applies the HasSuffix predicate on the "result_type" field.
func ResultTypeHasSuffix(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldHasSuffix(FieldResultType, v))
}

// ResultTypeEqualFold applies the EqualFold predicate on the "result_type" field.
func ResultTypeEqualFold(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEqualFold(FieldResultType, v))
}

// ResultTypeContainsFold applies the ContainsFold predicate on the "result_type" field.
func ResultTypeContainsFold(v string) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldContainsFold(FieldResultType, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ModuleResult {
	return predicate.ModuleResult(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModuleResult) predicate.ModuleResult {
	return predicate.ModuleResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModuleResult) predicate.ModuleResult {
	return predicate.ModuleResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModuleResult) predicate.ModuleResult {
	return predicate.ModuleResult(sql.NotPredicates(p))
}
