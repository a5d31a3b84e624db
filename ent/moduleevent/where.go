// Code generated by ent, DO NOT EDIT.

package moduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ritika/selfmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldAttemptID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldAction, v))
}

// ItemsAnswered applies equality check predicate on the "items_answered" field. It's identical to ItemsAnsweredEQ.
func ItemsAnswered(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldItemsAnswered, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldContainsFold(FieldAction, v))
}

// ItemsAnsweredEQ applies the EQ predicate on the "items_answered" field.
func ItemsAnsweredEQ(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldEQ(FieldItemsAnswered, v))
}

// ItemsAnsweredNEQ applies the NEQ predicate on the "items_answered" field.
func ItemsAnsweredNEQ(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNEQ(FieldItemsAnswered, v))
}

// ItemsAnsweredIn applies the In predicate on the "items_answered" field.
func ItemsAnsweredIn(vs ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldIn(FieldItemsAnswered, vs...))
}

// ItemsAnsweredNotIn applies the NotIn predicate on the "items_answered" field.
func ItemsAnsweredNotIn(vs ...int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldNotIn(FieldItemsAnswered, vs...))
}

// ItemsAnsweredGT applies the GT predicate on the "items_answered" field.
func ItemsAnsweredGT(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGT(FieldItemsAnswered, v))
}

// ItemsAnsweredGTE applies the GTE predicate on the "items_answered" field.
func ItemsAnsweredGTE(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldGTE(FieldItemsAnswered, v))
}

// ItemsAnsweredLT applies the LT predicate on the "items_answered" field.
func ItemsAnsweredLT(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLT(FieldItemsAnswered, v))
}

// ItemsAnsweredLTE applies the LTE predicate on the "items_answered" field.
func ItemsAnsweredLTE(v int) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.FieldLTE(FieldItemsAnswered, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModuleEvent) predicate.ModuleEvent {
	return predicate.ModuleEvent(sql.NotPredicates(p))
}
