// Code generated by ent, DO NOT EDIT.

package respondent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ritika/selfmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Respondent {
	return predicate.Respondent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Respondent {
	return predicate.Respondent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Respondent {
	return predicate.Respondent(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldAttemptID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldName, v))
}

// ParentContact applies equality check predicate on the "parent_contact" field. It's identical to ParentContactEQ.
func ParentContact(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldParentContact, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldCreatedAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.Respondent {
	return predicate.Respondent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.Respondent {
	return predicate.Respondent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldContainsFold(FieldAttemptID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Respondent {
	return predicate.Respondent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Respondent {
	return predicate.Respondent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldContainsFold(FieldName, v))
}

// ParentContactEQ applies the EQ predicate on the "parent_contact" field.
func ParentContactEQ(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldParentContact, v))
}

// ParentContactNEQ applies the NEQ predicate on the "parent_contact" field.
func ParentContactNEQ(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldNEQ(FieldParentContact, v))
}

// ParentContactIn applies the In predicate on the "parent_contact" field.
func ParentContactIn(vs ...string) predicate.Respondent {
	return predicate.Respondent(sql.FieldIn(FieldParentContact, vs...))
}

// ParentContactNotIn applies the NotIn predicate on the "parent_contact" field.
func ParentContactNotIn(vs ...string) predicate.Respondent {
	return predicate.Respondent(sql.FieldNotIn(FieldParentContact, vs...))
}

// ParentContactGT applies the GT predicate on the "parent_contact" field.
func ParentContactGT(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldGT(FieldParentContact, v))
}

// ParentContactGTE applies the GTE predicate on the "parent_contact" field.
func ParentContactGTE(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldGTE(FieldParentContact, v))
}

// ParentContactLT applies the LT predicate on the "parent_contact" field.
func ParentContactLT(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldLT(FieldParentContact, v))
}

// ParentContactLTE applies the LTE predicate on the "parent_contact" field.
func ParentContactLTE(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldLTE(FieldParentContact, v))
}

// ParentContactContains applies the Contains predicate on the "parent_contact" field.
func ParentContactContains(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldContains(FieldParentContact, v))
}

// ParentContactHasPrefix applies the HasPrefix predicate on the "parent_contact" field.
func ParentContactHasPrefix(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldHasPrefix(FieldParentContact, v))
}

// ParentContactHasSuffix applies the HasSuffix predicate on the "parent_contact" field.
func ParentContactHasSuffix(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldHasSuffix(FieldParentContact, v))
}

// ParentContactEqualFold applies the EqualFold predicate on the "parent_contact" field.
func ParentContactEqualFold(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldEqualFold(FieldParentContact, v))
}

// ParentContactContainsFold applies the ContainsFold predicate on the "parent_contact" field.
func ParentContactContainsFold(v string) predicate.Respondent {
	return predicate.Respondent(sql.FieldContainsFold(FieldParentContact, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Respondent {
	return predicate.Respondent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Respondent) predicate.Respondent {
	return predicate.Respondent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Respondent) predicate.Respondent {
	return predicate.Respondent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Respondent) predicate.Respondent {
	return predicate.Respondent(sql.NotPredicates(p))
}
