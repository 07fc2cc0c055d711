// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ekremtas/lingopyr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// LearningLanguage applies equality check predicate on the "learning_language" field. It's identical to LearningLanguageEQ.
func LearningLanguage(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLearningLanguage, v))
}

// SystemLanguage applies equality check predicate on the "system_language" field. It's identical to SystemLanguageEQ.
func SystemLanguage(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSystemLanguage, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPurpose, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldXp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUsername, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLevel, v))
}

// LearningLanguageEQ applies the EQ predicate on the "learning_language" field.
func LearningLanguageEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLearningLanguage, v))
}

// LearningLanguageNEQ applies the NEQ predicate on the "learning_language" field.
func LearningLanguageNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLearningLanguage, v))
}

// LearningLanguageIn applies the In predicate on the "learning_language" field.
func LearningLanguageIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLearningLanguage, vs...))
}

// LearningLanguageNotIn applies the NotIn predicate on the "learning_language" field.
func LearningLanguageNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLearningLanguage, vs...))
}

// LearningLanguageGT applies the GT predicate on the "learning_language" field.
func LearningLanguageGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLearningLanguage, v))
}

// LearningLanguageGTE applies the GTE predicate on the "learning_language" field.
func LearningLanguageGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLearningLanguage, v))
}

// LearningLanguageLT applies the LT predicate on the "learning_language" field.
func LearningLanguageLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLearningLanguage, v))
}

// LearningLanguageLTE applies the LTE predicate on the "learning_language" field.
func LearningLanguageLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLearningLanguage, v))
}

// LearningLanguageContains applies the Contains predicate on the "learning_language" field.
func LearningLanguageContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLearningLanguage, v))
}

// LearningLanguageHasPrefix applies the HasPrefix predicate on the "learning_language" field.
func LearningLanguageHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLearningLanguage, v))
}

// LearningLanguageHasSuffix applies the HasSuffix predicate on the "learning_language" field.
func LearningLanguageHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLearningLanguage, v))
}

// LearningLanguageEqualFold applies the EqualFold predicate on the "learning_language" field.
func LearningLanguageEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLearningLanguage, v))
}

// LearningLanguageContainsFold applies the ContainsFold predicate on the "learning_language" field.
func LearningLanguageContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLearningLanguage, v))
}

// SystemLanguageEQ applies the EQ predicate on the "system_language" field.
func SystemLanguageEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSystemLanguage, v))
}

// SystemLanguageNEQ applies the NEQ predicate on the "system_language" field.
func SystemLanguageNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSystemLanguage, v))
}

// SystemLanguageIn applies the In predicate on the "system_language" field.
func SystemLanguageIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldSystemLanguage, vs...))
}

// SystemLanguageNotIn applies the NotIn predicate on the "system_language" field.
func SystemLanguageNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSystemLanguage, vs...))
}

// SystemLanguageGT applies the GT predicate on the "system_language" field.
func SystemLanguageGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldSystemLanguage, v))
}

// SystemLanguageGTE applies the GTE predicate on the "system_language" field.
func SystemLanguageGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSystemLanguage, v))
}

// SystemLanguageLT applies the LT predicate on the "system_language" field.
func SystemLanguageLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldSystemLanguage, v))
}

// SystemLanguageLTE applies the LTE predicate on the "system_language" field.
func SystemLanguageLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSystemLanguage, v))
}

// SystemLanguageContains applies the Contains predicate on the "system_language" field.
func SystemLanguageContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldSystemLanguage, v))
}

// SystemLanguageHasPrefix applies the HasPrefix predicate on the "system_language" field.
func SystemLanguageHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldSystemLanguage, v))
}

// SystemLanguageHasSuffix applies the HasSuffix predicate on the "system_language" field.
func SystemLanguageHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldSystemLanguage, v))
}

// SystemLanguageEqualFold applies the EqualFold predicate on the "system_language" field.
func SystemLanguageEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldSystemLanguage, v))
}

// SystemLanguageContainsFold applies the ContainsFold predicate on the "system_language" field.
func SystemLanguageContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldSystemLanguage, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPurpose, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldXp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
