// Code generated by ent, DO NOT EDIT.

package pyramidsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ekremtas/lingopyr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldUserID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldLevel, v))
}

// LearningLanguage applies equality check predicate on the "learning_language" field. It's identical to LearningLanguageEQ.
func LearningLanguage(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldLearningLanguage, v))
}

// SystemLanguage applies equality check predicate on the "system_language" field. It's identical to SystemLanguageEQ.
func SystemLanguage(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldSystemLanguage, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldPurpose, v))
}

// TotalSteps applies equality check predicate on the "total_steps" field. It's identical to TotalStepsEQ.
func TotalSteps(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldTotalSteps, v))
}

// LastStepIndex applies equality check predicate on the "last_step_index" field. It's identical to LastStepIndexEQ.
func LastStepIndex(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldLastStepIndex, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldCompleted, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldUserID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldLevel, v))
}

// LearningLanguageEQ applies the EQ predicate on the "learning_language" field.
func LearningLanguageEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldLearningLanguage, v))
}

// LearningLanguageNEQ applies the NEQ predicate on the "learning_language" field.
func LearningLanguageNEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldLearningLanguage, v))
}

// LearningLanguageIn applies the In predicate on the "learning_language" field.
func LearningLanguageIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldLearningLanguage, vs...))
}

// LearningLanguageNotIn applies the NotIn predicate on the "learning_language" field.
func LearningLanguageNotIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldLearningLanguage, vs...))
}

// LearningLanguageGT applies the GT predicate on the "learning_language" field.
func LearningLanguageGT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldLearningLanguage, v))
}

// LearningLanguageGTE applies the GTE predicate on the "learning_language" field.
func LearningLanguageGTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldLearningLanguage, v))
}

// LearningLanguageLT applies the LT predicate on the "learning_language" field.
func LearningLanguageLT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldLearningLanguage, v))
}

// LearningLanguageLTE applies the LTE predicate on the "learning_language" field.
func LearningLanguageLTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldLearningLanguage, v))
}

// LearningLanguageContains applies the Contains predicate on the "learning_language" field.
func LearningLanguageContains(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContains(FieldLearningLanguage, v))
}

// LearningLanguageHasPrefix applies the HasPrefix predicate on the "learning_language" field.
func LearningLanguageHasPrefix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasPrefix(FieldLearningLanguage, v))
}

// LearningLanguageHasSuffix applies the HasSuffix predicate on the "learning_language" field.
func LearningLanguageHasSuffix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasSuffix(FieldLearningLanguage, v))
}

// LearningLanguageEqualFold applies the EqualFold predicate on the "learning_language" field.
func LearningLanguageEqualFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldLearningLanguage, v))
}

// LearningLanguageContainsFold applies the ContainsFold predicate on the "learning_language" field.
func LearningLanguageContainsFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldLearningLanguage, v))
}

// SystemLanguageEQ applies the EQ predicate on the "system_language" field.
func SystemLanguageEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldSystemLanguage, v))
}

// SystemLanguageNEQ applies the NEQ predicate on the "system_language" field.
func SystemLanguageNEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldSystemLanguage, v))
}

// SystemLanguageIn applies the In predicate on the "system_language" field.
func SystemLanguageIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldSystemLanguage, vs...))
}

// SystemLanguageNotIn applies the NotIn predicate on the "system_language" field.
func SystemLanguageNotIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldSystemLanguage, vs...))
}

// SystemLanguageGT applies the GT predicate on the "system_language" field.
func SystemLanguageGT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldSystemLanguage, v))
}

// SystemLanguageGTE applies the GTE predicate on the "system_language" field.
func SystemLanguageGTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldSystemLanguage, v))
}

// SystemLanguageLT applies the LT predicate on the "system_language" field.
func SystemLanguageLT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldSystemLanguage, v))
}

// SystemLanguageLTE applies the LTE predicate on the "system_language" field.
func SystemLanguageLTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldSystemLanguage, v))
}

// SystemLanguageContains applies the Contains predicate on the "system_language" field.
func SystemLanguageContains(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContains(FieldSystemLanguage, v))
}

// SystemLanguageHasPrefix applies the HasPrefix predicate on the "system_language" field.
func SystemLanguageHasPrefix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasPrefix(FieldSystemLanguage, v))
}

// SystemLanguageHasSuffix applies the HasSuffix predicate on the "system_language" field.
func SystemLanguageHasSuffix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasSuffix(FieldSystemLanguage, v))
}

// SystemLanguageEqualFold applies the EqualFold predicate on the "system_language" field.
func SystemLanguageEqualFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldSystemLanguage, v))
}

// SystemLanguageContainsFold applies the ContainsFold predicate on the "system_language" field.
func SystemLanguageContainsFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldSystemLanguage, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldPurpose, v))
}

// TotalStepsEQ applies the EQ predicate on the "total_steps" field.
func TotalStepsEQ(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldTotalSteps, v))
}

// TotalStepsNEQ applies the NEQ predicate on the "total_steps" field.
func TotalStepsNEQ(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldTotalSteps, v))
}

// TotalStepsIn applies the In predicate on the "total_steps" field.
func TotalStepsIn(vs ...int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldTotalSteps, vs...))
}

// TotalStepsNotIn applies the NotIn predicate on the "total_steps" field.
func TotalStepsNotIn(vs ...int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldTotalSteps, vs...))
}

// TotalStepsGT applies the GT predicate on the "total_steps" field.
func TotalStepsGT(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldTotalSteps, v))
}

// TotalStepsGTE applies the GTE predicate on the "total_steps" field.
func TotalStepsGTE(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldTotalSteps, v))
}

// TotalStepsLT applies the LT predicate on the "total_steps" field.
func TotalStepsLT(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldTotalSteps, v))
}

// TotalStepsLTE applies the LTE predicate on the "total_steps" field.
func TotalStepsLTE(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldTotalSteps, v))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotNull(FieldSteps))
}

// LastStepIndexEQ applies the EQ predicate on the "last_step_index" field.
func LastStepIndexEQ(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldLastStepIndex, v))
}

// LastStepIndexNEQ applies the NEQ predicate on the "last_step_index" field.
func LastStepIndexNEQ(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldLastStepIndex, v))
}

// LastStepIndexIn applies the In predicate on the "last_step_index" field.
func LastStepIndexIn(vs ...int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldLastStepIndex, vs...))
}

// LastStepIndexNotIn applies the NotIn predicate on the "last_step_index" field.
func LastStepIndexNotIn(vs ...int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldLastStepIndex, vs...))
}

// LastStepIndexGT applies the GT predicate on the "last_step_index" field.
func LastStepIndexGT(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldLastStepIndex, v))
}

// LastStepIndexGTE applies the GTE predicate on the "last_step_index" field.
func LastStepIndexGTE(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldLastStepIndex, v))
}

// LastStepIndexLT applies the LT predicate on the "last_step_index" field.
func LastStepIndexLT(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldLastStepIndex, v))
}

// LastStepIndexLTE applies the LTE predicate on the "last_step_index" field.
func LastStepIndexLTE(v int) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldLastStepIndex, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldCompleted, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldContainsFold(FieldEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PyramidSession {
	return predicate.PyramidSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PyramidSession) predicate.PyramidSession {
	return predicate.PyramidSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PyramidSession) predicate.PyramidSession {
	return predicate.PyramidSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PyramidSession) predicate.PyramidSession {
	return predicate.PyramidSession(sql.NotPredicates(p))
}
