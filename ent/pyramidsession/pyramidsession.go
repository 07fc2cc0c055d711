// Code generated by ent, DO NOT EDIT.

package pyramidsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pyramidsession type in the database.
	Label = "pyramid_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLearningLanguage holds the string denoting the learning_language field in the database.
	FieldLearningLanguage = "learning_language"
	// FieldSystemLanguage holds the string denoting the system_language field in the database.
	FieldSystemLanguage = "system_language"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldTotalSteps holds the string denoting the total_steps field in the database.
	FieldTotalSteps = "total_steps"
	// FieldStepKinds holds the string denoting the step_kinds field in the database.
	FieldStepKinds = "step_kinds"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldLastStepIndex holds the string denoting the last_step_index field in the database.
	FieldLastStepIndex = "last_step_index"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pyramidsession in the database.
	Table = "pyramid_sessions"
)

// Columns holds all SQL columns for pyramidsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLevel,
	FieldLearningLanguage,
	FieldSystemLanguage,
	FieldPurpose,
	FieldTotalSteps,
	FieldStepKinds,
	FieldSteps,
	FieldLastStepIndex,
	FieldCompleted,
	FieldEventID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// LearningLanguageValidator is a validator for the "learning_language" field. It is called by the builders before save.
	LearningLanguageValidator func(string) error
	// SystemLanguageValidator is a validator for the "system_language" field. It is called by the builders before save.
	SystemLanguageValidator func(string) error
	// DefaultPurpose holds the default value on creation for the "purpose" field.
	DefaultPurpose string
	// TotalStepsValidator is a validator for the "total_steps" field. It is called by the builders before save.
	TotalStepsValidator func(int) error
	// DefaultLastStepIndex holds the default value on creation for the "last_step_index" field.
	DefaultLastStepIndex int
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultEventID holds the default value on creation for the "event_id" field.
	DefaultEventID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the PyramidSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLearningLanguage orders the results by the learning_language field.
func ByLearningLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningLanguage, opts...).ToFunc()
}

// BySystemLanguage orders the results by the system_language field.
func BySystemLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemLanguage, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByTotalSteps orders the results by the total_steps field.
func ByTotalSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSteps, opts...).ToFunc()
}

// ByLastStepIndex orders the results by the last_step_index field.
func ByLastStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStepIndex, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
