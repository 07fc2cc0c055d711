// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ekremtas/lingopyr/ent/activityevent"
	"github.com/ekremtas/lingopyr/ent/activitylog"
	"github.com/ekremtas/lingopyr/ent/llmrequestevent"
	"github.com/ekremtas/lingopyr/ent/pyramidsession"
	"github.com/ekremtas/lingopyr/ent/schema"
	"github.com/ekremtas/lingopyr/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[1].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[2].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescActivityRef is the schema descriptor for activity_ref field.
	activityeventDescActivityRef := activityeventFields[3].Descriptor()
	// activityevent.DefaultActivityRef holds the default value on creation for the activity_ref field.
	activityevent.DefaultActivityRef = activityeventDescActivityRef.Default.(string)
	// activityeventDescDurationSeconds is the schema descriptor for duration_seconds field.
	activityeventDescDurationSeconds := activityeventFields[6].Descriptor()
	// activityevent.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	activityevent.DefaultDurationSeconds = activityeventDescDurationSeconds.Default.(int)
	// activityeventDescCompleted is the schema descriptor for completed field.
	activityeventDescCompleted := activityeventFields[7].Descriptor()
	// activityevent.DefaultCompleted holds the default value on creation for the completed field.
	activityevent.DefaultCompleted = activityeventDescCompleted.Default.(bool)
	// activityeventDescXpEarned is the schema descriptor for xp_earned field.
	activityeventDescXpEarned := activityeventFields[8].Descriptor()
	// activityevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	activityevent.DefaultXpEarned = activityeventDescXpEarned.Default.(int)
	// activityeventDescID is the schema descriptor for id field.
	activityeventDescID := activityeventFields[0].Descriptor()
	// activityevent.DefaultID holds the default value on creation for the id field.
	activityevent.DefaultID = activityeventDescID.Default.(func() string)
	activitylogMixin := schema.ActivityLog{}.Mixin()
	activitylogMixinFields0 := activitylogMixin[0].Fields()
	_ = activitylogMixinFields0
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescTimestamp is the schema descriptor for timestamp field.
	activitylogDescTimestamp := activitylogMixinFields0[1].Descriptor()
	// activitylog.DefaultTimestamp holds the default value on creation for the timestamp field.
	activitylog.DefaultTimestamp = activitylogDescTimestamp.Default.(func() time.Time)
	// activitylogDescUserID is the schema descriptor for user_id field.
	activitylogDescUserID := activitylogFields[0].Descriptor()
	// activitylog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activitylog.UserIDValidator = activitylogDescUserID.Validators[0].(func(string) error)
	// activitylogDescKind is the schema descriptor for kind field.
	activitylogDescKind := activitylogFields[1].Descriptor()
	// activitylog.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activitylog.KindValidator = activitylogDescKind.Validators[0].(func(string) error)
	// activitylogDescActivityID is the schema descriptor for activity_id field.
	activitylogDescActivityID := activitylogFields[2].Descriptor()
	// activitylog.DefaultActivityID holds the default value on creation for the activity_id field.
	activitylog.DefaultActivityID = activitylogDescActivityID.Default.(string)
	// activitylogDescXpEarned is the schema descriptor for xp_earned field.
	activitylogDescXpEarned := activitylogFields[3].Descriptor()
	// activitylog.DefaultXpEarned holds the default value on creation for the xp_earned field.
	activitylog.DefaultXpEarned = activitylogDescXpEarned.Default.(int)
	// activitylogDescDurationSeconds is the schema descriptor for duration_seconds field.
	activitylogDescDurationSeconds := activitylogFields[4].Descriptor()
	// activitylog.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	activitylog.DefaultDurationSeconds = activitylogDescDurationSeconds.Default.(int)
	// activitylogDescCompleted is the schema descriptor for completed field.
	activitylogDescCompleted := activitylogFields[5].Descriptor()
	// activitylog.DefaultCompleted holds the default value on creation for the completed field.
	activitylog.DefaultCompleted = activitylogDescCompleted.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	pyramidsessionFields := schema.PyramidSession{}.Fields()
	_ = pyramidsessionFields
	// pyramidsessionDescUserID is the schema descriptor for user_id field.
	pyramidsessionDescUserID := pyramidsessionFields[1].Descriptor()
	// pyramidsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pyramidsession.UserIDValidator = pyramidsessionDescUserID.Validators[0].(func(string) error)
	// pyramidsessionDescLevel is the schema descriptor for level field.
	pyramidsessionDescLevel := pyramidsessionFields[2].Descriptor()
	// pyramidsession.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	pyramidsession.LevelValidator = pyramidsessionDescLevel.Validators[0].(func(string) error)
	// pyramidsessionDescLearningLanguage is the schema descriptor for learning_language field.
	pyramidsessionDescLearningLanguage := pyramidsessionFields[3].Descriptor()
	// pyramidsession.LearningLanguageValidator is a validator for the "learning_language" field. It is called by the builders before save.
	pyramidsession.LearningLanguageValidator = pyramidsessionDescLearningLanguage.Validators[0].(func(string) error)
	// pyramidsessionDescSystemLanguage is the schema descriptor for system_language field.
	pyramidsessionDescSystemLanguage := pyramidsessionFields[4].Descriptor()
	// pyramidsession.SystemLanguageValidator is a validator for the "system_language" field. It is called by the builders before save.
	pyramidsession.SystemLanguageValidator = pyramidsessionDescSystemLanguage.Validators[0].(func(string) error)
	// pyramidsessionDescPurpose is the schema descriptor for purpose field.
	pyramidsessionDescPurpose := pyramidsessionFields[5].Descriptor()
	// pyramidsession.DefaultPurpose holds the default value on creation for the purpose field.
	pyramidsession.DefaultPurpose = pyramidsessionDescPurpose.Default.(string)
	// pyramidsessionDescTotalSteps is the schema descriptor for total_steps field.
	pyramidsessionDescTotalSteps := pyramidsessionFields[6].Descriptor()
	// pyramidsession.TotalStepsValidator is a validator for the "total_steps" field. It is called by the builders before save.
	pyramidsession.TotalStepsValidator = pyramidsessionDescTotalSteps.Validators[0].(func(int) error)
	// pyramidsessionDescLastStepIndex is the schema descriptor for last_step_index field.
	pyramidsessionDescLastStepIndex := pyramidsessionFields[9].Descriptor()
	// pyramidsession.DefaultLastStepIndex holds the default value on creation for the last_step_index field.
	pyramidsession.DefaultLastStepIndex = pyramidsessionDescLastStepIndex.Default.(int)
	// pyramidsessionDescCompleted is the schema descriptor for completed field.
	pyramidsessionDescCompleted := pyramidsessionFields[10].Descriptor()
	// pyramidsession.DefaultCompleted holds the default value on creation for the completed field.
	pyramidsession.DefaultCompleted = pyramidsessionDescCompleted.Default.(bool)
	// pyramidsessionDescEventID is the schema descriptor for event_id field.
	pyramidsessionDescEventID := pyramidsessionFields[11].Descriptor()
	// pyramidsession.DefaultEventID holds the default value on creation for the event_id field.
	pyramidsession.DefaultEventID = pyramidsessionDescEventID.Default.(string)
	// pyramidsessionDescCreatedAt is the schema descriptor for created_at field.
	pyramidsessionDescCreatedAt := pyramidsessionFields[12].Descriptor()
	// pyramidsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	pyramidsession.DefaultCreatedAt = pyramidsessionDescCreatedAt.Default.(func() time.Time)
	// pyramidsessionDescUpdatedAt is the schema descriptor for updated_at field.
	pyramidsessionDescUpdatedAt := pyramidsessionFields[13].Descriptor()
	// pyramidsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pyramidsession.DefaultUpdatedAt = pyramidsessionDescUpdatedAt.Default.(func() time.Time)
	// pyramidsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pyramidsession.UpdateDefaultUpdatedAt = pyramidsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pyramidsessionDescID is the schema descriptor for id field.
	pyramidsessionDescID := pyramidsessionFields[0].Descriptor()
	// pyramidsession.DefaultID holds the default value on creation for the id field.
	pyramidsession.DefaultID = pyramidsessionDescID.Default.(func() string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescLevel is the schema descriptor for level field.
	userDescLevel := userFields[2].Descriptor()
	// user.DefaultLevel holds the default value on creation for the level field.
	user.DefaultLevel = userDescLevel.Default.(string)
	// userDescLearningLanguage is the schema descriptor for learning_language field.
	userDescLearningLanguage := userFields[3].Descriptor()
	// user.DefaultLearningLanguage holds the default value on creation for the learning_language field.
	user.DefaultLearningLanguage = userDescLearningLanguage.Default.(string)
	// userDescSystemLanguage is the schema descriptor for system_language field.
	userDescSystemLanguage := userFields[4].Descriptor()
	// user.DefaultSystemLanguage holds the default value on creation for the system_language field.
	user.DefaultSystemLanguage = userDescSystemLanguage.Default.(string)
	// userDescPurpose is the schema descriptor for purpose field.
	userDescPurpose := userFields[5].Descriptor()
	// user.DefaultPurpose holds the default value on creation for the purpose field.
	user.DefaultPurpose = userDescPurpose.Default.(string)
	// userDescXp is the schema descriptor for xp field.
	userDescXp := userFields[6].Descriptor()
	// user.DefaultXp holds the default value on creation for the xp field.
	user.DefaultXp = userDescXp.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() string)
}
