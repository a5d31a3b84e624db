// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ritika/selfmap/ent/answerevent"
	"github.com/ritika/selfmap/ent/llmrequestevent"
	"github.com/ritika/selfmap/ent/moduleevent"
	"github.com/ritika/selfmap/ent/moduleresult"
	"github.com/ritika/selfmap/ent/progress"
	"github.com/ritika/selfmap/ent/respondent"
	"github.com/ritika/selfmap/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescModuleID is the schema descriptor for module_id field.
	answereventDescModuleID := answereventFields[1].Descriptor()
	// answerevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	answerevent.ModuleIDValidator = answereventDescModuleID.Validators[0].(func(string) error)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[2].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
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
	moduleeventMixin := schema.ModuleEvent{}.Mixin()
	moduleeventMixinFields0 := moduleeventMixin[0].Fields()
	_ = moduleeventMixinFields0
	moduleeventFields := schema.ModuleEvent{}.Fields()
	_ = moduleeventFields
	// moduleeventDescTimestamp is the schema descriptor for timestamp field.
	moduleeventDescTimestamp := moduleeventMixinFields0[1].Descriptor()
	// moduleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	moduleevent.DefaultTimestamp = moduleeventDescTimestamp.Default.(func() time.Time)
	// moduleeventDescAttemptID is the schema descriptor for attempt_id field.
	moduleeventDescAttemptID := moduleeventFields[0].Descriptor()
	// moduleevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	moduleevent.AttemptIDValidator = moduleeventDescAttemptID.Validators[0].(func(string) error)
	// moduleeventDescModuleID is the schema descriptor for module_id field.
	moduleeventDescModuleID := moduleeventFields[1].Descriptor()
	// moduleevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	moduleevent.ModuleIDValidator = moduleeventDescModuleID.Validators[0].(func(string) error)
	// moduleeventDescAction is the schema descriptor for action field.
	moduleeventDescAction := moduleeventFields[2].Descriptor()
	// moduleevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	moduleevent.ActionValidator = moduleeventDescAction.Validators[0].(func(string) error)
	moduleresultFields := schema.ModuleResult{}.Fields()
	_ = moduleresultFields
	// moduleresultDescAttemptID is the schema descriptor for attempt_id field.
	moduleresultDescAttemptID := moduleresultFields[0].Descriptor()
	// moduleresult.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	moduleresult.AttemptIDValidator = moduleresultDescAttemptID.Validators[0].(func(string) error)
	// moduleresultDescModuleID is the schema descriptor for module_id field.
	moduleresultDescModuleID := moduleresultFields[1].Descriptor()
	// moduleresult.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	moduleresult.ModuleIDValidator = moduleresultDescModuleID.Validators[0].(func(string) error)
	// moduleresultDescResultType is the schema descriptor for result_type field.
	moduleresultDescResultType := moduleresultFields[2].Descriptor()
	// moduleresult.ResultTypeValidator is a validator for the "result_type" field. It is called by the builders before save.
	moduleresult.ResultTypeValidator = moduleresultDescResultType.Validators[0].(func(string) error)
	// moduleresultDescCompletedAt is the schema descriptor for completed_at field.
	moduleresultDescCompletedAt := moduleresultFields[4].Descriptor()
	// moduleresult.DefaultCompletedAt holds the default value on creation for the completed_at field.
	moduleresult.DefaultCompletedAt = moduleresultDescCompletedAt.Default.(func() time.Time)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescAttemptID is the schema descriptor for attempt_id field.
	progressDescAttemptID := progressFields[0].Descriptor()
	// progress.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	progress.AttemptIDValidator = progressDescAttemptID.Validators[0].(func(string) error)
	// progressDescCurrentModule is the schema descriptor for current_module field.
	progressDescCurrentModule := progressFields[1].Descriptor()
	// progress.CurrentModuleValidator is a validator for the "current_module" field. It is called by the builders before save.
	progress.CurrentModuleValidator = progressDescCurrentModule.Validators[0].(func(string) error)
	// progressDescIsComplete is the schema descriptor for is_complete field.
	progressDescIsComplete := progressFields[3].Descriptor()
	// progress.DefaultIsComplete holds the default value on creation for the is_complete field.
	progress.DefaultIsComplete = progressDescIsComplete.Default.(bool)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[5].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	respondentFields := schema.Respondent{}.Fields()
	_ = respondentFields
	// respondentDescAttemptID is the schema descriptor for attempt_id field.
	respondentDescAttemptID := respondentFields[0].Descriptor()
	// respondent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	respondent.AttemptIDValidator = respondentDescAttemptID.Validators[0].(func(string) error)
	// respondentDescName is the schema descriptor for name field.
	respondentDescName := respondentFields[1].Descriptor()
	// respondent.DefaultName holds the default value on creation for the name field.
	respondent.DefaultName = respondentDescName.Default.(string)
	// respondentDescParentContact is the schema descriptor for parent_contact field.
	respondentDescParentContact := respondentFields[2].Descriptor()
	// respondent.DefaultParentContact holds the default value on creation for the parent_contact field.
	respondent.DefaultParentContact = respondentDescParentContact.Default.(string)
	// respondentDescCreatedAt is the schema descriptor for created_at field.
	respondentDescCreatedAt := respondentFields[3].Descriptor()
	// respondent.DefaultCreatedAt holds the default value on creation for the created_at field.
	respondent.DefaultCreatedAt = respondentDescCreatedAt.Default.(func() time.Time)
}
