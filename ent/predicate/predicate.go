// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ModuleEvent is the predicate function for moduleevent builders.
type ModuleEvent func(*sql.Selector)

// ModuleResult is the predicate function for moduleresult builders.
type ModuleResult func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// Respondent is the predicate function for respondent builders.
type Respondent func(*sql.Selector)
