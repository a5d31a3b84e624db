package store

import (
	"context"
	"time"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressRecord is the persisted position of an attempt in the module
// sequence. CurrentModule is a raw string because old or hand-edited
// databases may hold values the current bank no longer recognizes;
// callers decide how to treat those.
type ProgressRecord struct {
	AttemptID     string
	CurrentModule string
	Completed     []string
	IsComplete    bool
	CompletedAt   time.Time // zero until IsComplete
	UpdatedAt     time.Time
}

// RespondentRecord is the metadata captured when an attempt starts.
type RespondentRecord struct {
	AttemptID     string
	Name          string
	ParentContact string
	CreatedAt     time.Time
}

// AnswerEventData captures a single item response for the event log.
type AnswerEventData struct {
	AttemptID   string
	ModuleID    string
	ItemID      string
	OptionIndex int
	ElapsedMs   int64
	WordCount   int
	Text        string
}

// ModuleEventData captures a module lifecycle transition.
type ModuleEventData struct {
	AttemptID     string
	ModuleID      string
	Action        string // "started" or "completed"
	ItemsAnswered int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ResultRepo manages scored module results, one per (attempt, module).
type ResultRepo interface {
	// Save stores a module result, overwriting any prior result for the
	// same attempt and module.
	Save(ctx context.Context, attemptID string, moduleID bank.ModuleID, result scoring.ModuleResult) error

	// LoadAll returns every stored result for an attempt, keyed by module.
	LoadAll(ctx context.Context, attemptID string) (map[bank.ModuleID]scoring.ModuleResult, error)
}

// ProgressRepo manages the resume position of attempts.
type ProgressRepo interface {
	// Load returns the progress record for an attempt, or nil if none exists.
	Load(ctx context.Context, attemptID string) (*ProgressRecord, error)

	// Save upserts the progress record for an attempt.
	Save(ctx context.Context, rec ProgressRecord) error
}

// RespondentRepo manages respondent metadata per attempt.
type RespondentRepo interface {
	// Save stores the respondent record for a new attempt.
	Save(ctx context.Context, rec RespondentRecord) error

	// Load returns the record for an attempt, or nil if none exists.
	Load(ctx context.Context, attemptID string) (*RespondentRecord, error)

	// Latest returns the most recently started attempt, or nil if the
	// database holds no attempts.
	Latest(ctx context.Context) (*RespondentRecord, error)
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAnswerEvent records an item response.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendModuleEvent records a module lifecycle transition.
	AppendModuleEvent(ctx context.Context, data ModuleEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// CountAnswers returns the number of answer events for an attempt.
	CountAnswers(ctx context.Context, attemptID string) (int, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
