// Package runner drives a single assessment attempt through the fixed
// module sequence A -> B -> C -> D, persisting responses and scored
// results as it goes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
	"github.com/ritika/selfmap/internal/store"
)

// ErrAttemptComplete is returned when an answer arrives after the final
// module has been scored.
var ErrAttemptComplete = errors.New("assessment attempt already complete")

// ErrIncompleteAnswer is returned when an answer fails the current
// item's completion rule.
var ErrIncompleteAnswer = errors.New("answer does not satisfy the item's completion rule")

// Deps bundles the repositories a session writes through. Now is
// injectable for tests and defaults to time.Now.
type Deps struct {
	Results     store.ResultRepo
	Progress    store.ProgressRepo
	Respondents store.RespondentRepo
	Events      store.EventRepo
	Now         func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Input is the host's answer to the current item. OptionIndex selects a
// choice option; Text carries the free-text answer for open-ended tasks.
type Input struct {
	OptionIndex int
	Text        string
}

// Session is an in-flight assessment attempt. Responses for the current
// module live only in memory: quitting mid-module loses them and resume
// restarts that module from its first item.
type Session struct {
	deps      Deps
	attemptID string

	module    bank.Module
	itemIndex int
	responses map[string]scoring.Response
	shownAt   time.Time
	completed []string
	done      bool
}

// Start creates a new attempt: a fresh attempt ID, the respondent
// record, and progress pointing at the first module.
func Start(ctx context.Context, deps Deps, name, parentContact string) (*Session, error) {
	attemptID := uuid.NewString()

	err := deps.Respondents.Save(ctx, store.RespondentRecord{
		AttemptID:     attemptID,
		Name:          name,
		ParentContact: parentContact,
	})
	if err != nil {
		return nil, fmt.Errorf("save respondent: %w", err)
	}

	s := &Session{deps: deps, attemptID: attemptID}
	if err := s.enterModule(ctx, bank.ModuleOrder()[0]); err != nil {
		return nil, err
	}
	return s, nil
}

// Resume reopens an existing attempt at its persisted module. A missing
// or unrecognized progress value falls back to the first module rather
// than failing: the event log is append-only and a restart only costs
// re-answering.
func Resume(ctx context.Context, deps Deps, attemptID string) (*Session, error) {
	rec, err := deps.Progress.Load(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	s := &Session{deps: deps, attemptID: attemptID}

	if rec != nil {
		s.completed = rec.Completed
		if rec.IsComplete {
			s.done = true
			return s, nil
		}
	}

	target := bank.ModuleOrder()[0]
	if rec != nil {
		if _, lookupErr := bank.GetModule(bank.ModuleID(rec.CurrentModule)); lookupErr == nil {
			target = bank.ModuleID(rec.CurrentModule)
		}
	}
	if err := s.enterModule(ctx, target); err != nil {
		return nil, err
	}
	return s, nil
}

// AttemptID returns the attempt's unique identifier.
func (s *Session) AttemptID() string {
	return s.attemptID
}

// Done reports whether all four modules have been scored.
func (s *Session) Done() bool {
	return s.done
}

// CurrentModule returns the module being administered. Only valid while
// Done is false.
func (s *Session) CurrentModule() bank.Module {
	return s.module
}

// ItemIndex returns the zero-based position within the current module.
func (s *Session) ItemIndex() int {
	return s.itemIndex
}

// CurrentItem returns the item awaiting an answer and stamps its display
// time on first call. Elapsed time for timed items measures from this
// stamp, not from when the answer is submitted.
func (s *Session) CurrentItem() bank.Item {
	if s.shownAt.IsZero() {
		s.shownAt = s.deps.now()
	}
	return s.module.Items[s.itemIndex]
}

// CanAdvance reports whether in satisfies the current item's completion
// rule: choice items need a selected option, open-ended items need at
// least MinWords words. MaxWords is a displayed hint only and never
// blocks.
func (s *Session) CanAdvance(in Input) bool {
	if s.done {
		return false
	}
	if s.module.Kind == bank.KindOpenEnded {
		return scoring.WordCount(in.Text) >= s.module.Items[s.itemIndex].MinWords
	}
	return in.OptionIndex != scoring.NoSelection
}

// Answer records the host's input for the current item and advances.
// Completing the last item scores the module, persists the result, and
// moves progress to the next module (or marks the attempt done).
func (s *Session) Answer(ctx context.Context, in Input) error {
	if s.done {
		return ErrAttemptComplete
	}
	if !s.CanAdvance(in) {
		return fmt.Errorf("module %s item %d: %w", s.module.ID, s.itemIndex, ErrIncompleteAnswer)
	}

	item := s.CurrentItem()
	elapsed := s.deps.now().Sub(s.shownAt).Milliseconds()

	resp := scoring.Response{
		ItemID:      item.ID,
		OptionIndex: in.OptionIndex,
		ElapsedMs:   int(elapsed),
		Text:        in.Text,
	}
	s.responses[item.ID] = resp

	wordCount := 0
	if s.module.Kind == bank.KindOpenEnded {
		wordCount = scoring.WordCount(in.Text)
	}
	err := s.deps.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
		AttemptID:   s.attemptID,
		ModuleID:    string(s.module.ID),
		ItemID:      item.ID,
		OptionIndex: in.OptionIndex,
		ElapsedMs:   elapsed,
		WordCount:   wordCount,
		Text:        in.Text,
	})
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}

	s.itemIndex++
	s.shownAt = time.Time{}

	if s.itemIndex >= len(s.module.Items) {
		return s.completeModule(ctx)
	}
	return nil
}

// enterModule positions the session at the start of a module and
// persists the resume point.
func (s *Session) enterModule(ctx context.Context, id bank.ModuleID) error {
	m, err := bank.GetModule(id)
	if err != nil {
		return fmt.Errorf("enter module: %w", err)
	}
	s.module = m
	s.itemIndex = 0
	s.responses = make(map[string]scoring.Response, len(m.Items))
	s.shownAt = time.Time{}

	err = s.deps.Progress.Save(ctx, store.ProgressRecord{
		AttemptID:     s.attemptID,
		CurrentModule: string(id),
		Completed:     s.completed,
	})
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	err = s.deps.Events.AppendModuleEvent(ctx, store.ModuleEventData{
		AttemptID: s.attemptID,
		ModuleID:  string(id),
		Action:    "started",
	})
	if err != nil {
		return fmt.Errorf("append module event: %w", err)
	}
	return nil
}

// completeModule scores the finished module, persists its result, and
// advances the attempt.
func (s *Session) completeModule(ctx context.Context) error {
	result := scoring.Score(s.module, s.responses)

	if err := s.deps.Results.Save(ctx, s.attemptID, s.module.ID, result); err != nil {
		return fmt.Errorf("save module result: %w", err)
	}
	err := s.deps.Events.AppendModuleEvent(ctx, store.ModuleEventData{
		AttemptID:     s.attemptID,
		ModuleID:      string(s.module.ID),
		Action:        "completed",
		ItemsAnswered: len(s.responses),
	})
	if err != nil {
		return fmt.Errorf("append module event: %w", err)
	}

	s.markCompleted(s.module.ID)

	next, ok := bank.NextModule(s.module.ID)
	if !ok {
		s.done = true
		err := s.deps.Progress.Save(ctx, store.ProgressRecord{
			AttemptID:     s.attemptID,
			CurrentModule: string(s.module.ID),
			Completed:     s.completed,
			IsComplete:    true,
			CompletedAt:   s.deps.now(),
		})
		if err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		return nil
	}
	return s.enterModule(ctx, next)
}

// markCompleted appends the module to the completed list exactly once.
func (s *Session) markCompleted(id bank.ModuleID) {
	for _, c := range s.completed {
		if c == string(id) {
			return
		}
	}
	s.completed = append(s.completed, string(id))
}
