package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
	"github.com/ritika/selfmap/internal/store"
)

// fakeClock advances only when the test says so, making elapsed-time
// assertions deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testDeps(t *testing.T) (Deps, *store.Store, *fakeClock) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	deps := Deps{
		Results:     s.ResultRepo(),
		Progress:    s.ProgressRepo(),
		Respondents: s.RespondentRepo(),
		Events:      s.EventRepo(),
		Now:         clock.now,
	}
	return deps, s, clock
}

// longAnswer clears the 20-word minimum on the open-ended tasks.
const longAnswer = "I would start by mapping out the problem because understanding it " +
	"first makes every later step easier and keeps the whole team moving " +
	"in one clear direction."

func answerModule(t *testing.T, s *Session, in Input) {
	t.Helper()
	module := s.CurrentModule()
	for range module.Items {
		s.CurrentItem()
		if err := s.Answer(context.Background(), in); err != nil {
			t.Fatalf("answer in module %s: %v", module.ID, err)
		}
	}
}

func TestStartBeginsAtModuleA(t *testing.T) {
	deps, _, _ := testDeps(t)
	s, err := Start(context.Background(), deps, "Sam", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if s.Done() {
		t.Fatal("new attempt must not be done")
	}
	if s.CurrentModule().ID != bank.ModuleA {
		t.Errorf("module = %s, want A", s.CurrentModule().ID)
	}
	if s.ItemIndex() != 0 {
		t.Errorf("item index = %d, want 0", s.ItemIndex())
	}
	if s.AttemptID() == "" {
		t.Error("attempt ID must be set")
	}
}

func TestStartPersistsRespondentAndProgress(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "Sam", "parent@example.com")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	rec, err := deps.Respondents.Load(ctx, s.AttemptID())
	if err != nil {
		t.Fatalf("load respondent: %v", err)
	}
	if rec == nil || rec.Name != "Sam" || rec.ParentContact != "parent@example.com" {
		t.Fatalf("respondent = %+v", rec)
	}

	prog, err := deps.Progress.Load(ctx, s.AttemptID())
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if prog == nil || prog.CurrentModule != "A" {
		t.Fatalf("progress = %+v, want module A", prog)
	}
}

func TestModuleCompletionAdvancesToNext(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	answerModule(t, s, Input{OptionIndex: 0})

	if s.CurrentModule().ID != bank.ModuleB {
		t.Errorf("module = %s, want B", s.CurrentModule().ID)
	}
	if s.ItemIndex() != 0 {
		t.Errorf("item index = %d, want 0", s.ItemIndex())
	}

	results, err := deps.Results.LoadAll(ctx, s.AttemptID())
	if err != nil {
		t.Fatalf("load results: %v", err)
	}
	if _, ok := results[bank.ModuleA]; !ok {
		t.Error("module A result must be persisted on completion")
	}
}

func TestFullAttemptFlow(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "Sam", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// A forced choice, B timed choice, C open-ended, D friction.
	answerModule(t, s, Input{OptionIndex: 1})
	answerModule(t, s, Input{OptionIndex: 0})
	answerModule(t, s, Input{OptionIndex: scoring.NoSelection, Text: longAnswer})
	answerModule(t, s, Input{OptionIndex: 0})

	if !s.Done() {
		t.Fatal("attempt must be done after module D")
	}

	results, err := deps.Results.LoadAll(ctx, s.AttemptID())
	if err != nil {
		t.Fatalf("load results: %v", err)
	}
	if len(results) != 4 {
		t.Errorf("results = %d, want 4", len(results))
	}
	for id, want := range map[bank.ModuleID]scoring.ResultType{
		bank.ModuleA: scoring.TypeInterest,
		bank.ModuleB: scoring.TypeStrength,
		bank.ModuleC: scoring.TypeSkill,
		bank.ModuleD: scoring.TypeComfort,
	} {
		if results[id].Type != want {
			t.Errorf("module %s type = %q, want %q", id, results[id].Type, want)
		}
	}

	prog, err := deps.Progress.Load(ctx, s.AttemptID())
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if prog == nil || !prog.IsComplete {
		t.Fatalf("progress = %+v, want complete", prog)
	}
	if len(prog.Completed) != 4 {
		t.Errorf("completed = %v, want all four modules", prog.Completed)
	}
	if prog.CompletedAt.IsZero() {
		t.Error("completed_at must be stamped")
	}
}

func TestAnswerRequiresSelectionOnChoiceItems(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	in := Input{OptionIndex: scoring.NoSelection}
	if s.CanAdvance(in) {
		t.Error("choice item without a selection must not advance")
	}
	err = s.Answer(ctx, in)
	if !errors.Is(err, ErrIncompleteAnswer) {
		t.Errorf("err = %v, want ErrIncompleteAnswer", err)
	}
	if s.ItemIndex() != 0 {
		t.Errorf("item index = %d, want 0 after rejected answer", s.ItemIndex())
	}
}

func TestAnswerEnforcesMinimumWordCount(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	answerModule(t, s, Input{OptionIndex: 0}) // A
	answerModule(t, s, Input{OptionIndex: 0}) // B

	short := Input{OptionIndex: scoring.NoSelection, Text: "too short"}
	if s.CanAdvance(short) {
		t.Error("open-ended answer under MinWords must not advance")
	}
	err = s.Answer(ctx, short)
	if !errors.Is(err, ErrIncompleteAnswer) {
		t.Errorf("err = %v, want ErrIncompleteAnswer", err)
	}

	long := Input{OptionIndex: scoring.NoSelection, Text: longAnswer}
	if !s.CanAdvance(long) {
		t.Error("answer at or above MinWords must advance")
	}
	if err := s.Answer(ctx, long); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if s.ItemIndex() != 1 {
		t.Errorf("item index = %d, want 1", s.ItemIndex())
	}
}

func TestAnswerAfterDoneFails(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	answerModule(t, s, Input{OptionIndex: 0})
	answerModule(t, s, Input{OptionIndex: 0})
	answerModule(t, s, Input{OptionIndex: scoring.NoSelection, Text: longAnswer})
	answerModule(t, s, Input{OptionIndex: 0})

	err = s.Answer(ctx, Input{OptionIndex: 0})
	if !errors.Is(err, ErrAttemptComplete) {
		t.Errorf("err = %v, want ErrAttemptComplete", err)
	}
}

func TestTimedElapsedMeasuredFromDisplay(t *testing.T) {
	deps, st, clock := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	answerModule(t, s, Input{OptionIndex: 0}) // finish module A

	// Display the first timed item, think for 9 seconds, answer.
	s.CurrentItem()
	clock.advance(9 * time.Second)
	if err := s.Answer(ctx, Input{OptionIndex: 0}); err != nil {
		t.Fatalf("answer: %v", err)
	}

	events, err := st.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	last := events[len(events)-1]
	if last.ElapsedMs != 9000 {
		t.Errorf("elapsed_ms = %d, want 9000", last.ElapsedMs)
	}
}

func TestDisplayTimeStampedOnce(t *testing.T) {
	deps, st, clock := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	s.CurrentItem()
	clock.advance(2 * time.Second)
	s.CurrentItem() // re-display must not reset the clock
	clock.advance(3 * time.Second)
	if err := s.Answer(ctx, Input{OptionIndex: 0}); err != nil {
		t.Fatalf("answer: %v", err)
	}

	ev, err := st.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query event: %v", err)
	}
	if ev.ElapsedMs != 5000 {
		t.Errorf("elapsed_ms = %d, want 5000 (measured from first display)", ev.ElapsedMs)
	}
}

func TestResumeRestartsCurrentModuleAtFirstItem(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()
	s, err := Start(ctx, deps, "", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	answerModule(t, s, Input{OptionIndex: 0}) // finish module A
	s.CurrentItem()
	if err := s.Answer(ctx, Input{OptionIndex: 0}); err != nil { // one item into B
		t.Fatalf("answer: %v", err)
	}

	resumed, err := Resume(ctx, deps, s.AttemptID())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.CurrentModule().ID != bank.ModuleB {
		t.Errorf("module = %s, want B", resumed.CurrentModule().ID)
	}
	if resumed.ItemIndex() != 0 {
		t.Errorf("item index = %d, want 0 (in-flight responses are not persisted)", resumed.ItemIndex())
	}
}

func TestResumeUnknownProgressFallsBackToFirstModule(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()

	err := deps.Progress.Save(ctx, store.ProgressRecord{AttemptID: "attempt-x", CurrentModule: "Z"})
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	s, err := Resume(ctx, deps, "attempt-x")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if s.CurrentModule().ID != bank.ModuleA {
		t.Errorf("module = %s, want A", s.CurrentModule().ID)
	}
}

func TestResumeFinishedAttempt(t *testing.T) {
	deps, _, _ := testDeps(t)
	ctx := context.Background()

	err := deps.Progress.Save(ctx, store.ProgressRecord{
		AttemptID:     "attempt-x",
		CurrentModule: "D",
		Completed:     []string{"A", "B", "C", "D"},
		IsComplete:    true,
		CompletedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	s, err := Resume(ctx, deps, "attempt-x")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !s.Done() {
		t.Error("resumed attempt must be done")
	}
}
