package store

import (
	"context"
	"testing"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultSaveAndLoadAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	results, err := repo.LoadAll(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("load all (empty): %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}

	res := scoring.ModuleResult{
		Type: scoring.TypeInterest,
		Scores: map[bank.Domain]float64{
			bank.DomainAnalytical: 6,
			bank.DomainCreative:   4,
			bank.DomainSocial:     0,
			bank.DomainPhysical:   0,
		},
	}
	if err := repo.Save(ctx, "attempt-1", bank.ModuleA, res); err != nil {
		t.Fatalf("save: %v", err)
	}

	results, err = repo.LoadAll(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	got, ok := results[bank.ModuleA]
	if !ok {
		t.Fatal("expected result for module A")
	}
	if got.Type != scoring.TypeInterest {
		t.Errorf("type = %q, want interest", got.Type)
	}
	if got.Scores[bank.DomainAnalytical] != 6 {
		t.Errorf("analytical = %v, want 6", got.Scores[bank.DomainAnalytical])
	}
}

func TestResultSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	first := scoring.ModuleResult{
		Type:   scoring.TypeStrength,
		Scores: map[bank.Domain]float64{bank.DomainAnalytical: 3},
	}
	second := scoring.ModuleResult{
		Type:   scoring.TypeStrength,
		Scores: map[bank.Domain]float64{bank.DomainAnalytical: 9},
	}

	if err := repo.Save(ctx, "attempt-1", bank.ModuleB, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, "attempt-1", bank.ModuleB, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	count, err := s.Client().ModuleResult.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1 (save must overwrite, not append)", count)
	}

	results, err := repo.LoadAll(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if got := results[bank.ModuleB].Scores[bank.DomainAnalytical]; got != 9 {
		t.Errorf("analytical = %v, want 9 (latest write wins)", got)
	}
}

func TestResultIsolationBetweenAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	res := scoring.ModuleResult{
		Type:   scoring.TypeComfort,
		Scores: map[bank.Domain]float64{bank.DomainSocial: 7},
	}
	if err := repo.Save(ctx, "attempt-1", bank.ModuleD, res); err != nil {
		t.Fatalf("save: %v", err)
	}

	other, err := repo.LoadAll(ctx, "attempt-2")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("attempt-2 results = %d, want 0", len(other))
	}
}

func TestProgressLoadReturnsNilWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	rec, err := repo.Load(context.Background(), "attempt-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil progress when none exists")
	}
}

func TestProgressSaveAndUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Save(ctx, ProgressRecord{AttemptID: "attempt-1", CurrentModule: "A"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	err = repo.Save(ctx, ProgressRecord{
		AttemptID:     "attempt-1",
		CurrentModule: "B",
		Completed:     []string{"A"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, err := repo.Load(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected progress record")
	}
	if rec.CurrentModule != "B" {
		t.Errorf("current module = %q, want B", rec.CurrentModule)
	}
	if len(rec.Completed) != 1 || rec.Completed[0] != "A" {
		t.Errorf("completed = %v, want [A]", rec.Completed)
	}
	if rec.IsComplete {
		t.Error("is_complete must default to false")
	}
	if !rec.CompletedAt.IsZero() {
		t.Errorf("completed_at = %v, want zero", rec.CompletedAt)
	}

	count, err := s.Client().Progress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1 (save must upsert)", count)
	}
}

func TestRespondentSaveLoadLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.RespondentRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil respondent when none exist")
	}

	err = repo.Save(ctx, RespondentRecord{
		AttemptID:     "attempt-1",
		Name:          "Sam",
		ParentContact: "parent@example.com",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err := repo.Load(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil || rec.Name != "Sam" {
		t.Fatalf("load = %+v, want Sam", rec)
	}
	if rec.ParentContact != "parent@example.com" {
		t.Errorf("parent contact = %q", rec.ParentContact)
	}

	latest, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.AttemptID != "attempt-1" {
		t.Fatalf("latest = %+v, want attempt-1", latest)
	}
}

func TestAnswerEventAppendAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID:   "attempt-1",
			ModuleID:    "A",
			ItemID:      "a1",
			OptionIndex: i,
			ElapsedMs:   1500,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := repo.CountAnswers(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	n, err = repo.CountAnswers(ctx, "attempt-2")
	if err != nil {
		t.Fatalf("count other: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestModuleEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendModuleEvent(ctx, ModuleEventData{
		AttemptID:     "attempt-1",
		ModuleID:      "A",
		Action:        "completed",
		ItemsAnswered: 5,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().ModuleEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestEventsShareGlobalSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{AttemptID: "a", ModuleID: "A", ItemID: "a1"}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendModuleEvent(ctx, ModuleEventData{AttemptID: "a", ModuleID: "A", Action: "completed"}); err != nil {
		t.Fatalf("append module: %v", err)
	}

	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}
	me, err := s.Client().ModuleEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query module event: %v", err)
	}
	if me.Sequence <= ae.Sequence {
		t.Errorf("module seq %d <= answer seq %d, want strictly increasing across types", me.Sequence, ae.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"module_results", "progresses", "respondents", "answer_events", "module_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
