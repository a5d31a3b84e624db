package scoring

import (
	"strings"
	"testing"

	"github.com/ritika/selfmap/internal/bank"
)

func forcedChoiceModule(items int) bank.Module {
	m := bank.Module{ID: bank.ModuleA, Kind: bank.KindForcedChoice}
	ids := []string{"fc1", "fc2", "fc3", "fc4", "fc5"}
	for i := 0; i < items; i++ {
		m.Items = append(m.Items, bank.Item{
			ID:     ids[i],
			Prompt: "p",
			Options: []bank.Option{
				{Text: "a", Domain: bank.DomainAnalytical},
				{Text: "c", Domain: bank.DomainCreative},
				{Text: "s", Domain: bank.DomainSocial},
				{Text: "p", Domain: bank.DomainPhysical},
			},
		})
	}
	return m
}

func timedChoiceModule() bank.Module {
	mk := func(id string, d bank.Domain) bank.Item {
		return bank.Item{
			ID:     id,
			Prompt: "p",
			Options: []bank.Option{
				{Text: "wrong", Domain: d},
				{Text: "right", Domain: d, Correct: true},
			},
		}
	}
	return bank.Module{
		ID:   bank.ModuleB,
		Kind: bank.KindTimedChoice,
		Items: []bank.Item{
			mk("tc1", bank.DomainAnalytical),
			mk("tc2", bank.DomainCreative),
			mk("tc3", bank.DomainSocial),
			mk("tc4", bank.DomainPhysical),
			mk("tc5", bank.DomainAnalytical),
		},
	}
}

func frictionModule(items int) bank.Module {
	m := bank.Module{ID: bank.ModuleD, Kind: bank.KindFriction}
	ids := []string{"fr1", "fr2", "fr3", "fr4", "fr5"}
	for i := 0; i < items; i++ {
		m.Items = append(m.Items, bank.Item{
			ID:     ids[i],
			Prompt: "p",
			Options: []bank.Option{
				{Text: "easy", FrictionLevel: bank.FrictionLow, Score: 2},
				{Text: "mid", FrictionLevel: bank.FrictionMedium, Score: 1},
				{Text: "hard", FrictionLevel: bank.FrictionHigh, Score: 0},
			},
		})
	}
	return m
}

func TestScoreInterest_AllOneDomain(t *testing.T) {
	m := forcedChoiceModule(5)
	responses := make(map[string]Response)
	for _, item := range m.Items {
		responses[item.ID] = Response{ItemID: item.ID, OptionIndex: 1} // Creative
	}

	result := ScoreInterest(m, responses)
	if result.Type != TypeInterest {
		t.Errorf("type = %q, want %q", result.Type, TypeInterest)
	}
	if result.Scores[bank.DomainCreative] != 10 {
		t.Errorf("Creative interest = %v, want 10", result.Scores[bank.DomainCreative])
	}
	for _, d := range []bank.Domain{bank.DomainAnalytical, bank.DomainSocial, bank.DomainPhysical} {
		if result.Scores[d] != 0 {
			t.Errorf("%s interest = %v, want 0", d, result.Scores[d])
		}
	}
}

func TestScoreInterest_PartialAndMalformed(t *testing.T) {
	m := forcedChoiceModule(5)
	responses := map[string]Response{
		"fc1": {ItemID: "fc1", OptionIndex: 0},           // Analytical
		"fc2": {ItemID: "fc2", OptionIndex: 99},          // out of range, ignored
		"fc3": {ItemID: "fc3", OptionIndex: NoSelection}, // unanswered
	}

	result := ScoreInterest(m, responses)
	if result.Scores[bank.DomainAnalytical] != 2 {
		t.Errorf("Analytical = %v, want 2", result.Scores[bank.DomainAnalytical])
	}
	total := 0.0
	for _, v := range result.Scores {
		total += v
	}
	if total != 2 {
		t.Errorf("total = %v, want 2", total)
	}
}

func TestScoreInterest_ValuesAreEven(t *testing.T) {
	m := forcedChoiceModule(5)
	responses := map[string]Response{
		"fc1": {ItemID: "fc1", OptionIndex: 0},
		"fc2": {ItemID: "fc2", OptionIndex: 0},
		"fc3": {ItemID: "fc3", OptionIndex: 2},
	}
	result := ScoreInterest(m, responses)
	allowed := map[float64]bool{0: true, 2: true, 4: true, 6: true, 8: true, 10: true}
	for d, v := range result.Scores {
		if !allowed[v] {
			t.Errorf("%s interest = %v, not in {0,2,4,6,8,10}", d, v)
		}
	}
}

func TestScoreStrength_AllCorrectAllFast(t *testing.T) {
	m := timedChoiceModule()
	responses := make(map[string]Response)
	for _, item := range m.Items {
		responses[item.ID] = Response{ItemID: item.ID, OptionIndex: 1, ElapsedMs: 4000}
	}

	result := ScoreStrength(m, responses)
	total := 0.0
	for _, v := range result.Scores {
		total += v
	}
	// 5 correct * (2 + 1 speed bonus) = 15 across touched domains.
	if total != 15 {
		t.Errorf("total strength = %v, want 15", total)
	}
	if result.Scores[bank.DomainAnalytical] != 6 {
		t.Errorf("Analytical strength = %v, want 6 (two items)", result.Scores[bank.DomainAnalytical])
	}
}

func TestScoreStrength_SpeedBonusBoundary(t *testing.T) {
	m := timedChoiceModule()
	tests := []struct {
		name      string
		elapsedMs int
		want      float64
	}{
		{"well under", 1, 3},
		{"just under", 9999, 3},
		{"exactly at threshold", 10000, 2},
		{"over", 25000, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := map[string]Response{
				"tc1": {ItemID: "tc1", OptionIndex: 1, ElapsedMs: tt.elapsedMs},
			}
			result := ScoreStrength(m, responses)
			if result.Scores[bank.DomainAnalytical] != tt.want {
				t.Errorf("strength = %v, want %v", result.Scores[bank.DomainAnalytical], tt.want)
			}
		})
	}
}

func TestScoreStrength_IncorrectIsNotNegative(t *testing.T) {
	m := timedChoiceModule()
	responses := map[string]Response{
		"tc1": {ItemID: "tc1", OptionIndex: 0, ElapsedMs: 1000}, // wrong
	}
	result := ScoreStrength(m, responses)
	for d, v := range result.Scores {
		if v != 0 {
			t.Errorf("%s strength = %v, want 0", d, v)
		}
	}
}

func TestScoreSkill_MinWordsNoMarkers(t *testing.T) {
	m := bank.Module{
		ID:   bank.ModuleC,
		Kind: bank.KindOpenEnded,
		Items: []bank.Item{
			{ID: "t1", Prompt: "p", Domain: bank.DomainAnalytical, MinWords: 20, MaxWords: 100},
		},
	}
	text := strings.Repeat("word ", 20) // exactly MinWords, no connectives
	result := ScoreSkill(m, map[string]Response{
		"t1": {ItemID: "t1", Text: text},
	})
	// base 3 * 2 / 1 task = 6
	if result.Scores[bank.DomainAnalytical] != 6 {
		t.Errorf("skill = %v, want 6", result.Scores[bank.DomainAnalytical])
	}
}

func TestScoreSkill_LengthAndConnectives(t *testing.T) {
	m := bank.Module{
		ID:   bank.ModuleC,
		Kind: bank.KindOpenEnded,
		Items: []bank.Item{
			{ID: "t1", Prompt: "p", Domain: bank.DomainCreative, MinWords: 20, MaxWords: 100},
		},
	}
	tests := []struct {
		name string
		text string
		want float64 // scaled: taskScore * 2
	}{
		{"short, no markers", strings.Repeat("w ", 30), 6},
		{"long, no markers", strings.Repeat("w ", 80), 8},
		{"short with because", strings.Repeat("w ", 30) + "because", 8},
		{"long with because", strings.Repeat("w ", 80) + "because", 10},
		{"capitalized Because does not match", strings.Repeat("w ", 30) + "Because", 6},
		{"Therefore matches", strings.Repeat("w ", 30) + "Therefore", 8},
		{"However matches", strings.Repeat("w ", 30) + "However", 8},
		{"lowercase however does not match", strings.Repeat("w ", 30) + "however", 6},
		{"multiple markers count once", strings.Repeat("w ", 80) + "because However", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreSkill(m, map[string]Response{"t1": {ItemID: "t1", Text: tt.text}})
			if got := result.Scores[bank.DomainCreative]; got != tt.want {
				t.Errorf("skill = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreSkill_AveragesPerDomain(t *testing.T) {
	m := bank.Module{
		ID:   bank.ModuleC,
		Kind: bank.KindOpenEnded,
		Items: []bank.Item{
			{ID: "t1", Prompt: "p", Domain: bank.DomainSocial, MinWords: 10, MaxWords: 50},
			{ID: "t2", Prompt: "p", Domain: bank.DomainSocial, MinWords: 10, MaxWords: 50},
		},
	}
	responses := map[string]Response{
		"t1": {ItemID: "t1", Text: strings.Repeat("w ", 15)},               // 3
		"t2": {ItemID: "t2", Text: strings.Repeat("w ", 45) + " because"}, // 5
	}
	result := ScoreSkill(m, responses)
	// (3+5)/2 * 2 = 8
	if result.Scores[bank.DomainSocial] != 8 {
		t.Errorf("Social skill = %v, want 8", result.Scores[bank.DomainSocial])
	}
}

func TestScoreSkill_NoRoutedTasksStaysZero(t *testing.T) {
	m := bank.Module{
		ID:   bank.ModuleC,
		Kind: bank.KindOpenEnded,
		Items: []bank.Item{
			{ID: "t1", Prompt: "p", Domain: bank.DomainAnalytical, MinWords: 10, MaxWords: 50},
		},
	}
	result := ScoreSkill(m, map[string]Response{})
	for d, v := range result.Scores {
		if v != 0 {
			t.Errorf("%s skill = %v, want 0 with no answers", d, v)
		}
	}
}

func TestScoreComfort_AllTopAnswers(t *testing.T) {
	m := frictionModule(5)
	responses := make(map[string]Response)
	for _, item := range m.Items {
		responses[item.ID] = Response{ItemID: item.ID, OptionIndex: 0} // score 2
	}
	result := ScoreComfort(m, responses)
	for _, d := range bank.AllDomains() {
		if result.Scores[d] != 10 {
			t.Errorf("%s comfort = %v, want 10", d, result.Scores[d])
		}
	}
}

func TestScoreComfort_BroadcastIdentical(t *testing.T) {
	m := frictionModule(5)
	responses := map[string]Response{
		"fr1": {ItemID: "fr1", OptionIndex: 1}, // 1
		"fr2": {ItemID: "fr2", OptionIndex: 2}, // 0
		"fr3": {ItemID: "fr3", OptionIndex: 0}, // 2
	}
	result := ScoreComfort(m, responses)
	// 3 / 6 * 10 = 5, broadcast everywhere.
	first := result.Scores[bank.DomainAnalytical]
	if first != 5 {
		t.Errorf("comfort = %v, want 5", first)
	}
	for d, v := range result.Scores {
		if v != first {
			t.Errorf("%s comfort = %v, want %v (broadcast)", d, v, first)
		}
	}
}

func TestScoreComfort_ZeroAnswersIsZeroNotError(t *testing.T) {
	m := frictionModule(5)
	result := ScoreComfort(m, map[string]Response{})
	for d, v := range result.Scores {
		if v != 0 {
			t.Errorf("%s comfort = %v, want 0", d, v)
		}
	}
}

func TestScore_DispatchesByKind(t *testing.T) {
	tests := []struct {
		module bank.Module
		want   ResultType
	}{
		{forcedChoiceModule(1), TypeInterest},
		{timedChoiceModule(), TypeStrength},
		{frictionModule(1), TypeComfort},
	}
	for _, tt := range tests {
		result := Score(tt.module, nil)
		if result.Type != tt.want {
			t.Errorf("Score(%q) type = %q, want %q", tt.module.Kind, result.Type, tt.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two  words", 2},
		{"tabs\tand\nnewlines count", 4},
	}
	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
