package scoring

import "github.com/ritika/selfmap/internal/bank"

// NoSelection marks a choice response with no option selected.
const NoSelection = -1

// Response is a respondent's answer to a single item. OptionIndex is set
// for choice items (forced, timed, friction); ElapsedMs is recorded for
// timed-choice items and measures from first display, not submission;
// Text carries the raw free-text answer for open-ended tasks.
type Response struct {
	ItemID      string
	OptionIndex int
	ElapsedMs   int
	Text        string
}

// ResultType names the trait dimension a module measures.
type ResultType string

const (
	TypeInterest ResultType = "interest"
	TypeStrength ResultType = "strength"
	TypeSkill    ResultType = "skill"
	TypeComfort  ResultType = "comfort"
)

// ResultTypeFor maps a module kind to the trait dimension it scores.
func ResultTypeFor(kind bank.Kind) ResultType {
	switch kind {
	case bank.KindForcedChoice:
		return TypeInterest
	case bank.KindTimedChoice:
		return TypeStrength
	case bank.KindOpenEnded:
		return TypeSkill
	case bank.KindFriction:
		return TypeComfort
	}
	return ""
}

// ModuleResult is the scored output of one completed module. Immutable
// once written to the store.
type ModuleResult struct {
	Type   ResultType              `json:"type"`
	Scores map[bank.Domain]float64 `json:"scores"`
}

// zeroScores returns a score vector with every domain present at 0.
// Downstream aggregation treats 0 as "not yet measured".
func zeroScores() map[bank.Domain]float64 {
	scores := make(map[bank.Domain]float64, 4)
	for _, d := range bank.AllDomains() {
		scores[d] = 0
	}
	return scores
}

// selectedOption resolves a response's chosen option, or (Option{}, false)
// for unanswered or out-of-range selections. Malformed selections are
// treated as unanswered rather than failing the whole module.
func selectedOption(item bank.Item, responses map[string]Response) (bank.Option, Response, bool) {
	resp, ok := responses[item.ID]
	if !ok {
		return bank.Option{}, Response{}, false
	}
	if resp.OptionIndex < 0 || resp.OptionIndex >= len(item.Options) {
		return bank.Option{}, Response{}, false
	}
	return item.Options[resp.OptionIndex], resp, true
}

// Score runs the scoring rule for the module's kind. The module set is
// closed at four kinds; an unknown kind is a programming error.
func Score(m bank.Module, responses map[string]Response) ModuleResult {
	switch m.Kind {
	case bank.KindForcedChoice:
		return ScoreInterest(m, responses)
	case bank.KindTimedChoice:
		return ScoreStrength(m, responses)
	case bank.KindOpenEnded:
		return ScoreSkill(m, responses)
	case bank.KindFriction:
		return ScoreComfort(m, responses)
	}
	panic("scoring: unknown module kind " + string(m.Kind))
}
