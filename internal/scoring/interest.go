package scoring

import "github.com/ritika/selfmap/internal/bank"

// interestPointsPerItem is awarded to the selected option's domain.
const interestPointsPerItem = 2.0

// ScoreInterest scores a forced-choice module: +2 to the domain tagged on
// each selected option. Unanswered items contribute nothing.
func ScoreInterest(m bank.Module, responses map[string]Response) ModuleResult {
	scores := zeroScores()
	for _, item := range m.Items {
		opt, _, ok := selectedOption(item, responses)
		if !ok {
			continue
		}
		scores[opt.Domain] += interestPointsPerItem
	}
	return ModuleResult{Type: TypeInterest, Scores: scores}
}
