package scoring

import "github.com/ritika/selfmap/internal/bank"

const (
	// strengthPointsPerCorrect is awarded for a correct selection.
	strengthPointsPerCorrect = 2.0

	// speedBonus is the extra point for answering under the threshold.
	speedBonus = 1.0

	// speedBonusThresholdMs: answers strictly faster than this earn the bonus.
	speedBonusThresholdMs = 10_000
)

// ScoreStrength scores a timed-choice module: +2 to the selected option's
// domain when the selection is correct, plus a 1-point speed bonus when
// the recorded elapsed time is under 10 seconds. Incorrect selections
// contribute nothing; there is no penalty.
func ScoreStrength(m bank.Module, responses map[string]Response) ModuleResult {
	scores := zeroScores()
	for _, item := range m.Items {
		opt, resp, ok := selectedOption(item, responses)
		if !ok || !opt.Correct {
			continue
		}
		scores[opt.Domain] += strengthPointsPerCorrect
		if resp.ElapsedMs < speedBonusThresholdMs {
			scores[opt.Domain] += speedBonus
		}
	}
	return ModuleResult{Type: TypeStrength, Scores: scores}
}
