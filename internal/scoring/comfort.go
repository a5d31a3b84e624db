package scoring

import "github.com/ritika/selfmap/internal/bank"

// frictionMaxPerItem is the best attainable option score on a friction item.
const frictionMaxPerItem = 2.0

// ScoreComfort scores a friction module: the chosen options' scores are
// summed against a 2-per-answered-item maximum and scaled to 0-10. The
// single scalar is broadcast identically into all four domains; the
// instrument has no per-domain friction differentiation, and downstream
// burnout and eligibility math depends on the broadcast.
func ScoreComfort(m bank.Module, responses map[string]Response) ModuleResult {
	var totalScore, maxScore float64
	for _, item := range m.Items {
		opt, _, ok := selectedOption(item, responses)
		if !ok {
			continue
		}
		totalScore += float64(opt.Score)
		maxScore += frictionMaxPerItem
	}

	comfort := 0.0
	if maxScore > 0 {
		comfort = totalScore / maxScore * 10
	}

	scores := zeroScores()
	for d := range scores {
		scores[d] = comfort
	}
	return ModuleResult{Type: TypeComfort, Scores: scores}
}
