package scoring

import (
	"strings"

	"github.com/ritika/selfmap/internal/bank"
)

const (
	skillBaseScore   = 3.0
	skillLengthScore = 4.0
	skillMaxScore    = 5.0

	// skillLengthRatio: responses at or above this share of MaxWords get
	// the length credit.
	skillLengthRatio = 0.8
)

// connectiveMarkers is a crude proxy for reasoning density. The match is
// case-sensitive substring, exactly as the instrument was calibrated;
// "Because" at the start of a sentence deliberately does not count.
var connectiveMarkers = []string{"because", "Therefore", "However"}

// ScoreSkill scores an open-ended module. Each task earns a base 3,
// raised to 4 when the word count reaches 80% of MaxWords, plus 1 (cap 5)
// when any connective marker appears. Task scores are averaged per domain
// and doubled onto the shared 0-10 scale. Domains with no routed tasks
// stay at 0.
func ScoreSkill(m bank.Module, responses map[string]Response) ModuleResult {
	sums := make(map[bank.Domain]float64)
	counts := make(map[bank.Domain]int)

	for _, item := range m.Items {
		resp, ok := responses[item.ID]
		if !ok {
			continue
		}
		sums[item.Domain] += taskScore(resp.Text, item.MaxWords)
		counts[item.Domain]++
	}

	scores := zeroScores()
	for d, n := range counts {
		if n == 0 {
			continue
		}
		scores[d] = sums[d] / float64(n) * 2
	}
	return ModuleResult{Type: TypeSkill, Scores: scores}
}

func taskScore(text string, maxWords int) float64 {
	score := skillBaseScore
	if float64(WordCount(text)) >= skillLengthRatio*float64(maxWords) {
		score = skillLengthScore
	}
	for _, marker := range connectiveMarkers {
		if strings.Contains(text, marker) {
			score++
			break
		}
	}
	if score > skillMaxScore {
		score = skillMaxScore
	}
	return score
}

// WordCount counts whitespace-delimited words. Shared with the runner's
// advancement gate so the two can never disagree.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
