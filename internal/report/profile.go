package report

import (
	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
)

// DomainScores is the four-dimensional score set for one domain. A zero
// sub-score means "not yet measured", never "measured low": skipped
// modules default to zero and reports must not read more into it.
type DomainScores struct {
	Interest float64 `json:"interest"`
	Strength float64 `json:"strength"`
	Skill    float64 `json:"skill"`
	Comfort  float64 `json:"comfort"`
}

// Profile is the derived per-domain score table. It is rebuilt fresh from
// ModuleResults at report time and never persisted.
type Profile map[bank.Domain]DomainScores

// BuildProfile combines up to four module results into a Profile. Absent
// results contribute zeros for their dimension.
func BuildProfile(results map[bank.ModuleID]scoring.ModuleResult) Profile {
	byType := make(map[scoring.ResultType]map[bank.Domain]float64, len(results))
	for _, r := range results {
		byType[r.Type] = r.Scores
	}

	profile := make(Profile, 4)
	for _, d := range bank.AllDomains() {
		profile[d] = DomainScores{
			Interest: byType[scoring.TypeInterest][d],
			Strength: byType[scoring.TypeStrength][d],
			Skill:    byType[scoring.TypeSkill][d],
			Comfort:  byType[scoring.TypeComfort][d],
		}
	}
	return profile
}
