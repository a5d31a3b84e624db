package report

import "github.com/ritika/selfmap/internal/bank"

const (
	// Eligibility thresholds on a cluster's primary domain.
	clusterInterestMin = 6.0
	clusterStrengthMin = 5.0
	clusterComfortMin  = 5.0

	// Skill tier cut points on the primary domain's skill score.
	tierAdvancedMin = 8.0
	tierDevelopMin  = 5.0

	// maxClusters caps the selected set.
	maxClusters = 2
)

// ClusterMatch is an eligible career cluster annotated with the
// respondent's skill tier and that tier's opportunity list.
type ClusterMatch struct {
	Cluster       bank.CareerCluster `json:"cluster"`
	Tier          bank.SkillTier     `json:"tier"`
	Opportunities []string           `json:"opportunities"`
}

// EligibleClusters selects at most two clusters whose primary domain
// meets interest >= 6, strength >= 5, and comfort >= 5. Selection is
// first-eligible-wins over catalog order, not score-ranked.
func EligibleClusters(p Profile) []ClusterMatch {
	var matches []ClusterMatch
	for _, c := range bank.AllClusters() {
		s := p[c.PrimaryDomain()]
		if s.Interest < clusterInterestMin || s.Strength < clusterStrengthMin || s.Comfort < clusterComfortMin {
			continue
		}
		tier := skillTier(s.Skill)
		matches = append(matches, ClusterMatch{
			Cluster:       c,
			Tier:          tier,
			Opportunities: c.OpportunitiesFor(tier),
		})
		if len(matches) == maxClusters {
			break
		}
	}
	return matches
}

func skillTier(skill float64) bank.SkillTier {
	switch {
	case skill >= tierAdvancedMin:
		return bank.TierAdvanced
	case skill >= tierDevelopMin:
		return bank.TierDevelop
	default:
		return bank.TierExplore
	}
}
