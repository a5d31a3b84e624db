package report

import (
	"sort"

	"github.com/ritika/selfmap/internal/bank"
)

// RankedDomain is a domain with its ranking total.
type RankedDomain struct {
	Domain bank.Domain `json:"domain"`
	Total  float64     `json:"total"`
}

// RankDomains orders domains by interest + strength + skill, descending.
// Comfort is deliberately excluded from the total. Ties keep the domain
// enumeration order {A, C, S, P}: the sort is stable and there is no
// secondary numeric tiebreak.
func RankDomains(p Profile) []RankedDomain {
	ranked := make([]RankedDomain, 0, 4)
	for _, d := range bank.AllDomains() {
		s := p[d]
		ranked = append(ranked, RankedDomain{
			Domain: d,
			Total:  s.Interest + s.Strength + s.Skill,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}
