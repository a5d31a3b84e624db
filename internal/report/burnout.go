package report

import "github.com/ritika/selfmap/internal/bank"

const (
	// burnoutStrengthMin: ability at or above this with low comfort flags risk.
	burnoutStrengthMin = 6.0

	// burnoutComfortMax: comfort at or below this qualifies.
	burnoutComfortMax = 3.0
)

// BurnoutRisk flags a domain where measured ability is high but measured
// comfort is low.
type BurnoutRisk struct {
	Domain   bank.Domain `json:"domain"`
	Strength float64     `json:"strength"`
	Comfort  float64     `json:"comfort"`
}

// BurnoutRisks returns risk records for every domain with strength >= 6
// and comfort <= 3, in domain enumeration order rather than by score
// magnitude.
func BurnoutRisks(p Profile) []BurnoutRisk {
	var risks []BurnoutRisk
	for _, d := range bank.AllDomains() {
		s := p[d]
		if s.Strength >= burnoutStrengthMin && s.Comfort <= burnoutComfortMax {
			risks = append(risks, BurnoutRisk{
				Domain:   d,
				Strength: s.Strength,
				Comfort:  s.Comfort,
			})
		}
	}
	return risks
}
