package report

import (
	"time"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
)

// Respondent is arbitrary metadata captured outside the engine and echoed
// verbatim into the report. The engine neither validates nor transforms it.
type Respondent struct {
	Name          string `json:"name"`
	ParentContact string `json:"parent_contact,omitempty"`
}

// Report is the full derived output backing both the teen-facing and
// parent-facing views. The engine never tailors content by audience: both
// views are presentation transforms of this one object. Regenerated on
// demand, never persisted as canonical state.
type Report struct {
	Respondent      Respondent     `json:"respondent"`
	Profile         Profile        `json:"profile"`
	SortedDomains   []RankedDomain `json:"sorted_domains"`
	PrimaryDomain   bank.Domain    `json:"primary_domain"`
	SecondaryDomain bank.Domain    `json:"secondary_domain"`
	Clusters        []ClusterMatch `json:"clusters"`
	BurnoutRisks    []BurnoutRisk  `json:"burnout_risks"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// Generate assembles a report from whatever module results exist. Fewer
// than four completed modules is not an error: missing dimensions stay at
// zero and the report is always structurally valid. The host decides
// whether to gate on completeness.
func Generate(results map[bank.ModuleID]scoring.ModuleResult, respondent Respondent) Report {
	profile := BuildProfile(results)
	ranked := RankDomains(profile)

	return Report{
		Respondent:      respondent,
		Profile:         profile,
		SortedDomains:   ranked,
		PrimaryDomain:   ranked[0].Domain,
		SecondaryDomain: ranked[1].Domain,
		Clusters:        EligibleClusters(profile),
		BurnoutRisks:    BurnoutRisks(profile),
		GeneratedAt:     time.Now().UTC(),
	}
}
