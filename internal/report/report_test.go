package report

import (
	"testing"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
)

func scoresFor(a, c, s, p float64) map[bank.Domain]float64 {
	return map[bank.Domain]float64{
		bank.DomainAnalytical: a,
		bank.DomainCreative:   c,
		bank.DomainSocial:     s,
		bank.DomainPhysical:   p,
	}
}

func TestBuildProfile_AllFourResults(t *testing.T) {
	results := map[bank.ModuleID]scoring.ModuleResult{
		bank.ModuleA: {Type: scoring.TypeInterest, Scores: scoresFor(8, 2, 0, 0)},
		bank.ModuleB: {Type: scoring.TypeStrength, Scores: scoresFor(9, 0, 3, 0)},
		bank.ModuleC: {Type: scoring.TypeSkill, Scores: scoresFor(6, 8, 0, 0)},
		bank.ModuleD: {Type: scoring.TypeComfort, Scores: scoresFor(5, 5, 5, 5)},
	}
	p := BuildProfile(results)

	a := p[bank.DomainAnalytical]
	if a.Interest != 8 || a.Strength != 9 || a.Skill != 6 || a.Comfort != 5 {
		t.Errorf("Analytical = %+v, want {8 9 6 5}", a)
	}
	ph := p[bank.DomainPhysical]
	if ph.Interest != 0 || ph.Strength != 0 || ph.Skill != 0 || ph.Comfort != 5 {
		t.Errorf("Physical = %+v, want {0 0 0 5}", ph)
	}
}

func TestBuildProfile_MissingModulesDefaultZero(t *testing.T) {
	results := map[bank.ModuleID]scoring.ModuleResult{
		bank.ModuleA: {Type: scoring.TypeInterest, Scores: scoresFor(10, 0, 0, 0)},
	}
	p := BuildProfile(results)
	a := p[bank.DomainAnalytical]
	if a.Interest != 10 {
		t.Errorf("interest = %v, want 10", a.Interest)
	}
	if a.Strength != 0 || a.Skill != 0 || a.Comfort != 0 {
		t.Errorf("unmeasured dimensions = %+v, want zeros", a)
	}
}

func TestBuildProfile_EmptyResults(t *testing.T) {
	p := BuildProfile(nil)
	for _, d := range bank.AllDomains() {
		if p[d] != (DomainScores{}) {
			t.Errorf("%s = %+v, want all-zero", d, p[d])
		}
	}
}

func TestRankDomains_DescendingWithStableTies(t *testing.T) {
	p := Profile{
		bank.DomainAnalytical: {Interest: 2, Strength: 2, Skill: 2}, // 6
		bank.DomainCreative:   {Interest: 4, Strength: 4, Skill: 4}, // 12
		bank.DomainSocial:     {Interest: 2, Strength: 2, Skill: 2}, // 6, ties with A
		bank.DomainPhysical:   {Interest: 0, Strength: 0, Skill: 0}, // 0
	}
	ranked := RankDomains(p)
	want := []bank.Domain{bank.DomainCreative, bank.DomainAnalytical, bank.DomainSocial, bank.DomainPhysical}
	for i, d := range want {
		if ranked[i].Domain != d {
			t.Errorf("rank %d = %q, want %q", i, ranked[i].Domain, d)
		}
	}
}

func TestRankDomains_ComfortExcludedFromTotal(t *testing.T) {
	p := Profile{
		bank.DomainAnalytical: {Interest: 2, Comfort: 10},
		bank.DomainCreative:   {Interest: 4, Comfort: 0},
		bank.DomainSocial:     {},
		bank.DomainPhysical:   {},
	}
	ranked := RankDomains(p)
	if ranked[0].Domain != bank.DomainCreative {
		t.Errorf("rank 0 = %q, want Creative (comfort must not count)", ranked[0].Domain)
	}
	if ranked[0].Total != 4 {
		t.Errorf("top total = %v, want 4", ranked[0].Total)
	}
}

func TestRankDomains_AllZeroKeepsEnumerationOrder(t *testing.T) {
	ranked := RankDomains(BuildProfile(nil))
	want := bank.AllDomains()
	for i := range want {
		if ranked[i].Domain != want[i] {
			t.Errorf("rank %d = %q, want %q", i, ranked[i].Domain, want[i])
		}
	}
}

func TestBurnoutRisks_SingleQualifier(t *testing.T) {
	p := Profile{
		bank.DomainAnalytical: {Strength: 7, Comfort: 2},
		bank.DomainCreative:   {Strength: 5, Comfort: 2}, // strength too low
		bank.DomainSocial:     {Strength: 9, Comfort: 4}, // comfort too high
		bank.DomainPhysical:   {},
	}
	risks := BurnoutRisks(p)
	if len(risks) != 1 {
		t.Fatalf("risks = %d, want 1", len(risks))
	}
	r := risks[0]
	if r.Domain != bank.DomainAnalytical || r.Strength != 7 || r.Comfort != 2 {
		t.Errorf("risk = %+v, want {A 7 2}", r)
	}
}

func TestBurnoutRisks_Boundaries(t *testing.T) {
	p := Profile{
		bank.DomainAnalytical: {Strength: 6, Comfort: 3}, // both at boundary, qualifies
		bank.DomainCreative:   {Strength: 5.9, Comfort: 3},
		bank.DomainSocial:     {Strength: 6, Comfort: 3.1},
		bank.DomainPhysical:   {},
	}
	risks := BurnoutRisks(p)
	if len(risks) != 1 || risks[0].Domain != bank.DomainAnalytical {
		t.Errorf("risks = %+v, want only Analytical", risks)
	}
}

func TestBurnoutRisks_EmissionFollowsEnumerationOrder(t *testing.T) {
	p := Profile{
		bank.DomainAnalytical: {Strength: 6, Comfort: 1},
		bank.DomainCreative:   {},
		bank.DomainSocial:     {Strength: 10, Comfort: 0},
		bank.DomainPhysical:   {Strength: 8, Comfort: 2},
	}
	risks := BurnoutRisks(p)
	want := []bank.Domain{bank.DomainAnalytical, bank.DomainSocial, bank.DomainPhysical}
	if len(risks) != len(want) {
		t.Fatalf("risks = %d, want %d", len(risks), len(want))
	}
	for i, d := range want {
		if risks[i].Domain != d {
			t.Errorf("risks[%d] = %q, want %q (enumeration order, not magnitude)", i, risks[i].Domain, d)
		}
	}
}

func eligibleProfile(d bank.Domain, skill float64) Profile {
	p := Profile{}
	for _, dom := range bank.AllDomains() {
		p[dom] = DomainScores{}
	}
	p[d] = DomainScores{Interest: 6, Strength: 5, Skill: skill, Comfort: 5}
	return p
}

func TestEligibleClusters_ThresholdsOnPrimaryDomain(t *testing.T) {
	p := eligibleProfile(bank.DomainCreative, 0)
	matches := EligibleClusters(p)
	if len(matches) == 0 {
		t.Fatal("expected at least one eligible cluster")
	}
	for _, m := range matches {
		if m.Cluster.PrimaryDomain() != bank.DomainCreative {
			t.Errorf("cluster %q primary = %q, want Creative", m.Cluster.ID, m.Cluster.PrimaryDomain())
		}
	}
}

func TestEligibleClusters_CapAtTwoInCatalogOrder(t *testing.T) {
	// Qualify every domain so every cluster is eligible.
	p := Profile{}
	for _, d := range bank.AllDomains() {
		p[d] = DomainScores{Interest: 10, Strength: 10, Skill: 10, Comfort: 10}
	}
	matches := EligibleClusters(p)
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
	catalog := bank.AllClusters()
	if matches[0].Cluster.ID != catalog[0].ID || matches[1].Cluster.ID != catalog[1].ID {
		t.Errorf("selected %q, %q; want first two catalog entries %q, %q",
			matches[0].Cluster.ID, matches[1].Cluster.ID, catalog[0].ID, catalog[1].ID)
	}
}

func TestEligibleClusters_NoneEligible(t *testing.T) {
	matches := EligibleClusters(BuildProfile(nil))
	if len(matches) != 0 {
		t.Errorf("matches = %d, want 0", len(matches))
	}
}

func TestSkillTier(t *testing.T) {
	tests := []struct {
		skill float64
		want  bank.SkillTier
	}{
		{0, bank.TierExplore},
		{4.9, bank.TierExplore},
		{5, bank.TierDevelop},
		{7.9, bank.TierDevelop},
		{8, bank.TierAdvanced},
		{10, bank.TierAdvanced},
	}
	for _, tt := range tests {
		if got := skillTier(tt.skill); got != tt.want {
			t.Errorf("skillTier(%v) = %q, want %q", tt.skill, got, tt.want)
		}
	}
}

func TestEligibleClusters_TierAttachesOpportunities(t *testing.T) {
	p := eligibleProfile(bank.DomainAnalytical, 8)
	matches := EligibleClusters(p)
	if len(matches) == 0 {
		t.Fatal("expected eligible cluster")
	}
	m := matches[0]
	if m.Tier != bank.TierAdvanced {
		t.Errorf("tier = %q, want advanced", m.Tier)
	}
	want := m.Cluster.OpportunitiesFor(bank.TierAdvanced)
	if len(m.Opportunities) != len(want) {
		t.Errorf("opportunities = %d entries, want %d", len(m.Opportunities), len(want))
	}
}

func TestGenerate_IncompleteResultsStillValid(t *testing.T) {
	r := Generate(nil, Respondent{Name: "Sam"})
	if r.Respondent.Name != "Sam" {
		t.Errorf("respondent = %q, want Sam", r.Respondent.Name)
	}
	if len(r.SortedDomains) != 4 {
		t.Errorf("sorted domains = %d, want 4", len(r.SortedDomains))
	}
	if r.PrimaryDomain == r.SecondaryDomain {
		t.Errorf("primary and secondary both %q, want distinct", r.PrimaryDomain)
	}
	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
}

func TestGenerate_PrimarySecondaryDistinctWithNonzeroTotals(t *testing.T) {
	results := map[bank.ModuleID]scoring.ModuleResult{
		bank.ModuleA: {Type: scoring.TypeInterest, Scores: scoresFor(10, 6, 0, 0)},
	}
	r := Generate(results, Respondent{})
	if r.PrimaryDomain != bank.DomainAnalytical {
		t.Errorf("primary = %q, want A", r.PrimaryDomain)
	}
	if r.SecondaryDomain != bank.DomainCreative {
		t.Errorf("secondary = %q, want C", r.SecondaryDomain)
	}
}

func TestGenerate_BurnoutNeverViolatesThresholds(t *testing.T) {
	results := map[bank.ModuleID]scoring.ModuleResult{
		bank.ModuleB: {Type: scoring.TypeStrength, Scores: scoresFor(9, 5, 7, 0)},
		bank.ModuleD: {Type: scoring.TypeComfort, Scores: scoresFor(2, 2, 2, 2)},
	}
	r := Generate(results, Respondent{})
	for _, risk := range r.BurnoutRisks {
		if risk.Comfort > 3 || risk.Strength < 6 {
			t.Errorf("risk %+v violates thresholds", risk)
		}
	}
	if len(r.Clusters) > 2 {
		t.Errorf("clusters = %d, want <= 2", len(r.Clusters))
	}
}
