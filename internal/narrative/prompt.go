package narrative

import (
	"fmt"
	"strings"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/report"
)

const teenSystemPrompt = `You write short, encouraging narratives for teenagers who just completed a self-discovery assessment. Speak directly to the teen in plain, warm language. Never mention scores as numbers; describe what they suggest. Do not diagnose or label.`

const parentSystemPrompt = `You write short, factual narratives for parents of teenagers who completed a self-discovery assessment. Address the parent, describe what the results suggest about their teen, and frame everything as exploration rather than destiny. Avoid jargon.`

func systemPromptFor(audience Audience) string {
	if audience == AudienceParent {
		return parentSystemPrompt
	}
	return teenSystemPrompt
}

func buildUserMessage(r report.Report, audience Audience) string {
	var b strings.Builder

	if r.Respondent.Name != "" {
		b.WriteString(fmt.Sprintf("Respondent: %s\n", r.Respondent.Name))
	}

	b.WriteString("Domain scores (0-10 per dimension):\n")
	for _, d := range bank.AllDomains() {
		s := r.Profile[d]
		b.WriteString(fmt.Sprintf("- %s: interest=%.1f strength=%.1f skill=%.1f comfort=%.1f\n",
			bank.DisplayName(d), s.Interest, s.Strength, s.Skill, s.Comfort))
	}

	b.WriteString(fmt.Sprintf("\nPrimary domain: %s\n", bank.DisplayName(r.PrimaryDomain)))
	b.WriteString(fmt.Sprintf("Secondary domain: %s\n", bank.DisplayName(r.SecondaryDomain)))

	if len(r.Clusters) > 0 {
		b.WriteString("\nMatched career clusters:\n")
		for _, m := range r.Clusters {
			b.WriteString(fmt.Sprintf("- %s (tier: %s)\n", m.Cluster.Name, m.Tier))
			for _, opp := range m.Opportunities {
				b.WriteString(fmt.Sprintf("  - %s\n", opp))
			}
		}
	} else {
		b.WriteString("\nNo career clusters matched yet.\n")
	}

	if len(r.BurnoutRisks) > 0 {
		b.WriteString("\nHigh ability but low comfort (watch for pressure):\n")
		for _, risk := range r.BurnoutRisks {
			b.WriteString(fmt.Sprintf("- %s\n", bank.DisplayName(risk.Domain)))
		}
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write a narrative for the %s.
1. One headline capturing the core finding.
2. A 3-5 sentence summary of the profile. Weave the primary and secondary domains in naturally.
3. 2-4 highlights, each one sentence, grounded in the scores above.
4. 2-3 next steps drawn from the matched opportunities. If no clusters matched, suggest low-pressure ways to explore the primary domain.
5. If any domain shows high ability with low comfort, mention it gently without the word "burnout".`, audience))

	return b.String()
}
