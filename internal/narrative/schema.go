package narrative

import "github.com/ritika/selfmap/internal/llm"

// NarrativeSchema defines the JSON schema for report narratives.
var NarrativeSchema = &llm.Schema{
	Name:        "assessment-narrative",
	Description: "A narrative rendering of a self-discovery assessment report",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line takeaway (5-12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence overview of the profile",
			},
			"highlights": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 specific observations drawn from the scores (one sentence each)",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 concrete suggestions matched to the eligible opportunities",
			},
		},
		"required":             []any{"headline", "summary", "highlights", "next_steps"},
		"additionalProperties": false,
	},
}
