// Package narrative renders assessment reports as audience-specific
// prose using an LLM provider. The report itself stays audience-neutral;
// this layer decides tone and framing.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritika/selfmap/internal/llm"
	"github.com/ritika/selfmap/internal/report"
)

// Service generates narratives from reports.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a narrative generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type narrativeOutput struct {
	Headline   string   `json:"headline"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	NextSteps  []string `json:"next_steps"`
}

// Generate produces a narrative for the given audience. The call is
// synchronous: narratives are rendered once per report command, not
// streamed into an interactive loop.
func (s *Service) Generate(ctx context.Context, r report.Report, audience Audience) (*Narrative, error) {
	ctx = llm.WithPurpose(ctx, string(audience)+"-narrative")

	req := llm.Request{
		System: systemPromptFor(audience),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(r, audience)},
		},
		Schema:      NarrativeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("narrative generation: %w", err)
	}

	var out narrativeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse narrative response: %w", err)
	}

	return &Narrative{
		Audience:   audience,
		Headline:   out.Headline,
		Summary:    out.Summary,
		Highlights: out.Highlights,
		NextSteps:  out.NextSteps,
	}, nil
}
