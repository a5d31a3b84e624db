package narrative

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/llm"
	"github.com/ritika/selfmap/internal/report"
	"github.com/ritika/selfmap/internal/scoring"
)

func validNarrativeJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "You see how things fit together",
		"summary": "Your answers point to a strong analytical streak with creative backup.",
		"highlights": ["You picked analytical options quickly and accurately."],
		"next_steps": ["Try a robotics club or a coding workshop."]
	}`)
}

func testReport() report.Report {
	results := map[bank.ModuleID]scoring.ModuleResult{
		bank.ModuleA: {Type: scoring.TypeInterest, Scores: map[bank.Domain]float64{bank.DomainAnalytical: 8, bank.DomainCreative: 2}},
		bank.ModuleB: {Type: scoring.TypeStrength, Scores: map[bank.Domain]float64{bank.DomainAnalytical: 6}},
		bank.ModuleD: {Type: scoring.TypeComfort, Scores: map[bank.Domain]float64{
			bank.DomainAnalytical: 6, bank.DomainCreative: 6, bank.DomainSocial: 6, bank.DomainPhysical: 6,
		}},
	}
	return report.Generate(results, report.Respondent{Name: "Sam"})
}

func TestGenerateTeenNarrative(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNarrativeJSON()})
	svc := NewService(mock, DefaultConfig())

	n, err := svc.Generate(t.Context(), testReport(), AudienceTeen)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if n.Audience != AudienceTeen {
		t.Errorf("audience = %q, want teen", n.Audience)
	}
	if n.Headline == "" || n.Summary == "" {
		t.Error("expected non-empty headline and summary")
	}
	if len(n.Highlights) == 0 || len(n.NextSteps) == 0 {
		t.Error("expected highlights and next steps")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "assessment-narrative" {
		t.Error("expected schema name 'assessment-narrative'")
	}
	if !strings.Contains(req.System, "teen") {
		t.Error("teen audience must use the teen system prompt")
	}
}

func TestGenerateParentNarrativeUsesParentPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNarrativeJSON()})
	svc := NewService(mock, DefaultConfig())

	n, err := svc.Generate(t.Context(), testReport(), AudienceParent)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if n.Audience != AudienceParent {
		t.Errorf("audience = %q, want parent", n.Audience)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "parents") {
		t.Error("parent audience must use the parent system prompt")
	}
}

func TestUserMessageCarriesProfileAndClusters(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNarrativeJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), testReport(), AudienceTeen); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Respondent: Sam", "Analytical", "Primary domain:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(t.Context(), testReport(), AudienceTeen)
	if err == nil {
		t.Fatal("expected error from provider")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(t.Context(), testReport(), AudienceTeen)
	if err == nil {
		t.Fatal("expected parse error")
	}
}
