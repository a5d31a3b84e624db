package narrative

// Audience selects which reader the narrative is written for. The
// underlying report data is identical for both; only the framing and
// vocabulary change.
type Audience string

const (
	AudienceTeen   Audience = "teen"
	AudienceParent Audience = "parent"
)

// Narrative is the generated prose rendering of an assessment report.
type Narrative struct {
	Audience   Audience
	Headline   string
	Summary    string
	Highlights []string
	NextSteps  []string
}

// Config holds narrative generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for narrative generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.6,
	}
}
