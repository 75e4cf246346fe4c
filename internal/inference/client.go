// Package inference wraps the hosted inference provider behind a small
// task-oriented client. Provider failures and degenerate outputs are
// normalized into errors so callers can substitute fallback text; nothing in
// this package retries or panics past its boundary.
package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/legalmindhq/legalmind-api/internal/config"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

// ErrDegenerateOutput marks a provider response too short to be usable.
var ErrDegenerateOutput = errors.New("provider returned degenerate output")

// minUsableChars is the shortest trimmed output treated as meaningful.
const minUsableChars = 10

// Hard per-task input limits, in bytes. Truncation is silent and not
// sentence-aware.
const (
	AnalysisInputLimit   = 1500
	SummaryInputLimit    = 1000
	ComparisonInputLimit = 800
	SpeechInputLimit     = 1000
)

type GenerationParams struct {
	MaxNewTokens int
	Temperature  float64
}

type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// MaxTokens maps the requested length to a token budget. Unknown values get
// the medium budget.
func (l SummaryLength) MaxTokens() int {
	switch l {
	case LengthShort:
		return 100
	case LengthLong:
		return 300
	default:
		return 200
	}
}

const minSummaryTokens = 50

type SummaryParams struct {
	Length SummaryLength
}

type Voice string

const (
	VoiceFemale  Voice = "female"
	VoiceMale    Voice = "male"
	VoiceNeutral Voice = "neutral"
)

type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

type SpeechParams struct {
	Voice Voice
	// Speed is accepted at the API boundary but is not forwarded to any
	// provider backend.
	Speed Speed
}

type Client interface {
	GenerateText(ctx context.Context, prompt string, params GenerationParams) (string, error)
	Summarize(ctx context.Context, text string, params SummaryParams) (string, error)
	Synthesize(ctx context.Context, text string, params SpeechParams) ([]byte, error)
}

// NewClient selects the provider backend from configuration.
func NewClient(cfg *config.Config, logger *utils.Logger) (Client, error) {
	switch cfg.Provider {
	case config.ProviderHuggingFace:
		return NewHuggingFaceClient(cfg, logger), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY not set")
		}
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown inference provider: %s", cfg.Provider)
	}
}

// Truncate cuts s to at most limit bytes.
func Truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// usable trims the output and rejects anything under the minimum length.
func usable(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minUsableChars {
		return "", ErrDegenerateOutput
	}
	return trimmed, nil
}
