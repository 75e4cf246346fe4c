package report

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/legalmindhq/legalmind-api/internal/fallback"
	"github.com/legalmindhq/legalmind-api/internal/inference"
	"github.com/legalmindhq/legalmind-api/internal/models"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

type stubClient struct {
	generate   func(prompt string) (string, error)
	summarize  func(text string) (string, error)
	synthesize func(text string) ([]byte, error)
}

func (s *stubClient) GenerateText(ctx context.Context, prompt string, params inference.GenerationParams) (string, error) {
	if s.generate == nil {
		return "", errors.New("provider unavailable")
	}
	return s.generate(prompt)
}

func (s *stubClient) Summarize(ctx context.Context, text string, params inference.SummaryParams) (string, error) {
	if s.summarize == nil {
		return "", errors.New("provider unavailable")
	}
	return s.summarize(text)
}

func (s *stubClient) Synthesize(ctx context.Context, text string, params inference.SpeechParams) ([]byte, error) {
	if s.synthesize == nil {
		return nil, errors.New("provider unavailable")
	}
	return s.synthesize(text)
}

var _ inference.Client = (*stubClient)(nil)

func textDoc(name, content string) *models.UploadedDocument {
	return &models.UploadedDocument{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: "text/plain",
		Data:        []byte(content),
	}
}

func newAssembler(client inference.Client) *Assembler {
	return NewAssembler(client, utils.NewLogger("error"))
}

func TestAssembleAllProviderCallsSucceed(t *testing.T) {
	a := newAssembler(&stubClient{
		generate: func(prompt string) (string, error) {
			switch {
			case strings.HasPrefix(prompt, "Analyze this legal document"):
				return "Risk analysis from the provider.", nil
			case strings.HasPrefix(prompt, "Extract key legal points"):
				return "Key points from the provider.", nil
			case strings.HasPrefix(prompt, "Suggest improvements"):
				return "Improvements from the provider.", nil
			default:
				return "", errors.New("unexpected prompt: " + prompt)
			}
		},
	})

	got, err := a.Assemble(context.Background(), textDoc("nda.txt", "Confidential terms."), "english")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	for _, want := range []string{
		"COMPREHENSIVE LEGAL DOCUMENT ANALYSIS",
		"- File: nda.txt",
		"- Analysis Language: english",
		"Risk analysis from the provider.",
		"Key points from the provider.",
		"Improvements from the provider.",
		"COMPLIANCE CHECKLIST:",
		"- Risk Level: Medium",
		"NEXT STEPS:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestAssembleSectionsAppearInFixedOrder(t *testing.T) {
	a := newAssembler(&stubClient{})

	got, err := a.Assemble(context.Background(), textDoc("nda.txt", "terms"), "english")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	risk := strings.Index(got, "RISK ASSESSMENT:")
	points := strings.Index(got, "KEY LEGAL POINTS:")
	improvements := strings.Index(got, "IMPROVEMENT RECOMMENDATIONS:")

	if risk == -1 || points == -1 || improvements == -1 {
		t.Fatalf("report missing a section: %d %d %d", risk, points, improvements)
	}
	if !(risk < points && points < improvements) {
		t.Errorf("sections out of order: risk=%d points=%d improvements=%d", risk, points, improvements)
	}
}

func TestAssembleTotalOutageSubstitutesAllFallbacks(t *testing.T) {
	a := newAssembler(&stubClient{})

	got, err := a.Assemble(context.Background(), textDoc("nda.txt", "terms"), "english")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	for _, kind := range []models.AnalysisKind{
		models.KindRiskAssessment,
		models.KindKeyPoints,
		models.KindImprovements,
	} {
		if !strings.Contains(got, fallback.AnalysisResponse(kind)) {
			t.Errorf("report missing fallback text for %s", kind)
		}
	}
}

func TestAssembleIsolatedFailure(t *testing.T) {
	a := newAssembler(&stubClient{
		generate: func(prompt string) (string, error) {
			if strings.HasPrefix(prompt, "Extract key legal points") {
				return "", errors.New("quota exceeded")
			}
			return "Provider output for this sub-analysis.", nil
		},
	})

	got, err := a.Assemble(context.Background(), textDoc("nda.txt", "terms"), "english")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	if !strings.Contains(got, fallback.AnalysisResponse(models.KindKeyPoints)) {
		t.Error("failed sub-analysis not replaced by its fallback")
	}
	if strings.Contains(got, fallback.AnalysisResponse(models.KindRiskAssessment)) {
		t.Error("successful sub-analysis replaced by fallback")
	}
	if !strings.Contains(got, "Provider output for this sub-analysis.") {
		t.Error("successful sub-analysis output missing")
	}
}

func TestAssembleTruncatesPromptInput(t *testing.T) {
	longText := strings.Repeat("x", 5000)

	var mu sync.Mutex
	var prompts []string

	a := newAssembler(&stubClient{
		generate: func(prompt string) (string, error) {
			mu.Lock()
			prompts = append(prompts, prompt)
			mu.Unlock()
			return "Provider output long enough to keep.", nil
		},
	})

	if _, err := a.Assemble(context.Background(), textDoc("big.txt", longText), "english"); err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	if len(prompts) != 3 {
		t.Fatalf("expected 3 sub-analysis prompts, got %d", len(prompts))
	}
	for _, prompt := range prompts {
		// Prompt prefix plus at most 1500 chars of document text.
		if len(prompt) > 1500+100 {
			t.Errorf("prompt not truncated: %d bytes", len(prompt))
		}
	}
}

func TestCompareSuccess(t *testing.T) {
	a := newAssembler(&stubClient{
		generate: func(prompt string) (string, error) {
			if !strings.HasPrefix(prompt, "Compare these two legal documents") {
				t.Errorf("unexpected prompt %q", prompt)
			}
			return "Clause 4 differs between the drafts.", nil
		},
	})

	got, err := a.Compare(context.Background(), textDoc("old.txt", "v1"), textDoc("new.txt", "v2"))
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}

	for _, want := range []string{
		"DOCUMENT COMPARISON REPORT",
		"- Document 1: old.txt",
		"- Document 2: new.txt",
		"Clause 4 differs between the drafts.",
		"RECOMMENDATIONS:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("comparison report missing %q", want)
		}
	}
}

func TestCompareProviderFailureUsesFallback(t *testing.T) {
	a := newAssembler(&stubClient{})

	got, err := a.Compare(context.Background(), textDoc("old.txt", "v1"), textDoc("new.txt", "v2"))
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if !strings.Contains(got, fallback.ComparisonResponse) {
		t.Error("comparison report missing fallback text")
	}
}

func TestSummarizeAppendsAdvisory(t *testing.T) {
	a := newAssembler(&stubClient{
		summarize: func(text string) (string, error) {
			return "The lease runs for twelve months.", nil
		},
	})

	got := a.Summarize(context.Background(), "lease text", inference.LengthShort)
	if !strings.HasPrefix(got, "The lease runs for twelve months.") {
		t.Errorf("summary missing provider text: %q", got)
	}
	if !strings.Contains(got, "reviewed by qualified legal professionals") {
		t.Errorf("summary missing advisory: %q", got)
	}
}

func TestSummarizeProviderFailureUsesFallback(t *testing.T) {
	a := newAssembler(&stubClient{})

	got := a.Summarize(context.Background(), "lease text", inference.LengthMedium)
	if !strings.HasPrefix(got, fallback.SummaryResponse) {
		t.Errorf("summary missing fallback text: %q", got)
	}
}
