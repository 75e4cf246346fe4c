package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/legalmindhq/legalmind-api/internal/audio"
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

func newTestService(client inference.Client) LegalService {
	return NewService(client, utils.NewLogger("error"))
}

func TestChatProviderOutageFallsBack(t *testing.T) {
	svc := newTestService(&stubClient{})

	resp, err := svc.Chat(context.Background(), "Tell me about employment rights", "General legal consultation")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if resp.Answer != fallback.ChatResponse("Tell me about employment rights") {
		t.Errorf("answer is not the employment fallback: %q", resp.Answer)
	}
	if resp.Disclaimer != chatDisclaimer {
		t.Errorf("unexpected disclaimer: %q", resp.Disclaimer)
	}
}

func TestChatCleansAssistantPrefix(t *testing.T) {
	svc := newTestService(&stubClient{
		generate: func(prompt string) (string, error) {
			if !strings.Contains(prompt, "User: What is a lien?") {
				t.Errorf("prompt missing user message: %q", prompt)
			}
			return "Legal Assistant: A lien is a creditor's claim against property.", nil
		},
	})

	resp, err := svc.Chat(context.Background(), "What is a lien?", "")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if resp.Answer != "A lien is a creditor's claim against property." {
		t.Errorf("assistant prefix not stripped: %q", resp.Answer)
	}
}

func TestChatShortAnswerFallsBack(t *testing.T) {
	svc := newTestService(&stubClient{
		generate: func(prompt string) (string, error) {
			return "Legal Assistant: yes.", nil
		},
	})

	resp, err := svc.Chat(context.Background(), "Is my contract valid?", "")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if resp.Answer != fallback.ChatResponse("Is my contract valid?") {
		t.Errorf("short answer not replaced by fallback: %q", resp.Answer)
	}
}

func TestSynthesizeProviderFailureReturnsTone(t *testing.T) {
	svc := newTestService(&stubClient{})

	clip, err := svc.Synthesize(context.Background(), &models.SpeechRequest{
		Text:  "Read this clause aloud",
		Voice: "female",
		Speed: "fast",
	})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if !bytes.Equal(clip, audio.FallbackTone()) {
		t.Error("fallback audio is not the 440Hz tone")
	}
}

func TestSynthesizeTruncatesInput(t *testing.T) {
	var sawText string
	svc := newTestService(&stubClient{
		synthesize: func(text string) ([]byte, error) {
			sawText = text
			return []byte("audio"), nil
		},
	})

	longText := strings.Repeat("a", 4000)
	if _, err := svc.Synthesize(context.Background(), &models.SpeechRequest{Text: longText}); err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if len(sawText) != 1000 {
		t.Errorf("speech input not truncated to 1000 chars: %d", len(sawText))
	}
}

func TestSummarizeDocumentTextOnly(t *testing.T) {
	svc := newTestService(&stubClient{
		summarize: func(text string) (string, error) {
			if text != "Hello world" {
				t.Errorf("unexpected summarization input %q", text)
			}
			return "A short greeting document.", nil
		},
	})

	summary, err := svc.SummarizeDocument(context.Background(), nil, "Hello world", "short")
	if err != nil {
		t.Fatalf("SummarizeDocument returned error: %v", err)
	}
	if !strings.HasPrefix(summary, "A short greeting document.") {
		t.Errorf("unexpected summary %q", summary)
	}
}

func TestSummarizeDocumentNeverErrorsOnOutage(t *testing.T) {
	svc := newTestService(&stubClient{})

	summary, err := svc.SummarizeDocument(context.Background(), nil, "Hello world", "short")
	if err != nil {
		t.Fatalf("SummarizeDocument returned error under outage: %v", err)
	}
	if !strings.HasPrefix(summary, fallback.SummaryResponse) {
		t.Errorf("expected fallback summary, got %q", summary)
	}
}

func TestAnalyzeDocumentDefaultsLanguage(t *testing.T) {
	svc := newTestService(&stubClient{})

	doc := &models.UploadedDocument{
		Name:        "nda.txt",
		Size:        5,
		ContentType: "text/plain",
		Data:        []byte("terms"),
	}

	analysis, err := svc.AnalyzeDocument(context.Background(), doc, "")
	if err != nil {
		t.Fatalf("AnalyzeDocument returned error: %v", err)
	}
	if !strings.Contains(analysis, "- Analysis Language: english") {
		t.Errorf("language not defaulted to english:\n%s", analysis)
	}
}

func TestGenerateTemplate(t *testing.T) {
	svc := newTestService(&stubClient{})

	generated, err := svc.GenerateTemplate("nda", map[string]any{"party": "Acme Corp"})
	if err != nil {
		t.Fatalf("GenerateTemplate returned error: %v", err)
	}
	if !strings.Contains(generated, "Template ID: nda") {
		t.Errorf("template missing ID: %q", generated)
	}
	if !strings.Contains(generated, "Acme Corp") {
		t.Errorf("template missing customizations: %q", generated)
	}
}

func TestListTemplatesCatalogShape(t *testing.T) {
	svc := newTestService(&stubClient{})

	catalog := svc.ListTemplates()
	if len(catalog.Contracts) != 2 {
		t.Errorf("expected 2 contract templates, got %d", len(catalog.Contracts))
	}
	if len(catalog.Policies) != 2 {
		t.Errorf("expected 2 policy templates, got %d", len(catalog.Policies))
	}
	if len(catalog.Letters) != 1 {
		t.Errorf("expected 1 letter template, got %d", len(catalog.Letters))
	}
}
