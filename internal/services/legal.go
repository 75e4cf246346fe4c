package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/legalmindhq/legalmind-api/internal/audio"
	"github.com/legalmindhq/legalmind-api/internal/extractor"
	"github.com/legalmindhq/legalmind-api/internal/fallback"
	"github.com/legalmindhq/legalmind-api/internal/inference"
	"github.com/legalmindhq/legalmind-api/internal/models"
	"github.com/legalmindhq/legalmind-api/internal/report"
	"github.com/legalmindhq/legalmind-api/internal/templates"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

const chatDisclaimer = "This response is for informational purposes only and does not constitute legal advice. Please consult with a qualified legal professional for specific legal matters."

// minChatAnswerChars rejects provider chat output that collapses to nothing
// once the assistant prefix is stripped.
const minChatAnswerChars = 10

type LegalService interface {
	AnalyzeDocument(ctx context.Context, doc *models.UploadedDocument, language string) (string, error)
	SummarizeDocument(ctx context.Context, doc *models.UploadedDocument, text, length string) (string, error)
	CompareDocuments(ctx context.Context, doc1, doc2 *models.UploadedDocument) (string, error)
	Chat(ctx context.Context, message, chatContext string) (*models.ChatResponse, error)
	Synthesize(ctx context.Context, req *models.SpeechRequest) ([]byte, error)
	ListTemplates() models.TemplateCatalog
	GenerateTemplate(templateID string, customizations map[string]any) (string, error)
}

type legalService struct {
	client    inference.Client
	assembler *report.Assembler
	templates *templates.Store
	logger    *utils.Logger
}

func NewService(client inference.Client, logger *utils.Logger) LegalService {
	return &legalService{
		client:    client,
		assembler: report.NewAssembler(client, logger),
		templates: templates.NewStore(),
		logger:    logger,
	}
}

func (s *legalService) AnalyzeDocument(ctx context.Context, doc *models.UploadedDocument, language string) (string, error) {
	if language == "" {
		language = "english"
	}

	analysis, err := s.assembler.Assemble(ctx, doc, language)
	if err != nil {
		s.logger.Error("Failed to assemble analysis report", "error", err, "filename", doc.Name)
		return "", utils.NewInternalError("Failed to analyze document")
	}

	s.logger.Info("Document analyzed", "filename", doc.Name, "language", language, "size", doc.Size)
	return analysis, nil
}

// SummarizeDocument never returns an error once input is validated upstream:
// extraction failures produce the whole-request fallback summary and provider
// failures are absorbed by the assembler.
func (s *legalService) SummarizeDocument(ctx context.Context, doc *models.UploadedDocument, text, length string) (string, error) {
	var documentText string
	if doc != nil {
		extracted, err := extractor.Extract(doc)
		if err != nil {
			s.logger.Error("Failed to extract text for summarization", "error", err, "filename", doc.Name)
			return fallback.DocumentSummaryFailure, nil
		}
		documentText = extracted
	} else {
		documentText = text
	}

	return s.assembler.Summarize(ctx, documentText, inference.SummaryLength(length)), nil
}

func (s *legalService) CompareDocuments(ctx context.Context, doc1, doc2 *models.UploadedDocument) (string, error) {
	comparison, err := s.assembler.Compare(ctx, doc1, doc2)
	if err != nil {
		s.logger.Error("Failed to compare documents", "error", err, "file1", doc1.Name, "file2", doc2.Name)
		return "", utils.NewInternalError("Failed to compare documents")
	}
	return comparison, nil
}

func (s *legalService) Chat(ctx context.Context, message, chatContext string) (*models.ChatResponse, error) {
	s.logger.Debug("Chat request", "context", chatContext, "message_length", len(message))

	prompt := fmt.Sprintf(`Legal Assistant: I'm here to provide general legal information. Please remember this is not legal advice.

User: %s

Legal Assistant:`, message)

	answer, err := s.client.GenerateText(ctx, prompt, inference.GenerationParams{
		MaxNewTokens: 150,
		Temperature:  0.7,
	})
	if err != nil {
		s.logger.Warn("Chat completion failed, using fallback", "error", err)
		answer = fallback.ChatResponse(message)
	} else {
		answer = strings.TrimSpace(strings.ReplaceAll(answer, "Legal Assistant:", ""))
		if len(answer) < minChatAnswerChars {
			answer = fallback.ChatResponse(message)
		}
	}

	return &models.ChatResponse{
		Answer:     answer,
		Disclaimer: chatDisclaimer,
	}, nil
}

// Synthesize returns provider audio, or the fixed 440 Hz tone when synthesis
// fails entirely.
func (s *legalService) Synthesize(ctx context.Context, req *models.SpeechRequest) ([]byte, error) {
	text := inference.Truncate(req.Text, inference.SpeechInputLimit)

	clip, err := s.client.Synthesize(ctx, text, inference.SpeechParams{
		Voice: inference.Voice(req.Voice),
		Speed: inference.Speed(req.Speed),
	})
	if err != nil {
		s.logger.Warn("Speech synthesis failed, returning fallback tone", "error", err)
		return audio.FallbackTone(), nil
	}
	return clip, nil
}

func (s *legalService) ListTemplates() models.TemplateCatalog {
	return s.templates.Catalog()
}

func (s *legalService) GenerateTemplate(templateID string, customizations map[string]any) (string, error) {
	generated, err := s.templates.Generate(templateID, customizations)
	if err != nil {
		s.logger.Error("Failed to generate template", "error", err, "template_id", templateID)
		return "", utils.NewInternalError("Failed to generate template")
	}
	return generated, nil
}
