// Package report orchestrates document analyses and renders them into the
// fixed report shapes returned by the API.
package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/legalmindhq/legalmind-api/internal/extractor"
	"github.com/legalmindhq/legalmind-api/internal/fallback"
	"github.com/legalmindhq/legalmind-api/internal/inference"
	"github.com/legalmindhq/legalmind-api/internal/models"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

type Assembler struct {
	client inference.Client
	logger *utils.Logger
}

func NewAssembler(client inference.Client, logger *utils.Logger) *Assembler {
	return &Assembler{
		client: client,
		logger: logger,
	}
}

// Assemble extracts a document's text once, runs the three sub-analyses and
// renders the aggregated report. Only an extraction failure is fatal; a
// failed sub-analysis is replaced by its fallback paragraph.
func (a *Assembler) Assemble(ctx context.Context, doc *models.UploadedDocument, language string) (string, error) {
	start := time.Now()

	text, err := extractor.Extract(doc)
	if err != nil {
		return "", fmt.Errorf("extract document text: %w", err)
	}

	analyses := a.runAnalyses(ctx, text)

	rep := &models.AggregatedReport{
		FileName:       doc.Name,
		FileSize:       doc.Size,
		ContentType:    doc.ContentType,
		Language:       language,
		ProcessingTime: time.Since(start),
		GeneratedAt:    time.Now(),
		Analyses:       analyses,
	}

	return renderAnalysisReport(rep), nil
}

// runAnalyses issues the three sub-analyses concurrently. Each goroutine
// owns exactly one slot of the result struct, so completion order never
// affects the report.
func (a *Assembler) runAnalyses(ctx context.Context, text string) models.DocumentAnalyses {
	truncated := inference.Truncate(text, inference.AnalysisInputLimit)

	var analyses models.DocumentAnalyses
	jobs := []struct {
		kind   models.AnalysisKind
		prompt string
		slot   *models.AnalysisResult
	}{
		{models.KindRiskAssessment, "Analyze this legal document for potential risks and compliance issues: " + truncated, &analyses.RiskAssessment},
		{models.KindKeyPoints, "Extract key legal points and clauses from this document: " + truncated, &analyses.KeyPoints},
		{models.KindImprovements, "Suggest improvements for this legal document: " + truncated, &analyses.Improvements},
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(kind models.AnalysisKind, prompt string, slot *models.AnalysisResult) {
			defer wg.Done()
			*slot = a.runSubAnalysis(ctx, kind, prompt)
		}(job.kind, job.prompt, job.slot)
	}
	wg.Wait()

	return analyses
}

func (a *Assembler) runSubAnalysis(ctx context.Context, kind models.AnalysisKind, prompt string) models.AnalysisResult {
	text, err := a.client.GenerateText(ctx, prompt, inference.GenerationParams{
		MaxNewTokens: 100,
		Temperature:  0.7,
	})
	if err != nil {
		a.logger.Warn("Sub-analysis failed, substituting fallback", "kind", kind, "error", err)
		return models.AnalysisResult{
			Kind:      kind,
			Text:      fallback.AnalysisResponse(kind),
			Succeeded: false,
			Source:    models.SourceFallback,
		}
	}
	return models.AnalysisResult{
		Kind:      kind,
		Text:      text,
		Succeeded: true,
		Source:    models.SourceProvider,
	}
}

// Compare extracts both documents and renders the comparison report. A
// provider failure substitutes the canned comparison text; only extraction
// failures are fatal.
func (a *Assembler) Compare(ctx context.Context, doc1, doc2 *models.UploadedDocument) (string, error) {
	text1, err := extractor.ExtractForComparison(doc1, 1)
	if err != nil {
		return "", fmt.Errorf("extract first document: %w", err)
	}
	text2, err := extractor.ExtractForComparison(doc2, 2)
	if err != nil {
		return "", fmt.Errorf("extract second document: %w", err)
	}

	prompt := fmt.Sprintf(`Compare these two legal documents and identify:
1. Key differences
2. Similar clauses
3. Missing elements in each
4. Recommendations for alignment

Document 1: %s

Document 2: %s

Comparison Analysis:`,
		inference.Truncate(text1, inference.ComparisonInputLimit),
		inference.Truncate(text2, inference.ComparisonInputLimit))

	result, err := a.client.GenerateText(ctx, prompt, inference.GenerationParams{
		MaxNewTokens: 200,
		Temperature:  0.7,
	})
	if err != nil {
		a.logger.Warn("Comparison failed, substituting fallback", "error", err)
		result = fallback.ComparisonResponse
	}

	return renderComparisonReport(doc1, doc2, result), nil
}

// Summarize produces the enhanced summary text. Never fails: a provider
// failure substitutes the canned summary before the advisory is appended.
func (a *Assembler) Summarize(ctx context.Context, documentText string, length inference.SummaryLength) string {
	summary, err := a.client.Summarize(ctx,
		inference.Truncate(documentText, inference.SummaryInputLimit),
		inference.SummaryParams{Length: length})
	if err != nil {
		a.logger.Warn("Summarization failed, substituting fallback", "error", err)
		summary = fallback.SummaryResponse
	}
	return summary + "\n\n" + summaryAdvisory
}
