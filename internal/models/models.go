package models

import "time"

// UploadedDocument is the request-scoped view of one uploaded file. It is
// never persisted; it lives for the duration of a single request.
type UploadedDocument struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

type AnalysisKind string

const (
	KindRiskAssessment AnalysisKind = "riskAssessment"
	KindKeyPoints      AnalysisKind = "keyPoints"
	KindImprovements   AnalysisKind = "improvements"
	KindSummary        AnalysisKind = "summary"
	KindComparison     AnalysisKind = "comparison"
	KindChat           AnalysisKind = "chat"
)

type ResultSource string

const (
	SourceProvider ResultSource = "provider"
	SourceFallback ResultSource = "fallback"
)

type AnalysisResult struct {
	Kind      AnalysisKind
	Text      string
	Succeeded bool
	Source    ResultSource
}

// DocumentAnalyses holds one slot per sub-analysis. A fixed-field struct
// rather than a map, so a report can never drop or reorder a section.
type DocumentAnalyses struct {
	RiskAssessment AnalysisResult
	KeyPoints      AnalysisResult
	Improvements   AnalysisResult
}

// Ordered returns the results in the declared report order.
func (a DocumentAnalyses) Ordered() []AnalysisResult {
	return []AnalysisResult{a.RiskAssessment, a.KeyPoints, a.Improvements}
}

type AggregatedReport struct {
	FileName       string
	FileSize       int64
	ContentType    string
	Language       string
	ProcessingTime time.Duration
	GeneratedAt    time.Time
	Analyses       DocumentAnalyses
}
