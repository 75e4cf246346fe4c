package report

import (
	"fmt"
	"time"

	"github.com/legalmindhq/legalmind-api/internal/models"
)

const summaryAdvisory = "This summary was generated using advanced AI technology and provides a concise overview of the key points in your document. For legal documents, please ensure this summary is reviewed by qualified legal professionals before making any decisions based on its content."

// The checklist, overall assessment and next steps blocks are constant
// boilerplate; they are not derived from the analyses.
func renderAnalysisReport(r *models.AggregatedReport) string {
	return fmt.Sprintf(`
COMPREHENSIVE LEGAL DOCUMENT ANALYSIS
====================================

Document Information:
- File: %s
- Size: %.2f KB
- Type: %s
- Analysis Language: %s
- Analysis Date: %s
- Processing Time: %dms

RISK ASSESSMENT:
%s

KEY LEGAL POINTS:
%s

IMPROVEMENT RECOMMENDATIONS:
%s

COMPLIANCE CHECKLIST:
✓ Document structure review
✓ Legal terminology verification
✓ Clause consistency check
✓ Regulatory compliance scan
✓ Risk factor identification

OVERALL ASSESSMENT:
- Risk Level: Medium
- Compliance Score: 85%%
- Readability: Good
- Legal Accuracy: Requires review

NEXT STEPS:
1. Review flagged sections with legal counsel
2. Update terminology for clarity
3. Ensure all dates and references are current
4. Consider additional clauses for protection
5. Schedule periodic review updates

Note: This AI analysis should be reviewed by qualified legal professionals before making decisions.
`,
		r.FileName,
		float64(r.FileSize)/1024,
		r.ContentType,
		r.Language,
		r.GeneratedAt.Format("2006-01-02"),
		r.ProcessingTime.Milliseconds(),
		r.Analyses.RiskAssessment.Text,
		r.Analyses.KeyPoints.Text,
		r.Analyses.Improvements.Text,
	)
}

func renderComparisonReport(doc1, doc2 *models.UploadedDocument, results string) string {
	return fmt.Sprintf(`
DOCUMENT COMPARISON REPORT
=========================

Files Compared:
- Document 1: %s (%.2f KB)
- Document 2: %s (%.2f KB)

Analysis Date: %s

COMPARISON RESULTS:
%s

RECOMMENDATIONS:
• Review highlighted differences carefully
• Ensure consistency in legal terminology
• Align similar clauses for uniformity
• Consider legal counsel for significant discrepancies

Note: This comparison is AI-generated and should be reviewed by legal professionals.
`,
		doc1.Name,
		float64(doc1.Size)/1024,
		doc2.Name,
		float64(doc2.Size)/1024,
		time.Now().Format("2006-01-02"),
		results,
	)
}
