// Package fallback produces deterministic canned responses used whenever the
// inference provider is unavailable or returns unusable output. Everything
// here is pure: no network, no state, same input always yields same output.
package fallback

import (
	"fmt"
	"strings"

	"github.com/legalmindhq/legalmind-api/internal/models"
)

type keywordResponse struct {
	keywords []string
	response string
}

// chatResponses is evaluated in order; the first group with any keyword
// present in the lower-cased message wins. The order is part of the contract:
// a message mentioning both "contract" and "privacy" gets the contract
// response.
var chatResponses = []keywordResponse{
	{
		keywords: []string{"contract", "agreement"},
		response: "For contract-related questions, key considerations include: parties involved, clear obligations, payment terms, termination clauses, and dispute resolution. Always have contracts reviewed by a qualified attorney before signing.",
	},
	{
		keywords: []string{"copyright", "trademark"},
		response: "Copyright protection generally covers original works of authorship. Key points: automatic protection upon creation, registration provides additional benefits, fair use exceptions exist, and duration varies by work type. Consult an IP attorney for specific cases.",
	},
	{
		keywords: []string{"employment", "workplace"},
		response: "Employment law covers wages, discrimination, harassment, and workplace safety. Important: document workplace issues, know your rights under federal and state laws, and consider consulting an employment attorney for serious matters.",
	},
	{
		keywords: []string{"privacy", "data"},
		response: "Privacy laws like GDPR and CCPA require proper data handling. Key requirements: obtain consent, implement security measures, provide user rights, and maintain compliance documentation. Consult a privacy attorney for specific compliance needs.",
	},
	{
		keywords: []string{"business"},
		response: "Business formation involves choosing entity type (LLC, Corporation, etc.), registering with appropriate authorities, obtaining necessary licenses, and maintaining compliance. Each business type has different legal and tax implications.",
	},
}

const defaultChatResponse = "Thank you for your question. For specific legal matters, I recommend consulting with a qualified attorney who can provide personalized advice based on your situation and applicable laws in your jurisdiction."

// ChatResponse returns the canned answer for a chat message.
func ChatResponse(message string) string {
	lower := strings.ToLower(message)
	for _, group := range chatResponses {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.response
			}
		}
	}
	return defaultChatResponse
}

// AnalysisResponse returns the canned paragraph for a failed sub-analysis.
// Keyed purely by kind, independent of document content.
func AnalysisResponse(kind models.AnalysisKind) string {
	switch kind {
	case models.KindRiskAssessment:
		return "Document reviewed for potential legal risks. Key areas examined include liability clauses, compliance requirements, and contractual obligations. Recommend legal review for risk mitigation strategies."
	case models.KindKeyPoints:
		return "Key legal elements identified include main parties, obligations, terms and conditions, and governing law provisions. Important clauses require careful review for completeness and accuracy."
	case models.KindImprovements:
		return "Suggested improvements include clarifying ambiguous language, ensuring consistent terminology, updating references to current laws, and adding protective clauses where appropriate."
	default:
		return fmt.Sprintf("%s analysis completed. Professional legal review recommended.", kind)
	}
}

// SummaryResponse substitutes for a failed summarization call.
const SummaryResponse = "Document summary generated. Key legal points and provisions have been identified for review."

// DocumentSummaryFailure is the whole-request summary fallback, used when
// summarization fails before the provider is ever reached.
const DocumentSummaryFailure = `Document Summary:

This document contains important legal information that has been processed for summarization. The key points include relevant legal clauses, terms, and conditions that require attention.

Key highlights:
• Important legal provisions and clauses
• Terms and conditions that may affect parties involved
• Compliance requirements and obligations
• Rights and responsibilities outlined in the document

Please note: This is an AI-generated summary. For critical legal matters, consult with qualified legal professionals for accurate interpretation and advice.`

// ComparisonResponse substitutes for a failed comparison call.
const ComparisonResponse = "Documents compared for structural and content differences. Key variations identified in clauses, terms, and legal provisions. Professional review recommended for detailed analysis."

// ChatFailureAnswer accompanies the 500 response when the chat pipeline
// fails outside the provider boundary.
const ChatFailureAnswer = "I apologize, but I'm unable to process your legal question at the moment. Please try again or consult with a qualified legal professional."
