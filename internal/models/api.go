package models

// Wire shapes for the HTTP boundary.

type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ComparisonResponse struct {
	Comparison string `json:"comparison"`
}

type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type ChatResponse struct {
	Answer     string `json:"answer"`
	Disclaimer string `json:"disclaimer"`
}

// ChatErrorResponse is returned with a 500 when the chat pipeline fails
// outside the provider boundary. It still carries a usable answer.
type ChatErrorResponse struct {
	Error  string `json:"error"`
	Answer string `json:"answer"`
}

type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Speed string `json:"speed"`
}

type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type TemplateCatalog struct {
	Contracts []Template `json:"contracts"`
	Policies  []Template `json:"policies"`
	Letters   []Template `json:"letters"`
}

type TemplateCatalogResponse struct {
	Templates TemplateCatalog `json:"templates"`
}

type GenerateTemplateRequest struct {
	TemplateID     string         `json:"templateId"`
	Customizations map[string]any `json:"customizations"`
}

type TemplateResponse struct {
	Template string `json:"template"`
}
