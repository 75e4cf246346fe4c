package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/legalmindhq/legalmind-api/internal/fallback"
	"github.com/legalmindhq/legalmind-api/internal/models"
	"github.com/legalmindhq/legalmind-api/internal/services"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

// Memory threshold for multipart parsing. Uploads are size-checked client
// side (50MB) and deliberately not rejected here.
const multipartMemoryLimit = 32 << 20

type LegalHandler struct {
	service services.LegalService
	logger  *utils.Logger
}

func NewLegalHandler(service services.LegalService, logger *utils.Logger) *LegalHandler {
	return &LegalHandler{
		service: service,
		logger:  logger,
	}
}

func (h *LegalHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.respondError(w, utils.NewBadRequestError("No file provided"))
		return
	}

	doc, err := h.readUploadedFile(r, "file")
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("No file provided"))
		return
	}

	analysis, err := h.service.AnalyzeDocument(r.Context(), doc, r.FormValue("language"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.AnalyzeResponse{Analysis: analysis})
}

func (h *LegalHandler) SummarizeDocument(w http.ResponseWriter, r *http.Request) {
	// The document may arrive as a file, as a text form field, or not at
	// all. Parse errors are tolerated so a plain form post still works.
	_ = r.ParseMultipartForm(multipartMemoryLimit)

	var doc *models.UploadedDocument
	if uploaded, err := h.readUploadedFile(r, "file"); err == nil {
		doc = uploaded
	}

	text := r.FormValue("text")
	if doc == nil && text == "" {
		h.respondError(w, utils.NewBadRequestError("No document or text provided"))
		return
	}

	summary, err := h.service.SummarizeDocument(r.Context(), doc, text, r.FormValue("length"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.SummaryResponse{Summary: summary})
}

func (h *LegalHandler) CompareDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.respondError(w, utils.NewBadRequestError("Two files required for comparison"))
		return
	}

	doc1, err1 := h.readUploadedFile(r, "file1")
	doc2, err2 := h.readUploadedFile(r, "file2")
	if err1 != nil || err2 != nil {
		h.respondError(w, utils.NewBadRequestError("Two files required for comparison"))
		return
	}

	comparison, err := h.service.CompareDocuments(r.Context(), doc1, doc2)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.ComparisonResponse{Comparison: comparison})
}

func (h *LegalHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req models.SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid request body"))
		return
	}
	if req.Text == "" {
		h.respondError(w, utils.NewBadRequestError("No text provided"))
		return
	}

	clip, err := h.service.Synthesize(r.Context(), &req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(clip)))
	w.Header().Set("Content-Disposition", "attachment; filename=echo-verse-audio.wav")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(clip); err != nil {
		h.logger.Error("Failed to write audio response", "error", err)
	}
}

func (h *LegalHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid request body"))
		return
	}
	if req.Message == "" {
		h.respondError(w, utils.NewBadRequestError("No message provided"))
		return
	}

	resp, err := h.service.Chat(r.Context(), req.Message, req.Context)
	if err != nil {
		// Failure outside the provider boundary; still return an answer.
		h.logger.Error("Chat request failed", "error", err)
		h.respondJSON(w, http.StatusInternalServerError, models.ChatErrorResponse{
			Error:  "Failed to process legal inquiry",
			Answer: fallback.ChatFailureAnswer,
		})
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *LegalHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, models.TemplateCatalogResponse{
		Templates: h.service.ListTemplates(),
	})
}

func (h *LegalHandler) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid request body"))
		return
	}
	if req.TemplateID == "" {
		h.respondError(w, utils.NewBadRequestError("No template ID provided"))
		return
	}

	generated, err := h.service.GenerateTemplate(req.TemplateID, req.Customizations)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.TemplateResponse{Template: generated})
}

func (h *LegalHandler) readUploadedFile(r *http.Request, field string) (*models.UploadedDocument, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.UploadedDocument{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (h *LegalHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *LegalHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
