package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/legalmindhq/legalmind-api/internal/handlers"
	"github.com/legalmindhq/legalmind-api/internal/middleware"
	"github.com/legalmindhq/legalmind-api/internal/services"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

func NewRouter(service services.LegalService, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	legalHandler := handlers.NewLegalHandler(service, logger)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/analyze-document", legalHandler.AnalyzeDocument).Methods(http.MethodPost)
	api.HandleFunc("/summarize-document", legalHandler.SummarizeDocument).Methods(http.MethodPost)
	api.HandleFunc("/document-comparison", legalHandler.CompareDocuments).Methods(http.MethodPost)
	api.HandleFunc("/text-to-speech", legalHandler.TextToSpeech).Methods(http.MethodPost)
	api.HandleFunc("/chat-legal-advisor", legalHandler.Chat).Methods(http.MethodPost)
	api.HandleFunc("/legal-templates", legalHandler.ListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/legal-templates", legalHandler.GenerateTemplate).Methods(http.MethodPost)

	return r
}
