package routes

import (
	"net/http"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/api/handlers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/api/middleware"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	assessmentHandler *handlers.AssessmentHandler
	referenceHandler  *handlers.ReferenceHandler
	evaluationHandler *handlers.EvaluationHandler
	sseHandler        *handlers.SSEHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router. sseHandler may be nil when no event bus is configured.
func NewRouter(
	assessmentHandler *handlers.AssessmentHandler,
	referenceHandler *handlers.ReferenceHandler,
	evaluationHandler *handlers.EvaluationHandler,
	sseHandler *handlers.SSEHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		assessmentHandler: assessmentHandler,
		referenceHandler:  referenceHandler,
		evaluationHandler: evaluationHandler,
		sseHandler:        sseHandler,
		allowedOrigins:    allowedOrigins,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Scoring endpoints
	r.mux.HandleFunc("POST /api/assessments", r.assessmentHandler.Assess)
	r.mux.HandleFunc("POST /api/assessments/hierarchy", r.assessmentHandler.Hierarchy)
	r.mux.HandleFunc("POST /api/assessments/inhalation", r.assessmentHandler.Inhalation)
	r.mux.HandleFunc("POST /api/assessments/dermal", r.assessmentHandler.Dermal)
	r.mux.HandleFunc("POST /api/assessments/alerts", r.assessmentHandler.Alerts)

	// Reference tables
	r.mux.Handle("GET /api/reference/special-materials", middleware.StaticResponse(http.HandlerFunc(r.referenceHandler.ListSpecialMaterials)))
	r.mux.Handle("GET /api/reference/frequency-options", middleware.StaticResponse(http.HandlerFunc(r.referenceHandler.ListFrequencyOptions)))
	r.mux.Handle("GET /api/reference/phrases/{code}", middleware.StaticResponse(http.HandlerFunc(r.referenceHandler.GetPhrase)))

	// Stored evaluations
	r.mux.HandleFunc("POST /api/evaluations", r.evaluationHandler.CreateEvaluation)
	r.mux.HandleFunc("GET /api/evaluations", r.evaluationHandler.ListEvaluations)
	r.mux.HandleFunc("GET /api/evaluations/{id}", r.evaluationHandler.GetEvaluation)
	r.mux.HandleFunc("PUT /api/evaluations/{id}", r.evaluationHandler.UpdateEvaluation)
	r.mux.HandleFunc("DELETE /api/evaluations/{id}", r.evaluationHandler.DeleteEvaluation)

	// Evaluation change streams
	if r.sseHandler != nil {
		r.mux.HandleFunc("GET /api/evaluations/events", r.sseHandler.StreamAllUpdates)
		r.mux.HandleFunc("GET /api/evaluations/{id}/events", r.sseHandler.StreamEvaluationUpdates)
	}

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
