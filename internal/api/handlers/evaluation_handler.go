package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
)

// EvaluationService defines the stored evaluation operations used by the handler
type EvaluationService interface {
	Create(ctx context.Context, evaluation *entities.Evaluation) (*entities.Evaluation, error)
	GetByID(ctx context.Context, id string) (*entities.Evaluation, error)
	Update(ctx context.Context, id string, evaluation *entities.Evaluation) (*entities.Evaluation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter repositories.EvaluationFilter) ([]*entities.Evaluation, error)
}

// EvaluationHandler handles stored evaluation requests
type EvaluationHandler struct {
	service EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(service EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{service: service}
}

// CreateEvaluation handles POST /api/evaluations
func (h *EvaluationHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var evaluation entities.Evaluation
	if !decodeJSON(w, r, &evaluation) {
		return
	}

	created, err := h.service.Create(r.Context(), &evaluation)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetEvaluation handles GET /api/evaluations/{id}
func (h *EvaluationHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "evaluation ID is required")
		return
	}

	evaluation, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, evaluation)
}

// UpdateEvaluation handles PUT /api/evaluations/{id}
func (h *EvaluationHandler) UpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "evaluation ID is required")
		return
	}

	var evaluation entities.Evaluation
	if !decodeJSON(w, r, &evaluation) {
		return
	}

	updated, err := h.service.Update(r.Context(), id, &evaluation)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteEvaluation handles DELETE /api/evaluations/{id}
func (h *EvaluationHandler) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "evaluation ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEvaluations handles GET /api/evaluations?company=X&limit=N&offset=M
func (h *EvaluationHandler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.EvaluationFilter{CompanyName: query.Get("company")}

	var err error
	if filter.Limit, err = intParam(query.Get("limit")); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}
	if filter.Offset, err = intParam(query.Get("offset")); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid offset parameter")
		return
	}

	evaluations, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"evaluations": evaluations,
		"count":       len(evaluations),
	})
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
