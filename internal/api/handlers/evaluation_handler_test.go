package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/api/handlers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

type stubEvaluationService struct {
	stored     map[string]*entities.Evaluation
	lastFilter repositories.EvaluationFilter
	err        error
}

func newStubEvaluationService() *stubEvaluationService {
	return &stubEvaluationService{stored: map[string]*entities.Evaluation{}}
}

func (s *stubEvaluationService) Create(ctx context.Context, evaluation *entities.Evaluation) (*entities.Evaluation, error) {
	if s.err != nil {
		return nil, s.err
	}
	evaluation.ID = "ev-new"
	s.stored[evaluation.ID] = evaluation
	return evaluation, nil
}

func (s *stubEvaluationService) GetByID(ctx context.Context, id string) (*entities.Evaluation, error) {
	if s.err != nil {
		return nil, s.err
	}
	ev, ok := s.stored[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("evaluation not found")
	}
	return ev, nil
}

func (s *stubEvaluationService) Update(ctx context.Context, id string, evaluation *entities.Evaluation) (*entities.Evaluation, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	evaluation.ID = id
	s.stored[id] = evaluation
	return evaluation, nil
}

func (s *stubEvaluationService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	delete(s.stored, id)
	return nil
}

func (s *stubEvaluationService) List(ctx context.Context, filter repositories.EvaluationFilter) ([]*entities.Evaluation, error) {
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entities.Evaluation, 0, len(s.stored))
	for _, ev := range s.stored {
		out = append(out, ev)
	}
	return out, nil
}

func TestEvaluationHandler_CreateEvaluation(t *testing.T) {
	service := newStubEvaluationService()
	handler := handlers.NewEvaluationHandler(service)

	body := `{"project":{"company_name":"Acme"},"current_step":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateEvaluation(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created entities.Evaluation
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "ev-new", created.ID)
	assert.Equal(t, "Acme", created.Project.CompanyName)
}

func TestEvaluationHandler_CreateEvaluation_ValidationError(t *testing.T) {
	service := newStubEvaluationService()
	service.err = apperrors.NewValidationError("evaluation is incomplete", "El nombre de la empresa es obligatorio.")
	handler := handlers.NewEvaluationHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluations", strings.NewReader(`{"current_step":2}`))
	w := httptest.NewRecorder()

	handler.CreateEvaluation(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var response struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "evaluation is incomplete", response.Error)
	assert.Equal(t, []string{"El nombre de la empresa es obligatorio."}, response.Details)
}

func TestEvaluationHandler_GetEvaluation(t *testing.T) {
	service := newStubEvaluationService()
	service.stored["ev-1"] = &entities.Evaluation{ID: "ev-1", CurrentStep: 2}
	handler := handlers.NewEvaluationHandler(service)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations/ev-1", nil)
		req.SetPathValue("id", "ev-1")
		w := httptest.NewRecorder()

		handler.GetEvaluation(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var ev entities.Evaluation
		require.NoError(t, json.NewDecoder(w.Body).Decode(&ev))
		assert.Equal(t, 2, ev.CurrentStep)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.GetEvaluation(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		down := newStubEvaluationService()
		down.err = apperrors.NewUnavailableError("evaluation storage is not configured")
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations/ev-1", nil)
		req.SetPathValue("id", "ev-1")
		w := httptest.NewRecorder()

		handlers.NewEvaluationHandler(down).GetEvaluation(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unexpected error hides cause", func(t *testing.T) {
		broken := newStubEvaluationService()
		broken.err = errors.New("pq: connection refused")
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations/ev-1", nil)
		req.SetPathValue("id", "ev-1")
		w := httptest.NewRecorder()

		handlers.NewEvaluationHandler(broken).GetEvaluation(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestEvaluationHandler_UpdateEvaluation(t *testing.T) {
	service := newStubEvaluationService()
	service.stored["ev-1"] = &entities.Evaluation{ID: "ev-1"}
	handler := handlers.NewEvaluationHandler(service)

	req := httptest.NewRequest(http.MethodPut, "/api/evaluations/ev-1", strings.NewReader(`{"current_step":3}`))
	req.SetPathValue("id", "ev-1")
	w := httptest.NewRecorder()

	handler.UpdateEvaluation(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, service.stored["ev-1"].CurrentStep)
}

func TestEvaluationHandler_DeleteEvaluation(t *testing.T) {
	service := newStubEvaluationService()
	service.stored["ev-1"] = &entities.Evaluation{ID: "ev-1"}
	handler := handlers.NewEvaluationHandler(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/evaluations/ev-1", nil)
	req.SetPathValue("id", "ev-1")
	w := httptest.NewRecorder()

	handler.DeleteEvaluation(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, service.stored)
}

func TestEvaluationHandler_ListEvaluations(t *testing.T) {
	service := newStubEvaluationService()
	service.stored["ev-1"] = &entities.Evaluation{ID: "ev-1"}
	handler := handlers.NewEvaluationHandler(service)

	t.Run("passes filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations?company=acme&limit=10&offset=20", nil)
		w := httptest.NewRecorder()

		handler.ListEvaluations(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, repositories.EvaluationFilter{CompanyName: "acme", Limit: 10, Offset: 20}, service.lastFilter)

		var response map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations?limit=-1", nil)
		w := httptest.NewRecorder()

		handler.ListEvaluations(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
