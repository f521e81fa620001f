package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/application/services"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

func newEvaluationService(repo repositories.EvaluationRepository, bus providers.EventBus, cache providers.CacheProvider) *services.EvaluationService {
	assessments := services.NewAssessmentService(nil, nil, assessmentConfig())
	return services.NewEvaluationService(repo, assessments, bus, cache, 60)
}

func TestEvaluationService_Create(t *testing.T) {
	t.Run("stores evaluation with derived results", func(t *testing.T) {
		// Arrange
		repo := new(MockEvaluationRepository)
		bus := NewMockEventBus()
		service := newEvaluationService(repo, bus, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Evaluation")).Return(nil)

		input := &entities.Evaluation{
			ID:          "client-chosen",
			Project:     validProject(),
			Agents:      inventory(),
			CurrentStep: 2,
			// stale derived data from the caller is discarded
			InhalationResults: []entities.InhalationResult{{AgentID: "ghost"}},
		}

		// Act
		created, err := service.Create(context.Background(), input)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, "client-chosen", created.ID)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Equal(t, entities.EvaluationModeManual, created.Mode)
		assert.Len(t, created.HierarchyResults, 3)
		assert.Len(t, created.InhalationResults, 3)
		assert.Len(t, created.DermalResults, 1)
		assert.Len(t, created.Alerts, 2)
		repo.AssertExpectations(t)

		global := bus.Published(providers.EventChannelEvaluations)
		require.Len(t, global, 1)
		assert.Equal(t, entities.EvaluationEventCreated, global[0].EventType)
		assert.Equal(t, created.ID, global[0].EvaluationID)
		assert.Equal(t, 3, global[0].AgentCount)
		assert.Equal(t, 1, global[0].HighPriority)
		assert.Len(t, bus.Published(providers.GetEvaluationChannel(created.ID)), 1)
	})

	t.Run("draft on first step skips validation", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := service.Create(context.Background(), &entities.Evaluation{})

		require.NoError(t, err)
		assert.Equal(t, 1, created.CurrentStep)
		assert.Empty(t, created.HierarchyResults)
	})

	t.Run("completed steps are validated", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)

		_, err := service.Create(context.Background(), &entities.Evaluation{
			Agents:      inventory(),
			CurrentStep: 2,
		})

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Details, "El nombre de la empresa es obligatorio.")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("past selection step requires a selection", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)

		_, err := service.Create(context.Background(), &entities.Evaluation{
			Project:     validProject(),
			Agents:      inventory(),
			CurrentStep: 4,
		})

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{"Selecciona al menos un agente para la evaluación detallada."}, appErr.Details)
	})

	t.Run("selection flags flow into detailed results", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := service.Create(context.Background(), &entities.Evaluation{
			Project:          validProject(),
			Agents:           inventory(),
			CurrentStep:      4,
			HierarchyResults: []entities.HierarchyResult{{AgentID: "c", Selected: true}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, created.SelectedAgentIDs())
		require.Len(t, created.InhalationResults, 1)
		assert.Equal(t, "c", created.InhalationResults[0].AgentID)
		assert.Empty(t, created.DermalResults)
	})

	t.Run("no storage configured", func(t *testing.T) {
		service := newEvaluationService(nil, nil, nil)

		_, err := service.Create(context.Background(), &entities.Evaluation{})

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnavailable))
	})
}

func TestEvaluationService_Update(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := func() *entities.Evaluation {
		return &entities.Evaluation{
			ID:               "ev-1",
			Project:          validProject(),
			Agents:           inventory(),
			CurrentStep:      3,
			CreatedAt:        created,
			UpdatedAt:        created,
			HierarchyResults: []entities.HierarchyResult{{AgentID: "b", Selected: true}},
		}
	}

	t.Run("keeps stored selection and creation time", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		cache := NewMockCacheProvider()
		bus := NewMockEventBus()
		service := newEvaluationService(repo, bus, cache)
		repo.On("GetByID", mock.Anything, "ev-1").Return(stored(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := service.Update(context.Background(), "ev-1", &entities.Evaluation{
			Project:     validProject(),
			Agents:      inventory(),
			CurrentStep: 4,
		})

		require.NoError(t, err)
		assert.Equal(t, "ev-1", updated.ID)
		assert.Equal(t, created, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created))
		assert.Equal(t, []string{"b"}, updated.SelectedAgentIDs())
		require.Len(t, updated.InhalationResults, 1)
		assert.Equal(t, "b", updated.InhalationResults[0].AgentID)
		assert.Contains(t, cache.deleted, "evaluation:ev-1")

		events := bus.Published(providers.GetEvaluationChannel("ev-1"))
		require.Len(t, events, 1)
		assert.Equal(t, entities.EvaluationEventUpdated, events[0].EventType)
	})

	t.Run("explicit empty hierarchy clears the selection", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)
		repo.On("GetByID", mock.Anything, "ev-1").Return(stored(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := service.Update(context.Background(), "ev-1", &entities.Evaluation{
			Project:          validProject(),
			Agents:           inventory(),
			CurrentStep:      3,
			HierarchyResults: []entities.HierarchyResult{},
		})

		require.NoError(t, err)
		assert.Empty(t, updated.SelectedAgentIDs())
		assert.Len(t, updated.InhalationResults, 3)
	})

	t.Run("unknown evaluation", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)
		repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("evaluation not found"))

		_, err := service.Update(context.Background(), "missing", &entities.Evaluation{})

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestEvaluationService_GetByID(t *testing.T) {
	t.Run("reads through the cache", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		cache := NewMockCacheProvider()
		service := newEvaluationService(repo, nil, cache)
		repo.On("GetByID", mock.Anything, "ev-1").Return(&entities.Evaluation{ID: "ev-1", Project: validProject()}, nil).Once()

		first, err := service.GetByID(context.Background(), "ev-1")
		require.NoError(t, err)
		second, err := service.GetByID(context.Background(), "ev-1")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Acme Química", second.Project.CompanyName)
		repo.AssertNumberOfCalls(t, "GetByID", 1)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := new(MockEvaluationRepository)
		service := newEvaluationService(repo, nil, nil)
		repo.On("GetByID", mock.Anything, "nope").Return(nil, apperrors.NewNotFoundError("evaluation not found"))

		_, err := service.GetByID(context.Background(), "nope")

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}

func TestEvaluationService_Delete(t *testing.T) {
	repo := new(MockEvaluationRepository)
	cache := NewMockCacheProvider()
	bus := NewMockEventBus()
	service := newEvaluationService(repo, bus, cache)
	repo.On("Delete", mock.Anything, "ev-1").Return(nil)

	require.NoError(t, service.Delete(context.Background(), "ev-1"))

	assert.Contains(t, cache.deleted, "evaluation:ev-1")
	events := bus.Published(providers.EventChannelEvaluations)
	require.Len(t, events, 1)
	assert.Equal(t, entities.EvaluationEventDeleted, events[0].EventType)
}

func TestEvaluationService_List(t *testing.T) {
	repo := new(MockEvaluationRepository)
	service := newEvaluationService(repo, nil, nil)
	filter := repositories.EvaluationFilter{CompanyName: "acme", Limit: 5}
	repo.On("List", mock.Anything, filter).Return([]*entities.Evaluation{{ID: "ev-1"}}, nil)

	got, err := service.List(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
}
