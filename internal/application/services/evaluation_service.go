package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

const evaluationCachePrefix = "evaluation"

// EvaluationService manages stored evaluations. Derived results are
// recomputed from the agent list on every save and never accepted from callers.
type EvaluationService struct {
	repo        repositories.EvaluationRepository
	assessments *AssessmentService
	eventBus    providers.EventBus
	cache       providers.CacheProvider
	metrics     *observability.Metrics
	cacheTTL    int
	now         func() time.Time
	newID       func() string
}

// NewEvaluationService creates a new evaluation service. A nil repo makes
// every operation fail as unavailable. eventBus and cache may be nil.
func NewEvaluationService(
	repo repositories.EvaluationRepository,
	assessments *AssessmentService,
	eventBus providers.EventBus,
	cache providers.CacheProvider,
	cacheTTL int,
) *EvaluationService {
	return &EvaluationService{
		repo:        repo,
		assessments: assessments,
		eventBus:    eventBus,
		cache:       cache,
		metrics:     assessments.metrics,
		cacheTTL:    cacheTTL,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Create stores a new evaluation
func (s *EvaluationService) Create(ctx context.Context, evaluation *entities.Evaluation) (*entities.Evaluation, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, apperrors.NewValidationError("evaluation body is required")
	}

	now := s.now().UTC()
	evaluation.ID = s.newID()
	evaluation.CreatedAt = now
	evaluation.UpdatedAt = now

	if err := s.prepare(ctx, evaluation, evaluation.SelectedAgentIDs()); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, evaluation); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("evaluation_id", evaluation.ID).
		Int("agents", len(evaluation.Agents)).
		Msg("evaluation created")
	s.publish(ctx, evaluation, entities.EvaluationEventCreated)
	return evaluation, nil
}

// GetByID retrieves an evaluation, reading through the cache
func (s *EvaluationService) GetByID(ctx context.Context, id string) (*entities.Evaluation, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	key := evaluationCacheKey(id)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var cached entities.Evaluation
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.RecordCacheHit(ctx, s.metrics, evaluationCachePrefix)
				return &cached, nil
			}
		} else if !errors.Is(err, providers.ErrCacheMiss) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("evaluation cache read failed")
		}
		observability.RecordCacheMiss(ctx, s.metrics, evaluationCachePrefix)
	}

	evaluation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(evaluation); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
				observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("evaluation cache write failed")
			}
		}
	}
	return evaluation, nil
}

// Update replaces the editable content of a stored evaluation. When the
// caller sends no hierarchy, the stored selection is kept.
func (s *EvaluationService) Update(ctx context.Context, id string, evaluation *entities.Evaluation) (*entities.Evaluation, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, apperrors.NewValidationError("evaluation body is required")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	selection := evaluation.SelectedAgentIDs()
	if evaluation.HierarchyResults == nil {
		selection = existing.SelectedAgentIDs()
	}

	evaluation.ID = existing.ID
	evaluation.CreatedAt = existing.CreatedAt
	evaluation.UpdatedAt = s.now().UTC()

	if err := s.prepare(ctx, evaluation, selection); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, evaluation); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	observability.LoggerFromContext(ctx).Info().Str("evaluation_id", id).Int("step", evaluation.CurrentStep).Msg("evaluation updated")
	s.publish(ctx, evaluation, entities.EvaluationEventUpdated)
	return evaluation, nil
}

// Delete removes a stored evaluation
func (s *EvaluationService) Delete(ctx context.Context, id string) error {
	if err := s.available(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	observability.LoggerFromContext(ctx).Info().Str("evaluation_id", id).Msg("evaluation deleted")
	s.publish(ctx, &entities.Evaluation{ID: id}, entities.EvaluationEventDeleted)
	return nil
}

// List retrieves stored evaluations, most recently updated first
func (s *EvaluationService) List(ctx context.Context, filter repositories.EvaluationFilter) ([]*entities.Evaluation, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// prepare applies defaults, runs the gates of every completed wizard step and
// regenerates the derived results.
func (s *EvaluationService) prepare(ctx context.Context, evaluation *entities.Evaluation, selection []string) error {
	if evaluation.Mode == "" {
		evaluation.Mode = entities.EvaluationModeManual
	}
	if evaluation.CurrentStep < 1 {
		evaluation.CurrentStep = 1
	}

	if err := validateAgentIDs(evaluation.Agents); err != nil {
		return err
	}
	for step := 1; step < evaluation.CurrentStep; step++ {
		// the selection gate needs the regenerated hierarchy
		if step == 3 {
			continue
		}
		if err := ValidateStep(step, evaluation); err != nil {
			return err
		}
	}

	assessment, err := s.assessments.compute(ctx, AssessmentRequest{
		Agents:           evaluation.Agents,
		SelectedAgentIDs: selection,
		ParetoThreshold:  s.assessments.paretoThreshold,
	})
	if err != nil {
		return err
	}

	evaluation.HierarchyResults = assessment.Hierarchy
	evaluation.InhalationResults = assessment.Inhalation
	evaluation.DermalResults = assessment.Dermal
	evaluation.Alerts = assessment.Alerts

	if evaluation.CurrentStep > 3 {
		return ValidateSelection(evaluation)
	}
	return nil
}

func (s *EvaluationService) available() error {
	if s.repo == nil {
		return apperrors.NewUnavailableError("evaluation storage is not configured")
	}
	return nil
}

func (s *EvaluationService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, evaluationCacheKey(id)); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("evaluation_id", id).Msg("failed to invalidate evaluation cache")
	}
}

// publish announces a change on the global and the per-evaluation channel. Failures are logged only.
func (s *EvaluationService) publish(ctx context.Context, evaluation *entities.Evaluation, eventType entities.EvaluationEventType) {
	if s.eventBus == nil {
		return
	}

	high := 0
	for _, r := range evaluation.HierarchyResults {
		if r.Priority == entities.PriorityHigh {
			high++
		}
	}
	event := &entities.EvaluationEvent{
		ID:           s.newID(),
		EvaluationID: evaluation.ID,
		EventType:    eventType,
		CompanyName:  evaluation.Project.CompanyName,
		AgentCount:   len(evaluation.Agents),
		HighPriority: high,
		Timestamp:    s.now().UTC(),
	}

	for _, channel := range []string{providers.EventChannelEvaluations, providers.GetEvaluationChannel(evaluation.ID)} {
		if err := s.eventBus.Publish(ctx, channel, event); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("channel", channel).Msg("failed to publish evaluation event")
		}
	}
}

func evaluationCacheKey(id string) string {
	return evaluationCachePrefix + ":" + id
}
