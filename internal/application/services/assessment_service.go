package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/engine"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/config"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

const assessmentCachePrefix = "assessment"

// AssessmentRequest is the input of a full assessment
type AssessmentRequest struct {
	Agents           []entities.ChemicalAgent `json:"agents"`
	SelectedAgentIDs []string                 `json:"selected_agent_ids,omitempty"`
	ParetoThreshold  float64                  `json:"pareto_threshold,omitempty"`
}

// AssessmentService runs the scoring engine over an agent list. Results are
// cached by request content, since the engine is a pure function of it.
type AssessmentService struct {
	cache           providers.CacheProvider
	metrics         *observability.Metrics
	cacheTTL        int
	paretoThreshold float64
	workers         int
	now             func() time.Time
}

// NewAssessmentService creates a new assessment service. cache and metrics may be nil.
func NewAssessmentService(cache providers.CacheProvider, metrics *observability.Metrics, cfg config.AssessmentConfig) *AssessmentService {
	threshold := cfg.ParetoThresholdPercent
	if threshold <= 0 {
		threshold = engine.DefaultParetoThreshold
	}
	return &AssessmentService{
		cache:           cache,
		metrics:         metrics,
		cacheTTL:        cfg.CacheTTLSeconds,
		paretoThreshold: threshold,
		workers:         max(cfg.Workers, 1),
		now:             time.Now,
	}
}

// Assess computes the hierarchy, the Pareto set, detailed inhalation and
// dermal results for the selected agents, alerts for every agent and the summary.
func (s *AssessmentService) Assess(ctx context.Context, req AssessmentRequest) (*entities.Assessment, error) {
	ctx, span := observability.StartSpan(ctx, "AssessmentService.Assess")
	defer span.End()
	observability.SetSpanAttributes(span, attribute.Int("assessment.agents", len(req.Agents)))

	if err := validateAgentIDs(req.Agents); err != nil {
		return nil, err
	}
	if req.ParetoThreshold <= 0 {
		req.ParetoThreshold = s.paretoThreshold
	}

	logger := observability.LoggerFromContext(ctx)
	key, err := cacheKey(req)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build assessment cache key", err)
	}

	if cached, ok := s.fromCache(ctx, key); ok {
		logger.Debug().Str("cache_key", key).Msg("assessment served from cache")
		return cached, nil
	}

	start := time.Now()
	assessment, err := s.compute(ctx, req)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	observability.RecordAssessment(ctx, s.metrics, len(req.Agents), alertCounts(assessment.Alerts), time.Since(start))

	s.toCache(ctx, key, assessment)

	logger.Info().
		Int("agents", len(req.Agents)).
		Int("detailed", len(assessment.Inhalation)).
		Int("alerts", len(assessment.Alerts)).
		Dur("duration", time.Since(start)).
		Msg("assessment computed")
	return assessment, nil
}

// Hierarchy ranks agents by potential risk
func (s *AssessmentService) Hierarchy(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.HierarchyResult, error) {
	if err := validateAgentIDs(agents); err != nil {
		return nil, err
	}
	return engine.ComputeHierarchy(agents), nil
}

// Inhalation evaluates the inhalation risk of every agent
func (s *AssessmentService) Inhalation(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.InhalationResult, error) {
	if err := validateAgentIDs(agents); err != nil {
		return nil, err
	}
	return engine.EvaluateAllInhalation(agents), nil
}

// Dermal evaluates the dermal risk of the agents the pathway applies to
func (s *AssessmentService) Dermal(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.DermalResult, error) {
	if err := validateAgentIDs(agents); err != nil {
		return nil, err
	}
	return engine.EvaluateAllDermal(agents), nil
}

// Alerts generates the special-case alerts of every agent
func (s *AssessmentService) Alerts(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.Alert, error) {
	if err := validateAgentIDs(agents); err != nil {
		return nil, err
	}
	return engine.GenerateAllAlerts(agents), nil
}

// compute runs the engine. The hierarchy is a barrier: detailed evaluation
// only starts once the ranking over the whole inventory is known.
func (s *AssessmentService) compute(ctx context.Context, req AssessmentRequest) (*entities.Assessment, error) {
	hierarchy := engine.ComputeHierarchy(req.Agents)
	if len(req.SelectedAgentIDs) > 0 {
		hierarchy = engine.MarkSelected(hierarchy, req.SelectedAgentIDs)
	}
	selected := engine.SelectForDetailedEvaluation(req.Agents, hierarchy, req.SelectedAgentIDs)

	inhalation := make([]entities.InhalationResult, len(selected))
	dermalSlots := make([]*entities.DermalResult, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, agent := range selected {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			inhalation[i] = engine.EvaluateInhalationRisk(agent)
			if result, ok := engine.EvaluateDermalRisk(agent); ok {
				dermalSlots[i] = &result
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewInternalError("assessment interrupted", err)
	}

	dermal := make([]entities.DermalResult, 0, len(selected))
	for _, d := range dermalSlots {
		if d != nil {
			dermal = append(dermal, *d)
		}
	}
	alerts := engine.GenerateAllAlerts(req.Agents)

	return &entities.Assessment{
		Hierarchy:      hierarchy,
		ParetoAgentIDs: engine.ParetoSet(hierarchy, req.ParetoThreshold),
		Inhalation:     inhalation,
		Dermal:         dermal,
		Alerts:         alerts,
		Summary:        engine.Summarize(inhalation, dermal, alerts),
		ComputedAt:     s.now().UTC(),
	}, nil
}

func (s *AssessmentService) fromCache(ctx context.Context, key string) (*entities.Assessment, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, providers.ErrCacheMiss) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("assessment cache read failed")
		}
		observability.RecordCacheMiss(ctx, s.metrics, assessmentCachePrefix)
		return nil, false
	}

	var assessment entities.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("discarding undecodable cached assessment")
		observability.RecordCacheMiss(ctx, s.metrics, assessmentCachePrefix)
		return nil, false
	}

	observability.RecordCacheHit(ctx, s.metrics, assessmentCachePrefix)
	return &assessment, true
}

func (s *AssessmentService) toCache(ctx context.Context, key string, assessment *entities.Assessment) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(assessment)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to encode assessment for cache")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("cache_key", key).Msg("assessment cache write failed")
	}
}

func cacheKey(req AssessmentRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return assessmentCachePrefix + ":" + hex.EncodeToString(sum[:]), nil
}

// validateAgentIDs requires every agent to carry a unique, non-empty id
func validateAgentIDs(agents []entities.ChemicalAgent) error {
	var details []string
	seen := make(map[string]struct{}, len(agents))
	for i, a := range agents {
		if a.ID == "" {
			details = append(details, fmt.Sprintf("agent %d: id is required", i+1))
			continue
		}
		if _, dup := seen[a.ID]; dup {
			details = append(details, fmt.Sprintf("agent %d: duplicate id %q", i+1, a.ID))
			continue
		}
		seen[a.ID] = struct{}{}
	}
	return validationResult("invalid agent list", details)
}

func alertCounts(alerts []entities.Alert) map[string]int {
	counts := make(map[string]int)
	for _, a := range alerts {
		counts[string(a.Type)]++
	}
	return counts
}
