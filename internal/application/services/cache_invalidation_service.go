package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
)

// CacheInvalidationService drops cached evaluations when any instance changes them
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start begins listening for evaluation events
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelEvaluations)
	if err != nil {
		return fmt.Errorf("failed to subscribe to evaluation updates: %w", err)
	}

	go s.processEvents(eventChan)
	log.Info().Msg("cache invalidation service started")
	return nil
}

// Stop stops the service and waits for the event loop to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	<-s.done
	log.Info().Msg("cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.EvaluationEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

// handleEvent drops the cached copy of a changed evaluation. Creations have nothing cached yet.
func (s *CacheInvalidationService) handleEvent(event *entities.EvaluationEvent) {
	if event.EventType == entities.EvaluationEventCreated {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.InvalidateEvaluation(ctx, event.EvaluationID); err != nil {
		log.Warn().Err(err).Str("evaluation_id", event.EvaluationID).Msg("failed to invalidate evaluation cache")
		return
	}
	log.Debug().Str("evaluation_id", event.EvaluationID).Str("event_type", string(event.EventType)).Msg("invalidated evaluation cache")
}

// InvalidateEvaluation deletes the cached copy of one evaluation
func (s *CacheInvalidationService) InvalidateEvaluation(ctx context.Context, evaluationID string) error {
	if err := s.cache.Delete(ctx, evaluationCacheKey(evaluationID)); err != nil {
		return fmt.Errorf("failed to invalidate evaluation %s: %w", evaluationID, err)
	}
	return nil
}
