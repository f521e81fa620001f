package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
)

// MemoryEventBus is an in-process EventBus for single-instance deployments without Redis
type MemoryEventBus struct {
	mu          sync.Mutex
	subscribers map[string]map[chan *entities.EvaluationEvent]struct{}
	closed      bool
}

// NewMemoryEventBus creates an in-process event bus
func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{
		subscribers: make(map[string]map[chan *entities.EvaluationEvent]struct{}),
	}
}

var _ providers.EventBus = (*MemoryEventBus)(nil)

// Publish delivers the event to every current subscriber of channel without blocking
func (b *MemoryEventBus) Publish(ctx context.Context, channel string, event *entities.EvaluationEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			log.Warn().Str("channel", channel).Str("event_id", event.ID).Msg("subscriber channel full, skipping event")
		}
	}
	return nil
}

// Subscribe registers a buffered subscriber that is removed when ctx is done
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.EvaluationEvent, error) {
	eventChan := make(chan *entities.EvaluationEvent, 100)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(eventChan)
		return eventChan, nil
	}
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.EvaluationEvent]struct{})
	}
	b.subscribers[channel][eventChan] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, eventChan)
	}()

	return eventChan, nil
}

func (b *MemoryEventBus) removeSubscriber(channel string, eventChan chan *entities.EvaluationEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers := b.subscribers[channel]
	if _, ok := subscribers[eventChan]; !ok {
		return
	}
	delete(subscribers, eventChan)
	close(eventChan)
	if len(subscribers) == 0 {
		delete(b.subscribers, channel)
	}
}

// Unsubscribe drops every subscriber of channel
func (b *MemoryEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		close(subscriber)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close drops every subscription. Later subscriptions receive a closed channel.
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for channel, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
		delete(b.subscribers, channel)
	}
	b.closed = true
	return nil
}
