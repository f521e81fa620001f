package providers

import (
	"context"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to evaluation events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.EvaluationEvent) error

	// Subscribe subscribes to events on a channel until ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.EvaluationEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelEvaluations carries every evaluation change
	EventChannelEvaluations = "evaluations:updates"

	// EventChannelEvaluationPrefix is the prefix for evaluation-specific channels
	EventChannelEvaluationPrefix = "evaluation:"
)

// GetEvaluationChannel returns the channel name for a specific evaluation
func GetEvaluationChannel(evaluationID string) string {
	return EventChannelEvaluationPrefix + evaluationID
}
