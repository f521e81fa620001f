package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
)

const heartbeatInterval = 30 * time.Second

// SSEHandler streams evaluation change events over Server-Sent Events
type SSEHandler struct {
	eventBus  providers.EventBus
	clients   map[string]map[chan *entities.EvaluationEvent]bool // channel -> clients
	mu        sync.RWMutex
	heartbeat time.Duration
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{
		eventBus:  eventBus,
		clients:   make(map[string]map[chan *entities.EvaluationEvent]bool),
		heartbeat: heartbeatInterval,
	}
}

// StreamEvaluationUpdates handles SSE connections for a single evaluation
// GET /api/evaluations/{id}/events
func (h *SSEHandler) StreamEvaluationUpdates(w http.ResponseWriter, r *http.Request) {
	evaluationID := r.PathValue("id")
	if evaluationID == "" {
		respondWithError(w, http.StatusBadRequest, "evaluation ID is required")
		return
	}

	h.stream(w, r, providers.GetEvaluationChannel(evaluationID), map[string]interface{}{
		"evaluation_id": evaluationID,
	})
}

// StreamAllUpdates handles SSE connections for every evaluation change
// GET /api/evaluations/events
func (h *SSEHandler) StreamAllUpdates(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelEvaluations, map[string]interface{}{})
}

func (h *SSEHandler) stream(w http.ResponseWriter, r *http.Request, channel string, hello map[string]interface{}) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}
	logger := observability.LoggerFromContext(r.Context())

	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		logger.Error().Err(err).Str("channel", channel).Msg("failed to subscribe")
		respondWithError(w, http.StatusServiceUnavailable, "event stream unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan *entities.EvaluationEvent, 10)
	h.registerClient(channel, clientChan)
	defer h.unregisterClient(channel, clientChan)

	hello["timestamp"] = time.Now()
	h.sendEvent(w, "connected", hello)
	flusher.Flush()

	go h.forwardEvents(r.Context(), eventChan, clientChan)

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug().Str("channel", channel).Msg("client disconnected")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event := <-clientChan:
			if event == nil {
				continue
			}
			h.sendEvent(w, string(event.EventType), event)
			flusher.Flush()
		}
	}
}

// forwardEvents forwards events from the event bus to a client channel
func (h *SSEHandler) forwardEvents(ctx context.Context, eventChan <-chan *entities.EvaluationEvent, clientChan chan<- *entities.EvaluationEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			select {
			case clientChan <- event:
			default:
				// slow client, drop
			}
		}
	}
}

func (h *SSEHandler) registerClient(channel string, clientChan chan *entities.EvaluationEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[channel] == nil {
		h.clients[channel] = make(map[chan *entities.EvaluationEvent]bool)
	}
	h.clients[channel][clientChan] = true
	observability.GetLogger().Debug().Str("channel", channel).Int("clients", len(h.clients[channel])).Msg("SSE client registered")
}

func (h *SSEHandler) unregisterClient(channel string, clientChan chan *entities.EvaluationEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, exists := h.clients[channel]; exists {
		delete(clients, clientChan)
		if len(clients) == 0 {
			delete(h.clients, channel)
		}
	}
}

// sendEvent writes one SSE frame
func (h *SSEHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		observability.GetLogger().Error().Err(err).Str("event", eventType).Msg("failed to marshal event data")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}

// GetClientCount returns the number of connected clients
func (h *SSEHandler) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, clients := range h.clients {
		count += len(clients)
	}
	return count
}
