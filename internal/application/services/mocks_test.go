package services_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/providers"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/repositories"
)

// Mocks

type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) Create(ctx context.Context, evaluation *entities.Evaluation) error {
	args := m.Called(ctx, evaluation)
	return args.Error(0)
}

func (m *MockEvaluationRepository) GetByID(ctx context.Context, id string) (*entities.Evaluation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) Update(ctx context.Context, evaluation *entities.Evaluation) error {
	args := m.Called(ctx, evaluation)
	return args.Error(0)
}

func (m *MockEvaluationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEvaluationRepository) List(ctx context.Context, filter repositories.EvaluationFilter) ([]*entities.Evaluation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Evaluation), args.Error(1)
}

// MockCacheProvider is a map-backed cache that records writes and deletes
type MockCacheProvider struct {
	mu      sync.RWMutex
	data    map[string][]byte
	sets    int
	deleted []string
	getErr  error
}

func NewMockCacheProvider() *MockCacheProvider {
	return &MockCacheProvider{data: make(map[string][]byte)}
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return nil, providers.ErrCacheMiss
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *MockCacheProvider) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// MockEventBus records published events per channel
type MockEventBus struct {
	mu        sync.Mutex
	published map[string][]*entities.EvaluationEvent
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{published: make(map[string][]*entities.EvaluationEvent)}
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.EvaluationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published[channel] = append(m.published[channel], event)
	return nil
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.EvaluationEvent, error) {
	ch := make(chan *entities.EvaluationEvent)
	close(ch)
	return ch, nil
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }

func (m *MockEventBus) Close() error { return nil }

func (m *MockEventBus) Published(channel string) []*entities.EvaluationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entities.EvaluationEvent(nil), m.published[channel]...)
}

// Fixtures

func agent(id string, opts ...func(*entities.ChemicalAgent)) entities.ChemicalAgent {
	a := entities.NewChemicalAgent(id)
	a.CommercialName = "Producto " + id
	a.Quantity = 10
	a.BoilingPoint = entities.Float(120)
	a.HPhrases = []string{"H302"}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func validProject() entities.Project {
	return entities.Project{
		CompanyName:    "Acme Química",
		EvaluationDate: "2024-05-01",
		EvaluatorName:  "R. García",
	}
}
