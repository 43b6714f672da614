package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"sync"
)

// MockPredictor returns a fixed function of the vector and records calls.
type MockPredictor struct {
	Fn func(vector domain.FeatureVector) (float64, error)

	mu    sync.Mutex
	calls []domain.FeatureVector
}

func NewMockPredictor(fn func(vector domain.FeatureVector) (float64, error)) *MockPredictor {
	return &MockPredictor{Fn: fn}
}

// NewConstantPredictor always predicts v.
func NewConstantPredictor(v float64) *MockPredictor {
	return NewMockPredictor(func(domain.FeatureVector) (float64, error) { return v, nil })
}

func (p *MockPredictor) Predict(ctx context.Context, vector domain.FeatureVector) (float64, error) {
	p.mu.Lock()
	p.calls = append(p.calls, vector)
	p.mu.Unlock()

	return p.Fn(vector)
}

func (p *MockPredictor) Calls() []domain.FeatureVector {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.FeatureVector(nil), p.calls...)
}
