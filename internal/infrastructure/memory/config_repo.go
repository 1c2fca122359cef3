package memory

import (
	"context"
	"sync"

	"github.com/airmailops/tariff-service/internal/tariff"
)

// SystemConfigRepository holds the system-wide default fallback fraction.
type SystemConfigRepository struct {
	mu           sync.RWMutex
	fallbackRate float64
}

// NewSystemConfigRepository seeds the fallback rate; a non-positive seed
// falls back to the compiled default.
func NewSystemConfigRepository(seed float64) *SystemConfigRepository {
	if seed <= 0 {
		seed = tariff.DefaultFallbackRate
	}
	return &SystemConfigRepository{fallbackRate: seed}
}

func (r *SystemConfigRepository) FallbackRate(_ context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallbackRate, nil
}

func (r *SystemConfigRepository) SetFallbackRate(_ context.Context, rate float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbackRate = rate
	return nil
}
