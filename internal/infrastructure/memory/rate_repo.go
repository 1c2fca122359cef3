// Package memory provides in-memory repository implementations. They back
// the test suites and DB-less runs, and honor the same conflict-gate
// atomicity contract as the postgres repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/tariff"
)

type RateRepository struct {
	mu    sync.RWMutex
	rates map[string]*domain.TariffRate
}

func NewRateRepository() *RateRepository {
	return &RateRepository{rates: make(map[string]*domain.TariffRate)}
}

// CreateRate runs the overlap check and the insert under one lock, so
// concurrent writers cannot both pass validation against a stale snapshot.
func (r *RateRepository) CreateRate(_ context.Context, rate *domain.TariffRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conflicts := tariff.Conflicts(rate, r.routeRatesLocked(rate.Origin, rate.Destination), ""); len(conflicts) > 0 {
		return &domain.ConflictError{Conflicts: conflicts}
	}

	r.rates[rate.ID] = cloneRate(rate)
	return nil
}

func (r *RateRepository) UpdateRate(_ context.Context, rate *domain.TariffRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rates[rate.ID]; !exists {
		return domain.ErrRateNotFound
	}
	if conflicts := tariff.Conflicts(rate, r.routeRatesLocked(rate.Origin, rate.Destination), rate.ID); len(conflicts) > 0 {
		return &domain.ConflictError{Conflicts: conflicts}
	}

	r.rates[rate.ID] = cloneRate(rate)
	return nil
}

func (r *RateRepository) GetRateByID(_ context.Context, rateID string) (*domain.TariffRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, exists := r.rates[rateID]
	if !exists {
		return nil, domain.ErrRateNotFound
	}
	return cloneRate(rate), nil
}

func (r *RateRepository) GetActiveRatesByRoute(_ context.Context, origin, destination string) ([]*domain.TariffRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.TariffRate
	for _, rate := range r.routeRatesLocked(origin, destination) {
		result = append(result, cloneRate(rate))
	}
	return result, nil
}

func (r *RateRepository) GetActiveRates(_ context.Context) ([]*domain.TariffRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.TariffRate
	for _, rate := range r.rates {
		if rate.Active {
			result = append(result, cloneRate(rate))
		}
	}
	return result, nil
}

func (r *RateRepository) GetRateRecords(_ context.Context, page, limit int32) ([]*domain.TariffRate, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.TariffRate, 0, len(r.rates))
	for _, rate := range r.rates {
		all = append(all, rate)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	total := int64(len(all))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := int((page - 1) * limit)
	if offset >= len(all) {
		return []*domain.TariffRate{}, total, nil
	}
	end := offset + int(limit)
	if end > len(all) {
		end = len(all)
	}

	pageRates := make([]*domain.TariffRate, 0, end-offset)
	for _, rate := range all[offset:end] {
		pageRates = append(pageRates, cloneRate(rate))
	}
	return pageRates, total, nil
}

func (r *RateRepository) DeactivateRate(_ context.Context, rateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rate, exists := r.rates[rateID]
	if !exists {
		return domain.ErrRateNotFound
	}
	rate.Active = false
	return nil
}

func (r *RateRepository) DeleteRate(_ context.Context, rateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rates[rateID]; !exists {
		return domain.ErrRateNotFound
	}
	delete(r.rates, rateID)
	return nil
}

func (r *RateRepository) routeRatesLocked(origin, destination string) []*domain.TariffRate {
	var result []*domain.TariffRate
	for _, rate := range r.rates {
		if rate.Active && rate.Origin == origin && rate.Destination == destination {
			result = append(result, rate)
		}
	}
	return result
}

func cloneRate(rate *domain.TariffRate) *domain.TariffRate {
	c := *rate
	if rate.MaximumTariff != nil {
		max := *rate.MaximumTariff
		c.MaximumTariff = &max
	}
	return &c
}
