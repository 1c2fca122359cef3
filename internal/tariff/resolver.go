// Package tariff implements the rate resolution, conflict validation and
// evaluation engine. All functions are pure: they operate on rate slices
// fetched by the caller and never touch storage.
package tariff

import (
	"github.com/airmailops/tariff-service/internal/domain"
)

// Resolve filters the given rates down to those applicable to the request
// and returns the most specific one. Returns nil when nothing applies,
// which hands the request to the fallback estimator.
//
// Tie-break among equally specific candidates: earliest CreatedAt wins,
// then lowest ID. Resolution is therefore deterministic for fixed store
// content.
func Resolve(rates []*domain.TariffRate, req *domain.ShipmentTariffRequest) *domain.TariffRate {
	var best *domain.TariffRate
	bestScore := -1

	for _, rate := range rates {
		if !rate.Active {
			continue
		}
		if rate.Origin != req.Origin || rate.Destination != req.Destination {
			continue
		}
		if !rate.MatchesCriteria(req.GoodsCategory, req.PostalService) {
			continue
		}
		if !rate.ContainsDate(req.ShipDate) {
			continue
		}
		if req.Weight != nil && !rate.ContainsWeight(*req.Weight) {
			continue
		}

		score := rate.SpecificityScore()
		if score > bestScore {
			best, bestScore = rate, score
			continue
		}
		if score == bestScore && olderThan(rate, best) {
			best = rate
		}
	}

	return best
}

func olderThan(a, b *domain.TariffRate) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
