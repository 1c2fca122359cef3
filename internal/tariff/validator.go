package tariff

import (
	"fmt"

	"github.com/airmailops/tariff-service/internal/domain"
)

// CheckStructural enforces the structural constraints every rate must
// satisfy before any conflict check or write: route endpoints present,
// start_date <= end_date, 0 <= min_weight <= max_weight, sane fraction and
// clamps. Returns the first violation as a *domain.ValidationError.
func CheckStructural(rate *domain.TariffRate) error {
	if rate.Origin == "" {
		return &domain.ValidationError{Field: "origin", Reason: "required"}
	}
	if rate.Destination == "" {
		return &domain.ValidationError{Field: "destination", Reason: "required"}
	}
	if rate.StartDate.After(rate.EndDate) {
		return &domain.ValidationError{Field: "date range", Reason: "start date after end date"}
	}
	if rate.MinWeight < 0 {
		return &domain.ValidationError{Field: "weight range", Reason: "negative minimum weight"}
	}
	if rate.MinWeight > rate.MaxWeight {
		return &domain.ValidationError{Field: "weight range", Reason: "minimum weight above maximum"}
	}
	if rate.RateFraction < 0 {
		return &domain.ValidationError{Field: "rate fraction", Reason: "negative"}
	}
	if rate.MinimumTariff < 0 {
		return &domain.ValidationError{Field: "minimum tariff", Reason: "negative"}
	}
	if rate.MaximumTariff != nil && *rate.MaximumTariff < rate.MinimumTariff {
		return &domain.ValidationError{Field: "maximum tariff", Reason: "below minimum tariff"}
	}
	return nil
}

// conflicts reports whether two rates can both match some (date, weight)
// point. Category and service are compared literally: only identically
// scoped rules are ambiguous, a wildcard beside an exact rule is resolved
// by specificity.
func conflicts(a, b *domain.TariffRate) bool {
	if !a.Active || !b.Active {
		return false
	}
	if a.Origin != b.Origin || a.Destination != b.Destination {
		return false
	}
	if a.GoodsCategory != b.GoodsCategory || a.PostalService != b.PostalService {
		return false
	}
	return a.OverlapsDates(b) && a.OverlapsWeights(b)
}

// Conflicts checks a candidate against existing rates and returns every
// overlapping active rate of identical scope. excludeID skips the
// candidate's own stored record on update.
func Conflicts(candidate *domain.TariffRate, existing []*domain.TariffRate, excludeID string) []domain.RateConflict {
	var found []domain.RateConflict
	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if conflicts(candidate, other) {
			found = append(found, conflictOf(other))
		}
	}
	return found
}

// ConflictsBatch validates candidates against the existing rates and
// against each other with the same overlap predicate. A candidate only
// reports peers that precede it, so each pairwise overlap appears once.
func ConflictsBatch(candidates []*domain.TariffRate, existing []*domain.TariffRate) []domain.BatchConflict {
	var results []domain.BatchConflict
	for i, cand := range candidates {
		found := Conflicts(cand, existing, cand.ID)
		for j := 0; j < i; j++ {
			if conflicts(cand, candidates[j]) {
				peer := conflictOf(candidates[j])
				if peer.RateID == "" {
					peer.RateID = fmt.Sprintf("candidate-%d", j)
				}
				found = append(found, peer)
			}
		}
		if len(found) > 0 {
			results = append(results, domain.BatchConflict{CandidateIndex: i, Conflicts: found})
		}
	}
	return results
}

func conflictOf(rate *domain.TariffRate) domain.RateConflict {
	return domain.RateConflict{
		RateID:       rate.ID,
		StartDate:    rate.StartDate,
		EndDate:      rate.EndDate,
		MinWeight:    rate.MinWeight,
		MaxWeight:    rate.MaxWeight,
		RateFraction: rate.RateFraction,
	}
}
