package tariff

import (
	"math"

	"github.com/airmailops/tariff-service/internal/domain"
)

// Evaluate applies a resolved rate to a declared value:
// amount = value * fraction, raised to the minimum tariff, capped at the
// maximum tariff when set, rounded to 2 decimals.
//
// A non-nil weight outside the rate's own bracket should be impossible
// after resolution; it is reported as ErrWeightOutOfRange rather than
// silently priced at zero.
func Evaluate(rate *domain.TariffRate, declaredValue float64, weight *float64) (float64, error) {
	if weight != nil && !rate.ContainsWeight(*weight) {
		return 0, domain.ErrWeightOutOfRange
	}

	amount := declaredValue * rate.RateFraction
	if amount < rate.MinimumTariff {
		amount = rate.MinimumTariff
	}
	if rate.MaximumTariff != nil && amount > *rate.MaximumTariff {
		amount = *rate.MaximumTariff
	}
	return Round2(amount), nil
}

// Round2 rounds to currency minor units.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
