package domain

import "time"

// Wildcard matches any goods category or postal service.
const Wildcard = "*"

// Default weight bracket. A rate carrying exactly these bounds is treated
// as not weight-specific when scoring.
const (
	DefaultMinWeight = 0.0
	DefaultMaxWeight = 999999.0
)

const DefaultCurrency = "USD"

// TariffRate is a configured tariff rule for a route, scoped by goods
// category, postal service, validity dates and weight bracket. Category and
// service accept the Wildcard sentinel. Date and weight intervals are
// inclusive on both ends.
type TariffRate struct {
	ID             string
	Origin         string
	Destination    string
	GoodsCategory  string
	PostalService  string
	StartDate      time.Time
	EndDate        time.Time
	MinWeight      float64
	MaxWeight      float64
	RateFraction   float64
	MinimumTariff  float64
	MaximumTariff  *float64
	Currency       string
	Active         bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MatchesCriteria reports whether the rate applies to the given category
// and service, honoring wildcards on the rate side.
func (r *TariffRate) MatchesCriteria(goodsCategory, postalService string) bool {
	if r.GoodsCategory != Wildcard && r.GoodsCategory != goodsCategory {
		return false
	}
	if r.PostalService != Wildcard && r.PostalService != postalService {
		return false
	}
	return true
}

// ContainsDate reports whether shipDate falls inside the validity interval.
func (r *TariffRate) ContainsDate(shipDate time.Time) bool {
	return !shipDate.Before(r.StartDate) && !shipDate.After(r.EndDate)
}

// ContainsWeight reports whether weight falls inside the weight bracket.
func (r *TariffRate) ContainsWeight(weight float64) bool {
	return weight >= r.MinWeight && weight <= r.MaxWeight
}

// HasBoundedWeight reports whether the weight bracket was deliberately
// narrowed from the default full range.
func (r *TariffRate) HasBoundedWeight() bool {
	return r.MinWeight != DefaultMinWeight || r.MaxWeight != DefaultMaxWeight
}

// SpecificityScore ranks how narrowly the rate targets a request:
// exact category +2, exact service +1, bounded weight +1.
func (r *TariffRate) SpecificityScore() int {
	score := 0
	if r.GoodsCategory != Wildcard {
		score += 2
	}
	if r.PostalService != Wildcard {
		score++
	}
	if r.HasBoundedWeight() {
		score++
	}
	return score
}

// OverlapsDates reports whether the validity intervals of two rates intersect.
func (r *TariffRate) OverlapsDates(other *TariffRate) bool {
	return !r.StartDate.After(other.EndDate) && !r.EndDate.Before(other.StartDate)
}

// OverlapsWeights reports whether the weight brackets of two rates intersect.
func (r *TariffRate) OverlapsWeights(other *TariffRate) bool {
	return r.MinWeight <= other.MaxWeight && r.MaxWeight >= other.MinWeight
}

// RateConflict identifies an existing active rate whose scope intersects a
// candidate. Returned to the operator so ranges can be narrowed or the
// existing rule deactivated.
type RateConflict struct {
	RateID       string
	StartDate    time.Time
	EndDate      time.Time
	MinWeight    float64
	MaxWeight    float64
	RateFraction float64
}
