package tariff

import "github.com/airmailops/tariff-service/internal/domain"

// DefaultFallbackRate is the compiled last-resort fraction, used only to
// seed the stored system parameter on first run. Precedence at calculation
// time: per-route historical ratio, then the stored parameter, then this.
const DefaultFallbackRate = 0.8

// FallbackFraction picks the effective fraction for a route with no
// configured rate: the historical tariff/declared ratio when the route has
// usable history, otherwise the system default.
func FallbackFraction(totals *domain.RouteTotals, defaultRate float64) float64 {
	if totals != nil && totals.TotalDeclaredValue > 0 && totals.TotalTariffAmount > 0 {
		return totals.TotalTariffAmount / totals.TotalDeclaredValue
	}
	return defaultRate
}

// EvaluateFallback prices a declared value at the effective fallback
// fraction, rounded to 2 decimals.
func EvaluateFallback(declaredValue, fraction float64) float64 {
	return Round2(declaredValue * fraction)
}
