package domain

import "time"

type CalculationMethod string

const (
	MethodConfigured CalculationMethod = "configured"
	MethodFallback   CalculationMethod = "fallback"
)

// ShipmentTariffRequest carries the shipment attributes needed to resolve
// and evaluate a tariff. Weight is optional: nil skips weight filtering.
type ShipmentTariffRequest struct {
	Origin        string
	Destination   string
	DeclaredValue float64
	GoodsCategory string
	PostalService string
	ShipDate      time.Time
	Weight        *float64
}

// ResolutionResult is the outcome of a tariff calculation.
type ResolutionResult struct {
	TariffAmount      float64
	AppliedRate       *TariffRate
	CalculationMethod CalculationMethod
	SpecificityScore  int
}

// Shipment is a processed shipment record. Past shipments feed the
// historical fallback aggregation and the coverage report, and pin the
// rates they reference against hard deletion.
type Shipment struct {
	ID                string
	TrackingNumber    string
	Origin            string
	Destination       string
	GoodsCategory     string
	PostalService     string
	ShipDate          time.Time
	Weight            *float64
	DeclaredValue     float64
	Currency          string
	TariffAmount      *float64
	AppliedRateID     *string
	CalculationMethod CalculationMethod
	CreatedAt         time.Time
}

// Request builds the resolution input for this shipment.
func (s *Shipment) Request() *ShipmentTariffRequest {
	return &ShipmentTariffRequest{
		Origin:        s.Origin,
		Destination:   s.Destination,
		DeclaredValue: s.DeclaredValue,
		GoodsCategory: s.GoodsCategory,
		PostalService: s.PostalService,
		ShipDate:      s.ShipDate,
		Weight:        s.Weight,
	}
}

// RouteTotals aggregates shipment history for one route.
type RouteTotals struct {
	TotalDeclaredValue float64
	TotalTariffAmount  float64
}
