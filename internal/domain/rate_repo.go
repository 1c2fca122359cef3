package domain

import "context"

// TariffRateRepository is the rate store. CreateRate and UpdateRate are
// conflict-gated and atomic: the overlap check and the write happen under a
// lock keyed by the route, so two concurrent writers cannot both pass
// validation against a stale snapshot. Both return *ConflictError when the
// candidate overlaps an existing active rate.
type TariffRateRepository interface {
	CreateRate(ctx context.Context, rate *TariffRate) error
	UpdateRate(ctx context.Context, rate *TariffRate) error
	GetRateByID(ctx context.Context, rateID string) (*TariffRate, error)
	GetActiveRatesByRoute(ctx context.Context, origin, destination string) ([]*TariffRate, error)
	GetActiveRates(ctx context.Context) ([]*TariffRate, error)
	GetRateRecords(ctx context.Context, page, limit int32) ([]*TariffRate, int64, error)
	DeactivateRate(ctx context.Context, rateID string) error
	DeleteRate(ctx context.Context, rateID string) error
}

// ShipmentRepository stores processed shipments and serves the read-only
// aggregations used by the fallback estimator and the coverage reporter.
type ShipmentRepository interface {
	SaveShipment(ctx context.Context, shipment *Shipment) error
	GetShipmentByID(ctx context.Context, shipmentID string) (*Shipment, error)
	GetShipmentsByIDs(ctx context.Context, shipmentIDs []string) ([]*Shipment, error)
	GetUncalculatedShipments(ctx context.Context) ([]*Shipment, error)
	UpdateCalculation(ctx context.Context, shipmentID string, result *ResolutionResult) error
	RouteTotals(ctx context.Context, origin, destination string) (*RouteTotals, error)
	DistinctRoutes(ctx context.Context) ([]RouteShipments, error)
	CountByAppliedRate(ctx context.Context, rateID string) (int64, error)
}

// SystemConfigRepository holds system-wide parameters. FallbackRate is the
// single source of the default tariff fraction: implementations seed it on
// first read so the value never lives as a scattered literal.
type SystemConfigRepository interface {
	FallbackRate(ctx context.Context) (float64, error)
	SetFallbackRate(ctx context.Context, rate float64) error
}
