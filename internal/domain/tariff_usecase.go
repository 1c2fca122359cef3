package domain

import "context"

// BatchStats summarizes a batch recalculation run.
type BatchStats struct {
	JobID          string  `json:"job_id"`
	TotalProcessed int     `json:"total_processed"`
	RatesApplied   int     `json:"rates_applied"`
	FallbackUsed   int     `json:"fallback_used"`
	Errors         int     `json:"errors"`
	TotalTariff    float64 `json:"total_tariff"`
}

type TariffUsecase interface {
	// CalculateTariff resolves and evaluates a tariff without persisting
	// anything.
	CalculateTariff(ctx context.Context, req *ShipmentTariffRequest) (*ResolutionResult, error)
	// ProcessShipment calculates the tariff and records the shipment in
	// history.
	ProcessShipment(ctx context.Context, shipment *Shipment) (*ResolutionResult, error)
	// RecalculateBatch re-resolves tariffs for the given shipments, or for
	// every shipment without a calculated tariff when ids is empty.
	RecalculateBatch(ctx context.Context, shipmentIDs []string) (*BatchStats, error)
}

type CoverageUsecase interface {
	CoverageReport(ctx context.Context) (*CoverageReport, error)
}
