package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/kafka"
	"github.com/airmailops/tariff-service/internal/infrastructure/metrics"
	"github.com/airmailops/tariff-service/internal/tariff"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const defaultBatchWorkers = 4

// DefaultTariffUsecase runs the calculation pipeline: resolve against the
// rate store, evaluate the resolved rate, or fall back to the historical
// route ratio / system default when nothing matches.
type DefaultTariffUsecase struct {
	rateRepo     domain.TariffRateRepository
	shipmentRepo domain.ShipmentRepository
	configRepo   domain.SystemConfigRepository
	publisher    domain.PublisherPort
	metrics      *metrics.TariffMetrics
	batchWorkers int
}

func NewDefaultTariffUsecase(
	rateRepo domain.TariffRateRepository,
	shipmentRepo domain.ShipmentRepository,
	configRepo domain.SystemConfigRepository,
	publisher domain.PublisherPort,
	m *metrics.TariffMetrics,
	batchWorkers int,
) *DefaultTariffUsecase {
	if batchWorkers <= 0 {
		batchWorkers = defaultBatchWorkers
	}
	return &DefaultTariffUsecase{
		rateRepo:     rateRepo,
		shipmentRepo: shipmentRepo,
		configRepo:   configRepo,
		publisher:    publisher,
		metrics:      m,
		batchWorkers: batchWorkers,
	}
}

func (uc *DefaultTariffUsecase) CalculateTariff(ctx context.Context, req *domain.ShipmentTariffRequest) (*domain.ResolutionResult, error) {
	start := time.Now()

	rates, err := uc.rateRepo.GetActiveRatesByRoute(ctx, req.Origin, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("loading rates for route: %w", err)
	}

	if rate := tariff.Resolve(rates, req); rate != nil {
		amount, err := tariff.Evaluate(rate, req.DeclaredValue, req.Weight)
		if err != nil {
			return nil, err
		}
		result := &domain.ResolutionResult{
			TariffAmount:      amount,
			AppliedRate:       rate,
			CalculationMethod: domain.MethodConfigured,
			SpecificityScore:  rate.SpecificityScore(),
		}
		uc.metrics.ObserveResolution(string(domain.MethodConfigured), req.Origin, req.Destination, rate.Currency, amount, time.Since(start))
		return result, nil
	}

	// Resolution miss: expected branch, not an error.
	amount, err := uc.fallbackTariff(ctx, req)
	if err != nil {
		return nil, err
	}
	result := &domain.ResolutionResult{
		TariffAmount:      amount,
		AppliedRate:       nil,
		CalculationMethod: domain.MethodFallback,
	}
	uc.metrics.ObserveResolution(string(domain.MethodFallback), req.Origin, req.Destination, domain.DefaultCurrency, amount, time.Since(start))
	return result, nil
}

// fallbackTariff prices a request with no configured rate. Precedence:
// historical route ratio, then the stored system default.
func (uc *DefaultTariffUsecase) fallbackTariff(ctx context.Context, req *domain.ShipmentTariffRequest) (float64, error) {
	totals, err := uc.shipmentRepo.RouteTotals(ctx, req.Origin, req.Destination)
	if err != nil {
		return 0, fmt.Errorf("aggregating route history: %w", err)
	}

	defaultRate, err := uc.configRepo.FallbackRate(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading fallback rate: %w", err)
	}

	fraction := tariff.FallbackFraction(totals, defaultRate)
	return tariff.EvaluateFallback(req.DeclaredValue, fraction), nil
}

func (uc *DefaultTariffUsecase) ProcessShipment(ctx context.Context, shipment *domain.Shipment) (*domain.ResolutionResult, error) {
	result, err := uc.CalculateTariff(ctx, shipment.Request())
	if err != nil {
		return nil, err
	}

	if shipment.ID == "" {
		shipment.ID = uuid.New().String()
	}
	if shipment.CreatedAt.IsZero() {
		shipment.CreatedAt = time.Now()
	}
	if shipment.Currency == "" {
		shipment.Currency = domain.DefaultCurrency
	}
	amount := result.TariffAmount
	shipment.TariffAmount = &amount
	shipment.CalculationMethod = result.CalculationMethod
	if result.AppliedRate != nil {
		rateID := result.AppliedRate.ID
		shipment.AppliedRateID = &rateID
	} else {
		shipment.AppliedRateID = nil
	}

	if err := uc.shipmentRepo.SaveShipment(ctx, shipment); err != nil {
		return nil, fmt.Errorf("saving shipment: %w", err)
	}

	uc.publishTariffEvent(shipment, result)
	return result, nil
}

// RecalculateBatch re-resolves tariffs for many shipments in parallel.
// There is no cross-shipment ordering requirement; each shipment sees a
// best-effort snapshot of the rate table.
func (uc *DefaultTariffUsecase) RecalculateBatch(ctx context.Context, shipmentIDs []string) (*domain.BatchStats, error) {
	start := time.Now()

	genJobID, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	stats := &domain.BatchStats{JobID: genJobID()}

	var shipments []*domain.Shipment
	if len(shipmentIDs) > 0 {
		shipments, err = uc.shipmentRepo.GetShipmentsByIDs(ctx, shipmentIDs)
	} else {
		shipments, err = uc.shipmentRepo.GetUncalculatedShipments(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("loading shipments: %w", err)
	}

	jobs := make(chan *domain.Shipment)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < uc.batchWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for shipment := range jobs {
				result, err := uc.recalculateOne(ctx, shipment)

				mu.Lock()
				stats.TotalProcessed++
				if err != nil {
					stats.Errors++
					mu.Unlock()
					uc.metrics.ObserveBatchShipment("error")
					slog.Error("batch recalculation failed for shipment",
						"job_id", stats.JobID, "shipment_id", shipment.ID, "error", err.Error())
					continue
				}
				stats.TotalTariff += result.TariffAmount
				if result.CalculationMethod == domain.MethodConfigured {
					stats.RatesApplied++
				} else {
					stats.FallbackUsed++
				}
				mu.Unlock()
				uc.metrics.ObserveBatchShipment(string(result.CalculationMethod))
			}
		}()
	}

	for _, shipment := range shipments {
		if ctx.Err() != nil {
			break
		}
		jobs <- shipment
	}
	close(jobs)
	wg.Wait()

	stats.TotalTariff = tariff.Round2(stats.TotalTariff)
	uc.metrics.ObserveBatchDuration("recalculate", time.Since(start))
	slog.Info("batch tariff recalculation completed",
		"job_id", stats.JobID,
		"processed", stats.TotalProcessed,
		"configured", stats.RatesApplied,
		"fallback", stats.FallbackUsed,
		"errors", stats.Errors,
		"total_tariff", stats.TotalTariff,
	)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (uc *DefaultTariffUsecase) recalculateOne(ctx context.Context, shipment *domain.Shipment) (*domain.ResolutionResult, error) {
	result, err := uc.CalculateTariff(ctx, shipment.Request())
	if err != nil {
		return nil, err
	}
	if err := uc.shipmentRepo.UpdateCalculation(ctx, shipment.ID, result); err != nil {
		return nil, fmt.Errorf("updating shipment calculation: %w", err)
	}
	return result, nil
}

func (uc *DefaultTariffUsecase) publishTariffEvent(shipment *domain.Shipment, result *domain.ResolutionResult) {
	if uc.publisher == nil {
		return
	}
	event := kafka.TariffCalculatedEvent{
		ShipmentID:        shipment.ID,
		Origin:            shipment.Origin,
		Destination:       shipment.Destination,
		TariffAmount:      result.TariffAmount,
		Currency:          shipment.Currency,
		CalculationMethod: string(result.CalculationMethod),
	}
	if result.AppliedRate != nil {
		event.AppliedRateID = result.AppliedRate.ID
	}
	if err := kafka.PublishTariffEvent(uc.publisher, event); err != nil {
		slog.Error("tariff event publish failed", "shipment_id", shipment.ID, "error", err.Error())
	}
}
