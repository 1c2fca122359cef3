package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/kafka"
	"github.com/airmailops/tariff-service/internal/infrastructure/metrics"
	"github.com/airmailops/tariff-service/internal/tariff"
	ratedto "github.com/airmailops/tariff-service/internal/usecase/dto/rate"
	"github.com/google/uuid"
)

// DefaultRateUsecase is the administrative surface of the rate store.
// Every write goes through the conflict validator: structural checks here,
// the overlap check atomically inside the repository.
type DefaultRateUsecase struct {
	rateRepo     domain.TariffRateRepository
	shipmentRepo domain.ShipmentRepository
	publisher    domain.PublisherPort
	metrics      *metrics.TariffMetrics
}

func NewDefaultRateUsecase(
	rateRepo domain.TariffRateRepository,
	shipmentRepo domain.ShipmentRepository,
	publisher domain.PublisherPort,
	m *metrics.TariffMetrics,
) *DefaultRateUsecase {
	return &DefaultRateUsecase{
		rateRepo:     rateRepo,
		shipmentRepo: shipmentRepo,
		publisher:    publisher,
		metrics:      m,
	}
}

func (uc *DefaultRateUsecase) CreateRate(ctx context.Context, input *ratedto.RateInput) (*domain.TariffRate, error) {
	rate := rateFromInput(input)
	rate.ID = uuid.New().String()
	now := time.Now()
	rate.CreatedAt = now
	rate.UpdatedAt = now

	if err := tariff.CheckStructural(rate); err != nil {
		return nil, err
	}

	if err := uc.rateRepo.CreateRate(ctx, rate); err != nil {
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) {
			uc.metrics.ObserveConflictRejected(rate.Origin, rate.Destination)
		}
		return nil, err
	}

	uc.metrics.ObserveRateCreated(rate.Origin, rate.Destination)
	uc.publishRateEvent("created", rate)
	return rate, nil
}

func (uc *DefaultRateUsecase) UpdateRate(ctx context.Context, input *ratedto.EditRateInput) (*domain.TariffRate, error) {
	rate, err := uc.rateRepo.GetRateByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	applyEdit(rate, input)
	rate.UpdatedAt = time.Now()

	if err := tariff.CheckStructural(rate); err != nil {
		return nil, err
	}

	if err := uc.rateRepo.UpdateRate(ctx, rate); err != nil {
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) {
			uc.metrics.ObserveConflictRejected(rate.Origin, rate.Destination)
		}
		return nil, err
	}

	uc.publishRateEvent("updated", rate)
	return rate, nil
}

// ValidateRate is the dry-run used by create/update endpoints before any
// persistence write. An empty result means the candidate is admissible.
func (uc *DefaultRateUsecase) ValidateRate(ctx context.Context, input *ratedto.RateInput, excludeID string) ([]domain.RateConflict, error) {
	candidate := rateFromInput(input)
	if err := tariff.CheckStructural(candidate); err != nil {
		return nil, err
	}

	existing, err := uc.rateRepo.GetActiveRatesByRoute(ctx, candidate.Origin, candidate.Destination)
	if err != nil {
		return nil, fmt.Errorf("loading rates for route: %w", err)
	}

	return tariff.Conflicts(candidate, existing, excludeID), nil
}

// ValidateRateBatch checks imported candidates against the store and
// against each other with the same overlap predicate.
func (uc *DefaultRateUsecase) ValidateRateBatch(ctx context.Context, inputs []*ratedto.RateInput) ([]domain.BatchConflict, error) {
	candidates := make([]*domain.TariffRate, len(inputs))
	seenRoutes := make(map[[2]string]bool)
	var existing []*domain.TariffRate

	for i, input := range inputs {
		cand := rateFromInput(input)
		if err := tariff.CheckStructural(cand); err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		candidates[i] = cand

		route := [2]string{cand.Origin, cand.Destination}
		if seenRoutes[route] {
			continue
		}
		seenRoutes[route] = true
		routeRates, err := uc.rateRepo.GetActiveRatesByRoute(ctx, cand.Origin, cand.Destination)
		if err != nil {
			return nil, fmt.Errorf("loading rates for route: %w", err)
		}
		existing = append(existing, routeRates...)
	}

	return tariff.ConflictsBatch(candidates, existing), nil
}

func (uc *DefaultRateUsecase) GetRateByID(ctx context.Context, rateID string) (*domain.TariffRate, error) {
	return uc.rateRepo.GetRateByID(ctx, rateID)
}

func (uc *DefaultRateUsecase) GetRateRecords(ctx context.Context, page, limit int32) ([]*domain.TariffRate, int64, error) {
	return uc.rateRepo.GetRateRecords(ctx, page, limit)
}

// GetRatesByRoute lists the active rates configured for one route.
func (uc *DefaultRateUsecase) GetRatesByRoute(ctx context.Context, origin, destination string) ([]*domain.TariffRate, error) {
	return uc.rateRepo.GetActiveRatesByRoute(ctx, origin, destination)
}

func (uc *DefaultRateUsecase) DeactivateRate(ctx context.Context, rateID string) error {
	rate, err := uc.rateRepo.GetRateByID(ctx, rateID)
	if err != nil {
		return err
	}

	if err := uc.rateRepo.DeactivateRate(ctx, rateID); err != nil {
		return err
	}

	uc.metrics.ObserveRateDeactivated(rate.Origin, rate.Destination)
	rate.Active = false
	uc.publishRateEvent("deactivated", rate)
	return nil
}

// DeleteRate removes a rate permanently. Rejected while shipment history
// still references it; such rates can only be deactivated.
func (uc *DefaultRateUsecase) DeleteRate(ctx context.Context, rateID string) error {
	rate, err := uc.rateRepo.GetRateByID(ctx, rateID)
	if err != nil {
		return err
	}

	referenced, err := uc.shipmentRepo.CountByAppliedRate(ctx, rateID)
	if err != nil {
		return fmt.Errorf("counting rate references: %w", err)
	}
	if referenced > 0 {
		return fmt.Errorf("%w: %d shipments", domain.ErrRateReferenced, referenced)
	}

	if err := uc.rateRepo.DeleteRate(ctx, rateID); err != nil {
		return err
	}

	uc.publishRateEvent("deleted", rate)
	return nil
}

func (uc *DefaultRateUsecase) publishRateEvent(action string, rate *domain.TariffRate) {
	if uc.publisher == nil {
		return
	}
	event := kafka.RateEvent{
		RateID:        rate.ID,
		Action:        action,
		Origin:        rate.Origin,
		Destination:   rate.Destination,
		GoodsCategory: rate.GoodsCategory,
		PostalService: rate.PostalService,
		RateFraction:  rate.RateFraction,
	}
	if err := kafka.PublishRateEvent(uc.publisher, event); err != nil {
		slog.Error("rate event publish failed", "rate_id", rate.ID, "action", action, "error", err.Error())
	}
}

func rateFromInput(input *ratedto.RateInput) *domain.TariffRate {
	rate := &domain.TariffRate{
		Origin:        input.Origin,
		Destination:   input.Destination,
		GoodsCategory: input.GoodsCategory,
		PostalService: input.PostalService,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		MinWeight:     domain.DefaultMinWeight,
		MaxWeight:     domain.DefaultMaxWeight,
		RateFraction:  input.RateFraction,
		MinimumTariff: input.MinimumTariff,
		MaximumTariff: input.MaximumTariff,
		Currency:      input.Currency,
		Active:        true,
		Notes:         input.Notes,
	}
	if rate.GoodsCategory == "" {
		rate.GoodsCategory = domain.Wildcard
	}
	if rate.PostalService == "" {
		rate.PostalService = domain.Wildcard
	}
	if input.MinWeight != nil {
		rate.MinWeight = *input.MinWeight
	}
	if input.MaxWeight != nil {
		rate.MaxWeight = *input.MaxWeight
	}
	if rate.Currency == "" {
		rate.Currency = domain.DefaultCurrency
	}
	return rate
}

func applyEdit(rate *domain.TariffRate, input *ratedto.EditRateInput) {
	if input.GoodsCategory != nil {
		rate.GoodsCategory = *input.GoodsCategory
	}
	if input.PostalService != nil {
		rate.PostalService = *input.PostalService
	}
	if input.StartDate != nil {
		rate.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		rate.EndDate = *input.EndDate
	}
	if input.MinWeight != nil {
		rate.MinWeight = *input.MinWeight
	}
	if input.MaxWeight != nil {
		rate.MaxWeight = *input.MaxWeight
	}
	if input.RateFraction != nil {
		rate.RateFraction = *input.RateFraction
	}
	if input.MinimumTariff != nil {
		rate.MinimumTariff = *input.MinimumTariff
	}
	if input.MaximumTariff != nil {
		rate.MaximumTariff = input.MaximumTariff
	}
	if input.Currency != nil {
		rate.Currency = *input.Currency
	}
	if input.Active != nil {
		rate.Active = *input.Active
	}
	if input.Notes != nil {
		rate.Notes = *input.Notes
	}
}
