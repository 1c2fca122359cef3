package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/airmailops/tariff-service/internal/domain"
)

// DefaultCoverageUsecase builds the read-only coverage report: every route
// seen in shipment history, checked against currently valid active rates.
type DefaultCoverageUsecase struct {
	rateRepo     domain.TariffRateRepository
	shipmentRepo domain.ShipmentRepository
	now          func() time.Time
}

func NewDefaultCoverageUsecase(rateRepo domain.TariffRateRepository, shipmentRepo domain.ShipmentRepository) *DefaultCoverageUsecase {
	return &DefaultCoverageUsecase{
		rateRepo:     rateRepo,
		shipmentRepo: shipmentRepo,
		now:          time.Now,
	}
}

func (uc *DefaultCoverageUsecase) CoverageReport(ctx context.Context) (*domain.CoverageReport, error) {
	routes, err := uc.shipmentRepo.DistinctRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shipment routes: %w", err)
	}

	rates, err := uc.rateRepo.GetActiveRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active rates: %w", err)
	}

	now := uc.now()
	covered := make(map[[2]string]bool)
	density := make(map[string]int)
	for _, rate := range rates {
		density[rate.GoodsCategory+"|"+rate.PostalService]++
		// A rate covers its route only while its validity interval holds.
		if rate.ContainsDate(now) {
			covered[[2]string{rate.Origin, rate.Destination}] = true
		}
	}

	report := &domain.CoverageReport{
		TotalRoutes:          len(routes),
		UncoveredRoutes:      []domain.UncoveredRoute{},
		TotalConfiguredRates: len(rates),
		RateDensity:          density,
	}

	for _, route := range routes {
		if covered[[2]string{route.Origin, route.Destination}] {
			report.CoveredRoutes++
			continue
		}
		report.UncoveredRoutes = append(report.UncoveredRoutes, domain.UncoveredRoute{
			Origin:        route.Origin,
			Destination:   route.Destination,
			ShipmentCount: route.ShipmentCount,
		})
	}

	// Busiest gaps first, ties ordered by route for a stable report.
	sort.Slice(report.UncoveredRoutes, func(i, j int) bool {
		a, b := report.UncoveredRoutes[i], report.UncoveredRoutes[j]
		if a.ShipmentCount != b.ShipmentCount {
			return a.ShipmentCount > b.ShipmentCount
		}
		if a.Origin != b.Origin {
			return a.Origin < b.Origin
		}
		return a.Destination < b.Destination
	})

	if report.TotalRoutes > 0 {
		pct := float64(report.CoveredRoutes) / float64(report.TotalRoutes) * 100
		report.CoveragePercentage = math.Round(pct*10) / 10
	}

	return report, nil
}
