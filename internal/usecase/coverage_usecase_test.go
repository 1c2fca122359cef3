package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/memory"
	ratedto "github.com/airmailops/tariff-service/internal/usecase/dto/rate"
)

type CoverageUsecaseSuite struct {
	suite.Suite
	rateRepo     *memory.RateRepository
	shipmentRepo *memory.ShipmentRepository
	rates        *DefaultRateUsecase
	uc           *DefaultCoverageUsecase
	ctx          context.Context
}

func (s *CoverageUsecaseSuite) SetupTest() {
	s.rateRepo = memory.NewRateRepository()
	s.shipmentRepo = memory.NewShipmentRepository()
	s.rates = NewDefaultRateUsecase(s.rateRepo, s.shipmentRepo, nil, nil)
	s.uc = NewDefaultCoverageUsecase(s.rateRepo, s.shipmentRepo)
	s.uc.now = func() time.Time { return day(2026, time.June, 15) }
	s.ctx = context.Background()
}

func TestCoverageUsecaseSuite(t *testing.T) {
	suite.Run(t, new(CoverageUsecaseSuite))
}

func (s *CoverageUsecaseSuite) addShipments(origin, destination string, count int) {
	for i := 0; i < count; i++ {
		s.Require().NoError(s.shipmentRepo.SaveShipment(s.ctx, &domain.Shipment{
			ID:          origin + destination + string(rune('0'+i)),
			Origin:      origin,
			Destination: destination,
		}))
	}
}

func (s *CoverageUsecaseSuite) addRate(origin, destination string, overrides ...func(*ratedto.RateInput)) {
	input := &ratedto.RateInput{
		Origin:       origin,
		Destination:  destination,
		StartDate:    day(2026, time.January, 1),
		EndDate:      day(2026, time.December, 31),
		RateFraction: 0.1,
	}
	for _, override := range overrides {
		override(input)
	}
	_, err := s.rates.CreateRate(s.ctx, input)
	s.Require().NoError(err)
}

func (s *CoverageUsecaseSuite) TestEmptyStore() {
	report, err := s.uc.CoverageReport(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, report.TotalRoutes)
	s.Equal(0.0, report.CoveragePercentage)
	s.Empty(report.UncoveredRoutes)
}

func (s *CoverageUsecaseSuite) TestCoverageAccounting() {
	s.addShipments("CN", "US", 3)
	s.addShipments("DE", "FR", 5)
	s.addShipments("GB", "AU", 1)
	s.addRate("CN", "US")

	report, err := s.uc.CoverageReport(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, report.TotalRoutes)
	s.Equal(1, report.CoveredRoutes)
	s.Equal(33.3, report.CoveragePercentage)
	s.Equal(1, report.TotalConfiguredRates)

	// Busiest gap first, then route order.
	s.Require().Len(report.UncoveredRoutes, 2)
	s.Equal("DE", report.UncoveredRoutes[0].Origin)
	s.EqualValues(5, report.UncoveredRoutes[0].ShipmentCount)
	s.Equal("GB", report.UncoveredRoutes[1].Origin)
}

func (s *CoverageUsecaseSuite) TestExpiredRateDoesNotCover() {
	s.addShipments("CN", "US", 2)
	s.addRate("CN", "US", func(in *ratedto.RateInput) {
		in.StartDate = day(2025, time.January, 1)
		in.EndDate = day(2025, time.December, 31)
	})

	report, err := s.uc.CoverageReport(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, report.CoveredRoutes)
	s.Require().Len(report.UncoveredRoutes, 1)
	s.Equal("CN", report.UncoveredRoutes[0].Origin)
	// The expired rate still counts toward the configured total.
	s.Equal(1, report.TotalConfiguredRates)
}

func (s *CoverageUsecaseSuite) TestRateDensity() {
	s.addRate("CN", "US")
	s.addRate("CN", "US", func(in *ratedto.RateInput) {
		in.GoodsCategory = "Electronics"
	})
	s.addRate("DE", "FR", func(in *ratedto.RateInput) {
		in.GoodsCategory = "Electronics"
	})

	report, err := s.uc.CoverageReport(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, report.RateDensity["*|*"])
	s.Equal(2, report.RateDensity["Electronics|*"])
}
