package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/tariff"
)

type ShipmentRepositorySuite struct {
	suite.Suite
	repo *ShipmentRepository
	ctx  context.Context
}

func (s *ShipmentRepositorySuite) SetupTest() {
	s.repo = NewShipmentRepository()
	s.ctx = context.Background()
}

func TestShipmentRepositorySuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositorySuite))
}

func fptr(v float64) *float64 { return &v }

func (s *ShipmentRepositorySuite) seed(id, origin, destination string, declared float64, tariffAmount *float64) {
	s.Require().NoError(s.repo.SaveShipment(s.ctx, &domain.Shipment{
		ID:            id,
		Origin:        origin,
		Destination:   destination,
		DeclaredValue: declared,
		TariffAmount:  tariffAmount,
	}))
}

func (s *ShipmentRepositorySuite) TestSaveAndGet() {
	s.seed("s1", "CN", "US", 100, nil)

	found, err := s.repo.GetShipmentByID(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(100.0, found.DeclaredValue)

	_, err = s.repo.GetShipmentByID(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrShipmentNotFound)
}

func (s *ShipmentRepositorySuite) TestGetShipmentsByIDs() {
	s.seed("s1", "CN", "US", 100, nil)
	s.seed("s2", "CN", "US", 50, nil)

	found, err := s.repo.GetShipmentsByIDs(s.ctx, []string{"s1", "missing", "s2"})
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *ShipmentRepositorySuite) TestGetUncalculatedShipments() {
	s.seed("s1", "CN", "US", 100, fptr(10))
	s.seed("s2", "CN", "US", 50, nil)
	s.seed("s3", "DE", "FR", 20, nil)

	found, err := s.repo.GetUncalculatedShipments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal("s2", found[0].ID)
	s.Equal("s3", found[1].ID)
}

func (s *ShipmentRepositorySuite) TestUpdateCalculation() {
	s.seed("s1", "CN", "US", 100, nil)

	rate := &domain.TariffRate{ID: "rate-1"}
	s.Require().NoError(s.repo.UpdateCalculation(s.ctx, "s1", &domain.ResolutionResult{
		TariffAmount:      tariff.Round2(12.345),
		AppliedRate:       rate,
		CalculationMethod: domain.MethodConfigured,
	}))

	found, err := s.repo.GetShipmentByID(s.ctx, "s1")
	s.Require().NoError(err)
	s.Require().NotNil(found.TariffAmount)
	s.Equal(12.35, *found.TariffAmount)
	s.Require().NotNil(found.AppliedRateID)
	s.Equal("rate-1", *found.AppliedRateID)
	s.Equal(domain.MethodConfigured, found.CalculationMethod)

	s.Run("fallback result clears the applied rate", func() {
		s.Require().NoError(s.repo.UpdateCalculation(s.ctx, "s1", &domain.ResolutionResult{
			TariffAmount:      8,
			CalculationMethod: domain.MethodFallback,
		}))
		found, err := s.repo.GetShipmentByID(s.ctx, "s1")
		s.Require().NoError(err)
		s.Nil(found.AppliedRateID)
	})

	s.Run("unknown shipment", func() {
		err := s.repo.UpdateCalculation(s.ctx, "missing", &domain.ResolutionResult{})
		s.ErrorIs(err, domain.ErrShipmentNotFound)
	})
}

func (s *ShipmentRepositorySuite) TestRouteTotals() {
	s.seed("s1", "CN", "US", 200, fptr(30))
	s.seed("s2", "CN", "US", 300, fptr(45))
	// Unpriced and off-route shipments stay out of the aggregate.
	s.seed("s3", "CN", "US", 999, nil)
	s.seed("s4", "DE", "FR", 100, fptr(80))

	totals, err := s.repo.RouteTotals(s.ctx, "CN", "US")
	s.Require().NoError(err)
	s.Equal(500.0, totals.TotalDeclaredValue)
	s.Equal(75.0, totals.TotalTariffAmount)

	empty, err := s.repo.RouteTotals(s.ctx, "GB", "AU")
	s.Require().NoError(err)
	s.Equal(0.0, empty.TotalDeclaredValue)
}

func (s *ShipmentRepositorySuite) TestDistinctRoutes() {
	s.seed("s1", "CN", "US", 100, nil)
	s.seed("s2", "CN", "US", 50, nil)
	s.seed("s3", "DE", "FR", 20, nil)

	routes, err := s.repo.DistinctRoutes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(routes, 2)
	s.Equal("CN", routes[0].Origin)
	s.EqualValues(2, routes[0].ShipmentCount)
	s.Equal("DE", routes[1].Origin)
}

func (s *ShipmentRepositorySuite) TestCountByAppliedRate() {
	rateID := "rate-1"
	s.Require().NoError(s.repo.SaveShipment(s.ctx, &domain.Shipment{
		ID: "s1", Origin: "CN", Destination: "US", AppliedRateID: &rateID,
	}))
	s.seed("s2", "CN", "US", 50, nil)

	count, err := s.repo.CountByAppliedRate(s.ctx, "rate-1")
	s.Require().NoError(err)
	s.EqualValues(1, count)

	count, err = s.repo.CountByAppliedRate(s.ctx, "other")
	s.Require().NoError(err)
	s.EqualValues(0, count)
}
