package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/airmailops/tariff-service/internal/domain"
)

type RateRepositorySuite struct {
	suite.Suite
	repo *RateRepository
	ctx  context.Context
}

func (s *RateRepositorySuite) SetupTest() {
	s.repo = NewRateRepository()
	s.ctx = context.Background()
}

func TestRateRepositorySuite(t *testing.T) {
	suite.Run(t, new(RateRepositorySuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *RateRepositorySuite) newRate(id string, overrides ...func(*domain.TariffRate)) *domain.TariffRate {
	rate := &domain.TariffRate{
		ID:            id,
		Origin:        "CN",
		Destination:   "US",
		GoodsCategory: domain.Wildcard,
		PostalService: domain.Wildcard,
		StartDate:     day(2026, time.January, 1),
		EndDate:       day(2026, time.December, 31),
		MinWeight:     domain.DefaultMinWeight,
		MaxWeight:     domain.DefaultMaxWeight,
		RateFraction:  0.1,
		Currency:      domain.DefaultCurrency,
		Active:        true,
		CreatedAt:     day(2026, time.January, 1),
	}
	for _, override := range overrides {
		override(rate)
	}
	return rate
}

func (s *RateRepositorySuite) TestCreateAndGet() {
	s.Run("stores and retrieves a rate", func() {
		rate := s.newRate("r1")
		s.Require().NoError(s.repo.CreateRate(s.ctx, rate))

		found, err := s.repo.GetRateByID(s.ctx, "r1")
		s.Require().NoError(err)
		s.Equal(rate.Origin, found.Origin)
	})

	s.Run("returns copies, not aliases", func() {
		rate := s.newRate("r2", func(r *domain.TariffRate) { r.Destination = "DE" })
		s.Require().NoError(s.repo.CreateRate(s.ctx, rate))

		found, err := s.repo.GetRateByID(s.ctx, "r2")
		s.Require().NoError(err)
		found.RateFraction = 0.99

		again, err := s.repo.GetRateByID(s.ctx, "r2")
		s.Require().NoError(err)
		s.Equal(0.1, again.RateFraction)
	})

	s.Run("unknown id", func() {
		_, err := s.repo.GetRateByID(s.ctx, "missing")
		s.ErrorIs(err, domain.ErrRateNotFound)
	})
}

func (s *RateRepositorySuite) TestConflictGate() {
	s.Run("rejects overlapping insert", func() {
		s.Require().NoError(s.repo.CreateRate(s.ctx, s.newRate("r1")))

		err := s.repo.CreateRate(s.ctx, s.newRate("r2"))
		var cErr *domain.ConflictError
		s.Require().ErrorAs(err, &cErr)
		s.Equal("r1", cErr.Conflicts[0].RateID)
	})

	s.Run("update skips the rate's own row", func() {
		rate := s.newRate("r3", func(r *domain.TariffRate) { r.Destination = "JP" })
		s.Require().NoError(s.repo.CreateRate(s.ctx, rate))

		rate.RateFraction = 0.2
		s.NoError(s.repo.UpdateRate(s.ctx, rate))
	})

	s.Run("update of unknown rate", func() {
		s.ErrorIs(s.repo.UpdateRate(s.ctx, s.newRate("missing")), domain.ErrRateNotFound)
	})

	s.Run("concurrent identical inserts admit exactly one", func() {
		var wg sync.WaitGroup
		errs := make([]error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rate := s.newRate(fmt.Sprintf("c%d", i), func(r *domain.TariffRate) {
					r.Origin = "BR"
					r.Destination = "MX"
				})
				errs[i] = s.repo.CreateRate(s.ctx, rate)
			}(i)
		}
		wg.Wait()

		admitted := 0
		for _, err := range errs {
			if err == nil {
				admitted++
			} else {
				var cErr *domain.ConflictError
				s.Require().ErrorAs(err, &cErr)
			}
		}
		s.Equal(1, admitted)
	})
}

func (s *RateRepositorySuite) TestRouteQueries() {
	s.Require().NoError(s.repo.CreateRate(s.ctx, s.newRate("cn-us")))
	s.Require().NoError(s.repo.CreateRate(s.ctx, s.newRate("cn-de", func(r *domain.TariffRate) {
		r.Destination = "DE"
	})))
	s.Require().NoError(s.repo.CreateRate(s.ctx, s.newRate("inactive", func(r *domain.TariffRate) {
		r.Destination = "FR"
		r.Active = false
	})))

	s.Run("by route returns only that route's active rates", func() {
		rates, err := s.repo.GetActiveRatesByRoute(s.ctx, "CN", "US")
		s.Require().NoError(err)
		s.Require().Len(rates, 1)
		s.Equal("cn-us", rates[0].ID)
	})

	s.Run("all active excludes inactive", func() {
		rates, err := s.repo.GetActiveRates(s.ctx)
		s.Require().NoError(err)
		s.Len(rates, 2)
	})
}

func (s *RateRepositorySuite) TestPagination() {
	for i := 0; i < 5; i++ {
		rate := s.newRate(fmt.Sprintf("r%d", i), func(r *domain.TariffRate) {
			r.Destination = fmt.Sprintf("D%d", i)
			r.CreatedAt = day(2026, time.January, 1+i)
		})
		s.Require().NoError(s.repo.CreateRate(s.ctx, rate))
	}

	s.Run("newest first", func() {
		rates, total, err := s.repo.GetRateRecords(s.ctx, 1, 2)
		s.Require().NoError(err)
		s.EqualValues(5, total)
		s.Require().Len(rates, 2)
		s.Equal("r4", rates[0].ID)
		s.Equal("r3", rates[1].ID)
	})

	s.Run("last partial page", func() {
		rates, total, err := s.repo.GetRateRecords(s.ctx, 3, 2)
		s.Require().NoError(err)
		s.EqualValues(5, total)
		s.Require().Len(rates, 1)
		s.Equal("r0", rates[0].ID)
	})

	s.Run("page past the end is empty", func() {
		rates, _, err := s.repo.GetRateRecords(s.ctx, 10, 2)
		s.Require().NoError(err)
		s.Empty(rates)
	})
}

func (s *RateRepositorySuite) TestDeactivateAndDelete() {
	s.Require().NoError(s.repo.CreateRate(s.ctx, s.newRate("r1")))

	s.Run("deactivate keeps the record", func() {
		s.Require().NoError(s.repo.DeactivateRate(s.ctx, "r1"))

		found, err := s.repo.GetRateByID(s.ctx, "r1")
		s.Require().NoError(err)
		s.False(found.Active)

		rates, err := s.repo.GetActiveRatesByRoute(s.ctx, "CN", "US")
		s.Require().NoError(err)
		s.Empty(rates)
	})

	s.Run("delete removes it", func() {
		s.Require().NoError(s.repo.DeleteRate(s.ctx, "r1"))
		_, err := s.repo.GetRateByID(s.ctx, "r1")
		s.ErrorIs(err, domain.ErrRateNotFound)
	})

	s.Run("missing ids", func() {
		s.ErrorIs(s.repo.DeactivateRate(s.ctx, "missing"), domain.ErrRateNotFound)
		s.ErrorIs(s.repo.DeleteRate(s.ctx, "missing"), domain.ErrRateNotFound)
	})
}
