package tariff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airmailops/tariff-service/internal/domain"
)

func TestCheckStructural(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*domain.TariffRate)
		wantField string
	}{
		{"valid rate", func(*domain.TariffRate) {}, ""},
		{"single-day validity is legal", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.June, 1)
			r.EndDate = date(2026, time.June, 1)
		}, ""},
		{"missing origin", func(r *domain.TariffRate) { r.Origin = "" }, "origin"},
		{"missing destination", func(r *domain.TariffRate) { r.Destination = "" }, "destination"},
		{"start after end", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.July, 1)
			r.EndDate = date(2026, time.June, 1)
		}, "date range"},
		{"negative min weight", func(r *domain.TariffRate) { r.MinWeight = -1 }, "weight range"},
		{"min weight above max", func(r *domain.TariffRate) {
			r.MinWeight = 10
			r.MaxWeight = 5
		}, "weight range"},
		{"negative fraction", func(r *domain.TariffRate) { r.RateFraction = -0.1 }, "rate fraction"},
		{"negative minimum tariff", func(r *domain.TariffRate) { r.MinimumTariff = -5 }, "minimum tariff"},
		{"maximum below minimum tariff", func(r *domain.TariffRate) {
			r.MinimumTariff = 50
			r.MaximumTariff = ptr(20)
		}, "maximum tariff"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate := newRate("r1")
			tc.mutate(rate)

			err := CheckStructural(rate)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

func TestConflictsDetectsOverlappingScope(t *testing.T) {
	existing := newRate("existing", func(r *domain.TariffRate) {
		r.StartDate = date(2026, time.January, 1)
		r.EndDate = date(2026, time.June, 30)
		r.MinWeight = 0
		r.MaxWeight = 10
	})

	candidate := newRate("", func(r *domain.TariffRate) {
		r.StartDate = date(2026, time.June, 1)
		r.EndDate = date(2026, time.December, 31)
		r.MinWeight = 5
		r.MaxWeight = 20
	})

	found := Conflicts(candidate, []*domain.TariffRate{existing}, "")
	require.Len(t, found, 1)
	assert.Equal(t, "existing", found[0].RateID)
	assert.Equal(t, existing.StartDate, found[0].StartDate)
	assert.Equal(t, existing.MaxWeight, found[0].MaxWeight)
}

func TestConflictsIntervalsAreInclusive(t *testing.T) {
	existing := newRate("existing", func(r *domain.TariffRate) {
		r.EndDate = date(2026, time.June, 30)
		r.MaxWeight = 10
	})

	t.Run("touching date boundary conflicts", func(t *testing.T) {
		candidate := newRate("", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.June, 30)
			r.EndDate = date(2026, time.December, 31)
			r.MaxWeight = 10
		})
		assert.Len(t, Conflicts(candidate, []*domain.TariffRate{existing}, ""), 1)
	})

	t.Run("touching weight boundary conflicts", func(t *testing.T) {
		candidate := newRate("", func(r *domain.TariffRate) {
			r.MinWeight = 10
			r.MaxWeight = 30
		})
		assert.Len(t, Conflicts(candidate, []*domain.TariffRate{existing}, ""), 1)
	})

	t.Run("disjoint dates pass", func(t *testing.T) {
		candidate := newRate("", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.July, 1)
			r.EndDate = date(2026, time.December, 31)
			r.MaxWeight = 10
		})
		assert.Empty(t, Conflicts(candidate, []*domain.TariffRate{existing}, ""))
	})

	t.Run("disjoint weights pass", func(t *testing.T) {
		candidate := newRate("", func(r *domain.TariffRate) {
			r.MinWeight = 10.001
			r.MaxWeight = 30
		})
		assert.Empty(t, Conflicts(candidate, []*domain.TariffRate{existing}, ""))
	})
}

func TestConflictsComparesScopeLiterally(t *testing.T) {
	wildcard := newRate("wildcard")
	exact := newRate("", func(r *domain.TariffRate) {
		r.GoodsCategory = "Electronics"
	})

	// A wildcard beside an exact rule is not ambiguous: specificity
	// resolves it at calculation time.
	assert.Empty(t, Conflicts(exact, []*domain.TariffRate{wildcard}, ""))

	sameScope := newRate("", func(r *domain.TariffRate) {
		r.GoodsCategory = "Electronics"
	})
	other := newRate("other", func(r *domain.TariffRate) {
		r.GoodsCategory = "Electronics"
	})
	assert.Len(t, Conflicts(sameScope, []*domain.TariffRate{other}, ""), 1)
}

func TestConflictsIgnoresInactiveAndExcluded(t *testing.T) {
	inactive := newRate("inactive", func(r *domain.TariffRate) { r.Active = false })
	assert.Empty(t, Conflicts(newRate(""), []*domain.TariffRate{inactive}, ""))

	// Updating a rate must not conflict with its own stored row.
	stored := newRate("self")
	candidate := newRate("self")
	assert.Empty(t, Conflicts(candidate, []*domain.TariffRate{stored}, "self"))
	assert.Len(t, Conflicts(candidate, []*domain.TariffRate{stored}, ""), 1)
}

func TestConflictsBatchChecksCandidatesPairwise(t *testing.T) {
	existing := []*domain.TariffRate{
		newRate("stored", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.January, 1)
			r.EndDate = date(2026, time.March, 31)
		}),
	}
	candidates := []*domain.TariffRate{
		newRate("", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.April, 1)
			r.EndDate = date(2026, time.June, 30)
		}),
		newRate("", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.June, 1)
			r.EndDate = date(2026, time.August, 31)
		}),
		newRate("", func(r *domain.TariffRate) {
			r.StartDate = date(2026, time.February, 1)
			r.EndDate = date(2026, time.February, 28)
		}),
	}

	results := ConflictsBatch(candidates, existing)
	require.Len(t, results, 2)

	// Candidate 1 overlaps candidate 0; the pair is reported once, on the
	// later candidate.
	assert.Equal(t, 1, results[0].CandidateIndex)
	require.Len(t, results[0].Conflicts, 1)
	assert.Equal(t, "candidate-0", results[0].Conflicts[0].RateID)

	// Candidate 2 overlaps the stored rate.
	assert.Equal(t, 2, results[1].CandidateIndex)
	require.Len(t, results[1].Conflicts, 1)
	assert.Equal(t, "stored", results[1].Conflicts[0].RateID)
}

func TestConflictsBatchCleanImport(t *testing.T) {
	candidates := []*domain.TariffRate{
		newRate("", func(r *domain.TariffRate) {
			r.GoodsCategory = "Documents"
		}),
		newRate("", func(r *domain.TariffRate) {
			r.GoodsCategory = "Electronics"
		}),
	}
	assert.Empty(t, ConflictsBatch(candidates, nil))
}
