package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airmailops/tariff-service/internal/domain"
)

func TestEvaluateAppliesFractionAndRounds(t *testing.T) {
	rate := newRate("r1", func(r *domain.TariffRate) { r.RateFraction = 0.1 })

	amount, err := Evaluate(rate, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)

	amount, err = Evaluate(rate, 123.456, nil)
	require.NoError(t, err)
	assert.Equal(t, 12.35, amount)

	amount, err = Evaluate(rate, 0.049, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, amount)
}

func TestEvaluateClampsToMinimumTariff(t *testing.T) {
	rate := newRate("r1", func(r *domain.TariffRate) {
		r.RateFraction = 0.1
		r.MinimumTariff = 5
	})

	amount, err := Evaluate(rate, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, amount)

	// Above the floor the fraction applies untouched.
	amount, err = Evaluate(rate, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)
}

func TestEvaluateClampsToMaximumTariff(t *testing.T) {
	rate := newRate("r1", func(r *domain.TariffRate) {
		r.RateFraction = 0.2
		r.MaximumTariff = ptr(50)
	})

	amount, err := Evaluate(rate, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, amount)

	noCap := newRate("r2", func(r *domain.TariffRate) { r.RateFraction = 0.2 })
	amount, err = Evaluate(noCap, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, amount)
}

func TestEvaluateRejectsWeightOutsideBracket(t *testing.T) {
	rate := newRate("r1", func(r *domain.TariffRate) {
		r.MinWeight = 0
		r.MaxWeight = 2
	})

	_, err := Evaluate(rate, 100, ptr(5))
	assert.ErrorIs(t, err, domain.ErrWeightOutOfRange)

	amount, err := Evaluate(rate, 100, ptr(2))
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.345))
	assert.Equal(t, 12.34, Round2(12.344))
	assert.Equal(t, 80.0, Round2(80.0000000001))
	assert.Equal(t, 0.0, Round2(0))
}

func TestFallbackFraction(t *testing.T) {
	t.Run("uses historical route ratio when available", func(t *testing.T) {
		totals := &domain.RouteTotals{TotalDeclaredValue: 1000, TotalTariffAmount: 120}
		assert.InDelta(t, 0.12, FallbackFraction(totals, DefaultFallbackRate), 1e-9)
	})

	t.Run("falls back to default without usable history", func(t *testing.T) {
		assert.Equal(t, DefaultFallbackRate, FallbackFraction(nil, DefaultFallbackRate))
		assert.Equal(t, DefaultFallbackRate, FallbackFraction(&domain.RouteTotals{}, DefaultFallbackRate))
		assert.Equal(t, DefaultFallbackRate, FallbackFraction(&domain.RouteTotals{TotalDeclaredValue: 500}, DefaultFallbackRate))
	})

	t.Run("honors a stored default over the compiled one", func(t *testing.T) {
		assert.Equal(t, 0.65, FallbackFraction(nil, 0.65))
	})
}

func TestEvaluateFallback(t *testing.T) {
	assert.Equal(t, 80.0, EvaluateFallback(100, DefaultFallbackRate))
	assert.Equal(t, 9.88, EvaluateFallback(12.345, 0.8))
}
