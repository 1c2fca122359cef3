package ratedto

import "time"

// RateInput carries a full rate definition for create and bulk-validate
// calls. Zero-value category/service default to the wildcard; absent
// weight bounds default to the full bracket.
type RateInput struct {
	Origin        string
	Destination   string
	GoodsCategory string
	PostalService string
	StartDate     time.Time
	EndDate       time.Time
	MinWeight     *float64
	MaxWeight     *float64
	RateFraction  float64
	MinimumTariff float64
	MaximumTariff *float64
	Currency      string
	Notes         string
}

// EditRateInput updates an existing rate. Nil fields are left untouched.
// Route endpoints are immutable: a rate on a different route is a new rate.
type EditRateInput struct {
	ID            string
	GoodsCategory *string
	PostalService *string
	StartDate     *time.Time
	EndDate       *time.Time
	MinWeight     *float64
	MaxWeight     *float64
	RateFraction  *float64
	MinimumTariff *float64
	MaximumTariff *float64
	Currency      *string
	Active        *bool
	Notes         *string
}
