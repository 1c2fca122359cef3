package request

// RateRequest is the wire form of a rate definition. Dates use the
// YYYY-MM-DD layout.
type RateRequest struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	GoodsCategory string   `json:"goods_category"`
	PostalService string   `json:"postal_service"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	MinWeight     *float64 `json:"min_weight"`
	MaxWeight     *float64 `json:"max_weight"`
	RateFraction  float64  `json:"rate_fraction"`
	MinimumTariff float64  `json:"minimum_tariff"`
	MaximumTariff *float64 `json:"maximum_tariff"`
	Currency      string   `json:"currency"`
	Notes         string   `json:"notes"`
}

type EditRateRequest struct {
	GoodsCategory *string  `json:"goods_category"`
	PostalService *string  `json:"postal_service"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	MinWeight     *float64 `json:"min_weight"`
	MaxWeight     *float64 `json:"max_weight"`
	RateFraction  *float64 `json:"rate_fraction"`
	MinimumTariff *float64 `json:"minimum_tariff"`
	MaximumTariff *float64 `json:"maximum_tariff"`
	Currency      *string  `json:"currency"`
	Active        *bool    `json:"active"`
	Notes         *string  `json:"notes"`
}

type ValidateRateRequest struct {
	RateRequest
	ExcludeID string `json:"exclude_id"`
}

type ValidateBatchRequest struct {
	Rates []RateRequest `json:"rates"`
}
