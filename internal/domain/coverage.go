package domain

// RouteShipments is a distinct route observed in shipment history with its
// shipment count.
type RouteShipments struct {
	Origin        string
	Destination   string
	ShipmentCount int64
}

// UncoveredRoute is a route with shipment history but no currently valid
// active rate.
type UncoveredRoute struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	ShipmentCount int64  `json:"shipment_count"`
}

// CoverageReport surfaces routes and categories with no active rule.
// Purely diagnostic, produced without mutation.
type CoverageReport struct {
	TotalRoutes          int              `json:"total_routes"`
	CoveredRoutes        int              `json:"covered_routes"`
	UncoveredRoutes      []UncoveredRoute `json:"uncovered_routes"`
	CoveragePercentage   float64          `json:"coverage_percentage"`
	TotalConfiguredRates int              `json:"total_configured_rates"`
	RateDensity          map[string]int   `json:"rate_density"` // "category|service" -> active rule count
}
