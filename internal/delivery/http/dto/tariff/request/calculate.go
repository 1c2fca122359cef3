package request

type CalculateTariffRequest struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DeclaredValue float64  `json:"declared_value"`
	GoodsCategory string   `json:"goods_category"`
	PostalService string   `json:"postal_service"`
	ShipDate      string   `json:"ship_date"`
	Weight        *float64 `json:"weight"`
}

type ProcessShipmentRequest struct {
	TrackingNumber string `json:"tracking_number"`
	Currency       string `json:"currency"`
	// Contents is the free-text customs declaration; it feeds category
	// classification when goods_category is absent.
	Contents string `json:"contents"`
	CalculateTariffRequest
}

type RecalculateBatchRequest struct {
	ShipmentIDs []string `json:"shipment_ids"`
}
