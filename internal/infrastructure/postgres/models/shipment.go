package models

import "time"

type ShipmentModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	TrackingNumber string `gorm:"index"`

	Origin      string `gorm:"index:idx_shipment_route"`
	Destination string `gorm:"index:idx_shipment_route"`

	GoodsCategory string
	PostalService string
	ShipDate      time.Time
	Weight        *float64
	DeclaredValue float64
	Currency      string `gorm:"default:'USD'"`

	TariffAmount      *float64
	AppliedRateID     *string `gorm:"type:uuid;index"`
	CalculationMethod string

	CreatedAt time.Time
}

func (ShipmentModel) TableName() string {
	return "processed_shipments"
}
