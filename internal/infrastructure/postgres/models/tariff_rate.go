package models

import "time"

type TariffRateModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Origin        string `gorm:"index:idx_route_active"`
	Destination   string `gorm:"index:idx_route_active"`
	GoodsCategory string `gorm:"default:'*';index"`
	PostalService string `gorm:"default:'*';index"`

	StartDate time.Time `gorm:"index:idx_date_range"`
	EndDate   time.Time `gorm:"index:idx_date_range"`
	MinWeight float64   `gorm:"default:0"`
	MaxWeight float64   `gorm:"default:999999"`

	RateFraction  float64
	MinimumTariff float64
	MaximumTariff *float64

	Currency string `gorm:"default:'USD'"`
	Active   bool   `gorm:"default:true;index:idx_route_active"`
	Notes    string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TariffRateModel) TableName() string {
	return "tariff_rates"
}
