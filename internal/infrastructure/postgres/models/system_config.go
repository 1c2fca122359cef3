package models

import "time"

type SystemConfigModel struct {
	ID          uint   `gorm:"primaryKey"`
	ConfigKey   string `gorm:"uniqueIndex"`
	ConfigValue string
	ConfigType  string `gorm:"default:'string'"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SystemConfigModel) TableName() string {
	return "system_config"
}
