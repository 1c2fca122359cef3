package postgres

import (
	"log"

	"github.com/airmailops/tariff-service/internal/config"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.TariffConfig) *gorm.DB {
	dsn := cfg.TariffDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TariffRateModel{}, &models.ShipmentModel{}, &models.SystemConfigModel{})

	return db
}
