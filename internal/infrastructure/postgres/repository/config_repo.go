package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/models"
	"github.com/airmailops/tariff-service/internal/tariff"
	"gorm.io/gorm"
)

const fallbackRateKey = "fallback_tariff_rate"

// DefaultSystemConfigRepository stores system parameters in the
// system_config table. The fallback tariff fraction is seeded on first
// read so it never exists only as a code literal.
type DefaultSystemConfigRepository struct {
	DB   *gorm.DB
	seed float64
}

func NewDefaultSystemConfigRepository(db *gorm.DB, seed float64) *DefaultSystemConfigRepository {
	if seed <= 0 {
		seed = tariff.DefaultFallbackRate
	}
	return &DefaultSystemConfigRepository{DB: db, seed: seed}
}

func (r *DefaultSystemConfigRepository) FallbackRate(ctx context.Context) (float64, error) {
	var model models.SystemConfigModel
	err := r.DB.WithContext(ctx).Where("config_key = ?", fallbackRateKey).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.SetFallbackRate(ctx, r.seed); err != nil {
			return 0, err
		}
		return r.seed, nil
	}
	if err != nil {
		return 0, err
	}

	rate, err := strconv.ParseFloat(model.ConfigValue, 64)
	if err != nil || rate <= 0 {
		// Stored value is unusable; reseed rather than price at garbage.
		if err := r.SetFallbackRate(ctx, r.seed); err != nil {
			return 0, err
		}
		return r.seed, nil
	}
	return rate, nil
}

func (r *DefaultSystemConfigRepository) SetFallbackRate(ctx context.Context, rate float64) error {
	value := strconv.FormatFloat(rate, 'f', -1, 64)

	var model models.SystemConfigModel
	err := r.DB.WithContext(ctx).Where("config_key = ?", fallbackRateKey).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.WithContext(ctx).Create(&models.SystemConfigModel{
			ConfigKey:   fallbackRateKey,
			ConfigValue: value,
			ConfigType:  "float",
			Description: "System-wide default tariff fraction used when no configured rate matches and no route history exists",
		}).Error
	}
	if err != nil {
		return err
	}

	return r.DB.WithContext(ctx).
		Model(&models.SystemConfigModel{}).
		Where("config_key = ?", fallbackRateKey).
		Update("config_value", value).Error
}
