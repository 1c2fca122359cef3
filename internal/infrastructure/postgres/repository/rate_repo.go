package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/mappers"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/models"
	"github.com/airmailops/tariff-service/internal/tariff"
	"gorm.io/gorm"
)

type DefaultTariffRateRepository struct {
	DB *gorm.DB
}

func NewDefaultTariffRateRepository(db *gorm.DB) *DefaultTariffRateRepository {
	return &DefaultTariffRateRepository{DB: db}
}

// CreateRate admits a rate only if no active rate of identical scope
// overlaps it. The check and the insert run in one transaction holding an
// advisory lock keyed by the route, so two concurrent writers on the same
// route serialize instead of both passing validation.
func (r *DefaultTariffRateRepository) CreateRate(ctx context.Context, rate *domain.TariffRate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoute(tx, rate.Origin, rate.Destination); err != nil {
			return err
		}

		existing, err := routeRates(tx, rate.Origin, rate.Destination)
		if err != nil {
			return err
		}
		if conflicts := tariff.Conflicts(rate, existing, ""); len(conflicts) > 0 {
			return &domain.ConflictError{Conflicts: conflicts}
		}

		return tx.Create(mappers.ToRateModel(rate)).Error
	})
}

func (r *DefaultTariffRateRepository) UpdateRate(ctx context.Context, rate *domain.TariffRate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoute(tx, rate.Origin, rate.Destination); err != nil {
			return err
		}

		existing, err := routeRates(tx, rate.Origin, rate.Destination)
		if err != nil {
			return err
		}
		if conflicts := tariff.Conflicts(rate, existing, rate.ID); len(conflicts) > 0 {
			return &domain.ConflictError{Conflicts: conflicts}
		}

		result := tx.Save(mappers.ToRateModel(rate))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRateNotFound
		}
		return nil
	})
}

func (r *DefaultTariffRateRepository) GetRateByID(ctx context.Context, rateID string) (*domain.TariffRate, error) {
	var model models.TariffRateModel
	if err := r.DB.WithContext(ctx).Where("id = ?", rateID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRate(&model), nil
}

func (r *DefaultTariffRateRepository) GetActiveRatesByRoute(ctx context.Context, origin, destination string) ([]*domain.TariffRate, error) {
	return routeRates(r.DB.WithContext(ctx), origin, destination)
}

func (r *DefaultTariffRateRepository) GetActiveRates(ctx context.Context) ([]*domain.TariffRate, error) {
	var rateModels []models.TariffRateModel
	if err := r.DB.WithContext(ctx).Where("active = ?", true).Find(&rateModels).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainRates(rateModels), nil
}

func (r *DefaultTariffRateRepository) GetRateRecords(ctx context.Context, page, limit int32) ([]*domain.TariffRate, int64, error) {
	var rateModels []models.TariffRateModel
	var total int64

	if err := r.DB.WithContext(ctx).Model(&models.TariffRateModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	if err := r.DB.WithContext(ctx).
		Offset(int(offset)).Limit(int(limit)).
		Order("created_at DESC, id").
		Find(&rateModels).Error; err != nil {
		return nil, 0, err
	}

	return mappers.ToDomainRates(rateModels), total, nil
}

func (r *DefaultTariffRateRepository) DeactivateRate(ctx context.Context, rateID string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.TariffRateModel{}).
		Where("id = ?", rateID).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRateNotFound
	}
	return nil
}

func (r *DefaultTariffRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	result := r.DB.WithContext(ctx).Delete(&models.TariffRateModel{}, "id = ?", rateID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRateNotFound
	}
	return nil
}

func lockRoute(tx *gorm.DB, origin, destination string) error {
	key := fmt.Sprintf("tariff_rates:%s:%s", origin, destination)
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
		return fmt.Errorf("acquiring route lock: %w", err)
	}
	return nil
}

func routeRates(tx *gorm.DB, origin, destination string) ([]*domain.TariffRate, error) {
	var rateModels []models.TariffRateModel
	if err := tx.
		Where("origin = ? AND destination = ? AND active = ?", origin, destination, true).
		Find(&rateModels).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainRates(rateModels), nil
}
