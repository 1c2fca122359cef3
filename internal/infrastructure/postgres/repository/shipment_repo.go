package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/mappers"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultShipmentRepository struct {
	DB *gorm.DB
}

func NewDefaultShipmentRepository(db *gorm.DB) *DefaultShipmentRepository {
	return &DefaultShipmentRepository{DB: db}
}

func (r *DefaultShipmentRepository) SaveShipment(ctx context.Context, shipment *domain.Shipment) error {
	return r.DB.WithContext(ctx).Save(mappers.ToShipmentModel(shipment)).Error
}

func (r *DefaultShipmentRepository) GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	var model models.ShipmentModel
	if err := r.DB.WithContext(ctx).Where("id = ?", shipmentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainShipment(&model), nil
}

func (r *DefaultShipmentRepository) GetShipmentsByIDs(ctx context.Context, shipmentIDs []string) ([]*domain.Shipment, error) {
	var shipmentModels []models.ShipmentModel
	if err := r.DB.WithContext(ctx).Where("id IN ?", shipmentIDs).Find(&shipmentModels).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainShipments(shipmentModels), nil
}

func (r *DefaultShipmentRepository) GetUncalculatedShipments(ctx context.Context) ([]*domain.Shipment, error) {
	var shipmentModels []models.ShipmentModel
	if err := r.DB.WithContext(ctx).
		Where("tariff_amount IS NULL").
		Order("created_at, id").
		Find(&shipmentModels).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainShipments(shipmentModels), nil
}

func (r *DefaultShipmentRepository) UpdateCalculation(ctx context.Context, shipmentID string, result *domain.ResolutionResult) error {
	updateData := map[string]interface{}{
		"tariff_amount":      result.TariffAmount,
		"calculation_method": string(result.CalculationMethod),
		"applied_rate_id":    nil,
	}
	if result.AppliedRate != nil {
		updateData["applied_rate_id"] = result.AppliedRate.ID
	}

	res := r.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("id = ?", shipmentID).
		Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

func (r *DefaultShipmentRepository) RouteTotals(ctx context.Context, origin, destination string) (*domain.RouteTotals, error) {
	var declared, tariffSum sql.NullFloat64
	row := r.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Select("SUM(declared_value), SUM(tariff_amount)").
		Where("origin = ? AND destination = ? AND tariff_amount IS NOT NULL", origin, destination).
		Row()
	if err := row.Scan(&declared, &tariffSum); err != nil {
		return nil, err
	}

	return &domain.RouteTotals{
		TotalDeclaredValue: declared.Float64,
		TotalTariffAmount:  tariffSum.Float64,
	}, nil
}

func (r *DefaultShipmentRepository) DistinctRoutes(ctx context.Context) ([]domain.RouteShipments, error) {
	var routes []domain.RouteShipments
	if err := r.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Select("origin, destination, COUNT(id) AS shipment_count").
		Where("origin <> '' AND destination <> ''").
		Group("origin, destination").
		Order("origin, destination").
		Scan(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *DefaultShipmentRepository) CountByAppliedRate(ctx context.Context, rateID string) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("applied_rate_id = ?", rateID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
