package mappers

import (
	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/models"
)

func ToShipmentModel(shipment *domain.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:                shipment.ID,
		TrackingNumber:    shipment.TrackingNumber,
		Origin:            shipment.Origin,
		Destination:       shipment.Destination,
		GoodsCategory:     shipment.GoodsCategory,
		PostalService:     shipment.PostalService,
		ShipDate:          shipment.ShipDate,
		Weight:            shipment.Weight,
		DeclaredValue:     shipment.DeclaredValue,
		Currency:          shipment.Currency,
		TariffAmount:      shipment.TariffAmount,
		AppliedRateID:     shipment.AppliedRateID,
		CalculationMethod: string(shipment.CalculationMethod),
		CreatedAt:         shipment.CreatedAt,
	}
}

func ToDomainShipment(model *models.ShipmentModel) *domain.Shipment {
	return &domain.Shipment{
		ID:                model.ID,
		TrackingNumber:    model.TrackingNumber,
		Origin:            model.Origin,
		Destination:       model.Destination,
		GoodsCategory:     model.GoodsCategory,
		PostalService:     model.PostalService,
		ShipDate:          model.ShipDate,
		Weight:            model.Weight,
		DeclaredValue:     model.DeclaredValue,
		Currency:          model.Currency,
		TariffAmount:      model.TariffAmount,
		AppliedRateID:     model.AppliedRateID,
		CalculationMethod: domain.CalculationMethod(model.CalculationMethod),
		CreatedAt:         model.CreatedAt,
	}
}

func ToDomainShipments(shipmentModels []models.ShipmentModel) []*domain.Shipment {
	shipments := make([]*domain.Shipment, len(shipmentModels))
	for i := range shipmentModels {
		shipments[i] = ToDomainShipment(&shipmentModels[i])
	}
	return shipments
}
