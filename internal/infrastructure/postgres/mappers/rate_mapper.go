package mappers

import (
	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/models"
)

func ToRateModel(rate *domain.TariffRate) *models.TariffRateModel {
	return &models.TariffRateModel{
		ID:            rate.ID,
		Origin:        rate.Origin,
		Destination:   rate.Destination,
		GoodsCategory: rate.GoodsCategory,
		PostalService: rate.PostalService,
		StartDate:     rate.StartDate,
		EndDate:       rate.EndDate,
		MinWeight:     rate.MinWeight,
		MaxWeight:     rate.MaxWeight,
		RateFraction:  rate.RateFraction,
		MinimumTariff: rate.MinimumTariff,
		MaximumTariff: rate.MaximumTariff,
		Currency:      rate.Currency,
		Active:        rate.Active,
		Notes:         rate.Notes,
		CreatedAt:     rate.CreatedAt,
		UpdatedAt:     rate.UpdatedAt,
	}
}

func ToDomainRate(model *models.TariffRateModel) *domain.TariffRate {
	return &domain.TariffRate{
		ID:            model.ID,
		Origin:        model.Origin,
		Destination:   model.Destination,
		GoodsCategory: model.GoodsCategory,
		PostalService: model.PostalService,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		MinWeight:     model.MinWeight,
		MaxWeight:     model.MaxWeight,
		RateFraction:  model.RateFraction,
		MinimumTariff: model.MinimumTariff,
		MaximumTariff: model.MaximumTariff,
		Currency:      model.Currency,
		Active:        model.Active,
		Notes:         model.Notes,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToDomainRates(rateModels []models.TariffRateModel) []*domain.TariffRate {
	rates := make([]*domain.TariffRate, len(rateModels))
	for i := range rateModels {
		rates[i] = ToDomainRate(&rateModels[i])
	}
	return rates
}
