package response

import "github.com/airmailops/tariff-service/internal/domain"

type CalculationResponse struct {
	TariffAmount      float64 `json:"tariff_amount"`
	CalculationMethod string  `json:"calculation_method"`
	AppliedRateID     string  `json:"applied_rate_id,omitempty"`
	SpecificityScore  int     `json:"specificity_score"`
	ShipmentID        string  `json:"shipment_id,omitempty"`
}

func FromResult(result *domain.ResolutionResult) CalculationResponse {
	resp := CalculationResponse{
		TariffAmount:      result.TariffAmount,
		CalculationMethod: string(result.CalculationMethod),
		SpecificityScore:  result.SpecificityScore,
	}
	if result.AppliedRate != nil {
		resp.AppliedRateID = result.AppliedRate.ID
	}
	return resp
}
