package response

import (
	"github.com/airmailops/tariff-service/internal/domain"
)

type RateResponse struct {
	ID            string   `json:"id"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	GoodsCategory string   `json:"goods_category"`
	PostalService string   `json:"postal_service"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	MinWeight     float64  `json:"min_weight"`
	MaxWeight     float64  `json:"max_weight"`
	RateFraction  float64  `json:"rate_fraction"`
	MinimumTariff float64  `json:"minimum_tariff"`
	MaximumTariff *float64 `json:"maximum_tariff,omitempty"`
	Currency      string   `json:"currency"`
	Active        bool     `json:"active"`
	Notes         string   `json:"notes,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type ConflictResponse struct {
	RateID       string  `json:"rate_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	MinWeight    float64 `json:"min_weight"`
	MaxWeight    float64 `json:"max_weight"`
	RateFraction float64 `json:"rate_fraction"`
}

type ValidateResponse struct {
	Valid     bool               `json:"valid"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

type BatchConflictResponse struct {
	CandidateIndex int                `json:"candidate_index"`
	Conflicts      []ConflictResponse `json:"conflicts"`
}

type ValidateBatchResponse struct {
	Valid   bool                    `json:"valid"`
	Results []BatchConflictResponse `json:"results"`
}

type ListRatesResponse struct {
	Rates []RateResponse `json:"rates"`
	Total int64          `json:"total"`
	Page  int32          `json:"page"`
	Limit int32          `json:"limit"`
}

type ErrorResponse struct {
	Error     string             `json:"error"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

const dateLayout = "2006-01-02"

func FromRate(rate *domain.TariffRate) RateResponse {
	return RateResponse{
		ID:            rate.ID,
		Origin:        rate.Origin,
		Destination:   rate.Destination,
		GoodsCategory: rate.GoodsCategory,
		PostalService: rate.PostalService,
		StartDate:     rate.StartDate.Format(dateLayout),
		EndDate:       rate.EndDate.Format(dateLayout),
		MinWeight:     rate.MinWeight,
		MaxWeight:     rate.MaxWeight,
		RateFraction:  rate.RateFraction,
		MinimumTariff: rate.MinimumTariff,
		MaximumTariff: rate.MaximumTariff,
		Currency:      rate.Currency,
		Active:        rate.Active,
		Notes:         rate.Notes,
		CreatedAt:     rate.CreatedAt.Format(dateLayout),
		UpdatedAt:     rate.UpdatedAt.Format(dateLayout),
	}
}

func FromConflicts(conflicts []domain.RateConflict) []ConflictResponse {
	result := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		result[i] = ConflictResponse{
			RateID:       c.RateID,
			StartDate:    c.StartDate.Format(dateLayout),
			EndDate:      c.EndDate.Format(dateLayout),
			MinWeight:    c.MinWeight,
			MaxWeight:    c.MaxWeight,
			RateFraction: c.RateFraction,
		}
	}
	return result
}
