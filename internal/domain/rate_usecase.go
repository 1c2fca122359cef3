package domain

import (
	"context"

	ratedto "github.com/airmailops/tariff-service/internal/usecase/dto/rate"
)

// BatchConflict ties a conflict list back to the candidate that caused it
// during bulk validation.
type BatchConflict struct {
	CandidateIndex int            `json:"candidate_index"`
	Conflicts      []RateConflict `json:"conflicts"`
}

type RateUsecase interface {
	CreateRate(ctx context.Context, input *ratedto.RateInput) (*TariffRate, error)
	UpdateRate(ctx context.Context, input *ratedto.EditRateInput) (*TariffRate, error)
	ValidateRate(ctx context.Context, input *ratedto.RateInput, excludeID string) ([]RateConflict, error)
	ValidateRateBatch(ctx context.Context, inputs []*ratedto.RateInput) ([]BatchConflict, error)
	GetRateByID(ctx context.Context, rateID string) (*TariffRate, error)
	GetRateRecords(ctx context.Context, page, limit int32) ([]*TariffRate, int64, error)
	GetRatesByRoute(ctx context.Context, origin, destination string) ([]*TariffRate, error)
	DeactivateRate(ctx context.Context, rateID string) error
	DeleteRate(ctx context.Context, rateID string) error
}
