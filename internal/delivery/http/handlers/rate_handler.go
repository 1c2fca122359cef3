package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	rateRequest "github.com/airmailops/tariff-service/internal/delivery/http/dto/rate/request"
	rateResponse "github.com/airmailops/tariff-service/internal/delivery/http/dto/rate/response"
	"github.com/airmailops/tariff-service/internal/domain"
	ratedto "github.com/airmailops/tariff-service/internal/usecase/dto/rate"
	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

type RateHandler struct {
	rateUsecase domain.RateUsecase
}

func NewRateHandler(rateUsecase domain.RateUsecase) *RateHandler {
	return &RateHandler{rateUsecase: rateUsecase}
}

func (h *RateHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	input, err := rateInputFromRequest(&req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rate, err := h.rateUsecase.CreateRate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rateResponse.FromRate(rate))
}

func (h *RateHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest.EditRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	input := &ratedto.EditRateInput{
		ID:            chi.URLParam(r, "rateID"),
		GoodsCategory: req.GoodsCategory,
		PostalService: req.PostalService,
		MinWeight:     req.MinWeight,
		MaxWeight:     req.MaxWeight,
		RateFraction:  req.RateFraction,
		MinimumTariff: req.MinimumTariff,
		MaximumTariff: req.MaximumTariff,
		Currency:      req.Currency,
		Active:        req.Active,
		Notes:         req.Notes,
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			writeBadRequest(w, "invalid start_date")
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			writeBadRequest(w, "invalid end_date")
			return
		}
		input.EndDate = &end
	}

	rate, err := h.rateUsecase.UpdateRate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rateResponse.FromRate(rate))
}

func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rateUsecase.GetRateByID(r.Context(), chi.URLParam(r, "rateID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rateResponse.FromRate(rate))
}

func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	limit := queryInt32(r, "limit", 20)

	var rates []*domain.TariffRate
	var total int64
	var err error

	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")
	if origin != "" && destination != "" {
		// Route filter: the active rate set for one lane, unpaged.
		rates, err = h.rateUsecase.GetRatesByRoute(r.Context(), origin, destination)
		total = int64(len(rates))
	} else {
		rates, total, err = h.rateUsecase.GetRateRecords(r.Context(), page, limit)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	resp := rateResponse.ListRatesResponse{
		Rates: make([]rateResponse.RateResponse, len(rates)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i, rate := range rates {
		resp.Rates[i] = rateResponse.FromRate(rate)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ValidateRate is the dry-run endpoint: it reports conflicts without
// writing anything.
func (h *RateHandler) ValidateRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest.ValidateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	input, err := rateInputFromRequest(&req.RateRequest)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	conflicts, err := h.rateUsecase.ValidateRate(r.Context(), input, req.ExcludeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rateResponse.ValidateResponse{
		Valid:     len(conflicts) == 0,
		Conflicts: rateResponse.FromConflicts(conflicts),
	})
}

func (h *RateHandler) ValidateRateBatch(w http.ResponseWriter, r *http.Request) {
	var req rateRequest.ValidateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	inputs := make([]*ratedto.RateInput, len(req.Rates))
	for i := range req.Rates {
		input, err := rateInputFromRequest(&req.Rates[i])
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		inputs[i] = input
	}

	results, err := h.rateUsecase.ValidateRateBatch(r.Context(), inputs)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := rateResponse.ValidateBatchResponse{
		Valid:   len(results) == 0,
		Results: make([]rateResponse.BatchConflictResponse, len(results)),
	}
	for i, result := range results {
		resp.Results[i] = rateResponse.BatchConflictResponse{
			CandidateIndex: result.CandidateIndex,
			Conflicts:      rateResponse.FromConflicts(result.Conflicts),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RateHandler) DeactivateRate(w http.ResponseWriter, r *http.Request) {
	if err := h.rateUsecase.DeactivateRate(r.Context(), chi.URLParam(r, "rateID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RateHandler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	if err := h.rateUsecase.DeleteRate(r.Context(), chi.URLParam(r, "rateID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func rateInputFromRequest(req *rateRequest.RateRequest) (*ratedto.RateInput, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "start_date", Reason: "expected YYYY-MM-DD"}
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "end_date", Reason: "expected YYYY-MM-DD"}
	}

	return &ratedto.RateInput{
		Origin:        req.Origin,
		Destination:   req.Destination,
		GoodsCategory: req.GoodsCategory,
		PostalService: req.PostalService,
		StartDate:     start,
		EndDate:       end,
		MinWeight:     req.MinWeight,
		MaxWeight:     req.MaxWeight,
		RateFraction:  req.RateFraction,
		MinimumTariff: req.MinimumTariff,
		MaximumTariff: req.MaximumTariff,
		Currency:      req.Currency,
		Notes:         req.Notes,
	}, nil
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
