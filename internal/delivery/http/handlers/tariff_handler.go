package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	tariffRequest "github.com/airmailops/tariff-service/internal/delivery/http/dto/tariff/request"
	tariffResponse "github.com/airmailops/tariff-service/internal/delivery/http/dto/tariff/response"
	"github.com/airmailops/tariff-service/internal/domain"
)

type TariffHandler struct {
	tariffUsecase domain.TariffUsecase
	classifier    domain.GoodsClassifier
	detector      domain.PostalServiceDetector
}

func NewTariffHandler(
	tariffUsecase domain.TariffUsecase,
	classifier domain.GoodsClassifier,
	detector domain.PostalServiceDetector,
) *TariffHandler {
	return &TariffHandler{
		tariffUsecase: tariffUsecase,
		classifier:    classifier,
		detector:      detector,
	}
}

func (h *TariffHandler) CalculateTariff(w http.ResponseWriter, r *http.Request) {
	var req tariffRequest.CalculateTariffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	tariffReq, err := tariffRequestFromDTO(&req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.tariffUsecase.CalculateTariff(r.Context(), tariffReq)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tariffResponse.FromResult(result))
}

func (h *TariffHandler) ProcessShipment(w http.ResponseWriter, r *http.Request) {
	var req tariffRequest.ProcessShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	tariffReq, err := tariffRequestFromDTO(&req.CalculateTariffRequest)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	// Fill in scope the sender left blank: the declaration text and the
	// tracking number format carry enough to classify.
	if tariffReq.GoodsCategory == domain.Wildcard && req.Contents != "" && h.classifier != nil {
		tariffReq.GoodsCategory = h.classifier.Classify(req.Contents)
	}
	if tariffReq.PostalService == domain.Wildcard && req.TrackingNumber != "" && h.detector != nil {
		tariffReq.PostalService = h.detector.Detect(req.TrackingNumber)
	}

	shipment := &domain.Shipment{
		TrackingNumber: req.TrackingNumber,
		Origin:         tariffReq.Origin,
		Destination:    tariffReq.Destination,
		GoodsCategory:  tariffReq.GoodsCategory,
		PostalService:  tariffReq.PostalService,
		ShipDate:       tariffReq.ShipDate,
		Weight:         tariffReq.Weight,
		DeclaredValue:  tariffReq.DeclaredValue,
		Currency:       req.Currency,
	}

	result, err := h.tariffUsecase.ProcessShipment(r.Context(), shipment)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := tariffResponse.FromResult(result)
	resp.ShipmentID = shipment.ID
	writeJSON(w, http.StatusCreated, resp)
}

func (h *TariffHandler) RecalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req tariffRequest.RecalculateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	stats, err := h.tariffUsecase.RecalculateBatch(r.Context(), req.ShipmentIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func tariffRequestFromDTO(req *tariffRequest.CalculateTariffRequest) (*domain.ShipmentTariffRequest, error) {
	if req.Origin == "" {
		return nil, &domain.ValidationError{Field: "origin", Reason: "required"}
	}
	if req.Destination == "" {
		return nil, &domain.ValidationError{Field: "destination", Reason: "required"}
	}

	shipDate := time.Now()
	if req.ShipDate != "" {
		parsed, err := time.Parse(dateLayout, req.ShipDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "ship_date", Reason: "expected YYYY-MM-DD"}
		}
		shipDate = parsed
	}

	goodsCategory := req.GoodsCategory
	if goodsCategory == "" {
		goodsCategory = domain.Wildcard
	}
	postalService := req.PostalService
	if postalService == "" {
		postalService = domain.Wildcard
	}

	return &domain.ShipmentTariffRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DeclaredValue: req.DeclaredValue,
		GoodsCategory: goodsCategory,
		PostalService: postalService,
		ShipDate:      shipDate,
		Weight:        req.Weight,
	}, nil
}
