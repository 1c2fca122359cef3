package handlers

import (
	"net/http"

	"github.com/airmailops/tariff-service/internal/domain"
)

type CoverageHandler struct {
	coverageUsecase domain.CoverageUsecase
}

func NewCoverageHandler(coverageUsecase domain.CoverageUsecase) *CoverageHandler {
	return &CoverageHandler{coverageUsecase: coverageUsecase}
}

func (h *CoverageHandler) CoverageReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.coverageUsecase.CoverageReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
