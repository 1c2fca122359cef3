package http

import (
	"net/http"

	"github.com/airmailops/tariff-service/internal/delivery/http/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the administrative and calculation endpoints.
func NewRouter(
	rateHandler *handlers.RateHandler,
	tariffHandler *handlers.TariffHandler,
	coverageHandler *handlers.CoverageHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/rates", func(r chi.Router) {
		r.Post("/", rateHandler.CreateRate)
		r.Get("/", rateHandler.ListRates)
		r.Post("/validate", rateHandler.ValidateRate)
		r.Post("/validate-batch", rateHandler.ValidateRateBatch)

		r.Route("/{rateID}", func(r chi.Router) {
			r.Get("/", rateHandler.GetRate)
			r.Put("/", rateHandler.UpdateRate)
			r.Delete("/", rateHandler.DeleteRate)
			r.Post("/deactivate", rateHandler.DeactivateRate)
		})
	})

	r.Post("/tariffs/calculate", tariffHandler.CalculateTariff)
	r.Post("/tariffs/recalculate", tariffHandler.RecalculateBatch)
	r.Post("/shipments", tariffHandler.ProcessShipment)

	r.Get("/reports/coverage", coverageHandler.CoverageReport)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
