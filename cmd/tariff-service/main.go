package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/airmailops/tariff-service/internal/classification"
	"github.com/airmailops/tariff-service/internal/config"
	httpdelivery "github.com/airmailops/tariff-service/internal/delivery/http"
	"github.com/airmailops/tariff-service/internal/delivery/http/handlers"
	"github.com/airmailops/tariff-service/internal/domain"
	"github.com/airmailops/tariff-service/internal/infrastructure/kafka"
	"github.com/airmailops/tariff-service/internal/infrastructure/metrics"
	"github.com/airmailops/tariff-service/internal/infrastructure/migrate"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres"
	"github.com/airmailops/tariff-service/internal/infrastructure/postgres/repository"
	"github.com/airmailops/tariff-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.TariffDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.TariffDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka publisher (optional)
	var pub domain.PublisherPort
	if cfg.KafkaService.Enabled {
		pub = kafka.NewDefaultKafkaPublisher([]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)})
	}

	// Metrics
	tariffMetrics := metrics.NewTariffMetrics()

	// Init repositories
	rateRepo := repository.NewDefaultTariffRateRepository(db)
	shipmentRepo := repository.NewDefaultShipmentRepository(db)
	configRepo := repository.NewDefaultSystemConfigRepository(db, cfg.Engine.DefaultFallbackRate)

	// Init usecases
	rateUsecase := usecase.NewDefaultRateUsecase(rateRepo, shipmentRepo, pub, tariffMetrics)
	tariffUsecase := usecase.NewDefaultTariffUsecase(rateRepo, shipmentRepo, configRepo, pub, tariffMetrics, cfg.Engine.BatchWorkers)
	coverageUsecase := usecase.NewDefaultCoverageUsecase(rateRepo, shipmentRepo)

	// Init handlers and router
	rateHandler := handlers.NewRateHandler(rateUsecase)
	tariffHandler := handlers.NewTariffHandler(
		tariffUsecase,
		classification.NewKeywordClassifier(),
		classification.NewTrackingServiceDetector(),
	)
	coverageHandler := handlers.NewCoverageHandler(coverageUsecase)
	router := httpdelivery.NewRouter(rateHandler, tariffHandler, coverageHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
