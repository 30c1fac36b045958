package main

import (
	"net/http"
	"os"

	"github.com/ironman07017-lang/vibeosys-inventory/config"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/delivery"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/format"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/metrics"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/repository"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/session"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Starting Inventory Service...")

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLevel(cfg.Level())
	if cfg.Level() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Dependency Injection ---
	productIDs, err := idgen.New(cfg.IDStrategy)
	if err != nil {
		logger.Fatalf("Failed to create product id generator: %v", err)
	}
	materialKeys, err := idgen.New(cfg.IDStrategy)
	if err != nil {
		logger.Fatalf("Failed to create material key generator: %v", err)
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	productRepo := repository.NewInMemoryProductRepository(productIDs, logger)
	var seed []domain.Product
	if cfg.SeedDemoData {
		seed = repository.DemoProducts()
	}
	if err := productRepo.Init(seed); err != nil {
		logger.Fatalf("Failed to initialise product store: %v", err)
	}
	logger.Info("Product store initialized.")

	productUseCase := usecase.NewProductUseCase(productRepo, materialKeys, recorder, logger)
	productUseCase.RefreshMetrics()
	sessions := session.NewManager(productUseCase, materialKeys, cfg.SessionIdleTTL, logger)
	logger.Info("Use cases initialized.")

	formatter, err := format.NewFormatter(cfg.CurrencySymbol, cfg.DisplayLocale, cfg.DateLayout)
	if err != nil {
		logger.Fatalf("Failed to create display formatter: %v", err)
	}
	presenter := delivery.NewPresenter(formatter)

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	router := delivery.NewRouter(logger, metricsHandler,
		delivery.NewCategoryHandler(logger),
		delivery.NewProductHandler(productUseCase, presenter, logger),
		delivery.NewInventoryHandler(productUseCase, presenter, logger),
		delivery.NewSessionHandler(sessions, presenter, logger),
	)
	logger.Info("API Routes registered.")

	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
