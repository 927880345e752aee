// cmd/claim-guard-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Mahi-sheth/final-ClaimGuard/internal/api/rest/v1"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/app"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/analysis"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/extraction"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/persistence"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/persistence/models"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/report"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/storage"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	sessions *session.Manager
	services *appServices
}

type appServices struct {
	auth       users.AuthService
	analysis   policies.PolicyAnalysisService
	metadata   policies.PolicyMetadataService
	simulation policies.ClaimSimulationService
	report     policies.ReportService
	charts     policies.ChartRenderer
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.PolicyModel{}, &models.UserModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	policyRepo, err := persistence.NewGormPolicyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy repository: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	// Initialize document store and analysis pipeline
	documentStore, err := storage.NewFsDocumentStore(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store: %w", err)
	}

	extractor, err := extraction.NewPdfExtractor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF extractor: %w", err)
	}

	predictor, err := analysis.NewRiskPredictor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create risk predictor: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(predictor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	// Initialize sessions
	sessions, err := session.NewManager(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(cfg, sessions, policyRepo, userRepo, documentStore, extractor, predictor, analyzer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		sessions: sessions,
		services: services,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	sessions *session.Manager,
	policyRepo policies.PolicyRepository,
	userRepo users.UserRepository,
	documentStore policies.DocumentStore,
	extractor policies.DocumentExtractor,
	predictor policies.RiskPredictor,
	analyzer policies.Analyzer,
	log logger.Logger,
) (*appServices, error) {
	authService, err := app.NewAuthService(userRepo, app.NewMemoryOtpStore(), app.NewLogSmsSender(log), sessions, &cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	analysisService, err := app.NewPolicyAnalysisService(documentStore, extractor, predictor, analyzer, policyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy analysis service: %w", err)
	}

	metadataService, err := app.NewPolicyMetadataService(policyRepo, documentStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy metadata service: %w", err)
	}

	simulationService, err := app.NewClaimSimulationService(policyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim simulation service: %w", err)
	}

	reportRenderer, err := report.NewPdfReportRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	reportService, err := app.NewReportService(policyRepo, reportRenderer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	chartRenderer, err := report.NewChartRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart renderer: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:       authService,
		analysis:   analysisService,
		metadata:   metadataService,
		simulation: simulationService,
		report:     reportService,
		charts:     chartRenderer,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.sessions,
		deps.services.auth,
		cfg.Auth.OtpTTLSeconds,
		deps.services.analysis,
		deps.services.metadata,
		deps.services.simulation,
		deps.services.report,
		deps.services.charts,
		cfg.Server.MaxUploadSizeMB<<20,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
