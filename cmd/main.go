package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/enterprise-ai/aihub-backend/internal/db"
	"github.com/enterprise-ai/aihub-backend/internal/handlers"
	"github.com/enterprise-ai/aihub-backend/internal/middleware"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/server"
	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}

	// The server starts even when the database is unreachable; /health
	// reports the categorized connection state until it recovers.
	connectRetries := utils.GetEnvAsInt("DB_CONNECT_RETRIES", 5, log)
	connectBaseDelayMs := utils.GetEnvAsInt("DB_CONNECT_BASE_DELAY_MS", 1000, log)
	connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	if err := postgresService.WaitForConnection(connectCtx, connectRetries, time.Duration(connectBaseDelayMs)*time.Millisecond); err != nil {
		log.Warn("Database not reachable at startup", "error", err)
	} else {
		if err := postgresService.AutoMigrateAll(); err != nil {
			log.Warn("Postgres auto migration failed", "error", err)
		}
		if err := db.SeedLookupData(postgresService.DB(), log); err != nil {
			log.Warn("Lookup data seeding failed", "error", err)
		}
	}
	cancel()
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	usecaseRepo := repos.NewUseCaseRepo(thePG, log)
	metricRepo := repos.NewMetricRepo(thePG, log)
	metricReportedRepo := repos.NewMetricReportedRepo(thePG, log)
	decisionRepo := repos.NewDecisionRepo(thePG, log)
	updateRepo := repos.NewUpdateRepo(thePG, log)
	stakeholderRepo := repos.NewStakeholderRepo(thePG, log)
	planRepo := repos.NewPlanRepo(thePG, log)
	prioritizationRepo := repos.NewPrioritizationRepo(thePG, log)
	agentLibraryRepo := repos.NewAgentLibraryRepo(thePG, log)
	checklistRepo := repos.NewChecklistRepo(thePG, log)
	lookupRepo := repos.NewLookupRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	usecaseService := services.NewUseCaseService(thePG, log, usecaseRepo, stakeholderRepo, planRepo)
	metricService := services.NewMetricService(thePG, log, metricRepo, usecaseRepo)
	metricReportedService := services.NewMetricReportedService(thePG, log, metricReportedRepo, usecaseRepo)
	decisionService := services.NewDecisionService(thePG, log, decisionRepo, usecaseRepo)
	updateService := services.NewUpdateService(thePG, log, updateRepo, usecaseRepo)
	prioritizationService := services.NewPrioritizationService(thePG, log, prioritizationRepo, usecaseRepo)
	agentLibraryService := services.NewAgentLibraryService(thePG, log, agentLibraryRepo, usecaseRepo)
	checklistService := services.NewChecklistService(thePG, log, checklistRepo, usecaseRepo)
	lookupService := services.NewLookupService(thePG, log, lookupRepo)
	kpiService := services.NewKPIService(thePG, log, usecaseRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	apiTitle := utils.GetEnv("API_TITLE", "AI Hub Backend", log)
	apiVersion := utils.GetEnv("API_VERSION", "1.0.0", log)
	healthHandler := handlers.NewHealthHandler(postgresService, apiTitle, apiVersion)
	usecaseHandler := handlers.NewUseCaseHandler(usecaseService)
	metricHandler := handlers.NewMetricHandler(metricService)
	metricReportedHandler := handlers.NewMetricReportedHandler(metricReportedService)
	decisionHandler := handlers.NewDecisionHandler(decisionService)
	updateHandler := handlers.NewUpdateHandler(updateService)
	agentLibraryHandler := handlers.NewAgentLibraryHandler(agentLibraryService)
	prioritizationHandler := handlers.NewPrioritizationHandler(prioritizationService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)
	lookupHandler := handlers.NewLookupHandler(lookupService)
	kpiHandler := handlers.NewKPIHandler(kpiService)

	// Middleware
	log.Info("Setting up middleware from main...")
	requestLogger := middleware.NewRequestLogger(log)

	// Router
	log.Info("Setting up router from main...")
	corsOrigins := utils.GetEnvAsList("CORS_ORIGINS", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}, log)
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:           corsOrigins,
		RequestLogger:         requestLogger,
		HealthHandler:         healthHandler,
		UseCaseHandler:        usecaseHandler,
		MetricHandler:         metricHandler,
		MetricReportedHandler: metricReportedHandler,
		UpdateHandler:         updateHandler,
		DecisionHandler:       decisionHandler,
		AgentLibraryHandler:   agentLibraryHandler,
		PrioritizationHandler: prioritizationHandler,
		ChecklistHandler:      checklistHandler,
		LookupHandler:         lookupHandler,
		KPIHandler:            kpiHandler,
	})

	host := utils.GetEnv("API_HOST", "0.0.0.0", log)
	port := utils.GetEnv("API_PORT", "8000", log)
	addr := host + ":" + port
	log.Info("Server listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
