package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/enterprise-ai/aihub-backend/internal/handlers"
	"github.com/enterprise-ai/aihub-backend/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins           []string
	RequestLogger         *middleware.RequestLogger
	HealthHandler         *handlers.HealthHandler
	UseCaseHandler        *handlers.UseCaseHandler
	MetricHandler         *handlers.MetricHandler
	MetricReportedHandler *handlers.MetricReportedHandler
	UpdateHandler         *handlers.UpdateHandler
	DecisionHandler       *handlers.DecisionHandler
	AgentLibraryHandler   *handlers.AgentLibraryHandler
	PrioritizationHandler *handlers.PrioritizationHandler
	ChecklistHandler      *handlers.ChecklistHandler
	LookupHandler         *handlers.LookupHandler
	KPIHandler            *handlers.KPIHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(cfg.RequestLogger.Handler())
	router.Use(gin.Recovery())

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/health", cfg.HealthHandler.Health)
	router.GET("/", cfg.HealthHandler.Root)

	api := router.Group("/api")
	{
		// Lookup tables
		api.GET("/status-mappings", cfg.LookupHandler.StatusMappings)
		api.GET("/business-units", cfg.LookupHandler.BusinessUnits)
		api.GET("/business-units/stakeholder/:business_unit", cfg.LookupHandler.ChampionsForBusinessUnit)
		api.GET("/ai-themes", cfg.LookupHandler.AIThemes)
		api.GET("/personas", cfg.LookupHandler.Personas)
		api.GET("/vendors", cfg.LookupHandler.Vendors)
		api.GET("/aimodels", cfg.LookupHandler.AIModelHierarchy)
		api.GET("/business-structure", cfg.LookupHandler.BusinessStructure)
		api.GET("/roles", cfg.LookupHandler.Roles)
		api.GET("/phase-mappings", cfg.LookupHandler.Phases)
		api.GET("/dropdown-data", cfg.LookupHandler.DropdownData)
		api.GET("/champions", cfg.LookupHandler.ChampionNames)

		usecases := api.Group("/usecases")
		{
			usecases.GET("", cfg.UseCaseHandler.List)
			usecases.POST("", cfg.UseCaseHandler.Create)
			usecases.GET("/recent", cfg.UseCaseHandler.Recent)
			usecases.GET("/kpi/previous-week", cfg.UseCaseHandler.PreviousWeekKPI)
			usecases.GET("/kpi/implemented", cfg.UseCaseHandler.ImplementedKPI)
			usecases.GET("/timeline/submissions", cfg.UseCaseHandler.SubmissionTimeline)
			usecases.GET("/:id", cfg.UseCaseHandler.Get)
			usecases.PUT("/:id", cfg.UseCaseHandler.Update)
			usecases.DELETE("/:id", cfg.UseCaseHandler.Delete)
			usecases.GET("/:id/stakeholders", cfg.UseCaseHandler.ListStakeholders)
			usecases.POST("/:id/stakeholders", cfg.UseCaseHandler.CreateStakeholder)
			usecases.GET("/:id/plan", cfg.UseCaseHandler.ListPlans)
			usecases.POST("/:id/plan", cfg.UseCaseHandler.CreatePlan)
			usecases.GET("/:id/agent-library", cfg.AgentLibraryHandler.ListByUseCase)
			usecases.POST("/:id/agent-library", cfg.AgentLibraryHandler.Create)
			usecases.GET("/:id/prioritize", cfg.PrioritizationHandler.ListByUseCase)
			usecases.POST("/:id/prioritize", cfg.PrioritizationHandler.Create)
			usecases.GET("/:id/checklist", cfg.ChecklistHandler.GetForUseCase)
			usecases.POST("/:id/checklist", cfg.ChecklistHandler.CreateResponse)
		}

		api.GET("/kpi/dashboard", cfg.KPIHandler.Dashboard)

		api.GET("/metrics/:usecases_id", cfg.MetricHandler.ListByUseCase)
		api.POST("/metrics", cfg.MetricHandler.Create)
		// per-metric readings use a query parameter so the path never
		// competes with the use-case wildcard
		api.GET("/metric-reported", cfg.MetricReportedHandler.ListByMetric)
		api.GET("/metric-reported/:usecases_id", cfg.MetricReportedHandler.ListByUseCase)
		api.POST("/metric-reported", cfg.MetricReportedHandler.Create)
		api.GET("/updates/:usecases_id", cfg.UpdateHandler.ListByUseCase)
		api.POST("/updates", cfg.UpdateHandler.Create)
		api.GET("/decisions/:usecases_id", cfg.DecisionHandler.ListByUseCase)
		api.POST("/decisions", cfg.DecisionHandler.Create)
	}

	return router
}
