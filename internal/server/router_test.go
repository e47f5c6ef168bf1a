package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/handlers"
	"github.com/enterprise-ai/aihub-backend/internal/middleware"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/services"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.UseCase{}, &types.Metric{}, &types.MetricReported{},
		&types.Decision{}, &types.Update{},
		&types.Stakeholder{}, &types.NewStakeholder{}, &types.Plan{},
		&types.Prioritization{}, &types.AgentLibrary{},
		&types.AIProductQuestion{}, &types.AIProductChecklistResponse{},
		&types.StatusMapping{}, &types.BusinessUnitMapping{},
		&types.AIThemeMapping{}, &types.PersonaMapping{},
		&types.VendorModelMapping{}, &types.RoleMapping{},
		&types.PhaseMapping{}, &types.AIChampion{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	usecaseRepo := repos.NewUseCaseRepo(db, log)
	metricRepo := repos.NewMetricRepo(db, log)
	metricReportedRepo := repos.NewMetricReportedRepo(db, log)
	decisionRepo := repos.NewDecisionRepo(db, log)
	updateRepo := repos.NewUpdateRepo(db, log)
	stakeholderRepo := repos.NewStakeholderRepo(db, log)
	planRepo := repos.NewPlanRepo(db, log)
	prioritizationRepo := repos.NewPrioritizationRepo(db, log)
	agentLibraryRepo := repos.NewAgentLibraryRepo(db, log)
	checklistRepo := repos.NewChecklistRepo(db, log)
	lookupRepo := repos.NewLookupRepo(db, log)

	return NewRouter(RouterConfig{
		CORSOrigins:           []string{"http://localhost:3000"},
		RequestLogger:         middleware.NewRequestLogger(log),
		HealthHandler:         handlers.NewHealthHandler(nil, "AI Hub Backend", "1.0.0"),
		UseCaseHandler:        handlers.NewUseCaseHandler(services.NewUseCaseService(db, log, usecaseRepo, stakeholderRepo, planRepo)),
		MetricHandler:         handlers.NewMetricHandler(services.NewMetricService(db, log, metricRepo, usecaseRepo)),
		MetricReportedHandler: handlers.NewMetricReportedHandler(services.NewMetricReportedService(db, log, metricReportedRepo, usecaseRepo)),
		UpdateHandler:         handlers.NewUpdateHandler(services.NewUpdateService(db, log, updateRepo, usecaseRepo)),
		DecisionHandler:       handlers.NewDecisionHandler(services.NewDecisionService(db, log, decisionRepo, usecaseRepo)),
		AgentLibraryHandler:   handlers.NewAgentLibraryHandler(services.NewAgentLibraryService(db, log, agentLibraryRepo, usecaseRepo)),
		PrioritizationHandler: handlers.NewPrioritizationHandler(services.NewPrioritizationService(db, log, prioritizationRepo, usecaseRepo)),
		ChecklistHandler:      handlers.NewChecklistHandler(services.NewChecklistService(db, log, checklistRepo, usecaseRepo)),
		LookupHandler:         handlers.NewLookupHandler(services.NewLookupService(db, log, lookupRepo)),
		KPIHandler:            handlers.NewKPIHandler(services.NewKPIService(db, log, usecaseRepo)),
	})
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LookupRoutesLiveUnderAPIPrefix(t *testing.T) {
	router := newTestEngine(t)

	paths := []string{
		"/status-mappings",
		"/business-units",
		"/business-units/stakeholder/Legal",
		"/ai-themes",
		"/personas",
		"/vendors",
		"/aimodels",
		"/business-structure",
		"/roles",
		"/phase-mappings",
		"/dropdown-data",
		"/champions",
	}
	for _, p := range paths {
		if rec := get(t, router, "/api"+p); rec.Code != http.StatusOK {
			t.Errorf("GET /api%s: expected 200, got %d: %s", p, rec.Code, rec.Body.String())
		}
		if rec := get(t, router, p); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404 outside /api, got %d", p, rec.Code)
		}
	}
}

func TestRouter_KPIAndUseCaseRoutesRegistered(t *testing.T) {
	router := newTestEngine(t)

	for _, p := range []string{
		"/api/usecases",
		"/api/usecases/recent",
		"/api/usecases/kpi/previous-week",
		"/api/usecases/kpi/implemented",
		"/api/usecases/timeline/submissions",
		"/api/kpi/dashboard",
	} {
		if rec := get(t, router, p); rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d: %s", p, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_RootReportsConfiguredMetadata(t *testing.T) {
	router := newTestEngine(t)

	rec := get(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /: expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["service"] != "AI Hub Backend" || body["version"] != "1.0.0" {
		t.Fatalf("unexpected metadata: %+v", body)
	}
}
