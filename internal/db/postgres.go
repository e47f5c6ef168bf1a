package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
	"github.com/enterprise-ai/aihub-backend/internal/utils"
)

type PostgresService struct {
	db       *gorm.DB
	log      *logger.Logger
	host     string
	database string
}

// ConnectionStatus is the payload surfaced by /health.
type ConnectionStatus struct {
	Connected  bool   `json:"connected"`
	Message    string `json:"message"`
	Server     string `json:"server"`
	Database   string `json:"database"`
	ErrorType  string `json:"error_type,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "aihub", log)
	postgresSSLMode := utils.GetEnv("POSTGRES_SSLMODE", "disable", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName, postgresSSLMode)

	serviceLog.Info("Connecting to Postgres...", "host", postgresHost, "database", postgresName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to open Postgres handle", "error", err)
		return nil, fmt.Errorf("failed to open postgres handle: %w", err)
	}

	return &PostgresService{
		db:       db,
		log:      serviceLog,
		host:     postgresHost,
		database: postgresName,
	}, nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

// WaitForConnection pings the database with bounded exponential backoff.
// A cold/paused remote database and plain timeouts are retryable; an
// authentication failure is not.
func (s *PostgresService) WaitForConnection(ctx context.Context, maxRetries int, baseDelay time.Duration) error {
	if maxRetries < 1 {
		maxRetries = 1
	}
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		s.log.Info("Attempting database connection", "attempt", attempt+1, "max", maxRetries)
		lastErr = s.ping(ctx)
		if lastErr == nil {
			s.log.Info("Database connection successful")
			return nil
		}
		errType := categorizeError(lastErr)
		s.log.Warn("Database connection attempt failed", "error", lastErr, "error_type", errType)
		if errType == errTypeAuth {
			break
		}
		if attempt < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<attempt)
			s.log.Info("Retrying database connection", "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

func (s *PostgresService) ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Status runs a connectivity check and categorizes any failure for /health.
func (s *PostgresService) Status(ctx context.Context) ConnectionStatus {
	status := ConnectionStatus{
		Connected: true,
		Message:   "Connection successful",
		Server:    s.host,
		Database:  s.database,
	}
	if err := s.ping(ctx); err != nil {
		status.Connected = false
		status.Message = err.Error()
		status.ErrorType = categorizeError(err)
		status.Suggestion = suggestionFor(status.ErrorType)
	}
	return status
}

const (
	errTypePaused  = "database_paused"
	errTypeTimeout = "connection_timeout"
	errTypeRefused = "connection_refused"
	errTypeAuth    = "authentication_failed"
	errTypeUnknown = "unknown"
)

func categorizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "starting up") || strings.Contains(msg, "cannot connect now") || strings.Contains(msg, "57p03"):
		return errTypePaused
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return errTypeTimeout
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host"):
		return errTypeRefused
	case strings.Contains(msg, "password authentication failed") || strings.Contains(msg, "28p01") || strings.Contains(msg, "role") && strings.Contains(msg, "does not exist"):
		return errTypeAuth
	default:
		return errTypeUnknown
	}
}

func suggestionFor(errType string) string {
	switch errType {
	case errTypePaused:
		return "Database is resuming; retry shortly"
	case errTypeTimeout:
		return "Check network connectivity and firewall settings"
	case errTypeRefused:
		return "Verify the database host/port and that the server is running"
	case errTypeAuth:
		return "Verify database credentials"
	default:
		return "Check database status and configuration"
	}
}

// AutoMigrateAll creates/updates every table. Dependent tables carry plain
// integer UseCasesID columns; no cascading constraints are added.
func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.UseCase{},
		&types.Metric{},
		&types.MetricReported{},
		&types.Decision{},
		&types.Update{},
		&types.Stakeholder{},
		&types.NewStakeholder{},
		&types.Plan{},
		&types.Prioritization{},
		&types.AgentLibrary{},
		&types.AIProductQuestion{},
		&types.AIProductChecklistResponse{},
		&types.PhaseApprovalInformation{},
		&types.AIThemeMapping{},
		&types.PersonaMapping{},
		&types.VendorModelMapping{},
		&types.BusinessUnitMapping{},
		&types.RoleMapping{},
		&types.StatusMapping{},
		&types.ImplementationTimespan{},
		&types.ReportingFrequency{},
		&types.UnitOfMeasure{},
		&types.PhaseMapping{},
		&types.RICE{},
		&types.Outcome{},
		&types.AIChampion{},
		&types.Delivery{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
