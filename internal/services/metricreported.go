package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type MetricReportedService interface {
	ListByUseCase(ctx context.Context, usecaseID int) ([]*types.MetricReported, error)
	ListByMetric(ctx context.Context, metricID int) ([]*types.MetricReported, error)
	Create(ctx context.Context, reading *types.MetricReported) (*types.MetricReported, error)
}

type metricReportedService struct {
	db           *gorm.DB
	log          *logger.Logger
	reportedRepo repos.MetricReportedRepo
	usecaseRepo  repos.UseCaseRepo
}

func NewMetricReportedService(db *gorm.DB, log *logger.Logger, reportedRepo repos.MetricReportedRepo, usecaseRepo repos.UseCaseRepo) MetricReportedService {
	serviceLog := log.With("service", "MetricReportedService")
	return &metricReportedService{
		db:           db,
		log:          serviceLog,
		reportedRepo: reportedRepo,
		usecaseRepo:  usecaseRepo,
	}
}

func (s *metricReportedService) ListByUseCase(ctx context.Context, usecaseID int) ([]*types.MetricReported, error) {
	return s.reportedRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

func (s *metricReportedService) ListByMetric(ctx context.Context, metricID int) ([]*types.MetricReported, error) {
	return s.reportedRepo.GetByMetricID(dbctx.Context{Ctx: ctx}, metricID)
}

func (s *metricReportedService) Create(ctx context.Context, reading *types.MetricReported) (*types.MetricReported, error) {
	var out *types.MetricReported
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, reading.UseCasesID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		now := time.Now().UTC()
		reading.Id = 0
		reading.Created = &now
		if err := s.reportedRepo.Create(dbc, reading); err != nil {
			return err
		}
		out = reading
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
