package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type MetricService interface {
	ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Metric, error)
	Create(ctx context.Context, metric *types.Metric) (*types.Metric, error)
}

type metricService struct {
	db          *gorm.DB
	log         *logger.Logger
	metricRepo  repos.MetricRepo
	usecaseRepo repos.UseCaseRepo
}

func NewMetricService(db *gorm.DB, log *logger.Logger, metricRepo repos.MetricRepo, usecaseRepo repos.UseCaseRepo) MetricService {
	serviceLog := log.With("service", "MetricService")
	return &metricService{
		db:          db,
		log:         serviceLog,
		metricRepo:  metricRepo,
		usecaseRepo: usecaseRepo,
	}
}

func (s *metricService) ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Metric, error) {
	return s.metricRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

// Create resolves the referenced use case first; if it is absent the insert
// is not attempted.
func (s *metricService) Create(ctx context.Context, metric *types.Metric) (*types.Metric, error) {
	var out *types.Metric
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, metric.UseCasesID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		metric.Id = 0
		if err := s.metricRepo.Create(dbc, metric); err != nil {
			return err
		}
		out = metric
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
