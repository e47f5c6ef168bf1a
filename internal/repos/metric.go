package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type MetricRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Metric, error)
	Create(dbc dbctx.Context, metric *types.Metric) error
}

type metricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricRepo(db *gorm.DB, baseLog *logger.Logger) MetricRepo {
	repoLog := baseLog.With("repo", "MetricRepo")
	return &metricRepo{db: db, log: repoLog}
}

func (r *metricRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *metricRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Metric, error) {
	var results []*types.Metric
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *metricRepo) Create(dbc dbctx.Context, metric *types.Metric) error {
	return r.handle(dbc).Create(metric).Error
}
