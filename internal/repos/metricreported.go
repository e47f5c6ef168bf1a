package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type MetricReportedRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.MetricReported, error)
	GetByMetricID(dbc dbctx.Context, metricID int) ([]*types.MetricReported, error)
	Create(dbc dbctx.Context, reading *types.MetricReported) error
}

type metricReportedRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricReportedRepo(db *gorm.DB, baseLog *logger.Logger) MetricReportedRepo {
	repoLog := baseLog.With("repo", "MetricReportedRepo")
	return &metricReportedRepo{db: db, log: repoLog}
}

func (r *metricReportedRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *metricReportedRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.MetricReported, error) {
	var results []*types.MetricReported
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Order(`"ReportedDate" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *metricReportedRepo) GetByMetricID(dbc dbctx.Context, metricID int) ([]*types.MetricReported, error) {
	var results []*types.MetricReported
	if err := r.handle(dbc).
		Where(`"MetricID" = ?`, metricID).
		Order(`"ReportedDate" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *metricReportedRepo) Create(dbc dbctx.Context, reading *types.MetricReported) error {
	return r.handle(dbc).Create(reading).Error
}
