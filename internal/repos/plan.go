package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type PlanRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Plan, error)
	Create(dbc dbctx.Context, plan *types.Plan) error
}

type planRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanRepo(db *gorm.DB, baseLog *logger.Logger) PlanRepo {
	repoLog := baseLog.With("repo", "PlanRepo")
	return &planRepo{db: db, log: repoLog}
}

func (r *planRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *planRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Plan, error) {
	var results []*types.Plan
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Order(`"StartDate" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *planRepo) Create(dbc dbctx.Context, plan *types.Plan) error {
	return r.handle(dbc).Create(plan).Error
}
