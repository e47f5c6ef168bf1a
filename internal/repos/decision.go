package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type DecisionRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Decision, error)
	Create(dbc dbctx.Context, decision *types.Decision) error
}

type decisionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDecisionRepo(db *gorm.DB, baseLog *logger.Logger) DecisionRepo {
	repoLog := baseLog.With("repo", "DecisionRepo")
	return &decisionRepo{db: db, log: repoLog}
}

func (r *decisionRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *decisionRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Decision, error) {
	var results []*types.Decision
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *decisionRepo) Create(dbc dbctx.Context, decision *types.Decision) error {
	return r.handle(dbc).Create(decision).Error
}
