package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type PrioritizationRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Prioritization, error)
	Create(dbc dbctx.Context, prioritization *types.Prioritization) error
}

type prioritizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPrioritizationRepo(db *gorm.DB, baseLog *logger.Logger) PrioritizationRepo {
	repoLog := baseLog.With("repo", "PrioritizationRepo")
	return &prioritizationRepo{db: db, log: repoLog}
}

func (r *prioritizationRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *prioritizationRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Prioritization, error) {
	var results []*types.Prioritization
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Order(`"Id" DESC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *prioritizationRepo) Create(dbc dbctx.Context, prioritization *types.Prioritization) error {
	return r.handle(dbc).Create(prioritization).Error
}
