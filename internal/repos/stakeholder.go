package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type StakeholderRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Stakeholder, error)
	Create(dbc dbctx.Context, stakeholder *types.Stakeholder) error
	CreateNew(dbc dbctx.Context, stakeholder *types.NewStakeholder) error
}

type stakeholderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStakeholderRepo(db *gorm.DB, baseLog *logger.Logger) StakeholderRepo {
	repoLog := baseLog.With("repo", "StakeholderRepo")
	return &stakeholderRepo{db: db, log: repoLog}
}

func (r *stakeholderRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *stakeholderRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Stakeholder, error) {
	var results []*types.Stakeholder
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *stakeholderRepo) Create(dbc dbctx.Context, stakeholder *types.Stakeholder) error {
	return r.handle(dbc).Create(stakeholder).Error
}

func (r *stakeholderRepo) CreateNew(dbc dbctx.Context, stakeholder *types.NewStakeholder) error {
	return r.handle(dbc).Create(stakeholder).Error
}
