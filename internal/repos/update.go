package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type UpdateRepo interface {
	// GetByUseCaseID returns updates most-recent-first by surrogate id;
	// the table has no timestamp column.
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Update, error)
	Create(dbc dbctx.Context, update *types.Update) error
}

type updateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUpdateRepo(db *gorm.DB, baseLog *logger.Logger) UpdateRepo {
	repoLog := baseLog.With("repo", "UpdateRepo")
	return &updateRepo{db: db, log: repoLog}
}

func (r *updateRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *updateRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.Update, error) {
	var results []*types.Update
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Order(`"Id" DESC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *updateRepo) Create(dbc dbctx.Context, update *types.Update) error {
	return r.handle(dbc).Create(update).Error
}
