package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type ChecklistRepo interface {
	GetQuestions(dbc dbctx.Context) ([]*types.AIProductQuestion, error)
	GetResponsesByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.AIProductChecklistResponse, error)
	CreateResponse(dbc dbctx.Context, response *types.AIProductChecklistResponse) error
}

type checklistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChecklistRepo(db *gorm.DB, baseLog *logger.Logger) ChecklistRepo {
	repoLog := baseLog.With("repo", "ChecklistRepo")
	return &checklistRepo{db: db, log: repoLog}
}

func (r *checklistRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *checklistRepo) GetQuestions(dbc dbctx.Context) ([]*types.AIProductQuestion, error) {
	var results []*types.AIProductQuestion
	if err := r.handle(dbc).
		Order(`"ID" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checklistRepo) GetResponsesByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.AIProductChecklistResponse, error) {
	var results []*types.AIProductChecklistResponse
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checklistRepo) CreateResponse(dbc dbctx.Context, response *types.AIProductChecklistResponse) error {
	return r.handle(dbc).Create(response).Error
}
