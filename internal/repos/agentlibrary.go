package repos

import (
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

type AgentLibraryRepo interface {
	GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.AgentLibrary, error)
	Create(dbc dbctx.Context, entry *types.AgentLibrary) error
}

type agentLibraryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAgentLibraryRepo(db *gorm.DB, baseLog *logger.Logger) AgentLibraryRepo {
	repoLog := baseLog.With("repo", "AgentLibraryRepo")
	return &agentLibraryRepo{db: db, log: repoLog}
}

func (r *agentLibraryRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *agentLibraryRepo) GetByUseCaseID(dbc dbctx.Context, usecaseID int) ([]*types.AgentLibrary, error) {
	var results []*types.AgentLibrary
	if err := r.handle(dbc).
		Where(`"UseCasesID" = ?`, usecaseID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *agentLibraryRepo) Create(dbc dbctx.Context, entry *types.AgentLibrary) error {
	return r.handle(dbc).Create(entry).Error
}
