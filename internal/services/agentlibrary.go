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

type AgentLibraryService interface {
	ListByUseCase(ctx context.Context, usecaseID int) ([]*types.AgentLibrary, error)
	Create(ctx context.Context, usecaseID int, entry *types.AgentLibrary) (*types.AgentLibrary, error)
}

type agentLibraryService struct {
	db          *gorm.DB
	log         *logger.Logger
	agentRepo   repos.AgentLibraryRepo
	usecaseRepo repos.UseCaseRepo
}

func NewAgentLibraryService(db *gorm.DB, log *logger.Logger, agentRepo repos.AgentLibraryRepo, usecaseRepo repos.UseCaseRepo) AgentLibraryService {
	serviceLog := log.With("service", "AgentLibraryService")
	return &agentLibraryService{
		db:          db,
		log:         serviceLog,
		agentRepo:   agentRepo,
		usecaseRepo: usecaseRepo,
	}
}

func (s *agentLibraryService) ListByUseCase(ctx context.Context, usecaseID int) ([]*types.AgentLibrary, error) {
	return s.agentRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

func (s *agentLibraryService) Create(ctx context.Context, usecaseID int, entry *types.AgentLibrary) (*types.AgentLibrary, error) {
	if entry.UseCasesID != 0 && entry.UseCasesID != usecaseID {
		return nil, fmt.Errorf("%w: use case ID mismatch", ErrValidation)
	}
	var out *types.AgentLibrary
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, usecaseID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		entry.Id = 0
		entry.UseCasesID = usecaseID
		if err := s.agentRepo.Create(dbc, entry); err != nil {
			return err
		}
		out = entry
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
