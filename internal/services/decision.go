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

type DecisionService interface {
	ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Decision, error)
	Create(ctx context.Context, decision *types.Decision) (*types.Decision, error)
}

type decisionService struct {
	db           *gorm.DB
	log          *logger.Logger
	decisionRepo repos.DecisionRepo
	usecaseRepo  repos.UseCaseRepo
}

func NewDecisionService(db *gorm.DB, log *logger.Logger, decisionRepo repos.DecisionRepo, usecaseRepo repos.UseCaseRepo) DecisionService {
	serviceLog := log.With("service", "DecisionService")
	return &decisionService{
		db:           db,
		log:          serviceLog,
		decisionRepo: decisionRepo,
		usecaseRepo:  usecaseRepo,
	}
}

func (s *decisionService) ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Decision, error) {
	return s.decisionRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

func (s *decisionService) Create(ctx context.Context, decision *types.Decision) (*types.Decision, error) {
	var out *types.Decision
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, decision.UseCasesID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		decision.Id = 0
		if err := s.decisionRepo.Create(dbc, decision); err != nil {
			return err
		}
		out = decision
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
