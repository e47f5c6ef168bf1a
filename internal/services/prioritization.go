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

type PrioritizationService interface {
	ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Prioritization, error)
	Create(ctx context.Context, usecaseID int, prioritization *types.Prioritization) (*types.Prioritization, error)
}

type prioritizationService struct {
	db          *gorm.DB
	log         *logger.Logger
	prioRepo    repos.PrioritizationRepo
	usecaseRepo repos.UseCaseRepo
}

func NewPrioritizationService(db *gorm.DB, log *logger.Logger, prioRepo repos.PrioritizationRepo, usecaseRepo repos.UseCaseRepo) PrioritizationService {
	serviceLog := log.With("service", "PrioritizationService")
	return &prioritizationService{
		db:          db,
		log:         serviceLog,
		prioRepo:    prioRepo,
		usecaseRepo: usecaseRepo,
	}
}

func (s *prioritizationService) ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Prioritization, error) {
	return s.prioRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

// Create derives the RICE score (reach * impact * confidence / effort) when
// all four inputs are present and stores it alongside the raw inputs.
func (s *prioritizationService) Create(ctx context.Context, usecaseID int, prioritization *types.Prioritization) (*types.Prioritization, error) {
	if prioritization.UseCasesID != 0 && prioritization.UseCasesID != usecaseID {
		return nil, fmt.Errorf("%w: use case ID mismatch", ErrValidation)
	}
	if score, ok := riceScore(prioritization); ok {
		prioritization.RICEScore = &score
	}
	var out *types.Prioritization
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, usecaseID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		prioritization.Id = 0
		prioritization.UseCasesID = usecaseID
		if err := s.prioRepo.Create(dbc, prioritization); err != nil {
			return err
		}
		out = prioritization
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func riceScore(p *types.Prioritization) (float64, bool) {
	if p.Reach == nil || p.Impact == nil || p.Confidence == nil || p.Effort == nil {
		return 0, false
	}
	if *p.Effort == 0 {
		return 0, false
	}
	return *p.Reach * *p.Impact * *p.Confidence / *p.Effort, true
}
