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

type UpdateService interface {
	ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Update, error)
	Create(ctx context.Context, update *types.Update) (*types.Update, error)
}

type updateService struct {
	db          *gorm.DB
	log         *logger.Logger
	updateRepo  repos.UpdateRepo
	usecaseRepo repos.UseCaseRepo
}

func NewUpdateService(db *gorm.DB, log *logger.Logger, updateRepo repos.UpdateRepo, usecaseRepo repos.UseCaseRepo) UpdateService {
	serviceLog := log.With("service", "UpdateService")
	return &updateService{
		db:          db,
		log:         serviceLog,
		updateRepo:  updateRepo,
		usecaseRepo: usecaseRepo,
	}
}

func (s *updateService) ListByUseCase(ctx context.Context, usecaseID int) ([]*types.Update, error) {
	return s.updateRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

func (s *updateService) Create(ctx context.Context, update *types.Update) (*types.Update, error) {
	var out *types.Update
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, update.UseCasesID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		update.Id = 0
		if err := s.updateRepo.Create(dbc, update); err != nil {
			return err
		}
		out = update
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
