package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

// ChecklistView pairs the master questions with a use case's responses.
type ChecklistView struct {
	Questions []*types.AIProductQuestion          `json:"questions"`
	Responses []*types.AIProductChecklistResponse `json:"responses"`
}

type ChecklistService interface {
	GetForUseCase(ctx context.Context, usecaseID int) (*ChecklistView, error)
	CreateResponse(ctx context.Context, usecaseID int, response *types.AIProductChecklistResponse) (*types.AIProductChecklistResponse, error)
}

type checklistService struct {
	db            *gorm.DB
	log           *logger.Logger
	checklistRepo repos.ChecklistRepo
	usecaseRepo   repos.UseCaseRepo
}

func NewChecklistService(db *gorm.DB, log *logger.Logger, checklistRepo repos.ChecklistRepo, usecaseRepo repos.UseCaseRepo) ChecklistService {
	serviceLog := log.With("service", "ChecklistService")
	return &checklistService{
		db:            db,
		log:           serviceLog,
		checklistRepo: checklistRepo,
		usecaseRepo:   usecaseRepo,
	}
}

func (s *checklistService) GetForUseCase(ctx context.Context, usecaseID int) (*ChecklistView, error) {
	dbc := dbctx.Context{Ctx: ctx}
	questions, err := s.checklistRepo.GetQuestions(dbc)
	if err != nil {
		return nil, err
	}
	responses, err := s.checklistRepo.GetResponsesByUseCaseID(dbc, usecaseID)
	if err != nil {
		return nil, err
	}
	return &ChecklistView{Questions: questions, Responses: responses}, nil
}

func (s *checklistService) CreateResponse(ctx context.Context, usecaseID int, response *types.AIProductChecklistResponse) (*types.AIProductChecklistResponse, error) {
	if response.UseCasesID != 0 && response.UseCasesID != usecaseID {
		return nil, fmt.Errorf("%w: use case ID mismatch", ErrValidation)
	}
	var out *types.AIProductChecklistResponse
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		parent, err := s.usecaseRepo.GetByID(dbc, usecaseID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		now := time.Now().UTC()
		response.Id = 0
		response.UseCasesID = usecaseID
		response.Created = &now
		if err := s.checklistRepo.CreateResponse(dbc, response); err != nil {
			return err
		}
		out = response
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
