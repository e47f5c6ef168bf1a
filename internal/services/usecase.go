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

// CountResult is the payload of the standalone KPI count endpoints.
type CountResult struct {
	Count  int64  `json:"count"`
	Period string `json:"period,omitempty"`
}

type UseCaseService interface {
	List(ctx context.Context, offset, limit int, status, phase, businessUnit string) ([]*types.UseCase, error)
	Get(ctx context.Context, id int) (*types.UseCase, error)
	Create(ctx context.Context, usecase *types.UseCase) (*types.UseCase, error)
	Update(ctx context.Context, id int, update types.UseCaseUpdate) (*types.UseCase, error)
	Delete(ctx context.Context, id int) error
	PreviousWeekCount(ctx context.Context) (CountResult, error)
	ImplementedCount(ctx context.Context) (CountResult, error)
	SubmissionTimeline(ctx context.Context) ([]repos.TimelinePoint, error)
	Recent(ctx context.Context, limit int) ([]*types.UseCase, error)
	ListStakeholders(ctx context.Context, usecaseID int) ([]*types.Stakeholder, error)
	CreateStakeholder(ctx context.Context, usecaseID int, stakeholder *types.Stakeholder) (*types.Stakeholder, error)
	ListPlans(ctx context.Context, usecaseID int) ([]*types.Plan, error)
	CreatePlan(ctx context.Context, usecaseID int, plan *types.Plan) (*types.Plan, error)
}

type useCaseService struct {
	db          *gorm.DB
	log         *logger.Logger
	usecaseRepo repos.UseCaseRepo
	stakeholder repos.StakeholderRepo
	planRepo    repos.PlanRepo
}

func NewUseCaseService(db *gorm.DB, log *logger.Logger, usecaseRepo repos.UseCaseRepo, stakeholderRepo repos.StakeholderRepo, planRepo repos.PlanRepo) UseCaseService {
	serviceLog := log.With("service", "UseCaseService")
	return &useCaseService{
		db:          db,
		log:         serviceLog,
		usecaseRepo: usecaseRepo,
		stakeholder: stakeholderRepo,
		planRepo:    planRepo,
	}
}

func (s *useCaseService) List(ctx context.Context, offset, limit int, status, phase, businessUnit string) ([]*types.UseCase, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0", ErrValidation)
	}
	if limit < 1 || limit > 100 {
		return nil, fmt.Errorf("%w: limit must be between 1 and 100", ErrValidation)
	}
	return s.usecaseRepo.GetAll(dbctx.Context{Ctx: ctx}, offset, limit, status, phase, businessUnit)
}

func (s *useCaseService) Get(ctx context.Context, id int) (*types.UseCase, error) {
	usecase, err := s.usecaseRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching use case: %w", err)
	}
	if usecase == nil {
		return nil, fmt.Errorf("use case %w", ErrNotFound)
	}
	return usecase, nil
}

// Create inserts a new use case with a server-assigned creation timestamp.
// No field is strictly required.
func (s *useCaseService) Create(ctx context.Context, usecase *types.UseCase) (*types.UseCase, error) {
	now := time.Now().UTC()
	usecase.ID = 0
	usecase.Created = &now
	if err := s.usecaseRepo.Create(dbctx.Context{Ctx: ctx}, usecase); err != nil {
		s.log.Error("Failed to create use case", "error", err)
		return nil, err
	}
	return usecase, nil
}

// Update applies only the supplied fields and returns the updated row.
func (s *useCaseService) Update(ctx context.Context, id int, update types.UseCaseUpdate) (*types.UseCase, error) {
	var out *types.UseCase
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.usecaseRepo.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("use case %w", ErrNotFound)
		}
		if _, err := s.usecaseRepo.Update(dbc, id, update.Changes()); err != nil {
			return err
		}
		out, err = s.usecaseRepo.GetByID(dbc, id)
		return err
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the use case row only. Dependent rows are left in place:
// the schema defines no cascade and deletion history predates this service,
// so orphaning is the documented policy.
func (s *useCaseService) Delete(ctx context.Context, id int) error {
	rows, err := s.usecaseRepo.Delete(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("use case %w", ErrNotFound)
	}
	return nil
}

func (s *useCaseService) PreviousWeekCount(ctx context.Context) (CountResult, error) {
	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	count, err := s.usecaseRepo.CountInRange(dbctx.Context{Ctx: ctx}, weekAgo, now)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Count: count, Period: "Last 7 days"}, nil
}

func (s *useCaseService) ImplementedCount(ctx context.Context) (CountResult, error) {
	count, err := s.usecaseRepo.CountByStatus(dbctx.Context{Ctx: ctx}, "Implemented")
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Count: count}, nil
}

func (s *useCaseService) SubmissionTimeline(ctx context.Context) ([]repos.TimelinePoint, error) {
	return s.usecaseRepo.SubmissionTimeline(dbctx.Context{Ctx: ctx}, 180)
}

func (s *useCaseService) Recent(ctx context.Context, limit int) ([]*types.UseCase, error) {
	if limit < 1 || limit > 10 {
		return nil, fmt.Errorf("%w: limit must be between 1 and 10, got %d", ErrValidation, limit)
	}
	return s.usecaseRepo.Recent(dbctx.Context{Ctx: ctx}, limit)
}

func (s *useCaseService) ListStakeholders(ctx context.Context, usecaseID int) ([]*types.Stakeholder, error) {
	return s.stakeholder.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

// CreateStakeholder inserts a stakeholder after verifying the referenced
// use case exists and the body's foreign key matches the path id. The row is
// dual-written to the successor New_Stakeholder table, which is kept in sync
// until the legacy table is retired.
func (s *useCaseService) CreateStakeholder(ctx context.Context, usecaseID int, stakeholder *types.Stakeholder) (*types.Stakeholder, error) {
	if stakeholder.UseCasesID != usecaseID {
		return nil, fmt.Errorf("%w: use case ID mismatch", ErrValidation)
	}
	var out *types.Stakeholder
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
		stakeholder.Id = 0
		stakeholder.Created = &now
		if err := s.stakeholder.Create(dbc, stakeholder); err != nil {
			return err
		}
		successor := &types.NewStakeholder{
			Stakeholder:     stakeholder.Stakeholder,
			Role:            stakeholder.Role,
			ReviewerType:    stakeholder.ReviewerType,
			StakeholderFlag: stakeholder.StakeholderFlag,
			UseCasesID:      stakeholder.UseCasesID,
			Created:         stakeholder.Created,
		}
		if err := s.stakeholder.CreateNew(dbc, successor); err != nil {
			return err
		}
		out = stakeholder
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *useCaseService) ListPlans(ctx context.Context, usecaseID int) ([]*types.Plan, error) {
	return s.planRepo.GetByUseCaseID(dbctx.Context{Ctx: ctx}, usecaseID)
}

// CreatePlan inserts a phase window after the same referential checks.
func (s *useCaseService) CreatePlan(ctx context.Context, usecaseID int, plan *types.Plan) (*types.Plan, error) {
	if plan.UseCasesID != usecaseID {
		return nil, fmt.Errorf("%w: use case ID mismatch", ErrValidation)
	}
	var out *types.Plan
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
		plan.Id = 0
		plan.Created = &now
		if err := s.planRepo.Create(dbc, plan); err != nil {
			return err
		}
		out = plan
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
