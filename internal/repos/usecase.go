package repos

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

// TimelinePoint is one month bucket of the submission timeline.
type TimelinePoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type UseCaseRepo interface {
	GetAll(dbc dbctx.Context, offset, limit int, status, phase, businessUnit string) ([]*types.UseCase, error)
	GetByID(dbc dbctx.Context, id int) (*types.UseCase, error)
	Create(dbc dbctx.Context, usecase *types.UseCase) error
	Update(dbc dbctx.Context, id int, changes map[string]interface{}) (int64, error)
	Delete(dbc dbctx.Context, id int) (int64, error)
	CountInRange(dbc dbctx.Context, start, end time.Time) (int64, error)
	CountByStatus(dbc dbctx.Context, status string) (int64, error)
	CountAll(dbc dbctx.Context) (int64, error)
	SubmissionTimeline(dbc dbctx.Context, days int) ([]TimelinePoint, error)
	Recent(dbc dbctx.Context, limit int) ([]*types.UseCase, error)
	CreatedSince(dbc dbctx.Context, since time.Time) ([]*types.UseCase, error)
}

type useCaseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUseCaseRepo(db *gorm.DB, baseLog *logger.Logger) UseCaseRepo {
	repoLog := baseLog.With("repo", "UseCaseRepo")
	return &useCaseRepo{db: db, log: repoLog}
}

func (r *useCaseRepo) handle(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *useCaseRepo) GetAll(dbc dbctx.Context, offset, limit int, status, phase, businessUnit string) ([]*types.UseCase, error) {
	query := r.handle(dbc).Model(&types.UseCase{})
	if status != "" {
		query = query.Where(`"Status" = ?`, status)
	}
	if phase != "" {
		query = query.Where(`"Phase" = ?`, phase)
	}
	if businessUnit != "" {
		query = query.Where(`"BusinessUnit" = ?`, businessUnit)
	}

	var results []*types.UseCase
	if err := query.
		Order(`"Created" DESC`).
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *useCaseRepo) GetByID(dbc dbctx.Context, id int) (*types.UseCase, error) {
	var result types.UseCase
	if err := r.handle(dbc).
		Where(`"ID" = ?`, id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *useCaseRepo) Create(dbc dbctx.Context, usecase *types.UseCase) error {
	return r.handle(dbc).Create(usecase).Error
}

func (r *useCaseRepo) Update(dbc dbctx.Context, id int, changes map[string]interface{}) (int64, error) {
	if len(changes) == 0 {
		return 0, nil
	}
	res := r.handle(dbc).
		Model(&types.UseCase{}).
		Where(`"ID" = ?`, id).
		Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *useCaseRepo) Delete(dbc dbctx.Context, id int) (int64, error) {
	res := r.handle(dbc).
		Where(`"ID" = ?`, id).
		Delete(&types.UseCase{})
	return res.RowsAffected, res.Error
}

func (r *useCaseRepo) CountInRange(dbc dbctx.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.handle(dbc).
		Model(&types.UseCase{}).
		Where(`"Created" >= ? AND "Created" <= ?`, start, end).
		Count(&count).Error
	return count, err
}

func (r *useCaseRepo) CountByStatus(dbc dbctx.Context, status string) (int64, error) {
	var count int64
	err := r.handle(dbc).
		Model(&types.UseCase{}).
		Where(`"Status" = ?`, status).
		Count(&count).Error
	return count, err
}

func (r *useCaseRepo) CountAll(dbc dbctx.Context) (int64, error) {
	var count int64
	err := r.handle(dbc).
		Model(&types.UseCase{}).
		Count(&count).Error
	return count, err
}

// SubmissionTimeline buckets creations of the trailing window by calendar
// month (UTC), ascending by month label. Bucketing happens in Go so the same
// code path works on postgres and the sqlite test driver.
func (r *useCaseRepo) SubmissionTimeline(dbc dbctx.Context, days int) ([]TimelinePoint, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := r.CreatedSince(dbc, since)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	months := []string{}
	for _, uc := range rows {
		if uc.Created == nil {
			continue
		}
		month := uc.Created.UTC().Format("2006-01")
		if _, seen := counts[month]; !seen {
			months = append(months, month)
		}
		counts[month]++
	}
	sort.Strings(months)

	timeline := make([]TimelinePoint, 0, len(months))
	for _, m := range months {
		timeline = append(timeline, TimelinePoint{Month: m, Count: counts[m]})
	}
	return timeline, nil
}

func (r *useCaseRepo) Recent(dbc dbctx.Context, limit int) ([]*types.UseCase, error) {
	var results []*types.UseCase
	if err := r.handle(dbc).
		Order(`"Created" DESC`).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *useCaseRepo) CreatedSince(dbc dbctx.Context, since time.Time) ([]*types.UseCase, error) {
	var results []*types.UseCase
	if err := r.handle(dbc).
		Where(`"Created" IS NOT NULL AND "Created" >= ?`, since).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
