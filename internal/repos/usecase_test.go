package repos

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

func newTestDB(t *testing.T, models ...interface{}) (*gorm.DB, *logger.Logger) {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db, log
}

func seedUseCase(t *testing.T, repo UseCaseRepo, name, status, phase, unit string, created time.Time) *types.UseCase {
	t.Helper()
	uc := &types.UseCase{
		UseCase:      name,
		Status:       status,
		Phase:        phase,
		BusinessUnit: unit,
		Created:      &created,
	}
	if err := repo.Create(dbctx.Background(), uc); err != nil {
		t.Fatalf("failed to seed use case %q: %v", name, err)
	}
	return uc
}

func TestUseCaseRepo_GetAll_OrdersByCreatedDesc(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	seedUseCase(t, repo, "oldest", "On Track", "Idea", "Finance", now.AddDate(0, 0, -2))
	seedUseCase(t, repo, "newest", "On Track", "Idea", "Finance", now)
	seedUseCase(t, repo, "middle", "On Track", "Idea", "Finance", now.AddDate(0, 0, -1))

	results, err := repo.GetAll(dbctx.Background(), 0, 10, "", "", "")
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].UseCase != "newest" || results[2].UseCase != "oldest" {
		t.Fatalf("unexpected order: %q, %q, %q", results[0].UseCase, results[1].UseCase, results[2].UseCase)
	}
}

func TestUseCaseRepo_GetAll_AppliesFiltersTogether(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	seedUseCase(t, repo, "match", "On Track", "Design", "Finance", now)
	seedUseCase(t, repo, "wrong status", "At Risk", "Design", "Finance", now)
	seedUseCase(t, repo, "wrong phase", "On Track", "Idea", "Finance", now)
	seedUseCase(t, repo, "wrong unit", "On Track", "Design", "Legal", now)

	results, err := repo.GetAll(dbctx.Background(), 0, 10, "On Track", "Design", "Finance")
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].UseCase != "match" {
		t.Fatalf("expected %q, got %q", "match", results[0].UseCase)
	}
}

func TestUseCaseRepo_GetAll_Paginates(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		seedUseCase(t, repo, fmt.Sprintf("uc-%d", i), "On Track", "Idea", "Finance", now.AddDate(0, 0, -i))
	}

	page, err := repo.GetAll(dbctx.Background(), 2, 2, "", "", "")
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 results, got %d", len(page))
	}
	if page[0].UseCase != "uc-2" || page[1].UseCase != "uc-3" {
		t.Fatalf("unexpected page contents: %q, %q", page[0].UseCase, page[1].UseCase)
	}
}

func TestUseCaseRepo_GetByID_MissingReturnsNilNil(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	result, err := repo.GetByID(dbctx.Background(), 9999)
	if err != nil {
		t.Fatalf("expected no error for missing row, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for missing row, got %+v", result)
	}
}

func TestUseCaseRepo_Update_TouchesOnlyGivenColumns(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	uc := seedUseCase(t, repo, "original", "On Track", "Idea", "Finance", now)

	rows, err := repo.Update(dbctx.Background(), uc.ID, map[string]interface{}{"Status": "At Risk"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	reloaded, err := repo.GetByID(dbctx.Background(), uc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.Status != "At Risk" {
		t.Fatalf("expected status updated, got %q", reloaded.Status)
	}
	if reloaded.Phase != "Idea" || reloaded.UseCase != "original" {
		t.Fatalf("untouched columns changed: phase=%q name=%q", reloaded.Phase, reloaded.UseCase)
	}
}

func TestUseCaseRepo_Update_EmptyChangesIsNoop(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	rows, err := repo.Update(dbctx.Background(), 1, map[string]interface{}{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected, got %d", rows)
	}
}

func TestUseCaseRepo_Delete_RemovesOnlyTarget(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	target := seedUseCase(t, repo, "target", "On Track", "Idea", "Finance", now)
	survivor := seedUseCase(t, repo, "survivor", "On Track", "Idea", "Finance", now)

	rows, err := repo.Delete(dbctx.Background(), target.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row deleted, got %d", rows)
	}

	remaining, err := repo.GetByID(dbctx.Background(), survivor.ID)
	if err != nil || remaining == nil {
		t.Fatalf("survivor missing after delete: %v", err)
	}
	gone, err := repo.GetByID(dbctx.Background(), target.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected deleted row to be gone, got %+v", gone)
	}
}

func TestUseCaseRepo_CountByStatus(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	seedUseCase(t, repo, "a", "Implemented", "Implemented", "Finance", now)
	seedUseCase(t, repo, "b", "Implemented", "Implemented", "Finance", now)
	seedUseCase(t, repo, "c", "On Track", "Idea", "Finance", now)

	count, err := repo.CountByStatus(dbctx.Background(), "Implemented")
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}
}

func TestUseCaseRepo_CountInRange_ExcludesOutsideWindow(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	seedUseCase(t, repo, "recent", "On Track", "Idea", "Finance", now.AddDate(0, 0, -2))
	seedUseCase(t, repo, "old", "On Track", "Idea", "Finance", now.AddDate(0, 0, -30))

	count, err := repo.CountInRange(dbctx.Background(), now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("CountInRange failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}

func TestUseCaseRepo_SubmissionTimeline_BucketsByMonthAscending(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	lastMonth := now.AddDate(0, 0, -35)
	seedUseCase(t, repo, "this-month-1", "On Track", "Idea", "Finance", now)
	seedUseCase(t, repo, "this-month-2", "On Track", "Idea", "Finance", now)
	seedUseCase(t, repo, "last-month", "On Track", "Idea", "Finance", lastMonth)

	timeline, err := repo.SubmissionTimeline(dbctx.Background(), 180)
	if err != nil {
		t.Fatalf("SubmissionTimeline failed: %v", err)
	}
	if len(timeline) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(timeline))
	}
	if timeline[0].Month != lastMonth.Format("2006-01") || timeline[0].Count != 1 {
		t.Fatalf("unexpected first bucket: %+v", timeline[0])
	}
	if timeline[1].Month != now.Format("2006-01") || timeline[1].Count != 2 {
		t.Fatalf("unexpected second bucket: %+v", timeline[1])
	}
}

func TestUseCaseRepo_Recent_RespectsLimit(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{})
	repo := NewUseCaseRepo(db, log)

	now := time.Now().UTC()
	for i := 0; i < 6; i++ {
		seedUseCase(t, repo, fmt.Sprintf("uc-%d", i), "On Track", "Idea", "Finance", now.AddDate(0, 0, -i))
	}

	recent, err := repo.Recent(dbctx.Background(), 4)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("expected 4 results, got %d", len(recent))
	}
	if recent[0].UseCase != "uc-0" {
		t.Fatalf("expected newest first, got %q", recent[0].UseCase)
	}
}
