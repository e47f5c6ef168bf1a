package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

func newSeedTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
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
	err = db.AutoMigrate(
		&types.StatusMapping{},
		&types.PhaseMapping{},
		&types.RICE{},
		&types.ImplementationTimespan{},
		&types.ReportingFrequency{},
		&types.UnitOfMeasure{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db, log
}

func TestSeedLookupData_PopulatesEmptyTables(t *testing.T) {
	db, log := newSeedTestDB(t)

	if err := SeedLookupData(db, log); err != nil {
		t.Fatalf("SeedLookupData failed: %v", err)
	}

	var statuses int64
	if err := db.Model(&types.StatusMapping{}).Count(&statuses).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if statuses != 5 {
		t.Fatalf("expected 5 statuses, got %d", statuses)
	}

	var phases []types.PhaseMapping
	if err := db.Order(`"Id" ASC`).Find(&phases).Error; err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(phases) != 4 || phases[0].Phase != "Idea" || phases[3].Phase != "Implemented" {
		t.Fatalf("unexpected phases: %+v", phases)
	}
}

func TestSeedLookupData_SkipsPopulatedTables(t *testing.T) {
	db, log := newSeedTestDB(t)

	existing := types.StatusMapping{StatusName: "Custom", StatusColor: "#000000"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := SeedLookupData(db, log); err != nil {
		t.Fatalf("SeedLookupData failed: %v", err)
	}

	var statuses int64
	if err := db.Model(&types.StatusMapping{}).Count(&statuses).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if statuses != 1 {
		t.Fatalf("expected pre-populated table untouched, got %d rows", statuses)
	}

	// other tables were still empty and should be filled
	var units int64
	if err := db.Model(&types.UnitOfMeasure{}).Count(&units).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if units == 0 {
		t.Fatalf("expected units seeded")
	}
}

func TestSeedLookupData_Idempotent(t *testing.T) {
	db, log := newSeedTestDB(t)

	if err := SeedLookupData(db, log); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := SeedLookupData(db, log); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	var statuses int64
	if err := db.Model(&types.StatusMapping{}).Count(&statuses).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if statuses != 5 {
		t.Fatalf("expected 5 statuses after two runs, got %d", statuses)
	}
}

func TestCategorizeError_KnownPatterns(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"FATAL: the database system is starting up", errTypePaused},
		{"context deadline exceeded", errTypeTimeout},
		{"dial tcp: connection refused", errTypeRefused},
		{"password authentication failed for user", errTypeAuth},
		{"something else entirely", errTypeUnknown},
	}
	for _, tc := range cases {
		if got := categorizeError(fmt.Errorf("%s", tc.msg)); got != tc.want {
			t.Fatalf("categorizeError(%q) = %q, want %q", tc.msg, got, tc.want)
		}
	}
}
