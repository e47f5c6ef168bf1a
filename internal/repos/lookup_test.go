package repos

import (
	"sort"
	"testing"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

func TestLookupRepo_GetUniqueThemeNames_Deduplicates(t *testing.T) {
	db, log := newTestDB(t, &types.AIThemeMapping{})
	repo := NewLookupRepo(db, log)

	themes := []*types.AIThemeMapping{
		{ThemeName: "Summarization"},
		{ThemeName: "Summarization"},
		{ThemeName: "Classification"},
	}
	for _, theme := range themes {
		if err := db.Create(theme).Error; err != nil {
			t.Fatalf("failed to seed theme: %v", err)
		}
	}

	names, err := repo.GetUniqueThemeNames(dbctx.Background())
	if err != nil {
		t.Fatalf("GetUniqueThemeNames failed: %v", err)
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "Classification" || names[1] != "Summarization" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestLookupRepo_GetChampionsByBusinessUnit_FiltersByUnit(t *testing.T) {
	db, log := newTestDB(t, &types.AIChampion{})
	repo := NewLookupRepo(db, log)

	champions := []*types.AIChampion{
		{BusinessUnit: "Finance", UKrewer: "Alex"},
		{BusinessUnit: "Finance", UKrewer: "Sam"},
		{BusinessUnit: "Legal", UKrewer: "Jo"},
	}
	for _, champion := range champions {
		if err := db.Create(champion).Error; err != nil {
			t.Fatalf("failed to seed champion: %v", err)
		}
	}

	results, err := repo.GetChampionsByBusinessUnit(dbctx.Background(), "Finance")
	if err != nil {
		t.Fatalf("GetChampionsByBusinessUnit failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 champions, got %d", len(results))
	}
	for _, champion := range results {
		if champion.BusinessUnit != "Finance" {
			t.Fatalf("unexpected unit %q", champion.BusinessUnit)
		}
	}
}
