package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

// SeedLookupData populates reference tables that are empty. Tables that
// already contain rows are left untouched, so re-running startup is safe.
func SeedLookupData(db *gorm.DB, log *logger.Logger) error {
	seedLog := log.With("component", "seed")

	if err := seedWhenEmpty(db, seedLog, &types.StatusMapping{}, statusSeed()); err != nil {
		return err
	}
	if err := seedWhenEmpty(db, seedLog, &types.PhaseMapping{}, phaseSeed()); err != nil {
		return err
	}
	if err := seedWhenEmpty(db, seedLog, &types.RICE{}, riceSeed()); err != nil {
		return err
	}
	if err := seedWhenEmpty(db, seedLog, &types.ImplementationTimespan{}, timespanSeed()); err != nil {
		return err
	}
	if err := seedWhenEmpty(db, seedLog, &types.ReportingFrequency{}, frequencySeed()); err != nil {
		return err
	}
	if err := seedWhenEmpty(db, seedLog, &types.UnitOfMeasure{}, unitSeed()); err != nil {
		return err
	}
	return nil
}

func seedWhenEmpty(db *gorm.DB, log *logger.Logger, model interface{}, rows interface{}) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %T: %w", model, err)
	}
	if count > 0 {
		log.Debug("Lookup table already populated, skipping", "model", fmt.Sprintf("%T", model), "rows", count)
		return nil
	}
	if err := db.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to seed %T: %w", model, err)
	}
	log.Info("Seeded lookup table", "model", fmt.Sprintf("%T", model))
	return nil
}

func statusSeed() []types.StatusMapping {
	return []types.StatusMapping{
		{StatusName: "On Track", StatusColor: "#22C55E", StatusDefinitions: "Progressing as planned"},
		{StatusName: "At Risk", StatusColor: "#F59E0B", StatusDefinitions: "Blockers identified, mitigation in progress"},
		{StatusName: "Off Track", StatusColor: "#EF4444", StatusDefinitions: "Behind plan, needs intervention"},
		{StatusName: "On Hold", StatusColor: "#94A3B8", StatusDefinitions: "Paused pending a decision"},
		{StatusName: "Completed", StatusColor: "#3B82F6", StatusDefinitions: "Delivered and in use"},
	}
}

func phaseSeed() []types.PhaseMapping {
	return []types.PhaseMapping{
		{Phase: "Idea", PhaseStage: "Intake", Environment: "None"},
		{Phase: "Diagnose", PhaseStage: "Discovery", Environment: "Sandbox"},
		{Phase: "Design", PhaseStage: "Build", Environment: "Development"},
		{Phase: "Implemented", PhaseStage: "Run", Environment: "Production"},
	}
}

func riceSeed() []types.RICE {
	return []types.RICE{
		{CategoryDisplay: "Massive", CategoryHeader: "Impact", CategoryValue: "3"},
		{CategoryDisplay: "High", CategoryHeader: "Impact", CategoryValue: "2"},
		{CategoryDisplay: "Medium", CategoryHeader: "Impact", CategoryValue: "1"},
		{CategoryDisplay: "Low", CategoryHeader: "Impact", CategoryValue: "0.5"},
		{CategoryDisplay: "Minimal", CategoryHeader: "Impact", CategoryValue: "0.25"},
		{CategoryDisplay: "High", CategoryHeader: "Confidence", CategoryValue: "1"},
		{CategoryDisplay: "Medium", CategoryHeader: "Confidence", CategoryValue: "0.8"},
		{CategoryDisplay: "Low", CategoryHeader: "Confidence", CategoryValue: "0.5"},
	}
}

func timespanSeed() []types.ImplementationTimespan {
	return []types.ImplementationTimespan{
		{Timespan: "0-3 months"},
		{Timespan: "3-6 months"},
		{Timespan: "6-12 months"},
		{Timespan: "12+ months"},
	}
}

func frequencySeed() []types.ReportingFrequency {
	return []types.ReportingFrequency{
		{Frequency: "Weekly"},
		{Frequency: "Bi-weekly"},
		{Frequency: "Monthly"},
		{Frequency: "Quarterly"},
	}
}

func unitSeed() []types.UnitOfMeasure {
	return []types.UnitOfMeasure{
		{UnitOfMeasure: "Percent"},
		{UnitOfMeasure: "Hours"},
		{UnitOfMeasure: "Count"},
		{UnitOfMeasure: "USD"},
		{UnitOfMeasure: "Days"},
	}
}
