package services

import (
	"context"
	"errors"
	"testing"

	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

func TestMetricService_Create_MissingParentInsertsNothing(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Metric{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	metricRepo := repos.NewMetricRepo(db, log)
	svc := NewMetricService(db, log, metricRepo, usecaseRepo)

	_, err := svc.Create(context.Background(), &types.Metric{
		PrimarySuccessMetricName: "Tickets deflected",
		UseCasesID:               404,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&types.Metric{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no metric rows, got %d", count)
	}
}

func TestMetricService_Create_ThenListByUseCase(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Metric{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	metricRepo := repos.NewMetricRepo(db, log)
	svc := NewMetricService(db, log, metricRepo, usecaseRepo)

	parent := &types.UseCase{UseCase: "triage bot"}
	if err := db.Create(parent).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	baseline := 42.0
	created, err := svc.Create(context.Background(), &types.Metric{
		PrimarySuccessMetricName: "Tickets deflected",
		BaselineValue:            &baseline,
		UseCasesID:               parent.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Id == 0 {
		t.Fatalf("expected assigned id")
	}

	metrics, err := svc.ListByUseCase(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("ListByUseCase failed: %v", err)
	}
	if len(metrics) != 1 || metrics[0].PrimarySuccessMetricName != "Tickets deflected" {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestUpdateService_Create_MissingParentInsertsNothing(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Update{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	updateRepo := repos.NewUpdateRepo(db, log)
	svc := NewUpdateService(db, log, updateRepo, usecaseRepo)

	_, err := svc.Create(context.Background(), &types.Update{UseCasesID: 404})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&types.Update{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no update rows, got %d", count)
	}
}

func TestDecisionService_Create_MissingParentInsertsNothing(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Decision{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	decisionRepo := repos.NewDecisionRepo(db, log)
	svc := NewDecisionService(db, log, decisionRepo, usecaseRepo)

	_, err := svc.Create(context.Background(), &types.Decision{UseCasesID: 404})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&types.Decision{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no decision rows, got %d", count)
	}
}
