package services

import (
	"context"
	"errors"
	"testing"

	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

func floatPtr(f float64) *float64 { return &f }

func TestRiceScore(t *testing.T) {
	cases := []struct {
		name  string
		input types.Prioritization
		want  float64
		ok    bool
	}{
		{
			name: "all inputs present",
			input: types.Prioritization{
				Reach:      floatPtr(100),
				Impact:     floatPtr(2),
				Confidence: floatPtr(0.8),
				Effort:     floatPtr(4),
			},
			want: 40,
			ok:   true,
		},
		{
			name: "missing confidence",
			input: types.Prioritization{
				Reach:  floatPtr(100),
				Impact: floatPtr(2),
				Effort: floatPtr(4),
			},
			ok: false,
		},
		{
			name: "zero effort",
			input: types.Prioritization{
				Reach:      floatPtr(100),
				Impact:     floatPtr(2),
				Confidence: floatPtr(0.8),
				Effort:     floatPtr(0),
			},
			ok: false,
		},
	}
	for _, tc := range cases {
		got, ok := riceScore(&tc.input)
		if ok != tc.ok {
			t.Fatalf("%s: expected ok=%v, got %v", tc.name, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestPrioritizationService_Create_StoresDerivedScore(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Prioritization{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	svc := NewPrioritizationService(db, log, repos.NewPrioritizationRepo(db, log), usecaseRepo)

	parent := &types.UseCase{UseCase: "scored"}
	if err := db.Create(parent).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	created, err := svc.Create(context.Background(), parent.ID, &types.Prioritization{
		Reach:      floatPtr(100),
		Impact:     floatPtr(2),
		Confidence: floatPtr(0.8),
		Effort:     floatPtr(4),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.RICEScore == nil || *created.RICEScore != 40 {
		t.Fatalf("expected RICE score 40, got %v", created.RICEScore)
	}
	if created.UseCasesID != parent.ID {
		t.Fatalf("expected foreign key stamped, got %d", created.UseCasesID)
	}
}

func TestPrioritizationService_Create_RejectsMismatchedParent(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Prioritization{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	svc := NewPrioritizationService(db, log, repos.NewPrioritizationRepo(db, log), usecaseRepo)

	_, err := svc.Create(context.Background(), 5, &types.Prioritization{UseCasesID: 6})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var count int64
	if err := db.Model(&types.Prioritization{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestPrioritizationService_Create_MissingParent(t *testing.T) {
	db, log := newTestDB(t, &types.UseCase{}, &types.Prioritization{})
	usecaseRepo := repos.NewUseCaseRepo(db, log)
	svc := NewPrioritizationService(db, log, repos.NewPrioritizationRepo(db, log), usecaseRepo)

	_, err := svc.Create(context.Background(), 404, &types.Prioritization{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
