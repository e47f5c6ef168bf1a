package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/enterprise-ai/aihub-backend/internal/pkg/dbctx"
	"github.com/enterprise-ai/aihub-backend/internal/pkg/logger"
	"github.com/enterprise-ai/aihub-backend/internal/repos"
	"github.com/enterprise-ai/aihub-backend/internal/types"
)

// DashboardKPIs are the headline numbers on the dashboard.
type DashboardKPIs struct {
	TotalUseCases  int64   `json:"totalUseCases"`
	Implemented    int64   `json:"implemented"`
	Trending       int64   `json:"trending"`
	CompletionRate float64 `json:"completionRate"`
}

// DashboardTimelinePoint is one calendar day (UTC) of the 90-day timeline.
// The four tallies are independent boolean counts, not exclusive categories,
// so they need not sum to the day's total creations.
type DashboardTimelinePoint struct {
	Date        string `json:"date"`
	Idea        int    `json:"idea"`
	Diagnose    int    `json:"diagnose"`
	Design      int    `json:"design"`
	Implemented int    `json:"implemented"`
}

// RecentSubmission is a display row for the dashboard's recent list.
type RecentSubmission struct {
	ID      string `json:"ID"`
	UseCase string `json:"UseCase"`
	AITheme string `json:"AITheme"`
	Status  string `json:"Status"`
	Created string `json:"Created"`
}

type DashboardResponse struct {
	KPIs              DashboardKPIs            `json:"kpis"`
	Timeline          []DashboardTimelinePoint `json:"timeline"`
	RecentSubmissions []RecentSubmission       `json:"recent_submissions"`
}

type KPIService interface {
	// Dashboard never returns an error: each sub-computation degrades to
	// its zero/empty default on failure.
	Dashboard(ctx context.Context) DashboardResponse
}

type kpiService struct {
	db          *gorm.DB
	log         *logger.Logger
	usecaseRepo repos.UseCaseRepo
}

func NewKPIService(db *gorm.DB, log *logger.Logger, usecaseRepo repos.UseCaseRepo) KPIService {
	serviceLog := log.With("service", "KPIService")
	return &kpiService{db: db, log: serviceLog, usecaseRepo: usecaseRepo}
}

const dashboardTimelineDays = 90

func (s *kpiService) Dashboard(ctx context.Context) DashboardResponse {
	out := DashboardResponse{
		Timeline:          []DashboardTimelinePoint{},
		RecentSubmissions: []RecentSubmission{},
	}
	dbc := dbctx.Context{Ctx: ctx}

	total, err := s.usecaseRepo.CountAll(dbc)
	if err != nil {
		s.log.Warn("Dashboard total count failed, returning defaults", "error", err)
		return out
	}
	out.KPIs.TotalUseCases = total

	if implemented, err := s.usecaseRepo.CountByStatus(dbc, "Completed"); err != nil {
		s.log.Warn("Dashboard implemented count failed", "error", err)
	} else {
		out.KPIs.Implemented = implemented
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if trending, err := s.usecaseRepo.CountInRange(dbc, monthStart, now); err != nil {
		s.log.Warn("Dashboard trending count failed", "error", err)
	} else {
		out.KPIs.Trending = trending
	}

	out.KPIs.CompletionRate = completionRate(out.KPIs.Implemented, out.KPIs.TotalUseCases)

	if timeline, err := s.timeline(dbc, now); err != nil {
		s.log.Warn("Dashboard timeline failed, returning empty timeline", "error", err)
	} else {
		out.Timeline = timeline
	}

	if recent, err := s.usecaseRepo.Recent(dbc, 10); err != nil {
		s.log.Warn("Dashboard recent submissions failed, returning empty list", "error", err)
	} else {
		out.RecentSubmissions = recentSubmissions(recent)
	}

	return out
}

// completionRate is implemented/total * 100 rounded to one decimal, 0 when
// there are no use cases.
func completionRate(implemented, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(implemented) / float64(total) * 100
	return math.Round(rate*10) / 10
}

func (s *kpiService) timeline(dbc dbctx.Context, now time.Time) ([]DashboardTimelinePoint, error) {
	since := now.AddDate(0, 0, -dashboardTimelineDays)
	rows, err := s.usecaseRepo.CreatedSince(dbc, since)
	if err != nil {
		return nil, err
	}
	byDay := map[string]*DashboardTimelinePoint{}
	for _, uc := range rows {
		if uc.Created == nil {
			continue
		}
		day := uc.Created.UTC().Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &DashboardTimelinePoint{Date: day}
			byDay[day] = point
		}
		if uc.Phase == "Idea" {
			point.Idea++
		}
		if uc.Phase == "Diagnose" {
			point.Diagnose++
		}
		if uc.Phase == "Design" {
			point.Design++
		}
		if uc.Status == "Completed" {
			point.Implemented++
		}
	}
	timeline := make([]DashboardTimelinePoint, 0, len(byDay))
	for _, point := range byDay {
		timeline = append(timeline, *point)
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date < timeline[j].Date })
	return timeline, nil
}

func recentSubmissions(rows []*types.UseCase) []RecentSubmission {
	out := make([]RecentSubmission, 0, len(rows))
	for _, uc := range rows {
		status := uc.Status
		if status == "" {
			status = "Unknown"
		}
		created := ""
		if uc.Created != nil {
			created = uc.Created.UTC().Format("01/02/2006 03:04 PM")
		}
		out = append(out, RecentSubmission{
			ID:      strconv.Itoa(uc.ID),
			UseCase: uc.UseCase,
			AITheme: uc.AITheme,
			Status:  status,
			Created: created,
		})
	}
	return out
}
