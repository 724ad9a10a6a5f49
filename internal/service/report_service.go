package service

import (
	"context"
	"fmt"

	"sipengawas/internal/model"
	"sipengawas/internal/report"
	"sipengawas/internal/store"
)

// ReportService aggregates activity statistics and renders the downloadable
// PDF reports.
type ReportService interface {
	MonthlyStats(ctx context.Context, userID string, year, month int) (*model.MonthlyStats, error)
	YearlyStats(ctx context.Context, userID string, year int) (*model.YearlyStats, error)
	MonthlyPDF(ctx context.Context, userID string, year, month int) ([]byte, error)
	YearlyPDF(ctx context.Context, userID string, year int) ([]byte, error)
}

type reportService struct {
	store store.Store
}

// NewReportService builds a ReportService on top of the record store.
func NewReportService(st store.Store) ReportService {
	return &reportService{store: st}
}

func (s *reportService) MonthlyStats(ctx context.Context, userID string, year, month int) (*model.MonthlyStats, error) {
	return s.store.GetMonthlyStats(ctx, userID, year, month)
}

func (s *reportService) YearlyStats(ctx context.Context, userID string, year int) (*model.YearlyStats, error) {
	return s.store.GetYearlyStats(ctx, userID, year)
}

// userName resolves the display name printed on reports; a missing user
// degrades to the generic role title rather than failing the export.
func (s *reportService) userName(ctx context.Context, userID string) string {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil || user.FullName == "" {
		return "Pengawas"
	}
	return user.FullName
}

func (s *reportService) MonthlyPDF(ctx context.Context, userID string, year, month int) ([]byte, error) {
	stats, err := s.store.GetMonthlyStats(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	return report.Monthly(report.MonthlyData{
		UserName:        s.userName(ctx, userID),
		Period:          fmt.Sprintf("%s %d", report.MonthNames[month-1], year),
		TotalTasks:      stats.TotalTasks,
		CompletedTasks:  stats.CompletedTasks,
		Supervisions:    stats.Supervisions,
		AdditionalTasks: stats.AdditionalTasks,
	})
}

func (s *reportService) YearlyPDF(ctx context.Context, userID string, year int) ([]byte, error) {
	stats, err := s.store.GetYearlyStats(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	return report.Yearly(report.YearlyData{
		UserName:          s.userName(ctx, userID),
		Year:              fmt.Sprint(year),
		TotalSupervisions: stats.TotalSupervisions,
		TotalTasks:        stats.TotalTasks,
		CompletedTasks:    stats.CompletedTasks,
		Schools:           stats.Schools,
		CompletionRate:    stats.CompletionRate,
	})
}
