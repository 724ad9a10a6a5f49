package store

import (
	"context"
	"math"
	"time"

	"sipengawas/internal/model"
)

func inMonth(t time.Time, year, month int) bool {
	return t.Year() == year && int(t.Month()) == month
}

// GetMonthlyStats counts the user's tasks, completed tasks, supervisions and
// additional activities dated in the given year and month.
func (s *fileStore) GetMonthlyStats(ctx context.Context, userID string, year, month int) (*model.MonthlyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &model.MonthlyStats{}
	for _, task := range s.db.Tasks {
		if task.UserID == userID && inMonth(task.Date, year, month) {
			stats.TotalTasks++
			if task.Completed {
				stats.CompletedTasks++
			}
		}
	}
	for _, sup := range s.db.Supervisions {
		if sup.UserID == userID && inMonth(sup.Date, year, month) {
			stats.Supervisions++
		}
	}
	for _, task := range s.db.AdditionalTasks {
		if task.UserID == userID && inMonth(task.Date, year, month) {
			stats.AdditionalTasks++
		}
	}
	return stats, nil
}

// GetYearlyStats aggregates the user's records dated in the given year.
// Schools counts distinct school references among the year's supervisions;
// the completion rate is 0 when the user has no tasks in the year.
func (s *fileStore) GetYearlyStats(ctx context.Context, userID string, year int) (*model.YearlyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &model.YearlyStats{}
	schools := map[string]struct{}{}

	for _, sup := range s.db.Supervisions {
		if sup.UserID != userID || sup.Date.Year() != year {
			continue
		}
		stats.TotalSupervisions++
		if sup.SchoolID != nil {
			schools[*sup.SchoolID] = struct{}{}
		} else if sup.School != "" {
			schools[sup.School] = struct{}{}
		}
	}
	for _, task := range s.db.Tasks {
		if task.UserID == userID && task.Date.Year() == year {
			stats.TotalTasks++
			if task.Completed {
				stats.CompletedTasks++
			}
		}
	}

	stats.Schools = len(schools)
	stats.MonthlyAverage = int(math.Round(float64(stats.TotalSupervisions) / 12))
	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}
	return stats, nil
}
