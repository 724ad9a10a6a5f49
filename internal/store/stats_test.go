package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sipengawas/internal/model"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestGetMonthlyStats_FiltersByPeriodAndUser(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	// Two tasks in March 2025 for user-a, one completed.
	_, err := st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "A", Category: "Perencanaan", Date: date(2025, 3, 3), Completed: true})
	require.NoError(t, err)
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "B", Category: "Supervisi", Date: date(2025, 3, 20)})
	require.NoError(t, err)
	// Outside the period: different month, different year, different user.
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "C", Category: "Supervisi", Date: date(2025, 4, 1)})
	require.NoError(t, err)
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "D", Category: "Supervisi", Date: date(2024, 3, 10)})
	require.NoError(t, err)
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-b", Title: "E", Category: "Supervisi", Date: date(2025, 3, 10)})
	require.NoError(t, err)

	_, err = st.CreateSupervision(ctx, &model.Supervision{UserID: "user-a", School: "SDN 1", Type: model.SupervisionAkademik, Date: date(2025, 3, 14), Findings: "Baik"})
	require.NoError(t, err)
	_, err = st.CreateAdditionalTask(ctx, &model.AdditionalTask{UserID: "user-a", Name: "Workshop", Date: date(2025, 3, 21), Location: "Denpasar", Organizer: "Dinas"})
	require.NoError(t, err)

	stats, err := st.GetMonthlyStats(ctx, "user-a", 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.Supervisions)
	assert.Equal(t, 1, stats.AdditionalTasks)
}

func TestGetMonthlyStats_EmptyPeriod(t *testing.T) {
	st, _ := openTestStore(t)

	stats, err := st.GetMonthlyStats(context.Background(), "user-a", 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletedTasks)
	assert.Equal(t, 0, stats.Supervisions)
	assert.Equal(t, 0, stats.AdditionalTasks)
}

func TestGetYearlyStats(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	// Three supervisions in 2025 across two distinct schools; the two
	// visits to school-1 must count the school once.
	_, err := st.CreateSupervision(ctx, &model.Supervision{UserID: "user-a", SchoolID: strPtr("school-1"), School: "SDN 1", Type: model.SupervisionAkademik, Date: date(2025, 2, 1), Findings: "Baik"})
	require.NoError(t, err)
	_, err = st.CreateSupervision(ctx, &model.Supervision{UserID: "user-a", SchoolID: strPtr("school-1"), School: "SDN 1", Type: model.SupervisionManajerial, Date: date(2025, 8, 1), Findings: "Baik"})
	require.NoError(t, err)
	_, err = st.CreateSupervision(ctx, &model.Supervision{UserID: "user-a", School: "SD Harapan", Type: model.SupervisionAkademik, Date: date(2025, 5, 1), Findings: "Cukup"})
	require.NoError(t, err)
	// Previous year, must not count.
	_, err = st.CreateSupervision(ctx, &model.Supervision{UserID: "user-a", School: "SDN 9", Type: model.SupervisionAkademik, Date: date(2024, 5, 1), Findings: "Baik"})
	require.NoError(t, err)

	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "A", Category: "Perencanaan", Date: date(2025, 1, 5), Completed: true})
	require.NoError(t, err)
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "B", Category: "Supervisi", Date: date(2025, 6, 5), Completed: true})
	require.NoError(t, err)
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "C", Category: "Evaluasi", Date: date(2025, 9, 5)})
	require.NoError(t, err)

	stats, err := st.GetYearlyStats(ctx, "user-a", 2025)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSupervisions)
	assert.Equal(t, 2, stats.Schools)
	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 0, stats.MonthlyAverage) // round(3/12)
	assert.Equal(t, 67, stats.CompletionRate)
}

func TestGetYearlyStats_NoTasksYieldsZeroRate(t *testing.T) {
	st, _ := openTestStore(t)

	stats, err := st.GetYearlyStats(context.Background(), "user-a", 2025)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletionRate)
}
