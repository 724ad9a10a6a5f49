package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthly(t *testing.T) {
	pdf, err := Monthly(MonthlyData{
		UserName:        "Budi Santoso",
		Period:          "Maret 2025",
		TotalTasks:      4,
		CompletedTasks:  3,
		Supervisions:    2,
		AdditionalTasks: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestMonthly_ZeroTasks(t *testing.T) {
	// Completion rate division must be guarded when there are no tasks.
	pdf, err := Monthly(MonthlyData{UserName: "Budi Santoso", Period: "Juni 2025"})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestYearly(t *testing.T) {
	pdf, err := Yearly(YearlyData{
		UserName:          "Budi Santoso",
		Year:              "2025",
		TotalSupervisions: 24,
		TotalTasks:        30,
		CompletedTasks:    27,
		Schools:           5,
		CompletionRate:    90,
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestMonthNames(t *testing.T) {
	assert.Equal(t, "Januari", MonthNames[0])
	assert.Equal(t, "Desember", MonthNames[11])
}
