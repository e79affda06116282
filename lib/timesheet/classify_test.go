package timesheethandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
)

func TestClassify(t *testing.T) {
	t.Run(`ClassifyDay priority check`, func(t *testing.T) {
		// отпуск перекрывает все остальное
		require.Equal(t, models.DayTypeLeave, ClassifyDay(true, true, true, time.Saturday))
		// табель важнее праздника и выходного
		require.Equal(t, models.DayTypeTimesheet, ClassifyDay(false, true, true, time.Saturday))
		// праздник важнее выходного
		require.Equal(t, models.DayTypeHoliday, ClassifyDay(false, false, true, time.Saturday))
	})

	t.Run(`ClassifyDay weekend check`, func(t *testing.T) {
		require.Equal(t, models.DayTypeWeekend, ClassifyDay(false, false, false, time.Saturday))
		require.Equal(t, models.DayTypeWeekend, ClassifyDay(false, false, false, time.Sunday))
		require.Equal(t, models.DayTypeNone, ClassifyDay(false, false, false, time.Monday))
	})

	t.Run(`MonthDays length check`, func(t *testing.T) {
		require.Len(t, MonthDays(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), 31)
		require.Len(t, MonthDays(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)), 28)
		// високосный год
		require.Len(t, MonthDays(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)), 29)
		require.Len(t, MonthDays(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)), 30)
	})

	t.Run(`MonthBounds check`, func(t *testing.T) {
		from, to := MonthBounds(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
		require.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), to)
	})
}
