package attendancehandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
)

func TestWorktime(t *testing.T) {
	t.Run(`BusinessDateFor before boundary check`, func(t *testing.T) {
		now := time.Date(2026, 3, 10, 3, 59, 0, 0, time.UTC)
		got := BusinessDateFor(now)
		require.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run(`BusinessDateFor after boundary check`, func(t *testing.T) {
		now := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
		got := BusinessDateFor(now)
		require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run(`BusinessDateFor midday check`, func(t *testing.T) {
		now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
		got := BusinessDateFor(now)
		require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run(`WorkedMinutes with break check`, func(t *testing.T) {
		clockIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		clockOut := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
		require.Equal(t, 510, WorkedMinutes(clockIn, clockOut, 30))
	})

	t.Run(`WorkedMinutes never negative check`, func(t *testing.T) {
		clockIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		clockOut := clockIn.Add(10 * time.Minute)
		require.Equal(t, 0, WorkedMinutes(clockIn, clockOut, 120))
	})

	t.Run(`DisplayStatus open session check`, func(t *testing.T) {
		require.Equal(t, models.DayStatusWorking, DisplayStatus(true, 0))
	})

	t.Run(`DisplayStatus thresholds check`, func(t *testing.T) {
		require.Equal(t, models.DayStatusFull, DisplayStatus(false, 480))
		require.Equal(t, models.DayStatusFull, DisplayStatus(false, 600))
		require.Equal(t, models.DayStatusPresent, DisplayStatus(false, 479))
		require.Equal(t, models.DayStatusPresent, DisplayStatus(false, 240))
		require.Equal(t, models.DayStatusHalf, DisplayStatus(false, 239))
		require.Equal(t, models.DayStatusHalf, DisplayStatus(false, 0))
	})
}
