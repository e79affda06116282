package timesheetapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
)

func TestTimesheetModels(t *testing.T) {
	t.Run(`StatusRequest validate check`, func(t *testing.T) {
		require.Nil(t, StatusRequest{Status: models.TimesheetApproved}.Validate())
		require.Nil(t, StatusRequest{Status: models.TimesheetRejected, Reason: "мало часов"}.Validate())
		// SUBMITTED выставлять напрямую нельзя
		require.Error(t, StatusRequest{Status: models.TimesheetSubmitted}.Validate())
		require.Error(t, StatusRequest{Status: "UNKNOWN"}.Validate())
		// отклонение без причины
		require.Error(t, StatusRequest{Status: models.TimesheetRejected}.Validate())
	})

	t.Run(`EditRequest validate check`, func(t *testing.T) {
		hours := 8.5
		require.Nil(t, EditRequest{Hours: &hours}.Validate())
		badHours := 25.0
		require.Error(t, EditRequest{Hours: &badHours}.Validate())
		negative := -1.0
		require.Error(t, EditRequest{Hours: &negative}.Validate())
	})

	t.Run(`ParseMonth check`, func(t *testing.T) {
		got, err := ParseMonth("2026-02")
		require.Nil(t, err)
		require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), got)

		_, err = ParseMonth("02-2026")
		require.Error(t, err)
		_, err = ParseMonth("")
		require.Error(t, err)
	})
}
