package leaveapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
)

func TestLeaveModels(t *testing.T) {
	t.Run(`ApplyRequest validate check`, func(t *testing.T) {
		valid := ApplyRequest{
			FromDate:  "2026-07-01",
			ToDate:    "2026-07-05",
			LeaveType: models.LeaveCasual,
			Reason:    "семейные обстоятельства",
		}
		require.Nil(t, valid.Validate())

		badOrder := valid
		badOrder.FromDate = "2026-07-10"
		require.Error(t, badOrder.Validate())

		badType := valid
		badType.LeaveType = "UNPAID"
		require.Error(t, badType.Validate())

		noReason := valid
		noReason.Reason = ""
		require.Error(t, noReason.Validate())

		badDate := valid
		badDate.FromDate = "01.07.2026"
		require.Error(t, badDate.Validate())
	})

	t.Run(`ApplyRequest dates check`, func(t *testing.T) {
		req := ApplyRequest{FromDate: "2026-07-01", ToDate: "2026-07-05"}
		from, to := req.Dates()
		require.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), from)
		require.Equal(t, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run(`ActionRequest validate check`, func(t *testing.T) {
		require.Nil(t, ActionRequest{Action: models.LeaveApproved}.Validate())
		require.Nil(t, ActionRequest{Action: models.LeaveRejected}.Validate())
		require.Error(t, ActionRequest{Action: models.LeavePending}.Validate())
		require.Error(t, ActionRequest{Action: "CANCEL"}.Validate())
	})
}
