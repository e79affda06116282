package leavehandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func leaveRec(leaveType models.LeaveType, from, to string) dbmodels.Leave {
	fromDate, _ := time.Parse("2006-01-02", from)
	toDate, _ := time.Parse("2006-01-02", to)
	return dbmodels.Leave{
		LeaveType: leaveType,
		FromDate:  fromDate,
		ToDate:    toDate,
	}
}

func TestBalance(t *testing.T) {
	t.Run(`UsedDaysByType empty check`, func(t *testing.T) {
		used := UsedDaysByType(nil)
		require.Empty(t, used)
	})

	t.Run(`UsedDaysByType sums per type check`, func(t *testing.T) {
		approved := []dbmodels.Leave{
			leaveRec(models.LeaveCasual, "2026-02-02", "2026-02-04"),
			leaveRec(models.LeaveCasual, "2026-05-11", "2026-05-11"),
			leaveRec(models.LeaveSick, "2026-03-01", "2026-03-05"),
		}
		used := UsedDaysByType(approved)
		require.Equal(t, 4, used[models.LeaveCasual])
		require.Equal(t, 5, used[models.LeaveSick])
		require.Equal(t, 0, used[models.LeaveEarned])
	})
}
