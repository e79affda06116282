package attendanceapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttendanceModels(t *testing.T) {
	t.Run(`ClockOutRequest validate check`, func(t *testing.T) {
		require.Nil(t, ClockOutRequest{Project: "HRMS", Task: "разработка"}.Validate())
		require.Error(t, ClockOutRequest{Project: "", Task: "разработка"}.Validate())
		require.Error(t, ClockOutRequest{Project: "HRMS", Task: ""}.Validate())
		// пробельные значения не считаются заполненными
		require.Error(t, ClockOutRequest{Project: "   ", Task: "разработка"}.Validate())
		require.Error(t, ClockOutRequest{Project: "HRMS", Task: "\t "}.Validate())
	})
}
