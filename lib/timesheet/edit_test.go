package timesheethandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
	timesheetapimodels "hrms-backend/models/api/timesheet"
	dbmodels "hrms-backend/models/db"
)

type fakeTimesheetStore struct {
	rec     *dbmodels.Timesheet
	updates []map[string]interface{}
}

func (s *fakeTimesheetStore) Create(rec dbmodels.Timesheet) (string, error) { return "", nil }
func (s *fakeTimesheetStore) Update(id string, updMap map[string]interface{}) error {
	s.updates = append(s.updates, updMap)
	return nil
}
func (s *fakeTimesheetStore) GetByID(id string) (*dbmodels.Timesheet, error) { return s.rec, nil }
func (s *fakeTimesheetStore) GetByPeriod(string, time.Time, time.Time) ([]dbmodels.Timesheet, error) {
	return nil, nil
}
func (s *fakeTimesheetStore) GetForApproval(time.Time, time.Time, *string) ([]dbmodels.Timesheet, error) {
	return nil, nil
}
func (s *fakeTimesheetStore) GetRejected(*string) ([]dbmodels.Timesheet, error) { return nil, nil }
func (s *fakeTimesheetStore) UpdateStatusGuarded(string, models.TimesheetStatus, string) (int64, error) {
	return 0, nil
}

func TestEdit(t *testing.T) {
	managerID := "manager-1"
	rejectedRec := func() *dbmodels.Timesheet {
		return &dbmodels.Timesheet{
			EmployeeID: "employee-1",
			Employee:   &dbmodels.Employee{ManagerID: &managerID},
			Status:     models.TimesheetRejected,
		}
	}

	t.Run(`правка без статуса возвращает запись в SUBMITTED`, func(t *testing.T) {
		store := &fakeTimesheetStore{rec: rejectedRec()}
		handler := impl{tsStore: store}
		project := "проект"
		err := handler.Edit("ts-1", "hr-1", models.UserRoleHR, timesheetapimodels.EditRequest{Project: &project})
		require.NoError(t, err)
		require.Len(t, store.updates, 1)
		require.Equal(t, models.TimesheetSubmitted, store.updates[0]["Status"])
		require.Equal(t, project, store.updates[0]["Project"])
	})

	t.Run(`явный статус из запроса имеет приоритет`, func(t *testing.T) {
		store := &fakeTimesheetStore{rec: rejectedRec()}
		handler := impl{tsStore: store}
		status := models.TimesheetApproved
		err := handler.Edit("ts-1", managerID, models.UserRoleManager, timesheetapimodels.EditRequest{Status: &status})
		require.NoError(t, err)
		require.Len(t, store.updates, 1)
		require.Equal(t, models.TimesheetApproved, store.updates[0]["Status"])
	})

	t.Run(`согласованная запись не правится`, func(t *testing.T) {
		rec := rejectedRec()
		rec.Status = models.TimesheetApproved
		store := &fakeTimesheetStore{rec: rec}
		handler := impl{tsStore: store}
		hours := 8.0
		err := handler.Edit("ts-1", "hr-1", models.UserRoleHR, timesheetapimodels.EditRequest{Hours: &hours})
		require.ErrorIs(t, err, ErrNotRejected)
		require.Empty(t, store.updates)
	})

	t.Run(`чужой руководитель не имеет доступа`, func(t *testing.T) {
		store := &fakeTimesheetStore{rec: rejectedRec()}
		handler := impl{tsStore: store}
		err := handler.Edit("ts-1", "manager-2", models.UserRoleManager, timesheetapimodels.EditRequest{})
		require.ErrorIs(t, err, ErrForbidden)
		require.Empty(t, store.updates)
	})

	t.Run(`отсутствующая запись`, func(t *testing.T) {
		store := &fakeTimesheetStore{}
		handler := impl{tsStore: store}
		err := handler.Edit("ts-1", "hr-1", models.UserRoleHR, timesheetapimodels.EditRequest{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}
