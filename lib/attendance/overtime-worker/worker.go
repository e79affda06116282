package overtimeworker

import (
	"context"
	"fmt"
	"time"

	"hrms-backend/db"
	attendancestore "hrms-backend/lib/attendance/store"
	notificationhandler "hrms-backend/lib/notification"
	baseworker "hrms-backend/lib/utils/base-worker"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
)

// Часовой обход смен, открытых дольше порога.
// Воркер только уведомляет, смену закрывает следующий clock-in сотрудника.
// Флаг alert_level делает повторные запуски идемпотентными.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:        *baseworker.NewInstance("AttendanceOvertimeWorker", 30*time.Second, 60*time.Minute),
		attendanceStore: attendancestore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	attendanceStore attendancestore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	threshold := time.Now().Add(-time.Duration(models.StaleSessionHours) * time.Hour)
	list, err := i.attendanceStore.GetStale(threshold, 0)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка зависших смен")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		// флаг проставляется до рассылки, чтобы параллельный запуск не продублировал алерт
		err = i.attendanceStore.Update(rec.ID, map[string]interface{}{"AlertLevel": 1})
		if err != nil {
			logger.
				WithError(err).
				WithField("attendance_id", rec.ID).
				Error("ошибка обновления уровня алерта")
			continue
		}
		notificationhandler.Instance.NotifyChain(rec.EmployeeID, models.NotifyOvertime,
			fmt.Sprintf("Смена %s открыта более %d часов", rec.BusinessDate.Format("02.01.2006"), models.StaleSessionHours))
	}
}
