package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"hrms-backend/config"
	"hrms-backend/fiberlog"
	attendancehandler "hrms-backend/lib/attendance"
	overtimeworker "hrms-backend/lib/attendance/overtime-worker"
	authhandler "hrms-backend/lib/auth"
	holidayprovider "hrms-backend/lib/dicts/holiday"
	employeehandler "hrms-backend/lib/employee"
	xlsexport "hrms-backend/lib/export/xls"
	filestorage "hrms-backend/lib/file-storage"
	leavehandler "hrms-backend/lib/leave"
	notificationhandler "hrms-backend/lib/notification"
	payrollhandler "hrms-backend/lib/payroll"
	timesheethandler "hrms-backend/lib/timesheet"
	connectionhub "hrms-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("ошибка подготовки бакета S3")
	}
	holidayprovider.NewHandler()
	notificationhandler.NewHandler()
	employeehandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	attendancehandler.NewHandler()
	timesheethandler.NewHandler()
	leavehandler.NewHandler()
	payrollhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача уведомлений о переработках по незакрытым сменам
	overtimeworker.StartWorker(ctx)
}
