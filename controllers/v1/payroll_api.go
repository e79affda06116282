package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"hrms-backend/controllers"
	payrollhandler "hrms-backend/lib/payroll"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	timesheetapimodels "hrms-backend/models/api/timesheet"
)

type payrollApiController struct {
	controllers.BaseAPIController
}

func InitPayrollApiRouters(app *fiber.App) {
	controller := payrollApiController{}
	app.Route("payroll", func(router fiber.Router) {
		router.Get("my", controller.payslip)
		router.Get("my/pdf", controller.payslipPdf)
		router.Post("upload", middleware.StaffRoleRequired(), controller.upload)
	})
}

// @Summary Загрузить ведомость по зарплате
// @Tags Зарплата
// @Description Массовая загрузка расчетных листов из xlsx. Повторные записи за месяц пропускаются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц в формате 2006-01"
// @Param   file				formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.UploadResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/upload [post]
func (c *payrollApiController) upload(ctx *fiber.Ctx) error {
	month := ctx.Query("month", "")
	if _, err := timesheetapimodels.ParseMonth(month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла ведомости")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла ведомости")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result, err := payrollhandler.Instance.Upload(ctx.UserContext(), month, fileBody, file.Filename)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Расчетный лист
// @Tags Зарплата
// @Description Расчетный лист сотрудника за месяц
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц в формате 2006-01"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.PayslipResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/my [get]
func (c *payrollApiController) payslip(ctx *fiber.Ctx) error {
	month := ctx.Query("month", "")
	if _, err := timesheetapimodels.ParseMonth(month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := payrollhandler.Instance.Payslip(middleware.GetUserID(ctx), month)
	if err != nil {
		if err == payrollhandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Расчетный лист в PDF
// @Tags Зарплата
// @Description Расчетный лист сотрудника за месяц в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц в формате 2006-01"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/my/pdf [get]
func (c *payrollApiController) payslipPdf(ctx *fiber.Ctx) error {
	month := ctx.Query("month", "")
	if _, err := timesheetapimodels.ParseMonth(month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := payrollhandler.Instance.PayslipPdf(middleware.GetUserID(ctx), month)
	if err != nil {
		if err == payrollhandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Send(body)
}
