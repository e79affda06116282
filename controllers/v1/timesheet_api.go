package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	timesheethandler "hrms-backend/lib/timesheet"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	timesheetapimodels "hrms-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetApiController{}
	app.Route("timesheets", func(router fiber.Router) {
		router.Get("my/calendar", controller.calendar)
		router.Get("my/calendar/excel", controller.calendarExcel)
		router.Get("rejected", controller.rejected)
		router.Put(":id", controller.edit)
		router.Get("approval", middleware.ApproverRoleRequired(), controller.approval)
		router.Put(":id/status", middleware.ApproverRoleRequired(), controller.action)
	})
}

// @Summary Календарь табеля за месяц
// @Tags Табель
// @Description Одна строка на каждый день месяца: отпуск, табель, праздник, выходной или пусто
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц в формате 2006-01"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.CalendarResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/my/calendar [get]
func (c *timesheetApiController) calendar(ctx *fiber.Ctx) error {
	month := ctx.Query("month", "")
	if _, err := timesheetapimodels.ParseMonth(month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := timesheethandler.Instance.Calendar(middleware.GetUserID(ctx), month)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка табеля в Excel
// @Tags Табель
// @Description Календарь табеля за месяц в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц в формате 2006-01"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/my/calendar/excel [get]
func (c *timesheetApiController) calendarExcel(ctx *fiber.Ctx) error {
	month := ctx.Query("month", "")
	if _, err := timesheetapimodels.ParseMonth(month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, fileName, err := timesheethandler.Instance.CalendarExcel(middleware.GetUserID(ctx), month)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Send(buf.Bytes())
}

// @Summary Табели на согласование
// @Tags Табель
// @Description Записи в статусе SUBMITTED по подчиненным. HR и админ видят все записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц в формате 2006-01"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.ApprovalItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/approval [get]
func (c *timesheetApiController) approval(ctx *fiber.Ctx) error {
	month := ctx.Query("month", "")
	if _, err := timesheetapimodels.ParseMonth(month); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := timesheethandler.Instance.Approval(month, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Согласовать или отклонить табель
// @Tags Табель
// @Description Решение принимается только по записи в статусе SUBMITTED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID записи табеля"
// @Param	body				body		timesheetapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/status [put]
func (c *timesheetApiController) action(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = timesheethandler.Instance.Action(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		switch err {
		case timesheethandler.ErrForbidden:
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		case timesheethandler.ErrNotFound, timesheethandler.ErrAlreadyProcessed:
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}

// @Summary Отклоненные табели сотрудника
// @Tags Табель
// @Description Записи в статусе REJECTED, доступные для исправления
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.ApprovalItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/rejected [get]
func (c *timesheetApiController) rejected(ctx *fiber.Ctx) error {
	list, err := timesheethandler.Instance.Rejected(middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Исправить отклоненный табель
// @Tags Табель
// @Description Исправление возвращает запись в статус SUBMITTED, если в запросе не передан другой статус
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID записи табеля"
// @Param	body				body		timesheetapimodels.EditRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id} [put]
func (c *timesheetApiController) edit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.EditRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = timesheethandler.Instance.Edit(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		switch err {
		case timesheethandler.ErrForbidden:
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		case timesheethandler.ErrNotFound, timesheethandler.ErrNotRejected:
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}
