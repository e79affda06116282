package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	attendancehandler "hrms-backend/lib/attendance"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	attendanceapimodels "hrms-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Post("clock-in", controller.clockIn)
		router.Post("take-break", controller.takeBreak)
		router.Post("end-break", controller.endBreak)
		router.Post("clock-out", controller.clockOut)
		router.Get("today", controller.today)
		router.Get("history/me", controller.history)
	})
}

func (c *attendanceApiController) sendStateError(ctx *fiber.Ctx, err error) error {
	switch err {
	case attendancehandler.ErrAlreadyClockedIn,
		attendancehandler.ErrNoOpenSession,
		attendancehandler.ErrAlreadyOnBreak,
		attendancehandler.ErrNotOnBreak:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}

// @Summary Начать смену
// @Tags Учет рабочего времени
// @Description Открыть смену на текущую бизнес-дату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.ClockInRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/clock-in [post]
func (c *attendanceApiController) clockIn(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ClockInRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status, clockIn, err := attendancehandler.Instance.ClockIn(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.sendStateError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"status":   status,
		"clock_in": clockIn.Format(time.RFC3339),
	}))
}

// @Summary Начать перерыв
// @Tags Учет рабочего времени
// @Description Перевести открытую смену в состояние перерыва
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/take-break [post]
func (c *attendanceApiController) takeBreak(ctx *fiber.Ctx) error {
	status, err := attendancehandler.Instance.TakeBreak(middleware.GetUserID(ctx))
	if err != nil {
		return c.sendStateError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"status": status}))
}

// @Summary Завершить перерыв
// @Tags Учет рабочего времени
// @Description Вернуть смену из перерыва в работу
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/end-break [post]
func (c *attendanceApiController) endBreak(ctx *fiber.Ctx) error {
	status, err := attendancehandler.Instance.EndBreak(middleware.GetUserID(ctx))
	if err != nil {
		return c.sendStateError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"status": status}))
}

// @Summary Завершить смену
// @Tags Учет рабочего времени
// @Description Закрыть смену и создать черновик табеля за день
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.ClockOutRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/clock-out [post]
func (c *attendanceApiController) clockOut(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ClockOutRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status, err := attendancehandler.Instance.ClockOut(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.sendStateError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"status": status}))
}

// @Summary Состояние смены на сегодня
// @Tags Учет рабочего времени
// @Description Состояние смены на текущую бизнес-дату
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.TodayStatusResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/today [get]
func (c *attendanceApiController) today(ctx *fiber.Ctx) error {
	resp, err := attendancehandler.Instance.TodayStatus(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary История смен
// @Tags Учет рабочего времени
// @Description Последние смены сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.HistoryDay}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/history/me [get]
func (c *attendanceApiController) history(ctx *fiber.Ctx) error {
	list, err := attendancehandler.Instance.History(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
