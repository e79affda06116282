package apiv1

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	leavehandler "hrms-backend/lib/leave"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	leaveapimodels "hrms-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("leaves", func(router fiber.Router) {
		router.Post("apply", controller.apply)
		router.Get("my", controller.my)
		router.Get("balance", controller.balance)
		router.Delete(":id", controller.delete)
		router.Get("pending", middleware.ApproverRoleRequired(), controller.pending)
		router.Put(":id/action", middleware.ApproverRoleRequired(), controller.action)
	})
}

// @Summary Подать заявку на отпуск
// @Tags Отпуска
// @Description Подать заявку на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/apply [post]
func (c *leaveApiController) apply(ctx *fiber.Ctx) error {
	var payload leaveapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leavehandler.Instance.Apply(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Мои заявки на отпуск
// @Tags Отпуска
// @Description Список заявок текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/my [get]
func (c *leaveApiController) my(ctx *fiber.Ctx) error {
	list, err := leavehandler.Instance.My(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Баланс отпусков
// @Tags Отпуска
// @Description Остатки по каждому типу отпуска за год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   year				query		int		false	"год, по умолчанию текущий"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.BalanceItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/balance [get]
func (c *leaveApiController) balance(ctx *fiber.Ctx) error {
	year := time.Now().Year()
	if v := ctx.Query("year", ""); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("год имеет неправильный формат"))
		}
		year = parsed
	}
	list, err := leavehandler.Instance.Balance(middleware.GetUserID(ctx), year)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отозвать заявку на отпуск
// @Tags Отпуска
// @Description Удалить можно только свою заявку в статусе PENDING
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID заявки"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id} [delete]
func (c *leaveApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = leavehandler.Instance.Delete(id, middleware.GetUserID(ctx))
	if err != nil {
		switch err {
		case leavehandler.ErrNotFound, leavehandler.ErrAlreadyProcessed:
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}

// @Summary Заявки на согласование
// @Tags Отпуска
// @Description Заявки в статусе PENDING по подчиненным. HR и админ видят все заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/pending [get]
func (c *leaveApiController) pending(ctx *fiber.Ctx) error {
	list, err := leavehandler.Instance.Pending(middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Согласовать или отклонить заявку
// @Tags Отпуска
// @Description Решение принимается только по заявке в статусе PENDING
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID заявки"
// @Param	body				body		leaveapimodels.ActionRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id}/action [put]
func (c *leaveApiController) action(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload leaveapimodels.ActionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = leavehandler.Instance.Action(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		switch err {
		case leavehandler.ErrForbidden:
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		case leavehandler.ErrNotFound, leavehandler.ErrAlreadyProcessed:
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}
