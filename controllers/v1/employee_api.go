package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	employeehandler "hrms-backend/lib/employee"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	employeeapimodels "hrms-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("org-chart", controller.orgChart)
		router.Get(":id", controller.get)
		router.Post("", middleware.StaffRoleRequired(), controller.create)
		router.Put(":id", middleware.StaffRoleRequired(), controller.update)
		router.Put(":id/deactivate", middleware.StaffRoleRequired(), controller.deactivate)
		router.Delete(":id", middleware.StaffRoleRequired(), controller.delete)
	})
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников. По умолчанию только активные
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   all					query		bool	false	"включая деактивированных"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.Employee}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	onlyActive := ctx.Query("all", "") != "true"
	list, err := employeehandler.Instance.GetList(onlyActive)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Организационная структура
// @Tags Сотрудники
// @Description Дерево подчиненности по активным сотрудникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.OrgNode}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/org-chart [get]
func (c *employeeApiController) orgChart(ctx *fiber.Ctx) error {
	roots, err := employeehandler.Instance.OrgChart()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(roots))
}

// @Summary Карточка сотрудника
// @Tags Сотрудники
// @Description Карточка сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID сотрудника"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.Employee}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		if err == employeehandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Создать сотрудника
// @Tags Сотрудники
// @Description Создать сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employeehandler.Instance.Create(payload)
	if err != nil {
		if err == employeehandler.ErrEmailExists {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновить сотрудника
// @Tags Сотрудники
// @Description Обновить данные сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID сотрудника"
// @Param	body				body		employeeapimodels.EmployeeUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Update(id, payload)
	if err != nil {
		if err == employeehandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}

// @Summary Деактивировать сотрудника
// @Tags Сотрудники
// @Description Сотрудник помечается неактивным и теряет доступ в систему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/deactivate [put]
func (c *employeeApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Deactivate(id)
	if err != nil {
		if err == employeehandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}

// @Summary Удалить сотрудника
// @Tags Сотрудники
// @Description Удалить сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"ID сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Delete(id)
	if err != nil {
		if err == employeehandler.ErrNotFound {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}
