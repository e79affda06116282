package dict

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	holidayprovider "hrms-backend/lib/dicts/holiday"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	dictapimodels "hrms-backend/models/api/dict"
)

type holidayDictApiController struct {
	controllers.BaseAPIController
}

func InitHolidayDictApiRouters(app *fiber.App) {
	controller := holidayDictApiController{}
	app.Route("holiday", func(router fiber.Router) {
		router.Get("", controller.holidayList)
		router.Post("", middleware.StaffRoleRequired(), controller.holidayCreate)
	})
}

// @Summary Список праздников
// @Tags Справочник. Праздники
// @Description Список производственных праздников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.HolidayItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/holiday [get]
func (c *holidayDictApiController) holidayList(ctx *fiber.Ctx) error {
	recs, err := holidayprovider.Instance.GetList()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	list := make([]dictapimodels.HolidayItem, 0, len(recs))
	for _, rec := range recs {
		list = append(list, dictapimodels.HolidayItem{
			ID:   rec.ID,
			Date: rec.Date.Format("2006-01-02"),
			Name: rec.Name,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавить праздник
// @Tags Справочник. Праздники
// @Description Добавить производственный праздник
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.HolidayData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/holiday [post]
func (c *holidayDictApiController) holidayCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.HolidayData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := holidayprovider.Instance.Add(payload.Date, payload.Name); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewOk())
}
