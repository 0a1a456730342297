package apiv1

import (
	"devassist-backend/controllers"
	ailog "devassist-backend/lib/ai/ai-log"
	apperrors "devassist-backend/lib/utils/app-errors"

	"github.com/gofiber/fiber/v2"
)

type aiLogApiController struct {
	controllers.BaseAPIController
}

func InitAiLogApiRouters(app *fiber.App) {
	controller := aiLogApiController{}
	app.Get("ailog", controller.List)
}

// @Summary Журнал запросов к ИИ
// @Tags AiLog
// @Param   taskKind    query   string  false  "тип задачи"
// @Param   limit       query   int     false  "число записей"
// @Success 200 {array} ailogapimodels.AiLogView
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/ailog [get]
func (c *aiLogApiController) List(ctx *fiber.Ctx) error {
	if ailog.Instance == nil {
		return c.SendError(ctx, apperrors.NotFound("AI log is disabled"))
	}
	list, err := ailog.Instance.ListRecent(ctx.Query("taskKind"), ctx.QueryInt("limit"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(list)
}
