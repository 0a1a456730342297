package apiv1

import (
	"devassist-backend/controllers"
	webpagehandler "devassist-backend/lib/webpage"
	"devassist-backend/middleware"
	webpageapimodels "devassist-backend/models/api/webpage"

	"github.com/gofiber/fiber/v2"
)

type webpageApiController struct {
	controllers.BaseAPIController
}

func InitWebpageApiRouters(app *fiber.App) {
	controller := webpageApiController{}
	app.Post("webpage/summarize", controller.Summarize)
}

// @Summary Краткое содержание веб-страницы
// @Tags Webpage
// @Param	body	body		webpageapimodels.SummarizeRequest	true	"request body"
// @Success 200 {object} webpageapimodels.SummarizeResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 504 {object} apimodels.ErrorResponse
// @router /api/webpage/summarize [post]
func (c *webpageApiController) Summarize(ctx *fiber.Ctx) error {
	var payload webpageapimodels.SummarizeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := webpagehandler.Instance.Summarize(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
