package apiv1

import (
	"devassist-backend/controllers"
	imagegenhandler "devassist-backend/lib/imagegen"
	imagegenapimodels "devassist-backend/models/api/imagegen"

	"github.com/gofiber/fiber/v2"
)

type imageGenApiController struct {
	controllers.BaseAPIController
}

func InitImageGenApiRouters(app *fiber.App) {
	controller := imageGenApiController{}
	app.Post("imagegen/generate", controller.Generate)
}

// @Summary Генерация изображения
// @Tags ImageGen
// @Description mode=generated при работающем бэкенде, иначе mode=placeholder
// @Param	body	body		imagegenapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} imagegenapimodels.GenerateResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/imagegen/generate [post]
func (c *imageGenApiController) Generate(ctx *fiber.Ctx) error {
	var payload imagegenapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := imagegenhandler.Instance.Generate(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
