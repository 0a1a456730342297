package apiv1

import (
	"devassist-backend/controllers"
	nlptocodehandler "devassist-backend/lib/nlptocode"
	"devassist-backend/middleware"
	nlptocodeapimodels "devassist-backend/models/api/nlptocode"

	"github.com/gofiber/fiber/v2"
)

type nlpToCodeApiController struct {
	controllers.BaseAPIController
}

func InitNLPToCodeApiRouters(app *fiber.App) {
	controller := nlpToCodeApiController{}
	app.Route("nlptocode", func(route fiber.Router) {
		route.Post("generate", controller.Generate)
		route.Post("tests", controller.Tests)
		route.Post("improve", controller.Improve)
	})
}

// @Summary Код по описанию
// @Tags NLPToCode
// @Param	body	body		nlptocodeapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} nlptocodeapimodels.GenerateResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/nlptocode/generate [post]
func (c *nlpToCodeApiController) Generate(ctx *fiber.Ctx) error {
	var payload nlptocodeapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := nlptocodehandler.Instance.Generate(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Генерация тестов
// @Tags NLPToCode
// @Param	body	body		nlptocodeapimodels.TestsRequest	true	"request body"
// @Success 200 {object} nlptocodeapimodels.TestsResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/nlptocode/tests [post]
func (c *nlpToCodeApiController) Tests(ctx *fiber.Ctx) error {
	var payload nlptocodeapimodels.TestsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := nlptocodehandler.Instance.Tests(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Улучшение кода
// @Tags NLPToCode
// @Param	body	body		nlptocodeapimodels.ImproveRequest	true	"request body"
// @Success 200 {object} nlptocodeapimodels.ImproveResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/nlptocode/improve [post]
func (c *nlpToCodeApiController) Improve(ctx *fiber.Ctx) error {
	var payload nlptocodeapimodels.ImproveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := nlptocodehandler.Instance.Improve(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
