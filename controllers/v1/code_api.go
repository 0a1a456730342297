package apiv1

import (
	"devassist-backend/controllers"
	codehandler "devassist-backend/lib/code"
	apperrors "devassist-backend/lib/utils/app-errors"
	"devassist-backend/middleware"
	codeapimodels "devassist-backend/models/api/code"

	"github.com/gofiber/fiber/v2"
)

type codeApiController struct {
	controllers.BaseAPIController
}

func InitCodeApiRouters(app *fiber.App) {
	controller := codeApiController{}
	app.Route("code", func(route fiber.Router) {
		route.Post("analyze", controller.Analyze)
		route.Post("optimize", controller.Optimize)
		route.Post("debug", controller.Debug)
	})
}

func (c *codeApiController) parse(ctx *fiber.Ctx) (payload codeapimodels.CodeRequest, err error) {
	if err = c.BodyParser(ctx, &payload); err != nil {
		return payload, err
	}
	if err = payload.Validate(); err != nil {
		return payload, apperrors.Validation(err.Error())
	}
	return payload, nil
}

// @Summary Анализ кода
// @Tags Code
// @Param	body	body		codeapimodels.CodeRequest	true	"request body"
// @Success 200 {object} codeapimodels.AnalysisResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 503 {object} apimodels.ErrorResponse
// @router /api/code/analyze [post]
func (c *codeApiController) Analyze(ctx *fiber.Ctx) error {
	payload, err := c.parse(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := codehandler.Instance.Analyze(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Оптимизация кода
// @Tags Code
// @Param	body	body		codeapimodels.CodeRequest	true	"request body"
// @Success 200 {object} codeapimodels.OptimizationResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/code/optimize [post]
func (c *codeApiController) Optimize(ctx *fiber.Ctx) error {
	payload, err := c.parse(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := codehandler.Instance.Optimize(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Отладка кода
// @Tags Code
// @Param	body	body		codeapimodels.CodeRequest	true	"request body"
// @Success 200 {object} codeapimodels.DebuggingResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/code/debug [post]
func (c *codeApiController) Debug(ctx *fiber.Ctx) error {
	payload, err := c.parse(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := codehandler.Instance.Debug(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
