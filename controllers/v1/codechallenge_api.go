package apiv1

import (
	"devassist-backend/controllers"
	codechallengehandler "devassist-backend/lib/codechallenge"
	"devassist-backend/middleware"
	codechallengeapimodels "devassist-backend/models/api/codechallenge"

	"github.com/gofiber/fiber/v2"
)

type codeChallengeApiController struct {
	controllers.BaseAPIController
}

func InitCodeChallengeApiRouters(app *fiber.App) {
	controller := codeChallengeApiController{}
	app.Route("codechallenge", func(route fiber.Router) {
		route.Get("challenges", controller.List)
		route.Get("challenges/:id", controller.Get)
		route.Post("evaluate", controller.Evaluate)
		route.Post("analyze", controller.Analyze)
	})
}

// @Summary Список задач
// @Tags CodeChallenge
// @Success 200 {array} codechallengeapimodels.ChallengeShort
// @router /api/codechallenge/challenges [get]
func (c *codeChallengeApiController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(codechallengehandler.Instance.List())
}

// @Summary Задача
// @Tags CodeChallenge
// @Param   id          path    string  true        "challenge ID"
// @Success 200 {object} codechallengeapimodels.Challenge
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/codechallenge/challenges/{id} [get]
func (c *codeChallengeApiController) Get(ctx *fiber.Ctx) error {
	challenge, err := codechallengehandler.Instance.Get(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(challenge)
}

// @Summary Оценка решения задачи
// @Tags CodeChallenge
// @Param	body	body		codechallengeapimodels.EvaluateRequest	true	"request body"
// @Success 200 {object} codechallengeapimodels.EvaluateResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/codechallenge/evaluate [post]
func (c *codeChallengeApiController) Evaluate(ctx *fiber.Ctx) error {
	var payload codechallengeapimodels.EvaluateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := codechallengehandler.Instance.Evaluate(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Проверка выполнения решения
// @Tags CodeChallenge
// @Description Модель отвечает JSON {success, message}, при неразборчивом ответе success=false
// @Param	body	body		codechallengeapimodels.AnalyzeRequest	true	"request body"
// @Success 200 {object} codechallengeapimodels.AnalyzeResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/codechallenge/analyze [post]
func (c *codeChallengeApiController) Analyze(ctx *fiber.Ctx) error {
	var payload codechallengeapimodels.AnalyzeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := codechallengehandler.Instance.Analyze(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
