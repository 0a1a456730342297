package apiv1

import (
	"devassist-backend/controllers"
	modelshandler "devassist-backend/lib/models"
	ollamamodels "devassist-backend/models/api/ollama"

	"github.com/gofiber/fiber/v2"
)

type modelsApiController struct {
	controllers.BaseAPIController
}

// InitHealthApiRouters регистрируется до авторизации
func InitHealthApiRouters(app *fiber.App) {
	controller := modelsApiController{}
	app.Get("health", controller.Health)
}

func InitModelsApiRouters(app *fiber.App) {
	controller := modelsApiController{}
	app.Route("models", func(route fiber.Router) {
		route.Get("", controller.List)
		route.Post("show", controller.Show)
	})
}

// @Summary Состояние сервиса
// @Tags Models
// @Success 200 {object} ollamamodels.HealthResponse
// @router /api/health [get]
func (c *modelsApiController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(modelshandler.Instance.Health(ctx.UserContext()))
}

// @Summary Список моделей Ollama
// @Tags Models
// @Success 200 {object} ollamamodels.ModelsResponse
// @Failure 503 {object} apimodels.ErrorResponse
// @router /api/models [get]
func (c *modelsApiController) List(ctx *fiber.Ctx) error {
	resp, err := modelshandler.Instance.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Информация о модели
// @Tags Models
// @Param	body	body		ollamamodels.ShowRequest	true	"request body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/models/show [post]
func (c *modelsApiController) Show(ctx *fiber.Ctx) error {
	var payload ollamamodels.ShowRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := modelshandler.Instance.Show(ctx.UserContext(), payload.Name)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
