package apiv1

import (
	"devassist-backend/controllers"
	chathandler "devassist-backend/lib/chat"
	"devassist-backend/middleware"
	chatapimodels "devassist-backend/models/api/chat"

	"github.com/gofiber/fiber/v2"
)

type chatApiController struct {
	controllers.BaseAPIController
}

func InitChatApiRouters(app *fiber.App) {
	controller := chatApiController{}
	app.Post("chat", controller.Chat)
}

// @Summary Сообщение в чат
// @Tags Chat
// @Description Ответ модели с учетом истории диалога
// @Param	body	body		chatapimodels.ChatRequest	true	"request body"
// @Success 200 {object} chatapimodels.ChatResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 503 {object} apimodels.ErrorResponse
// @Failure 504 {object} apimodels.ErrorResponse
// @router /api/chat [post]
func (c *chatApiController) Chat(ctx *fiber.Ctx) error {
	var payload chatapimodels.ChatRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := chathandler.Instance.Chat(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
