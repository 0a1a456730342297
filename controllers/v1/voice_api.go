package apiv1

import (
	"devassist-backend/controllers"
	apperrors "devassist-backend/lib/utils/app-errors"
	voicehandler "devassist-backend/lib/voice"
	"devassist-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

type voiceApiController struct {
	controllers.BaseAPIController
}

func InitVoiceApiRouters(app *fiber.App) {
	controller := voiceApiController{}
	app.Post("voice/process", controller.Process)
}

// @Summary Голосовое сообщение
// @Tags Voice
// @Description Транскрибация аудио и ответ модели на распознанный текст
// @Accept  multipart/form-data
// @Param   audio    formData  file  true  "аудиофайл"
// @Success 200 {object} voiceapimodels.ProcessResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/voice/process [post]
func (c *voiceApiController) Process(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("audio")
	if err != nil {
		return c.SendError(ctx, apperrors.Validation("No audio file uploaded"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, apperrors.Internal("Failed to read the uploaded file", err))
	}
	defer reader.Close()
	resp, err := voicehandler.Instance.Process(ctx.UserContext(), middleware.GetUserID(ctx), file.Filename, reader)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}
