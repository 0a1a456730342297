package apiv1

import (
	"io"

	"devassist-backend/controllers"
	documenthandler "devassist-backend/lib/document"
	apperrors "devassist-backend/lib/utils/app-errors"
	"devassist-backend/middleware"
	documentapimodels "devassist-backend/models/api/document"

	"github.com/gofiber/fiber/v2"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("document", func(route fiber.Router) {
		route.Post("upload", controller.Upload)
		route.Post("analyze", controller.Analyze)
		route.Post("question", controller.Question)
		route.Get(":id", controller.Get)
		route.Delete(":id", controller.Delete)
	})
}

// @Summary Загрузка документа
// @Tags Document
// @Accept  multipart/form-data
// @Param   document    formData  file  true  "PDF или TXT"
// @Success 200 {object} documentapimodels.UploadResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/document/upload [post]
func (c *documentApiController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("document")
	if err != nil {
		return c.SendError(ctx, apperrors.Validation("No file uploaded"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, apperrors.Internal("Failed to read the uploaded file", err))
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return c.SendError(ctx, apperrors.Internal("Failed to read the uploaded file", err))
	}
	resp, err := documenthandler.Instance.Upload(ctx.UserContext(), file.Filename, file.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Анализ документа
// @Tags Document
// @Param	body	body		documentapimodels.AnalyzeRequest	true	"request body"
// @Success 200 {object} documentapimodels.AnalyzeResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/document/analyze [post]
func (c *documentApiController) Analyze(ctx *fiber.Ctx) error {
	var payload documentapimodels.AnalyzeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := documenthandler.Instance.Analyze(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Вопрос по документу
// @Tags Document
// @Param	body	body		documentapimodels.QuestionRequest	true	"request body"
// @Success 200 {object} documentapimodels.QuestionResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/document/question [post]
func (c *documentApiController) Question(ctx *fiber.Ctx) error {
	var payload documentapimodels.QuestionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := documenthandler.Instance.Question(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Информация о документе
// @Tags Document
// @Param   id          path    string  true        "document ID"
// @Success 200 {object} documentapimodels.DocumentInfo
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/document/{id} [get]
func (c *documentApiController) Get(ctx *fiber.Ctx) error {
	resp, err := documenthandler.Instance.Get(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Удаление документа
// @Tags Document
// @Param   id          path    string  true        "document ID"
// @Success 204
// @Failure 404 {object} apimodels.ErrorResponse
// @router /api/document/{id} [delete]
func (c *documentApiController) Delete(ctx *fiber.Ctx) error {
	if err := documenthandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
