package apiv1

import (
	"devassist-backend/controllers"
	docgenhandler "devassist-backend/lib/docgen"
	"devassist-backend/middleware"
	docgenapimodels "devassist-backend/models/api/docgen"

	"github.com/gofiber/fiber/v2"
)

type docGenApiController struct {
	controllers.BaseAPIController
}

func InitDocGenApiRouters(app *fiber.App) {
	controller := docGenApiController{}
	app.Route("docgen", func(route fiber.Router) {
		route.Post("generate", controller.Generate)
		route.Post("export", controller.Export)
	})
}

// @Summary Генерация документации по коду
// @Tags DocGen
// @Param	body	body		docgenapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} docgenapimodels.GenerateResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/docgen/generate [post]
func (c *docGenApiController) Generate(ctx *fiber.Ctx) error {
	var payload docgenapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	resp, err := docgenhandler.Instance.Generate(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.JSON(resp)
}

// @Summary Выгрузка документации в PDF
// @Tags DocGen
// @Produce application/pdf
// @Param	body	body		docgenapimodels.ExportRequest	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @router /api/docgen/export [post]
func (c *docGenApiController) Export(ctx *fiber.Ctx) error {
	var payload docgenapimodels.ExportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendValidationError(ctx, err)
	}
	data, err := docgenhandler.Instance.ExportPDF(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="documentation.pdf"`)
	return ctx.Send(data)
}
