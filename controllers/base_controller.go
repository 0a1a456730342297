package controllers

import (
	apperrors "devassist-backend/lib/utils/app-errors"
	apimodels "devassist-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ошибка распознавания запроса")
		return apperrors.New(apperrors.KindValidation, "Invalid request body", err.Error(), err)
	}
	return nil
}

// SendError пишет {error, details} со статусом по классу ошибки
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = &apperrors.Error{Kind: apperrors.KindInternal, Message: "Internal server error", Details: err.Error()}
	}
	status := apperrors.HTTPStatus(appErr.Kind)
	logger := c.GetLogger(ctx).
		WithField("status", status).
		WithField("kind", appErr.Kind.String()).
		WithError(err)
	if status >= fiber.StatusInternalServerError {
		logger.Error("ошибка обработки запроса")
	} else {
		logger.Warn("запрос отклонен")
	}
	return ctx.Status(status).JSON(apimodels.NewErrorWithDetails(appErr.Message, appErr.Details))
}

// SendValidationError оборачивает ошибку Validate() в класс validation
func (c *BaseAPIController) SendValidationError(ctx *fiber.Ctx, err error) error {
	return c.SendError(ctx, apperrors.Validation(err.Error()))
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("path", ctx.Path()).
		WithField("request_id", ctx.GetRespHeader(fiber.HeaderXRequestID))
}
