package apiv1

import (
	"devassist-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// InitApiRouters регистрирует все маршруты /api. Health доступен без токена.
func InitApiRouters(api *fiber.App, jwtSecret string) {
	InitHealthApiRouters(api)

	api.Use(middleware.AuthorizationRequired(jwtSecret))
	InitModelsApiRouters(api)
	InitChatApiRouters(api)
	InitCodeApiRouters(api)
	InitCodeChallengeApiRouters(api)
	InitDocumentApiRouters(api)
	InitDocGenApiRouters(api)
	InitNLPToCodeApiRouters(api)
	InitWebpageApiRouters(api)
	InitVoiceApiRouters(api)
	InitImageGenApiRouters(api)
	InitAiLogApiRouters(api)
}
