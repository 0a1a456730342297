package middleware

import (
	authutils "devassist-backend/lib/utils/auth-utils"
	apimodels "devassist-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthorizationRequired проверяет bearer токен. Пустой secret отключает проверку.
func AuthorizationRequired(secret string) fiber.Handler {
	if secret == "" {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewErrorWithDetails("Unauthorized", err.Error()))
		},
	})
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
