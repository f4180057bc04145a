// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"pelatihanku_backend/internals/configs"
	helper "pelatihanku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token HS256 untuk route tulis.
// Autentikasi (login, penerbitan token) hidup di service lain; di sini
// hanya verifikasi.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Unauthorized(c, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.InternalError(c, fmt.Errorf("missing JWT secret"))
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			return helper.Unauthorized(c, "Unauthorized - Invalid token")
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"]; ok {
				c.Locals("user_id", sub)
			}
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get("Authorization"))
	if h == "" {
		return "", fmt.Errorf("Unauthorized - No token provided")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("Unauthorized - Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
