package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "pelatihanku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu CORS, rate limiter, dan logger request.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMW.LoggerMiddleware())
}
