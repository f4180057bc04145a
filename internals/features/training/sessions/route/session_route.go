package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtrl "pelatihanku_backend/internals/features/training/sessions/controller"
	"pelatihanku_backend/internals/features/training/sessions/service"
	"pelatihanku_backend/internals/middlewares"
	authMW "pelatihanku_backend/internals/middlewares/auth"
)

// TrainingSessionRoutes mendaftarkan endpoint sesi di bawah
// /training/batches/:batch_id/sessions. Operasi tulis dilindungi bearer token.
func TrainingSessionRoutes(r fiber.Router, db *gorm.DB, uploader service.SignatureUploader) {
	ctrl := sessionCtrl.NewTrainingSessionController(db, uploader)

	g := r.Group("/batches/:batch_id/sessions")
	g.Get("/", ctrl.ListByBatch)
	g.Get("/:session_id", ctrl.GetByID)
	g.Post("/", authMW.AuthMiddleware(), ctrl.Create)
	g.Patch("/:session_id", authMW.AuthMiddleware(), ctrl.AddAssistants)
	g.Post("/:session_id/finish", authMW.AuthMiddleware(), middlewares.FinishRateLimiter(), ctrl.FinishSession)
}
