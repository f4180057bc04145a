package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchCtrl "pelatihanku_backend/internals/features/training/batches/controller"
	authMW "pelatihanku_backend/internals/middlewares/auth"
)

func TrainingBatchRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := batchCtrl.NewTrainingBatchController(db)

	g := r.Group("/batches")
	g.Get("/", ctrl.List)
	g.Post("/", authMW.AuthMiddleware(), ctrl.Create)
}
