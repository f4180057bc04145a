package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scenarioCtrl "pelatihanku_backend/internals/features/training/scenarios/controller"
)

func TrainingScenarioRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := scenarioCtrl.NewTrainingScenarioController(db)

	g := r.Group("/scenarios")
	g.Get("/", ctrl.List)
}
