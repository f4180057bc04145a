// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchRoute "pelatihanku_backend/internals/features/training/batches/route"
	providerRoute "pelatihanku_backend/internals/features/training/providers/route"
	scenarioRoute "pelatihanku_backend/internals/features/training/scenarios/route"
	sessionRoute "pelatihanku_backend/internals/features/training/sessions/route"
	"pelatihanku_backend/internals/features/training/sessions/service"
)

// SetupRoutes mendaftarkan semua route API training di bawah /api/training.
// uploader adalah kolaborator blob store untuk tanda tangan sesi.
func SetupRoutes(app *fiber.App, db *gorm.DB, uploader service.SignatureUploader) {
	BaseRoutes(app)

	api := app.Group("/api")
	training := api.Group("/training")

	providerRoute.ProviderRoutes(training, db)
	batchRoute.TrainingBatchRoutes(training, db)
	scenarioRoute.TrainingScenarioRoutes(training, db)
	sessionRoute.TrainingSessionRoutes(training, db, uploader)
}
