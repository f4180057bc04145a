package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pelatihanku_backend/internals/features/training/scenarios/dto"
	"pelatihanku_backend/internals/features/training/scenarios/model"
	helper "pelatihanku_backend/internals/helpers"
)

// TrainingScenarioController hanya melayani pembacaan: skenario adalah data
// referensi yang di-seed, bukan di-manage lewat API.
type TrainingScenarioController struct {
	DB *gorm.DB
}

func NewTrainingScenarioController(db *gorm.DB) *TrainingScenarioController {
	return &TrainingScenarioController{DB: db}
}

// GET /api/training/scenarios
func (ctrl *TrainingScenarioController) List(c *fiber.Ctx) error {
	var scenarios []model.TrainingScenarioModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("id ASC").
		Find(&scenarios).Error; err != nil {
		return helper.InternalError(c, err)
	}

	content := make([]dto.TrainingScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		content = append(content, dto.NewTrainingScenarioResponse(s))
	}
	return helper.List(c, content, int64(len(content)))
}
