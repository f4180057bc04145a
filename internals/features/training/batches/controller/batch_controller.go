package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pelatihanku_backend/internals/features/training/batches/dto"
	"pelatihanku_backend/internals/features/training/batches/model"
	helper "pelatihanku_backend/internals/helpers"
)

type TrainingBatchController struct {
	DB *gorm.DB
}

func NewTrainingBatchController(db *gorm.DB) *TrainingBatchController {
	return &TrainingBatchController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/training/batches
func (ctrl *TrainingBatchController) List(c *fiber.Ctx) error {
	var content []dto.TrainingBatchResponse
	err := ctrl.DB.WithContext(c.UserContext()).
		Table("training_batches b").
		Select("b.id, b.name, (SELECT count(*) FROM training_sessions s WHERE s.training_batch_id = b.id) AS sessions").
		Order("b.name ASC").
		Scan(&content).Error
	if err != nil {
		return helper.InternalError(c, err)
	}
	return helper.List(c, content, int64(len(content)))
}

/* ===================== CREATE ===================== */
// POST /api/training/batches
func (ctrl *TrainingBatchController) Create(c *fiber.Ctx) error {
	var req dto.CreateTrainingBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Payload tidak valid")
	}
	if req.Name == "" {
		return helper.ValidationError(c, "Name cannot be empty")
	}
	if msg := helper.ValidateStruct(req); msg != "" {
		return helper.ValidationError(c, msg)
	}

	batch := model.TrainingBatchModel{Name: req.Name}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&batch).Error; err != nil {
		return helper.InternalError(c, err)
	}
	return helper.JSON(c, fiber.StatusCreated, dto.TrainingBatchResponse{
		ID:   batch.ID,
		Name: batch.Name,
	})
}
