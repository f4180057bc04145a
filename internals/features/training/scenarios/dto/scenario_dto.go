package dto

import (
	"gorm.io/datatypes"

	"pelatihanku_backend/internals/features/training/scenarios/model"
)

type TrainingScenarioResponse struct {
	ID          uint              `json:"id"`
	Description string            `json:"description"`
	Meta        datatypes.JSONMap `json:"meta,omitempty"`
}

func NewTrainingScenarioResponse(m model.TrainingScenarioModel) TrainingScenarioResponse {
	return TrainingScenarioResponse{
		ID:          m.ID,
		Description: m.Description,
		Meta:        m.Meta,
	}
}
