package model

import (
	"time"

	"gorm.io/datatypes"
)

// TrainingScenarioModel adalah data referensi: kategori penilaian asisten.
// Read-only dari sisi API; isinya di-seed (lihat internals/seeds).
type TrainingScenarioModel struct {
	ID          uint              `gorm:"primaryKey;column:id" json:"id"`
	Description string            `gorm:"column:description;not null" json:"description"`
	Meta        datatypes.JSONMap `gorm:"column:meta" json:"meta,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingScenarioModel) TableName() string { return "training_scenarios" }
