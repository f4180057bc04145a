package model

import "time"

// TrainingBatchModel mengelompokkan sesi pelatihan dalam satu gelombang.
type TrainingBatchModel struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrainingBatchModel) TableName() string { return "training_batches" }
