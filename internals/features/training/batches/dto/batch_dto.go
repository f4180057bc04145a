package dto

type CreateTrainingBatchRequest struct {
	Name string `json:"name" validate:"omitempty,max=255"`
}

// TrainingBatchResponse: sessions adalah jumlah sesi dalam batch.
type TrainingBatchResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Sessions int64  `json:"sessions"`
}
