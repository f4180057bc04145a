package service

import (
	"pelatihanku_backend/internals/features/training/sessions/model"
)

// AverageScore menghitung rata-rata aritmetika seluruh skor skenario milik
// asisten-asisten sesi. nil (bukan 0) kalau belum ada skor sama sekali.
//
// Nilainya derived, tidak pernah disimpan: selalu dihitung ulang dari rows
// yang baru dimuat supaya tidak basi setelah batch skor tambahan masuk.
func AverageScore(assistants []model.TrainingSessionAssistantModel) *float64 {
	var sum, n int
	for _, a := range assistants {
		for _, s := range a.Scores {
			sum += s.Score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
