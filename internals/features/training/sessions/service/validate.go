package service

import (
	"pelatihanku_backend/internals/features/training/sessions/dto"
	"pelatihanku_backend/internals/features/training/sessions/model"
)

// Batas skor inklusif per skenario.
const (
	ScoreMin = 0
	ScoreMax = 100
)

/* =========================================================
 * Aturan validasi murni (tanpa side effect, tanpa DB).
 * Dipanggil SEBELUM ada mutasi apa pun: satu record rusak
 * membatalkan seluruh batch tanpa partial write.
 * Pesan error adalah kontrak API lama — jangan diubah.
 * ========================================================= */

// ValidateScoreBatch memeriksa seluruh payload batch asisten terhadap sesi
// yang masih open. employees berisi id employee milik cabang provider sesi;
// scenarios berisi id skenario yang dikenal.
func ValidateScoreBatch(
	session *model.TrainingSessionModel,
	assistants []dto.AssistantScoresRequest,
	employees map[uint]struct{},
	scenarios map[uint]struct{},
) error {
	if session.IsCompleted() {
		return NewValidationError("Training session is already completed, you cannot add new assistants to it")
	}
	if assistants == nil {
		return NewValidationError("assistants cannot be null")
	}

	for _, assistant := range assistants {
		// Pesan merujuk employee id, bukan index, supaya caller bisa
		// mengoreksi payload-nya sendiri.
		if _, ok := employees[assistant.EmployeeID]; !ok {
			return NewValidationError("Employee %d does not exist", assistant.EmployeeID)
		}
		if assistant.Results == nil {
			return NewValidationError("scores array on assistant #%d cannot be null", assistant.EmployeeID)
		}
		for x, result := range assistant.Results {
			pos := x + 1 // posisi 1-based di pesan error
			if result.ScenarioID == nil {
				return NewValidationError("scenario_id is null in result [%d] of assistant #%d", pos, assistant.EmployeeID)
			}
			if _, ok := scenarios[*result.ScenarioID]; !ok {
				return NewValidationError("scenario in result [%d] of assistant #%d does not exist", pos, assistant.EmployeeID)
			}
			if result.Score == nil {
				return NewValidationError("score is null in result [%d] of assistant #%d", pos, assistant.EmployeeID)
			}
			if *result.Score < ScoreMin || *result.Score > ScoreMax {
				return NewValidationError("score in result [%d] of assistant #%d is outside of permitted scope [0-100]", pos, assistant.EmployeeID)
			}
		}
	}
	return nil
}

// ValidateFinish memeriksa payload finalisasi. Sesi closed menolak semua
// panggilan berikutnya — transisinya satu arah.
func ValidateFinish(session *model.TrainingSessionModel, req dto.FinishSessionRequest) error {
	if session.IsCompleted() {
		return NewValidationError("Training session is already completed")
	}
	if req.Comments == nil {
		return NewValidationError("comments cannot be empty")
	}
	if req.SignatureBase64 == nil {
		return NewValidationError("Signature cannot be null")
	}
	return nil
}
