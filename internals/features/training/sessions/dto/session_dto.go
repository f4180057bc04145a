package dto

import (
	"pelatihanku_backend/internals/features/training/sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create sesi (JSON). Field wajib dicek manual supaya pesan errornya
// mengikuti kontrak API lama ("X cannot be empty").
type CreateTrainingSessionRequest struct {
	ProviderBranchID *uint    `json:"provider_branch_id" validate:"omitempty,min=1"`
	TeacherID        *uint    `json:"teacher_id" validate:"omitempty,min=1"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// Satu hasil penilaian skenario dalam batch. Pointer membedakan "tidak
// dikirim/null" dari nilai nol yang sah (score 0 itu valid).
type ScenarioResultRequest struct {
	ScenarioID *uint `json:"scenario_id"`
	Score      *int  `json:"score"`
}

// Satu asisten beserta nilai per skenario.
type AssistantScoresRequest struct {
	EmployeeID uint                    `json:"employee_id" validate:"required,min=1"`
	Results    []ScenarioResultRequest `json:"results"`
}

// PATCH /sessions/:id — batch asisten + nilai.
type AddAssistantsRequest struct {
	Assistants []AssistantScoresRequest `json:"assistants"`
}

// POST /sessions/:id/finish.
type FinishSessionRequest struct {
	Comments        *string `json:"comments" validate:"omitempty,max=512"`
	SignatureBase64 *string `json:"signature_base64"`
}

/* =========================================================
 * RESPONSES (kontrak JSON API lama)
 * ========================================================= */

type TeacherResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AssistantEmployeeResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Title *string `json:"title"`
}

type ScenarioScoreResponse struct {
	ID         uint `json:"id"`
	ScenarioID uint `json:"scenario_id"`
	Score      int  `json:"score"`
}

type TrainingSessionAssistantResponse struct {
	ID                       uint                      `json:"id"`
	ProviderBranchEmployeeID uint                      `json:"provider_branch_employee_id"`
	Employee                 AssistantEmployeeResponse `json:"employee"`
	Scores                   []ScenarioScoreResponse   `json:"scores"`
}

type TrainingSessionResponse struct {
	ID           uint                               `json:"id"`
	TeacherID    uint                               `json:"teacher_id"`
	Latitude     float64                            `json:"latitude"`
	Longitude    float64                            `json:"longitude"`
	Comments     *string                            `json:"comments"`
	SignatureURL *string                            `json:"signature_url"`
	Teacher      TeacherResponse                    `json:"teacher"`
	AvgScore     *float64                           `json:"avg_score"`
	Assistants   []TrainingSessionAssistantResponse `json:"assistants"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateTrainingSessionRequest) ToModel(batchID uint) model.TrainingSessionModel {
	m := model.TrainingSessionModel{TrainingBatchID: batchID}
	if r.ProviderBranchID != nil {
		m.ProviderBranchID = *r.ProviderBranchID
	}
	if r.TeacherID != nil {
		m.TeacherID = *r.TeacherID
	}
	if r.Latitude != nil {
		m.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		m.Longitude = *r.Longitude
	}
	return m
}

// NewTrainingSessionResponse menyusun representasi sesi. avgScore dihitung
// pemanggil dari rows yang baru dimuat (tidak pernah disimpan/cache).
func NewTrainingSessionResponse(m *model.TrainingSessionModel, avgScore *float64) TrainingSessionResponse {
	assistants := make([]TrainingSessionAssistantResponse, 0, len(m.Assistants))
	for _, a := range m.Assistants {
		scores := make([]ScenarioScoreResponse, 0, len(a.Scores))
		for _, s := range a.Scores {
			scores = append(scores, ScenarioScoreResponse{
				ID:         s.ID,
				ScenarioID: s.TrainingScenarioID,
				Score:      s.Score,
			})
		}
		assistants = append(assistants, TrainingSessionAssistantResponse{
			ID:                       a.ID,
			ProviderBranchEmployeeID: a.ProviderBranchEmployeeID,
			Employee: AssistantEmployeeResponse{
				ID:    a.Employee.ID,
				Name:  a.Employee.Name,
				Phone: a.Employee.Phone,
				Title: a.Employee.Title,
			},
			Scores: scores,
		})
	}

	return TrainingSessionResponse{
		ID:           m.ID,
		TeacherID:    m.TeacherID,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Comments:     m.Comments,
		SignatureURL: m.SignatureURL,
		Teacher: TeacherResponse{
			ID:        m.Teacher.ID,
			FirstName: m.Teacher.FirstName,
			LastName:  m.Teacher.LastName,
		},
		AvgScore:   avgScore,
		Assistants: assistants,
	}
}
