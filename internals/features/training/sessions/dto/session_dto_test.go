package dto

import (
	"testing"

	providerModel "pelatihanku_backend/internals/features/training/providers/model"
	"pelatihanku_backend/internals/features/training/sessions/model"
	userModel "pelatihanku_backend/internals/features/training/users/model"
)

func TestToModelNilFieldsStayZero(t *testing.T) {
	m := CreateTrainingSessionRequest{}.ToModel(7)
	if m.TrainingBatchID != 7 {
		t.Fatalf("batch id: got %d, want 7", m.TrainingBatchID)
	}
	if m.ProviderBranchID != 0 || m.TeacherID != 0 || m.Latitude != 0 || m.Longitude != 0 {
		t.Fatalf("nil fields must stay zero: %+v", m)
	}
}

func TestNewTrainingSessionResponse(t *testing.T) {
	title := "Nurse"
	m := &model.TrainingSessionModel{
		ID:        3,
		TeacherID: 9,
		Latitude:  -6.2,
		Longitude: 106.8,
		Teacher:   userModel.UserModel{ID: 9, FirstName: "Dewi", LastName: "Lestari"},
		Assistants: []model.TrainingSessionAssistantModel{
			{
				ID:                       21,
				ProviderBranchEmployeeID: 40,
				Employee:                 providerModel.ProviderBranchEmployeeModel{ID: 40, Name: "Budi", Title: &title},
				Scores: []model.TrainingSessionAssistantScoreModel{
					{ID: 100, TrainingScenarioID: 5, Score: 88},
				},
			},
		},
	}
	avg := 88.0
	resp := NewTrainingSessionResponse(m, &avg)

	if resp.ID != 3 || resp.Teacher.FirstName != "Dewi" {
		t.Fatalf("header mismatch: %+v", resp)
	}
	if resp.AvgScore == nil || *resp.AvgScore != 88 {
		t.Fatalf("avg_score mismatch: %v", resp.AvgScore)
	}
	if len(resp.Assistants) != 1 {
		t.Fatalf("assistants: got %d, want 1", len(resp.Assistants))
	}
	a := resp.Assistants[0]
	if a.Employee.Name != "Budi" || a.Employee.Title == nil || *a.Employee.Title != "Nurse" {
		t.Fatalf("employee mismatch: %+v", a.Employee)
	}
	if len(a.Scores) != 1 || a.Scores[0].ScenarioID != 5 || a.Scores[0].Score != 88 {
		t.Fatalf("scores mismatch: %+v", a.Scores)
	}
}

func TestNewTrainingSessionResponseEmptySlices(t *testing.T) {
	// Tanpa asisten: slice kosong di JSON ([]), bukan null.
	resp := NewTrainingSessionResponse(&model.TrainingSessionModel{ID: 1}, nil)
	if resp.Assistants == nil {
		t.Fatalf("assistants must be [] not null")
	}
	if resp.AvgScore != nil {
		t.Fatalf("avg_score must be null without scores")
	}
}
