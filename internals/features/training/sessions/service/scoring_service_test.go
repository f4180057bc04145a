package service

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	batchModel "pelatihanku_backend/internals/features/training/batches/model"
	providerModel "pelatihanku_backend/internals/features/training/providers/model"
	scenarioModel "pelatihanku_backend/internals/features/training/scenarios/model"
	"pelatihanku_backend/internals/features/training/sessions/dto"
	"pelatihanku_backend/internals/features/training/sessions/model"
	userModel "pelatihanku_backend/internals/features/training/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "training.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&providerModel.ProviderModel{},
		&providerModel.ProviderBranchModel{},
		&providerModel.ProviderBranchEmployeeModel{},
		&batchModel.TrainingBatchModel{},
		&scenarioModel.TrainingScenarioModel{},
		&model.TrainingSessionModel{},
		&model.TrainingSessionAssistantModel{},
		&model.TrainingSessionAssistantScoreModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type sessionFixture struct {
	session   *model.TrainingSessionModel
	employees []providerModel.ProviderBranchEmployeeModel
	scenarios []scenarioModel.TrainingScenarioModel
}

func seedSession(t *testing.T, db *gorm.DB) sessionFixture {
	t.Helper()
	teacher := userModel.UserModel{FirstName: "Dewi", LastName: "Lestari"}
	mustCreate(t, db, &teacher)
	provider := providerModel.ProviderModel{Name: "Klinik Sehat", Slug: "klinik-sehat"}
	mustCreate(t, db, &provider)
	branch := providerModel.ProviderBranchModel{ProviderID: provider.ID, Name: "Cabang Pusat"}
	mustCreate(t, db, &branch)
	employees := []providerModel.ProviderBranchEmployeeModel{
		{ProviderBranchID: branch.ID, Name: "Budi"},
		{ProviderBranchID: branch.ID, Name: "Sari"},
	}
	mustCreate(t, db, &employees)
	batch := batchModel.TrainingBatchModel{Name: "Gelombang 1"}
	mustCreate(t, db, &batch)
	scenarios := []scenarioModel.TrainingScenarioModel{
		{Description: "Sapa pasien sesuai prosedur"},
		{Description: "Catat keluhan dengan lengkap"},
	}
	mustCreate(t, db, &scenarios)
	session := model.TrainingSessionModel{
		TeacherID:        teacher.ID,
		TrainingBatchID:  batch.ID,
		ProviderBranchID: branch.ID,
	}
	mustCreate(t, db, &session)
	return sessionFixture{session: &session, employees: employees, scenarios: scenarios}
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestAddAssistantScoresPersistsBatch(t *testing.T) {
	db := newTestDB(t)
	fx := seedSession(t, db)
	svc := NewScoringService(db)

	req := dto.AddAssistantsRequest{Assistants: []dto.AssistantScoresRequest{
		{
			EmployeeID: fx.employees[0].ID,
			Results: []dto.ScenarioResultRequest{
				{ScenarioID: uintPtr(fx.scenarios[0].ID), Score: intPtr(70)},
				{ScenarioID: uintPtr(fx.scenarios[1].ID), Score: intPtr(90)},
			},
		},
		{
			EmployeeID: fx.employees[1].ID,
			Results: []dto.ScenarioResultRequest{
				{ScenarioID: uintPtr(fx.scenarios[0].ID), Score: intPtr(100)},
			},
		},
	}}

	updated, err := svc.AddAssistantScores(context.Background(), fx.session, req)
	if err != nil {
		t.Fatalf("add scores: %v", err)
	}
	if len(updated.Assistants) != 2 {
		t.Fatalf("assistants: got %d, want 2", len(updated.Assistants))
	}
	if got := countRows(t, db, &model.TrainingSessionAssistantModel{}); got != 2 {
		t.Fatalf("assistant rows: got %d, want 2", got)
	}
	if got := countRows(t, db, &model.TrainingSessionAssistantScoreModel{}); got != 3 {
		t.Fatalf("score rows: got %d, want 3", got)
	}
	avg := AverageScore(updated.Assistants)
	if avg == nil || math.Abs(*avg-86.666666666666666) > 1e-9 {
		t.Fatalf("avg: got %v, want 86.666…", avg)
	}
}

func TestAddAssistantScoresDuplicateScenarioRollsBack(t *testing.T) {
	db := newTestDB(t)
	fx := seedSession(t, db)
	svc := NewScoringService(db)

	// Asisten pertama valid; asisten kedua menabrak unique (assistant, scenario).
	// Satu record rusak membatalkan seluruh batch, termasuk yang valid.
	req := dto.AddAssistantsRequest{Assistants: []dto.AssistantScoresRequest{
		{
			EmployeeID: fx.employees[0].ID,
			Results: []dto.ScenarioResultRequest{
				{ScenarioID: uintPtr(fx.scenarios[0].ID), Score: intPtr(80)},
			},
		},
		{
			EmployeeID: fx.employees[1].ID,
			Results: []dto.ScenarioResultRequest{
				{ScenarioID: uintPtr(fx.scenarios[1].ID), Score: intPtr(60)},
				{ScenarioID: uintPtr(fx.scenarios[1].ID), Score: intPtr(95)},
			},
		},
	}}

	if _, err := svc.AddAssistantScores(context.Background(), fx.session, req); err == nil {
		t.Fatalf("expected error for duplicate scenario pair")
	}
	if got := countRows(t, db, &model.TrainingSessionAssistantModel{}); got != 0 {
		t.Fatalf("assistant rows after rollback: got %d, want 0", got)
	}
	if got := countRows(t, db, &model.TrainingSessionAssistantScoreModel{}); got != 0 {
		t.Fatalf("score rows after rollback: got %d, want 0", got)
	}
}

func TestAddAssistantScoresEmptyBatchNoOp(t *testing.T) {
	db := newTestDB(t)
	fx := seedSession(t, db)
	svc := NewScoringService(db)

	req := dto.AddAssistantsRequest{Assistants: []dto.AssistantScoresRequest{}}
	updated, err := svc.AddAssistantScores(context.Background(), fx.session, req)
	if err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if got := countRows(t, db, &model.TrainingSessionAssistantModel{}); got != 0 {
		t.Fatalf("assistant rows: got %d, want 0", got)
	}
	if avg := AverageScore(updated.Assistants); avg != nil {
		t.Fatalf("avg after empty batch: got %v, want nil", *avg)
	}
}

func TestAddAssistantScoresRecheckUnderLock(t *testing.T) {
	db := newTestDB(t)
	fx := seedSession(t, db)
	svc := NewScoringService(db)

	// Row di DB sudah closed, tapi caller masih memegang snapshot open:
	// cek ulang di bawah lock yang harus menolak.
	err := db.Model(&model.TrainingSessionModel{}).
		Where("id = ?", fx.session.ID).
		Update("signature_url", "https://bucket.example/training/signatures/1.jpg").Error
	if err != nil {
		t.Fatalf("close row: %v", err)
	}

	req := dto.AddAssistantsRequest{Assistants: []dto.AssistantScoresRequest{
		{
			EmployeeID: fx.employees[0].ID,
			Results: []dto.ScenarioResultRequest{
				{ScenarioID: uintPtr(fx.scenarios[0].ID), Score: intPtr(50)},
			},
		},
	}}

	_, err = svc.AddAssistantScores(context.Background(), fx.session, req)
	expectValidationError(t, err, "Training session is already completed, you cannot add new assistants to it")
	if got := countRows(t, db, &model.TrainingSessionAssistantModel{}); got != 0 {
		t.Fatalf("assistant rows: got %d, want 0", got)
	}
}
