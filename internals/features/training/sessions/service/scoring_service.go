package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	providerModel "pelatihanku_backend/internals/features/training/providers/model"
	scenarioModel "pelatihanku_backend/internals/features/training/scenarios/model"
	"pelatihanku_backend/internals/features/training/sessions/dto"
	"pelatihanku_backend/internals/features/training/sessions/model"
)

// ScoringService menerapkan batch asisten + nilai skenario ke sesi yang masih
// open. Validasi dulu seluruh payload, baru persist dalam satu transaksi:
// semua baris masuk, atau tidak ada sama sekali.
type ScoringService struct {
	DB *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{DB: db}
}

func (s *ScoringService) AddAssistantScores(
	ctx context.Context,
	session *model.TrainingSessionModel,
	req dto.AddAssistantsRequest,
) (*model.TrainingSessionModel, error) {
	// 1) Muat himpunan referensi untuk validasi (read-only, belum ada mutasi).
	employees, err := s.branchEmployeeIDs(ctx, session.ProviderBranchID)
	if err != nil {
		return nil, err
	}
	scenarios, err := s.scenarioIDs(ctx)
	if err != nil {
		return nil, err
	}

	// 2) Validasi seluruh payload. Gagal = abort tanpa satu write pun.
	if err := ValidateScoreBatch(session, req.Assistants, employees, scenarios); err != nil {
		return nil, err
	}

	// ===== TRANSACTION START =====
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// 3) Kunci row sesi: serialize terhadap finalisasi yang jalan bersamaan,
	//    lalu cek ulang state di bawah lock.
	var locked model.TrainingSessionModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&locked, session.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if locked.IsCompleted() {
		tx.Rollback()
		return nil, NewValidationError("Training session is already completed, you cannot add new assistants to it")
	}

	// 4) Satu row asisten per entry + nested rows skor per result.
	rows := make([]model.TrainingSessionAssistantModel, 0, len(req.Assistants))
	for _, assistant := range req.Assistants {
		scores := make([]model.TrainingSessionAssistantScoreModel, 0, len(assistant.Results))
		for _, result := range assistant.Results {
			scores = append(scores, model.TrainingSessionAssistantScoreModel{
				TrainingScenarioID: *result.ScenarioID,
				Score:              *result.Score,
			})
		}
		rows = append(rows, model.TrainingSessionAssistantModel{
			TrainingSessionID:        session.ID,
			ProviderBranchEmployeeID: assistant.EmployeeID,
			Scores:                   scores,
		})
	}

	// Batch kosong valid: tidak ada row baru, gorm menolak Create slice kosong.
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			if isUniqueViolation(err) {
				return nil, NewValidationError("duplicate scenario score for one assistant in batch")
			}
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	// ===== TRANSACTION END =====

	return ReloadSessionWithScores(ctx, s.DB, session.ID)
}

func (s *ScoringService) branchEmployeeIDs(ctx context.Context, branchID uint) (map[uint]struct{}, error) {
	var ids []uint
	err := s.DB.WithContext(ctx).
		Model(&providerModel.ProviderBranchEmployeeModel{}).
		Where("provider_branch_id = ?", branchID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

func (s *ScoringService) scenarioIDs(ctx context.Context) (map[uint]struct{}, error) {
	var ids []uint
	err := s.DB.WithContext(ctx).
		Model(&scenarioModel.TrainingScenarioModel{}).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

func toSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func isUniqueViolation(err error) bool {
	var e *pq.Error
	if errors.As(err, &e) {
		return e.Code == "23505"
	}
	return false
}

/* =========================================================
 * Loader bersama
 * ========================================================= */

// FindSessionInBatch memuat sesi lengkap (teacher, asisten, skor) dalam scope
// batch; gorm.ErrRecordNotFound kalau tidak ketemu.
func FindSessionInBatch(ctx context.Context, db *gorm.DB, batchID, sessionID uint) (*model.TrainingSessionModel, error) {
	var session model.TrainingSessionModel
	err := db.WithContext(ctx).
		Preload("Teacher").
		Preload("Assistants.Employee").
		Preload("Assistants.Scores").
		Where("training_batch_id = ?", batchID).
		First(&session, sessionID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ReloadSessionWithScores memuat ulang sesi setelah commit supaya response
// memakai koleksi & avg_score yang segar.
func ReloadSessionWithScores(ctx context.Context, db *gorm.DB, sessionID uint) (*model.TrainingSessionModel, error) {
	var session model.TrainingSessionModel
	err := db.WithContext(ctx).
		Preload("Teacher").
		Preload("Assistants.Employee").
		Preload("Assistants.Scores").
		First(&session, sessionID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
