package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pelatihanku_backend/internals/features/training/sessions/dto"
	"pelatihanku_backend/internals/features/training/sessions/model"
	osshelper "pelatihanku_backend/internals/helpers/oss"
)

// SignatureUploader adalah kolaborator blob store: terima bytes JPEG, balikin
// URL publik. Diimplementasikan osshelper.OSSService; tes pakai fake.
type SignatureUploader interface {
	UploadSignatureJPEG(ctx context.Context, sessionID uint, data []byte) (string, error)
}

// FinishService menjalankan transisi open→closed sesi: upload tanda tangan +
// tulis comments & signature_url sebagai satu kesatuan logis. Tidak ada jalan
// balik dari closed.
type FinishService struct {
	DB       *gorm.DB
	Uploader SignatureUploader
}

func NewFinishService(db *gorm.DB, uploader SignatureUploader) *FinishService {
	return &FinishService{DB: db, Uploader: uploader}
}

func (s *FinishService) Finish(
	ctx context.Context,
	session *model.TrainingSessionModel,
	req dto.FinishSessionRequest,
) (*model.TrainingSessionModel, error) {
	// 1) Validasi murni. Sesi closed berhenti di sini — uploader tidak
	//    pernah dipanggil lagi.
	if err := ValidateFinish(session, req); err != nil {
		return nil, err
	}

	// 2) Decode payload gambar. Rusak = kesalahan klien, bukan fault server.
	raw, err := base64.StdEncoding.DecodeString(*req.SignatureBase64)
	if err != nil {
		return nil, NewValidationError("Signature is not valid base64")
	}
	jpegData, err := osshelper.NormalizeSignatureJPEG(raw)
	if err != nil {
		return nil, NewValidationError("Signature image cannot be decoded")
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

	// 3) Check-then-set harus atomik terhadap penulis lain: kunci row sesi
	//    sepanjang upload + commit supaya dua finalisasi bersamaan tidak
	//    dua-duanya lolos cek "belum closed" lalu dua-duanya upload.
	var locked model.TrainingSessionModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&locked, session.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if locked.IsCompleted() {
		tx.Rollback()
		return nil, NewValidationError("Training session is already completed")
	}

	// 4) Upload dulu, commit belakangan: upload gagal → sesi tetap open,
	//    tidak ada field yang berubah.
	resultURL, err := s.Uploader.UploadSignatureJPEG(ctx, session.ID, jpegData)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := tx.Model(&model.TrainingSessionModel{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{
			"comments":      *req.Comments,
			"signature_url": resultURL,
		}).Error; err != nil {
		tx.Rollback()
		log.Printf("[WARNING] update finalisasi gagal setelah upload; objek %s yatim (retry akan menimpa): %v",
			osshelper.SignatureKey(session.ID), err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[WARNING] commit finalisasi gagal setelah upload; objek %s yatim (retry akan menimpa): %v",
			osshelper.SignatureKey(session.ID), err)
		return nil, err
	}
	// ===== TRANSACTION END =====

	return ReloadSessionWithScores(ctx, s.DB, session.ID)
}
