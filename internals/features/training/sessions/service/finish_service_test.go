package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"pelatihanku_backend/internals/features/training/sessions/dto"
	"pelatihanku_backend/internals/features/training/sessions/model"
	osshelper "pelatihanku_backend/internals/helpers/oss"
)

// fakeUploader mencatat pemanggilan; semua test di file ini pakai DB nil —
// jalur yang ditempuh harus berhenti sebelum transaksi dimulai.
type fakeUploader struct {
	calls int
	url   string
	err   error
}

func (f *fakeUploader) UploadSignatureJPEG(_ context.Context, sessionID uint, _ []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func signaturePNGBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestFinishClosedSessionSkipsUploader(t *testing.T) {
	up := &fakeUploader{}
	svc := NewFinishService(nil, up)
	req := dto.FinishSessionRequest{Comments: strPtr("done"), SignatureBase64: strPtr(signaturePNGBase64(t))}

	_, err := svc.Finish(context.Background(), closedSession(), req)
	expectValidationError(t, err, "Training session is already completed")
	if up.calls != 0 {
		t.Fatalf("uploader must not be called for a closed session, got %d calls", up.calls)
	}
}

func TestFinishMissingCommentsSkipsUploader(t *testing.T) {
	up := &fakeUploader{}
	svc := NewFinishService(nil, up)
	req := dto.FinishSessionRequest{SignatureBase64: strPtr(signaturePNGBase64(t))}

	_, err := svc.Finish(context.Background(), openSession(), req)
	expectValidationError(t, err, "comments cannot be empty")
	if up.calls != 0 {
		t.Fatalf("uploader must not be called, got %d calls", up.calls)
	}
}

func TestFinishNilSignatureSkipsUploader(t *testing.T) {
	up := &fakeUploader{}
	svc := NewFinishService(nil, up)
	req := dto.FinishSessionRequest{Comments: strPtr("done")}

	_, err := svc.Finish(context.Background(), openSession(), req)
	expectValidationError(t, err, "Signature cannot be null")
	if up.calls != 0 {
		t.Fatalf("uploader must not be called, got %d calls", up.calls)
	}
}

func TestFinishInvalidBase64(t *testing.T) {
	up := &fakeUploader{}
	svc := NewFinishService(nil, up)
	req := dto.FinishSessionRequest{Comments: strPtr("done"), SignatureBase64: strPtr("%%% bukan base64 %%%")}

	_, err := svc.Finish(context.Background(), openSession(), req)
	expectValidationError(t, err, "Signature is not valid base64")
	if up.calls != 0 {
		t.Fatalf("uploader must not be called for invalid base64, got %d calls", up.calls)
	}
}

func TestFinishUndecodableImage(t *testing.T) {
	up := &fakeUploader{}
	svc := NewFinishService(nil, up)
	// Base64 valid tapi isinya bukan gambar.
	payload := base64.StdEncoding.EncodeToString([]byte("this is not an image"))
	req := dto.FinishSessionRequest{Comments: strPtr("done"), SignatureBase64: strPtr(payload)}

	_, err := svc.Finish(context.Background(), openSession(), req)
	expectValidationError(t, err, "Signature image cannot be decoded")
	if up.calls != 0 {
		t.Fatalf("uploader must not be called for an undecodable image, got %d calls", up.calls)
	}
}

func TestFinishUploadFailureLeavesSessionOpen(t *testing.T) {
	db := newTestDB(t)
	fx := seedSession(t, db)
	up := &fakeUploader{err: errors.New("bucket unreachable")}
	svc := NewFinishService(db, up)
	req := dto.FinishSessionRequest{Comments: strPtr("sesi lancar"), SignatureBase64: strPtr(signaturePNGBase64(t))}

	_, err := svc.Finish(context.Background(), fx.session, req)
	if err == nil || !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got: %v", err)
	}
	if up.calls != 1 {
		t.Fatalf("uploader calls: got %d, want 1", up.calls)
	}

	// Upload gagal = transisi batal total: row tetap open, tidak ada field berubah.
	var got model.TrainingSessionModel
	if err := db.First(&got, fx.session.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.SignatureURL != nil || got.Comments != nil || got.IsCompleted() {
		t.Fatalf("session mutated after failed upload: %+v", got)
	}
}

func TestFinishClosesSessionAndRejectsSecondCall(t *testing.T) {
	db := newTestDB(t)
	fx := seedSession(t, db)
	url := fmt.Sprintf("https://bucket.example/%s", osshelper.SignatureKey(fx.session.ID))
	up := &fakeUploader{url: url}
	svc := NewFinishService(db, up)
	req := dto.FinishSessionRequest{Comments: strPtr("sesi lancar"), SignatureBase64: strPtr(signaturePNGBase64(t))}

	finished, err := svc.Finish(context.Background(), fx.session, req)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if finished.SignatureURL == nil || *finished.SignatureURL != url {
		t.Fatalf("signature_url: got %v, want %s", finished.SignatureURL, url)
	}
	if finished.Comments == nil || *finished.Comments != "sesi lancar" {
		t.Fatalf("comments: got %v", finished.Comments)
	}

	var got model.TrainingSessionModel
	if err := db.First(&got, fx.session.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.IsCompleted() {
		t.Fatalf("persisted row should be closed: %+v", got)
	}

	// Panggilan kedua terhadap row closed yang tersimpan: ditolak tanpa
	// menyentuh uploader lagi.
	_, err = svc.Finish(context.Background(), &got, req)
	expectValidationError(t, err, "Training session is already completed")
	if up.calls != 1 {
		t.Fatalf("uploader calls after second finish: got %d, want 1", up.calls)
	}
}

func TestNormalizeSignatureJPEGFromPNG(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(signaturePNGBase64(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	jpegData, err := osshelper.NormalizeSignatureJPEG(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(jpegData) < 4 || jpegData[0] != 0xFF || jpegData[1] != 0xD8 {
		t.Fatalf("result is not a JPEG (missing SOI marker)")
	}
}
