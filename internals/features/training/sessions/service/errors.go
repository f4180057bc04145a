package service

import (
	"errors"
	"fmt"
)

// ValidationError: kesalahan klien (field kosong, skor di luar range, referensi
// tidak dikenal, sesi sudah closed). Controller memetakan ini ke HTTP 422;
// jangan pernah di-log sebagai fault server dan jangan di-retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrUploadFailed menandai kegagalan kolaborator blob store (HTTP 500, di-log).
// Core tidak me-retry; finalisasi boleh diulang utuh oleh caller.
var ErrUploadFailed = errors.New("signature upload failed")
