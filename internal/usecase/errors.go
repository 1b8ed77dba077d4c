package usecase

import "errors"

// ErrNotFound dikembalikan kalau id yang diminta tidak ada di store.
// Handler memetakan error ini ke HTTP 404.
var ErrNotFound = errors.New("data tidak ditemukan")

// ValidationError berisi pesan yang aman ditampilkan ke user (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
