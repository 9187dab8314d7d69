package apperr

import "errors"

// Kategori error yang dipakai lintas komponen. Setiap layer membungkus
// sentinel ini dengan konteks via fmt.Errorf + %w, klasifikasi via errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrDuplicateKey    = errors.New("duplicate key")
)
