// file: internals/helpers/errs/errs.go
package errs

import (
	"errors"
	"fmt"
)

/* =========================================================
   Taksonomi error domain keuangan
   - ValidationError : input salah bentuk/range (per-field)
   - NotFoundError   : referensi (fee/payment/template/siswa) tidak ada
   - ConflictError   : pelanggaran integritas (hapus fee yg masih punya payment, duplikat)
   - TransientError  : timeout/kontensi transaksi — aman di-retry
========================================================= */

type ValidationError struct {
	Message string
	Fields  map[string]string // field → pesan
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

func NewFieldValidation(field, message string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s: %s", field, message),
		Fields:  map[string]string{field: message},
	}
}

type NotFoundError struct {
	Entity string
	Detail string
}

func (e *NotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s not found: %s", e.Entity, e.Detail)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFound(entity string) *NotFoundError { return &NotFoundError{Entity: entity} }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(message string) *ConflictError { return &ConflictError{Message: message} }

type TransientError struct {
	Message string
	Cause   error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TransientError) Unwrap() error { return e.Cause }

func NewTransient(message string, cause error) *TransientError {
	return &TransientError{Message: message, Cause: cause}
}

/* ===================== Pemeriksa ===================== */

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
