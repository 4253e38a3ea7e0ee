// file: internals/features/finance/fees/service/tx.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/helpers/errs"
)

// Batas waktu satu unit rekonsiliasi. Lebih ketat dari timeout request
// (5s di middleware) dan selaras dengan statement_timeout=3000 di DSN.
const reconcileTimeout = 3 * time.Second

// lockForUpdate mengunci baris (SELECT .. FOR UPDATE) di Postgres.
// sqlite (dipakai test) tidak kenal FOR UPDATE; transaksinya sudah serial.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// translateTxError memetakan kegagalan transaksi ke taksonomi domain.
// Timeout/kontensi → TransientError (retryable); sisanya diteruskan.
func translateTxError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewTransient("transaction timed out", err)
	}
	msg := err.Error()
	if strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "statement timeout") {
		return errs.NewTransient("transaction contention", err)
	}
	return err
}
