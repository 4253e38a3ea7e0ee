// file: internals/features/finance/fees/service/refseq.go
package service

import (
	"fmt"

	"gorm.io/gorm"
)

// nextPaymentReference mengambil nomor kuitansi berikutnya dari tabel
// counters, atomik di dalam transaksi pemanggil. Skema lama
// (timestamp + angka random) bisa tabrakan di bawah load; sequence per
// tahun ini bebas tabrakan dan ikut roll-back bersama transaksinya.
// Bentuk: PAY-2026-000123
func nextPaymentReference(tx *gorm.DB, year int) (string, error) {
	key := fmt.Sprintf("payment_ref:%d", year)

	var seq int64
	err := tx.Raw(`
		INSERT INTO counters (counter_key, counter_value)
		VALUES (?, 1)
		ON CONFLICT (counter_key)
		DO UPDATE SET counter_value = counters.counter_value + 1
		RETURNING counter_value
	`, key).Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PAY-%d-%06d", year, seq), nil
}
