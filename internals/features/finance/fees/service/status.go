// file: internals/features/finance/fees/service/status.go
package service

import (
	"time"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
)

// DeriveStatus menurunkan status fee dari (total, paid, dueDate, now).
// Fungsi murni & total: tidak pernah error, deterministik, idempoten.
// Urutan aturan penting — first match wins:
//  1. total == 0            → paid
//  2. paid >= total         → paid
//  3. paid > 0 && lewat due → overdue
//  4. paid > 0              → partial
//  5. lewat due             → overdue
//  6. sisanya               → unpaid
//
// waived TIDAK PERNAH keluar dari sini; itu override manual di layer service.
func DeriveStatus(total, paid money.Money, dueDate, now time.Time) model.FeeStatus {
	switch {
	case total.IsZero():
		return model.FeeStatusPaid
	case paid.Cmp(total) >= 0:
		return model.FeeStatusPaid
	case paid.IsPositive() && dueDate.Before(now):
		return model.FeeStatusOverdue
	case paid.IsPositive():
		return model.FeeStatusPartial
	case dueDate.Before(now):
		return model.FeeStatusOverdue
	default:
		return model.FeeStatusUnpaid
	}
}

// RederiveStatus menghitung ulang status record yang bukan waived.
// Record waived dibiarkan apa adanya (override manual tidak boleh tertimpa).
func RederiveStatus(rec *model.FeeRecord, now time.Time) model.FeeStatus {
	if rec.FeeRecordStatus == model.FeeStatusWaived {
		return model.FeeStatusWaived
	}
	return DeriveStatus(rec.FeeRecordTotalAmount, rec.FeeRecordPaidAmount, rec.FeeRecordDueDate, now)
}
