// file: internals/features/finance/fees/service/reconciliation_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	"schoolku_backend/internals/helpers/errs"
)

// ReconciliationService: satu-satunya jalur yang boleh mengubah
// fee_record_paid_amount. Setiap operasi = satu transaksi DB:
//   - baris fee dikunci FOR UPDATE
//   - paid_amount diubah lewat UPDATE .. SET x = x + ? (atomik di SQL,
//     bukan read-then-write di memori aplikasi)
//   - status dihitung ulang dari baris yang sudah ter-update
//   - gagal di langkah mana pun → seluruh unit roll-back
type ReconciliationService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{DB: db, Now: time.Now}
}

/* ===================== Apply ===================== */

type ApplyPaymentInput struct {
	FeeID         uuid.UUID
	Amount        money.Money
	Method        model.PaymentMethod
	Date          time.Time // zero → now
	TransactionID *string   // wajib untuk non-cash
	Note          *string
}

func (s *ReconciliationService) ApplyPayment(ctx context.Context, in ApplyPaymentInput) (*model.PaymentRecord, error) {
	if !in.Amount.IsPositive() {
		return nil, errs.NewFieldValidation("amount", "must be > 0")
	}
	if !in.Method.Valid() {
		return nil, errs.NewFieldValidation("method", "unknown payment method")
	}
	if in.Method.RequiresTransactionID() &&
		(in.TransactionID == nil || strings.TrimSpace(*in.TransactionID) == "") {
		return nil, errs.NewFieldValidation("transaction_id", "required for non-cash payments")
	}
	if in.Date.IsZero() {
		in.Date = s.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	var out model.PaymentRecord
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fee, err := s.lockFee(tx, in.FeeID)
		if err != nil {
			return err
		}

		// nomor urut mengikuti tahun tanggal bayar, bukan tahun proses:
		// pembayaran backdate Desember yang dicatat Januari tetap masuk
		// seri tahun lalu
		ref, err := nextPaymentReference(tx, in.Date.Year())
		if err != nil {
			return err
		}

		pay := model.PaymentRecord{
			PaymentRecordFeeID:         fee.FeeRecordID,
			PaymentRecordAmount:        in.Amount,
			PaymentRecordMethod:        in.Method,
			PaymentRecordDate:          in.Date,
			PaymentRecordReference:     ref,
			PaymentRecordTransactionID: in.TransactionID,
			PaymentRecordCategory:      fee.FeeRecordCategory,
			PaymentRecordNote:          in.Note,
		}
		if err := tx.Create(&pay).Error; err != nil {
			if isUniqueViolation(err) {
				return errs.NewConflict("duplicate payment reference")
			}
			return err
		}

		if err := s.shiftPaidAndRederive(tx, fee.FeeRecordID, in.Amount); err != nil {
			return err
		}

		out = pay
		return nil
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return &out, nil
}

/* ===================== Reverse ===================== */

func (s *ReconciliationService) ReversePayment(ctx context.Context, paymentID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pay model.PaymentRecord
		if err := tx.First(&pay, "payment_record_id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("payment record")
			}
			return err
		}

		if _, err := s.lockFee(tx, pay.PaymentRecordFeeID); err != nil {
			return err
		}

		// reversal = soft delete + decrement; invariant sum(payment aktif) == paid tetap terjaga
		if err := tx.Delete(&pay).Error; err != nil {
			return err
		}
		return s.shiftPaidAndRederive(tx, pay.PaymentRecordFeeID, pay.PaymentRecordAmount.Neg())
	})
	return asDomainError(err)
}

/* ===================== Update ===================== */

type UpdatePaymentInput struct {
	NewAmount     money.Money
	Method        *model.PaymentMethod
	Date          *time.Time
	TransactionID *string
	Note          *string
}

func (s *ReconciliationService) UpdatePayment(ctx context.Context, paymentID uuid.UUID, in UpdatePaymentInput) (*model.PaymentRecord, error) {
	if !in.NewAmount.IsPositive() {
		return nil, errs.NewFieldValidation("amount", "must be > 0")
	}
	if in.Method != nil && !in.Method.Valid() {
		return nil, errs.NewFieldValidation("method", "unknown payment method")
	}

	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	var out model.PaymentRecord
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pay model.PaymentRecord
		if err := tx.First(&pay, "payment_record_id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("payment record")
			}
			return err
		}

		if _, err := s.lockFee(tx, pay.PaymentRecordFeeID); err != nil {
			return err
		}

		delta := in.NewAmount.Sub(pay.PaymentRecordAmount)

		pay.PaymentRecordAmount = in.NewAmount
		if in.Method != nil {
			pay.PaymentRecordMethod = *in.Method
		}
		if in.Date != nil {
			pay.PaymentRecordDate = *in.Date
		}
		if in.TransactionID != nil {
			pay.PaymentRecordTransactionID = in.TransactionID
		}
		if in.Note != nil {
			pay.PaymentRecordNote = in.Note
		}
		if pay.PaymentRecordMethod.RequiresTransactionID() &&
			(pay.PaymentRecordTransactionID == nil || strings.TrimSpace(*pay.PaymentRecordTransactionID) == "") {
			return errs.NewFieldValidation("transaction_id", "required for non-cash payments")
		}

		if err := tx.Save(&pay).Error; err != nil {
			return err
		}
		if err := s.shiftPaidAndRederive(tx, pay.PaymentRecordFeeID, delta); err != nil {
			return err
		}

		out = pay
		return nil
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return &out, nil
}

/* ===================== Internal ===================== */

func (s *ReconciliationService) lockFee(tx *gorm.DB, feeID uuid.UUID) (*model.FeeRecord, error) {
	var fee model.FeeRecord
	if err := lockForUpdate(tx).
		First(&fee, "fee_record_id = ?", feeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("fee record")
		}
		return nil, err
	}
	return &fee, nil
}

// shiftPaidAndRederive: increment/decrement paid_amount langsung di SQL,
// lalu baca ulang baris dan simpan status turunannya.
func (s *ReconciliationService) shiftPaidAndRederive(tx *gorm.DB, feeID uuid.UUID, delta money.Money) error {
	if err := tx.Model(&model.FeeRecord{}).
		Where("fee_record_id = ?", feeID).
		UpdateColumn("fee_record_paid_amount", gorm.Expr("fee_record_paid_amount + ?", delta.Sen())).Error; err != nil {
		return err
	}

	var fee model.FeeRecord
	if err := tx.First(&fee, "fee_record_id = ?", feeID).Error; err != nil {
		return err
	}
	if fee.FeeRecordPaidAmount.IsNegative() {
		return errs.NewConflict("payment change would make paid amount negative")
	}

	now := s.Now()
	return tx.Model(&model.FeeRecord{}).
		Where("fee_record_id = ?", feeID).
		UpdateColumns(map[string]any{
			"fee_record_status":     RederiveStatus(&fee, now),
			"fee_record_updated_at": now,
		}).Error
}

// asDomainError: error bertipe lolos apa adanya, sisanya lewat translator transient.
func asDomainError(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsValidation(err) || errs.IsNotFound(err) || errs.IsConflict(err) || errs.IsTransient(err) {
		return err
	}
	return translateTxError(err)
}
