// file: internals/features/finance/fees/service/fee_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	studentsvc "schoolku_backend/internals/features/students/service"
	"schoolku_backend/internals/helpers/errs"
)

// FeeService: CRUD + lifecycle fee_records. paidAmount TIDAK bisa diubah
// lewat sini — itu wilayah ReconciliationService.
type FeeService struct {
	DB       *gorm.DB
	Students studentsvc.Directory
	Now      func() time.Time
}

func NewFeeService(db *gorm.DB, students studentsvc.Directory) *FeeService {
	return &FeeService{DB: db, Students: students, Now: time.Now}
}

/* ===================== Create ===================== */

type CreateFeeInput struct {
	StudentID         uuid.UUID
	Category          model.FeeCategory
	AcademicYear      int16
	TotalAmount       money.Money
	InitialPaidAmount money.Money
	DueDate           time.Time
	Description       *string
}

func (s *FeeService) CreateFee(ctx context.Context, in CreateFeeInput) (*model.FeeRecord, error) {
	if !in.Category.Valid() {
		return nil, errs.NewFieldValidation("category", "unknown fee category")
	}
	if in.TotalAmount.IsNegative() {
		return nil, errs.NewFieldValidation("total_amount", "must be >= 0")
	}
	if in.InitialPaidAmount.IsNegative() {
		return nil, errs.NewFieldValidation("initial_paid_amount", "must be >= 0")
	}
	if in.AcademicYear <= 0 {
		return nil, errs.NewFieldValidation("academic_year", "required")
	}

	ok, err := s.Students.Exists(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewFieldValidation("student_id", "student does not exist")
	}

	rec := model.FeeRecord{
		FeeRecordStudentID:    in.StudentID,
		FeeRecordCategory:     in.Category,
		FeeRecordAcademicYear: in.AcademicYear,
		FeeRecordTotalAmount:  in.TotalAmount,
		FeeRecordPaidAmount:   in.InitialPaidAmount,
		FeeRecordDueDate:      in.DueDate,
		FeeRecordDescription:  in.Description,
	}
	rec.FeeRecordStatus = DeriveStatus(rec.FeeRecordTotalAmount, rec.FeeRecordPaidAmount, rec.FeeRecordDueDate, s.Now())

	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errs.NewConflict("fee already exists for (student, category, academic year)")
		}
		return nil, translateTxError(err)
	}
	return &rec, nil
}

/* ===================== Update ===================== */

// UpdateFeePatch: field nil = tidak diubah. PaidAmount sengaja tidak ada.
// Status hanya menerima dua niat: set waived (override manual) atau set
// status non-waived apa pun = cabut override → status dihitung ulang.
type UpdateFeePatch struct {
	Category     *model.FeeCategory
	AcademicYear *int16
	TotalAmount  *money.Money
	DueDate      *time.Time
	Description  *string
	Status       *model.FeeStatus
}

func (s *FeeService) UpdateFee(ctx context.Context, id uuid.UUID, patch UpdateFeePatch) (*model.FeeRecord, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, errs.NewFieldValidation("category", "unknown fee category")
	}
	if patch.TotalAmount != nil && patch.TotalAmount.IsNegative() {
		return nil, errs.NewFieldValidation("total_amount", "must be >= 0")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, errs.NewFieldValidation("status", "unknown status")
	}

	var out model.FeeRecord
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.FeeRecord
		if err := lockForUpdate(tx).
			First(&rec, "fee_record_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("fee record")
			}
			return err
		}

		if patch.Category != nil {
			rec.FeeRecordCategory = *patch.Category
		}
		if patch.AcademicYear != nil {
			rec.FeeRecordAcademicYear = *patch.AcademicYear
		}
		if patch.TotalAmount != nil {
			rec.FeeRecordTotalAmount = *patch.TotalAmount
		}
		if patch.DueDate != nil {
			rec.FeeRecordDueDate = *patch.DueDate
		}
		if patch.Description != nil {
			rec.FeeRecordDescription = patch.Description
		}

		switch {
		case patch.Status != nil && *patch.Status == model.FeeStatusWaived:
			// override manual, diterima apa adanya
			rec.FeeRecordStatus = model.FeeStatusWaived
		case patch.Status != nil:
			// cabut override (atau status eksplisit lain) → derive ulang
			rec.FeeRecordStatus = DeriveStatus(rec.FeeRecordTotalAmount, rec.FeeRecordPaidAmount, rec.FeeRecordDueDate, s.Now())
		case rec.FeeRecordStatus == model.FeeStatusWaived:
			// waived tidak boleh tertimpa diam-diam
		default:
			rec.FeeRecordStatus = DeriveStatus(rec.FeeRecordTotalAmount, rec.FeeRecordPaidAmount, rec.FeeRecordDueDate, s.Now())
		}

		if err := tx.Save(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				return errs.NewConflict("fee already exists for (student, category, academic year)")
			}
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, translateTxError(err)
	}
	return &out, nil
}

/* ===================== Delete ===================== */

func (s *FeeService) DeleteFee(ctx context.Context, id uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.FeeRecord
		if err := lockForUpdate(tx).
			First(&rec, "fee_record_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("fee record")
			}
			return err
		}

		// integritas rekonsiliasi: tolak selama masih ada payment aktif
		var n int64
		if err := tx.Model(&model.PaymentRecord{}).
			Where("payment_record_fee_id = ?", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errs.NewConflict("fee record still has payment records")
		}

		return tx.Delete(&rec).Error
	})
	return translateTxError(err)
}

/* ===================== Read ===================== */

func (s *FeeService) GetFee(ctx context.Context, id uuid.UUID) (*model.FeeRecord, error) {
	var rec model.FeeRecord
	if err := s.DB.WithContext(ctx).
		First(&rec, "fee_record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("fee record")
		}
		return nil, err
	}
	return &rec, nil
}

// ListPayments: payment aktif milik satu fee (untuk detail tagihan).
func (s *FeeService) ListPayments(ctx context.Context, feeID uuid.UUID) ([]model.PaymentRecord, error) {
	var list []model.PaymentRecord
	err := s.DB.WithContext(ctx).
		Where("payment_record_fee_id = ?", feeID).
		Order("payment_record_created_at ASC").
		Find(&list).Error
	return list, err
}
