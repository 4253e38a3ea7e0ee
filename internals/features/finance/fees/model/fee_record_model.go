// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/money"
)

// =========================================================
// ENUM — status pembayaran fee
// =========================================================

type FeeStatus string

const (
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusUnpaid  FeeStatus = "unpaid"
	FeeStatusPartial FeeStatus = "partial"
	FeeStatusOverdue FeeStatus = "overdue"
	// waived: override manual; TIDAK PERNAH dihasilkan engine status.
	FeeStatusWaived FeeStatus = "waived"
)

func (s FeeStatus) Valid() bool {
	switch s {
	case FeeStatusPaid, FeeStatusUnpaid, FeeStatusPartial, FeeStatusOverdue, FeeStatusWaived:
		return true
	}
	return false
}

// =========================================================
// ENUM — kategori fee (set tertutup)
// =========================================================

type FeeCategory string

const (
	FeeCategoryTuition      FeeCategory = "tuition"
	FeeCategoryRegistration FeeCategory = "registration"
	FeeCategoryAdmission    FeeCategory = "admission"
	FeeCategoryLibrary      FeeCategory = "library"
	FeeCategoryLaboratory   FeeCategory = "laboratory"
	FeeCategorySports       FeeCategory = "sports"
	FeeCategoryTransport    FeeCategory = "transport"
	FeeCategoryHostel       FeeCategory = "hostel"
	FeeCategoryUniform      FeeCategory = "uniform"
	FeeCategoryBooks        FeeCategory = "books"
	FeeCategoryActivity     FeeCategory = "activity"
	FeeCategoryDevelopment  FeeCategory = "development"
	FeeCategoryExamI        FeeCategory = "exam_1"
	FeeCategoryExamII       FeeCategory = "exam_2"
	FeeCategoryExamIII      FeeCategory = "exam_3"
	FeeCategoryExamIV       FeeCategory = "exam_4"
)

var feeCategories = map[FeeCategory]struct{}{
	FeeCategoryTuition: {}, FeeCategoryRegistration: {}, FeeCategoryAdmission: {},
	FeeCategoryLibrary: {}, FeeCategoryLaboratory: {}, FeeCategorySports: {},
	FeeCategoryTransport: {}, FeeCategoryHostel: {}, FeeCategoryUniform: {},
	FeeCategoryBooks: {}, FeeCategoryActivity: {}, FeeCategoryDevelopment: {},
	FeeCategoryExamI: {}, FeeCategoryExamII: {}, FeeCategoryExamIII: {}, FeeCategoryExamIV: {},
}

func (c FeeCategory) Valid() bool {
	_, ok := feeCategories[c]
	return ok
}

// =========================================================
// MODEL — fee_records (satu tagihan per siswa)
// =========================================================

type FeeRecord struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;primaryKey" json:"fee_record_id"`

	// FK → students(student_id)
	FeeRecordStudentID uuid.UUID `gorm:"column:fee_record_student_id;type:uuid;not null;index;index:uniq_fee_student_cat_year,unique,priority:1" json:"fee_record_student_id"`

	FeeRecordCategory     FeeCategory `gorm:"column:fee_record_category;type:varchar(20);not null;index:uniq_fee_student_cat_year,unique,priority:2" json:"fee_record_category"`
	FeeRecordAcademicYear int16       `gorm:"column:fee_record_academic_year;type:smallint;not null;index:uniq_fee_student_cat_year,unique,priority:3" json:"fee_record_academic_year"`

	// Nominal (sen; BIGINT)
	FeeRecordTotalAmount money.Money `gorm:"column:fee_record_total_amount;type:bigint;not null;check:fee_record_total_amount>=0" json:"fee_record_total_amount"`
	FeeRecordPaidAmount  money.Money `gorm:"column:fee_record_paid_amount;type:bigint;not null;default:0;check:fee_record_paid_amount>=0" json:"fee_record_paid_amount"`

	FeeRecordDueDate time.Time `gorm:"column:fee_record_due_date;type:date;not null;index" json:"fee_record_due_date"`

	// Status = proyeksi dari (total, paid, due) — selalu dihitung ulang dalam
	// transaksi yang sama dengan mutasi; waived dikecualikan.
	FeeRecordStatus FeeStatus `gorm:"column:fee_record_status;type:varchar(10);not null;default:'unpaid';index" json:"fee_record_status"`

	FeeRecordDescription *string `gorm:"column:fee_record_description;type:text" json:"fee_record_description,omitempty"`

	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;not null;autoCreateTime;index" json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time      `gorm:"column:fee_record_updated_at;not null;autoUpdateTime" json:"fee_record_updated_at"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;index" json:"-"`
}

func (FeeRecord) TableName() string { return "fee_records" }

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) error {
	if m.FeeRecordID == uuid.Nil {
		m.FeeRecordID = uuid.New()
	}
	return nil
}

// Outstanding = total - paid (bisa negatif kalau overpay; reporting memakai ini apa adanya).
func (m *FeeRecord) Outstanding() money.Money {
	return m.FeeRecordTotalAmount.Sub(m.FeeRecordPaidAmount)
}
