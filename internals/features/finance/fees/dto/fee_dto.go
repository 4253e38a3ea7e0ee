// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
)

var validate = validator.New()

// Validate menjalankan validasi tag struct di package ini.
func Validate(v any) error { return validate.Struct(v) }

////////////////////////////////////////////////////////////////////////////////
// FEE RECORDS — DTO
// Semua nominal dikirim/diterima sebagai integer sen.
////////////////////////////////////////////////////////////////////////////////

type FeeCreateDTO struct {
	FeeStudentID         uuid.UUID `json:"fee_student_id" validate:"required"`
	FeeCategory          string    `json:"fee_category" validate:"required"`
	FeeAcademicYear      int16     `json:"fee_academic_year" validate:"required,min=2000"`
	FeeTotalAmount       int64     `json:"fee_total_amount" validate:"min=0"`
	FeeInitialPaidAmount int64     `json:"fee_initial_paid_amount" validate:"min=0"`
	FeeDueDate           time.Time `json:"fee_due_date" validate:"required"`
	FeeDescription       *string   `json:"fee_description,omitempty"`
}

// Update (partial) — paid amount sengaja tidak ada di sini (lewat payment).
type FeeUpdateDTO struct {
	FeeCategory     *string      `json:"fee_category,omitempty"`
	FeeAcademicYear *int16       `json:"fee_academic_year,omitempty"`
	FeeTotalAmount  *int64       `json:"fee_total_amount,omitempty"`
	FeeDueDate      *time.Time   `json:"fee_due_date,omitempty"`
	FeeDescription  *string      `json:"fee_description,omitempty"`
	FeeStatus       *string      `json:"fee_status,omitempty"` // hanya utk set/cabut waived
}

type FeeResponse struct {
	FeeID           uuid.UUID `json:"fee_id"`
	FeeStudentID    uuid.UUID `json:"fee_student_id"`
	FeeCategory     string    `json:"fee_category"`
	FeeAcademicYear int16     `json:"fee_academic_year"`
	FeeTotalAmount  int64     `json:"fee_total_amount"`
	FeePaidAmount   int64     `json:"fee_paid_amount"`
	FeeOutstanding  int64     `json:"fee_outstanding"`
	FeeDueDate      time.Time `json:"fee_due_date"`
	FeeStatus       string    `json:"fee_status"`
	FeeDescription  *string   `json:"fee_description,omitempty"`
	FeeCreatedAt    time.Time `json:"fee_created_at"`
	FeeUpdatedAt    time.Time `json:"fee_updated_at"`

	// hanya untuk display; perhitungan tetap integer sen
	FeeTotalAmountIDR string `json:"fee_total_amount_idr"`
	FeePaidAmountIDR  string `json:"fee_paid_amount_idr"`
}

func ToFeeResponse(m model.FeeRecord) FeeResponse {
	return FeeResponse{
		FeeID:             m.FeeRecordID,
		FeeStudentID:      m.FeeRecordStudentID,
		FeeCategory:       string(m.FeeRecordCategory),
		FeeAcademicYear:   m.FeeRecordAcademicYear,
		FeeTotalAmount:    m.FeeRecordTotalAmount.Sen(),
		FeePaidAmount:     m.FeeRecordPaidAmount.Sen(),
		FeeOutstanding:    m.Outstanding().Sen(),
		FeeDueDate:        m.FeeRecordDueDate,
		FeeStatus:         string(m.FeeRecordStatus),
		FeeDescription:    m.FeeRecordDescription,
		FeeCreatedAt:      m.FeeRecordCreatedAt,
		FeeUpdatedAt:      m.FeeRecordUpdatedAt,
		FeeTotalAmountIDR: m.FeeRecordTotalAmount.FormatIDR(),
		FeePaidAmountIDR:  m.FeeRecordPaidAmount.FormatIDR(),
	}
}

func ToFeeResponses(list []model.FeeRecord) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeResponse(m))
	}
	return out
}

// helper konversi nominal DTO → domain
func SenPtr(v *int64) *money.Money {
	if v == nil {
		return nil
	}
	m := money.FromSen(*v)
	return &m
}
