// file: internals/features/finance/fees/dto/fee_template_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE TEMPLATES — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeTemplateCreateDTO struct {
	FeeTemplateClassID       uuid.UUID  `json:"fee_template_class_id" validate:"required"`
	FeeTemplateAcademicYear  int16      `json:"fee_template_academic_year" validate:"required,min=2000"`
	FeeTemplateCategory      string     `json:"fee_template_category" validate:"required"`
	FeeTemplateAmount        int64      `json:"fee_template_amount" validate:"min=0"`
	FeeTemplateDueDate       *time.Time `json:"fee_template_due_date,omitempty"`
	FeeTemplateDueDaysOffset *int       `json:"fee_template_due_days_offset,omitempty"`
	FeeTemplateDescription   *string    `json:"fee_template_description,omitempty"`
}

type FeeTemplateUpdateDTO struct {
	FeeTemplateCategory      *string    `json:"fee_template_category,omitempty"`
	FeeTemplateAmount        *int64     `json:"fee_template_amount,omitempty"`
	FeeTemplateDueDate       *time.Time `json:"fee_template_due_date,omitempty"`
	FeeTemplateDueDaysOffset *int       `json:"fee_template_due_days_offset,omitempty"`
	FeeTemplateDescription   *string    `json:"fee_template_description,omitempty"`
}

// ExpandDTO: target expand; kelas/tahun boleh beda dari kelas template
// (template dipakai ulang lintas kelas paralel).
type FeeTemplateExpandDTO struct {
	TargetClassID      uuid.UUID `json:"target_class_id" validate:"required"`
	TargetAcademicYear int16     `json:"target_academic_year" validate:"required,min=2000"`
}

type FeeTemplateResponse struct {
	FeeTemplateID            uuid.UUID  `json:"fee_template_id"`
	FeeTemplateClassID       uuid.UUID  `json:"fee_template_class_id"`
	FeeTemplateAcademicYear  int16      `json:"fee_template_academic_year"`
	FeeTemplateCategory      string     `json:"fee_template_category"`
	FeeTemplateAmount        int64      `json:"fee_template_amount"`
	FeeTemplateAmountIDR     string     `json:"fee_template_amount_idr"`
	FeeTemplateDueDate       *time.Time `json:"fee_template_due_date,omitempty"`
	FeeTemplateDueDaysOffset *int       `json:"fee_template_due_days_offset,omitempty"`
	FeeTemplateDescription   *string    `json:"fee_template_description,omitempty"`
	FeeTemplateCreatedAt     time.Time  `json:"fee_template_created_at"`
	FeeTemplateUpdatedAt     time.Time  `json:"fee_template_updated_at"`
}

func ToFeeTemplateResponse(m model.FeeTemplate) FeeTemplateResponse {
	return FeeTemplateResponse{
		FeeTemplateID:            m.FeeTemplateID,
		FeeTemplateClassID:       m.FeeTemplateClassID,
		FeeTemplateAcademicYear:  m.FeeTemplateAcademicYear,
		FeeTemplateCategory:      string(m.FeeTemplateCategory),
		FeeTemplateAmount:        m.FeeTemplateAmount.Sen(),
		FeeTemplateAmountIDR:     m.FeeTemplateAmount.FormatIDR(),
		FeeTemplateDueDate:       m.FeeTemplateDueDate,
		FeeTemplateDueDaysOffset: m.FeeTemplateDueDaysOffset,
		FeeTemplateDescription:   m.FeeTemplateDescription,
		FeeTemplateCreatedAt:     m.FeeTemplateCreatedAt,
		FeeTemplateUpdatedAt:     m.FeeTemplateUpdatedAt,
	}
}

func ToFeeTemplateResponses(list []model.FeeTemplate) []FeeTemplateResponse {
	out := make([]FeeTemplateResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeTemplateResponse(m))
	}
	return out
}
