// file: internals/features/finance/fees/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENT RECORDS — DTO
////////////////////////////////////////////////////////////////////////////////

type PaymentApplyDTO struct {
	PaymentFeeID         uuid.UUID  `json:"payment_fee_id" validate:"required"`
	PaymentAmount        int64      `json:"payment_amount" validate:"required,gt=0"`
	PaymentMethod        string     `json:"payment_method" validate:"required"`
	PaymentDate          *time.Time `json:"payment_date,omitempty"`
	PaymentTransactionID *string    `json:"payment_transaction_id,omitempty"` // wajib non-cash
	PaymentNote          *string    `json:"payment_note,omitempty"`
}

type PaymentUpdateDTO struct {
	PaymentAmount        int64      `json:"payment_amount" validate:"required,gt=0"`
	PaymentMethod        *string    `json:"payment_method,omitempty"`
	PaymentDate          *time.Time `json:"payment_date,omitempty"`
	PaymentTransactionID *string    `json:"payment_transaction_id,omitempty"`
	PaymentNote          *string    `json:"payment_note,omitempty"`
}

type PaymentResponse struct {
	PaymentID            uuid.UUID  `json:"payment_id"`
	PaymentFeeID         uuid.UUID  `json:"payment_fee_id"`
	PaymentAmount        int64      `json:"payment_amount"`
	PaymentAmountIDR     string     `json:"payment_amount_idr"`
	PaymentMethod        string     `json:"payment_method"`
	PaymentDate          time.Time  `json:"payment_date"`
	PaymentReference     string     `json:"payment_reference"`
	PaymentTransactionID *string    `json:"payment_transaction_id,omitempty"`
	PaymentCategory      string     `json:"payment_category"`
	PaymentNote          *string    `json:"payment_note,omitempty"`
	PaymentCreatedAt     time.Time  `json:"payment_created_at"`
}

func ToPaymentResponse(m model.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:            m.PaymentRecordID,
		PaymentFeeID:         m.PaymentRecordFeeID,
		PaymentAmount:        m.PaymentRecordAmount.Sen(),
		PaymentAmountIDR:     m.PaymentRecordAmount.FormatIDR(),
		PaymentMethod:        string(m.PaymentRecordMethod),
		PaymentDate:          m.PaymentRecordDate,
		PaymentReference:     m.PaymentRecordReference,
		PaymentTransactionID: m.PaymentRecordTransactionID,
		PaymentCategory:      string(m.PaymentRecordCategory),
		PaymentNote:          m.PaymentRecordNote,
		PaymentCreatedAt:     m.PaymentRecordCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentRecord) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
