// file: internals/features/finance/entries/dto/finance_entry_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/entries/model"
)

var validate = validator.New()

func Validate(v any) error { return validate.Struct(v) }

type FinanceEntryCreateDTO struct {
	FinanceEntryType        string     `json:"finance_entry_type" validate:"required,oneof=income expense"`
	FinanceEntryCategory    string     `json:"finance_entry_category" validate:"required"`
	FinanceEntryAmount      int64      `json:"finance_entry_amount" validate:"required,gt=0"`
	FinanceEntryDate        *time.Time `json:"finance_entry_date,omitempty"`
	FinanceEntryDescription *string    `json:"finance_entry_description,omitempty"`
}

type FinanceEntryUpdateDTO struct {
	FinanceEntryCategory    *string    `json:"finance_entry_category,omitempty"`
	FinanceEntryAmount      *int64     `json:"finance_entry_amount,omitempty"`
	FinanceEntryDate        *time.Time `json:"finance_entry_date,omitempty"`
	FinanceEntryDescription *string    `json:"finance_entry_description,omitempty"`
}

type FinanceEntryResponse struct {
	FinanceEntryID          uuid.UUID `json:"finance_entry_id"`
	FinanceEntryType        string    `json:"finance_entry_type"`
	FinanceEntryCategory    string    `json:"finance_entry_category"`
	FinanceEntryAmount      int64     `json:"finance_entry_amount"`
	FinanceEntryAmountIDR   string    `json:"finance_entry_amount_idr"`
	FinanceEntryDate        time.Time `json:"finance_entry_date"`
	FinanceEntryDescription *string   `json:"finance_entry_description,omitempty"`
	FinanceEntryCreatedAt   time.Time `json:"finance_entry_created_at"`
	FinanceEntryUpdatedAt   time.Time `json:"finance_entry_updated_at"`
}

func ToFinanceEntryResponse(m model.FinanceEntry) FinanceEntryResponse {
	return FinanceEntryResponse{
		FinanceEntryID:          m.FinanceEntryID,
		FinanceEntryType:        string(m.FinanceEntryType),
		FinanceEntryCategory:    string(m.FinanceEntryCategory),
		FinanceEntryAmount:      m.FinanceEntryAmount.Sen(),
		FinanceEntryAmountIDR:   m.FinanceEntryAmount.FormatIDR(),
		FinanceEntryDate:        m.FinanceEntryDate,
		FinanceEntryDescription: m.FinanceEntryDescription,
		FinanceEntryCreatedAt:   m.FinanceEntryCreatedAt,
		FinanceEntryUpdatedAt:   m.FinanceEntryUpdatedAt,
	}
}

func ToFinanceEntryResponses(list []model.FinanceEntry) []FinanceEntryResponse {
	out := make([]FinanceEntryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFinanceEntryResponse(m))
	}
	return out
}
