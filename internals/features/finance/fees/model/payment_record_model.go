// file: internals/features/finance/fees/model/payment_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/money"
)

// =========================================================
// ENUM — metode pembayaran
// =========================================================

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodUPI:
		return true
	}
	return false
}

// RequiresTransactionID: selain cash wajib bawa referensi eksternal.
func (m PaymentMethod) RequiresTransactionID() bool {
	return m != PaymentMethodCash
}

// =========================================================
// MODEL — payment_records (satu pembayaran untuk satu fee)
// =========================================================

type PaymentRecord struct {
	// PK
	PaymentRecordID uuid.UUID `gorm:"column:payment_record_id;type:uuid;primaryKey" json:"payment_record_id"`

	// FK → fee_records(fee_record_id)
	PaymentRecordFeeID uuid.UUID `gorm:"column:payment_record_fee_id;type:uuid;not null;index" json:"payment_record_fee_id"`

	// Nominal (sen; > 0 — reversal memakai soft delete, bukan nominal negatif)
	PaymentRecordAmount money.Money   `gorm:"column:payment_record_amount;type:bigint;not null;check:payment_record_amount>0" json:"payment_record_amount"`
	PaymentRecordMethod PaymentMethod `gorm:"column:payment_record_method;type:varchar(15);not null" json:"payment_record_method"`

	PaymentRecordDate time.Time `gorm:"column:payment_record_date;type:date;not null;index" json:"payment_record_date"`

	// Nomor kuitansi — dari sequence counters, unik & monoton (bukan timestamp+random)
	PaymentRecordReference string `gorm:"column:payment_record_reference;type:varchar(30);not null;uniqueIndex" json:"payment_record_reference"`

	// Referensi eksternal (wajib untuk non-cash)
	PaymentRecordTransactionID *string `gorm:"column:payment_record_transaction_id;type:varchar(80)" json:"payment_record_transaction_id,omitempty"`

	// Salinan kategori fee induk (memudahkan laporan per-kategori tanpa join)
	PaymentRecordCategory FeeCategory `gorm:"column:payment_record_category;type:varchar(20);not null;index" json:"payment_record_category"`

	PaymentRecordNote *string `gorm:"column:payment_record_note;type:text" json:"payment_record_note,omitempty"`

	PaymentRecordCreatedAt time.Time      `gorm:"column:payment_record_created_at;not null;autoCreateTime" json:"payment_record_created_at"`
	PaymentRecordUpdatedAt time.Time      `gorm:"column:payment_record_updated_at;not null;autoUpdateTime" json:"payment_record_updated_at"`
	PaymentRecordDeletedAt gorm.DeletedAt `gorm:"column:payment_record_deleted_at;index" json:"-"`
}

func (PaymentRecord) TableName() string { return "payment_records" }

func (m *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentRecordID == uuid.Nil {
		m.PaymentRecordID = uuid.New()
	}
	return nil
}
