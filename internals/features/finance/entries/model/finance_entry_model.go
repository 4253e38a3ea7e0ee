// file: internals/features/finance/entries/model/finance_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/money"
)

// =========================================================
// ENUM — jenis & kategori entri kas sekolah
// Kategori income dan expense adalah dua set tertutup yang saling lepas.
// =========================================================

type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

type EntryCategory string

const (
	// income
	EntryCategoryDonation     EntryCategory = "donation"
	EntryCategoryGrant        EntryCategory = "grant"
	EntryCategoryCanteen      EntryCategory = "canteen"
	EntryCategoryRental       EntryCategory = "rental"
	EntryCategoryMiscIncome   EntryCategory = "misc_income"
	// expense
	EntryCategorySalary       EntryCategory = "salary"
	EntryCategoryMaintenance  EntryCategory = "maintenance"
	EntryCategoryUtilities    EntryCategory = "utilities"
	EntryCategorySupplies     EntryCategory = "supplies"
	EntryCategoryTransportOps EntryCategory = "transport_ops"
	EntryCategoryMiscExpense  EntryCategory = "misc_expense"
)

var incomeCategories = map[EntryCategory]struct{}{
	EntryCategoryDonation: {}, EntryCategoryGrant: {}, EntryCategoryCanteen: {},
	EntryCategoryRental: {}, EntryCategoryMiscIncome: {},
}

var expenseCategories = map[EntryCategory]struct{}{
	EntryCategorySalary: {}, EntryCategoryMaintenance: {}, EntryCategoryUtilities: {},
	EntryCategorySupplies: {}, EntryCategoryTransportOps: {}, EntryCategoryMiscExpense: {},
}

// ValidFor: kategori harus berasal dari set milik jenisnya.
func (c EntryCategory) ValidFor(t EntryType) bool {
	switch t {
	case EntryTypeIncome:
		_, ok := incomeCategories[c]
		return ok
	case EntryTypeExpense:
		_, ok := expenseCategories[c]
		return ok
	}
	return false
}

// =========================================================
// MODEL — finance_entries (buku kas; tanpa status turunan & rekonsiliasi)
// =========================================================

type FinanceEntry struct {
	FinanceEntryID uuid.UUID `gorm:"column:finance_entry_id;type:uuid;primaryKey" json:"finance_entry_id"`

	FinanceEntryType     EntryType     `gorm:"column:finance_entry_type;type:varchar(10);not null;index" json:"finance_entry_type"`
	FinanceEntryCategory EntryCategory `gorm:"column:finance_entry_category;type:varchar(20);not null;index" json:"finance_entry_category"`

	// Nominal (sen)
	FinanceEntryAmount money.Money `gorm:"column:finance_entry_amount;type:bigint;not null;check:finance_entry_amount>0" json:"finance_entry_amount"`

	FinanceEntryDate        time.Time `gorm:"column:finance_entry_date;type:date;not null;index" json:"finance_entry_date"`
	FinanceEntryDescription *string   `gorm:"column:finance_entry_description;type:text" json:"finance_entry_description,omitempty"`

	FinanceEntryCreatedAt time.Time      `gorm:"column:finance_entry_created_at;not null;autoCreateTime" json:"finance_entry_created_at"`
	FinanceEntryUpdatedAt time.Time      `gorm:"column:finance_entry_updated_at;not null;autoUpdateTime" json:"finance_entry_updated_at"`
	FinanceEntryDeletedAt gorm.DeletedAt `gorm:"column:finance_entry_deleted_at;index" json:"-"`
}

func (FinanceEntry) TableName() string { return "finance_entries" }

func (m *FinanceEntry) BeforeCreate(tx *gorm.DB) error {
	if m.FinanceEntryID == uuid.Nil {
		m.FinanceEntryID = uuid.New()
	}
	return nil
}
