// file: internals/features/finance/entries/service/entry_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/entries/model"
	"schoolku_backend/internals/features/finance/money"
	"schoolku_backend/internals/helpers/errs"
)

// EntryService: CRUD buku kas sekolah. Sengaja sederhana — tidak ada
// status turunan, tidak ada rekonsiliasi antar-record.
type EntryService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{DB: db, Now: time.Now}
}

type CreateEntryInput struct {
	Type        model.EntryType
	Category    model.EntryCategory
	Amount      money.Money
	Date        time.Time
	Description *string
}

func (s *EntryService) CreateEntry(ctx context.Context, in CreateEntryInput) (*model.FinanceEntry, error) {
	if !in.Type.Valid() {
		return nil, errs.NewFieldValidation("type", "must be income or expense")
	}
	if !in.Category.ValidFor(in.Type) {
		return nil, errs.NewFieldValidation("category", "category does not belong to entry type")
	}
	if !in.Amount.IsPositive() {
		return nil, errs.NewFieldValidation("amount", "must be > 0")
	}
	if in.Date.IsZero() {
		in.Date = s.Now()
	}

	e := model.FinanceEntry{
		FinanceEntryType:        in.Type,
		FinanceEntryCategory:    in.Category,
		FinanceEntryAmount:      in.Amount,
		FinanceEntryDate:        in.Date,
		FinanceEntryDescription: in.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

type UpdateEntryPatch struct {
	Category    *model.EntryCategory
	Amount      *money.Money
	Date        *time.Time
	Description *string
}

func (s *EntryService) UpdateEntry(ctx context.Context, id uuid.UUID, patch UpdateEntryPatch) (*model.FinanceEntry, error) {
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return nil, errs.NewFieldValidation("amount", "must be > 0")
	}

	var out model.FinanceEntry
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e model.FinanceEntry
		if err := tx.First(&e, "finance_entry_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("finance entry")
			}
			return err
		}

		if patch.Category != nil {
			// jenis tidak bisa diganti; kategori baru tetap harus cocok dengan jenisnya
			if !patch.Category.ValidFor(e.FinanceEntryType) {
				return errs.NewFieldValidation("category", "category does not belong to entry type")
			}
			e.FinanceEntryCategory = *patch.Category
		}
		if patch.Amount != nil {
			e.FinanceEntryAmount = *patch.Amount
		}
		if patch.Date != nil {
			e.FinanceEntryDate = *patch.Date
		}
		if patch.Description != nil {
			e.FinanceEntryDescription = patch.Description
		}

		if err := tx.Save(&e).Error; err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.FinanceEntry{}, "finance_entry_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("finance entry")
	}
	return nil
}

func (s *EntryService) GetEntry(ctx context.Context, id uuid.UUID) (*model.FinanceEntry, error) {
	var e model.FinanceEntry
	if err := s.DB.WithContext(ctx).First(&e, "finance_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("finance entry")
		}
		return nil, err
	}
	return &e, nil
}

type EntryFilter struct {
	Type     *model.EntryType
	Category *model.EntryCategory
	DateFrom *time.Time
	DateTo   *time.Time
}

func (s *EntryService) query(ctx context.Context, f EntryFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&model.FinanceEntry{})
	if f.Type != nil {
		q = q.Where("finance_entry_type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("finance_entry_category = ?", *f.Category)
	}
	if f.DateFrom != nil {
		q = q.Where("finance_entry_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("finance_entry_date <= ?", *f.DateTo)
	}
	return q
}

func (s *EntryService) ListEntries(ctx context.Context, f EntryFilter, limit, offset int) ([]model.FinanceEntry, int64, error) {
	q := s.query(ctx, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.FinanceEntry
	err := q.Order("finance_entry_date DESC, finance_entry_created_at DESC").
		Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

// EntryTotals: ringkasan kas — total per jenis, semua dijumlah di SQL (BIGINT).
type EntryTotals struct {
	TotalIncome  money.Money `gorm:"column:total_income" json:"total_income"`
	TotalExpense money.Money `gorm:"column:total_expense" json:"total_expense"`
	Net          money.Money `gorm:"-" json:"net"`
}

func (s *EntryService) Totals(ctx context.Context, f EntryFilter) (*EntryTotals, error) {
	var t EntryTotals
	err := s.query(ctx, f).
		Select(`COALESCE(SUM(CASE WHEN finance_entry_type = 'income' THEN finance_entry_amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN finance_entry_type = 'expense' THEN finance_entry_amount ELSE 0 END), 0) AS total_expense`).
		Scan(&t).Error
	if err != nil {
		return nil, err
	}
	t.Net = t.TotalIncome.Sub(t.TotalExpense)
	return &t, nil
}
