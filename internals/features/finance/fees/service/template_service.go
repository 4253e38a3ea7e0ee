// file: internals/features/finance/fees/service/template_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	"schoolku_backend/internals/helpers/errs"
)

// TemplateService: CRUD fee_templates. Template hanya input generator;
// mengubah template tidak menyentuh fee_records yang sudah di-generate.
type TemplateService struct {
	DB *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{DB: db}
}

type CreateTemplateInput struct {
	ClassID       uuid.UUID
	AcademicYear  int16
	Category      model.FeeCategory
	Amount        money.Money
	DueDate       *time.Time
	DueDaysOffset *int
	Description   *string
}

func (s *TemplateService) CreateTemplate(ctx context.Context, in CreateTemplateInput) (*model.FeeTemplate, error) {
	if !in.Category.Valid() {
		return nil, errs.NewFieldValidation("category", "unknown fee category")
	}
	if in.Amount.IsNegative() {
		return nil, errs.NewFieldValidation("amount", "must be >= 0")
	}
	if in.AcademicYear <= 0 {
		return nil, errs.NewFieldValidation("academic_year", "required")
	}
	if in.DueDate != nil && in.DueDaysOffset != nil {
		return nil, errs.NewFieldValidation("due_date", "set either due_date or due_days_offset, not both")
	}
	if in.DueDaysOffset != nil && *in.DueDaysOffset < 0 {
		return nil, errs.NewFieldValidation("due_days_offset", "must be >= 0")
	}

	tpl := model.FeeTemplate{
		FeeTemplateClassID:       in.ClassID,
		FeeTemplateAcademicYear:  in.AcademicYear,
		FeeTemplateCategory:      in.Category,
		FeeTemplateAmount:        in.Amount,
		FeeTemplateDueDate:       in.DueDate,
		FeeTemplateDueDaysOffset: in.DueDaysOffset,
		FeeTemplateDescription:   in.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&tpl).Error; err != nil {
		return nil, translateTxError(err)
	}
	return &tpl, nil
}

type UpdateTemplatePatch struct {
	Category      *model.FeeCategory
	Amount        *money.Money
	DueDate       *time.Time
	DueDaysOffset *int
	Description   *string
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id uuid.UUID, patch UpdateTemplatePatch) (*model.FeeTemplate, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, errs.NewFieldValidation("category", "unknown fee category")
	}
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return nil, errs.NewFieldValidation("amount", "must be >= 0")
	}

	var out model.FeeTemplate
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tpl model.FeeTemplate
		if err := lockForUpdate(tx).
			First(&tpl, "fee_template_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("fee template")
			}
			return err
		}

		if patch.Category != nil {
			tpl.FeeTemplateCategory = *patch.Category
		}
		if patch.Amount != nil {
			tpl.FeeTemplateAmount = *patch.Amount
		}
		if patch.DueDate != nil {
			tpl.FeeTemplateDueDate = patch.DueDate
			tpl.FeeTemplateDueDaysOffset = nil
		}
		if patch.DueDaysOffset != nil {
			tpl.FeeTemplateDueDaysOffset = patch.DueDaysOffset
			tpl.FeeTemplateDueDate = nil
		}
		if patch.Description != nil {
			tpl.FeeTemplateDescription = patch.Description
		}

		if err := tx.Save(&tpl).Error; err != nil {
			return err
		}
		out = tpl
		return nil
	})
	if err != nil {
		return nil, translateTxError(err)
	}
	return &out, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.FeeTemplate{}, "fee_template_id = ?", id)
	if res.Error != nil {
		return translateTxError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("fee template")
	}
	return nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*model.FeeTemplate, error) {
	var tpl model.FeeTemplate
	if err := s.DB.WithContext(ctx).
		First(&tpl, "fee_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("fee template")
		}
		return nil, err
	}
	return &tpl, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context, classID *uuid.UUID, year *int16) ([]model.FeeTemplate, error) {
	q := s.DB.WithContext(ctx).Model(&model.FeeTemplate{})
	if classID != nil {
		q = q.Where("fee_template_class_id = ?", *classID)
	}
	if year != nil {
		q = q.Where("fee_template_academic_year = ?", *year)
	}
	var list []model.FeeTemplate
	err := q.Order("fee_template_created_at DESC").Find(&list).Error
	return list, err
}
