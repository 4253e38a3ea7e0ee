// file: internals/features/finance/fees/model/fee_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/money"
)

// FeeTemplate: aturan tagihan per kelas per tahun ajaran. Tidak punya efek
// apa pun ke fee_records sampai di-expand oleh generator.
type FeeTemplate struct {
	// PK
	FeeTemplateID uuid.UUID `gorm:"column:fee_template_id;type:uuid;primaryKey" json:"fee_template_id"`

	FeeTemplateClassID      uuid.UUID   `gorm:"column:fee_template_class_id;type:uuid;not null;index:ix_fee_templates_class_year,priority:1" json:"fee_template_class_id"`
	FeeTemplateAcademicYear int16       `gorm:"column:fee_template_academic_year;type:smallint;not null;index:ix_fee_templates_class_year,priority:2" json:"fee_template_academic_year"`
	FeeTemplateCategory     FeeCategory `gorm:"column:fee_template_category;type:varchar(20);not null" json:"fee_template_category"`

	// Nominal (sen)
	FeeTemplateAmount money.Money `gorm:"column:fee_template_amount;type:bigint;not null;check:fee_template_amount>=0" json:"fee_template_amount"`

	// Pilih salah satu: due date eksplisit ATAU offset hari dari waktu generate.
	FeeTemplateDueDate       *time.Time `gorm:"column:fee_template_due_date;type:date" json:"fee_template_due_date,omitempty"`
	FeeTemplateDueDaysOffset *int       `gorm:"column:fee_template_due_days_offset;type:int" json:"fee_template_due_days_offset,omitempty"`

	FeeTemplateDescription *string `gorm:"column:fee_template_description;type:text" json:"fee_template_description,omitempty"`

	FeeTemplateCreatedAt time.Time      `gorm:"column:fee_template_created_at;not null;autoCreateTime" json:"fee_template_created_at"`
	FeeTemplateUpdatedAt time.Time      `gorm:"column:fee_template_updated_at;not null;autoUpdateTime" json:"fee_template_updated_at"`
	FeeTemplateDeletedAt gorm.DeletedAt `gorm:"column:fee_template_deleted_at;index" json:"-"`
}

func (FeeTemplate) TableName() string { return "fee_templates" }

func (m *FeeTemplate) BeforeCreate(tx *gorm.DB) error {
	if m.FeeTemplateID == uuid.Nil {
		m.FeeTemplateID = uuid.New()
	}
	return nil
}

// DefaultDueDaysOffset dipakai kalau template tidak menyetel due date maupun offset.
const DefaultDueDaysOffset = 30

// ResolveDueDate menghitung due date efektif relatif terhadap waktu generate.
func (m *FeeTemplate) ResolveDueDate(now time.Time) time.Time {
	if m.FeeTemplateDueDate != nil {
		return *m.FeeTemplateDueDate
	}
	offset := DefaultDueDaysOffset
	if m.FeeTemplateDueDaysOffset != nil {
		offset = *m.FeeTemplateDueDaysOffset
	}
	return now.AddDate(0, 0, offset)
}
