// file: internals/features/finance/fees/service/report_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	helper "schoolku_backend/internals/helpers"
)

// ReportService: sisi baca murni. Tidak pernah memutasi apa pun.
// Semua penjumlahan dikerjakan di SQL atas kolom BIGINT (sen) —
// tidak ada float di tengah jalan.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// FeeFilter: semua field opsional; DateFrom/DateTo memfilter due date.
type FeeFilter struct {
	ClassID  *uuid.UUID
	Status   *model.FeeStatus
	Category *model.FeeCategory
	DateFrom *time.Time
	DateTo   *time.Time
}

func (s *ReportService) baseQuery(ctx context.Context, f FeeFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&model.FeeRecord{}).
		Joins("JOIN students ON students.student_id = fee_records.fee_record_student_id AND students.student_deleted_at IS NULL")

	if f.ClassID != nil {
		q = q.Where("students.student_class_id = ?", *f.ClassID)
	}
	if f.Status != nil {
		q = q.Where("fee_records.fee_record_status = ?", *f.Status)
	}
	if f.Category != nil {
		q = q.Where("fee_records.fee_record_category = ?", *f.Category)
	}
	if f.DateFrom != nil {
		q = q.Where("fee_records.fee_record_due_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("fee_records.fee_record_due_date <= ?", *f.DateTo)
	}
	return q
}

/* ===================== List (records + identitas siswa) ===================== */

type FeeWithStudent struct {
	model.FeeRecord
	StudentName    string      `gorm:"column:student_name" json:"student_name"`
	StudentClassID *uuid.UUID  `gorm:"column:student_class_id" json:"student_class_id,omitempty"`
	Outstanding    money.Money `gorm:"column:outstanding" json:"outstanding"`
}

func (s *ReportService) ListFees(ctx context.Context, f FeeFilter, p helper.Params) ([]FeeWithStudent, int64, error) {
	q := s.baseQuery(ctx, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []FeeWithStudent
	err := q.
		Select("fee_records.*, students.student_name, students.student_class_id, fee_records.fee_record_total_amount - fee_records.fee_record_paid_amount AS outstanding").
		Order("fee_records.fee_record_due_date ASC, fee_records.fee_record_created_at ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

/* ===================== Agregasi per kelas ===================== */

type ClassSummary struct {
	ClassID          *uuid.UUID  `gorm:"column:class_id" json:"class_id"`
	FeeCount         int64       `gorm:"column:fee_count" json:"fee_count"`
	TotalBilled      money.Money `gorm:"column:total_billed" json:"total_billed"`
	TotalCollected   money.Money `gorm:"column:total_collected" json:"total_collected"`
	TotalOutstanding money.Money `gorm:"column:total_outstanding" json:"total_outstanding"`
}

func (s *ReportService) SummaryByClass(ctx context.Context, f FeeFilter) ([]ClassSummary, error) {
	var rows []ClassSummary
	err := s.baseQuery(ctx, f).
		Select(`students.student_class_id AS class_id,
			COUNT(*) AS fee_count,
			COALESCE(SUM(fee_records.fee_record_total_amount), 0) AS total_billed,
			COALESCE(SUM(fee_records.fee_record_paid_amount), 0) AS total_collected,
			COALESCE(SUM(fee_records.fee_record_total_amount - fee_records.fee_record_paid_amount), 0) AS total_outstanding`).
		Group("students.student_class_id").
		Order("class_id").
		Find(&rows).Error
	return rows, err
}

/* ===================== Agregasi per status ===================== */

type StatusSummary struct {
	Status           model.FeeStatus `gorm:"column:status" json:"status"`
	FeeCount         int64           `gorm:"column:fee_count" json:"fee_count"`
	TotalBilled      money.Money     `gorm:"column:total_billed" json:"total_billed"`
	TotalCollected   money.Money     `gorm:"column:total_collected" json:"total_collected"`
	TotalOutstanding money.Money     `gorm:"column:total_outstanding" json:"total_outstanding"`
}

func (s *ReportService) SummaryByStatus(ctx context.Context, f FeeFilter) ([]StatusSummary, error) {
	var rows []StatusSummary
	err := s.baseQuery(ctx, f).
		Select(`fee_records.fee_record_status AS status,
			COUNT(*) AS fee_count,
			COALESCE(SUM(fee_records.fee_record_total_amount), 0) AS total_billed,
			COALESCE(SUM(fee_records.fee_record_paid_amount), 0) AS total_collected,
			COALESCE(SUM(fee_records.fee_record_total_amount - fee_records.fee_record_paid_amount), 0) AS total_outstanding`).
		Group("fee_records.fee_record_status").
		Order("status").
		Find(&rows).Error
	return rows, err
}
