// file: internals/features/finance/fees/service/generator_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/finance/fees/model"
	studentsvc "schoolku_backend/internals/features/students/service"
	"schoolku_backend/internals/helpers/errs"
)

// GeneratorService meng-expand FeeTemplate jadi fee_records untuk semua
// siswa aktif di (kelas, tahun ajaran). Idempoten terhadap re-run:
// duplikat ditangkal unique index (student, category, year) + insert
// ON CONFLICT DO NOTHING, bukan cek-dulu-baru-insert (rawan race).
type GeneratorService struct {
	DB       *gorm.DB
	Students studentsvc.Directory
	Now      func() time.Time
}

func NewGeneratorService(db *gorm.DB, students studentsvc.Directory) *GeneratorService {
	return &GeneratorService{DB: db, Students: students, Now: time.Now}
}

type ExpandResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

func (s *GeneratorService) ExpandTemplate(ctx context.Context, templateID, classID uuid.UUID, year int16) (*ExpandResult, error) {
	if year <= 0 {
		return nil, errs.NewFieldValidation("academic_year", "required")
	}

	var tpl model.FeeTemplate
	if err := s.DB.WithContext(ctx).
		First(&tpl, "fee_template_id = ?", templateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("fee template")
		}
		return nil, err
	}

	now := s.Now()
	dueDate := tpl.ResolveDueDate(now)

	// snapshot enrolment tanpa lock — siswa yang masuk di tengah run
	// akan kena di run berikutnya (idempoten, jadi aman diulang)
	studentIDs, err := s.Students.EnrolledStudentIDs(ctx, classID, year)
	if err != nil {
		return nil, err
	}

	// Tiap siswa di-insert sebagai statement mandiri, TANPA transaksi batch:
	// di Postgres, satu statement gagal akan meng-abort seluruh transaksi dan
	// sisa loop hanya menumpuk error "transaction is aborted" lalu semuanya
	// ikut roll-back. Insert-nya sendiri sudah atomik dan operasi ini
	// idempoten, jadi kegagalan satu siswa cukup dicatat dan dilewati.
	out := ExpandResult{Errors: []string{}}
	for _, sid := range studentIDs {
		rec := model.FeeRecord{
			FeeRecordStudentID:    sid,
			FeeRecordCategory:     tpl.FeeTemplateCategory,
			FeeRecordAcademicYear: year,
			FeeRecordTotalAmount:  tpl.FeeTemplateAmount,
			FeeRecordDueDate:      dueDate,
			FeeRecordDescription:  tpl.FeeTemplateDescription,
		}
		// paidAmount 0 → paid kalau nominal 0, selain itu unpaid/overdue
		// sesuai engine (status tersimpan harus selalu = turunan)
		rec.FeeRecordStatus = DeriveStatus(rec.FeeRecordTotalAmount, rec.FeeRecordPaidAmount, rec.FeeRecordDueDate, now)

		res := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "fee_record_student_id"},
				{Name: "fee_record_category"},
				{Name: "fee_record_academic_year"},
			},
			DoNothing: true,
		}).Create(&rec)
		if res.Error != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("student %s: %v", sid, res.Error))
			continue
		}
		if res.RowsAffected == 0 {
			out.Skipped++
		} else {
			out.Created++
		}
	}
	return &out, nil
}
