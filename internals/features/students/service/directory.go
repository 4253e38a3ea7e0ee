// file: internals/features/students/service/directory.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentmodel "schoolku_backend/internals/features/students/model"
)

// Directory adalah lookup siswa/enrolment yang dikonsumsi ledger keuangan.
type Directory interface {
	Exists(ctx context.Context, studentID uuid.UUID) (bool, error)
	// EnrolledStudentIDs: snapshot siswa aktif di (kelas, tahun ajaran).
	// Dibaca tanpa lock — siswa yang masuk di tengah proses generate akan
	// terangkut di run berikutnya.
	EnrolledStudentIDs(ctx context.Context, classID uuid.UUID, year int16) ([]uuid.UUID, error)
}

type GormDirectory struct {
	DB *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{DB: db}
}

func (d *GormDirectory) Exists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var n int64
	err := d.DB.WithContext(ctx).
		Model(&studentmodel.Student{}).
		Where("student_id = ?", studentID).
		Count(&n).Error
	return n > 0, err
}

func (d *GormDirectory) EnrolledStudentIDs(ctx context.Context, classID uuid.UUID, year int16) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.DB.WithContext(ctx).
		Model(&studentmodel.Student{}).
		Where("student_class_id = ? AND student_academic_year = ? AND student_is_active = ?", classID, year, true).
		Order("student_created_at ASC").
		Pluck("student_id", &ids).Error
	return ids, err
}
