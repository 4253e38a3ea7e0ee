// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student adalah permukaan minimal yang dibutuhkan ledger keuangan:
// id → ada/tidak, kelas, tahun ajaran, aktif/tidak. CRUD siswa lengkap
// (form, import roster, foto) hidup di layer lain.
type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	StudentName string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`

	// Penempatan kelas aktif
	StudentClassID      *uuid.UUID `gorm:"column:student_class_id;type:uuid;index:ix_students_class_year,priority:1" json:"student_class_id,omitempty"`
	StudentAcademicYear int16      `gorm:"column:student_academic_year;type:smallint;not null;index:ix_students_class_year,priority:2" json:"student_academic_year"`

	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true;index" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
