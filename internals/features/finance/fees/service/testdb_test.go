package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/finance/fees/model"
	studentmodel "schoolku_backend/internals/features/students/model"
	studentsvc "schoolku_backend/internals/features/students/service"
)

// newTestDB: sqlite in-memory per test. Nama DSN unik supaya tiap test
// dapat database sendiri walau cache=shared (pool gorm butuh shared agar
// semua koneksi melihat schema yang sama).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&studentmodel.Student{},
		&model.FeeRecord{},
		&model.PaymentRecord{},
		&model.FeeTemplate{},
		&model.Counter{},
	))
	return db
}

// newPostgresTestDB: skip kecuali TEST_DATABASE_URL di-set. Dipakai test
// concurrency yang butuh row lock beneran (sqlite serial, tidak kena race).
func newPostgresTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&studentmodel.Student{},
		&model.FeeRecord{},
		&model.PaymentRecord{},
		&model.FeeTemplate{},
		&model.Counter{},
	))
	return db
}

func fixedClock() time.Time { return now }

func seedStudent(t *testing.T, db *gorm.DB, classID *uuid.UUID, year int16) uuid.UUID {
	t.Helper()
	s := studentmodel.Student{
		StudentName:         "Siswa Test",
		StudentClassID:      classID,
		StudentAcademicYear: year,
		StudentIsActive:     true,
	}
	require.NoError(t, db.Create(&s).Error)
	return s.StudentID
}

func newFeeServiceForTest(db *gorm.DB) *FeeService {
	s := NewFeeService(db, studentsvc.NewGormDirectory(db))
	s.Now = fixedClock
	return s
}

func newReconciliationForTest(db *gorm.DB) *ReconciliationService {
	s := NewReconciliationService(db)
	s.Now = fixedClock
	return s
}

func newGeneratorForTest(db *gorm.DB) *GeneratorService {
	s := NewGeneratorService(db, studentsvc.NewGormDirectory(db))
	s.Now = fixedClock
	return s
}
