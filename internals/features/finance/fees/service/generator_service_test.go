package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	"schoolku_backend/internals/helpers/errs"
)

func seedTemplate(t *testing.T, svc *TemplateService, classID uuid.UUID, amount int64) *model.FeeTemplate {
	t.Helper()
	tpl, err := svc.CreateTemplate(context.Background(), CreateTemplateInput{
		ClassID:      classID,
		AcademicYear: 2026,
		Category:     model.FeeCategoryTuition,
		Amount:       money.FromSen(amount),
		DueDate:      &tomorrow,
	})
	require.NoError(t, err)
	return tpl
}

func TestExpandTemplateCreatesFeesForClass(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)
	templates := NewTemplateService(db)

	classID := uuid.New()
	var sids []uuid.UUID
	for i := 0; i < 3; i++ {
		sids = append(sids, seedStudent(t, db, &classID, 2026))
	}
	// siswa kelas lain & siswa nonaktif tidak ikut
	otherClass := uuid.New()
	seedStudent(t, db, &otherClass, 2026)

	tpl := seedTemplate(t, templates, classID, 10000)

	res, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 0, res.Skipped)
	assert.Empty(t, res.Errors)

	var fees []model.FeeRecord
	require.NoError(t, db.Where("fee_record_academic_year = ?", 2026).Find(&fees).Error)
	assert.Len(t, fees, 3)
	for _, f := range fees {
		assert.Equal(t, model.FeeStatusUnpaid, f.FeeRecordStatus)
		assert.Equal(t, money.FromSen(10000), f.FeeRecordTotalAmount)
		assert.Contains(t, sids, f.FeeRecordStudentID)
	}
}

func TestExpandTemplateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)
	templates := NewTemplateService(db)

	classID := uuid.New()
	for i := 0; i < 4; i++ {
		seedStudent(t, db, &classID, 2026)
	}
	tpl := seedTemplate(t, templates, classID, 10000)

	first, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	require.Equal(t, 4, first.Created)

	// run kedua: tidak ada duplikat, semua ke-skip
	second, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 4, second.Skipped)

	var n int64
	require.NoError(t, db.Model(&model.FeeRecord{}).Count(&n).Error)
	assert.EqualValues(t, 4, n)
}

// Insert yang gagal untuk satu siswa tidak boleh ikut membatalkan siswa
// lain: baris yang sudah masuk harus tetap tersimpan dan counter hasil
// harus jujur. Kegagalan disimulasikan lewat trigger yang menolak insert
// untuk satu student id.
func TestExpandTemplateIsolatesStudentFailures(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)
	templates := NewTemplateService(db)

	classID := uuid.New()
	var sids []uuid.UUID
	for i := 0; i < 3; i++ {
		sids = append(sids, seedStudent(t, db, &classID, 2026))
	}
	tpl := seedTemplate(t, templates, classID, 10000)

	bad := sids[1]
	require.NoError(t, db.Exec(fmt.Sprintf(`
		CREATE TRIGGER reject_one_student BEFORE INSERT ON fee_records
		WHEN NEW.fee_record_student_id = '%s'
		BEGIN SELECT RAISE(ABORT, 'insert rejected'); END`, bad)).Error)

	res, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], bad.String())

	// dua siswa lain benar-benar persisted, tidak ikut roll-back
	var n int64
	require.NoError(t, db.Model(&model.FeeRecord{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	// setelah penyebab gagal hilang, re-run hanya menambah siswa tsb
	require.NoError(t, db.Exec(`DROP TRIGGER reject_one_student`).Error)
	res, err = gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 2, res.Skipped)
	assert.Empty(t, res.Errors)
}

func TestExpandTemplatePicksUpNewStudents(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)
	templates := NewTemplateService(db)

	classID := uuid.New()
	seedStudent(t, db, &classID, 2026)
	tpl := seedTemplate(t, templates, classID, 10000)

	_, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)

	// siswa baru masuk → run berikutnya hanya menambah miliknya
	seedStudent(t, db, &classID, 2026)
	res, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)
}

func TestExpandTemplateZeroAmountIsPaid(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)
	templates := NewTemplateService(db)

	classID := uuid.New()
	seedStudent(t, db, &classID, 2026)
	tpl := seedTemplate(t, templates, classID, 0)

	res, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	var fee model.FeeRecord
	require.NoError(t, db.First(&fee).Error)
	assert.Equal(t, model.FeeStatusPaid, fee.FeeRecordStatus)
}

func TestExpandTemplateNotFound(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)

	_, err := gen.ExpandTemplate(context.Background(), uuid.New(), uuid.New(), 2026)
	assert.True(t, errs.IsNotFound(err))
}

func TestExpandTemplateUsesDueDaysOffset(t *testing.T) {
	db := newTestDB(t)
	gen := newGeneratorForTest(db)
	templates := NewTemplateService(db)

	classID := uuid.New()
	seedStudent(t, db, &classID, 2026)

	offset := 14
	tpl, err := templates.CreateTemplate(context.Background(), CreateTemplateInput{
		ClassID:       classID,
		AcademicYear:  2026,
		Category:      model.FeeCategoryTuition,
		Amount:        money.FromSen(10000),
		DueDaysOffset: &offset,
	})
	require.NoError(t, err)

	res, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	var fee model.FeeRecord
	require.NoError(t, db.First(&fee).Error)
	assert.Equal(t,
		now.AddDate(0, 0, offset).Format("2006-01-02"),
		fee.FeeRecordDueDate.UTC().Format("2006-01-02"))
}
