package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	"schoolku_backend/internals/helpers/errs"
)

func TestCreateFeeDerivesStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)
	sid := seedStudent(t, db, nil, 2026)

	rec, err := svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      tomorrow,
	})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusUnpaid, rec.FeeRecordStatus)
	assert.Equal(t, money.FromSen(10000), rec.Outstanding())

	// zero total → langsung paid
	rec2, err := svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryLibrary,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(0),
		DueDate:      yesterday,
	})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusPaid, rec2.FeeRecordStatus)
}

func TestCreateFeeRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)
	sid := seedStudent(t, db, nil, 2026)

	_, err := svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     "arisan",
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      tomorrow,
	})
	assert.True(t, errs.IsValidation(err))

	_, err = svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(-1),
		DueDate:      tomorrow,
	})
	assert.True(t, errs.IsValidation(err))

	// siswa tidak ada
	_, err = svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    uuid.New(),
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      tomorrow,
	})
	assert.True(t, errs.IsValidation(err))
}

func TestCreateFeeDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)
	sid := seedStudent(t, db, nil, 2026)

	in := CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      tomorrow,
	}
	_, err := svc.CreateFee(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.CreateFee(context.Background(), in)
	assert.True(t, errs.IsConflict(err))
}

func TestUpdateFeeRederivesStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)
	sid := seedStudent(t, db, nil, 2026)

	rec, err := svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      tomorrow,
	})
	require.NoError(t, err)

	// due date mundur ke kemarin → overdue
	upd, err := svc.UpdateFee(context.Background(), rec.FeeRecordID, UpdateFeePatch{
		DueDate: &yesterday,
	})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusOverdue, upd.FeeRecordStatus)

	// total turun ke 0 → paid
	zero := money.FromSen(0)
	upd, err = svc.UpdateFee(context.Background(), rec.FeeRecordID, UpdateFeePatch{
		TotalAmount: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusPaid, upd.FeeRecordStatus)
}

func TestUpdateFeeWaivedSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)
	sid := seedStudent(t, db, nil, 2026)

	rec, err := svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      yesterday,
	})
	require.NoError(t, err)
	require.Equal(t, model.FeeStatusOverdue, rec.FeeRecordStatus)

	// waive manual
	waived := model.FeeStatusWaived
	upd, err := svc.UpdateFee(context.Background(), rec.FeeRecordID, UpdateFeePatch{Status: &waived})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusWaived, upd.FeeRecordStatus)

	// update field lain tanpa status → waived tidak tertimpa
	desc := "keringanan komite"
	upd, err = svc.UpdateFee(context.Background(), rec.FeeRecordID, UpdateFeePatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusWaived, upd.FeeRecordStatus)

	// cabut override: status eksplisit non-waived → derive ulang (overdue)
	unpaid := model.FeeStatusUnpaid
	upd, err = svc.UpdateFee(context.Background(), rec.FeeRecordID, UpdateFeePatch{Status: &unpaid})
	require.NoError(t, err)
	assert.Equal(t, model.FeeStatusOverdue, upd.FeeRecordStatus)
}

func TestUpdateFeeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)

	_, err := svc.UpdateFee(context.Background(), uuid.New(), UpdateFeePatch{})
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteFeeBlockedByPayments(t *testing.T) {
	db := newTestDB(t)
	svc := newFeeServiceForTest(db)
	recon := newReconciliationForTest(db)
	sid := seedStudent(t, db, nil, 2026)

	rec, err := svc.CreateFee(context.Background(), CreateFeeInput{
		StudentID:    sid,
		Category:     model.FeeCategoryTuition,
		AcademicYear: 2026,
		TotalAmount:  money.FromSen(10000),
		DueDate:      tomorrow,
	})
	require.NoError(t, err)

	pay, err := recon.ApplyPayment(context.Background(), ApplyPaymentInput{
		FeeID:  rec.FeeRecordID,
		Amount: money.FromSen(4000),
		Method: model.PaymentMethodCash,
	})
	require.NoError(t, err)

	// masih ada payment aktif → 409
	err = svc.DeleteFee(context.Background(), rec.FeeRecordID)
	assert.True(t, errs.IsConflict(err))

	// setelah payment di-reverse, delete boleh
	require.NoError(t, recon.ReversePayment(context.Background(), pay.PaymentRecordID))
	require.NoError(t, svc.DeleteFee(context.Background(), rec.FeeRecordID))

	_, err = svc.GetFee(context.Background(), rec.FeeRecordID)
	assert.True(t, errs.IsNotFound(err))
}
