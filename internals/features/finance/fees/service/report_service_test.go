package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/money"
	helper "schoolku_backend/internals/helpers"
)

func TestReportSummariesPreserveLedgerEquation(t *testing.T) {
	db := newTestDB(t)
	fees := newFeeServiceForTest(db)
	recon := newReconciliationForTest(db)
	reports := NewReportService(db)

	classA := uuid.New()
	classB := uuid.New()

	sidA1 := seedStudent(t, db, &classA, 2026)
	sidA2 := seedStudent(t, db, &classA, 2026)
	sidB1 := seedStudent(t, db, &classB, 2026)

	feeA1 := seedFee(t, fees, sidA1, 10000)
	seedFee(t, fees, sidA2, 20000)
	seedFee(t, fees, sidB1, 5000)

	_, err := recon.ApplyPayment(context.Background(), ApplyPaymentInput{
		FeeID:  feeA1.FeeRecordID,
		Amount: money.FromSen(4000),
		Method: model.PaymentMethodCash,
	})
	require.NoError(t, err)

	// billed == collected + outstanding, per kelas dan agregat
	rows, err := reports.SummaryByClass(context.Background(), FeeFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var billed, collected, outstanding money.Money
	for _, r := range rows {
		assert.Equal(t, r.TotalBilled, r.TotalCollected.Add(r.TotalOutstanding))
		billed = billed.Add(r.TotalBilled)
		collected = collected.Add(r.TotalCollected)
		outstanding = outstanding.Add(r.TotalOutstanding)
	}
	assert.Equal(t, money.FromSen(35000), billed)
	assert.Equal(t, money.FromSen(4000), collected)
	assert.Equal(t, money.FromSen(31000), outstanding)

	// agregasi per status harus menjumlah ke total yang sama
	statusRows, err := reports.SummaryByStatus(context.Background(), FeeFilter{})
	require.NoError(t, err)
	var statusBilled money.Money
	var nFees int64
	for _, r := range statusRows {
		statusBilled = statusBilled.Add(r.TotalBilled)
		nFees += r.FeeCount
	}
	assert.Equal(t, billed, statusBilled)
	assert.EqualValues(t, 3, nFees)
}

func TestReportListFeesFilters(t *testing.T) {
	db := newTestDB(t)
	fees := newFeeServiceForTest(db)
	recon := newReconciliationForTest(db)
	reports := NewReportService(db)

	classA := uuid.New()
	classB := uuid.New()
	sidA := seedStudent(t, db, &classA, 2026)
	sidB := seedStudent(t, db, &classB, 2026)

	feeA := seedFee(t, fees, sidA, 10000)
	seedFee(t, fees, sidB, 5000)

	_, err := recon.ApplyPayment(context.Background(), ApplyPaymentInput{
		FeeID:  feeA.FeeRecordID,
		Amount: money.FromSen(4000),
		Method: model.PaymentMethodCash,
	})
	require.NoError(t, err)

	p := helper.Params{Page: 1, PerPage: 25}

	// filter kelas
	list, total, err := reports.ListFees(context.Background(), FeeFilter{ClassID: &classA}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, sidA, list[0].FeeRecordStudentID)
	assert.Equal(t, "Siswa Test", list[0].StudentName)
	assert.Equal(t, money.FromSen(6000), list[0].Outstanding)

	// filter status
	partial := model.FeeStatusPartial
	list, total, err = reports.ListFees(context.Background(), FeeFilter{Status: &partial}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, feeA.FeeRecordID, list[0].FeeRecordID)

	// filter rentang due date yang tidak kena apa pun
	farFuture := now.AddDate(1, 0, 0)
	list, total, err = reports.ListFees(context.Background(), FeeFilter{DateFrom: &farFuture}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, list)
}

func TestReportPagination(t *testing.T) {
	db := newTestDB(t)
	fees := newFeeServiceForTest(db)
	reports := NewReportService(db)

	classID := uuid.New()
	for i := 0; i < 5; i++ {
		sid := seedStudent(t, db, &classID, 2026)
		seedFee(t, fees, sid, 10000)
	}

	list, total, err := reports.ListFees(context.Background(), FeeFilter{}, helper.Params{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, list, 2)

	last, _, err := reports.ListFees(context.Background(), FeeFilter{}, helper.Params{Page: 3, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}
