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

func TestCreateTemplateRejectsBothDueFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewTemplateService(db)

	offset := 14
	_, err := svc.CreateTemplate(context.Background(), CreateTemplateInput{
		ClassID:       uuid.New(),
		AcademicYear:  2026,
		Category:      model.FeeCategoryTuition,
		Amount:        money.FromSen(10000),
		DueDate:       &tomorrow,
		DueDaysOffset: &offset,
	})
	assert.True(t, errs.IsValidation(err))
}

func TestUpdateTemplateDueFieldsAreExclusive(t *testing.T) {
	db := newTestDB(t)
	svc := NewTemplateService(db)

	offset := 14
	tpl, err := svc.CreateTemplate(context.Background(), CreateTemplateInput{
		ClassID:       uuid.New(),
		AcademicYear:  2026,
		Category:      model.FeeCategoryTuition,
		Amount:        money.FromSen(10000),
		DueDaysOffset: &offset,
	})
	require.NoError(t, err)

	// set due date eksplisit → offset dihapus
	upd, err := svc.UpdateTemplate(context.Background(), tpl.FeeTemplateID, UpdateTemplatePatch{
		DueDate: &tomorrow,
	})
	require.NoError(t, err)
	assert.NotNil(t, upd.FeeTemplateDueDate)
	assert.Nil(t, upd.FeeTemplateDueDaysOffset)

	// balik ke offset → due date dihapus
	upd, err = svc.UpdateTemplate(context.Background(), tpl.FeeTemplateID, UpdateTemplatePatch{
		DueDaysOffset: &offset,
	})
	require.NoError(t, err)
	assert.Nil(t, upd.FeeTemplateDueDate)
	assert.NotNil(t, upd.FeeTemplateDueDaysOffset)
}

func TestUpdateTemplateDoesNotTouchGeneratedFees(t *testing.T) {
	db := newTestDB(t)
	templates := NewTemplateService(db)
	gen := newGeneratorForTest(db)

	classID := uuid.New()
	seedStudent(t, db, &classID, 2026)
	tpl := seedTemplate(t, templates, classID, 10000)

	_, err := gen.ExpandTemplate(context.Background(), tpl.FeeTemplateID, classID, 2026)
	require.NoError(t, err)

	bigger := money.FromSen(99999)
	_, err = templates.UpdateTemplate(context.Background(), tpl.FeeTemplateID, UpdateTemplatePatch{
		Amount: &bigger,
	})
	require.NoError(t, err)

	var fee model.FeeRecord
	require.NoError(t, db.First(&fee).Error)
	assert.Equal(t, money.FromSen(10000), fee.FeeRecordTotalAmount)
}

func TestDeleteTemplateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTemplateService(db)

	err := svc.DeleteTemplate(context.Background(), uuid.New())
	assert.True(t, errs.IsNotFound(err))
}

func TestListTemplatesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewTemplateService(db)

	classA := uuid.New()
	classB := uuid.New()
	seedTemplate(t, svc, classA, 10000)
	seedTemplate(t, svc, classB, 20000)

	all, err := svc.ListTemplates(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyA, err := svc.ListTemplates(context.Background(), &classA, nil)
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, classA, onlyA[0].FeeTemplateClassID)
}
