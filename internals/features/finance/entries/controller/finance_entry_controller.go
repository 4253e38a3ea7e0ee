// file: internals/features/finance/entries/controller/finance_entry_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/finance/entries/dto"
	"schoolku_backend/internals/features/finance/entries/model"
	"schoolku_backend/internals/features/finance/entries/service"
	"schoolku_backend/internals/features/finance/money"
	helper "schoolku_backend/internals/helpers"
)

type FinanceEntryHandler struct {
	Service *service.EntryService
}

// -----------------------------------------
// Create (POST /finance-entries)
// -----------------------------------------
func (h *FinanceEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.FinanceEntryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := dto.Validate(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	input := service.CreateEntryInput{
		Type:        model.EntryType(in.FinanceEntryType),
		Category:    model.EntryCategory(in.FinanceEntryCategory),
		Amount:      money.FromSen(in.FinanceEntryAmount),
		Description: in.FinanceEntryDescription,
	}
	if in.FinanceEntryDate != nil {
		input.Date = *in.FinanceEntryDate
	}

	e, err := h.Service.CreateEntry(c.UserContext(), input)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "finance entry created", dto.ToFinanceEntryResponse(*e))
}

// -----------------------------------------
// Update (PATCH /finance-entries/:id)
// Jenis (income/expense) tidak bisa diganti lewat update.
// -----------------------------------------
func (h *FinanceEntryHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FinanceEntryUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	patch := service.UpdateEntryPatch{
		Date:        in.FinanceEntryDate,
		Description: in.FinanceEntryDescription,
	}
	if in.FinanceEntryCategory != nil {
		cat := model.EntryCategory(*in.FinanceEntryCategory)
		patch.Category = &cat
	}
	if in.FinanceEntryAmount != nil {
		amt := money.FromSen(*in.FinanceEntryAmount)
		patch.Amount = &amt
	}

	e, err := h.Service.UpdateEntry(c.UserContext(), id, patch)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "finance entry updated", dto.ToFinanceEntryResponse(*e))
}

// -----------------------------------------
// Delete (DELETE /finance-entries/:id)
// -----------------------------------------
func (h *FinanceEntryHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Service.DeleteEntry(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "finance entry deleted", fiber.Map{"finance_entry_id": id})
}

// -----------------------------------------
// Detail (GET /finance-entries/:id)
// -----------------------------------------
func (h *FinanceEntryHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	e, err := h.Service.GetEntry(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "finance entry detail", dto.ToFinanceEntryResponse(*e))
}

func parseEntryFilter(c *fiber.Ctx) (service.EntryFilter, error) {
	var f service.EntryFilter
	if v := strings.ToLower(strings.TrimSpace(c.Query("type"))); v != "" {
		t := model.EntryType(v)
		if t.Valid() {
			f.Type = &t
		}
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("category"))); v != "" {
		cat := model.EntryCategory(v)
		f.Category = &cat
	}

	var err error
	if f.DateFrom, err = helper.ParseDateQuery(c, "date_from"); err != nil {
		return f, err
	}
	if f.DateTo, err = helper.ParseDateQuery(c, "date_to"); err != nil {
		return f, err
	}
	return f, nil
}

// -----------------------------------------
// List (GET /finance-entries)
// -----------------------------------------
func (h *FinanceEntryHandler) List(c *fiber.Ctx) error {
	f, err := parseEntryFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ParseFiber(c, "finance_entry_date", "desc", helper.DefaultOpts)

	list, total, err := h.Service.ListEntries(c.UserContext(), f, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "finance entries", dto.ToFinanceEntryResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Totals (GET /finance-entries/totals)
// -----------------------------------------
func (h *FinanceEntryHandler) Totals(c *fiber.Ctx) error {
	f, err := parseEntryFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	t, err := h.Service.Totals(c.UserContext(), f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "finance entry totals", fiber.Map{
		"total_income":      t.TotalIncome.Sen(),
		"total_income_idr":  t.TotalIncome.FormatIDR(),
		"total_expense":     t.TotalExpense.Sen(),
		"total_expense_idr": t.TotalExpense.FormatIDR(),
		"net":               t.Net.Sen(),
		"net_idr":           t.Net.FormatIDR(),
	})
}
