// file: internals/features/finance/fees/controller/report_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

type ReportHandler struct {
	Reports *service.ReportService
}

// filter dibaca dari query string; enum yang tidak dikenal diabaikan saja
// (laporan tetap jalan tanpa filter tsb), tanggal salah format → error 400.
func parseFeeFilter(c *fiber.Ctx) (service.FeeFilter, error) {
	var f service.FeeFilter

	if v := c.Query("class_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.ClassID = &id
		}
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		st := model.FeeStatus(v)
		if st.Valid() {
			f.Status = &st
		}
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("category"))); v != "" {
		cat := model.FeeCategory(v)
		if cat.Valid() {
			f.Category = &cat
		}
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
// List (GET /reports/fees)
// -----------------------------------------
func (h *ReportHandler) ListFees(c *fiber.Ctx) error {
	f, err := parseFeeFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ParseFiber(c, "fee_record_due_date", "asc", helper.DefaultOpts)

	list, total, err := h.Reports.ListFees(c.UserContext(), f, p)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	rows := make([]fiber.Map, 0, len(list))
	for _, r := range list {
		rows = append(rows, fiber.Map{
			"fee":              dto.ToFeeResponse(r.FeeRecord),
			"student_name":     r.StudentName,
			"student_class_id": r.StudentClassID,
			"outstanding":      r.Outstanding.Sen(),
			"outstanding_idr":  r.Outstanding.FormatIDR(),
		})
	}
	return helper.JsonList(c, "fee report", rows, helper.BuildMeta(total, p))
}

// -----------------------------------------
// Summary per kelas (GET /reports/fees/summary/class)
// -----------------------------------------
func (h *ReportHandler) SummaryByClass(c *fiber.Ctx) error {
	f, err := parseFeeFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.Reports.SummaryByClass(c.UserContext(), f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "fee summary by class", rows)
}

// -----------------------------------------
// Summary per status (GET /reports/fees/summary/status)
// -----------------------------------------
func (h *ReportHandler) SummaryByStatus(c *fiber.Ctx) error {
	f, err := parseFeeFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.Reports.SummaryByStatus(c.UserContext(), f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "fee summary by status", rows)
}
