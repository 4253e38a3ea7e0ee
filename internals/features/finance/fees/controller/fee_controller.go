// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/finance/money"
	helper "schoolku_backend/internals/helpers"
)

type FeeHandler struct {
	Service  *service.FeeService
	Checkout *service.CheckoutService
}

// -----------------------------------------
// Create (POST /fees)
// -----------------------------------------
func (h *FeeHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := dto.Validate(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.Service.CreateFee(c.UserContext(), service.CreateFeeInput{
		StudentID:         in.FeeStudentID,
		Category:          model.FeeCategory(in.FeeCategory),
		AcademicYear:      in.FeeAcademicYear,
		TotalAmount:       money.FromSen(in.FeeTotalAmount),
		InitialPaidAmount: money.FromSen(in.FeeInitialPaidAmount),
		DueDate:           in.FeeDueDate,
		Description:       in.FeeDescription,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "fee created", dto.ToFeeResponse(*rec))
}

// -----------------------------------------
// Update (PATCH /fees/:id)
// -----------------------------------------
func (h *FeeHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FeeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	patch := service.UpdateFeePatch{
		AcademicYear: in.FeeAcademicYear,
		TotalAmount:  dto.SenPtr(in.FeeTotalAmount),
		DueDate:      in.FeeDueDate,
		Description:  in.FeeDescription,
	}
	if in.FeeCategory != nil {
		cat := model.FeeCategory(*in.FeeCategory)
		patch.Category = &cat
	}
	if in.FeeStatus != nil {
		st := model.FeeStatus(*in.FeeStatus)
		patch.Status = &st
	}

	rec, err := h.Service.UpdateFee(c.UserContext(), id, patch)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "fee updated", dto.ToFeeResponse(*rec))
}

// -----------------------------------------
// Delete (DELETE /fees/:id)
// Ditolak (409) selama masih ada payment yang menunjuk ke fee ini.
// -----------------------------------------
func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Service.DeleteFee(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "fee deleted", fiber.Map{"fee_id": id})
}

// -----------------------------------------
// Detail (GET /fees/:id) — fee + daftar payment aktifnya
// -----------------------------------------
func (h *FeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	rec, err := h.Service.GetFee(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	payments, err := h.Service.ListPayments(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	return helper.JsonOK(c, "fee detail", fiber.Map{
		"fee":      dto.ToFeeResponse(*rec),
		"payments": dto.ToPaymentResponses(payments),
	})
}

// -----------------------------------------
// Checkout gateway (POST /fees/:id/checkout)
// Tidak memutasi ledger; hanya membuat transaksi Snap.
// -----------------------------------------
func (h *FeeHandler) CreateCheckout(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in struct {
		CustomerName  string `json:"customer_name"`
		CustomerEmail string `json:"customer_email"`
	}
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	res, err := h.Checkout.CreateCheckout(c.UserContext(), id, in.CustomerName, in.CustomerEmail)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "checkout created", res)
}
