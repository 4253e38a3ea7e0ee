// file: internals/features/finance/fees/controller/payment_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/finance/money"
	helper "schoolku_backend/internals/helpers"
)

type PaymentHandler struct {
	Reconciliation *service.ReconciliationService
}

// -----------------------------------------
// Apply (POST /payments)
// Satu unit atomik: insert payment + increment paid + status ulang.
// -----------------------------------------
func (h *PaymentHandler) Apply(c *fiber.Ctx) error {
	var in dto.PaymentApplyDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := dto.Validate(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	input := service.ApplyPaymentInput{
		FeeID:         in.PaymentFeeID,
		Amount:        money.FromSen(in.PaymentAmount),
		Method:        model.PaymentMethod(in.PaymentMethod),
		TransactionID: in.PaymentTransactionID,
		Note:          in.PaymentNote,
	}
	if in.PaymentDate != nil {
		input.Date = *in.PaymentDate
	}

	pay, err := h.Reconciliation.ApplyPayment(c.UserContext(), input)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "payment applied", dto.ToPaymentResponse(*pay))
}

// -----------------------------------------
// Update (PATCH /payments/:id)
// Delta nominal diterapkan atomik ke paid amount fee induk.
// -----------------------------------------
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.PaymentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := dto.Validate(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	input := service.UpdatePaymentInput{
		NewAmount:     money.FromSen(in.PaymentAmount),
		TransactionID: in.PaymentTransactionID,
		Note:          in.PaymentNote,
	}
	if in.PaymentMethod != nil {
		m := model.PaymentMethod(*in.PaymentMethod)
		input.Method = &m
	}
	if in.PaymentDate != nil {
		d := *in.PaymentDate
		input.Date = &d
	}

	pay, err := h.Reconciliation.UpdatePayment(c.UserContext(), id, input)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "payment updated", dto.ToPaymentResponse(*pay))
}

// -----------------------------------------
// Reverse (DELETE /payments/:id)
// -----------------------------------------
func (h *PaymentHandler) Reverse(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Reconciliation.ReversePayment(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "payment reversed", fiber.Map{
		"payment_id":  id,
		"reversed_at": time.Now(),
	})
}
