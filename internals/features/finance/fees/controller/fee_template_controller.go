// file: internals/features/finance/fees/controller/fee_template_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/finance/money"
	helper "schoolku_backend/internals/helpers"
)

type FeeTemplateHandler struct {
	Templates *service.TemplateService
	Generator *service.GeneratorService
}

// -----------------------------------------
// Create (POST /fee-templates)
// -----------------------------------------
func (h *FeeTemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeTemplateCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := dto.Validate(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tpl, err := h.Templates.CreateTemplate(c.UserContext(), service.CreateTemplateInput{
		ClassID:       in.FeeTemplateClassID,
		AcademicYear:  in.FeeTemplateAcademicYear,
		Category:      model.FeeCategory(in.FeeTemplateCategory),
		Amount:        money.FromSen(in.FeeTemplateAmount),
		DueDate:       in.FeeTemplateDueDate,
		DueDaysOffset: in.FeeTemplateDueDaysOffset,
		Description:   in.FeeTemplateDescription,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "fee template created", dto.ToFeeTemplateResponse(*tpl))
}

// -----------------------------------------
// Update (PATCH /fee-templates/:id)
// -----------------------------------------
func (h *FeeTemplateHandler) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FeeTemplateUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	patch := service.UpdateTemplatePatch{
		Amount:        dto.SenPtr(in.FeeTemplateAmount),
		DueDate:       in.FeeTemplateDueDate,
		DueDaysOffset: in.FeeTemplateDueDaysOffset,
		Description:   in.FeeTemplateDescription,
	}
	if in.FeeTemplateCategory != nil {
		cat := model.FeeCategory(*in.FeeTemplateCategory)
		patch.Category = &cat
	}

	tpl, err := h.Templates.UpdateTemplate(c.UserContext(), id, patch)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "fee template updated", dto.ToFeeTemplateResponse(*tpl))
}

// -----------------------------------------
// Delete (DELETE /fee-templates/:id)
// -----------------------------------------
func (h *FeeTemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Templates.DeleteTemplate(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "fee template deleted", fiber.Map{"fee_template_id": id})
}

// -----------------------------------------
// Detail (GET /fee-templates/:id)
// -----------------------------------------
func (h *FeeTemplateHandler) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	tpl, err := h.Templates.GetTemplate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "fee template detail", dto.ToFeeTemplateResponse(*tpl))
}

// -----------------------------------------
// List (GET /fee-templates?class_id=&year=)
// -----------------------------------------
func (h *FeeTemplateHandler) List(c *fiber.Ctx) error {
	var classID *uuid.UUID
	if v := c.Query("class_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			classID = &id
		}
	}
	var year *int16
	if v := strings.TrimSpace(c.Query("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			yy := int16(y)
			year = &yy
		}
	}

	list, err := h.Templates.ListTemplates(c.UserContext(), classID, year)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "fee templates", dto.ToFeeTemplateResponses(list))
}

// -----------------------------------------
// Expand (POST /fee-templates/:id/expand)
// Idempoten: run kedua dengan argumen sama → created=0, skipped=N.
// -----------------------------------------
func (h *FeeTemplateHandler) Expand(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FeeTemplateExpandDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := dto.Validate(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.Generator.ExpandTemplate(c.UserContext(), id, in.TargetClassID, in.TargetAcademicYear)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "fee template expanded", res)
}
