// file: internals/helpers/json_response.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/helpers/errs"
)

/* ===============================
   Envelope JSON konsisten
   { code, status, message, data?, errors?, pagination? }
=================================*/

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusServiceUnavailable:
		return "TRANSIENT"
	default:
		return "INTERNAL"
	}
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    fiber.StatusOK,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":    fiber.StatusCreated,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

func JsonList(c *fiber.Ctx, message string, data any, pagination any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"code":    status,
		"status":  "error",
		"error":   statusToErrorCode(status),
		"message": message,
	})
}

// JsonValidationError: error validasi dengan detail per-field.
func JsonValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    fiber.StatusBadRequest,
		"status":  "error",
		"error":   "VALIDATION",
		"message": message,
		"errors":  fields,
	})
}

// JsonAppError memetakan error bertipe (errs.*) ke response JSON.
// Error tak dikenal → 500 dengan pesan asli (jangan dipakai untuk error sensitif).
func JsonAppError(c *fiber.Ctx, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}
	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	}
	var ce *errs.ConflictError
	if errors.As(err, &ce) {
		return JsonError(c, fiber.StatusConflict, ce.Error())
	}
	var te *errs.TransientError
	if errors.As(err, &te) {
		// retryable — 503 supaya client tahu boleh coba lagi
		return JsonError(c, fiber.StatusServiceUnavailable, te.Error())
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
