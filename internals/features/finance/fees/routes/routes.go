// file: internals/features/finance/fees/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeapi "schoolku_backend/internals/features/finance/fees/controller"
	feesvc "schoolku_backend/internals/features/finance/fees/service"
	studentsvc "schoolku_backend/internals/features/students/service"
	"schoolku_backend/internals/middlewares"
)

/*
Fee ledger routes (CRUD, reconciliation, templates, reports, checkout).
*/
func FeeRoutes(api fiber.Router, db *gorm.DB) {
	students := studentsvc.NewGormDirectory(db)

	fees := &feeapi.FeeHandler{
		Service:  feesvc.NewFeeService(db, students),
		Checkout: feesvc.NewCheckoutService(db),
	}
	payments := &feeapi.PaymentHandler{
		Reconciliation: feesvc.NewReconciliationService(db),
	}
	templates := &feeapi.FeeTemplateHandler{
		Templates: feesvc.NewTemplateService(db),
		Generator: feesvc.NewGeneratorService(db, students),
	}
	reports := &feeapi.ReportHandler{
		Reports: feesvc.NewReportService(db),
	}

	{
		// =========================
		// Fee Records
		// =========================
		api.Post("/fees", fees.Create)
		api.Get("/fees/:id", fees.GetByID)
		api.Patch("/fees/:id", fees.Update)
		api.Delete("/fees/:id", fees.Delete)
		api.Post("/fees/:id/checkout", fees.CreateCheckout)

		// =========================
		// Payments (reconciliation) — limiter khusus, endpoint ini
		// memegang row lock FOR UPDATE di DB
		// =========================
		payLimit := middlewares.PaymentRateLimiter()
		api.Post("/payments", payLimit, payments.Apply)
		api.Patch("/payments/:id", payLimit, payments.Update)
		api.Delete("/payments/:id", payLimit, payments.Reverse)

		// =========================
		// Fee Templates + bulk generate
		// =========================
		api.Post("/fee-templates", templates.Create)
		api.Get("/fee-templates", templates.List)
		api.Get("/fee-templates/:id", templates.GetByID)
		api.Patch("/fee-templates/:id", templates.Update)
		api.Delete("/fee-templates/:id", templates.Delete)
		api.Post("/fee-templates/:id/expand", templates.Expand)

		// =========================
		// Reports (readonly)
		// =========================
		api.Get("/reports/fees", reports.ListFees)
		api.Get("/reports/fees/summary/class", reports.SummaryByClass)
		api.Get("/reports/fees/summary/status", reports.SummaryByStatus)
	}
}
