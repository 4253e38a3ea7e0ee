// file: internals/features/finance/entries/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	entryapi "schoolku_backend/internals/features/finance/entries/controller"
	entrysvc "schoolku_backend/internals/features/finance/entries/service"
)

/*
Finance entry routes (buku kas umum; terpisah dari fee ledger).
*/
func FinanceEntryRoutes(api fiber.Router, db *gorm.DB) {
	h := &entryapi.FinanceEntryHandler{
		Service: entrysvc.NewEntryService(db),
	}

	{
		api.Post("/finance-entries", h.Create)
		api.Get("/finance-entries", h.List)
		api.Get("/finance-entries/totals", h.Totals)
		api.Get("/finance-entries/:id", h.GetByID)
		api.Patch("/finance-entries/:id", h.Update)
		api.Delete("/finance-entries/:id", h.Delete)
	}
}
