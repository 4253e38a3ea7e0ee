// file: internals/route/routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	entryRoutes "schoolku_backend/internals/features/finance/entries/routes"
	feeRoutes "schoolku_backend/internals/features/finance/fees/routes"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================
	api := app.Group("/api/finance")

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Fee routes...")
	feeRoutes.FeeRoutes(api, db)

	log.Println("[INFO] Mounting Finance entry routes...")
	entryRoutes.FinanceEntryRoutes(api, db)
}
