package dining

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/routes/auth"
)

func SetupDiningRoutes(app *fiber.App, store database.Store, tz *time.Location) {
	h := &handler{store: store, tz: tz}

	api := app.Group("/dining")
	api.Use(auth.Middleware(store))
	api.Post("/balance/v2", h.ParseAndSaveBalanceAPI)
	api.Post("/balance", h.SaveBalanceAPI)
	api.Get("/balance", h.GetBalanceAPI)
	api.Post("/transactions", h.SaveTransactionsAPI)
	api.Get("/transactions", h.GetTransactionsAPI)
}
