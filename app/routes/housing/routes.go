package housing

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/routes/auth"
)

func SetupHousingRoutes(app *fiber.App, store database.Store) {
	h := &handler{store: store}

	api := app.Group("/housing")
	api.Use(auth.Middleware(store))
	api.Post("/", h.SaveHousingAPI)
	api.Get("/", h.GetHousingAPI)
	api.Post("/delete", h.DeleteHousingAPI)
	api.Post("/all", h.SaveAllHousingAPI)
}
