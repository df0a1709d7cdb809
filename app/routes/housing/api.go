package housing

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/extract"
	"github.com/pennlabs/penn-mobile-server/app/models"
	"github.com/pennlabs/penn-mobile-server/app/reconcile"
	"github.com/pennlabs/penn-mobile-server/app/routes/auth"
)

type handler struct {
	store database.Store
}

// SaveHousingAPI ingests the scraped housing assignment page for one
// academic year. An existing record for that year is only replaced
// when the incoming one is complete.
func (h *handler) SaveHousingAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	fields, err := extract.Housing(c.FormValue("html"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse HTML.",
		})
	}

	record := &models.HousingRecord{
		AccountID: account.ID,
		House:     fields.House,
		Room:      fields.Room,
		Address:   fields.Address,
		OffCampus: fields.OffCampus,
		StartYear: fields.StartYear,
		EndYear:   fields.EndYear,
	}
	outcome, err := reconcile.Housing(h.store, record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save housing record",
		})
	}

	return c.JSON(fiber.Map{
		"house":      record.House,
		"room":       record.Room,
		"address":    record.Address,
		"start":      record.StartYear,
		"end":        record.EndYear,
		"off_campus": record.OffCampus,
		"outcome":    outcome.String(),
	})
}

// GetHousingAPI returns the record for the current academic year.
func (h *handler) GetHousingAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	year := models.CurrentAcademicYear(time.Now())
	record, err := h.store.HousingForYear(account.ID, year)
	if err == database.ErrNotFound {
		return c.JSON(fiber.Map{"result": nil})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load housing record",
		})
	}

	return c.JSON(fiber.Map{
		"result": fiber.Map{
			"house":      record.House,
			"room":       record.Room,
			"address":    record.Address,
			"start":      record.StartYear,
			"end":        record.EndYear,
			"off_campus": record.OffCampus,
		},
	})
}

// DeleteHousingAPI removes every stored year for the account.
func (h *handler) DeleteHousingAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	if err := h.store.DeleteHousingForAccount(account.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete housing records",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

type housingItem struct {
	House     string `json:"house"`
	Room      string `json:"room"`
	Address   string `json:"address"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	OffCampus bool   `json:"off_campus"`
}

// SaveAllHousingAPI imports a batch of housing records, one per
// academic year. Each item is reconciled and committed on its own;
// malformed items are reported without aborting the rest.
func (h *handler) SaveAllHousingAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	var items []housingItem
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	records := make([]*models.HousingRecord, 0, len(items))
	skipped := 0
	for _, item := range items {
		if item.Start == 0 {
			skipped++
			continue
		}
		records = append(records, &models.HousingRecord{
			AccountID: account.ID,
			House:     item.House,
			Room:      item.Room,
			Address:   item.Address,
			OffCampus: item.OffCampus,
			StartYear: item.Start,
			EndYear:   item.End,
		})
	}

	results := reconcile.HousingBulk(h.store, records)
	return c.JSON(fiber.Map{
		"success": true,
		"skipped": skipped,
		"results": results,
	})
}
