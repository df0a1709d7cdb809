package dining

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/pennlabs/penn-mobile-server/app/config"
	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/extract"
	"github.com/pennlabs/penn-mobile-server/app/models"
	"github.com/pennlabs/penn-mobile-server/app/reconcile"
	"github.com/pennlabs/penn-mobile-server/app/routes/auth"
)

type handler struct {
	store database.Store
	tz    *time.Location
}

// ParseAndSaveBalanceAPI ingests the scraped dining balance page and
// appends a snapshot. A "no plan" page is a successful call that
// writes nothing.
func (h *handler) ParseAndSaveBalanceAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	result, err := extract.Balance(c.FormValue("html"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Something went wrong parsing HTML.",
		})
	}
	if result.NoPlan {
		return c.JSON(fiber.Map{"hasPlan": false, "balance": nil, "error": nil})
	}

	snapshot, err := reconcile.Balance(h.store, account.ID, result.Fields)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save dining balance",
		})
	}

	return c.JSON(fiber.Map{
		"hasPlan": true,
		"balance": fiber.Map{
			"dollars":      snapshot.DiningDollars.InexactFloat64(),
			"swipes":       snapshot.Swipes,
			"guest_swipes": snapshot.GuestSwipes,
		},
		"error": nil,
	})
}

// SaveBalanceAPI is the legacy direct-form path: the client submits
// already-parsed numbers instead of the raw page.
func (h *handler) SaveBalanceAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	dollarsStr := c.FormValue("dining_dollars")
	swipesStr := c.FormValue("swipes")
	guestSwipesStr := c.FormValue("guest_swipes")
	if dollarsStr == "" || swipesStr == "" || guestSwipesStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Field missing",
		})
	}

	dollars, err := decimal.NewFromString(dollarsStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid dining_dollars value",
		})
	}
	swipes, err := strconv.Atoi(swipesStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid swipes value",
		})
	}
	guestSwipes, err := strconv.Atoi(guestSwipesStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid guest_swipes value",
		})
	}

	fields := &extract.BalanceFields{
		DiningDollars: dollars,
		Swipes:        swipes,
		GuestSwipes:   guestSwipes,
	}
	if _, err := reconcile.Balance(h.store, account.ID, fields); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save dining balance",
		})
	}

	return c.JSON(fiber.Map{"success": true, "error": nil})
}

// GetBalanceAPI returns the snapshot with the greatest created_at,
// its timestamp rendered in the campus timezone.
func (h *handler) GetBalanceAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	snapshot, err := h.store.LatestBalance(account.ID)
	if err == database.ErrNotFound {
		return c.JSON(fiber.Map{"balance": nil})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load dining balance",
		})
	}

	local := snapshot.CreatedAt.In(h.tz)
	timestamp := local.Format("2006-01-02T15:04:05") + "-" + config.GMTOffset(h.tz, snapshot.CreatedAt)

	return c.JSON(fiber.Map{
		"balance": fiber.Map{
			"dining_dollars": snapshot.DiningDollars.InexactFloat64(),
			"swipes":         snapshot.Swipes,
			"guest_swipes":   snapshot.GuestSwipes,
			"timestamp":      timestamp,
		},
	})
}

// SaveTransactionsAPI ingests a CSV export of the dining dollar
// ledger. Rows already recorded are skipped, so overlapping exports
// can be resubmitted freely.
func (h *handler) SaveTransactionsAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	rows, err := extract.Transactions(c.FormValue("transactions"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	inserted, skipped, err := reconcile.Transactions(h.store, account.ID, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save dining transactions",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"error":    nil,
		"inserted": inserted,
		"skipped":  skipped,
	})
}

// GetTransactionsAPI returns the full ledger in chronological order.
func (h *handler) GetTransactionsAPI(c *fiber.Ctx) error {
	account := auth.CurrentAccount(c)

	records, err := h.store.TransactionsForAccount(account.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load dining transactions",
		})
	}

	transactions := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, transactionJSON(record))
	}
	return c.JSON(fiber.Map{"transactions": transactions})
}

func transactionJSON(record *models.TransactionRecord) fiber.Map {
	return fiber.Map{
		"date":        record.Date.Format("2006-01-02T15:04:05"),
		"description": record.Description,
		"amount":      record.Amount.InexactFloat64(),
		"balance":     record.Balance.InexactFloat64(),
	}
}
