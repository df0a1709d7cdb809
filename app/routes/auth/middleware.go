package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/models"
)

// Middleware resolves the calling account from the request's device
// token and stores it in c.Locals("account"). Requests that cannot be
// resolved fail here, before any ingestion logic runs.
func Middleware(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("X-Account-Token")
		if tokenString == "" {
			header := c.Get("Authorization")
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
		if tokenString == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "No account token provided",
			})
		}

		claims, err := ValidateAccountToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid account token",
			})
		}

		account, err := store.AccountByID(claims.AccountID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Account not found",
			})
		}

		c.Locals("account", account)
		return c.Next()
	}
}

// CurrentAccount returns the account resolved by Middleware.
func CurrentAccount(c *fiber.Ctx) *models.Account {
	return c.Locals("account").(*models.Account)
}
