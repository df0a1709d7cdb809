package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/pennlabs/penn-mobile-server/app/config"
	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/models"
	"github.com/pennlabs/penn-mobile-server/app/routes/auth"
)

// Creates an account row and prints a signed device token for it.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: add_account <username>")
		return
	}
	username := os.Args[1]

	// Initialize database connection
	config.InitDB()
	if err := database.InitSchema(config.GetDB()); err != nil {
		fmt.Printf("Error initializing schema: %v\n", err)
		return
	}
	store := database.NewPostgres(config.GetDB())

	account := &models.Account{
		ID:       uuid.New().String(),
		Username: username,
	}
	if err := store.CreateAccount(account); err != nil {
		fmt.Printf("Error creating account: %v\n", err)
		return
	}

	token, err := auth.GenerateAccountToken(account.ID)
	if err != nil {
		fmt.Printf("Error generating token: %v\n", err)
		return
	}

	fmt.Printf("Account created: %s (%s)\n", account.Username, account.ID)
	fmt.Printf("Token: %s\n", token)
}
