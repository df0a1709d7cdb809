package database

import (
	"database/sql"
	"log"
)

// InitSchema ensures the tables and constraints the service relies on
// exist. The housing composite key is the enforcement mechanism for
// one record per account per academic year.
func InitSchema(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dining_balances (
			id BIGSERIAL PRIMARY KEY,
			account_id UUID NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			dining_dollars NUMERIC(10,2) NOT NULL,
			swipes INTEGER NOT NULL,
			guest_swipes INTEGER NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dining_transactions (
			id BIGSERIAL PRIMARY KEY,
			account_id UUID NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			date TIMESTAMP NOT NULL,
			description TEXT NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			balance NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS housing (
			account_id UUID NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			house TEXT NOT NULL DEFAULT '',
			room TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			off_campus BOOLEAN NOT NULL DEFAULT false,
			start_year INTEGER NOT NULL,
			end_year INTEGER NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (account_id, start_year)
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_dining_balances_account_created
			ON dining_balances(account_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_dining_transactions_account_date
			ON dining_transactions(account_id, date)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating index: %v", err)
		}
	}

	return nil
}
