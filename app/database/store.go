package database

import (
	"errors"
	"time"

	"github.com/pennlabs/penn-mobile-server/app/models"
)

// ErrNotFound is returned by lookups with no matching row.
var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary for accounts and their dining and
// housing history. Balance and transaction writes are append-only;
// housing rows are keyed by (account, start year) and replaced in
// place. Callers hold a Store handle explicitly rather than reaching
// for a global connection.
type Store interface {
	AccountByID(id string) (*models.Account, error)
	CreateAccount(account *models.Account) error

	AppendBalance(snapshot *models.BalanceSnapshot) error
	LatestBalance(accountID string) (*models.BalanceSnapshot, error)
	BalanceHistory(accountID string) ([]*models.BalanceSnapshot, error)

	// AppendTransactions commits the batch in a single transaction:
	// either every row lands or none do.
	AppendTransactions(accountID string, rows []*models.TransactionRecord) error
	LastTransactionDate(accountID string) (time.Time, bool, error)
	TransactionsForAccount(accountID string) ([]*models.TransactionRecord, error)

	// InsertHousing reports false without error when a row for the
	// record's (account, start year) key already exists.
	InsertHousing(record *models.HousingRecord) (bool, error)
	UpdateHousing(record *models.HousingRecord) error
	HousingForYear(accountID string, startYear int) (*models.HousingRecord, error)
	HousingForAccount(accountID string) ([]*models.HousingRecord, error)
	DeleteHousingForAccount(accountID string) error
}
