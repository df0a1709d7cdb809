package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pennlabs/penn-mobile-server/app/models"
)

// Postgres implements Store on a *sql.DB.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) AccountByID(id string) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT id, username, created_at FROM accounts WHERE id = $1`

	err := p.db.QueryRow(query, id).Scan(&account.ID, &account.Username, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (p *Postgres) CreateAccount(account *models.Account) error {
	query := `INSERT INTO accounts (id, username, created_at) VALUES ($1, $2, NOW())
			  RETURNING created_at`
	return p.db.QueryRow(query, account.ID, account.Username).Scan(&account.CreatedAt)
}

func (p *Postgres) AppendBalance(snapshot *models.BalanceSnapshot) error {
	query := `INSERT INTO dining_balances (account_id, dining_dollars, swipes, guest_swipes, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING id, created_at`

	err := p.db.QueryRow(query, snapshot.AccountID, snapshot.DiningDollars,
		snapshot.Swipes, snapshot.GuestSwipes).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append dining balance: %v", err)
	}
	return nil
}

func (p *Postgres) LatestBalance(accountID string) (*models.BalanceSnapshot, error) {
	snapshot := &models.BalanceSnapshot{}
	query := `SELECT id, account_id, dining_dollars, swipes, guest_swipes, created_at
			  FROM dining_balances WHERE account_id = $1
			  ORDER BY created_at DESC LIMIT 1`

	err := p.db.QueryRow(query, accountID).Scan(
		&snapshot.ID, &snapshot.AccountID, &snapshot.DiningDollars,
		&snapshot.Swipes, &snapshot.GuestSwipes, &snapshot.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (p *Postgres) BalanceHistory(accountID string) ([]*models.BalanceSnapshot, error) {
	query := `SELECT id, account_id, dining_dollars, swipes, guest_swipes, created_at
			  FROM dining_balances WHERE account_id = $1
			  ORDER BY created_at ASC`

	rows, err := p.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []*models.BalanceSnapshot{}
	for rows.Next() {
		snapshot := &models.BalanceSnapshot{}
		if err := rows.Scan(
			&snapshot.ID, &snapshot.AccountID, &snapshot.DiningDollars,
			&snapshot.Swipes, &snapshot.GuestSwipes, &snapshot.CreatedAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

func (p *Postgres) AppendTransactions(accountID string, records []*models.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO dining_transactions (account_id, date, description, amount, balance)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	for _, record := range records {
		err := tx.QueryRow(query, accountID, record.Date, record.Description,
			record.Amount, record.Balance).Scan(&record.ID)
		if err != nil {
			return fmt.Errorf("failed to append dining transaction: %v", err)
		}
	}

	return tx.Commit()
}

func (p *Postgres) LastTransactionDate(accountID string) (time.Time, bool, error) {
	var date time.Time
	query := `SELECT date FROM dining_transactions WHERE account_id = $1
			  ORDER BY date DESC LIMIT 1`

	err := p.db.QueryRow(query, accountID).Scan(&date)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return date, true, nil
}

func (p *Postgres) TransactionsForAccount(accountID string) ([]*models.TransactionRecord, error) {
	query := `SELECT id, account_id, date, description, amount, balance
			  FROM dining_transactions WHERE account_id = $1
			  ORDER BY date ASC`

	rows, err := p.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.TransactionRecord{}
	for rows.Next() {
		record := &models.TransactionRecord{}
		if err := rows.Scan(
			&record.ID, &record.AccountID, &record.Date,
			&record.Description, &record.Amount, &record.Balance,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (p *Postgres) InsertHousing(record *models.HousingRecord) (bool, error) {
	query := `INSERT INTO housing (account_id, house, room, address, off_campus, start_year, end_year, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			  ON CONFLICT (account_id, start_year) DO NOTHING`

	result, err := p.db.Exec(query, record.AccountID, record.House, record.Room,
		record.Address, record.OffCampus, record.StartYear, record.EndYear)
	if err != nil {
		return false, fmt.Errorf("failed to insert housing record: %v", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted == 1, nil
}

func (p *Postgres) UpdateHousing(record *models.HousingRecord) error {
	query := `UPDATE housing
			  SET house = $1, room = $2, address = $3, off_campus = $4, end_year = $5
			  WHERE account_id = $6 AND start_year = $7`

	_, err := p.db.Exec(query, record.House, record.Room, record.Address,
		record.OffCampus, record.EndYear, record.AccountID, record.StartYear)
	if err != nil {
		return fmt.Errorf("failed to update housing record: %v", err)
	}
	return nil
}

func (p *Postgres) HousingForYear(accountID string, startYear int) (*models.HousingRecord, error) {
	record := &models.HousingRecord{}
	query := `SELECT account_id, house, room, address, off_campus, start_year, end_year, created_at
			  FROM housing WHERE account_id = $1 AND start_year = $2`

	err := p.db.QueryRow(query, accountID, startYear).Scan(
		&record.AccountID, &record.House, &record.Room, &record.Address,
		&record.OffCampus, &record.StartYear, &record.EndYear, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (p *Postgres) HousingForAccount(accountID string) ([]*models.HousingRecord, error) {
	query := `SELECT account_id, house, room, address, off_campus, start_year, end_year, created_at
			  FROM housing WHERE account_id = $1
			  ORDER BY start_year ASC`

	rows, err := p.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.HousingRecord{}
	for rows.Next() {
		record := &models.HousingRecord{}
		if err := rows.Scan(
			&record.AccountID, &record.House, &record.Room, &record.Address,
			&record.OffCampus, &record.StartYear, &record.EndYear, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (p *Postgres) DeleteHousingForAccount(accountID string) error {
	query := `DELETE FROM housing WHERE account_id = $1`
	_, err := p.db.Exec(query, accountID)
	return err
}
