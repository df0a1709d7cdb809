package database

import (
	"sort"
	"sync"
	"time"

	"github.com/pennlabs/penn-mobile-server/app/models"
)

// Memory is an in-memory implementation of Store. It is safe for
// concurrent use and backs the test suites; data is lost on restart.
type Memory struct {
	mu           sync.RWMutex
	accounts     map[string]*models.Account
	balances     map[string][]*models.BalanceSnapshot
	transactions map[string][]*models.TransactionRecord
	housing      map[string]map[int]*models.HousingRecord
	nextID       int64
}

func NewMemory() *Memory {
	return &Memory{
		accounts:     make(map[string]*models.Account),
		balances:     make(map[string][]*models.BalanceSnapshot),
		transactions: make(map[string][]*models.TransactionRecord),
		housing:      make(map[string]map[int]*models.HousingRecord),
	}
}

func (m *Memory) AccountByID(id string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, exists := m.accounts[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *Memory) CreateAccount(account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	copied := *account
	m.accounts[account.ID] = &copied
	return nil
}

func (m *Memory) AppendBalance(snapshot *models.BalanceSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	snapshot.ID = m.nextID
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}
	copied := *snapshot
	m.balances[snapshot.AccountID] = append(m.balances[snapshot.AccountID], &copied)
	return nil
}

func (m *Memory) LatestBalance(accountID string) (*models.BalanceSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshots := m.balances[accountID]
	if len(snapshots) == 0 {
		return nil, ErrNotFound
	}

	latest := snapshots[0]
	for _, snapshot := range snapshots[1:] {
		if !snapshot.CreatedAt.Before(latest.CreatedAt) {
			latest = snapshot
		}
	}
	copied := *latest
	return &copied, nil
}

func (m *Memory) BalanceHistory(accountID string) ([]*models.BalanceSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := []*models.BalanceSnapshot{}
	for _, snapshot := range m.balances[accountID] {
		copied := *snapshot
		history = append(history, &copied)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})
	return history, nil
}

func (m *Memory) AppendTransactions(accountID string, records []*models.TransactionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, record := range records {
		m.nextID++
		record.ID = m.nextID
		copied := *record
		copied.AccountID = accountID
		m.transactions[accountID] = append(m.transactions[accountID], &copied)
	}
	return nil
}

func (m *Memory) LastTransactionDate(accountID string) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.transactions[accountID]
	if len(records) == 0 {
		return time.Time{}, false, nil
	}

	last := records[0].Date
	for _, record := range records[1:] {
		if record.Date.After(last) {
			last = record.Date
		}
	}
	return last, true, nil
}

func (m *Memory) TransactionsForAccount(accountID string) ([]*models.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := []*models.TransactionRecord{}
	for _, record := range m.transactions[accountID] {
		copied := *record
		records = append(records, &copied)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func (m *Memory) InsertHousing(record *models.HousingRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	years, exists := m.housing[record.AccountID]
	if !exists {
		years = make(map[int]*models.HousingRecord)
		m.housing[record.AccountID] = years
	}
	if _, taken := years[record.StartYear]; taken {
		return false, nil
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	copied := *record
	years[record.StartYear] = &copied
	return true, nil
}

func (m *Memory) UpdateHousing(record *models.HousingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	years := m.housing[record.AccountID]
	existing, exists := years[record.StartYear]
	if !exists {
		return ErrNotFound
	}

	existing.House = record.House
	existing.Room = record.Room
	existing.Address = record.Address
	existing.OffCampus = record.OffCampus
	existing.EndYear = record.EndYear
	return nil
}

func (m *Memory) HousingForYear(accountID string, startYear int) (*models.HousingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.housing[accountID][startYear]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (m *Memory) HousingForAccount(accountID string) ([]*models.HousingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := []*models.HousingRecord{}
	for _, record := range m.housing[accountID] {
		copied := *record
		records = append(records, &copied)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartYear < records[j].StartYear
	})
	return records, nil
}

func (m *Memory) DeleteHousingForAccount(accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.housing, accountID)
	return nil
}
