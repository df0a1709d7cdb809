// Package reconcile decides how incoming scraped data lands against
// persisted state: plain appends for balance snapshots, strictly-newer
// filtering for transaction ledgers, and conditional replacement for
// housing records.
package reconcile

import (
	"github.com/pennlabs/penn-mobile-server/app/database"
	"github.com/pennlabs/penn-mobile-server/app/extract"
	"github.com/pennlabs/penn-mobile-server/app/models"
)

// Outcome reports what a reconciliation did. Skips are legitimate
// idempotent no-ops, not errors, and are always reported.
type Outcome int

const (
	Inserted Outcome = iota + 1
	Updated
	SkippedDuplicate
	SkippedIncomplete
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case SkippedDuplicate:
		return "skipped_duplicate"
	case SkippedIncomplete:
		return "skipped_incomplete"
	}
	return "unknown"
}

// Balance appends a new snapshot. Snapshots are append-only, so no
// conflict is possible; add-on visits are folded into the regular
// swipe count.
func Balance(store database.Store, accountID string, fields *extract.BalanceFields) (*models.BalanceSnapshot, error) {
	snapshot := &models.BalanceSnapshot{
		AccountID:     accountID,
		DiningDollars: fields.DiningDollars,
		Swipes:        fields.Swipes + fields.AddedSwipes,
		GuestSwipes:   fields.GuestSwipes,
	}
	if err := store.AppendBalance(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Transactions ingests parsed ledger rows, keeping only rows dated
// strictly after the account's last recorded transaction. Resubmitting
// an overlapping export therefore inserts only the genuinely new
// suffix. The surviving rows are committed as one batch.
func Transactions(store database.Store, accountID string, rows []extract.TransactionRow) (inserted, skipped int, err error) {
	lastDate, hasAny, err := store.LastTransactionDate(accountID)
	if err != nil {
		return 0, 0, err
	}

	var staged []*models.TransactionRecord
	for _, row := range rows {
		if hasAny && !row.Date.After(lastDate) {
			skipped++
			continue
		}
		staged = append(staged, &models.TransactionRecord{
			AccountID:   accountID,
			Date:        row.Date,
			Description: row.Description,
			Amount:      row.Amount,
			Balance:     row.Balance,
		})
		lastDate = row.Date
		hasAny = true
	}

	if err := store.AppendTransactions(accountID, staged); err != nil {
		return 0, 0, err
	}
	return len(staged), skipped, nil
}

// Housing inserts a record keyed by (account, start year). When the
// key is already taken the incoming record overwrites the stored one
// only if it is complete; an incomplete submission never degrades
// previously stored data. The conflict path writes without re-reading
// the stored row, so concurrent submissions for the same key cannot
// interleave a stale read.
func Housing(store database.Store, record *models.HousingRecord) (Outcome, error) {
	inserted, err := store.InsertHousing(record)
	if err != nil {
		return 0, err
	}
	if inserted {
		return Inserted, nil
	}

	if !record.IsComplete() {
		return SkippedIncomplete, nil
	}
	if err := store.UpdateHousing(record); err != nil {
		return 0, err
	}
	return Updated, nil
}

// BulkHousingResult reports the fate of one record of a bulk import.
type BulkHousingResult struct {
	StartYear int     `json:"start"`
	Outcome   string  `json:"outcome"`
	Error     *string `json:"error"`
}

// HousingBulk reconciles each record independently. A failure on one
// record is recorded in its result and does not abort records already
// committed, nor the ones that follow.
func HousingBulk(store database.Store, records []*models.HousingRecord) []BulkHousingResult {
	results := make([]BulkHousingResult, 0, len(records))
	for _, record := range records {
		result := BulkHousingResult{StartYear: record.StartYear}
		outcome, err := Housing(store, record)
		if err != nil {
			message := err.Error()
			result.Error = &message
		} else {
			result.Outcome = outcome.String()
		}
		results = append(results, result)
	}
	return results
}
