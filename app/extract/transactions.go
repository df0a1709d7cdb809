package extract

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const noHistoryMarker = "No transaction history found for this date range."

// transactionTimeLayout matches the portal's CSV export timestamps,
// e.g. "9/15/2025 12:42PM".
const transactionTimeLayout = "1/2/2006 3:04PM"

// TransactionRow is one parsed row of a transaction CSV export, in
// chronological order after Transactions reverses the export.
type TransactionRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
}

// Transactions parses a CSV transaction export. The export lists the
// newest entry first with a header row on top; rows are reversed so
// callers see them earliest-first. Rows with an unexpected column
// count and the portal's "no history" sentinel row are skipped rather
// than failing the whole document.
func Transactions(raw string) ([]TransactionRow, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, parseFailure("malformed transaction document")
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Drop the header and reverse so rows run oldest to newest.
	records = records[1:]
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	var rows []TransactionRow
	for _, record := range records {
		if len(record) != 4 {
			continue
		}
		if record[0] == noHistoryMarker {
			continue
		}

		date, err := time.Parse(transactionTimeLayout, record[0])
		if err != nil {
			return nil, parseFailure("malformed transaction date: " + record[0])
		}
		amount, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, parseFailure("malformed transaction amount: " + record[2])
		}
		balance, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, parseFailure("malformed transaction balance: " + record[3])
		}

		rows = append(rows, TransactionRow{
			Date:        date,
			Description: record[1],
			Amount:      amount,
			Balance:     balance,
		})
	}

	return rows, nil
}
