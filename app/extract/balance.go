package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

const noPlanMarker = "You are not currently signed up"

// BalanceFields is the parsed content of a dining balance page.
// AddedSwipes are rolled into the regular swipe count by the caller.
type BalanceFields struct {
	DiningDollars decimal.Decimal
	Swipes        int
	GuestSwipes   int
	AddedSwipes   int
}

// BalanceResult distinguishes "parsed fine" from "the account has no
// dining plan", which the portal renders as a normal page rather than
// an error.
type BalanceResult struct {
	NoPlan bool
	Fields *BalanceFields
}

// Balance parses the dining balance page. The page renders four
// info-column blocks, each holding a label and a span with the value.
// Unrecognized labels are ignored; fewer than four blocks means the
// page layout changed and the document is rejected.
func Balance(raw string) (BalanceResult, error) {
	if strings.Contains(raw, noPlanMarker) {
		return BalanceResult{NoPlan: true}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return BalanceResult{}, parseFailure("malformed balance document")
	}

	columns := doc.Find("div.info-column")
	if columns.Length() < 4 {
		return BalanceResult{}, parseFailure("malformed balance document")
	}

	fields := &BalanceFields{}
	columns.Slice(0, 4).Each(func(_ int, col *goquery.Selection) {
		value := strings.TrimSpace(col.Find("span").First().Text())
		text := col.Text()
		switch {
		case strings.Contains(text, "Dining Dollars"):
			if d, err := decimal.NewFromString(strings.TrimPrefix(value, "$")); err == nil {
				fields.DiningDollars = d
			}
		case strings.Contains(text, "Regular Visits"):
			if n, err := strconv.Atoi(value); err == nil {
				fields.Swipes = n
			}
		case strings.Contains(text, "Guest Visits"):
			if n, err := strconv.Atoi(value); err == nil {
				fields.GuestSwipes = n
			}
		case strings.Contains(text, "Add-on Visits"):
			if n, err := strconv.Atoi(value); err == nil {
				fields.AddedSwipes = n
			}
		}
	})

	return BalanceResult{Fields: fields}, nil
}
