package extract

import (
	"errors"
	"testing"
)

const balancePage = `
<html><body>
<div class="info-column">Dining Dollars<span>$123.45</span></div>
<div class="info-column">Regular Visits<span>10</span></div>
<div class="info-column">Guest Visits<span>2</span></div>
<div class="info-column">Add-on Visits<span>3</span></div>
</body></html>`

func TestBalance(t *testing.T) {
	result, err := Balance(balancePage)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if result.NoPlan {
		t.Fatal("expected a plan")
	}

	fields := result.Fields
	if got := fields.DiningDollars.StringFixed(2); got != "123.45" {
		t.Errorf("dining dollars = %s, want 123.45", got)
	}
	if fields.Swipes != 10 {
		t.Errorf("swipes = %d, want 10", fields.Swipes)
	}
	if fields.GuestSwipes != 2 {
		t.Errorf("guest swipes = %d, want 2", fields.GuestSwipes)
	}
	if fields.AddedSwipes != 3 {
		t.Errorf("added swipes = %d, want 3", fields.AddedSwipes)
	}
}

func TestBalanceNoPlan(t *testing.T) {
	result, err := Balance(`<html><body>You are not currently signed up for a dining plan.</body></html>`)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if !result.NoPlan {
		t.Fatal("expected NoPlan")
	}
	if result.Fields != nil {
		t.Fatal("expected no fields for a no-plan page")
	}
}

func TestBalanceTooFewColumns(t *testing.T) {
	page := `
<div class="info-column">Dining Dollars<span>$1.00</span></div>
<div class="info-column">Regular Visits<span>1</span></div>
<div class="info-column">Guest Visits<span>0</span></div>`

	_, err := Balance(page)
	if err == nil {
		t.Fatal("expected a parse failure")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestBalanceIgnoresUnknownLabels(t *testing.T) {
	page := `
<div class="info-column">Dining Dollars<span>$50.00</span></div>
<div class="info-column">Regular Visits<span>5</span></div>
<div class="info-column">Mystery Metric<span>99</span></div>
<div class="info-column">Guest Visits<span>1</span></div>`

	result, err := Balance(page)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if result.Fields.Swipes != 5 || result.Fields.GuestSwipes != 1 {
		t.Errorf("got swipes=%d guest=%d, want 5 and 1",
			result.Fields.Swipes, result.Fields.GuestSwipes)
	}
	if result.Fields.AddedSwipes != 0 {
		t.Errorf("added swipes = %d, want 0", result.Fields.AddedSwipes)
	}
}
