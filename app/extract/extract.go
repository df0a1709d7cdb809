// Package extract turns raw documents scraped from the campus portal
// into validated field maps. Parsing is pure: malformed input comes
// back as a ParseError, never as a panic, and nothing is persisted
// here.
package extract

// Kind tags the upstream document layout a raw submission claims to
// follow.
type Kind string

const (
	KindBalanceHTML     Kind = "balance_html"
	KindTransactionsCSV Kind = "transactions_csv"
	KindHousingHTML     Kind = "housing_html"
)

// ParseError reports a structurally malformed document. It is an
// expected outcome for untrusted input, reported to the caller before
// any state is touched.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

func parseFailure(reason string) error {
	return &ParseError{Reason: reason}
}
