package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one row from a bank export file, with
// list-or-scalar text fields already coalesced into single strings.
type Transaction struct {
	ID               string
	Date             time.Time // zero when the export date was unparseable
	RawDate          string
	Name             string
	MerchantName     string
	Amount           decimal.Decimal // negative = money in (credit), positive = money out (debit)
	ExternalCategory string          // enrichment-provider taxonomy path, lower-cased and underscore-joined
	OriginalCategory string
	AccountID        string
}

// Account describes one bank account listed in an export file.
type Account struct {
	AccountID string
	Name      string
	Type      string
	Subtype   string
	SortCode  string
	Number    string
}

// Export is the parsed contents of a single bank export file.
type Export struct {
	Accounts     []Account
	Transactions []Transaction
}
