package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcaflow-dev/mcaflow/internal/model"
)

// PlaidParser parses Plaid-style JSON exports: a top-level object
// with "accounts" and "transactions" arrays. Field values arriving
// as lists or odd scalar types are coalesced at this boundary so the
// rest of the system deals only in strings and decimals.
type PlaidParser struct{}

const plaidDateFormat = "2006-01-02"

type plaidExport struct {
	Accounts     []plaidAccount     `json:"accounts"`
	Transactions []plaidTransaction `json:"transactions"`
}

type plaidAccount struct {
	AccountID string     `json:"account_id"`
	Name      flexString `json:"name"`
	Type      flexString `json:"type"`
	Subtype   flexString `json:"subtype"`
	SortCode  flexString `json:"sort_code"`
	Number    flexString `json:"account"`
}

type plaidTransaction struct {
	TransactionID    string     `json:"transaction_id"`
	AccountID        string     `json:"account_id"`
	Date             flexString `json:"date"`
	Name             flexString `json:"name"`
	MerchantName     flexString `json:"merchant_name"`
	Amount           flexAmount `json:"amount"`
	Category         []string   `json:"category"`
	DetailedCategory flexString `json:"personal_finance_category.detailed"`
}

// Format returns the parser name.
func (p *PlaidParser) Format() string { return "plaid" }

// Parse reads a JSON export and returns its accounts and transactions.
func (p *PlaidParser) Parse(r io.Reader) (*model.Export, error) {
	var raw plaidExport
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding export JSON: %w", err)
	}

	export := &model.Export{}
	for _, a := range raw.Accounts {
		export.Accounts = append(export.Accounts, model.Account{
			AccountID: a.AccountID,
			Name:      string(a.Name),
			Type:      string(a.Type),
			Subtype:   string(a.Subtype),
			SortCode:  string(a.SortCode),
			Number:    string(a.Number),
		})
	}

	for _, t := range raw.Transactions {
		export.Transactions = append(export.Transactions, toTransaction(t))
	}
	return export, nil
}

func toTransaction(t plaidTransaction) model.Transaction {
	rawDate := string(t.Date)
	date, err := time.Parse(plaidDateFormat, rawDate)
	if err != nil {
		date = time.Time{}
	}

	category := strings.ToLower(strings.TrimSpace(string(t.DetailedCategory)))
	category = strings.ReplaceAll(category, " ", "_")

	return model.Transaction{
		ID:               t.TransactionID,
		Date:             date,
		RawDate:          rawDate,
		Name:             string(t.Name),
		MerchantName:     string(t.MerchantName),
		Amount:           t.Amount.Decimal(),
		ExternalCategory: category,
		OriginalCategory: strings.Join(t.Category, ", "),
		AccountID:        t.AccountID,
	}
}
