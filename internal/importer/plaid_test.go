package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{
  "accounts": [
    {
      "account_id": "acc-1",
      "name": "ABC Ltd Current Account",
      "type": "depository",
      "subtype": "checking",
      "sort_code": "04-00-04",
      "account": "12345678"
    }
  ],
  "transactions": [
    {
      "transaction_id": "txn-1",
      "account_id": "acc-1",
      "date": "2025-03-14",
      "name": "STRIPE PAYOUT",
      "merchant_name": "Stripe",
      "amount": -250.5,
      "category": ["Transfer", "Deposit"],
      "personal_finance_category.detailed": "TRANSFER_IN_DEPOSIT"
    },
    {
      "transaction_id": "txn-2",
      "account_id": "acc-1",
      "date": "2025-03-15",
      "name": ["CARD PAYMENT", "REF 9912"],
      "merchant_name": null,
      "amount": "42.10"
    }
  ]
}`

func TestPlaidParser_Parse(t *testing.T) {
	p := &PlaidParser{}
	export, err := p.Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, export.Accounts, 1)
	acct := export.Accounts[0]
	assert.Equal(t, "acc-1", acct.AccountID)
	assert.Equal(t, "ABC Ltd Current Account", acct.Name)
	assert.Equal(t, "depository", acct.Type)
	assert.Equal(t, "checking", acct.Subtype)
	assert.Equal(t, "04-00-04", acct.SortCode)
	assert.Equal(t, "12345678", acct.Number)

	require.Len(t, export.Transactions, 2)
	first := export.Transactions[0]
	assert.Equal(t, "txn-1", first.ID)
	assert.Equal(t, "STRIPE PAYOUT", first.Name)
	assert.Equal(t, "Stripe", first.MerchantName)
	assert.Equal(t, "-250.5", first.Amount.String())
	assert.Equal(t, "transfer_in_deposit", first.ExternalCategory)
	assert.Equal(t, "Transfer, Deposit", first.OriginalCategory)
	assert.Equal(t, 2025, first.Date.Year())
	assert.Equal(t, 3, int(first.Date.Month()))
	assert.Equal(t, 14, first.Date.Day())
}

func TestPlaidParser_CoalescesListValuedFields(t *testing.T) {
	p := &PlaidParser{}
	export, err := p.Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	second := export.Transactions[1]
	assert.Equal(t, "CARD PAYMENT REF 9912", second.Name)
	assert.Equal(t, "", second.MerchantName)
	assert.Equal(t, "42.1", second.Amount.String())
}

func TestPlaidParser_MissingAmountIsZero(t *testing.T) {
	p := &PlaidParser{}
	export, err := p.Parse(strings.NewReader(`{"transactions": [{"transaction_id": "t", "name": "x"}]}`))
	require.NoError(t, err)
	require.Len(t, export.Transactions, 1)
	assert.True(t, export.Transactions[0].Amount.IsZero())
}

func TestPlaidParser_NonNumericAmountIsZero(t *testing.T) {
	p := &PlaidParser{}
	export, err := p.Parse(strings.NewReader(`{"transactions": [{"name": "x", "amount": "n/a"}]}`))
	require.NoError(t, err)
	assert.True(t, export.Transactions[0].Amount.IsZero())
}

func TestPlaidParser_BadDateKeepsRawDate(t *testing.T) {
	p := &PlaidParser{}
	export, err := p.Parse(strings.NewReader(`{"transactions": [{"name": "x", "date": "14/03/2025"}]}`))
	require.NoError(t, err)
	tx := export.Transactions[0]
	assert.True(t, tx.Date.IsZero())
	assert.Equal(t, "14/03/2025", tx.RawDate)
}

func TestPlaidParser_InvalidJSON(t *testing.T) {
	p := &PlaidParser{}
	_, err := p.Parse(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestPlaidParser_Format(t *testing.T) {
	p := &PlaidParser{}
	assert.Equal(t, "plaid", p.Format())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&PlaidParser{})
	p := r.Get("PLAID")
	require.NotNil(t, p)
	assert.Equal(t, "plaid", p.Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan("does/not/exist")
	require.NoError(t, err)
	assert.Nil(t, files)
}
