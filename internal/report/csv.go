// Package report writes processed transactions and per-business
// summaries as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcaflow-dev/mcaflow/internal/pipeline"
)

// Header is the CSV header for the labeled transaction export.
const Header = "business_name,filename,transaction_id,date,name,merchant_name,amount,original_category,external_category,category,account_id,is_authorised_account,sort_code,account_number,account_name,is_revenue,is_expense,is_debt,is_debt_repayment"

const (
	numFields     = 19
	colBusiness   = 0
	colFilename   = 1
	colTxnID      = 2
	colDate       = 3
	colName       = 4
	colMerchant   = 5
	colAmount     = 6
	colOrigCat    = 7
	colExtCat     = 8
	colCategory   = 9
	colAccountID  = 10
	colAuthorised = 11
	colSortCode   = 12
	colAcctNumber = 13
	colAcctName   = 14
	colRevenue    = 15
	colExpense    = 16
	colDebt       = 17
	colDebtRepay  = 18
)

// WriteRows writes labeled transactions as CSV, header included.
func WriteRows(w io.Writer, rows []pipeline.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a labeled transaction to a CSV row.
func MarshalRow(r pipeline.Row) []string {
	row := make([]string, numFields)
	row[colBusiness] = r.BusinessName
	row[colFilename] = r.Filename
	row[colTxnID] = r.TransactionID
	row[colDate] = r.Date
	row[colName] = r.Name
	row[colMerchant] = r.MerchantName
	row[colAmount] = r.Amount.StringFixed(2)
	row[colOrigCat] = r.OriginalCategory
	row[colExtCat] = r.ExternalCategory
	row[colCategory] = string(r.Category)
	row[colAccountID] = r.AccountID
	row[colAuthorised] = strconv.FormatBool(r.Authorised)
	row[colSortCode] = r.SortCode
	row[colAcctNumber] = r.AccountNumber
	row[colAcctName] = r.AccountName
	row[colRevenue] = strconv.FormatBool(r.IsRevenue)
	row[colExpense] = strconv.FormatBool(r.IsExpense)
	row[colDebt] = strconv.FormatBool(r.IsDebt)
	row[colDebtRepay] = strconv.FormatBool(r.IsDebtRepayment)
	return row
}
