// Package classify assigns cash-flow categories to bank transactions
// using a deterministic, ordered rule cascade. The first matching
// rule wins; a transaction always receives exactly one category.
package classify

import (
	"strings"

	"github.com/mcaflow-dev/mcaflow/internal/model"
)

// input is the normalized view of a transaction the rules match on.
type input struct {
	text     string // lower-cased "name merchant_name"
	category string // external enrichment category, lower-cased, underscore-joined
	credit   bool   // amount < 0, money into the account
	debit    bool   // amount > 0, money out of the account
}

// rule is one step of the cascade: a named predicate that either
// produces a category or passes the transaction on.
type rule struct {
	name  string
	apply func(in input) (model.Category, bool)
}

// cascade is evaluated top to bottom; order is load-bearing. Brand
// and keyword rules outrank the external category fallback.
var cascade = []rule{
	{"processor-payout", matchProcessorPayout},
	{"youlend-split", matchYouLend},
	{"lender-credit", matchLenderCredit},
	{"lender-debit", matchLenderDebit},
	{"saas-vendor", matchSaaSVendor},
	{"external-exact", matchExternalExact},
	{"external-prefix", matchExternalPrefix},
}

// Classify returns the cash-flow category for a transaction. It is
// pure and total: every transaction gets a category, malformed input
// included.
func Classify(tx model.Transaction) model.Category {
	label, _ := Explain(tx)
	return label
}

// Explain classifies a transaction and also reports the name of the
// rule that decided it ("default" when the cascade fell through).
func Explain(tx model.Transaction) (model.Category, string) {
	in := newInput(tx)
	for _, r := range cascade {
		if label, ok := r.apply(in); ok {
			return label, r.name
		}
	}
	// Zero amounts are neither credit nor debit and land here.
	if in.debit {
		return model.CategoryExpenses, "default"
	}
	return model.CategoryUncategorised, "default"
}

func newInput(tx model.Transaction) input {
	text := strings.ToLower(strings.TrimSpace(tx.Name + " " + tx.MerchantName))
	category := strings.ToLower(strings.TrimSpace(tx.ExternalCategory))
	category = strings.ReplaceAll(category, " ", "_")
	return input{
		text:     text,
		category: category,
		credit:   tx.Amount.IsNegative(),
		debit:    tx.Amount.IsPositive(),
	}
}

func matchProcessorPayout(in input) (model.Category, bool) {
	if in.credit && processorPattern.MatchString(in.text) {
		return model.CategoryIncome, true
	}
	return "", false
}

func matchYouLend(in input) (model.Category, bool) {
	if !in.credit || !youLendPattern.MatchString(in.text) {
		return "", false
	}
	// Funding tokens appear inside disbursement references too.
	if fundingTokenPattern.MatchString(in.text) {
		return model.CategoryLoans, true
	}
	return model.CategoryIncome, true
}

func matchLenderCredit(in input) (model.Category, bool) {
	if in.credit && lenderCreditPattern.MatchString(in.text) {
		return model.CategoryLoans, true
	}
	return "", false
}

func matchLenderDebit(in input) (model.Category, bool) {
	if in.debit && lenderDebitPattern.MatchString(in.text) {
		return model.CategoryDebtRepayments, true
	}
	return "", false
}

func matchSaaSVendor(in input) (model.Category, bool) {
	if saasPattern.MatchString(in.text) {
		return model.CategoryExpenses, true
	}
	return "", false
}

func matchExternalExact(in input) (model.Category, bool) {
	if strings.HasPrefix(in.category, loanPaymentPrefix) {
		// Only trust the hint when the text independently backs it
		// up; otherwise fall through to the remaining rules.
		if loanPaymentGuardPattern.MatchString(in.text) {
			return model.CategoryDebtRepayments, true
		}
	}
	if label, ok := externalExact[in.category]; ok {
		return label, true
	}
	return "", false
}

func matchExternalPrefix(in input) (model.Category, bool) {
	for _, prefix := range broadPrefixes {
		if strings.HasPrefix(in.category, prefix) {
			return model.CategoryExpenses, true
		}
	}
	return "", false
}
