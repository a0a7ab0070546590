package classify

import (
	"regexp"

	"github.com/mcaflow-dev/mcaflow/internal/model"
)

// Keyword tables for the rule cascade. All patterns run against the
// combined lower-cased "name merchant_name" text of a transaction.
var (
	// Payment processors, card acquirers and marketplace payout
	// vocabulary. A credit from any of these is settlement revenue.
	processorPattern = regexp.MustCompile(
		`(?i)\b(` +
			`stripe|sumup|zettle|square|take\s*payments|shopify|card\s+settlement|daily\s+takings|payout` +
			`|paypal|go\s*cardless|klarna|worldpay|izettle|ubereats|just\s*eat|deliveroo|uber|bolt` +
			`|fresha|treatwell|taskrabbit|terminal|pos\s+deposit|revolut` +
			`|capital\s+on\s+tap|capital\s+one|evo\s*payments?|tink|teya(\s+solutions)?|talech` +
			`|barclaycard|elavon|adyen|payzone|verifone|ingenico` +
			`|nmi|trust\s+payments?|global\s+payments?|checkout\.com|epdq|santander|handepay` +
			`|dojo|valitor|paypoint|mypos|moneris` +
			`|merchant\s+services|payment\s+sense` +
			`)\b`)

	// YouLend appears on both loan disbursements and ordinary
	// name-collision credits; a funding token disambiguates.
	youLendPattern      = regexp.MustCompile(`(?i)(you\s?lend|yl\s?ii|yl\s?ltd|yl\s?limited|yl\s?a\s?limited)`)
	fundingTokenPattern = regexp.MustCompile(`(?i)(fnd|fund|funding)`)

	// Alternative business lenders, plus the generic loan token.
	lenderCreditPattern = regexp.MustCompile(
		`(?i)\biwoca\b|\bcapify\b|\bfundbox\b|\bgot[\s\-]?capital\b|\bfunding[\s\-]?circle\b|` +
			`\bfleximize\b|\bmarketfinance\b|\bliberis\b|\besme[\s\-]?loans\b|\bthincats\b|` +
			`\bwhite[\s\-]?oak\b|\bgrowth[\s\-]?street\b|\bnucleus[\s\-]?commercial[\s\-]?finance\b|` +
			`\bultimate[\s\-]?finance\b|\bjust[\s\-]?cash[\s\-]?flow\b|\bboost[\s\-]?capital\b|` +
			`\bmerchant[\s\-]?money\b|\bcapital[\s\-]?on[\s\-]?tap\b|\bkriya\b|\buncapped\b|` +
			`\blendingcrowd\b|\bfolk2folk\b|\bfunding[\s\-]?tree\b|\bstart[\s\-]?up[\s\-]?loans\b|` +
			`\bbcrs[\s\-]?business[\s\-]?loans\b|\bbusiness[\s\-]?enterprise[\s\-]?fund\b|` +
			`\bswig[\s\-]?finance\b|\benterprise[\s\-]?answers\b|\blet's[\s\-]?do[\s\-]?business[\s\-]?finance\b|` +
			`\bfinance[\s\-]?for[\s\-]?enterprise\b|\bdsl[\s\-]?business[\s\-]?finance\b|` +
			`\bbizcap[\s\-]?uk\b|\bsigma[\s\-]?lending\b|\bbizlend[\s\-]?ltd\b|\bloans?\b`)

	// Same lender brands on the debit side, plus explicit repayment
	// vocabulary. No bare "loan" token here: a debit mentioning a
	// loan is only a repayment when the wording says so.
	lenderDebitPattern = regexp.MustCompile(
		`(?i)\biwoca\b|\bcapify\b|\bfundbox\b|\bgot[\s\-]?capital\b|\bfunding[\s\-]?circle\b|\bfleximize\b|\bmarketfinance\b|\bliberis\b|` +
			`\besme[\s\-]?loans\b|\bthincats\b|\bwhite[\s\-]?oak\b|\bgrowth[\s\-]?street\b|\bnucleus[\s\-]?commercial[\s\-]?finance\b|` +
			`\bultimate[\s\-]?finance\b|\bjust[\s\-]?cash[\s\-]?flow\b|\bboost[\s\-]?capital\b|\bmerchant[\s\-]?money\b|` +
			`\bcapital[\s\-]?on[\s\-]?tap\b|\bkriya\b|\buncapped\b|\blendingcrowd\b|\bfolk2folk\b|\bfunding[\s\-]?tree\b|` +
			`\bstart[\s\-]?up[\s\-]?loans\b|\bbcrs[\s\-]?business[\s\-]?loans\b|\bbusiness[\s\-]?enterprise[\s\-]?fund\b|` +
			`\bswig[\s\-]?finance\b|\benterprise[\s\-]?answers\b|\blet's[\s\-]?do[\s\-]?business[\s\-]?finance\b|` +
			`\bfinance[\s\-]?for[\s\-]?enterprise\b|\bdsl[\s\-]?business[\s\-]?finance\b|\bbizcap[\s\-]?uk\b|` +
			`\bsigma[\s\-]?lending\b|\bbizlend[\s\-]?ltd\b|` +
			`\bloan[\s\-]?repayment\b|\bdebt[\s\-]?repayment\b|\binstal?ments?\b|\bpay[\s\-]+back\b|\brepay(?:ing|ment|ed)?\b`)

	// Operational software vendors. Checked before the external
	// category fallback so a noisy enrichment signal cannot
	// miscategorize a known vendor.
	saasPattern = regexp.MustCompile(
		`(?i)(facebook|facebk|fb\.me|outlook|office365|microsoft|google\s+ads|linkedin|twitter|adobe|zoom|slack|shopify|wix|squarespace|mailchimp|hubspot)`)

	// loanPaymentGuardPattern validates a "loan_payments_*" external
	// category: the hint is only trusted when the transaction text
	// independently mentions loans or a known lender.
	loanPaymentGuardPattern = regexp.MustCompile(`(?i)(loan|debt|repay|finance|lending|credit|iwoca|capify|fundbox)`)
)

// loanPaymentPrefix marks external categories for loan repayments.
const loanPaymentPrefix = "loan_payments_"

// externalExact maps external enrichment categories to internal
// labels when the string matches exactly.
var externalExact = map[string]model.Category{
	"income_wages":                                 model.CategoryIncome,
	"income_other_income":                          model.CategoryIncome,
	"income_dividends":                             model.CategorySpecialInflow,
	"income_interest_earned":                       model.CategorySpecialInflow,
	"income_retirement_pension":                    model.CategorySpecialInflow,
	"income_unemployment":                          model.CategorySpecialInflow,
	"transfer_in_cash_advances_and_loans":          model.CategoryLoans,
	"transfer_in_investment_and_retirement_funds":  model.CategorySpecialInflow,
	"transfer_in_savings":                          model.CategorySpecialInflow,
	"transfer_in_account_transfer":                 model.CategorySpecialInflow,
	"transfer_in_other_transfer_in":                model.CategorySpecialInflow,
	"transfer_in_deposit":                          model.CategorySpecialInflow,
	"transfer_out_investment_and_retirement_funds": model.CategorySpecialOutflow,
	"transfer_out_savings":                         model.CategorySpecialOutflow,
	"transfer_out_other_transfer_out":              model.CategorySpecialOutflow,
	"transfer_out_withdrawal":                      model.CategorySpecialOutflow,
	"transfer_out_account_transfer":                model.CategorySpecialOutflow,
	"bank_fees_insufficient_funds":                 model.CategoryFailedPayment,
	"bank_fees_late_payment":                       model.CategoryFailedPayment,
}

// broadPrefixes are external category families that map wholesale to
// Expenses when nothing more specific matched.
var broadPrefixes = []string{
	"bank_fees_",
	"entertainment_",
	"food_and_drink_",
	"general_merchandise_",
	"general_services_",
	"government_and_non_profit_",
	"home_improvement_",
	"medical_",
	"personal_care_",
	"rent_and_utilities_",
	"transportation_",
	"travel_",
}
