package model

// Category is the cash-flow category assigned to a transaction.
type Category string

const (
	CategoryIncome         Category = "Income"
	CategorySpecialInflow  Category = "Special Inflow"
	CategoryLoans          Category = "Loans"
	CategoryDebtRepayments Category = "Debt Repayments"
	CategoryExpenses       Category = "Expenses"
	CategorySpecialOutflow Category = "Special Outflow"
	CategoryFailedPayment  Category = "Failed Payment"
	CategoryUncategorised  Category = "Uncategorised"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryIncome,
		CategorySpecialInflow,
		CategoryLoans,
		CategoryDebtRepayments,
		CategoryExpenses,
		CategorySpecialOutflow,
		CategoryFailedPayment,
		CategoryUncategorised,
	}
}

// IsRevenue reports whether the category counts toward business income.
func (c Category) IsRevenue() bool {
	return c == CategoryIncome || c == CategorySpecialInflow
}

// IsExpense reports whether the category counts as money spent.
func (c Category) IsExpense() bool {
	return c == CategoryExpenses || c == CategorySpecialOutflow
}

// IsDebt reports whether the category is a loan disbursement.
func (c Category) IsDebt() bool {
	return c == CategoryLoans
}

// IsDebtRepayment reports whether the category is a loan repayment.
func (c Category) IsDebtRepayment() bool {
	return c == CategoryDebtRepayments
}
