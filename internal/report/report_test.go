package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcaflow-dev/mcaflow/internal/model"
	"github.com/mcaflow-dev/mcaflow/internal/pipeline"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func revenueRow(business, amount string) pipeline.Row {
	return pipeline.Row{
		BusinessName: business,
		Amount:       dec(amount),
		Category:     model.CategoryIncome,
		IsRevenue:    true,
	}
}

func TestWriteRows_RoundTripShape(t *testing.T) {
	rows := []pipeline.Row{
		{
			BusinessName:  "Harbor Cafe",
			Filename:      "harbor.json",
			TransactionID: "txn-1",
			Date:          "2025-03-14",
			Name:          "STRIPE PAYOUT",
			Amount:        dec("-250.50"),
			Category:      model.CategoryIncome,
			Authorised:    true,
			IsRevenue:     true,
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteRows(&sb, rows))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Contains(t, lines[1], "Harbor Cafe")
	assert.Contains(t, lines[1], "-250.50")
	assert.Contains(t, lines[1], "Income")
	assert.Equal(t, numFields, len(strings.Split(lines[1], ",")))
}

func TestSummarize_TotalsAbsoluteAmounts(t *testing.T) {
	rows := []pipeline.Row{
		revenueRow("Harbor Cafe", "-100.00"),
		revenueRow("Harbor Cafe", "-50.50"),
		{BusinessName: "Harbor Cafe", Amount: dec("30.00"), Category: model.CategoryExpenses, IsExpense: true},
		revenueRow("Corner Shop", "-200.00"),
	}
	percentages := map[string]decimal.Decimal{
		"Harbor Cafe": dec("10"),
		"Corner Shop": dec("2.5"),
	}

	summaries := Summarize(rows, percentages)
	require.Len(t, summaries, 2)

	// Sorted by business name.
	corner := summaries[0]
	assert.Equal(t, "Corner Shop", corner.BusinessName)
	assert.Equal(t, "200.00", corner.TotalIncome.StringFixed(2))
	assert.Equal(t, 1, corner.TransactionCount)
	assert.Equal(t, "5.00", corner.AmountToProcess.StringFixed(2))

	harbor := summaries[1]
	assert.Equal(t, "150.50", harbor.TotalIncome.StringFixed(2))
	assert.Equal(t, 2, harbor.TransactionCount)
	assert.Equal(t, "15.05", harbor.AmountToProcess.StringFixed(2))
}

func TestSummarize_UnconfiguredBusinessGetsZeroPct(t *testing.T) {
	summaries := Summarize([]pipeline.Row{revenueRow("New Biz", "-80.00")}, nil)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].ProcessingPct.IsZero())
	assert.Equal(t, "0.00", summaries[0].AmountToProcess.StringFixed(2))
}

func TestSummarize_NoRevenueRows(t *testing.T) {
	rows := []pipeline.Row{
		{BusinessName: "Harbor Cafe", Amount: dec("30.00"), Category: model.CategoryExpenses, IsExpense: true},
	}
	assert.Empty(t, Summarize(rows, nil))
}

func TestWriteSummaries(t *testing.T) {
	summaries := Summarize([]pipeline.Row{revenueRow("Harbor Cafe", "-100.00")},
		map[string]decimal.Decimal{"Harbor Cafe": dec("12.5")})

	var sb strings.Builder
	require.NoError(t, WriteSummaries(&sb, summaries))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, SummaryHeader, lines[0])
	assert.Equal(t, "Harbor Cafe,100.00,1,12.5,12.50", lines[1])
}
