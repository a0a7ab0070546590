package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mcaflow-dev/mcaflow/internal/pipeline"
)

// BusinessSummary aggregates the revenue rows of one business.
type BusinessSummary struct {
	BusinessName     string
	TotalIncome      decimal.Decimal
	TransactionCount int
	ProcessingPct    decimal.Decimal
	AmountToProcess  decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Summarize totals revenue rows per business (absolute amounts, since
// credits are negative) and applies each business's configured
// processing percentage. Results are sorted by business name.
func Summarize(rows []pipeline.Row, percentages map[string]decimal.Decimal) []BusinessSummary {
	totals := make(map[string]*BusinessSummary)
	for _, row := range rows {
		if !row.IsRevenue {
			continue
		}
		s, ok := totals[row.BusinessName]
		if !ok {
			s = &BusinessSummary{BusinessName: row.BusinessName}
			totals[row.BusinessName] = s
		}
		s.TotalIncome = s.TotalIncome.Add(row.Amount.Abs())
		s.TransactionCount++
	}

	summaries := make([]BusinessSummary, 0, len(totals))
	for name, s := range totals {
		pct := percentages[name]
		s.TotalIncome = s.TotalIncome.Round(2)
		s.ProcessingPct = pct
		s.AmountToProcess = s.TotalIncome.Mul(pct).Div(hundred).Round(2)
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].BusinessName < summaries[j].BusinessName
	})
	return summaries
}

// SummaryHeader is the CSV header for the business summary export.
const SummaryHeader = "business_name,total_income,transaction_count,processing_percentage,amount_to_process"

// WriteSummaries writes business summaries as CSV, header included.
func WriteSummaries(w io.Writer, summaries []BusinessSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(SummaryHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, s := range summaries {
		row := []string{
			s.BusinessName,
			s.TotalIncome.StringFixed(2),
			strconv.Itoa(s.TransactionCount),
			s.ProcessingPct.String(),
			s.AmountToProcess.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
