package farm

import (
	"fmt"
	"strings"

	"github.com/farmflow/farmdash/internal/view"
)

// MonthlyFinance is one point of the revenue/expenses series.
type MonthlyFinance struct {
	Month    string  `json:"month"    yaml:"month"`
	Revenue  float64 `json:"revenue"  yaml:"revenue"`
	Expenses float64 `json:"expenses" yaml:"expenses"`
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          string          `json:"id"          yaml:"id"`
	Type        TransactionType `json:"type"        yaml:"type"`
	Category    string          `json:"category"    yaml:"category"`
	Description string          `json:"description" yaml:"description"`
	Amount      float64         `json:"amount"      yaml:"amount"`
	Date        string          `json:"date"        yaml:"date"`
}

// RecordID implements [view.Record].
func (t Transaction) RecordID() string { return t.ID }

// Validate implements [view.Record]. Amounts are unsigned; Type carries the
// direction.
func (t Transaction) Validate() error {
	return firstError(
		checkEnum("type", t.Type, TransactionTypes),
		checkNonNegative("amount", t.Amount),
	)
}

// TransactionSchema searches description and category and narrows by type.
var TransactionSchema = view.Schema[Transaction, TransactionType]{
	Selectors:    TransactionTypes,
	SelectorOf:   func(t Transaction) TransactionType { return t.Type },
	SearchFields: func(t Transaction) []string { return []string{t.Description, t.Category} },
}

// TransactionCategoryIs matches transactions in the given category,
// ignoring case.
func TransactionCategoryIs(category string) func(Transaction) bool {
	return func(t Transaction) bool { return strings.EqualFold(t.Category, category) }
}

// TransactionTypeOf returns the aggregation key of a transaction.
func TransactionTypeOf(t Transaction) TransactionType { return t.Type }

// FinanceSummary aggregates the monthly series.
type FinanceSummary struct {
	TotalRevenue  float64      `json:"total_revenue"  yaml:"total_revenue"`  //nolint:tagliatelle // snake_case for reports
	TotalExpenses float64      `json:"total_expenses" yaml:"total_expenses"` //nolint:tagliatelle // snake_case for reports
	NetProfit     float64      `json:"net_profit"     yaml:"net_profit"`     //nolint:tagliatelle // snake_case for reports
	ProfitMargin  view.Percent `json:"profit_margin"  yaml:"profit_margin"`  //nolint:tagliatelle // snake_case for reports
}

// SummarizeFinance sums revenue and expenses over months.
//
// ProfitMargin is NetProfit / TotalRevenue * 100 and is invalid when total
// revenue is zero.
func SummarizeFinance(months []MonthlyFinance) FinanceSummary {
	revenue := view.Sum(months, func(m MonthlyFinance) float64 { return m.Revenue })
	expenses := view.Sum(months, func(m MonthlyFinance) float64 { return m.Expenses })
	net := revenue - expenses

	return FinanceSummary{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     net,
		ProfitMargin:  view.PercentOf(net, revenue),
	}
}

// RevenueChange returns the change of the last month's revenue relative to
// the month before it, in percent. Invalid with fewer than two months or a
// zero previous revenue.
func RevenueChange(months []MonthlyFinance) view.Percent {
	if len(months) < 2 {
		return view.Percent{}
	}

	last := months[len(months)-1].Revenue
	prev := months[len(months)-2].Revenue

	return view.PercentOf(last-prev, prev)
}

// ValidateMonths rejects negative revenue or expenses and duplicate months.
func ValidateMonths(months []MonthlyFinance) error {
	seen := make(map[string]struct{}, len(months))

	for _, m := range months {
		if _, dup := seen[m.Month]; dup {
			return fmt.Errorf("%w: month %q listed twice", ErrInvalidValue, m.Month)
		}

		seen[m.Month] = struct{}{}

		err := firstError(
			checkNonNegative("revenue", m.Revenue),
			checkNonNegative("expenses", m.Expenses),
		)
		if err != nil {
			return fmt.Errorf("month %s: %w", m.Month, err)
		}
	}

	return nil
}

// TransactionTotals sums a transaction list by direction.
type TransactionTotals struct {
	Income   float64                       `json:"income"   yaml:"income"`
	Expenses float64                       `json:"expenses" yaml:"expenses"`
	Net      float64                       `json:"net"      yaml:"net"`
	Summary  view.Summary[TransactionType] `json:"summary"  yaml:"summary"`
}

// TotalTransactions sums income and expenses over txs.
func TotalTransactions(txs []Transaction) TransactionTotals {
	amountOf := func(typ TransactionType) func(Transaction) float64 {
		return func(t Transaction) float64 {
			if t.Type == typ {
				return t.Amount
			}

			return 0
		}
	}

	income := view.Sum(txs, amountOf(Income))
	expenses := view.Sum(txs, amountOf(Expense))

	return TransactionTotals{
		Income:   income,
		Expenses: expenses,
		Net:      income - expenses,
		Summary:  view.Summarize(txs, TransactionTypeOf, TransactionTypes...),
	}
}
