package farm_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/view"
)

func TestSummarizeFinanceSample(t *testing.T) {
	t.Parallel()

	got := farm.SummarizeFinance(farm.SampleDataset().Months)

	if got.TotalRevenue != 294500 || got.TotalExpenses != 161500 || got.NetProfit != 133000 {
		t.Fatalf("totals=%+v, want revenue=294500 expenses=161500 net=133000", got)
	}

	if !got.ProfitMargin.Valid || math.Abs(got.ProfitMargin.Value-45.16) > 0.01 {
		t.Errorf("margin=%+v, want ~45.16%%", got.ProfitMargin)
	}
}

func TestSummarizeFinanceZeroRevenue(t *testing.T) {
	t.Parallel()

	got := farm.SummarizeFinance([]farm.MonthlyFinance{
		{Month: "Jan", Revenue: 0, Expenses: 100},
	})

	want := farm.FinanceSummary{
		TotalRevenue:  0,
		TotalExpenses: 100,
		NetProfit:     -100,
		ProfitMargin:  view.Percent{},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeFinanceEmpty(t *testing.T) {
	t.Parallel()

	got := farm.SummarizeFinance(nil)
	if diff := cmp.Diff(farm.FinanceSummary{}, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestRevenueChange(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		months []farm.MonthlyFinance
		want   view.Percent
	}{
		{
			name:   "sample drop",
			months: farm.SampleDataset().Months,
			want:   view.Percent{Value: -12.5, Valid: true},
		},
		{
			name:   "growth",
			months: []farm.MonthlyFinance{{Month: "a", Revenue: 100}, {Month: "b", Revenue: 150}},
			want:   view.Percent{Value: 50, Valid: true},
		},
		{
			name:   "single month",
			months: []farm.MonthlyFinance{{Month: "a", Revenue: 100}},
		},
		{
			name:   "zero previous",
			months: []farm.MonthlyFinance{{Month: "a"}, {Month: "b", Revenue: 10}},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, farm.RevenueChange(tt.months)); diff != "" {
				t.Errorf("RevenueChange mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTotalTransactions(t *testing.T) {
	t.Parallel()

	got := farm.TotalTransactions(farm.SampleDataset().Transactions)

	want := farm.TransactionTotals{
		Income:   35500,
		Expenses: 7700,
		Net:      27800,
		Summary: view.Summary[farm.TransactionType]{
			Total:  6,
			Counts: map[farm.TransactionType]int{farm.Income: 3, farm.Expense: 3},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestTransactionSchemaByType(t *testing.T) {
	t.Parallel()

	txs := farm.SampleDataset().Transactions

	var got []string
	for _, tx := range farm.TransactionSchema.Filter(txs, "sale", farm.Income) {
		got = append(got, tx.ID)
	}

	if diff := cmp.Diff([]string{"1", "3", "6"}, got); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateMonths(t *testing.T) {
	t.Parallel()

	err := farm.ValidateMonths([]farm.MonthlyFinance{{Month: "Jan"}, {Month: "Jan"}})
	if err == nil {
		t.Error("duplicate month accepted")
	}

	err = farm.ValidateMonths([]farm.MonthlyFinance{{Month: "Jan", Expenses: -1}})
	if err == nil {
		t.Error("negative expenses accepted")
	}

	err = farm.ValidateMonths(farm.SampleDataset().Months)
	if err != nil {
		t.Errorf("sample months rejected: %v", err)
	}
}
