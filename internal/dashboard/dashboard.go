// Package dashboard builds the view-model of each dashboard page from a
// [farm.Dataset].
//
// Every builder constructs a fresh [view.Store] for its records, filters it
// with the page's search text and selector, narrows the result by the
// page's secondary filters, and summarizes the full store.
// Builders never format values; rendering is left to the caller.
package dashboard

import (
	"fmt"

	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/view"
)

// UpcomingLimit is how many open tasks the overview lists.
const UpcomingLimit = 4

// TaskFilter narrows the tasks page. Zero fields do not narrow.
type TaskFilter struct {
	Search   string          `json:"search"   yaml:"search"`
	Status   farm.TaskStatus `json:"status"   yaml:"status"`
	Priority farm.Priority   `json:"priority" yaml:"priority"`
}

// TasksPage is the tasks view-model.
type TasksPage struct {
	TaskFilter `yaml:",inline"`

	Visible []farm.Task                   `json:"visible" yaml:"visible"`
	Summary view.Summary[farm.TaskStatus] `json:"summary" yaml:"summary"`
}

// Tasks builds the tasks page.
func Tasks(ds farm.Dataset, f TaskFilter) (TasksPage, error) {
	store, err := newStore("tasks", ds.Tasks)
	if err != nil {
		return TasksPage{}, err
	}

	all := store.All()
	visible := farm.TaskSchema.Filter(all, f.Search, f.Status)

	if f.Priority != "" {
		visible = farm.TaskPrioritySchema.Filter(visible, "", f.Priority)
	}

	return TasksPage{
		TaskFilter: f,
		Visible:    visible,
		Summary:    view.Summarize(all, farm.TaskStatusOf, farm.TaskStatuses...),
	}, nil
}

// CropFilter narrows the crops page. Zero fields do not narrow.
type CropFilter struct {
	Search string          `json:"search" yaml:"search"`
	Health farm.CropHealth `json:"health" yaml:"health"`
}

// CropsPage is the crops view-model.
type CropsPage struct {
	CropFilter `yaml:",inline"`

	Visible      []farm.Crop                   `json:"visible"       yaml:"visible"`
	Summary      view.Summary[farm.CropHealth] `json:"summary"       yaml:"summary"`
	Irrigation   view.Summary[farm.Irrigation] `json:"irrigation"    yaml:"irrigation"`
	TotalAcres   float64                       `json:"total_acres"   yaml:"total_acres"`   //nolint:tagliatelle // snake_case for reports
	MeanProgress view.Percent                  `json:"mean_progress" yaml:"mean_progress"` //nolint:tagliatelle // snake_case for reports
}

// Crops builds the crops page.
func Crops(ds farm.Dataset, f CropFilter) (CropsPage, error) {
	store, err := newStore("crops", ds.Crops)
	if err != nil {
		return CropsPage{}, err
	}

	all := store.All()

	return CropsPage{
		CropFilter:   f,
		Visible:      farm.CropSchema.Filter(all, f.Search, f.Health),
		Summary:      view.Summarize(all, farm.CropHealthOf, farm.CropHealths...),
		Irrigation:   view.Summarize(all, farm.CropIrrigationOf, farm.Irrigations...),
		TotalAcres:   view.Sum(all, func(c farm.Crop) float64 { return c.AreaAcres }),
		MeanProgress: meanPercent(all, func(c farm.Crop) int { return c.Progress }),
	}, nil
}

// LivestockFilter narrows the livestock page. Zero fields do not narrow.
// Type matches the animal type ignoring case.
type LivestockFilter struct {
	Search string            `json:"search" yaml:"search"`
	Health farm.AnimalHealth `json:"health" yaml:"health"`
	Type   string            `json:"type"   yaml:"type"`
}

// LivestockPage is the livestock view-model.
type LivestockPage struct {
	LivestockFilter `yaml:",inline"`

	Visible []farm.Animal                   `json:"visible" yaml:"visible"`
	Summary view.Summary[farm.AnimalHealth] `json:"summary" yaml:"summary"`
}

// Livestock builds the livestock page.
func Livestock(ds farm.Dataset, f LivestockFilter) (LivestockPage, error) {
	store, err := newStore("animals", ds.Animals)
	if err != nil {
		return LivestockPage{}, err
	}

	all := store.All()
	visible := farm.AnimalSchema.Filter(all, f.Search, f.Health)

	if f.Type != "" {
		visible = view.Where(visible, farm.AnimalTypeIs(f.Type))
	}

	return LivestockPage{
		LivestockFilter: f,
		Visible:         visible,
		Summary:         view.Summarize(all, farm.AnimalHealthOf, farm.AnimalHealths...),
	}, nil
}

// InventoryFilter narrows the inventory page. Zero fields do not narrow.
// LowStock keeps only items that need restocking.
type InventoryFilter struct {
	Search   string                 `json:"search"    yaml:"search"`
	Category farm.InventoryCategory `json:"category"  yaml:"category"`
	LowStock bool                   `json:"low_stock" yaml:"low_stock"` //nolint:tagliatelle // snake_case for reports
}

// InventoryPage is the inventory view-model.
type InventoryPage struct {
	InventoryFilter `yaml:",inline"`

	Visible []farm.InventoryItem          `json:"visible" yaml:"visible"`
	Summary view.Summary[farm.StockLevel] `json:"summary" yaml:"summary"`
	Restock int                           `json:"restock" yaml:"restock"`
}

// Inventory builds the inventory page.
func Inventory(ds farm.Dataset, f InventoryFilter) (InventoryPage, error) {
	store, err := newStore("inventory", ds.Inventory)
	if err != nil {
		return InventoryPage{}, err
	}

	all := store.All()
	summary := view.Summarize(all, farm.StockLevelOf, farm.StockLevels...)
	visible := farm.InventorySchema.Filter(all, f.Search, f.Category)

	if f.LowStock {
		visible = view.Where(visible, farm.NeedsRestock)
	}

	return InventoryPage{
		InventoryFilter: f,
		Visible:         visible,
		Summary:         summary,
		Restock:         summary.Count(farm.LowStock) + summary.Count(farm.OutOfStock),
	}, nil
}

// FinanceFilter narrows the transaction list. Zero fields do not narrow.
// Category matches ignoring case.
type FinanceFilter struct {
	Search   string               `json:"search"   yaml:"search"`
	Type     farm.TransactionType `json:"type"     yaml:"type"`
	Category string               `json:"category" yaml:"category"`
}

// FinancePage is the finance view-model.
type FinancePage struct {
	FinanceFilter `yaml:",inline"`

	Summary       farm.FinanceSummary    `json:"summary"        yaml:"summary"`
	RevenueChange view.Percent           `json:"revenue_change" yaml:"revenue_change"` //nolint:tagliatelle // snake_case for reports
	Months        []farm.MonthlyFinance  `json:"months"         yaml:"months"`
	Visible       []farm.Transaction     `json:"visible"        yaml:"visible"`
	Totals        farm.TransactionTotals `json:"totals"         yaml:"totals"`
}

// Finance builds the finance page. Totals cover every transaction, not
// only the visible ones.
func Finance(ds farm.Dataset, f FinanceFilter) (FinancePage, error) {
	store, err := newStore("transactions", ds.Transactions)
	if err != nil {
		return FinancePage{}, err
	}

	err = farm.ValidateMonths(ds.Months)
	if err != nil {
		return FinancePage{}, fmt.Errorf("months: %w", err)
	}

	all := store.All()
	visible := farm.TransactionSchema.Filter(all, f.Search, f.Type)

	if f.Category != "" {
		visible = view.Where(visible, farm.TransactionCategoryIs(f.Category))
	}

	return FinancePage{
		FinanceFilter: f,
		Summary:       farm.SummarizeFinance(ds.Months),
		RevenueChange: farm.RevenueChange(ds.Months),
		Months:        cloneOrEmpty(ds.Months),
		Visible:       visible,
		Totals:        farm.TotalTransactions(all),
	}, nil
}

func newStore[R view.Record](section string, records []R) (*view.Store[R], error) {
	store, err := view.NewStore(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}

	return store, nil
}

func meanPercent[R any, N view.Number](records []R, value func(R) N) view.Percent {
	mean, ok := view.Mean(records, value)

	return view.Percent{Value: mean, Valid: ok}
}

func cloneOrEmpty[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
