package farm

import (
	"fmt"

	"github.com/farmflow/farmdash/internal/view"
)

// lowStockFactor is how many multiples of MinStock an item may hold and
// still count as low stock.
const lowStockFactor = 2

// InventoryItem is a stored supply on the inventory page.
//
// The stock level is not stored; see [InventoryItem.Level].
type InventoryItem struct {
	ID          string            `json:"id"           yaml:"id"`
	Name        string            `json:"name"         yaml:"name"`
	Category    InventoryCategory `json:"category"     yaml:"category"`
	Quantity    float64           `json:"quantity"     yaml:"quantity"`
	Unit        string            `json:"unit"         yaml:"unit"`
	MinStock    float64           `json:"min_stock"    yaml:"min_stock"`    //nolint:tagliatelle // snake_case for data files
	MaxStock    float64           `json:"max_stock"    yaml:"max_stock"`    //nolint:tagliatelle // snake_case for data files
	LastUpdated string            `json:"last_updated" yaml:"last_updated"` //nolint:tagliatelle // snake_case for data files
	Location    string            `json:"location"     yaml:"location"`
}

// RecordID implements [view.Record].
func (i InventoryItem) RecordID() string { return i.ID }

// Validate implements [view.Record].
func (i InventoryItem) Validate() error {
	err := firstError(
		checkEnum("category", i.Category, InventoryCategories),
		checkNonNegative("quantity", i.Quantity),
		checkNonNegative("min_stock", i.MinStock),
		checkNonNegative("max_stock", i.MaxStock),
	)
	if err != nil {
		return err
	}

	if i.MaxStock < i.MinStock {
		return fmt.Errorf("%w: max_stock=%v below min_stock=%v", ErrInvalidValue, i.MaxStock, i.MinStock)
	}

	return nil
}

// Level returns the item's stock level derived from its quantities.
func (i InventoryItem) Level() StockLevel {
	return ClassifyStock(i.Quantity, i.MinStock)
}

// FillPercent returns quantity as a percentage of MaxStock, invalid when
// MaxStock is zero.
func (i InventoryItem) FillPercent() view.Percent {
	return view.PercentOf(i.Quantity, i.MaxStock)
}

// ClassifyStock derives a stock level:
//
//	quantity <= 0                   -> out-of-stock
//	quantity <  2 * minStock        -> low-stock
//	otherwise                       -> in-stock
func ClassifyStock(quantity, minStock float64) StockLevel {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity < lowStockFactor*minStock:
		return LowStock
	default:
		return InStock
	}
}

// InventorySchema searches name and category and narrows by category.
var InventorySchema = view.Schema[InventoryItem, InventoryCategory]{
	Selectors:    InventoryCategories,
	SelectorOf:   func(i InventoryItem) InventoryCategory { return i.Category },
	SearchFields: func(i InventoryItem) []string { return []string{i.Name, string(i.Category)} },
}

// StockLevelOf returns the aggregation key of an inventory item.
func StockLevelOf(i InventoryItem) StockLevel { return i.Level() }

// NeedsRestock reports whether the item is low or out of stock.
func NeedsRestock(i InventoryItem) bool { return i.Level() != InStock }
