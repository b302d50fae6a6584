package farm

import (
	"fmt"
	"slices"
)

// TaskStatus is the workflow state of a [Task].
type TaskStatus string

// Task status constants.
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every [TaskStatus] in display order.
var TaskStatuses = []TaskStatus{TaskPending, TaskInProgress, TaskCompleted}

// Priority ranks how urgent a [Task] is.
type Priority string

// Priority constants.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every [Priority], most urgent first.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// TaskCategory groups tasks by the part of the farm they concern.
type TaskCategory string

// Task category constants.
const (
	TaskCrop        TaskCategory = "crop"
	TaskLivestock   TaskCategory = "livestock"
	TaskMaintenance TaskCategory = "maintenance"
	TaskGeneral     TaskCategory = "general"
)

// TaskCategories lists every [TaskCategory].
var TaskCategories = []TaskCategory{TaskCrop, TaskLivestock, TaskMaintenance, TaskGeneral}

// CropHealth is the observed condition of a planting.
type CropHealth string

// Crop health constants.
const (
	CropExcellent CropHealth = "excellent"
	CropGood      CropHealth = "good"
	CropModerate  CropHealth = "moderate"
	CropPoor      CropHealth = "poor"
)

// CropHealths lists every [CropHealth], best first.
var CropHealths = []CropHealth{CropExcellent, CropGood, CropModerate, CropPoor}

// Irrigation is the water state of a field.
type Irrigation string

// Irrigation constants.
const (
	IrrigationOptimal    Irrigation = "optimal"
	IrrigationNeedsWater Irrigation = "needs-water"
	IrrigationExcess     Irrigation = "excess"
)

// Irrigations lists every [Irrigation].
var Irrigations = []Irrigation{IrrigationOptimal, IrrigationNeedsWater, IrrigationExcess}

// AnimalHealth is the veterinary state of an animal or flock.
type AnimalHealth string

// Animal health constants.
const (
	AnimalHealthy        AnimalHealth = "healthy"
	AnimalNeedsAttention AnimalHealth = "needs-attention"
	AnimalSick           AnimalHealth = "sick"
)

// AnimalHealths lists every [AnimalHealth].
var AnimalHealths = []AnimalHealth{AnimalHealthy, AnimalNeedsAttention, AnimalSick}

// InventoryCategory classifies stored supplies.
type InventoryCategory string

// Inventory category constants.
const (
	CategorySeeds       InventoryCategory = "seeds"
	CategoryFertilizers InventoryCategory = "fertilizers"
	CategoryPesticides  InventoryCategory = "pesticides"
	CategoryFeed        InventoryCategory = "feed"
	CategoryEquipment   InventoryCategory = "equipment"
	CategoryFuel        InventoryCategory = "fuel"
)

// InventoryCategories lists every [InventoryCategory].
var InventoryCategories = []InventoryCategory{
	CategorySeeds, CategoryFertilizers, CategoryPesticides,
	CategoryFeed, CategoryEquipment, CategoryFuel,
}

// StockLevel is the derived supply state of an [InventoryItem].
type StockLevel string

// Stock level constants.
const (
	InStock    StockLevel = "in-stock"
	LowStock   StockLevel = "low-stock"
	OutOfStock StockLevel = "out-of-stock"
)

// StockLevels lists every [StockLevel].
var StockLevels = []StockLevel{InStock, LowStock, OutOfStock}

// TransactionType tells income from expenses.
type TransactionType string

// Transaction type constants.
const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionTypes lists every [TransactionType].
var TransactionTypes = []TransactionType{Income, Expense}

// ActivityType tags an entry in the recent activity feed.
type ActivityType string

// Activity type constants.
const (
	ActivityCrop      ActivityType = "crop"
	ActivityLivestock ActivityType = "livestock"
	ActivityInventory ActivityType = "inventory"
	ActivityFinance   ActivityType = "finance"
)

// ActivityTypes lists every [ActivityType].
var ActivityTypes = []ActivityType{ActivityCrop, ActivityLivestock, ActivityInventory, ActivityFinance}

func checkEnum[E ~string](field string, value E, allowed []E) error {
	if slices.Contains(allowed, value) {
		return nil
	}

	return fmt.Errorf("%w: %s=%q", ErrInvalidValue, field, value)
}

func checkNonNegative(field string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s=%v is negative", ErrInvalidValue, field, value)
	}

	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
