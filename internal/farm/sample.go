package farm

// SampleDataset returns the built-in demonstration data for Green Valley
// Farm. Each call builds fresh slices.
func SampleDataset() Dataset {
	return Dataset{
		Tasks:        sampleTasks(),
		Crops:        sampleCrops(),
		Animals:      sampleAnimals(),
		Inventory:    sampleInventory(),
		Transactions: sampleTransactions(),
		Months:       sampleMonths(),
		Yields: []CropYield{
			{Crop: "Wheat", Yield: 4.5, Target: 4.2},
			{Crop: "Corn", Yield: 3.8, Target: 4.0},
			{Crop: "Soybeans", Yield: 2.9, Target: 3.0},
			{Crop: "Rice", Yield: 5.2, Target: 5.0},
			{Crop: "Potatoes", Yield: 8.5, Target: 8.0},
		},
		Herd: []HerdShare{
			{Name: "Cattle", Head: 150},
			{Name: "Sheep", Head: 80},
			{Name: "Pigs", Head: 45},
			{Name: "Chickens", Head: 200},
			{Name: "Goats", Head: 30},
		},
		Productivity: sampleProductivity(),
		Resources: []ResourceUsage{
			{Resource: "Water", Usage: 78},
			{Resource: "Fertilizer", Usage: 65},
			{Resource: "Feed", Usage: 82},
			{Resource: "Labor", Usage: 70},
			{Resource: "Equipment", Usage: 55},
		},
		Activities: sampleActivities(),
		Weather: Weather{
			Location:     "Green Valley Farm",
			Condition:    "Partly Cloudy",
			TemperatureC: 24,
			Humidity:     65,
			WindKph:      12,
			RainfallMM:   2.5,
		},
	}
}

func sampleTasks() []Task {
	return []Task{
		{
			ID: "1", Title: "Harvest wheat in Field A-12",
			Description: "Complete wheat harvest before weather changes",
			Priority:    PriorityHigh, Status: TaskInProgress, DueDate: "Today",
			Assignee: "John D.", Location: "Field A-12", Category: TaskCrop,
		},
		{
			ID: "2", Title: "Vaccinate cattle herd",
			Description: "Annual vaccination for the main cattle herd",
			Priority:    PriorityHigh, Status: TaskPending, DueDate: "Tomorrow",
			Assignee: "Sarah M.", Location: "Barn B", Category: TaskLivestock,
		},
		{
			ID: "3", Title: "Repair irrigation system",
			Description: "Fix leak in the northern irrigation line",
			Priority:    PriorityMedium, Status: TaskPending, DueDate: "Nov 28",
			Assignee: "Mike R.", Location: "Field C-3", Category: TaskMaintenance,
		},
		{
			ID: "4", Title: "Order new tractor parts",
			Description: "Replace worn brake pads and filters",
			Priority:    PriorityMedium, Status: TaskCompleted, DueDate: "Nov 25",
			Assignee: "John D.", Location: "Workshop", Category: TaskMaintenance,
		},
		{
			ID: "5", Title: "Apply fertilizer to corn fields",
			Description: "Second application of NPK fertilizer",
			Priority:    PriorityLow, Status: TaskPending, DueDate: "Nov 30",
			Assignee: "Sarah M.", Location: "Field B-7", Category: TaskCrop,
		},
		{
			ID: "6", Title: "Update farm records",
			Description: "Monthly inventory and financial records update",
			Priority:    PriorityLow, Status: TaskPending, DueDate: "Dec 1",
			Assignee: "Admin", Location: "Office", Category: TaskGeneral,
		},
	}
}

func sampleCrops() []Crop {
	return []Crop{
		{
			ID: "1", Name: "Wheat", Variety: "Hard Red Winter", Field: "Field A-12", AreaAcres: 45,
			PlantedDate: "Oct 15, 2024", ExpectedHarvest: "Jul 2025", Progress: 85, Stage: "Harvest Ready",
			Health: CropExcellent, LastActivity: "Fertilized 3 days ago", Irrigation: IrrigationOptimal,
		},
		{
			ID: "2", Name: "Corn", Variety: "Yellow Dent", Field: "Field B-7", AreaAcres: 60,
			PlantedDate: "Apr 20, 2024", ExpectedHarvest: "Sep 2024", Progress: 60, Stage: "Grain Filling",
			Health: CropGood, LastActivity: "Irrigated yesterday", Irrigation: IrrigationOptimal,
		},
		{
			ID: "3", Name: "Soybeans", Variety: "Roundup Ready", Field: "Field C-3", AreaAcres: 30,
			PlantedDate: "May 10, 2024", ExpectedHarvest: "Oct 2024", Progress: 35, Stage: "Flowering",
			Health: CropModerate, LastActivity: "Pest inspection needed", Irrigation: IrrigationNeedsWater,
		},
		{
			ID: "4", Name: "Rice", Variety: "Long Grain", Field: "Field D-1", AreaAcres: 25,
			PlantedDate: "Jun 1, 2024", ExpectedHarvest: "Nov 2024", Progress: 15, Stage: "Vegetative",
			Health: CropExcellent, LastActivity: "Flooded paddies maintained", Irrigation: IrrigationOptimal,
		},
		{
			ID: "5", Name: "Potatoes", Variety: "Russet Burbank", Field: "Field E-5", AreaAcres: 20,
			PlantedDate: "Mar 25, 2024", ExpectedHarvest: "Aug 2024", Progress: 70, Stage: "Tuber Bulking",
			Health: CropGood, LastActivity: "Hilling completed", Irrigation: IrrigationOptimal,
		},
	}
}

func sampleAnimals() []Animal {
	return []Animal{
		{
			ID: "1", Type: "Cattle", Breed: "Angus", Tag: "C-001", Age: "3 years", Weight: "650 kg",
			Health: AnimalHealthy, LastCheckup: "Nov 15, 2024", NextVaccination: "Feb 2025", Location: "Pasture A",
		},
		{
			ID: "2", Type: "Cattle", Breed: "Holstein", Tag: "C-042", Age: "2 years", Weight: "580 kg",
			Health: AnimalNeedsAttention, LastCheckup: "Oct 28, 2024", NextVaccination: "Dec 2024", Location: "Barn B",
		},
		{
			ID: "3", Type: "Sheep", Breed: "Merino", Tag: "S-015", Age: "1.5 years", Weight: "75 kg",
			Health: AnimalHealthy, LastCheckup: "Nov 20, 2024", NextVaccination: "Mar 2025", Location: "Pasture C",
		},
		{
			ID: "4", Type: "Pig", Breed: "Yorkshire", Tag: "P-008", Age: "8 months", Weight: "120 kg",
			Health: AnimalHealthy, LastCheckup: "Nov 18, 2024", NextVaccination: "Jan 2025", Location: "Pen D",
		},
		{
			ID: "5", Type: "Chicken", Breed: "Rhode Island Red", Tag: "CH-Flock1", Age: "6 months", Weight: "3.5 kg (avg)",
			Health: AnimalHealthy, LastCheckup: "Nov 22, 2024", NextVaccination: "Apr 2025", Location: "Coop E",
		},
		{
			ID: "6", Type: "Goat", Breed: "Boer", Tag: "G-023", Age: "2 years", Weight: "85 kg",
			Health: AnimalSick, LastCheckup: "Nov 25, 2024", NextVaccination: "Pending", Location: "Barn F",
		},
	}
}

func sampleInventory() []InventoryItem {
	return []InventoryItem{
		{
			ID: "1", Name: "Wheat Seeds", Category: CategorySeeds, Quantity: 500, Unit: "kg",
			MinStock: 100, MaxStock: 1000, LastUpdated: "Nov 25, 2024", Location: "Storage A",
		},
		{
			ID: "2", Name: "NPK Fertilizer", Category: CategoryFertilizers, Quantity: 80, Unit: "bags",
			MinStock: 50, MaxStock: 200, LastUpdated: "Nov 20, 2024", Location: "Storage B",
		},
		{
			ID: "3", Name: "Insecticide Spray", Category: CategoryPesticides, Quantity: 25, Unit: "liters",
			MinStock: 20, MaxStock: 100, LastUpdated: "Nov 22, 2024", Location: "Chemical Store",
		},
		{
			ID: "4", Name: "Cattle Feed", Category: CategoryFeed, Quantity: 2000, Unit: "kg",
			MinStock: 500, MaxStock: 5000, LastUpdated: "Nov 24, 2024", Location: "Feed Barn",
		},
		{
			ID: "5", Name: "Tractor Parts", Category: CategoryEquipment, Quantity: 0, Unit: "sets",
			MinStock: 5, MaxStock: 20, LastUpdated: "Nov 18, 2024", Location: "Workshop",
		},
		{
			ID: "6", Name: "Diesel Fuel", Category: CategoryFuel, Quantity: 450, Unit: "liters",
			MinStock: 200, MaxStock: 1000, LastUpdated: "Nov 26, 2024", Location: "Fuel Tank",
		},
	}
}

func sampleTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Type: Income, Category: "Crop Sales", Description: "Sold 5 tons of wheat", Amount: 8500, Date: "Nov 26, 2024"},
		{ID: "2", Type: Expense, Category: "Equipment", Description: "Tractor maintenance", Amount: 1200, Date: "Nov 25, 2024"},
		{ID: "3", Type: Income, Category: "Livestock Sales", Description: "Sold 10 cattle", Amount: 15000, Date: "Nov 24, 2024"},
		{ID: "4", Type: Expense, Category: "Supplies", Description: "Fertilizer purchase", Amount: 2500, Date: "Nov 23, 2024"},
		{ID: "5", Type: Expense, Category: "Labor", Description: "Seasonal workers payment", Amount: 4000, Date: "Nov 22, 2024"},
		{ID: "6", Type: Income, Category: "Crop Sales", Description: "Corn harvest sale", Amount: 12000, Date: "Nov 20, 2024"},
	}
}

func sampleMonths() []MonthlyFinance {
	return []MonthlyFinance{
		{Month: "Jan", Revenue: 12000, Expenses: 8000},
		{Month: "Feb", Revenue: 15000, Expenses: 9500},
		{Month: "Mar", Revenue: 18000, Expenses: 11000},
		{Month: "Apr", Revenue: 22000, Expenses: 12500},
		{Month: "May", Revenue: 28000, Expenses: 15000},
		{Month: "Jun", Revenue: 32000, Expenses: 16500},
		{Month: "Jul", Revenue: 35000, Expenses: 18000},
		{Month: "Aug", Revenue: 30000, Expenses: 17000},
		{Month: "Sep", Revenue: 26000, Expenses: 14500},
		{Month: "Oct", Revenue: 24000, Expenses: 13000},
		{Month: "Nov", Revenue: 28000, Expenses: 14000},
		{Month: "Dec", Revenue: 24500, Expenses: 12500},
	}
}

func sampleProductivity() []Productivity {
	return []Productivity{
		{Month: "Jan", Crops: 75, Livestock: 82},
		{Month: "Feb", Crops: 78, Livestock: 80},
		{Month: "Mar", Crops: 85, Livestock: 85},
		{Month: "Apr", Crops: 90, Livestock: 88},
		{Month: "May", Crops: 95, Livestock: 90},
		{Month: "Jun", Crops: 92, Livestock: 87},
		{Month: "Jul", Crops: 88, Livestock: 85},
		{Month: "Aug", Crops: 82, Livestock: 88},
		{Month: "Sep", Crops: 78, Livestock: 90},
		{Month: "Oct", Crops: 80, Livestock: 92},
		{Month: "Nov", Crops: 85, Livestock: 88},
		{Month: "Dec", Crops: 82, Livestock: 85},
	}
}

func sampleActivities() []Activity {
	return []Activity{
		{ID: "1", Type: ActivityCrop, Title: "Wheat Field Irrigated", Description: "Field A-12 irrigation completed", Time: "2 hours ago"},
		{ID: "2", Type: ActivityLivestock, Title: "Cattle Vaccination", Description: "25 cattle received annual vaccines", Time: "4 hours ago"},
		{ID: "3", Type: ActivityInventory, Title: "Fertilizer Restocked", Description: "Added 500kg NPK fertilizer", Time: "6 hours ago"},
		{ID: "4", Type: ActivityFinance, Title: "Sale Recorded", Description: "Sold 2 tons of corn - $4,200", Time: "1 day ago"},
		{ID: "5", Type: ActivityCrop, Title: "New Crop Planted", Description: "Soybeans planted in Field B-3", Time: "2 days ago"},
	}
}
