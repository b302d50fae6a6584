package dashboard

import "github.com/farmflow/farmdash/internal/farm"

// Snapshot is every page of the dashboard built without filters. It is
// what the export command writes.
type Snapshot struct {
	Farm      string        `json:"farm"      yaml:"farm"`
	Overview  OverviewPage  `json:"overview"  yaml:"overview"`
	Tasks     TasksPage     `json:"tasks"     yaml:"tasks"`
	Crops     CropsPage     `json:"crops"     yaml:"crops"`
	Livestock LivestockPage `json:"livestock" yaml:"livestock"`
	Inventory InventoryPage `json:"inventory" yaml:"inventory"`
	Finance   FinancePage   `json:"finance"   yaml:"finance"`
	Analytics AnalyticsPage `json:"analytics" yaml:"analytics"`
}

// Build assembles a [Snapshot] of ds. farmName labels the report.
func Build(ds farm.Dataset, farmName string) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	snap.Farm = farmName

	snap.Overview, err = Overview(ds)
	if err != nil {
		return Snapshot{}, err
	}

	snap.Tasks, err = Tasks(ds, TaskFilter{})
	if err != nil {
		return Snapshot{}, err
	}

	snap.Crops, err = Crops(ds, CropFilter{})
	if err != nil {
		return Snapshot{}, err
	}

	snap.Livestock, err = Livestock(ds, LivestockFilter{})
	if err != nil {
		return Snapshot{}, err
	}

	snap.Inventory, err = Inventory(ds, InventoryFilter{})
	if err != nil {
		return Snapshot{}, err
	}

	snap.Finance, err = Finance(ds, FinanceFilter{})
	if err != nil {
		return Snapshot{}, err
	}

	snap.Analytics = Analytics(ds)

	return snap, nil
}
