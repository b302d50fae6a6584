package dashboard

import (
	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/view"
)

// OverviewPage is the landing page view-model: stat cards plus the
// upcoming tasks, recent activity, crop progress and weather widgets.
type OverviewPage struct {
	Crops         int             `json:"crops"          yaml:"crops"`
	Animals       int             `json:"animals"        yaml:"animals"`
	Inventory     int             `json:"inventory"      yaml:"inventory"`
	Restock       int             `json:"restock"        yaml:"restock"`
	Revenue       float64         `json:"revenue"        yaml:"revenue"`
	RevenueChange view.Percent    `json:"revenue_change" yaml:"revenue_change"` //nolint:tagliatelle // snake_case for reports
	Upcoming      []farm.Task     `json:"upcoming"       yaml:"upcoming"`
	Activities    []farm.Activity `json:"activities"     yaml:"activities"`
	CropProgress  []farm.Crop     `json:"crop_progress"  yaml:"crop_progress"` //nolint:tagliatelle // snake_case for reports
	Weather       farm.Weather    `json:"weather"        yaml:"weather"`
}

// Overview builds the overview page. Revenue is the last month of the
// monthly series, zero when the series is empty.
func Overview(ds farm.Dataset) (OverviewPage, error) {
	crops, err := Crops(ds, CropFilter{})
	if err != nil {
		return OverviewPage{}, err
	}

	animals, err := newStore("animals", ds.Animals)
	if err != nil {
		return OverviewPage{}, err
	}

	inventory, err := Inventory(ds, InventoryFilter{})
	if err != nil {
		return OverviewPage{}, err
	}

	tasks, err := newStore("tasks", ds.Tasks)
	if err != nil {
		return OverviewPage{}, err
	}

	activities, err := newStore("activities", ds.Activities)
	if err != nil {
		return OverviewPage{}, err
	}

	var revenue float64
	if n := len(ds.Months); n > 0 {
		revenue = ds.Months[n-1].Revenue
	}

	return OverviewPage{
		Crops:         crops.Summary.Total,
		Animals:       animals.Len(),
		Inventory:     inventory.Summary.Total,
		Restock:       inventory.Restock,
		Revenue:       revenue,
		RevenueChange: farm.RevenueChange(ds.Months),
		Upcoming:      farm.Upcoming(tasks.All(), UpcomingLimit),
		Activities:    activities.All(),
		CropProgress:  crops.Visible,
		Weather:       ds.Weather,
	}, nil
}
