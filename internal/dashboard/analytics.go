package dashboard

import (
	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/view"
)

// HerdRow is one species of the herd composition with its share of all
// head.
type HerdRow struct {
	Name  string       `json:"name"  yaml:"name"`
	Head  int          `json:"head"  yaml:"head"`
	Share view.Percent `json:"share" yaml:"share"`
}

// AnalyticsPage is the analytics view-model. Series are passed through
// unchanged for charting.
type AnalyticsPage struct {
	Yields        []farm.CropYield     `json:"yields"         yaml:"yields"`
	OnTarget      int                  `json:"on_target"      yaml:"on_target"` //nolint:tagliatelle // snake_case for reports
	Herd          []HerdRow            `json:"herd"           yaml:"herd"`
	HerdTotal     int                  `json:"herd_total"     yaml:"herd_total"` //nolint:tagliatelle // snake_case for reports
	Productivity  []farm.Productivity  `json:"productivity"   yaml:"productivity"`
	MeanCrops     view.Percent         `json:"mean_crops"     yaml:"mean_crops"`     //nolint:tagliatelle // snake_case for reports
	MeanLivestock view.Percent         `json:"mean_livestock" yaml:"mean_livestock"` //nolint:tagliatelle // snake_case for reports
	Resources     []farm.ResourceUsage `json:"resources"      yaml:"resources"`
}

// Analytics builds the analytics page.
func Analytics(ds farm.Dataset) AnalyticsPage {
	onTarget := view.Sum(ds.Yields, func(y farm.CropYield) int {
		if y.OnTarget() {
			return 1
		}

		return 0
	})

	total := view.Sum(ds.Herd, func(h farm.HerdShare) int { return h.Head })

	herd := make([]HerdRow, 0, len(ds.Herd))
	for _, h := range ds.Herd {
		herd = append(herd, HerdRow{
			Name:  h.Name,
			Head:  h.Head,
			Share: view.PercentOf(float64(h.Head), float64(total)),
		})
	}

	return AnalyticsPage{
		Yields:        cloneOrEmpty(ds.Yields),
		OnTarget:      onTarget,
		Herd:          herd,
		HerdTotal:     total,
		Productivity:  cloneOrEmpty(ds.Productivity),
		MeanCrops:     meanPercent(ds.Productivity, func(p farm.Productivity) float64 { return p.Crops }),
		MeanLivestock: meanPercent(ds.Productivity, func(p farm.Productivity) float64 { return p.Livestock }),
		Resources:     cloneOrEmpty(ds.Resources),
	}
}
