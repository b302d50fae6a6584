package farm

import (
	"fmt"

	"github.com/farmflow/farmdash/internal/view"
)

// Crop is one planting tracked on the crops page.
type Crop struct {
	ID              string     `json:"id"               yaml:"id"`
	Name            string     `json:"name"             yaml:"name"`
	Variety         string     `json:"variety"          yaml:"variety"`
	Field           string     `json:"field"            yaml:"field"`
	AreaAcres       float64    `json:"area_acres"       yaml:"area_acres"`       //nolint:tagliatelle // snake_case for data files
	PlantedDate     string     `json:"planted_date"     yaml:"planted_date"`     //nolint:tagliatelle // snake_case for data files
	ExpectedHarvest string     `json:"expected_harvest" yaml:"expected_harvest"` //nolint:tagliatelle // snake_case for data files
	Progress        int        `json:"progress"         yaml:"progress"`
	Stage           string     `json:"stage"            yaml:"stage"`
	Health          CropHealth `json:"health"           yaml:"health"`
	LastActivity    string     `json:"last_activity"    yaml:"last_activity"` //nolint:tagliatelle // snake_case for data files
	Irrigation      Irrigation `json:"irrigation"       yaml:"irrigation"`
}

// RecordID implements [view.Record].
func (c Crop) RecordID() string { return c.ID }

// Validate implements [view.Record]. Health is an observed input and is only
// checked for enumeration membership.
func (c Crop) Validate() error {
	err := firstError(
		checkEnum("health", c.Health, CropHealths),
		checkEnum("irrigation", c.Irrigation, Irrigations),
		checkNonNegative("area_acres", c.AreaAcres),
	)
	if err != nil {
		return err
	}

	if c.Progress < 0 || c.Progress > 100 {
		return fmt.Errorf("%w: progress=%d outside 0-100", ErrInvalidValue, c.Progress)
	}

	return nil
}

// CropSchema searches name and field and narrows by health.
var CropSchema = view.Schema[Crop, CropHealth]{
	Selectors:    CropHealths,
	SelectorOf:   func(c Crop) CropHealth { return c.Health },
	SearchFields: func(c Crop) []string { return []string{c.Name, c.Field} },
}

// CropHealthOf returns the health aggregation key of a crop.
func CropHealthOf(c Crop) CropHealth { return c.Health }

// CropIrrigationOf returns the irrigation aggregation key of a crop.
func CropIrrigationOf(c Crop) Irrigation { return c.Irrigation }
