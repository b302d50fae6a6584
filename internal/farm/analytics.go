package farm

import "fmt"

// CropYield compares a crop's yield with its target, in tons per acre.
type CropYield struct {
	Crop   string  `json:"crop"   yaml:"crop"`
	Yield  float64 `json:"yield"  yaml:"yield"`
	Target float64 `json:"target" yaml:"target"`
}

// Variance returns Yield minus Target.
func (y CropYield) Variance() float64 { return y.Yield - y.Target }

// OnTarget reports whether the yield reached its target.
func (y CropYield) OnTarget() bool { return y.Yield >= y.Target }

// Validate rejects negative yields and targets.
func (y CropYield) Validate() error {
	return named(y.Crop, firstError(
		checkNonNegative("yield", y.Yield),
		checkNonNegative("target", y.Target),
	))
}

// HerdShare is the head count of one species.
type HerdShare struct {
	Name string `json:"name" yaml:"name"`
	Head int    `json:"head" yaml:"head"`
}

// Validate rejects a negative head count.
func (h HerdShare) Validate() error {
	return named(h.Name, checkNonNegative("head", float64(h.Head)))
}

// Productivity is a monthly productivity index for crops and livestock.
type Productivity struct {
	Month     string  `json:"month"     yaml:"month"`
	Crops     float64 `json:"crops"     yaml:"crops"`
	Livestock float64 `json:"livestock" yaml:"livestock"`
}

// Validate rejects negative indexes.
func (p Productivity) Validate() error {
	return named(p.Month, firstError(
		checkNonNegative("crops", p.Crops),
		checkNonNegative("livestock", p.Livestock),
	))
}

// ResourceUsage is the utilisation of one resource, in percent.
type ResourceUsage struct {
	Resource string  `json:"resource" yaml:"resource"`
	Usage    float64 `json:"usage"    yaml:"usage"`
}

// Validate rejects negative usage.
func (u ResourceUsage) Validate() error {
	return named(u.Resource, checkNonNegative("usage", u.Usage))
}

func named(name string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", name, err)
}

func validateEach[T interface{ Validate() error }](items []T) error {
	for _, item := range items {
		err := item.Validate()
		if err != nil {
			return err
		}
	}

	return nil
}
