package farm

import (
	"strings"

	"github.com/farmflow/farmdash/internal/view"
)

// Animal is an individual animal or a tagged flock on the livestock page.
type Animal struct {
	ID              string       `json:"id"               yaml:"id"`
	Type            string       `json:"type"             yaml:"type"`
	Breed           string       `json:"breed"            yaml:"breed"`
	Tag             string       `json:"tag"              yaml:"tag"`
	Age             string       `json:"age"              yaml:"age"`
	Weight          string       `json:"weight"           yaml:"weight"`
	Health          AnimalHealth `json:"health"           yaml:"health"`
	LastCheckup     string       `json:"last_checkup"     yaml:"last_checkup"`     //nolint:tagliatelle // snake_case for data files
	NextVaccination string       `json:"next_vaccination" yaml:"next_vaccination"` //nolint:tagliatelle // snake_case for data files
	Location        string       `json:"location"         yaml:"location"`
}

// RecordID implements [view.Record].
func (a Animal) RecordID() string { return a.ID }

// Validate implements [view.Record].
func (a Animal) Validate() error {
	return checkEnum("health", a.Health, AnimalHealths)
}

// AnimalSchema searches type, tag and breed and narrows by health.
var AnimalSchema = view.Schema[Animal, AnimalHealth]{
	Selectors:    AnimalHealths,
	SelectorOf:   func(a Animal) AnimalHealth { return a.Health },
	SearchFields: func(a Animal) []string { return []string{a.Type, a.Tag, a.Breed} },
}

// AnimalTypeIs matches animals of the given type, ignoring case.
func AnimalTypeIs(typ string) func(Animal) bool {
	return func(a Animal) bool { return strings.EqualFold(a.Type, typ) }
}

// AnimalHealthOf returns the aggregation key of an animal.
func AnimalHealthOf(a Animal) AnimalHealth { return a.Health }
