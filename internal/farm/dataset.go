package farm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/farmflow/farmdash/internal/view"
)

// Dataset holds every record sequence and series the dashboard renders.
//
// A Dataset is a plain value: pages build their own record stores from it
// and never write back.
type Dataset struct {
	Tasks        []Task           `json:"tasks"        yaml:"tasks"`
	Crops        []Crop           `json:"crops"        yaml:"crops"`
	Animals      []Animal         `json:"animals"      yaml:"animals"`
	Inventory    []InventoryItem  `json:"inventory"    yaml:"inventory"`
	Transactions []Transaction    `json:"transactions" yaml:"transactions"`
	Months       []MonthlyFinance `json:"months"       yaml:"months"`
	Yields       []CropYield      `json:"yields"       yaml:"yields"`
	Herd         []HerdShare      `json:"herd"         yaml:"herd"`
	Productivity []Productivity   `json:"productivity" yaml:"productivity"`
	Resources    []ResourceUsage  `json:"resources"    yaml:"resources"`
	Activities   []Activity       `json:"activities"   yaml:"activities"`
	Weather      Weather          `json:"weather"      yaml:"weather"`
}

// Validate checks every record section the way page stores do.
// The error names the failing section.
func (d Dataset) Validate() error {
	checks := []struct {
		section string
		check   func() error
	}{
		{"tasks", func() error { return storeErr(d.Tasks) }},
		{"crops", func() error { return storeErr(d.Crops) }},
		{"animals", func() error { return storeErr(d.Animals) }},
		{"inventory", func() error { return storeErr(d.Inventory) }},
		{"transactions", func() error { return storeErr(d.Transactions) }},
		{"activities", func() error { return storeErr(d.Activities) }},
		{"months", func() error { return ValidateMonths(d.Months) }},
		{"yields", func() error { return validateEach(d.Yields) }},
		{"herd", func() error { return validateEach(d.Herd) }},
		{"productivity", func() error { return validateEach(d.Productivity) }},
		{"resources", func() error { return validateEach(d.Resources) }},
	}

	for _, c := range checks {
		err := c.check()
		if err != nil {
			return fmt.Errorf("%s: %w", c.section, err)
		}
	}

	return nil
}

func storeErr[R view.Record](records []R) error {
	_, err := view.NewStore(records)

	return err
}

// LoadDataset reads and validates a YAML dataset file.
//
// Unknown keys are rejected so that typos do not silently drop sections.
// Sections missing from the file are empty.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w %s: %w", ErrFixtureRead, path, err)
	}

	ds, err := DecodeDataset(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w %s: %w", ErrFixtureInvalid, path, err)
	}

	return ds, nil
}

// DecodeDataset parses and validates YAML dataset content.
func DecodeDataset(data []byte) (Dataset, error) {
	var ds Dataset

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&ds)
	if err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("invalid YAML: %w", err)
	}

	err = ds.Validate()
	if err != nil {
		return Dataset{}, err
	}

	return ds, nil
}
