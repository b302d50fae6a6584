package farm_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/farmflow/farmdash/internal/farm"
	"github.com/farmflow/farmdash/internal/view"
)

func TestCropSchemaScenario(t *testing.T) {
	t.Parallel()

	crops := []farm.Crop{
		{ID: "1", Name: "Wheat", Field: "Field A-12"},
		{ID: "2", Name: "Corn", Field: "Field B-7"},
	}

	got := farm.CropSchema.Filter(crops, "WHE", "")

	if diff := cmp.Diff([]farm.Crop{crops[0]}, got); diff != "" {
		t.Errorf("Filter(WHE) mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskSchemaSearchesDescription(t *testing.T) {
	t.Parallel()

	tasks := farm.SampleDataset().Tasks

	got := farm.TaskSchema.Filter(tasks, "npk", "")
	if len(got) != 1 || got[0].ID != "5" {
		t.Fatalf("Filter(npk)=%v, want task 5", got)
	}

	got = farm.TaskSchema.Filter(tasks, "irrigation", farm.TaskCompleted)
	if len(got) != 0 {
		t.Errorf("Filter(irrigation, completed)=%v, want none", got)
	}
}

func TestAnimalSchemaSearchesTagAndBreed(t *testing.T) {
	t.Parallel()

	animals := farm.SampleDataset().Animals

	for _, tt := range []struct {
		query string
		want  []string
	}{
		{query: "c-0", want: []string{"1", "2"}},
		{query: "merino", want: []string{"3"}},
		{query: "cattle", want: []string{"1", "2"}},
		{query: "flock", want: []string{"5"}},
	} {
		var got []string
		for _, a := range farm.AnimalSchema.Filter(animals, tt.query, "") {
			got = append(got, a.ID)
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	tasks := farm.SampleDataset().Tasks

	var got []string
	for _, task := range farm.Upcoming(tasks, 4) {
		got = append(got, task.ID)
	}

	if diff := cmp.Diff([]string{"1", "2", "3", "5"}, got); diff != "" {
		t.Errorf("Upcoming mismatch (-want +got):\n%s", diff)
	}

	if n := len(farm.Upcoming(tasks, 0)); n != 5 {
		t.Errorf("Upcoming(limit=0) len=%d, want=5", n)
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		rec  view.Record
	}{
		{name: "task status", rec: farm.Task{ID: "1", Status: "done", Priority: farm.PriorityLow, Category: farm.TaskCrop}},
		{name: "task priority", rec: farm.Task{ID: "1", Status: farm.TaskPending, Priority: "urgent", Category: farm.TaskCrop}},
		{name: "task category", rec: farm.Task{ID: "1", Status: farm.TaskPending, Priority: farm.PriorityLow, Category: "admin"}},
		{name: "crop health", rec: farm.Crop{ID: "1", Health: "fine", Irrigation: farm.IrrigationOptimal}},
		{name: "crop irrigation", rec: farm.Crop{ID: "1", Health: farm.CropGood, Irrigation: "dry"}},
		{name: "crop progress", rec: farm.Crop{ID: "1", Health: farm.CropGood, Irrigation: farm.IrrigationOptimal, Progress: 101}},
		{name: "animal health", rec: farm.Animal{ID: "1", Health: "Healthy"}},
		{name: "transaction type", rec: farm.Transaction{ID: "1", Type: "refund"}},
		{name: "transaction amount", rec: farm.Transaction{ID: "1", Type: farm.Income, Amount: -5}},
		{name: "activity type", rec: farm.Activity{ID: "1", Type: "weather"}},
	} {
		err := tt.rec.Validate()
		if !errors.Is(err, farm.ErrInvalidValue) {
			t.Errorf("%s: err=%v, want ErrInvalidValue", tt.name, err)
		}
	}
}
