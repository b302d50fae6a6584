package farm

import "github.com/farmflow/farmdash/internal/view"

// Task is a unit of farm work shown on the tasks page.
type Task struct {
	ID          string       `json:"id"          yaml:"id"`
	Title       string       `json:"title"       yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Priority    Priority     `json:"priority"    yaml:"priority"`
	Status      TaskStatus   `json:"status"      yaml:"status"`
	DueDate     string       `json:"due_date"    yaml:"due_date"` //nolint:tagliatelle // snake_case for data files
	Assignee    string       `json:"assignee"    yaml:"assignee"`
	Location    string       `json:"location"    yaml:"location"`
	Category    TaskCategory `json:"category"    yaml:"category"`
}

// RecordID implements [view.Record].
func (t Task) RecordID() string { return t.ID }

// Validate implements [view.Record].
func (t Task) Validate() error {
	return firstError(
		checkEnum("status", t.Status, TaskStatuses),
		checkEnum("priority", t.Priority, Priorities),
		checkEnum("category", t.Category, TaskCategories),
	)
}

// TaskSchema searches title and description and narrows by status.
var TaskSchema = view.Schema[Task, TaskStatus]{
	Selectors:    TaskStatuses,
	SelectorOf:   func(t Task) TaskStatus { return t.Status },
	SearchFields: func(t Task) []string { return []string{t.Title, t.Description} },
}

// TaskPrioritySchema narrows tasks by priority. The dashboard applies it
// after [TaskSchema] with an empty query.
var TaskPrioritySchema = view.Schema[Task, Priority]{
	Selectors:    Priorities,
	SelectorOf:   func(t Task) Priority { return t.Priority },
	SearchFields: TaskSchema.SearchFields,
}

// TaskStatusOf returns the aggregation key of a task.
func TaskStatusOf(t Task) TaskStatus { return t.Status }

// Upcoming returns up to limit tasks that are not completed, in input order.
// A limit <= 0 returns every open task.
func Upcoming(tasks []Task, limit int) []Task {
	out := make([]Task, 0, len(tasks))

	for _, t := range tasks {
		if t.Status == TaskCompleted {
			continue
		}

		if limit > 0 && len(out) == limit {
			break
		}

		out = append(out, t)
	}

	return out
}
