package domain

// TaskRecord is a task as supplied by a data source, before validation.
type TaskRecord struct {
	ID           string
	Name         string
	Duration     int
	Predecessors []string
	Lead         string
}

// Task is a validated unit of work inside a TaskGraph.
// Durations are integers in the project's unit (days, weeks, ...).
type Task struct {
	ID           TaskID
	Name         string
	Duration     int
	Predecessors []TaskID
	Lead         string
}
