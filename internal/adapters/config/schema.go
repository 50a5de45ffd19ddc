package config

// ProjectFile represents the structure of a crit.yaml or crit.toml project file.
type ProjectFile struct {
	Version string     `yaml:"version" toml:"version"`
	Project ProjectDTO `yaml:"project" toml:"project"`
	Tasks   []TaskDTO  `yaml:"tasks"   toml:"tasks"`
}

// ProjectDTO represents the project block of a project file.
type ProjectDTO struct {
	Name        string  `yaml:"name"        toml:"name"        validate:"required"`
	Description string  `yaml:"description" toml:"description"`
	Unit        string  `yaml:"unit"        toml:"unit"        validate:"omitempty,oneof=hours days weeks months"`
	Deadline    int     `yaml:"deadline"    toml:"deadline"    validate:"gte=0"`
	Budget      float64 `yaml:"budget"      toml:"budget"      validate:"gte=0"`
}

// TaskDTO represents a task definition in the project file.
// Task level rules (ids, durations, references) are enforced by domain.BuildGraph.
type TaskDTO struct {
	ID       string   `yaml:"id"       toml:"id"`
	Name     string   `yaml:"name"     toml:"name"`
	Duration int      `yaml:"duration" toml:"duration"`
	Lead     string   `yaml:"lead"     toml:"lead"`
	After    []string `yaml:"after"    toml:"after"`
}
