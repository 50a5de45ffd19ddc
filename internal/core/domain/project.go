package domain

// Project is a loaded project file: metadata plus the raw task records.
type Project struct {
	Name        string
	Description string
	// Unit names the duration unit, for display only.
	Unit string
	// Deadline is the target duration in Unit. Zero means no deadline.
	Deadline int
	Budget   float64
	Tasks    []TaskRecord
	// Source is the path the project was loaded from.
	Source string
}

// HasDeadline reports whether a deadline was declared.
func (p *Project) HasDeadline() bool {
	return p.Deadline > 0
}

// DisplayUnit returns Unit, or "days" when none was set.
func (p *Project) DisplayUnit() string {
	if p.Unit == "" {
		return "days"
	}
	return p.Unit
}
