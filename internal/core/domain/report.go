package domain

import "time"

// Report is the outward facing view of a schedule: plain records, ready to render or cache.
type Report struct {
	RunID         string        `json:"run_id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Fingerprint   string        `json:"fingerprint"`
	Project       ReportProject `json:"project"`
	Duration      int           `json:"duration"`
	Deadline      int           `json:"deadline,omitzero"`
	Overrun       int           `json:"overrun,omitzero"`
	Rows          []ReportRow   `json:"tasks"`
	CriticalPaths [][]string    `json:"critical_paths"`
	Waves         []ReportWave  `json:"waves"`

	// Cached is set when the report was served from the report cache.
	Cached bool `json:"-"`
}

// ReportProject carries the project metadata shown alongside a schedule.
type ReportProject struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitzero"`
	Unit        string  `json:"unit"`
	Budget      float64 `json:"budget,omitzero"`
	Source      string  `json:"-"`
}

// ReportRow is the schedule of a single task.
type ReportRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lead     string `json:"lead,omitzero"`
	Duration int    `json:"duration"`
	ES       int    `json:"es"`
	EF       int    `json:"ef"`
	LS       int    `json:"ls"`
	LF       int    `json:"lf"`
	Slack    int    `json:"slack"`
	Critical bool   `json:"critical"`
	Wave     int    `json:"wave"`
}

// ReportWave is a group of tasks sharing the same earliest start.
type ReportWave struct {
	Index    int      `json:"index"`
	Start    int      `json:"start"`
	Tasks    []string `json:"tasks"`
	Critical bool     `json:"critical"`
}

// ReportMeta identifies a single scheduling run.
type ReportMeta struct {
	RunID       string
	GeneratedAt time.Time
	Fingerprint string
}

// NewReport flattens a schedule into a Report. Rows follow the schedule's topological order.
func NewReport(p *Project, g *TaskGraph, s *Schedule, meta ReportMeta) *Report {
	r := &Report{
		RunID:       meta.RunID,
		GeneratedAt: meta.GeneratedAt,
		Fingerprint: meta.Fingerprint,
		Project: ReportProject{
			Name:        p.Name,
			Description: p.Description,
			Unit:        p.DisplayUnit(),
			Budget:      p.Budget,
			Source:      p.Source,
		},
		Duration:      s.Duration,
		Rows:          make([]ReportRow, 0, len(s.Entries)),
		CriticalPaths: make([][]string, 0, len(s.CriticalPaths)),
		Waves:         make([]ReportWave, 0, len(s.Waves)),
	}

	if p.HasDeadline() {
		r.Deadline = p.Deadline
		r.Overrun = max(0, s.Duration-p.Deadline)
	}

	waveOf := make(map[TaskID]int, len(s.Entries))
	for _, w := range s.Waves {
		for _, id := range w.TaskIDs {
			waveOf[id] = w.Index
		}
		r.Waves = append(r.Waves, ReportWave{
			Index:    w.Index,
			Start:    w.Start,
			Tasks:    TaskIDStrings(w.TaskIDs),
			Critical: w.Critical,
		})
	}

	for _, e := range s.Entries {
		task, _ := g.Task(e.TaskID)
		r.Rows = append(r.Rows, ReportRow{
			ID:       e.TaskID.String(),
			Name:     task.Name,
			Lead:     task.Lead,
			Duration: task.Duration,
			ES:       e.ES,
			EF:       e.EF,
			LS:       e.LS,
			LF:       e.LF,
			Slack:    e.Slack,
			Critical: e.Critical,
			Wave:     waveOf[e.TaskID],
		})
	}

	for _, path := range s.CriticalPaths {
		r.CriticalPaths = append(r.CriticalPaths, TaskIDStrings(path))
	}

	return r
}

// Overran reports whether the schedule misses the project deadline.
func (r *Report) Overran() bool {
	return r.Overrun > 0
}

// Row returns the row for the given task id.
func (r *Report) Row(id string) (ReportRow, bool) {
	for _, row := range r.Rows {
		if row.ID == id {
			return row, true
		}
	}
	return ReportRow{}, false
}
