package domain

// ScheduleEntry holds the computed times of one task.
type ScheduleEntry struct {
	TaskID   TaskID
	ES       int
	EF       int
	LS       int
	LF       int
	Slack    int
	Critical bool
}

// CriticalPath is an ordered chain of zero-slack tasks from a source to a sink.
type CriticalPath []TaskID

// Wave groups tasks that share the same earliest start and can run in parallel.
type Wave struct {
	Index    int
	Start    int
	TaskIDs  []TaskID
	Critical bool
}

// Schedule is the result of a critical path analysis.
type Schedule struct {
	// Entries are listed in topological order.
	Entries       []ScheduleEntry
	Duration      int
	CriticalPaths []CriticalPath
	Waves         []Wave

	index map[TaskID]int
}

// NewSchedule creates a Schedule and indexes its entries by task id.
func NewSchedule(entries []ScheduleEntry, duration int, paths []CriticalPath, waves []Wave) *Schedule {
	s := &Schedule{
		Entries:       entries,
		Duration:      duration,
		CriticalPaths: paths,
		Waves:         waves,
		index:         make(map[TaskID]int, len(entries)),
	}
	for i, e := range entries {
		s.index[e.TaskID] = i
	}
	return s
}

// Entry returns the entry for id.
func (s *Schedule) Entry(id TaskID) (ScheduleEntry, bool) {
	i, ok := s.index[id]
	if !ok {
		return ScheduleEntry{}, false
	}
	return s.Entries[i], true
}

// CriticalTasks returns the ids of all zero-slack tasks in topological order.
func (s *Schedule) CriticalTasks() []TaskID {
	var res []TaskID
	for _, e := range s.Entries {
		if e.Critical {
			res = append(res, e.TaskID)
		}
	}
	return res
}
