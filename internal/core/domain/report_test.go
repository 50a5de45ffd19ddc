package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crit/internal/core/domain"
)

func diamondSchedule(t *testing.T) (*domain.TaskGraph, *domain.Schedule) {
	t.Helper()
	g, err := domain.BuildGraph([]domain.TaskRecord{
		{ID: "A", Name: "Design", Duration: 3, Lead: "ana"},
		{ID: "B", Name: "Build", Duration: 2, Predecessors: []string{"A"}},
		{ID: "C", Name: "Content", Duration: 4, Predecessors: []string{"A"}},
		{ID: "D", Name: "Deploy", Duration: 1, Predecessors: []string{"B", "C"}},
	})
	require.NoError(t, err)

	a, b, c, d := domain.NewTaskID("A"), domain.NewTaskID("B"), domain.NewTaskID("C"), domain.NewTaskID("D")
	s := domain.NewSchedule(
		[]domain.ScheduleEntry{
			{TaskID: a, ES: 0, EF: 3, LS: 0, LF: 3, Slack: 0, Critical: true},
			{TaskID: b, ES: 3, EF: 5, LS: 5, LF: 7, Slack: 2},
			{TaskID: c, ES: 3, EF: 7, LS: 3, LF: 7, Slack: 0, Critical: true},
			{TaskID: d, ES: 7, EF: 8, LS: 7, LF: 8, Slack: 0, Critical: true},
		},
		8,
		[]domain.CriticalPath{{a, c, d}},
		[]domain.Wave{
			{Index: 1, Start: 0, TaskIDs: []domain.TaskID{a}, Critical: true},
			{Index: 2, Start: 3, TaskIDs: []domain.TaskID{b, c}, Critical: true},
			{Index: 3, Start: 7, TaskIDs: []domain.TaskID{d}, Critical: true},
		},
	)
	return g, s
}

func TestSchedule_Entry(t *testing.T) {
	_, s := diamondSchedule(t)

	e, ok := s.Entry(domain.NewTaskID("B"))
	require.True(t, ok)
	assert.Equal(t, 2, e.Slack)

	_, ok = s.Entry(domain.NewTaskID("missing"))
	assert.False(t, ok)

	assert.Equal(t, []string{"A", "C", "D"}, domain.TaskIDStrings(s.CriticalTasks()))
}

func TestNewReport(t *testing.T) {
	g, s := diamondSchedule(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &domain.Project{Name: "launch", Deadline: 7, Budget: 5000, Source: "crit.yaml"}

	r := domain.NewReport(p, g, s, domain.ReportMeta{RunID: "run-1", GeneratedAt: now, Fingerprint: "abc"})

	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, now, r.GeneratedAt)
	assert.Equal(t, "abc", r.Fingerprint)
	assert.Equal(t, "days", r.Project.Unit)
	assert.Equal(t, 8, r.Duration)
	assert.Equal(t, 7, r.Deadline)
	assert.Equal(t, 1, r.Overrun)
	assert.True(t, r.Overran())
	assert.Equal(t, [][]string{{"A", "C", "D"}}, r.CriticalPaths)

	require.Len(t, r.Rows, 4)
	assert.Equal(t, domain.ReportRow{
		ID: "A", Name: "Design", Lead: "ana", Duration: 3,
		ES: 0, EF: 3, LS: 0, LF: 3, Slack: 0, Critical: true, Wave: 1,
	}, r.Rows[0])

	row, ok := r.Row("B")
	require.True(t, ok)
	assert.Equal(t, 2, row.Slack)
	assert.Equal(t, 2, row.Wave)
	assert.False(t, row.Critical)

	require.Len(t, r.Waves, 3)
	assert.Equal(t, []string{"B", "C"}, r.Waves[1].Tasks)
}

func TestNewReport_NoDeadline(t *testing.T) {
	g, s := diamondSchedule(t)
	r := domain.NewReport(&domain.Project{Name: "launch", Unit: "weeks"}, g, s, domain.ReportMeta{})

	assert.Equal(t, "weeks", r.Project.Unit)
	assert.Zero(t, r.Deadline)
	assert.Zero(t, r.Overrun)
	assert.False(t, r.Overran())
}

func TestNewReport_DeadlineMet(t *testing.T) {
	g, s := diamondSchedule(t)
	r := domain.NewReport(&domain.Project{Name: "launch", Deadline: 10}, g, s, domain.ReportMeta{})

	assert.Equal(t, 10, r.Deadline)
	assert.Zero(t, r.Overrun)
	assert.False(t, r.Overran())
}
