package cpm_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/engine/cpm"
)

func rec(id string, duration int, preds ...string) domain.TaskRecord {
	return domain.TaskRecord{ID: id, Name: id, Duration: duration, Predecessors: preds}
}

func schedule(t *testing.T, records ...domain.TaskRecord) (*domain.TaskGraph, *domain.Schedule) {
	t.Helper()
	g, err := domain.BuildGraph(records)
	require.NoError(t, err)

	fwd := cpm.ForwardPass(g)
	bwd := cpm.BackwardPass(g, fwd)
	s, err := cpm.Extract(g, fwd, bwd)
	require.NoError(t, err)
	return g, s
}

func pathStrings(s *domain.Schedule) [][]string {
	res := make([][]string, 0, len(s.CriticalPaths))
	for _, p := range s.CriticalPaths {
		res = append(res, domain.TaskIDStrings(p))
	}
	return res
}

type times struct {
	es, ef, ls, lf, slack int
}

func TestSchedule_Examples(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.TaskRecord
		duration int
		paths    [][]string
		times    map[string]times
	}{
		{
			name: "Diamond",
			records: []domain.TaskRecord{
				rec("A", 3),
				rec("B", 2, "A"),
				rec("C", 4, "A"),
				rec("D", 1, "B", "C"),
			},
			duration: 8,
			paths:    [][]string{{"A", "C", "D"}},
			times: map[string]times{
				"A": {0, 3, 0, 3, 0},
				"B": {3, 5, 5, 7, 2},
				"C": {3, 7, 3, 7, 0},
				"D": {7, 8, 7, 8, 0},
			},
		},
		{
			name: "TwoIndependentEqualChains",
			records: []domain.TaskRecord{
				rec("A", 2),
				rec("B", 3, "A"),
				rec("C", 2),
				rec("D", 3, "C"),
			},
			duration: 5,
			paths:    [][]string{{"A", "B"}, {"C", "D"}},
		},
		{
			name: "BranchesOfEqualLength",
			records: []domain.TaskRecord{
				rec("A", 1),
				rec("B", 2, "A"),
				rec("C", 2, "A"),
				rec("D", 1, "B", "C"),
			},
			duration: 4,
			paths:    [][]string{{"A", "B", "D"}, {"A", "C", "D"}},
		},
		{
			name:     "SingleTask",
			records:  []domain.TaskRecord{rec("X", 4)},
			duration: 4,
			paths:    [][]string{{"X"}},
			times:    map[string]times{"X": {0, 4, 0, 4, 0}},
		},
		{
			name:     "ZeroDurations",
			records:  []domain.TaskRecord{rec("A", 0), rec("B", 0, "A")},
			duration: 0,
			paths:    [][]string{{"A", "B"}},
			times: map[string]times{
				"A": {0, 0, 0, 0, 0},
				"B": {0, 0, 0, 0, 0},
			},
		},
		{
			name:     "ShortSinkFinishesAtProjectEnd",
			records:  []domain.TaskRecord{rec("A", 5), rec("B", 1)},
			duration: 5,
			paths:    [][]string{{"A"}},
			times:    map[string]times{"B": {0, 1, 4, 5, 4}},
		},
		{
			name: "ZeroSlackEdgeThatDoesNotDriveItsSuccessor",
			records: []domain.TaskRecord{
				rec("A", 2),
				rec("X", 5),
				rec("D", 8, "A"),
				rec("C", 5, "A", "X"),
			},
			duration: 10,
			paths:    [][]string{{"A", "D"}, {"X", "C"}},
		},
		{
			name: "InputOrderIsNotTopological",
			records: []domain.TaskRecord{
				rec("deploy", 1, "build", "docs"),
				rec("docs", 2, "design"),
				rec("build", 5, "design"),
				rec("design", 3),
			},
			duration: 9,
			paths:    [][]string{{"design", "build", "deploy"}},
			times: map[string]times{
				"docs": {3, 5, 6, 8, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := schedule(t, tt.records...)

			assert.Equal(t, tt.duration, s.Duration)
			assert.Equal(t, tt.paths, pathStrings(s))

			for id, want := range tt.times {
				e, ok := s.Entry(domain.NewTaskID(id))
				require.True(t, ok, id)
				assert.Equal(t, want, times{e.ES, e.EF, e.LS, e.LF, e.Slack}, id)
				assert.Equal(t, want.slack == 0, e.Critical, id)
			}
		})
	}
}

func TestSchedule_EntriesFollowTopologicalOrder(t *testing.T) {
	g, s := schedule(t,
		rec("C", 1, "B"),
		rec("A", 1),
		rec("B", 1, "A"),
	)

	got := make([]domain.TaskID, 0, len(s.Entries))
	for _, e := range s.Entries {
		got = append(got, e.TaskID)
	}
	assert.Equal(t, g.Order(), got)
}

func TestSchedule_Waves(t *testing.T) {
	_, s := schedule(t,
		rec("A", 3),
		rec("B", 2, "A"),
		rec("C", 4, "A"),
		rec("D", 1, "B", "C"),
		rec("E", 1),
	)

	require.Len(t, s.Waves, 3)

	assert.Equal(t, 1, s.Waves[0].Index)
	assert.Equal(t, 0, s.Waves[0].Start)
	assert.Equal(t, []string{"A", "E"}, domain.TaskIDStrings(s.Waves[0].TaskIDs))
	assert.True(t, s.Waves[0].Critical)

	assert.Equal(t, 3, s.Waves[1].Start)
	assert.Equal(t, []string{"B", "C"}, domain.TaskIDStrings(s.Waves[1].TaskIDs))

	assert.Equal(t, 3, s.Waves[2].Index)
	assert.Equal(t, 7, s.Waves[2].Start)
	assert.Equal(t, []string{"D"}, domain.TaskIDStrings(s.Waves[2].TaskIDs))
}

func TestSchedule_Empty(t *testing.T) {
	g, err := domain.BuildGraph(nil)
	require.NoError(t, err)

	fwd := cpm.ForwardPass(g)
	assert.Equal(t, 0, fwd.ProjectFinish)

	s, err := cpm.Extract(g, fwd, cpm.BackwardPass(g, fwd))
	require.NoError(t, err)
	assert.Empty(t, s.Entries)
	assert.Empty(t, s.CriticalPaths)
	assert.Empty(t, s.Waves)
	assert.Equal(t, 0, s.Duration)
}

func TestExtract_Inconsistent(t *testing.T) {
	g, err := domain.BuildGraph([]domain.TaskRecord{rec("A", 2)})
	require.NoError(t, err)
	a := domain.NewTaskID("A")

	tests := []struct {
		name string
		fwd  cpm.ForwardResult
		bwd  cpm.BackwardResult
		want error
	}{
		{
			name: "SlackMismatch",
			fwd:  cpm.ForwardResult{ES: map[domain.TaskID]int{a: 0}, EF: map[domain.TaskID]int{a: 2}, ProjectFinish: 2},
			bwd:  cpm.BackwardResult{LS: map[domain.TaskID]int{a: 1}, LF: map[domain.TaskID]int{a: 2}},
			want: domain.ErrInconsistentSchedule,
		},
		{
			name: "NegativeSlack",
			fwd:  cpm.ForwardResult{ES: map[domain.TaskID]int{a: 1}, EF: map[domain.TaskID]int{a: 3}, ProjectFinish: 3},
			bwd:  cpm.BackwardResult{LS: map[domain.TaskID]int{a: 0}, LF: map[domain.TaskID]int{a: 2}},
			want: domain.ErrInconsistentSchedule,
		},
		{
			name: "MissingEntries",
			fwd:  cpm.ForwardResult{},
			bwd:  cpm.BackwardResult{},
			want: domain.ErrInconsistentSchedule,
		},
		{
			name: "NoZeroSlackTask",
			fwd:  cpm.ForwardResult{ES: map[domain.TaskID]int{a: 0}, EF: map[domain.TaskID]int{a: 2}, ProjectFinish: 2},
			bwd:  cpm.BackwardResult{LS: map[domain.TaskID]int{a: 1}, LF: map[domain.TaskID]int{a: 3}},
			want: domain.ErrNoCriticalPathFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := cpm.Extract(g, tt.fwd, tt.bwd)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// randomRecords builds an acyclic project where every task may depend on any earlier one.
func randomRecords(r *rand.Rand, n int) []domain.TaskRecord {
	records := make([]domain.TaskRecord, n)
	for i := range n {
		var preds []string
		for j := range i {
			if r.IntN(4) == 0 {
				preds = append(preds, "t"+strconv.Itoa(j))
			}
		}
		records[i] = rec("t"+strconv.Itoa(i), r.IntN(6), preds...)
	}
	r.Shuffle(n, func(i, j int) { records[i], records[j] = records[j], records[i] })
	return records
}

func TestSchedule_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for round := range 200 {
		records := randomRecords(r, 1+r.IntN(25))

		t.Run(strconv.Itoa(round), func(t *testing.T) {
			g, s := schedule(t, records...)

			maxEF := 0
			for _, e := range s.Entries {
				task, ok := g.Task(e.TaskID)
				require.True(t, ok)

				assert.GreaterOrEqual(t, e.ES, 0)
				assert.Equal(t, e.ES+task.Duration, e.EF)
				assert.Equal(t, e.LS+task.Duration, e.LF)
				assert.Equal(t, e.LS-e.ES, e.Slack)
				assert.Equal(t, e.LF-e.EF, e.Slack)
				assert.GreaterOrEqual(t, e.Slack, 0)
				assert.Equal(t, e.Slack == 0, e.Critical)
				assert.LessOrEqual(t, e.LF, s.Duration)
				for _, pred := range task.Predecessors {
					p, _ := s.Entry(pred)
					assert.LessOrEqual(t, p.EF, e.ES)
					assert.LessOrEqual(t, p.LF, e.LS)
				}
				maxEF = max(maxEF, e.EF)
			}
			assert.Equal(t, maxEF, s.Duration)
			assert.NotEmpty(t, s.CriticalTasks())
			require.NotEmpty(t, s.CriticalPaths)

			for _, path := range s.CriticalPaths {
				require.NotEmpty(t, path)
				assert.True(t, g.IsSource(path[0]))
				assert.True(t, g.IsSink(path[len(path)-1]))

				length := 0
				for i, id := range path {
					e, _ := s.Entry(id)
					assert.Zero(t, e.Slack)
					task, _ := g.Task(id)
					length += task.Duration
					if i > 0 {
						assert.Contains(t, task.Predecessors, path[i-1])
					}
				}
				assert.Equal(t, s.Duration, length)
			}

			for i, p := range s.CriticalPaths {
				for j, q := range s.CriticalPaths {
					if i != j {
						assert.False(t, slices.Equal(p, q), "duplicate path")
					}
				}
			}
		})
	}
}
