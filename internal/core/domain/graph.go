// Package domain contains the core domain models of the critical path scheduler.
package domain

import (
	"container/heap"
	"iter"
	"math"
	"slices"

	"go.trai.ch/zerr"
)

// TaskGraph is a validated, acyclic task dependency graph.
// It is built once by BuildGraph and never mutated afterwards, so it is safe for concurrent readers.
type TaskGraph struct {
	tasks      map[TaskID]Task
	index      map[TaskID]int
	successors map[TaskID][]TaskID
	inputs     []TaskID
	order      []TaskID
	sources    []TaskID
	sinks      []TaskID
}

// BuildGraph validates records and assembles them into a TaskGraph.
//
// Records are checked in input order for empty ids, negative durations and duplicate ids.
// Predecessor references are checked next, then cycles, then chains whose total duration
// does not fit in an int. Duplicate predecessor ids within one record are collapsed.
func BuildGraph(records []TaskRecord) (*TaskGraph, error) {
	g := &TaskGraph{
		tasks:      make(map[TaskID]Task, len(records)),
		index:      make(map[TaskID]int, len(records)),
		successors: make(map[TaskID][]TaskID, len(records)),
		inputs:     make([]TaskID, 0, len(records)),
	}

	for i, r := range records {
		if r.ID == "" {
			return nil, zerr.With(zerr.Wrap(ErrEmptyTaskID, "invalid task record"), "index", i)
		}
		if r.Duration < 0 {
			err := zerr.With(zerr.Wrap(ErrNegativeDuration, "invalid task record"), "task_id", r.ID)
			return nil, zerr.With(err, "duration", r.Duration)
		}
		id := NewTaskID(r.ID)
		if _, exists := g.tasks[id]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateTaskID, "invalid task record"), "task_id", r.ID)
		}

		g.tasks[id] = Task{
			ID:           id,
			Name:         r.Name,
			Duration:     r.Duration,
			Predecessors: dedupe(NewTaskIDs(r.Predecessors)),
			Lead:         r.Lead,
		}
		g.index[id] = i
		g.inputs = append(g.inputs, id)
	}

	for _, id := range g.inputs {
		for _, pred := range g.tasks[id].Predecessors {
			if _, exists := g.tasks[pred]; !exists {
				err := zerr.With(zerr.Wrap(ErrUnknownPredecessor, "invalid task record"), "task_id", id.String())
				return nil, zerr.With(err, "predecessor_id", pred.String())
			}
		}
	}

	if err := g.sort(); err != nil {
		return nil, err
	}

	if err := g.checkHorizon(); err != nil {
		return nil, err
	}

	g.link()
	return g, nil
}

// sort computes the topological order with Kahn's algorithm.
// Ties between ready tasks are broken by input order.
func (g *TaskGraph) sort() error {
	inDegree := make(map[TaskID]int, len(g.inputs))
	next := make(map[TaskID][]TaskID, len(g.inputs))
	for _, id := range g.inputs {
		preds := g.tasks[id].Predecessors
		inDegree[id] = len(preds)
		for _, pred := range preds {
			next[pred] = append(next[pred], id)
		}
	}

	ready := &indexHeap{}
	for _, id := range g.inputs {
		if inDegree[id] == 0 {
			heap.Push(ready, g.index[id])
		}
	}

	g.order = make([]TaskID, 0, len(g.inputs))
	for ready.Len() > 0 {
		id := g.inputs[heap.Pop(ready).(int)]
		g.order = append(g.order, id)
		for _, succ := range next[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				heap.Push(ready, g.index[succ])
			}
		}
	}

	if len(g.order) == len(g.inputs) {
		return nil
	}

	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid task graph"), "task_ids", cycleMembers(g.inputs, inDegree, next))
}

// checkHorizon reports the first task, in topological order, whose earliest finish would
// exceed math.MaxInt.
func (g *TaskGraph) checkHorizon() error {
	finish := make(map[TaskID]int, len(g.order))
	for _, id := range g.order {
		task := g.tasks[id]
		start := 0
		for _, pred := range task.Predecessors {
			start = max(start, finish[pred])
		}
		if task.Duration > math.MaxInt-start {
			err := zerr.With(zerr.Wrap(ErrDurationOverflow, "invalid task record"), "task_id", id.String())
			return zerr.With(err, "start", start)
		}
		finish[id] = start + task.Duration
	}
	return nil
}

// link fills successor lists, sources and sinks from the topological order.
// Successors of a task are listed in topological order.
func (g *TaskGraph) link() {
	for _, id := range g.order {
		for _, pred := range g.tasks[id].Predecessors {
			g.successors[pred] = append(g.successors[pred], id)
		}
	}
	for _, id := range g.inputs {
		if len(g.tasks[id].Predecessors) == 0 {
			g.sources = append(g.sources, id)
		}
		if len(g.successors[id]) == 0 {
			g.sinks = append(g.sinks, id)
		}
	}
}

// cycleMembers returns the ids left unsorted by Kahn's algorithm, minus those that only hang
// off a cycle. Tasks whose remaining successors are all trimmed are dropped repeatedly, which
// leaves the tasks on (or between) cycles. The result is in input order.
func cycleMembers(inputs []TaskID, inDegree map[TaskID]int, next map[TaskID][]TaskID) []string {
	remaining := make(map[TaskID]bool)
	for _, id := range inputs {
		if inDegree[id] > 0 {
			remaining[id] = true
		}
	}

	for trimmed := true; trimmed; {
		trimmed = false
		for _, id := range inputs {
			if !remaining[id] {
				continue
			}
			if !slices.ContainsFunc(next[id], func(s TaskID) bool { return remaining[s] }) {
				delete(remaining, id)
				trimmed = true
			}
		}
	}

	ids := make([]string, 0, len(remaining))
	for _, id := range inputs {
		if remaining[id] {
			ids = append(ids, id.String())
		}
	}
	return ids
}

func dedupe(ids []TaskID) []TaskID {
	seen := make(map[TaskID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Len returns the number of tasks.
func (g *TaskGraph) Len() int {
	return len(g.inputs)
}

// Task returns the task with the given id.
func (g *TaskGraph) Task(id TaskID) (Task, bool) {
	t, ok := g.tasks[id]
	return t, ok
}

// Index returns the input position of the task, or -1 when it is not in the graph.
func (g *TaskGraph) Index(id TaskID) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	return -1
}

// Predecessors returns the predecessors of id in declaration order.
func (g *TaskGraph) Predecessors(id TaskID) []TaskID {
	return slices.Clone(g.tasks[id].Predecessors)
}

// Successors returns the successors of id in topological order.
func (g *TaskGraph) Successors(id TaskID) []TaskID {
	return slices.Clone(g.successors[id])
}

// Order returns the topological order.
func (g *TaskGraph) Order() []TaskID {
	return slices.Clone(g.order)
}

// Inputs returns the task ids in input order.
func (g *TaskGraph) Inputs() []TaskID {
	return slices.Clone(g.inputs)
}

// Sources returns the tasks without predecessors in input order.
func (g *TaskGraph) Sources() []TaskID {
	return slices.Clone(g.sources)
}

// Sinks returns the tasks without successors in input order.
func (g *TaskGraph) Sinks() []TaskID {
	return slices.Clone(g.sinks)
}

// IsSource reports whether id has no predecessors.
func (g *TaskGraph) IsSource(id TaskID) bool {
	t, ok := g.tasks[id]
	return ok && len(t.Predecessors) == 0
}

// IsSink reports whether id has no successors.
func (g *TaskGraph) IsSink(id TaskID) bool {
	_, ok := g.tasks[id]
	return ok && len(g.successors[id]) == 0
}

// Walk returns an iterator that yields tasks in topological order.
func (g *TaskGraph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, id := range g.order {
			if !yield(g.tasks[id]) {
				return
			}
		}
	}
}

// Backward returns an iterator that yields tasks in reverse topological order.
func (g *TaskGraph) Backward() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, id := range slices.Backward(g.order) {
			if !yield(g.tasks[id]) {
				return
			}
		}
	}
}

// indexHeap is a min-heap of input positions.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) {
	*h = append(*h, x.(int))
}

func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
