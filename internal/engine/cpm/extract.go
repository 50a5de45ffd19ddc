package cpm

import (
	"slices"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extract combines both passes into a Schedule: slack per task, every critical path and the
// parallel waves.
//
// A critical path starts at a zero-slack source, follows successors that have zero slack and
// start exactly when the previous task finishes, and ends at a zero-slack sink. Paths are
// ordered by source input order, then by successor topological order.
func Extract(g *domain.TaskGraph, fwd ForwardResult, bwd BackwardResult) (*domain.Schedule, error) {
	if g.Len() == 0 {
		return domain.NewSchedule(nil, 0, nil, nil), nil
	}

	entries := make([]domain.ScheduleEntry, 0, g.Len())
	critical := make(map[domain.TaskID]bool, g.Len())

	for task := range g.Walk() {
		e, err := entry(task.ID, fwd, bwd)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		critical[task.ID] = e.Critical
	}

	if !slices.ContainsFunc(entries, func(e domain.ScheduleEntry) bool { return e.Critical }) {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoCriticalPathFound, "no zero-slack task"), "tasks", g.Len())
	}

	paths := criticalPaths(g, fwd, critical)
	if len(paths) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoCriticalPathFound, "no zero-slack chain"), "tasks", g.Len())
	}

	return domain.NewSchedule(entries, fwd.ProjectFinish, paths, waves(entries)), nil
}

func entry(id domain.TaskID, fwd ForwardResult, bwd BackwardResult) (domain.ScheduleEntry, error) {
	es, okES := fwd.ES[id]
	ef, okEF := fwd.EF[id]
	ls, okLS := bwd.LS[id]
	lf, okLF := bwd.LF[id]
	if !okES || !okEF || !okLS || !okLF {
		return domain.ScheduleEntry{}, zerr.With(zerr.Wrap(domain.ErrInconsistentSchedule, "missing pass result"), "task_id", id.String())
	}

	startSlack := ls - es
	finishSlack := lf - ef
	if startSlack != finishSlack || startSlack < 0 {
		err := zerr.With(zerr.Wrap(domain.ErrInconsistentSchedule, "slack mismatch"), "task_id", id.String())
		err = zerr.With(err, "start_slack", startSlack)
		return domain.ScheduleEntry{}, zerr.With(err, "finish_slack", finishSlack)
	}

	return domain.ScheduleEntry{
		TaskID:   id,
		ES:       es,
		EF:       ef,
		LS:       ls,
		LF:       lf,
		Slack:    startSlack,
		Critical: startSlack == 0,
	}, nil
}

func criticalPaths(g *domain.TaskGraph, fwd ForwardResult, critical map[domain.TaskID]bool) []domain.CriticalPath {
	var paths []domain.CriticalPath
	var chain []domain.TaskID

	var walk func(id domain.TaskID)
	walk = func(id domain.TaskID) {
		chain = append(chain, id)
		defer func() { chain = chain[:len(chain)-1] }()

		if g.IsSink(id) {
			paths = append(paths, slices.Clone(chain))
			return
		}
		for _, succ := range g.Successors(id) {
			if critical[succ] && fwd.ES[succ] == fwd.EF[id] {
				walk(succ)
			}
		}
	}

	for _, src := range g.Sources() {
		if critical[src] {
			walk(src)
		}
	}

	return paths
}

// waves groups entries by earliest start. Waves are numbered from 1 in ascending start order;
// tasks inside a wave keep their topological order.
func waves(entries []domain.ScheduleEntry) []domain.Wave {
	byStart := make(map[int]int)
	var res []domain.Wave

	starts := make([]int, 0, len(entries))
	for _, e := range entries {
		if _, ok := byStart[e.ES]; !ok {
			byStart[e.ES] = 0
			starts = append(starts, e.ES)
		}
	}
	slices.Sort(starts)

	for i, start := range starts {
		byStart[start] = i
		res = append(res, domain.Wave{Index: i + 1, Start: start})
	}

	for _, e := range entries {
		w := &res[byStart[e.ES]]
		w.TaskIDs = append(w.TaskIDs, e.TaskID)
		w.Critical = w.Critical || e.Critical
	}

	return res
}
