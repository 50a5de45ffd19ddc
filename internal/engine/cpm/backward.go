package cpm

import "go.trai.ch/crit/internal/core/domain"

// BackwardResult holds the latest start and finish of every task.
type BackwardResult struct {
	LS map[domain.TaskID]int
	LF map[domain.TaskID]int
}

// BackwardPass computes latest start and finish times in reverse topological order,
// seeded from the project finish of fwd.
// Every sink finishes at the project finish, even when its own earliest finish is sooner.
func BackwardPass(g *domain.TaskGraph, fwd ForwardResult) BackwardResult {
	res := BackwardResult{
		LS: make(map[domain.TaskID]int, g.Len()),
		LF: make(map[domain.TaskID]int, g.Len()),
	}

	for task := range g.Backward() {
		lf := fwd.ProjectFinish
		for _, succ := range g.Successors(task.ID) {
			lf = min(lf, res.LS[succ])
		}
		res.LF[task.ID] = lf
		res.LS[task.ID] = lf - task.Duration
	}

	return res
}
