// Package cpm implements the Critical Path Method passes over a domain.TaskGraph.
package cpm

import "go.trai.ch/crit/internal/core/domain"

// ForwardResult holds the earliest start and finish of every task.
type ForwardResult struct {
	ES map[domain.TaskID]int
	EF map[domain.TaskID]int
	// ProjectFinish is the largest earliest finish over all sinks.
	ProjectFinish int
}

// ForwardPass computes earliest start and finish times in topological order.
// Sources start at 0; every other task starts when its last predecessor finishes.
func ForwardPass(g *domain.TaskGraph) ForwardResult {
	res := ForwardResult{
		ES: make(map[domain.TaskID]int, g.Len()),
		EF: make(map[domain.TaskID]int, g.Len()),
	}

	for task := range g.Walk() {
		es := 0
		for _, pred := range task.Predecessors {
			es = max(es, res.EF[pred])
		}
		res.ES[task.ID] = es
		res.EF[task.ID] = es + task.Duration
	}

	for _, id := range g.Sinks() {
		res.ProjectFinish = max(res.ProjectFinish, res.EF[id])
	}

	return res
}
