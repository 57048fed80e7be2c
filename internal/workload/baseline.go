package workload

import (
	"math"
	"time"

	"project-plan-api/internal/domain"
)

// sprintOverloadThreshold flags a sprint once its task hours exceed this
// share of computed capacity.
const sprintOverloadThreshold = 0.9

// Snapshot captures a project's totals at a point in time
type Snapshot struct {
	TotalHours   float64    `json:"total_hours"`
	TaskCount    int        `json:"task_count"`
	SprintCount  int        `json:"sprint_count"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	RiskLevel    string     `json:"risk_level,omitempty"`
}

// Delta holds the differences between the current snapshot and the baseline
type Delta struct {
	Hours   float64 `json:"hours"`
	Tasks   int     `json:"tasks"`
	Sprints int     `json:"sprints"`
	Days    int     `json:"days"`
}

// BaselineComparison is the result of comparing current project totals to
// the most recent baseline. Pure read/compute, no side effects.
type BaselineComparison struct {
	HasBaseline    bool      `json:"has_baseline"`
	Baseline       *Snapshot `json:"baseline,omitempty"`
	Current        Snapshot  `json:"current"`
	Delta          Delta     `json:"delta"`
	SprintOverload []string  `json:"sprint_overload"`
}

// CompareBaseline compares the project's current tasks and sprints against
// the given baseline (nil means "no baseline yet", a valid state).
// sprintCapacityPerWeek is the flat weekly capacity assumed when sizing a
// sprint; it is a configuration parameter, distinct from the per-resource
// capacities the aggregator works with.
func CompareBaseline(
	tasks []*domain.Task,
	sprints []*domain.Sprint,
	baseline *domain.Baseline,
	projectDeadline *time.Time,
	sprintCapacityPerWeek float64,
) *BaselineComparison {
	current := Snapshot{
		TaskCount:   len(tasks),
		SprintCount: len(sprints),
	}
	for _, t := range tasks {
		current.TotalHours += t.EstimatedHours
	}

	// Delivery date is the latest sprint end date, falling back to the
	// project deadline when there are no sprints.
	var latestEnd *time.Time
	for _, sp := range sprints {
		end := sp.EndDate
		if latestEnd == nil || end.After(*latestEnd) {
			latestEnd = &end
		}
	}
	if latestEnd != nil {
		current.DeliveryDate = latestEnd
	} else {
		current.DeliveryDate = projectDeadline
	}

	comparison := &BaselineComparison{
		Current:        current,
		SprintOverload: []string{},
	}

	for _, sp := range sprints {
		var sprintHours float64
		for _, t := range tasks {
			if t.SprintID != nil && *t.SprintID == sp.ID {
				sprintHours += t.EstimatedHours
			}
		}
		capacity := float64(SprintWeeks(sp.StartDate, sp.EndDate)) * sprintCapacityPerWeek
		if sprintHours > sprintOverloadThreshold*capacity {
			comparison.SprintOverload = append(comparison.SprintOverload, sp.Name)
		}
	}

	if baseline == nil {
		// No baseline: baseline values default to current ones, so every
		// delta is zero by construction.
		return comparison
	}

	comparison.HasBaseline = true
	comparison.Baseline = &Snapshot{
		TotalHours:   baseline.TotalHours,
		TaskCount:    baseline.TaskCount,
		SprintCount:  baseline.SprintCount,
		DeliveryDate: baseline.PlannedDeliveryDate,
		RiskLevel:    baseline.RiskLevel,
	}

	comparison.Delta = Delta{
		Hours:   current.TotalHours - baseline.TotalHours,
		Tasks:   current.TaskCount - baseline.TaskCount,
		Sprints: current.SprintCount - baseline.SprintCount,
	}
	if current.DeliveryDate != nil && baseline.PlannedDeliveryDate != nil {
		comparison.Delta.Days = int(math.Round(
			current.DeliveryDate.Sub(*baseline.PlannedDeliveryDate).Hours() / 24))
	}

	return comparison
}
