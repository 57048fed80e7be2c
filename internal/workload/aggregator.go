package workload

import (
	"math"
	"time"

	"github.com/google/uuid"

	"project-plan-api/internal/domain"
)

// Classification buckets a utilization percentage. Buckets are disjoint and
// exhaustive with boundaries at exactly 50, 80 and 100.
type Classification string

const (
	ClassificationUnderloaded Classification = "underloaded"
	ClassificationOptimal     Classification = "optimal"
	ClassificationHeavy       Classification = "heavy"
	ClassificationOverloaded  Classification = "overloaded"
)

// SprintLoad is a per-resource, per-sprint utilization breakdown
type SprintLoad struct {
	SprintID      uuid.UUID `json:"sprint_id"`
	SprintName    string    `json:"sprint_name"`
	CapacityHours float64   `json:"capacity_hours"`
	AssignedHours float64   `json:"assigned_hours"`
	Utilization   int       `json:"utilization_percentage"`
}

// ResourceWorkload is the computed workload view for one resource
type ResourceWorkload struct {
	ResourceID          uuid.UUID      `json:"resource_id"`
	ResourceName        string         `json:"resource_name"`
	Role                string         `json:"role"`
	WeeklyCapacityHours float64        `json:"weekly_capacity_hours"`
	AssignedHoursTotal  float64        `json:"assigned_hours_total"`
	CompletedHours      float64        `json:"completed_hours"`
	RemainingHours      float64        `json:"remaining_hours"`
	Utilization         int            `json:"utilization_percentage"`
	Classification      Classification `json:"classification"`
	TaskCount           int            `json:"task_count"`
	SprintLoads         []SprintLoad   `json:"sprint_loads"`
}

// Bottleneck identifies an overloaded resource and by how much
type Bottleneck struct {
	ResourceID    uuid.UUID `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	OverloadHours float64   `json:"overload_hours"`
}

// TeamWorkload is the team-level summary over all resources
type TeamWorkload struct {
	Resources           []ResourceWorkload     `json:"resources"`
	TotalCapacityHours  float64                `json:"total_capacity_hours"`
	TotalAssignedHours  float64                `json:"total_assigned_hours"`
	TeamUtilization     int                    `json:"team_utilization_percentage"`
	ClassificationCount map[Classification]int `json:"classification_count"`
	Bottlenecks         []Bottleneck           `json:"bottlenecks"`
}

// Classify maps a utilization percentage to its workload classification.
// First match wins: <50 underloaded, <=80 optimal, <=100 heavy, else
// overloaded.
func Classify(utilization int) Classification {
	switch {
	case utilization < 50:
		return ClassificationUnderloaded
	case utilization <= 80:
		return ClassificationOptimal
	case utilization <= 100:
		return ClassificationHeavy
	default:
		return ClassificationOverloaded
	}
}

// utilizationPercentage returns round(100*assigned/capacity), or 0 when
// capacity is not positive.
func utilizationPercentage(assigned, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(100 * assigned / capacity))
}

// SprintWeeks returns the sprint length in whole weeks, rounding up.
// A sprint shorter than a day still counts as zero weeks.
func SprintWeeks(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days / 7))
}

// Aggregate computes per-resource and team-level workload from resources,
// tasks, assignments and sprints. Missing collections degrade to empty
// results; division by zero is mapped to 0%.
func Aggregate(
	resources []*domain.Resource,
	tasks []*domain.Task,
	assignments []*domain.Assignment,
	sprints []*domain.Sprint,
) *TeamWorkload {
	tasksByID := make(map[uuid.UUID]*domain.Task, len(tasks))
	for _, t := range tasks {
		tasksByID[t.ID] = t
	}

	team := &TeamWorkload{
		Resources:           make([]ResourceWorkload, 0, len(resources)),
		ClassificationCount: make(map[Classification]int),
		Bottlenecks:         []Bottleneck{},
	}

	for _, res := range resources {
		rw := ResourceWorkload{
			ResourceID:          res.ID,
			ResourceName:        res.Name,
			Role:                res.Role,
			WeeklyCapacityHours: res.WeeklyCapacityHours,
			SprintLoads:         make([]SprintLoad, 0, len(sprints)),
		}

		var assignedTasks []*domain.Task
		for _, a := range assignments {
			if a.ResourceID != res.ID {
				continue
			}
			task := tasksByID[a.TaskID]
			switch {
			case a.AssignedHours != nil:
				rw.AssignedHoursTotal += *a.AssignedHours
			case task != nil:
				rw.AssignedHoursTotal += task.EstimatedHours
			}
			if task != nil {
				assignedTasks = append(assignedTasks, task)
			}
		}
		rw.TaskCount = len(assignedTasks)

		// Completed hours use estimated hours, not actual hours; actual
		// hours are tracked on tasks but do not feed this view.
		for _, t := range assignedTasks {
			if t.Status == domain.TaskStatusCompleted {
				rw.CompletedHours += t.EstimatedHours
			}
		}

		// Remaining can go negative when completed estimates exceed the
		// tracked assignment hours. Surfaced as-is, not clamped.
		rw.RemainingHours = rw.AssignedHoursTotal - rw.CompletedHours

		rw.Utilization = utilizationPercentage(rw.AssignedHoursTotal, res.WeeklyCapacityHours)
		rw.Classification = Classify(rw.Utilization)

		for _, sp := range sprints {
			weeks := SprintWeeks(sp.StartDate, sp.EndDate)
			capacity := res.WeeklyCapacityHours * float64(weeks)

			var assigned float64
			for _, t := range assignedTasks {
				if t.SprintID != nil && *t.SprintID == sp.ID {
					assigned += t.EstimatedHours
				}
			}

			rw.SprintLoads = append(rw.SprintLoads, SprintLoad{
				SprintID:      sp.ID,
				SprintName:    sp.Name,
				CapacityHours: capacity,
				AssignedHours: assigned,
				Utilization:   utilizationPercentage(assigned, capacity),
			})
		}

		team.Resources = append(team.Resources, rw)
		team.TotalCapacityHours += res.WeeklyCapacityHours
		team.TotalAssignedHours += rw.AssignedHoursTotal
		team.ClassificationCount[rw.Classification]++

		if rw.Classification == ClassificationOverloaded {
			team.Bottlenecks = append(team.Bottlenecks, Bottleneck{
				ResourceID:    res.ID,
				ResourceName:  res.Name,
				OverloadHours: rw.AssignedHoursTotal - res.WeeklyCapacityHours,
			})
		}
	}

	team.TeamUtilization = utilizationPercentage(team.TotalAssignedHours, team.TotalCapacityHours)

	return team
}
