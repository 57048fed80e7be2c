package workload

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-plan-api/internal/domain"
)

func newSprint(name string, start time.Time, days int) *domain.Sprint {
	return &domain.Sprint{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days),
	}
}

func sprintTask(hours float64, sprintID uuid.UUID) *domain.Task {
	t := newTask(hours, domain.TaskStatusPending)
	t.SprintID = &sprintID
	return t
}

func TestCompareBaseline_NoBaseline(t *testing.T) {
	tasks := []*domain.Task{
		newTask(10, domain.TaskStatusPending),
		newTask(20, domain.TaskStatusPending),
	}

	cmp := CompareBaseline(tasks, nil, nil, nil, 40)

	require.NotNil(t, cmp)
	assert.False(t, cmp.HasBaseline)
	assert.Nil(t, cmp.Baseline)
	assert.Equal(t, 30.0, cmp.Current.TotalHours)
	assert.Equal(t, 2, cmp.Current.TaskCount)
	assert.Zero(t, cmp.Delta.Hours)
	assert.Zero(t, cmp.Delta.Tasks)
	assert.Zero(t, cmp.Delta.Sprints)
	assert.Zero(t, cmp.Delta.Days)
}

func TestCompareBaseline_Deltas(t *testing.T) {
	start := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	sprint := newSprint("Sprint 1", start, 14)

	tasks := []*domain.Task{
		sprintTask(20, sprint.ID),
		newTask(15, domain.TaskStatusPending),
	}

	plannedDelivery := start.AddDate(0, 0, 7)
	baseline := &domain.Baseline{
		TotalHours:          25,
		TaskCount:           1,
		SprintCount:         0,
		PlannedDeliveryDate: &plannedDelivery,
	}

	cmp := CompareBaseline(tasks, []*domain.Sprint{sprint}, baseline, nil, 40)

	require.True(t, cmp.HasBaseline)
	require.NotNil(t, cmp.Baseline)
	assert.Equal(t, 10.0, cmp.Delta.Hours)
	assert.Equal(t, 1, cmp.Delta.Tasks)
	assert.Equal(t, 1, cmp.Delta.Sprints)
	// Delivery moved from day 7 to the sprint end at day 14.
	assert.Equal(t, 7, cmp.Delta.Days)
}

func TestCompareBaseline_DeliveryDateFallsBackToDeadline(t *testing.T) {
	deadline := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	cmp := CompareBaseline(nil, nil, nil, &deadline, 40)

	require.NotNil(t, cmp.Current.DeliveryDate)
	assert.Equal(t, deadline, *cmp.Current.DeliveryDate)
}

func TestCompareBaseline_DeliveryDateIsLatestSprintEnd(t *testing.T) {
	start := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	first := newSprint("Sprint 1", start, 14)
	second := newSprint("Sprint 2", start.AddDate(0, 0, 14), 14)
	deadline := start.AddDate(0, 0, 7) // ignored once sprints exist

	cmp := CompareBaseline(nil, []*domain.Sprint{second, first}, nil, &deadline, 40)

	require.NotNil(t, cmp.Current.DeliveryDate)
	assert.Equal(t, second.EndDate, *cmp.Current.DeliveryDate)
}

func TestCompareBaseline_DaysDeltaNeedsBothDates(t *testing.T) {
	baseline := &domain.Baseline{TotalHours: 5, TaskCount: 1}

	// No sprints and no deadline: current delivery date is unknown.
	cmp := CompareBaseline([]*domain.Task{newTask(5, domain.TaskStatusPending)}, nil, baseline, nil, 40)

	assert.True(t, cmp.HasBaseline)
	assert.Zero(t, cmp.Delta.Days)
}

func TestCompareBaseline_SprintOverload(t *testing.T) {
	start := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	oneWeek := newSprint("Tight", start, 7)

	// Capacity is 1 week * 40h = 40h, threshold 36h.
	tests := []struct {
		name       string
		hours      float64
		overloaded bool
	}{
		{"under threshold", 30, false},
		{"exactly at threshold", 36, false},
		{"just over threshold", 36.5, true},
		{"far over", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []*domain.Task{sprintTask(tt.hours, oneWeek.ID)}
			cmp := CompareBaseline(tasks, []*domain.Sprint{oneWeek}, nil, nil, 40)

			if tt.overloaded {
				assert.Equal(t, []string{"Tight"}, cmp.SprintOverload)
			} else {
				assert.Empty(t, cmp.SprintOverload)
			}
		})
	}
}

// The overload check uses the configured flat capacity, not any resource's
// weekly capacity. The same plan flips between fine and overloaded purely
// on the configuration value.
func TestCompareBaseline_CapacityIsConfigurable(t *testing.T) {
	start := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	sprint := newSprint("Sprint 1", start, 7)
	tasks := []*domain.Task{sprintTask(20, sprint.ID)}

	generous := CompareBaseline(tasks, []*domain.Sprint{sprint}, nil, nil, 40)
	assert.Empty(t, generous.SprintOverload)

	tight := CompareBaseline(tasks, []*domain.Sprint{sprint}, nil, nil, 10)
	assert.Equal(t, []string{"Sprint 1"}, tight.SprintOverload)
}

func TestProperty_NoBaselineMeansZeroDeltas(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("without a baseline all deltas are zero", prop.ForAll(
		func(taskCount, hoursEach int) bool {
			tasks := make([]*domain.Task, taskCount)
			for i := range tasks {
				tasks[i] = newTask(float64(hoursEach), domain.TaskStatusPending)
			}

			cmp := CompareBaseline(tasks, nil, nil, nil, 40)
			return !cmp.HasBaseline &&
				cmp.Delta.Hours == 0 &&
				cmp.Delta.Tasks == 0 &&
				cmp.Delta.Sprints == 0 &&
				cmp.Delta.Days == 0
		},
		gen.IntRange(0, 50),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
