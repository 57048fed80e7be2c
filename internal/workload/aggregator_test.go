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

func newResource(name string, capacity float64) *domain.Resource {
	return &domain.Resource{
		BaseModel:           domain.BaseModel{ID: uuid.New()},
		Name:                name,
		WeeklyCapacityHours: capacity,
	}
}

func newTask(hours float64, status domain.TaskStatus) *domain.Task {
	return &domain.Task{
		BaseModel:      domain.BaseModel{ID: uuid.New()},
		Title:          "task",
		Status:         status,
		EstimatedHours: hours,
	}
}

func assign(task *domain.Task, resource *domain.Resource, hours *float64) *domain.Assignment {
	return &domain.Assignment{
		TaskID:        task.ID,
		ResourceID:    resource.ID,
		AssignedHours: hours,
	}
}

func hoursPtr(h float64) *float64 { return &h }

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		utilization int
		expected    Classification
	}{
		{0, ClassificationUnderloaded},
		{49, ClassificationUnderloaded},
		{50, ClassificationOptimal},
		{80, ClassificationOptimal},
		{81, ClassificationHeavy},
		{100, ClassificationHeavy},
		{101, ClassificationOverloaded},
		{250, ClassificationOverloaded},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.utilization), "utilization %d", tt.utilization)
	}
}

func TestSprintWeeks(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{"one week exactly", start.AddDate(0, 0, 7), 1},
		{"eight days rounds up", start.AddDate(0, 0, 8), 2},
		{"two weeks exactly", start.AddDate(0, 0, 14), 2},
		{"single day", start.AddDate(0, 0, 1), 1},
		{"zero length", start, 0},
		{"end before start", start.AddDate(0, 0, -3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SprintWeeks(start, tt.end))
		})
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	team := Aggregate(nil, nil, nil, nil)

	require.NotNil(t, team)
	assert.Empty(t, team.Resources)
	assert.Zero(t, team.TotalCapacityHours)
	assert.Zero(t, team.TotalAssignedHours)
	assert.Zero(t, team.TeamUtilization)
	assert.Empty(t, team.Bottlenecks)
}

func TestAggregate_AssignedHoursFallback(t *testing.T) {
	res := newResource("Dana", 40)
	explicit := newTask(10, domain.TaskStatusPending)
	estimated := newTask(12, domain.TaskStatusPending)

	team := Aggregate(
		[]*domain.Resource{res},
		[]*domain.Task{explicit, estimated},
		[]*domain.Assignment{
			assign(explicit, res, hoursPtr(6)), // explicit wins over the 10h estimate
			assign(estimated, res, nil),        // falls back to the 12h estimate
		},
		nil,
	)

	require.Len(t, team.Resources, 1)
	rw := team.Resources[0]
	assert.Equal(t, 18.0, rw.AssignedHoursTotal)
	assert.Equal(t, 2, rw.TaskCount)
	assert.Equal(t, 45, rw.Utilization)
	assert.Equal(t, ClassificationUnderloaded, rw.Classification)
}

func TestAggregate_CompletedUsesEstimatedHours(t *testing.T) {
	res := newResource("Erik", 40)
	done := newTask(8, domain.TaskStatusCompleted)
	done.ActualHours = 20 // must not leak into completed hours
	open := newTask(16, domain.TaskStatusInProgress)

	team := Aggregate(
		[]*domain.Resource{res},
		[]*domain.Task{done, open},
		[]*domain.Assignment{assign(done, res, nil), assign(open, res, nil)},
		nil,
	)

	rw := team.Resources[0]
	assert.Equal(t, 24.0, rw.AssignedHoursTotal)
	assert.Equal(t, 8.0, rw.CompletedHours)
	assert.Equal(t, 16.0, rw.RemainingHours)
}

func TestAggregate_RemainingHoursCanGoNegative(t *testing.T) {
	res := newResource("Finn", 40)
	done := newTask(30, domain.TaskStatusCompleted)

	team := Aggregate(
		[]*domain.Resource{res},
		[]*domain.Task{done},
		[]*domain.Assignment{assign(done, res, hoursPtr(10))},
		nil,
	)

	rw := team.Resources[0]
	assert.Equal(t, 10.0, rw.AssignedHoursTotal)
	assert.Equal(t, 30.0, rw.CompletedHours)
	assert.Equal(t, -20.0, rw.RemainingHours)
}

func TestAggregate_ZeroCapacityResource(t *testing.T) {
	res := newResource("Gale", 0)
	task := newTask(10, domain.TaskStatusPending)

	team := Aggregate(
		[]*domain.Resource{res},
		[]*domain.Task{task},
		[]*domain.Assignment{assign(task, res, nil)},
		nil,
	)

	rw := team.Resources[0]
	assert.Equal(t, 0, rw.Utilization)
	assert.Equal(t, ClassificationUnderloaded, rw.Classification)
}

func TestAggregate_BottleneckOverloadHours(t *testing.T) {
	overloaded := newResource("Hana", 40)
	fine := newResource("Iris", 40)
	big := newTask(50, domain.TaskStatusPending)
	small := newTask(20, domain.TaskStatusPending)

	team := Aggregate(
		[]*domain.Resource{overloaded, fine},
		[]*domain.Task{big, small},
		[]*domain.Assignment{assign(big, overloaded, nil), assign(small, fine, nil)},
		nil,
	)

	require.Len(t, team.Bottlenecks, 1)
	assert.Equal(t, overloaded.ID, team.Bottlenecks[0].ResourceID)
	assert.Equal(t, 10.0, team.Bottlenecks[0].OverloadHours)

	assert.Equal(t, 80.0, team.TotalCapacityHours)
	assert.Equal(t, 70.0, team.TotalAssignedHours)
	assert.Equal(t, 88, team.TeamUtilization)
	assert.Equal(t, 1, team.ClassificationCount[ClassificationOverloaded])
	assert.Equal(t, 1, team.ClassificationCount[ClassificationUnderloaded])
}

func TestAggregate_SprintLoads(t *testing.T) {
	res := newResource("Jude", 40)
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sprint := &domain.Sprint{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      "Sprint 1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 10), // 10 days -> 2 weeks
	}

	inSprint := newTask(30, domain.TaskStatusPending)
	inSprint.SprintID = &sprint.ID
	backlog := newTask(5, domain.TaskStatusPending)

	team := Aggregate(
		[]*domain.Resource{res},
		[]*domain.Task{inSprint, backlog},
		[]*domain.Assignment{assign(inSprint, res, nil), assign(backlog, res, nil)},
		[]*domain.Sprint{sprint},
	)

	rw := team.Resources[0]
	require.Len(t, rw.SprintLoads, 1)
	load := rw.SprintLoads[0]
	assert.Equal(t, sprint.ID, load.SprintID)
	assert.Equal(t, 80.0, load.CapacityHours)
	assert.Equal(t, 30.0, load.AssignedHours)
	assert.Equal(t, 38, load.Utilization)
}

func TestProperty_ClassificationPartition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every utilization lands in exactly one bucket", prop.ForAll(
		func(utilization int) bool {
			c := Classify(utilization)
			switch {
			case utilization < 50:
				return c == ClassificationUnderloaded
			case utilization <= 80:
				return c == ClassificationOptimal
			case utilization <= 100:
				return c == ClassificationHeavy
			default:
				return c == ClassificationOverloaded
			}
		},
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}

func TestProperty_UtilizationMonotonicInAssignedHours(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("more assigned hours never lowers utilization", prop.ForAll(
		func(base, extra, capacity int) bool {
			res := newResource("property", float64(capacity))
			t1 := newTask(float64(base), domain.TaskStatusPending)
			t2 := newTask(float64(base+extra), domain.TaskStatusPending)

			lighter := Aggregate([]*domain.Resource{res}, []*domain.Task{t1},
				[]*domain.Assignment{assign(t1, res, nil)}, nil)
			heavier := Aggregate([]*domain.Resource{res}, []*domain.Task{t2},
				[]*domain.Assignment{assign(t2, res, nil)}, nil)

			return heavier.Resources[0].Utilization >= lighter.Resources[0].Utilization
		},
		gen.IntRange(0, 200),
		gen.IntRange(0, 200),
		gen.IntRange(1, 168),
	))

	properties.TestingRun(t)
}

func TestProperty_ZeroCapacityAlwaysZeroUtilization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("zero capacity yields 0% regardless of load", prop.ForAll(
		func(hours int) bool {
			res := newResource("property", 0)
			task := newTask(float64(hours), domain.TaskStatusPending)

			team := Aggregate([]*domain.Resource{res}, []*domain.Task{task},
				[]*domain.Assignment{assign(task, res, nil)}, nil)

			return team.Resources[0].Utilization == 0
		},
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
