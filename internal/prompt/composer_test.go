package prompt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/workload"
)

func testProject() *domain.Project {
	deadline := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	return &domain.Project{
		Name:        "Warehouse Revamp",
		Description: "Modernize the intake flow",
		Status:      "active",
		Health:      "on_track",
		Progress:    40,
		Deadline:    &deadline,
	}
}

func taskList(n int) []*domain.Task {
	tasks := make([]*domain.Task, n)
	for i := range tasks {
		tasks[i] = &domain.Task{
			Title:          fmt.Sprintf("Task %d", i+1),
			Status:         domain.TaskStatusPending,
			Priority:       domain.TaskPriorityMedium,
			EstimatedHours: 8,
		}
	}
	return tasks
}

func TestProjectContext_Deterministic(t *testing.T) {
	project := testProject()
	tasks := taskList(2)
	sprints := []*domain.Sprint{{
		Name:      "Sprint 1",
		Status:    "planned",
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	}}

	first := ProjectContext(project, tasks, sprints)
	second := ProjectContext(project, tasks, sprints)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Warehouse Revamp")
	assert.Contains(t, first, "Tasks: 2 total, 16h estimated")
	assert.Contains(t, first, "Deadline: 2026-06-30")
	assert.Contains(t, first, "Sprint 1: 2026-03-02 to 2026-03-13")
}

func TestProjectContext_TruncatesLongLists(t *testing.T) {
	out := ProjectContext(testProject(), taskList(7), nil)

	assert.Contains(t, out, "Task 3")
	assert.NotContains(t, out, "Task 4")
	assert.Contains(t, out, "... and 4 more")
}

func TestProjectContext_NilDeadline(t *testing.T) {
	project := testProject()
	project.Deadline = nil

	out := ProjectContext(project, nil, nil)

	assert.Contains(t, out, "Deadline: not set")
}

func TestChangeAnalysis_IncludesRequestAndSchema(t *testing.T) {
	request := &domain.ChangeRequest{
		Title:       "Support bulk import",
		Description: "Customers want CSV upload",
		ChangeType:  "scope",
		Priority:    "high",
		Area:        "backend",
	}
	cmp := workload.CompareBaseline(nil, nil, nil, nil, 40)

	system, user := ChangeAnalysis(testProject(), nil, nil, cmp, request)

	assert.Contains(t, system, "effort_hours")
	assert.Contains(t, system, "new_tasks")
	assert.Contains(t, system, "JSON only")
	assert.Contains(t, user, "Change request: Support bulk import")
	assert.Contains(t, user, "Customers want CSV upload")
	assert.Contains(t, user, "Type: scope, Priority: high, Area: backend")
	assert.Contains(t, user, "No baseline has been set")
}

func TestAdvisor_KeepsOnlyRecentTurns(t *testing.T) {
	conversation := make([]ConversationMessage, 14)
	for i := range conversation {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		conversation[i] = ConversationMessage{Role: role, Content: fmt.Sprintf("turn %d", i)}
	}

	system, turns := Advisor(testProject(), nil, nil, conversation)

	assert.Contains(t, system, "Warehouse Revamp")
	require.Len(t, turns, 10)
	assert.Equal(t, "turn 4", turns[0].Content)
	assert.Equal(t, "turn 13", turns[9].Content)
}

func TestAdvisor_ShortConversationUnchanged(t *testing.T) {
	conversation := []ConversationMessage{{Role: "user", Content: "how are we doing?"}}

	_, turns := Advisor(testProject(), nil, nil, conversation)

	require.Len(t, turns, 1)
	assert.Equal(t, "how are we doing?", turns[0].Content)
}

func TestWorkloadContext_ListsBottlenecks(t *testing.T) {
	team := &workload.TeamWorkload{
		TotalCapacityHours: 80,
		TotalAssignedHours: 90,
		TeamUtilization:    113,
		Resources: []workload.ResourceWorkload{
			{ResourceName: "Ada", Role: "engineer", Utilization: 125, AssignedHoursTotal: 50, WeeklyCapacityHours: 40, Classification: workload.ClassificationOverloaded},
			{ResourceName: "Grace", Role: "engineer", Utilization: 100, AssignedHoursTotal: 40, WeeklyCapacityHours: 40, Classification: workload.ClassificationHeavy},
		},
		Bottlenecks: []workload.Bottleneck{{ResourceName: "Ada", OverloadHours: 10}},
	}

	out := WorkloadContext(team)

	assert.Contains(t, out, "Team capacity: 80h/week")
	assert.Contains(t, out, "Ada (engineer): 125% utilized")
	assert.Contains(t, out, "Bottlenecks:")
	assert.Contains(t, out, "Ada overloaded by 10h")
}

func TestBaselineContext_DriftLine(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	baseline := &domain.Baseline{
		TotalHours:  100,
		TaskCount:   10,
		SprintCount: 2,
	}
	tasks := []*domain.Task{{EstimatedHours: 110}}
	cmp := workload.CompareBaseline(tasks, nil, baseline, &now, 40)

	out := BaselineContext(cmp)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, out, "Baseline: 100h across 10 tasks")
	assert.Contains(t, out, "Drift: +10.0h, -9 tasks, -2 sprints")
}

func TestFormatHours_TrimsTrailingZero(t *testing.T) {
	assert.Equal(t, "8h", formatHours(8))
	assert.Equal(t, "6.5h", formatHours(6.5))
	assert.Equal(t, "0h", formatHours(0))
}
