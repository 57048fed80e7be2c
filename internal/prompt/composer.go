package prompt

import (
	"fmt"
	"strings"
	"time"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/workload"
)

// List previews are capped so prompts stay bounded regardless of project size
const (
	listPreviewLimit     = 3
	conversationTailSize = 10
)

// ConversationMessage is one turn of an advisor conversation
type ConversationMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "not set"
	}
	return t.Format("2006-01-02")
}

func formatHours(h float64) string {
	return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.1f", h), "0"), ".") + "h"
}

// ProjectContext renders a fixed-format textual snapshot of a project and
// its tasks and sprints.
func ProjectContext(project *domain.Project, tasks []*domain.Task, sprints []*domain.Sprint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", project.Name)
	if project.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", project.Description)
	}
	fmt.Fprintf(&b, "Status: %s, Health: %s, Progress: %d%%\n", project.Status, project.Health, project.Progress)
	fmt.Fprintf(&b, "Deadline: %s\n", formatDate(project.Deadline))

	var totalHours float64
	for _, t := range tasks {
		totalHours += t.EstimatedHours
	}
	fmt.Fprintf(&b, "\nTasks: %d total, %s estimated\n", len(tasks), formatHours(totalHours))
	for i, t := range tasks {
		if i == listPreviewLimit {
			fmt.Fprintf(&b, "- ... and %d more\n", len(tasks)-listPreviewLimit)
			break
		}
		fmt.Fprintf(&b, "- [%s] %s (%s, priority %d)\n", t.Status, t.Title, formatHours(t.EstimatedHours), t.Priority)
	}

	fmt.Fprintf(&b, "\nSprints: %d\n", len(sprints))
	for i, sp := range sprints {
		if i == listPreviewLimit {
			fmt.Fprintf(&b, "- ... and %d more\n", len(sprints)-listPreviewLimit)
			break
		}
		fmt.Fprintf(&b, "- %s: %s to %s (%s)\n",
			sp.Name, sp.StartDate.Format("2006-01-02"), sp.EndDate.Format("2006-01-02"), sp.Status)
	}

	return b.String()
}

// WorkloadContext renders a team workload summary
func WorkloadContext(team *workload.TeamWorkload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Team capacity: %s/week, assigned: %s, utilization: %d%%\n",
		formatHours(team.TotalCapacityHours), formatHours(team.TotalAssignedHours), team.TeamUtilization)

	for _, r := range team.Resources {
		fmt.Fprintf(&b, "- %s (%s): %d%% utilized, %s assigned of %s capacity [%s]\n",
			r.ResourceName, r.Role, r.Utilization,
			formatHours(r.AssignedHoursTotal), formatHours(r.WeeklyCapacityHours), r.Classification)
	}

	if len(team.Bottlenecks) > 0 {
		b.WriteString("Bottlenecks:\n")
		for _, bn := range team.Bottlenecks {
			fmt.Fprintf(&b, "- %s overloaded by %s\n", bn.ResourceName, formatHours(bn.OverloadHours))
		}
	}

	return b.String()
}

// BaselineContext renders a baseline-vs-current comparison
func BaselineContext(cmp *workload.BaselineComparison) string {
	var b strings.Builder

	if !cmp.HasBaseline {
		b.WriteString("No baseline has been set for this project.\n")
	} else {
		fmt.Fprintf(&b, "Baseline: %s across %d tasks, %d sprints, delivery %s\n",
			formatHours(cmp.Baseline.TotalHours), cmp.Baseline.TaskCount, cmp.Baseline.SprintCount,
			formatDate(cmp.Baseline.DeliveryDate))
	}
	fmt.Fprintf(&b, "Current: %s across %d tasks, %d sprints, delivery %s\n",
		formatHours(cmp.Current.TotalHours), cmp.Current.TaskCount, cmp.Current.SprintCount,
		formatDate(cmp.Current.DeliveryDate))
	fmt.Fprintf(&b, "Drift: %+.1fh, %+d tasks, %+d sprints, %+d days\n",
		cmp.Delta.Hours, cmp.Delta.Tasks, cmp.Delta.Sprints, cmp.Delta.Days)

	if len(cmp.SprintOverload) > 0 {
		fmt.Fprintf(&b, "Overloaded sprints: %s\n", strings.Join(cmp.SprintOverload, ", "))
	}

	return b.String()
}

// ChangeAnalysis builds the prompt for estimating a change request's impact.
// The reply must be a JSON object matching the documented analysis shape.
func ChangeAnalysis(
	project *domain.Project,
	tasks []*domain.Task,
	sprints []*domain.Sprint,
	cmp *workload.BaselineComparison,
	request *domain.ChangeRequest,
) (system, user string) {
	system = "You are a project management analyst. Estimate the impact of the " +
		"proposed change on the project plan. Respond with a single JSON object " +
		"with keys: effort_hours (number), rework_hours (number), " +
		"deadline_impact_days (integer), summary (string), " +
		"new_tasks (array of {title, description, estimated_hours, priority}), " +
		"updated_tasks (array of {title, change}), " +
		"risks (array of strings). Respond with JSON only."

	var b strings.Builder
	b.WriteString(ProjectContext(project, tasks, sprints))
	b.WriteString("\n")
	b.WriteString(BaselineContext(cmp))
	fmt.Fprintf(&b, "\nChange request: %s\n", request.Title)
	if request.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", request.Description)
	}
	fmt.Fprintf(&b, "Type: %s, Priority: %s, Area: %s\n", request.ChangeType, request.Priority, request.Area)

	return system, b.String()
}

// Breakdown builds the prompt for breaking requirements into tasks
func Breakdown(requirements string) (system, user string) {
	system = "You are a project planning assistant. Break the requirements into " +
		"concrete tasks. Respond with a single JSON object with key tasks: an " +
		"array of {title, description, estimated_hours, priority}. Priority is " +
		"one of critical, high, medium, low. Respond with JSON only."
	return system, "Requirements:\n" + requirements
}

// SprintPlan builds the prompt for distributing tasks across sprints
func SprintPlan(project *domain.Project, tasks []*domain.Task, sprints []*domain.Sprint, sprintLengthDays int) (system, user string) {
	system = "You are a sprint planning assistant. Propose how to distribute the " +
		"pending tasks across sprints. Respond with a single JSON object with key " +
		"sprints: an array of {name, goal, task_titles}. Respond with JSON only."

	var b strings.Builder
	b.WriteString(ProjectContext(project, tasks, sprints))
	fmt.Fprintf(&b, "\nPreferred sprint length: %d days\n", sprintLengthDays)
	return system, b.String()
}

// Report builds the prompt for a narrative status report
func Report(project *domain.Project, tasks []*domain.Task, sprints []*domain.Sprint, cmp *workload.BaselineComparison) (system, user string) {
	system = "You are a project management assistant. Write a concise status " +
		"report for stakeholders covering progress, schedule drift and risks. " +
		"Respond with plain text."

	var b strings.Builder
	b.WriteString(ProjectContext(project, tasks, sprints))
	b.WriteString("\n")
	b.WriteString(BaselineContext(cmp))
	return system, b.String()
}

// Advisor builds the prompt for the conversational advisor. Only the most
// recent turns of the conversation are kept.
func Advisor(project *domain.Project, tasks []*domain.Task, sprints []*domain.Sprint, conversation []ConversationMessage) (system string, turns []ConversationMessage) {
	system = "You are a project management advisor. Answer questions about the " +
		"project below, grounded in its actual data.\n\n" +
		ProjectContext(project, tasks, sprints)

	if len(conversation) > conversationTailSize {
		conversation = conversation[len(conversation)-conversationTailSize:]
	}
	return system, conversation
}

// OptimizeWorkload builds the prompt for rebalancing suggestions
func OptimizeWorkload(project *domain.Project, team *workload.TeamWorkload) (system, user string) {
	system = "You are a resource planning assistant. Suggest reassignments to " +
		"balance the team's workload. Respond with a single JSON object with key " +
		"suggestions: an array of {resource_name, action, rationale}. Respond " +
		"with JSON only."

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n\n", project.Name)
	b.WriteString(WorkloadContext(team))
	return system, b.String()
}
