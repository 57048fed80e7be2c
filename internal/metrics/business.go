package metrics

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementTasksCreated adds to the task creation counter
func (m *Metrics) IncrementTasksCreated(n int) {
	m.safeExecute("IncrementTasksCreated", func() {
		m.TaskCreatedTotal.Add(float64(n))
	})
}

// IncrementChangeRequestCreated increments change request creation counter
func (m *Metrics) IncrementChangeRequestCreated() {
	m.safeExecute("IncrementChangeRequestCreated", func() {
		m.ChangeRequestCreatedTotal.Inc()
	})
}

// IncrementChangeAnalyzed increments change analysis counter
func (m *Metrics) IncrementChangeAnalyzed() {
	m.safeExecute("IncrementChangeAnalyzed", func() {
		m.ChangeAnalyzedTotal.Inc()
	})
}

// IncrementChangeApproved increments change approval counter
func (m *Metrics) IncrementChangeApproved() {
	m.safeExecute("IncrementChangeApproved", func() {
		m.ChangeApprovedTotal.Inc()
	})
}

// IncrementChangeRejected increments change rejection counter
func (m *Metrics) IncrementChangeRejected() {
	m.safeExecute("IncrementChangeRejected", func() {
		m.ChangeRejectedTotal.Inc()
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
