package metrics

// IncrementProjectCreated increments the project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreated.Inc()
	})
}

// IncrementSprintCreated increments the sprint creation counter
func (m *Metrics) IncrementSprintCreated() {
	m.safeExecute("IncrementSprintCreated", func() {
		m.SprintCreated.Inc()
	})
}

// IncrementUserStoryCreated increments the user story creation counter
func (m *Metrics) IncrementUserStoryCreated() {
	m.safeExecute("IncrementUserStoryCreated", func() {
		m.UserStoryCreated.Inc()
	})
}

// IncrementUserStoryMoved increments the backlog move counter
func (m *Metrics) IncrementUserStoryMoved() {
	m.safeExecute("IncrementUserStoryMoved", func() {
		m.UserStoryMoved.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreated.Inc()
	})
}

// SetProjectsTotal sets the total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetSprintsActiveTotal sets the active sprints gauge
func (m *Metrics) SetSprintsActiveTotal(count int64) {
	m.safeExecute("SetSprintsActiveTotal", func() {
		m.SprintsActiveTotal.Set(float64(count))
	})
}

// SetUserStoriesTotal sets the total user stories gauge
func (m *Metrics) SetUserStoriesTotal(count int64) {
	m.safeExecute("SetUserStoriesTotal", func() {
		m.UserStoriesTotal.Set(float64(count))
	})
}
