package engine

import "missionmind/internal/model"

// RiskAssessor estimates how likely a task is to miss its suspense date.
type RiskAssessor struct{}

func NewRiskAssessor() *RiskAssessor {
	return &RiskAssessor{}
}

// Assess derives a lateness estimate from the task's priority score and
// status. An overdue status overrides whatever the score said. The result
// always carries at least one driver and the standard recommended actions.
func (r *RiskAssessor) Assess(task model.Task) model.RiskInsight {
	level := model.RiskGreen
	probability := 0.2
	var drivers []string

	switch {
	case task.PriorityScore >= 0.8:
		level = model.RiskRed
		probability = 0.75
		drivers = append(drivers, "High priority score indicates urgency")
	case task.PriorityScore >= 0.6:
		level = model.RiskAmber
		probability = 0.5
		drivers = append(drivers, "Moderate urgency from suspense/prior history")
	}

	if task.Status == model.TaskStatusOverdue {
		level = model.RiskRed
		probability = 0.9
		drivers = append(drivers, "Task already overdue")
	}

	if len(drivers) == 0 {
		drivers = append(drivers, "No major risk factors detected")
	}

	return model.RiskInsight{
		TaskID:          task.ID,
		RiskLevel:       level,
		LateProbability: round2(probability),
		Drivers:         drivers,
		RecommendedActions: []string{
			"Confirm staffing plan",
			"Send reminder via notification service",
		},
	}
}
