package engine

import (
	"unicode/utf8"

	"missionmind/internal/model"
)

const minDescriptionLen = 30

// QualityChecker flags completeness problems that should be fixed before a
// task goes out for approval.
type QualityChecker struct{}

func NewQualityChecker() *QualityChecker {
	return &QualityChecker{}
}

// Check inspects the task and returns the issues found. Passed is true only
// when no issue of medium or higher severity remains.
func (q *QualityChecker) Check(task model.Task) model.QualityCheckResult {
	var issues []model.QualityIssue

	if utf8.RuneCountInString(task.Description) < minDescriptionLen {
		issues = append(issues, model.QualityIssue{
			Code:     "DESC_LEN",
			Severity: model.SeverityMedium,
			Message:  "Description is brief; Army 25-50 recommends more context.",
		})
	}
	if task.RecordSeriesID == "" {
		issues = append(issues, model.QualityIssue{
			Code:     "ARIMS_TAG",
			Severity: model.SeverityLow,
			Message:  "ARIMS record series missing; add before final approval.",
		})
	}

	passed := true
	for _, issue := range issues {
		if issue.Severity.Rank() >= model.SeverityMedium.Rank() {
			passed = false
			break
		}
	}

	return model.QualityCheckResult{
		TaskID: task.ID,
		Issues: issues,
		Passed: passed,
	}
}
