package engine

import (
	"fmt"
	"strings"

	"missionmind/internal/model"
)

// Summarizer builds a short narrative digest of a task for dashboards and
// hand-offs.
type Summarizer struct{}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize renders the task and its freshest comment into a one-paragraph
// summary with key points. The risk label here is a coarse read of the
// priority score alone; the full assessment lives with the RiskAssessor.
func (s *Summarizer) Summarize(task model.Task, comments []string) model.TaskSummary {
	summary := fmt.Sprintf(
		"Task %s from %s focuses on %s. Classification %s. Priority score %v.",
		task.ID, task.Originator, task.Title, task.Classification, task.PriorityScore,
	)

	risk := model.RiskGreen
	switch {
	case task.PriorityScore >= 0.8:
		risk = model.RiskRed
	case task.PriorityScore >= 0.5:
		risk = model.RiskAmber
	}

	var keyPoints []string
	if task.PriorityScore >= 0.8 {
		keyPoints = append(keyPoints, "High priority task")
	}
	if !task.SuspenseDate.IsZero() {
		keyPoints = append(keyPoints, "Due "+task.SuspenseDate.Format("2006-01-02"))
	}
	if len(task.Tags) > 0 {
		shown := task.Tags
		if len(shown) > 3 {
			shown = shown[:3]
		}
		keyPoints = append(keyPoints, "Tags: "+strings.Join(shown, ", "))
	}
	if len(comments) > 0 {
		keyPoints = append(keyPoints, "Recent feedback snippets: "+clip(comments[0], 80)+"...")
	}

	return model.TaskSummary{
		Summary:   summary,
		RiskLevel: risk,
		KeyPoints: keyPoints,
	}
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
