package engine_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"missionmind/internal/engine"
	"missionmind/internal/model"
)

func TestSummarizerSummarize(t *testing.T) {
	summarizer := engine.NewSummarizer()

	task := model.Task{
		ID:             "T-26-000017",
		Title:          "Winter readiness inspection",
		Classification: model.ClassificationUnclassified,
		Originator:     "HQDA DCS G-3/5/7",
		SuspenseDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		PriorityScore:  0.89,
		Tags:           []string{"readiness", "training", "winter", "inspection"},
	}

	got := summarizer.Summarize(task, []string{"Coordinating with brigade for dates"})

	wantSummary := "Task T-26-000017 from HQDA DCS G-3/5/7 focuses on Winter readiness inspection. Classification U. Priority score 0.89."
	if got.Summary != wantSummary {
		t.Errorf("Summarize() summary = %q, want %q", got.Summary, wantSummary)
	}
	if got.RiskLevel != model.RiskRed {
		t.Errorf("Summarize() risk = %q, want %q", got.RiskLevel, model.RiskRed)
	}
	wantPoints := []string{
		"High priority task",
		"Due 2026-01-15",
		"Tags: readiness, training, winter",
		"Recent feedback snippets: Coordinating with brigade for dates...",
	}
	if !reflect.DeepEqual(got.KeyPoints, wantPoints) {
		t.Errorf("Summarize() key points = %v, want %v", got.KeyPoints, wantPoints)
	}
}

func TestSummarizerSummarizeQuietTask(t *testing.T) {
	summarizer := engine.NewSummarizer()

	got := summarizer.Summarize(model.Task{
		ID:             "T-26-000018",
		Title:          "Office supply order",
		Classification: model.ClassificationUnclassified,
		Originator:     "Garrison HQ",
		PriorityScore:  0.3,
	}, nil)

	if got.RiskLevel != model.RiskGreen {
		t.Errorf("Summarize() risk = %q, want %q", got.RiskLevel, model.RiskGreen)
	}
	if len(got.KeyPoints) != 0 {
		t.Errorf("Summarize() key points = %v, want none", got.KeyPoints)
	}
}

func TestSummarizerSummarizeMidScoreIsAmber(t *testing.T) {
	summarizer := engine.NewSummarizer()

	got := summarizer.Summarize(model.Task{ID: "T-26-000019", PriorityScore: 0.5}, nil)
	if got.RiskLevel != model.RiskAmber {
		t.Errorf("Summarize() risk = %q, want %q", got.RiskLevel, model.RiskAmber)
	}
}

func TestSummarizerSummarizeLongCommentClipped(t *testing.T) {
	summarizer := engine.NewSummarizer()

	comment := strings.Repeat("status update ", 20)
	got := summarizer.Summarize(model.Task{ID: "T-26-000020", PriorityScore: 0.2}, []string{comment})

	if len(got.KeyPoints) != 1 {
		t.Fatalf("Summarize() key points = %v, want exactly the feedback point", got.KeyPoints)
	}
	point := got.KeyPoints[0]
	if !strings.HasPrefix(point, "Recent feedback snippets: ") || !strings.HasSuffix(point, "...") {
		t.Fatalf("Summarize() feedback point = %q, missing prefix or ellipsis", point)
	}
	snippet := strings.TrimSuffix(strings.TrimPrefix(point, "Recent feedback snippets: "), "...")
	if len([]rune(snippet)) != 80 {
		t.Errorf("Summarize() snippet length = %d runes, want 80", len([]rune(snippet)))
	}
}
