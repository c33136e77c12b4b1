package engine_test

import (
	"math"
	"testing"
	"time"

	"missionmind/internal/engine"
	"missionmind/internal/model"
)

func TestScorerScore(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := func(days int) time.Time {
		return today.AddDate(0, 0, days)
	}

	scorer := engine.NewScorer(engine.Tables{})

	tests := []struct {
		name string
		task model.Task
		want float64
	}{
		{
			name: "headquarters tasking due this week",
			task: model.Task{
				Originator:   "HQDA DCS G-3/5/7",
				SuspenseDate: due(5),
				Tags:         []string{"readiness", "training"},
				Status:       model.TaskStatusOpen,
			},
			want: 0.79,
		},
		{
			name: "same day suspense takes full urgency",
			task: model.Task{
				Originator:   "173rd Airborne",
				SuspenseDate: due(0),
				Status:       model.TaskStatusDraft,
			},
			want: 0.72,
		},
		{
			name: "distant suspense scores low",
			task: model.Task{
				Originator:   "173rd Airborne",
				SuspenseDate: due(30),
				Status:       model.TaskStatusOpen,
			},
			want: 0.49,
		},
		{
			name: "acom originator outranks default",
			task: model.Task{
				Originator:   "ACOM FORSCOM",
				SuspenseDate: due(10),
				Status:       model.TaskStatusInWork,
			},
			want: 0.62,
		},
		{
			name: "overdue headquarters tasking with two keyword hits",
			task: model.Task{
				Originator:   "HQDA G-4",
				SuspenseDate: due(-3),
				Tags:         []string{"logistics", "personnel"},
				Status:       model.TaskStatusOverdue,
			},
			want: 0.91,
		},
		{
			name: "unknown status falls back to the default weight",
			task: model.Task{
				Originator:   "173rd Airborne",
				SuspenseDate: due(30),
				Status:       model.TaskStatus("archived"),
			},
			want: 0.48,
		},
		{
			name: "keyword in description counts once per keyword",
			task: model.Task{
				Originator:   "173rd Airborne",
				Description:  "Update intel readouts and share intel summary",
				SuspenseDate: due(30),
				Status:       model.TaskStatusDraft,
			},
			want: 0.52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.task, today)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Score() = %v, outside [0, 1]", got)
			}
			if cents := got * 100; math.Abs(cents-math.Round(cents)) > 1e-9 {
				t.Errorf("Score() = %v, not rounded to two decimals", got)
			}
		})
	}
}

func TestScorerScoreEarlierSuspenseNeverLower(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	scorer := engine.NewScorer(engine.Tables{})

	base := model.Task{
		Originator: "ACOM TRADOC",
		Tags:       []string{"training"},
		Status:     model.TaskStatusOpen,
	}

	prev := math.Inf(1)
	for _, days := range []int{-1, 0, 2, 3, 5, 7, 10, 14, 20, 60} {
		task := base
		task.SuspenseDate = today.AddDate(0, 0, days)
		got := scorer.Score(task, today)
		if got > prev {
			t.Fatalf("Score() with %d days out = %v, above %v for an earlier suspense", days, got, prev)
		}
		prev = got
	}
}

func TestScorerScoreCappedAtOne(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	scorer := engine.NewScorer(engine.Tables{
		StatusWeights: map[string]float64{string(model.TaskStatusOpen): 20},
	})

	task := model.Task{
		Originator:   "HQDA",
		SuspenseDate: today,
		Tags:         []string{"readiness", "training", "intel"},
		Status:       model.TaskStatusOpen,
	}
	if got := scorer.Score(task, today); got != 1.0 {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}
