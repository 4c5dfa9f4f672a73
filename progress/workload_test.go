package progress

import (
	"testing"
	"time"

	"goalquest/model"
)

func activeGoal(goalType model.GoalType, deadline time.Time) *model.Goal {
	return &model.Goal{Type: goalType, Deadline: deadline}
}

func TestWorkload(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	in := func(days int) time.Time { return now.AddDate(0, 0, days) }

	tests := []struct {
		name      string
		candidate time.Time
		goals     []*model.Goal
		wantScore float64
		wantTier  WorkloadTier
	}{
		{"no goals", in(14), nil, 0, WorkloadNone},
		{
			"one medium overlap is low",
			in(14),
			[]*model.Goal{activeGoal(model.GoalTypeMedium, in(60))},
			1.5, WorkloadLow,
		},
		{
			"four short overlaps are medium",
			in(14),
			[]*model.Goal{
				activeGoal(model.GoalTypeShort, in(20)),
				activeGoal(model.GoalTypeShort, in(21)),
				activeGoal(model.GoalTypeShort, in(22)),
				activeGoal(model.GoalTypeShort, in(23)),
			},
			4, WorkloadMedium,
		},
		{
			"three long overlaps are high",
			in(30),
			[]*model.Goal{
				activeGoal(model.GoalTypeLong, in(120)),
				activeGoal(model.GoalTypeLong, in(150)),
				activeGoal(model.GoalTypeLong, in(180)),
			},
			6, WorkloadHigh,
		},
		{
			"nearer existing deadline still overlaps",
			in(60),
			[]*model.Goal{activeGoal(model.GoalTypeShort, in(10))},
			1, WorkloadLow,
		},
		{
			"expired goal deadline does not overlap",
			in(14),
			[]*model.Goal{activeGoal(model.GoalTypeLong, in(-5))},
			0, WorkloadNone,
		},
		{
			"completed and archived goals are skipped",
			in(14),
			[]*model.Goal{
				{Type: model.GoalTypeLong, Deadline: in(60), IsCompleted: true},
				{Type: model.GoalTypeLong, Deadline: in(60), IsArchived: true},
			},
			0, WorkloadNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Workload(tt.candidate, tt.goals, now)
			if score != tt.wantScore {
				t.Errorf("Workload() = %v, want %v", score, tt.wantScore)
			}
			if tier := ClassifyWorkload(score); tier != tt.wantTier {
				t.Errorf("ClassifyWorkload(%v) = %q, want %q", score, tier, tt.wantTier)
			}
		})
	}
}

func TestClassifyBlueprintWorkload(t *testing.T) {
	tests := []struct {
		score float64
		want  WorkloadTier
	}{
		{0, WorkloadLow},
		{4.5, WorkloadLow},
		{5, WorkloadMedium},
		{9.5, WorkloadMedium},
		{10, WorkloadHigh},
		{15, WorkloadHigh},
	}

	for _, tt := range tests {
		if got := ClassifyBlueprintWorkload(tt.score); got != tt.want {
			t.Errorf("ClassifyBlueprintWorkload(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBlueprintWorkload(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	candidate := now.AddDate(0, 0, 30)

	existing := []*model.Goal{activeGoal(model.GoalTypeMedium, now.AddDate(0, 0, 45))}
	batch := []model.BlueprintGoal{
		{Type: model.GoalTypeShort},
		{Type: model.GoalTypeMedium},
		{Type: model.GoalTypeLong},
	}

	// 1.5 existing + (1 + 1.5 + 2) from the batch.
	if score := BlueprintWorkload(candidate, existing, batch, now); score != 6 {
		t.Errorf("BlueprintWorkload() = %v, want 6", score)
	}
}

func TestAssessDeadline(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := func(days int) time.Time { return now.AddDate(0, 0, days) }

	tests := []struct {
		name     string
		goalType model.GoalType
		deadline time.Time
		wantFit  DeadlineFit
		wantTone string
	}{
		{"short too soon", model.GoalTypeShort, in(3), DeadlineTooSoon, "amber"},
		{"short at lower bound", model.GoalTypeShort, in(7), DeadlineOK, "green"},
		{"short at upper bound", model.GoalTypeShort, in(30), DeadlineOK, "green"},
		{"short too far", model.GoalTypeShort, in(31), DeadlineTooFar, "amber"},
		{"medium too soon", model.GoalTypeMedium, in(20), DeadlineTooSoon, "amber"},
		{"medium in range", model.GoalTypeMedium, in(60), DeadlineOK, "green"},
		{"medium too far", model.GoalTypeMedium, in(91), DeadlineTooFar, "amber"},
		{"long too soon", model.GoalTypeLong, in(45), DeadlineTooSoon, "amber"},
		{"long has no upper bound", model.GoalTypeLong, in(500), DeadlineOK, "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessDeadline(tt.goalType, tt.deadline, now)
			if got.Fit != tt.wantFit {
				t.Errorf("AssessDeadline().Fit = %q, want %q", got.Fit, tt.wantFit)
			}
			if got.Tone != tt.wantTone {
				t.Errorf("AssessDeadline().Tone = %q, want %q", got.Tone, tt.wantTone)
			}
			if got.Advice == "" {
				t.Error("AssessDeadline() returned empty advice")
			}
		})
	}
}
