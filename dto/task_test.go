package dto

import (
	"testing"
	"time"

	"goalquest/model"
)

func TestToTaskResponseTimeOfDayFallback(t *testing.T) {
	evening := model.TimeOfDayEvening

	explicit := &model.Task{
		TaskID:        "t1",
		ScheduledDate: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
		TimeOfDay:     &evening,
	}
	if got := ToTaskResponse(explicit).TimeOfDay; got != model.TimeOfDayEvening {
		t.Errorf("explicit bucket overridden, got %q", got)
	}

	// Without an explicit bucket the scheduled hour decides.
	implicit := &model.Task{
		TaskID:        "t2",
		ScheduledDate: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
	if got := ToTaskResponse(implicit).TimeOfDay; got != model.TimeOfDayMorning {
		t.Errorf("8:00 should map to morning, got %q", got)
	}
}

func TestToGoalResponseLongestStreak(t *testing.T) {
	cached := 7
	goal := &model.Goal{
		GoalID:        "g1",
		Title:         "Practice piano",
		Type:          model.GoalTypeMedium,
		Deadline:      time.Now().AddDate(0, 1, 0),
		LongestStreak: &cached,
	}

	response := ToGoalResponse(goal, nil)
	if response.CurrentStreak != 0 {
		t.Errorf("current streak with no tasks = %d, want 0", response.CurrentStreak)
	}
	if response.LongestStreak != 7 {
		t.Errorf("longest streak should prefer the cached maximum, got %d", response.LongestStreak)
	}
}
