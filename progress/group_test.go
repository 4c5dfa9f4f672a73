package progress

import (
	"testing"
	"time"

	"goalquest/model"
)

func scheduledAt(hour int, tod *model.TimeOfDay) *model.Task {
	return &model.Task{
		ScheduledDate: time.Date(2024, 3, 15, hour, 0, 0, 0, time.UTC),
		TimeOfDay:     tod,
	}
}

func todPtr(t model.TimeOfDay) *model.TimeOfDay { return &t }

func TestGroupByTimeOfDay(t *testing.T) {
	morning := scheduledAt(20, todPtr(model.TimeOfDayMorning)) // explicit choice wins over hour
	afternoon := scheduledAt(13, todPtr(model.TimeOfDayAfternoon))
	notSet := scheduledAt(9, todPtr(model.TimeOfDayNotSet)) // deliberate "no time", not missing
	missingMorning := scheduledAt(8, nil)
	missingAfternoon := scheduledAt(14, nil)
	missingEvening := scheduledAt(19, nil)

	buckets := GroupByTimeOfDay([]*model.Task{
		missingEvening, afternoon, notSet, morning, missingAfternoon, missingMorning,
	})

	if len(buckets) != 4 {
		t.Fatalf("got %d buckets, want 4", len(buckets))
	}

	wantOrder := []model.TimeOfDay{
		model.TimeOfDayMorning,
		model.TimeOfDayAfternoon,
		model.TimeOfDayEvening,
		model.TimeOfDayNotSet,
	}
	for i, want := range wantOrder {
		if buckets[i].TimeOfDay != want {
			t.Errorf("bucket %d is %q, want %q", i, buckets[i].TimeOfDay, want)
		}
	}

	wantCounts := []int{2, 2, 1, 1}
	for i, want := range wantCounts {
		if len(buckets[i].Tasks) != want {
			t.Errorf("bucket %q has %d tasks, want %d", buckets[i].TimeOfDay, len(buckets[i].Tasks), want)
		}
	}

	// The explicit not_set sentinel must not fall back to the hour bucket.
	if buckets[3].Tasks[0] != notSet {
		t.Error("explicit not_set task landed in the wrong bucket")
	}
	// The explicit morning choice overrides an evening-hour schedule.
	found := false
	for _, task := range buckets[0].Tasks {
		if task == morning {
			found = true
		}
	}
	if !found {
		t.Error("explicit morning task missing from morning bucket")
	}
}

func TestGroupByTimeOfDayOrdersWithinBucket(t *testing.T) {
	early := scheduledAt(7, nil)
	late := scheduledAt(11, nil)

	buckets := GroupByTimeOfDay([]*model.Task{late, early})
	morning := buckets[0].Tasks
	if len(morning) != 2 {
		t.Fatalf("morning bucket has %d tasks, want 2", len(morning))
	}
	if morning[0] != early || morning[1] != late {
		t.Error("tasks within a bucket are not ordered by scheduled time")
	}
}

func TestHourBucket(t *testing.T) {
	tests := []struct {
		hour int
		want model.TimeOfDay
	}{
		{0, model.TimeOfDayMorning},
		{11, model.TimeOfDayMorning},
		{12, model.TimeOfDayAfternoon},
		{16, model.TimeOfDayAfternoon},
		{17, model.TimeOfDayEvening},
		{23, model.TimeOfDayEvening},
	}

	for _, tt := range tests {
		ts := time.Date(2024, 3, 15, tt.hour, 30, 0, 0, time.UTC)
		if got := HourBucket(ts); got != tt.want {
			t.Errorf("HourBucket(hour=%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
