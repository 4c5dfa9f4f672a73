package progress

import (
	"math/rand"
	"testing"
	"time"

	"goalquest/model"
)

func completedOn(day string) *model.Task {
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	// Completions land mid-morning so day truncation is exercised.
	ts = ts.Add(9 * time.Hour)
	return &model.Task{IsCompleted: true, CompletedAt: &ts}
}

func pendingTask() *model.Task {
	return &model.Task{}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*model.Task
		want  int
	}{
		{"empty list", nil, 0},
		{"none complete", []*model.Task{pendingTask(), pendingTask()}, 0},
		{"half complete", []*model.Task{completedOn("2024-01-01"), pendingTask()}, 50},
		{"one of three", []*model.Task{completedOn("2024-01-01"), pendingTask(), pendingTask()}, 33},
		{"two of three rounds up", []*model.Task{completedOn("2024-01-01"), completedOn("2024-01-02"), pendingTask()}, 67},
		{"all complete", []*model.Task{completedOn("2024-01-01")}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completion(tt.tasks); got != tt.want {
				t.Errorf("Completion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompletionBoundsAndMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(20)
		tasks := make([]*model.Task, 0, n)
		for j := 0; j < n; j++ {
			if rng.Intn(2) == 0 {
				tasks = append(tasks, completedOn("2024-01-01"))
			} else {
				tasks = append(tasks, pendingTask())
			}
		}

		before := Completion(tasks)
		if before < 0 || before > 100 {
			t.Fatalf("Completion() = %d, out of [0,100]", before)
		}
		if before != Completion(tasks) {
			t.Fatal("Completion() is not deterministic for identical input")
		}

		// Completing one more task must never lower the percentage.
		for _, task := range tasks {
			if !task.IsCompleted {
				task.IsCompleted = true
				break
			}
		}
		if after := Completion(tasks); after < before {
			t.Fatalf("Completion() dropped from %d to %d after completing a task", before, after)
		}
	}
}

func TestTimeLeft(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"deadline now", now, "Today"},
		{"one day", now.AddDate(0, 0, 1), "1 day left"},
		{"yesterday", now.AddDate(0, 0, -1), "Overdue"},
		{"ten days", now.AddDate(0, 0, 10), "10 days left"},
		{"thirty days", now.AddDate(0, 0, 30), "30 days left"},
		{"thirty-one days", now.AddDate(0, 0, 31), "1 month left"},
		{"forty-five days", now.AddDate(0, 0, 45), "1 month left"},
		{"fifty-nine days", now.AddDate(0, 0, 59), "1 month left"},
		{"sixty days", now.AddDate(0, 0, 60), "2 months left"},
		{"ninety days", now.AddDate(0, 0, 90), "3 months left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeLeft(tt.deadline, now); got != tt.want {
				t.Errorf("TimeLeft() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*model.Task
		want  int
	}{
		{"no tasks", nil, 0},
		{"no completions", []*model.Task{pendingTask()}, 0},
		{
			"three consecutive days",
			[]*model.Task{completedOn("2024-01-03"), completedOn("2024-01-02"), completedOn("2024-01-01")},
			3,
		},
		{
			"gap breaks the streak",
			[]*model.Task{completedOn("2024-01-05"), completedOn("2024-01-01")},
			1,
		},
		{
			"same-day completions count once",
			[]*model.Task{completedOn("2024-01-05"), completedOn("2024-01-05"), completedOn("2024-01-04")},
			2,
		},
		{
			"unsorted input",
			[]*model.Task{completedOn("2024-01-01"), completedOn("2024-01-03"), completedOn("2024-01-02")},
			3,
		},
		{
			"run before a gap is ignored",
			[]*model.Task{
				completedOn("2024-01-10"), completedOn("2024-01-09"),
				completedOn("2024-01-05"), completedOn("2024-01-04"), completedOn("2024-01-03"),
			},
			2,
		},
		{"single completion", []*model.Task{completedOn("2024-01-05")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.tasks); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 1, 2, 23, 50, 0, 0, time.UTC)
	early := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)
	tasks := []*model.Task{
		{IsCompleted: true, CompletedAt: &late},
		{IsCompleted: true, CompletedAt: &early},
	}
	// Nearly 48 hours apart, but adjacent calendar days.
	if got := CurrentStreak(tasks); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}

func TestRecurrenceRatio(t *testing.T) {
	recurring := func() *model.Task { return &model.Task{IsRepeating: true} }
	spawned := func() *model.Task { return &model.Task{ParentTaskID: "parent"} }
	patterned := func() *model.Task { return &model.Task{RepeatType: model.RepeatWeekly} }

	tests := []struct {
		name        string
		tasks       []*model.Task
		wantRatio   string
		wantPercent int
	}{
		{"no tasks", nil, "0:0", 0},
		{
			"six recurring three one-time",
			[]*model.Task{
				recurring(), recurring(), spawned(), spawned(), patterned(), patterned(),
				pendingTask(), pendingTask(), pendingTask(),
			},
			"2:1", 67,
		},
		{"all recurring", []*model.Task{recurring(), recurring()}, "1:0", 100},
		{"all one-time", []*model.Task{pendingTask(), pendingTask(), pendingTask()}, "0:1", 0},
		{"repeat none is one-time", []*model.Task{{RepeatType: model.RepeatNone}}, "0:1", 0},
		{"even split", []*model.Task{recurring(), pendingTask()}, "1:1", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, percent := RecurrenceRatio(tt.tasks)
			if ratio != tt.wantRatio || percent != tt.wantPercent {
				t.Errorf("RecurrenceRatio() = (%q, %d), want (%q, %d)",
					ratio, percent, tt.wantRatio, tt.wantPercent)
			}
		})
	}
}

func TestHeatmap(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tasks := []*model.Task{
		completedOn("2024-03-15"),
		completedOn("2024-03-15"),
		completedOn("2024-03-01"),
		completedOn("2023-11-01"), // outside the window
		pendingTask(),
	}

	heatmap := Heatmap(tasks, now, 90)
	if got := heatmap["2024-03-15"]; got != 2 {
		t.Errorf("heatmap[2024-03-15] = %d, want 2", got)
	}
	if got := heatmap["2024-03-01"]; got != 1 {
		t.Errorf("heatmap[2024-03-01] = %d, want 1", got)
	}
	if _, ok := heatmap["2023-11-01"]; ok {
		t.Error("completion outside the window should not appear")
	}
	if len(heatmap) != 2 {
		t.Errorf("heatmap has %d entries, want 2", len(heatmap))
	}
}
