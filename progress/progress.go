// Package progress holds the pure derivation logic behind GoalQuest's
// goal cards and user statistics: completion percentages, time-left
// labels, streaks, workload advisories and task grouping. Every function
// is deterministic over its inputs; callers inject the current time.
//
// All calendar-day math is done on UTC days so results do not depend on
// the server's local timezone.
package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"goalquest/model"
)

// Completion returns the percentage of completed tasks, rounded to the
// nearest integer. An empty task list is a valid state and yields 0.
func Completion(tasks []*model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// TimeLeft classifies how far away a deadline is, in the labels the goal
// cards display.
func TimeLeft(deadline, now time.Time) string {
	diffDays := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return "Overdue"
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "1 day left"
	case diffDays < 31:
		return fmt.Sprintf("%d days left", diffDays)
	case diffDays < 60:
		return "1 month left"
	default:
		return fmt.Sprintf("%d months left", diffDays/30)
	}
}

// CurrentStreak counts the run of consecutive UTC calendar days, anchored
// at the most recent completion, on which at least one of the given tasks
// was completed. Multiple completions on the same day count once.
//
// This is the freshly derived current streak; a goal's cached historical
// maximum lives in model.Goal.LongestStreak and is never conflated with it.
func CurrentStreak(tasks []*model.Task) int {
	completions := make([]time.Time, 0, len(tasks))
	for _, t := range tasks {
		if t.IsCompleted && t.CompletedAt != nil {
			completions = append(completions, *t.CompletedAt)
		}
	}
	if len(completions) == 0 {
		return 0
	}

	sort.Slice(completions, func(i, j int) bool {
		return completions[i].After(completions[j])
	})

	streak := 1
	current := DayOf(completions[0])
	for _, ts := range completions[1:] {
		day := DayOf(ts)
		gap := daysBetween(day, current)
		switch {
		case gap == 0:
			// Same tracked day, already counted.
		case gap == 1:
			streak++
			current = day
		default:
			return streak
		}
	}
	return streak
}

// RecurrenceRatio reduces the recurring/one-time split of a task list to
// its smallest integer ratio ("2:1") plus the recurring percentage. With
// no tasks the ratio is "0:0" and the percentage 0.
func RecurrenceRatio(tasks []*model.Task) (string, int) {
	total := len(tasks)
	if total == 0 {
		return "0:0", 0
	}
	recurring := 0
	for _, t := range tasks {
		if t.IsRecurring() {
			recurring++
		}
	}
	oneTime := total - recurring

	divisor := gcd(recurring, oneTime)
	if divisor == 0 {
		divisor = 1
	}
	ratio := fmt.Sprintf("%d:%d", recurring/divisor, oneTime/divisor)
	percent := int(math.Round(100 * float64(recurring) / float64(total)))
	return ratio, percent
}

// Heatmap counts task completions per UTC calendar day over the trailing
// window of days ending at now. Keys use the "2006-01-02" layout; days
// with no completions are omitted.
func Heatmap(tasks []*model.Task, now time.Time, days int) map[string]int {
	heatmap := make(map[string]int)
	if days <= 0 {
		return heatmap
	}
	cutoff := DayOf(now).AddDate(0, 0, -(days - 1))
	for _, t := range tasks {
		if !t.IsCompleted || t.CompletedAt == nil {
			continue
		}
		day := DayOf(*t.CompletedAt)
		if day.Before(cutoff) {
			continue
		}
		heatmap[day.Format("2006-01-02")]++
	}
	return heatmap
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(math.Round(later.Sub(earlier).Hours() / 24))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
