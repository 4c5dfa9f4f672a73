package model

import "time"

type UserStats struct {
	GoalStats struct {
		Total     int `json:"total"`
		Active    int `json:"active"`
		Completed int `json:"completed"`
		Archived  int `json:"archived"`
	} `json:"goal_stats"`
	TaskStats struct {
		Total            int    `json:"total"`
		Completed        int    `json:"completed"`
		Pending          int    `json:"pending"`
		Recurring        int    `json:"recurring"`
		OneTime          int    `json:"one_time"`
		RecurringRatio   string `json:"recurring_ratio"`
		RecurringPercent int    `json:"recurring_percent"`
	} `json:"task_stats"`
	StreakStats struct {
		CurrentStreak int `json:"current_streak"`
		LongestStreak int `json:"longest_streak"`
	} `json:"streak_stats"`
	// Heatmap maps a UTC calendar day ("2006-01-02") to the number of
	// tasks completed that day, covering the trailing 90 days.
	Heatmap       map[string]int `json:"heatmap"`
	ActivityStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		TotalSessions  int       `json:"total_sessions"`
	} `json:"activity_stats"`
}
