package usecase

import (
	"context"
	"time"

	"goalquest/model"
	"goalquest/progress"
	"goalquest/repository"
	"goalquest/services"
	"goalquest/utils"
)

// HeatmapDays is the window the completion heatmap covers.
const HeatmapDays = 90

type StatsService struct {
	UserRepo    *repository.UserRepo
	GoalsRepo   *repository.GoalsRepo
	TasksRepo   *repository.TasksRepo
	SessionRepo *repository.SessionRepo
}

func NewStatsService(userRepo *repository.UserRepo, goalsRepo *repository.GoalsRepo, tasksRepo *repository.TasksRepo, sessionRepo *repository.SessionRepo) *StatsService {
	return &StatsService{
		UserRepo:    userRepo,
		GoalsRepo:   goalsRepo,
		TasksRepo:   tasksRepo,
		SessionRepo: sessionRepo,
	}
}

// GetUserStats assembles the dashboard statistics for a user, serving
// from the Redis cache when a fresh copy exists.
func (svc *StatsService) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	if cached, err := services.GlobalStatsCache.Get(ctx, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		utils.TrackError("cache", "stats_get_failed")
	}

	user, err := svc.UserRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	goals, err := svc.GoalsRepo.GetAllGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := svc.TasksRepo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := svc.SessionRepo.GetUserActiveSessions(userID)
	if err != nil {
		return nil, err
	}

	var stats model.UserStats
	now := time.Now()

	for _, g := range goals {
		stats.GoalStats.Total++
		switch {
		case g.IsArchived:
			stats.GoalStats.Archived++
		case g.IsCompleted:
			stats.GoalStats.Completed++
		default:
			stats.GoalStats.Active++
		}
	}

	recurring := 0
	for _, t := range tasks {
		stats.TaskStats.Total++
		if t.IsCompleted {
			stats.TaskStats.Completed++
		} else {
			stats.TaskStats.Pending++
		}
		if t.IsRecurring() {
			recurring++
		}
	}
	stats.TaskStats.Recurring = recurring
	stats.TaskStats.OneTime = stats.TaskStats.Total - recurring
	stats.TaskStats.RecurringRatio, stats.TaskStats.RecurringPercent = progress.RecurrenceRatio(tasks)

	// The current streak is always derived from the task log; the
	// longest streak prefers the cached per-goal maxima and falls back
	// to the derived value when no cache exists yet.
	current := progress.CurrentStreak(tasks)
	longest := current
	for _, g := range goals {
		if g.LongestStreak != nil && *g.LongestStreak > longest {
			longest = *g.LongestStreak
		}
	}
	stats.StreakStats.CurrentStreak = current
	stats.StreakStats.LongestStreak = longest

	stats.Heatmap = progress.Heatmap(tasks, now, HeatmapDays)

	stats.ActivityStats.AccountCreated = user.CreatedAt
	stats.ActivityStats.LastActive = user.LastActiveAt
	stats.ActivityStats.TotalSessions = len(sessions)
	for _, s := range sessions {
		if s.LastActivityAt.After(stats.ActivityStats.LastActive) {
			stats.ActivityStats.LastActive = s.LastActivityAt
		}
	}

	if err := services.GlobalStatsCache.Set(ctx, userID, &stats); err != nil {
		utils.TrackError("cache", "stats_set_failed")
	}
	return &stats, nil
}
