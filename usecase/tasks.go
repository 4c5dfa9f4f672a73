package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"goalquest/model"
	"goalquest/progress"
	"goalquest/repository"
	"goalquest/services"
	"goalquest/utils"
)

type TasksService struct {
	TasksRepo *repository.TasksRepo
	GoalsRepo *repository.GoalsRepo
}

func NewTasksService(tasksRepo *repository.TasksRepo, goalsRepo *repository.GoalsRepo) *TasksService {
	return &TasksService{TasksRepo: tasksRepo, GoalsRepo: goalsRepo}
}

func (svc *TasksService) CreateTask(ctx context.Context, task *model.Task) error {
	if task.UserID == "" {
		return errors.New("user ID is required")
	}
	if task.Title == "" {
		return errors.New("task title is required")
	}
	if task.ScheduledDate.IsZero() {
		return errors.New("scheduled date is required")
	}
	if task.TimeOfDay != nil && !model.ValidTimeOfDay(*task.TimeOfDay) {
		return errors.New("invalid time of day")
	}
	if task.RepeatType != "" && !model.ValidRepeatType(task.RepeatType) {
		return errors.New("invalid repeat type")
	}
	if task.IsRepeating && (task.RepeatType == "" || task.RepeatType == model.RepeatNone) {
		return errors.New("repeating task requires a repeat type")
	}

	goal, err := svc.GoalsRepo.GetGoal(ctx, task.GoalID, task.UserID)
	if err != nil {
		return err
	}
	if goal == nil {
		return errors.New("goal not found")
	}
	if goal.IsArchived {
		return errors.New("cannot add tasks to an archived goal")
	}

	if task.TaskID == "" {
		task.TaskID = utils.NewID()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	if err := svc.TasksRepo.CreateTask(ctx, task); err != nil {
		return err
	}

	utils.TrackTaskOperation("create")
	svc.invalidateStats(ctx, task.UserID)
	return nil
}

// ListForGoal returns a goal's tasks ordered by scheduled date.
func (svc *TasksService) ListForGoal(ctx context.Context, goalID, userID string) ([]*model.Task, error) {
	tasks, err := svc.TasksRepo.GetGoalTasks(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

func (svc *TasksService) ListForUser(ctx context.Context, userID string) ([]*model.Task, error) {
	tasks, err := svc.TasksRepo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

func (svc *TasksService) ListForDay(ctx context.Context, userID string, day time.Time) ([]*model.Task, error) {
	dayStart := progress.DayOf(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	tasks, err := svc.TasksRepo.GetTasksForDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	sortTasks(tasks)
	return tasks, nil
}

func sortTasks(tasks []*model.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		// Pending before completed, then chronological.
		if tasks[i].IsCompleted != tasks[j].IsCompleted {
			return !tasks[i].IsCompleted
		}
		if !tasks[i].ScheduledDate.Equal(tasks[j].ScheduledDate) {
			return tasks[i].ScheduledDate.Before(tasks[j].ScheduledDate)
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// TasksForDay returns a day's tasks partitioned into the fixed
// time-of-day buckets.
func (svc *TasksService) TasksForDay(ctx context.Context, userID string, day time.Time) ([]progress.Bucket, error) {
	dayStart := progress.DayOf(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	tasks, err := svc.TasksRepo.GetTasksForDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return progress.GroupByTimeOfDay(tasks), nil
}

func (svc *TasksService) UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) (*model.Task, error) {
	existing, err := svc.TasksRepo.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("task not found")
	}

	fields := bson.M{}
	if updates.Title != "" {
		fields["title"] = updates.Title
	}
	if updates.Description != "" {
		fields["description"] = updates.Description
	}
	if !updates.ScheduledDate.IsZero() {
		fields["scheduled_date"] = updates.ScheduledDate
	}
	if updates.TimeOfDay != nil {
		if !model.ValidTimeOfDay(*updates.TimeOfDay) {
			return nil, errors.New("invalid time of day")
		}
		fields["time_of_day"] = *updates.TimeOfDay
	}
	if updates.RepeatType != "" {
		if !model.ValidRepeatType(updates.RepeatType) {
			return nil, errors.New("invalid repeat type")
		}
		fields["repeat_type"] = updates.RepeatType
		fields["is_repeating"] = updates.RepeatType != model.RepeatNone
	}
	if updates.RepeatUntil != nil {
		fields["repeat_until"] = *updates.RepeatUntil
	}

	if err := svc.TasksRepo.UpdateTask(ctx, taskID, userID, fields); err != nil {
		return nil, err
	}

	utils.TrackTaskOperation("update")
	svc.invalidateStats(ctx, userID)
	return svc.TasksRepo.GetTask(ctx, taskID, userID)
}

// CompleteTask marks a task done. Completion also derives the on-time
// flag, raises the owning goal's cached longest streak when the fresh
// current streak beats it, and spawns the next occurrence of a
// repeating task.
func (svc *TasksService) CompleteTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	task, err := svc.TasksRepo.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	if task.IsCompleted {
		return nil, errors.New("task is already completed")
	}

	now := time.Now()
	// On time means completed no later than the scheduled calendar day.
	onTime := !progress.DayOf(now).After(progress.DayOf(task.ScheduledDate))

	err = svc.TasksRepo.UpdateTask(ctx, taskID, userID, bson.M{
		"is_completed":      true,
		"completed_at":      now,
		"completed_on_time": onTime,
	})
	if err != nil {
		return nil, err
	}

	utils.TrackTaskOperation("complete")
	utils.TrackTaskCompletion()

	if err := svc.refreshLongestStreak(ctx, task.GoalID, userID); err != nil {
		utils.TrackError("database", "streak_update_failed")
	}

	if task.IsRepeating {
		if err := svc.spawnNextOccurrence(ctx, task, now); err != nil {
			utils.TrackError("database", "occurrence_spawn_failed")
		}
	}

	svc.invalidateStats(ctx, userID)
	return svc.TasksRepo.GetTask(ctx, taskID, userID)
}

func (svc *TasksService) UncompleteTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	task, err := svc.TasksRepo.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	if !task.IsCompleted {
		return nil, errors.New("task is not completed")
	}

	if err := svc.TasksRepo.ClearCompletion(ctx, taskID, userID); err != nil {
		return nil, err
	}

	utils.TrackTaskOperation("uncomplete")
	svc.invalidateStats(ctx, userID)
	return svc.TasksRepo.GetTask(ctx, taskID, userID)
}

func (svc *TasksService) DeleteTask(ctx context.Context, taskID, userID string) error {
	if err := svc.TasksRepo.DeleteTask(ctx, taskID, userID); err != nil {
		return err
	}

	utils.TrackTaskOperation("delete")
	svc.invalidateStats(ctx, userID)
	return nil
}

// refreshLongestStreak recomputes the goal's current streak from its
// task log and raises the cached historical maximum if it was beaten.
func (svc *TasksService) refreshLongestStreak(ctx context.Context, goalID, userID string) error {
	tasks, err := svc.TasksRepo.GetGoalTasks(ctx, goalID, userID)
	if err != nil {
		return err
	}

	current := progress.CurrentStreak(tasks)
	if current == 0 {
		return nil
	}
	return svc.GoalsRepo.UpdateLongestStreak(ctx, goalID, userID, current)
}

// spawnNextOccurrence creates the follow-up instance of a repeating
// task, stopping once the next date would pass the repeat bound.
func (svc *TasksService) spawnNextOccurrence(ctx context.Context, task *model.Task, now time.Time) error {
	next := nextOccurrence(task.ScheduledDate, task.RepeatType)
	if next.IsZero() {
		return nil
	}
	if task.RepeatUntil != nil && next.After(*task.RepeatUntil) {
		return nil
	}

	occurrence := &model.Task{
		TaskID:        utils.NewID(),
		GoalID:        task.GoalID,
		UserID:        task.UserID,
		Title:         task.Title,
		Description:   task.Description,
		ScheduledDate: next,
		TimeOfDay:     task.TimeOfDay,
		IsRepeating:   true,
		RepeatType:    task.RepeatType,
		RepeatUntil:   task.RepeatUntil,
		ParentTaskID:  task.TaskID,
		CreatedAt:     now,
	}
	return svc.TasksRepo.CreateTask(ctx, occurrence)
}

func nextOccurrence(from time.Time, repeat model.RepeatType) time.Time {
	switch repeat {
	case model.RepeatDaily:
		return from.AddDate(0, 0, 1)
	case model.RepeatEveryOtherDay:
		return from.AddDate(0, 0, 2)
	case model.RepeatWeekly:
		return from.AddDate(0, 0, 7)
	case model.RepeatMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return time.Time{}
	}
}

func (svc *TasksService) invalidateStats(ctx context.Context, userID string) {
	if err := services.GlobalStatsCache.Invalidate(ctx, userID); err != nil {
		utils.TrackError("cache", "stats_invalidate_failed")
	}
}
