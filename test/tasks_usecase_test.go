package test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"goalquest/model"
	"goalquest/repository"
	"goalquest/test/testutils"
	"goalquest/usecase"
)

func TestCompleteTaskFlow(t *testing.T) {
	testutils.SetupTestEnvironment()
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	db := client.Database(os.Getenv("MONGO_DB"))
	goalsRepo := &repository.GoalsRepo{MongoCollection: db.Collection(os.Getenv("GOALS_COLLECTION"))}
	tasksRepo := &repository.TasksRepo{MongoCollection: db.Collection(os.Getenv("TASKS_COLLECTION"))}

	goalsService := usecase.NewGoalsService(goalsRepo, tasksRepo)
	tasksService := usecase.NewTasksService(tasksRepo, goalsRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	userID := uuid.New().String()

	goal := &model.Goal{
		UserID:   userID,
		Title:    "Daily meditation",
		Type:     model.GoalTypeShort,
		Deadline: time.Now().AddDate(0, 0, 6),
	}
	if _, err := goalsService.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	t.Run("CompleteScheduledTodayIsOnTime", func(t *testing.T) {
		task := &model.Task{
			GoalID:        goal.GoalID,
			UserID:        userID,
			Title:         "Morning session",
			ScheduledDate: time.Now(),
		}
		if err := tasksService.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}

		completed, err := tasksService.CompleteTask(ctx, task.TaskID, userID)
		if err != nil {
			t.Fatalf("CompleteTask failed: %v", err)
		}
		if !completed.IsCompleted {
			t.Fatal("task should be completed")
		}
		if !completed.CompletedOnTime {
			t.Error("completion on the scheduled day should count as on time")
		}

		// The goal's cached longest streak should now be at least 1.
		fresh, err := goalsRepo.GetGoal(ctx, goal.GoalID, userID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if fresh.LongestStreak == nil || *fresh.LongestStreak < 1 {
			t.Errorf("expected cached longest streak >= 1, got %v", fresh.LongestStreak)
		}
	})

	t.Run("CompleteOverdueIsNotOnTime", func(t *testing.T) {
		task := &model.Task{
			GoalID:        goal.GoalID,
			UserID:        userID,
			Title:         "Missed session",
			ScheduledDate: time.Now().AddDate(0, 0, -3),
		}
		if err := tasksService.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}

		completed, err := tasksService.CompleteTask(ctx, task.TaskID, userID)
		if err != nil {
			t.Fatalf("CompleteTask failed: %v", err)
		}
		if completed.CompletedOnTime {
			t.Error("completing three days late must not count as on time")
		}
	})

	t.Run("RepeatingTaskSpawnsNextOccurrence", func(t *testing.T) {
		task := &model.Task{
			GoalID:        goal.GoalID,
			UserID:        userID,
			Title:         "Evening session",
			ScheduledDate: time.Now(),
			IsRepeating:   true,
			RepeatType:    model.RepeatDaily,
		}
		if err := tasksService.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}

		if _, err := tasksService.CompleteTask(ctx, task.TaskID, userID); err != nil {
			t.Fatalf("CompleteTask failed: %v", err)
		}

		tasks, err := tasksRepo.GetGoalTasks(ctx, goal.GoalID, userID)
		if err != nil {
			t.Fatalf("GetGoalTasks failed: %v", err)
		}

		var next *model.Task
		for _, candidate := range tasks {
			if candidate.ParentTaskID == task.TaskID {
				next = candidate
			}
		}
		if next == nil {
			t.Fatal("expected a spawned next occurrence")
		}
		if next.IsCompleted {
			t.Error("spawned occurrence must start incomplete")
		}
		wantDay := task.ScheduledDate.AddDate(0, 0, 1).UTC().Format("2006-01-02")
		gotDay := next.ScheduledDate.UTC().Format("2006-01-02")
		if gotDay != wantDay {
			t.Errorf("next occurrence scheduled %s, want %s", gotDay, wantDay)
		}
	})

	t.Run("CompleteTwiceFails", func(t *testing.T) {
		task := &model.Task{
			GoalID:        goal.GoalID,
			UserID:        userID,
			Title:         "One shot",
			ScheduledDate: time.Now(),
		}
		if err := tasksService.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
		if _, err := tasksService.CompleteTask(ctx, task.TaskID, userID); err != nil {
			t.Fatalf("CompleteTask failed: %v", err)
		}
		if _, err := tasksService.CompleteTask(ctx, task.TaskID, userID); err == nil {
			t.Fatal("second completion should fail")
		}
	})
}
