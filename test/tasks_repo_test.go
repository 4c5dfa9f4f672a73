package test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"goalquest/model"
	"goalquest/repository"
	"goalquest/test/testutils"
)

func TestTasksRepoOperations(t *testing.T) {
	testutils.SetupTestEnvironment()
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New().String()
	goalID := uuid.New().String()
	taskID := uuid.New().String()

	coll := client.Database(os.Getenv("MONGO_DB")).Collection(os.Getenv("TASKS_COLLECTION"))
	tasksRepo := repository.TasksRepo{MongoCollection: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	morning := model.TimeOfDayMorning
	scheduled := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("CreateTask", func(t *testing.T) {
		task := &model.Task{
			TaskID:        taskID,
			GoalID:        goalID,
			UserID:        userID,
			Title:         "5k training run",
			ScheduledDate: scheduled,
			TimeOfDay:     &morning,
			CreatedAt:     time.Now(),
		}
		if err := tasksRepo.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	})

	t.Run("GetTasksForDay", func(t *testing.T) {
		dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		tasks, err := tasksRepo.GetTasksForDay(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("GetTasksForDay failed: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task on the day, got %d", len(tasks))
		}

		otherDay := dayStart.AddDate(0, 0, 1)
		tasks, err = tasksRepo.GetTasksForDay(ctx, userID, otherDay, otherDay.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("GetTasksForDay failed: %v", err)
		}
		if len(tasks) != 0 {
			t.Fatalf("expected no tasks on the next day, got %d", len(tasks))
		}
	})

	t.Run("CompleteAndClear", func(t *testing.T) {
		now := time.Now()
		updates := bson.M{
			"is_completed":      true,
			"completed_at":      now,
			"completed_on_time": true,
		}
		if err := tasksRepo.UpdateTask(ctx, taskID, userID, updates); err != nil {
			t.Fatalf("UpdateTask failed: %v", err)
		}

		task, err := tasksRepo.GetTask(ctx, taskID, userID)
		if err != nil {
			t.Fatalf("GetTask failed: %v", err)
		}
		if !task.IsCompleted || task.CompletedAt == nil {
			t.Fatal("task should be completed with a timestamp")
		}

		if err := tasksRepo.ClearCompletion(ctx, taskID, userID); err != nil {
			t.Fatalf("ClearCompletion failed: %v", err)
		}
		task, err = tasksRepo.GetTask(ctx, taskID, userID)
		if err != nil {
			t.Fatalf("GetTask failed: %v", err)
		}
		if task.IsCompleted {
			t.Error("task should be reopened")
		}
		if task.CompletedAt != nil {
			t.Error("completed_at should be unset")
		}
	})

	t.Run("DeleteGoalTasks", func(t *testing.T) {
		if err := tasksRepo.DeleteGoalTasks(ctx, goalID, userID); err != nil {
			t.Fatalf("DeleteGoalTasks failed: %v", err)
		}
		tasks, err := tasksRepo.GetGoalTasks(ctx, goalID, userID)
		if err != nil {
			t.Fatalf("GetGoalTasks failed: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected no tasks after delete, got %d", len(tasks))
		}
	})
}
