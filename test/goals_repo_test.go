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
)

func TestGoalsRepoOperations(t *testing.T) {
	testutils.SetupTestEnvironment()
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New().String()
	goalID := uuid.New().String()

	coll := client.Database(os.Getenv("MONGO_DB")).Collection(os.Getenv("GOALS_COLLECTION"))
	goalsRepo := repository.GoalsRepo{MongoCollection: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t.Run("CreateGoal", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:    goalID,
			UserID:    userID,
			Title:     "Run a half marathon",
			Type:      model.GoalTypeMedium,
			Deadline:  time.Now().AddDate(0, 2, 0),
			CreatedAt: time.Now(),
		}
		if err := goalsRepo.CreateGoal(ctx, goal); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
	})

	t.Run("CreateGoalWithoutUser", func(t *testing.T) {
		goal := &model.Goal{
			GoalID: uuid.New().String(),
			Title:  "No owner",
		}
		if err := goalsRepo.CreateGoal(ctx, goal); err == nil {
			t.Fatal("expected error for goal without user ID")
		}
	})

	t.Run("GetGoal", func(t *testing.T) {
		goal, err := goalsRepo.GetGoal(ctx, goalID, userID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if goal == nil {
			t.Fatal("expected goal, got nil")
		}
		if goal.Title != "Run a half marathon" {
			t.Errorf("unexpected title %q", goal.Title)
		}
	})

	t.Run("GetGoalWrongUser", func(t *testing.T) {
		goal, err := goalsRepo.GetGoal(ctx, goalID, uuid.New().String())
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if goal != nil {
			t.Fatal("expected nil for another user's goal")
		}
	})

	t.Run("UpdateLongestStreakOnlyRaises", func(t *testing.T) {
		if err := goalsRepo.UpdateLongestStreak(ctx, goalID, userID, 5); err != nil {
			t.Fatalf("UpdateLongestStreak failed: %v", err)
		}
		if err := goalsRepo.UpdateLongestStreak(ctx, goalID, userID, 2); err != nil {
			t.Fatalf("UpdateLongestStreak failed: %v", err)
		}

		goal, err := goalsRepo.GetGoal(ctx, goalID, userID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if goal.LongestStreak == nil || *goal.LongestStreak != 5 {
			t.Errorf("longest streak should stay at 5, got %v", goal.LongestStreak)
		}
	})

	t.Run("ArchiveExcludesFromActive", func(t *testing.T) {
		if err := goalsRepo.SetArchived(ctx, goalID, userID, true); err != nil {
			t.Fatalf("SetArchived failed: %v", err)
		}

		active, err := goalsRepo.GetActiveGoals(ctx, userID)
		if err != nil {
			t.Fatalf("GetActiveGoals failed: %v", err)
		}
		for _, g := range active {
			if g.GoalID == goalID {
				t.Error("archived goal listed as active")
			}
		}

		archived, err := goalsRepo.GetArchivedGoals(ctx, userID)
		if err != nil {
			t.Fatalf("GetArchivedGoals failed: %v", err)
		}
		if len(archived) != 1 {
			t.Errorf("expected 1 archived goal, got %d", len(archived))
		}
	})

	t.Run("CompleteGoal", func(t *testing.T) {
		if err := goalsRepo.CompleteGoal(ctx, goalID, userID, "done early"); err != nil {
			t.Fatalf("CompleteGoal failed: %v", err)
		}

		goal, err := goalsRepo.GetGoal(ctx, goalID, userID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if !goal.IsCompleted {
			t.Error("goal should be completed")
		}
		if goal.Reflection != "done early" {
			t.Errorf("unexpected reflection %q", goal.Reflection)
		}
		if goal.CompletedAt == nil {
			t.Error("completed_at should be set")
		}
	})

	t.Run("DeleteGoal", func(t *testing.T) {
		if err := goalsRepo.DeleteGoal(ctx, goalID, userID); err != nil {
			t.Fatalf("DeleteGoal failed: %v", err)
		}
		goal, err := goalsRepo.GetGoal(ctx, goalID, userID)
		if err != nil {
			t.Fatalf("GetGoal failed: %v", err)
		}
		if goal != nil {
			t.Fatal("goal should be gone")
		}
	})
}
