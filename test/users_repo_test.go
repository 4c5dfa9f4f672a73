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

func TestUserRepoOperations(t *testing.T) {
	testutils.SetupTestEnvironment()
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New().String()

	coll := client.Database(os.Getenv("MONGO_DB")).Collection(os.Getenv("USERS_COLLECTION"))
	userRepo := repository.UserRepo{MongoCollection: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t.Run("AddUser", func(t *testing.T) {
		user := &model.User{
			UserID:    userID,
			Username:  "testRunner",
			Email:     "runner@example.com",
			Password:  "hashed-password",
			CreatedAt: time.Now(),
		}
		if err := userRepo.AddUser(ctx, user); err != nil {
			t.Fatalf("AddUser failed: %v", err)
		}
	})

	t.Run("FindByUsername", func(t *testing.T) {
		user, err := userRepo.FindUserByUsername(ctx, "testRunner")
		if err != nil {
			t.Fatalf("FindUserByUsername failed: %v", err)
		}
		if user == nil || user.UserID != userID {
			t.Fatal("expected to find the created user")
		}
	})

	t.Run("FindMissingUserReturnsNil", func(t *testing.T) {
		user, err := userRepo.FindUserByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("FindUserByUsername failed: %v", err)
		}
		if user != nil {
			t.Fatal("expected nil for unknown username")
		}
	})

	t.Run("UpdatePassword", func(t *testing.T) {
		if err := userRepo.UpdatePassword(ctx, userID, "new-hash"); err != nil {
			t.Fatalf("UpdatePassword failed: %v", err)
		}
		user, err := userRepo.FindUser(ctx, userID)
		if err != nil {
			t.Fatalf("FindUser failed: %v", err)
		}
		if user.Password != "new-hash" {
			t.Errorf("password not updated, got %q", user.Password)
		}
	})

	t.Run("UpdateTwoFactor", func(t *testing.T) {
		codes := []string{"hash1", "hash2"}
		if err := userRepo.UpdateTwoFactor(ctx, userID, "secret", true, codes); err != nil {
			t.Fatalf("UpdateTwoFactor failed: %v", err)
		}
		user, err := userRepo.FindUser(ctx, userID)
		if err != nil {
			t.Fatalf("FindUser failed: %v", err)
		}
		if !user.TwoFactorEnabled || user.TwoFactorSecret != "secret" {
			t.Error("two factor settings not persisted")
		}
		if len(user.RecoveryCodes) != 2 {
			t.Errorf("expected 2 recovery codes, got %d", len(user.RecoveryCodes))
		}
	})

	t.Run("DeleteUser", func(t *testing.T) {
		if err := userRepo.DeleteUser(ctx, userID); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}
		if err := userRepo.DeleteUser(ctx, userID); err == nil {
			t.Fatal("expected error deleting a missing user")
		}
	})
}
