package usecase

import (
	"context"
	"errors"
	"time"

	"goalquest/model"
	"goalquest/repository"
	"goalquest/services"
	"goalquest/utils"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
	ErrSamePassword  = errors.New("new password must be different from the current password")
)

type UsersService struct {
	UserRepo       *repository.UserRepo
	GoalsRepo      *repository.GoalsRepo
	TasksRepo      *repository.TasksRepo
	SessionRepo    *repository.SessionRepo
	BlueprintsRepo *repository.BlueprintsRepo
}

func NewUsersService(userRepo *repository.UserRepo, goalsRepo *repository.GoalsRepo, tasksRepo *repository.TasksRepo, sessionRepo *repository.SessionRepo, blueprintsRepo *repository.BlueprintsRepo) *UsersService {
	return &UsersService{
		UserRepo:       userRepo,
		GoalsRepo:      goalsRepo,
		TasksRepo:      tasksRepo,
		SessionRepo:    sessionRepo,
		BlueprintsRepo: blueprintsRepo,
	}
}

// Register creates an account after checking username and email
// uniqueness. The stored password is an Argon2id digest.
func (svc *UsersService) Register(ctx context.Context, req *model.RegistrationRequest) (*model.User, error) {
	existing, err := svc.UserRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = svc.UserRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:       utils.NewID(),
		Username:     req.Username,
		Email:        req.Email,
		Password:     hashed,
		CreatedAt:    time.Now(),
		LastActiveAt: time.Now(),
	}
	if err := svc.UserRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new
// one and ends every other active session for the user.
func (svc *UsersService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string, keepSessionID string) error {
	user, err := svc.UserRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	ok, err := services.VerifyPassword(user.Password, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		utils.TrackError("auth", "wrong_password")
		return ErrWrongPassword
	}
	if oldPassword == newPassword {
		return ErrSamePassword
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := svc.UserRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	sessions, err := svc.SessionRepo.GetUserActiveSessions(userID)
	if err != nil {
		return nil
	}
	for _, s := range sessions {
		if s.SessionID == keepSessionID {
			continue
		}
		if err := svc.SessionRepo.EndSession(s.SessionID); err != nil {
			utils.TrackError("database", "session_end_failed")
		}
	}
	return nil
}

// DeleteAccount removes the user and everything they own.
func (svc *UsersService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := svc.UserRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil {
		return err
	}
	if !ok {
		utils.TrackError("auth", "wrong_password")
		return ErrWrongPassword
	}

	if err := svc.TasksRepo.DeleteUserTasks(ctx, userID); err != nil {
		return err
	}
	if err := svc.GoalsRepo.DeleteUserGoals(ctx, userID); err != nil {
		return err
	}
	if err := svc.BlueprintsRepo.DeleteUserBlueprints(ctx, userID); err != nil {
		return err
	}
	if err := svc.SessionRepo.DeleteUserSessions(userID); err != nil {
		return err
	}
	if err := svc.UserRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if err := services.GlobalStatsCache.Invalidate(ctx, userID); err != nil {
		utils.TrackError("cache", "stats_invalidate_failed")
	}
	return nil
}
