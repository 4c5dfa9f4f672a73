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

type GoalsService struct {
	GoalsRepo *repository.GoalsRepo
	TasksRepo *repository.TasksRepo
}

func NewGoalsService(goalsRepo *repository.GoalsRepo, tasksRepo *repository.TasksRepo) *GoalsService {
	return &GoalsService{GoalsRepo: goalsRepo, TasksRepo: tasksRepo}
}

// CreationAdvisory is the guidance returned alongside goal creation and
// the workload preview: how loaded the chosen period already is, and how
// well the deadline fits the goal type.
type CreationAdvisory struct {
	WorkloadScore  float64                     `json:"workload_score"`
	WorkloadTier   progress.WorkloadTier       `json:"workload_tier"`
	WorkloadAdvice string                      `json:"workload_advice"`
	Deadline       progress.DeadlineAssessment `json:"deadline"`
}

// GoalDetail bundles the derived values for a single goal's detail view.
type GoalDetail struct {
	Progress         int    `json:"progress"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	TimeLeft         string `json:"time_left"`
	RecurringRatio   string `json:"recurring_ratio"`
	RecurringPercent int    `json:"recurring_percent"`
	TotalTasks       int    `json:"total_tasks"`
	CompletedTasks   int    `json:"completed_tasks"`
}

// CreateGoal validates and persists a new goal, returning the creation
// advisory computed against the user's other open goals.
func (svc *GoalsService) CreateGoal(ctx context.Context, goal *model.Goal) (*CreationAdvisory, error) {
	if goal.UserID == "" {
		return nil, errors.New("user ID is required")
	}
	if goal.Title == "" {
		return nil, errors.New("goal title is required")
	}
	if !model.ValidGoalType(goal.Type) {
		return nil, errors.New("invalid goal type")
	}
	now := time.Now()
	if goal.Deadline.IsZero() || goal.Deadline.Before(now) {
		return nil, errors.New("deadline must be in the future")
	}
	if goal.ParentGoalID != "" {
		parent, err := svc.GoalsRepo.GetGoal(ctx, goal.ParentGoalID, goal.UserID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.New("parent goal not found")
		}
	}

	advisory, err := svc.PreviewWorkload(ctx, goal.UserID, goal.Type, goal.Deadline)
	if err != nil {
		return nil, err
	}

	if goal.GoalID == "" {
		goal.GoalID = utils.NewID()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}

	if err := svc.GoalsRepo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	utils.TrackGoalOperation("create")
	svc.invalidateStats(ctx, goal.UserID)
	return advisory, nil
}

// PreviewWorkload computes the creation advisory for a candidate type
// and deadline without persisting anything.
func (svc *GoalsService) PreviewWorkload(ctx context.Context, userID string, goalType model.GoalType, deadline time.Time) (*CreationAdvisory, error) {
	if !model.ValidGoalType(goalType) {
		return nil, errors.New("invalid goal type")
	}

	open, err := svc.GoalsRepo.GetOpenGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	score := progress.Workload(deadline, open, now)
	tier := progress.ClassifyWorkload(score)

	return &CreationAdvisory{
		WorkloadScore:  score,
		WorkloadTier:   tier,
		WorkloadAdvice: tier.Advice(),
		Deadline:       progress.AssessDeadline(goalType, deadline, now),
	}, nil
}

// ListActive returns the user's non-archived goals, incomplete first,
// then by nearest deadline.
func (svc *GoalsService) ListActive(ctx context.Context, userID string) ([]*model.Goal, error) {
	goals, err := svc.GoalsRepo.GetActiveGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortGoals(goals)
	return goals, nil
}

func (svc *GoalsService) ListArchived(ctx context.Context, userID string) ([]*model.Goal, error) {
	goals, err := svc.GoalsRepo.GetArchivedGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortGoals(goals)
	return goals, nil
}

func sortGoals(goals []*model.Goal) {
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].IsCompleted != goals[j].IsCompleted {
			return !goals[i].IsCompleted
		}
		if !goals[i].Deadline.Equal(goals[j].Deadline) {
			return goals[i].Deadline.Before(goals[j].Deadline)
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
}

// TasksByGoal fetches every task of the user once and groups them by
// owning goal, so list views derive progress without a query per goal.
func (svc *GoalsService) TasksByGoal(ctx context.Context, userID string) (map[string][]*model.Task, error) {
	tasks, err := svc.TasksRepo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*model.Task)
	for _, t := range tasks {
		grouped[t.GoalID] = append(grouped[t.GoalID], t)
	}
	return grouped, nil
}

func (svc *GoalsService) UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) (*model.Goal, error) {
	existing, err := svc.GoalsRepo.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("goal not found")
	}

	fields := bson.M{}
	if updates.Title != "" {
		fields["title"] = updates.Title
	}
	if updates.Description != "" {
		fields["description"] = updates.Description
	}
	if updates.Type != "" {
		if !model.ValidGoalType(updates.Type) {
			return nil, errors.New("invalid goal type")
		}
		fields["goal_type"] = updates.Type
	}
	if !updates.Deadline.IsZero() {
		fields["deadline"] = updates.Deadline
	}
	fields["is_public"] = updates.IsPublic

	if err := svc.GoalsRepo.UpdateGoal(ctx, goalID, userID, fields); err != nil {
		return nil, err
	}

	utils.TrackGoalOperation("update")
	svc.invalidateStats(ctx, userID)
	return svc.GoalsRepo.GetGoal(ctx, goalID, userID)
}

// CompleteGoal marks a goal done with an optional reflection written at
// completion time. Completion is never reverted automatically.
func (svc *GoalsService) CompleteGoal(ctx context.Context, goalID, userID, reflection string) (*model.Goal, error) {
	goal, err := svc.GoalsRepo.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.New("goal not found")
	}
	if goal.IsCompleted {
		return nil, errors.New("goal is already completed")
	}

	if err := svc.GoalsRepo.CompleteGoal(ctx, goalID, userID, reflection); err != nil {
		return nil, err
	}

	utils.TrackGoalOperation("complete")
	svc.invalidateStats(ctx, userID)
	return svc.GoalsRepo.GetGoal(ctx, goalID, userID)
}

func (svc *GoalsService) SetArchived(ctx context.Context, goalID, userID string, archived bool) error {
	goal, err := svc.GoalsRepo.GetGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}
	if goal == nil {
		return errors.New("goal not found")
	}

	if err := svc.GoalsRepo.SetArchived(ctx, goalID, userID, archived); err != nil {
		return err
	}

	utils.TrackGoalOperation("archive")
	svc.invalidateStats(ctx, userID)
	return nil
}

// DeleteGoal removes a goal and every task it owns.
func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	if err := svc.GoalsRepo.DeleteGoal(ctx, goalID, userID); err != nil {
		return err
	}
	if err := svc.TasksRepo.DeleteGoalTasks(ctx, goalID, userID); err != nil {
		return err
	}

	utils.TrackGoalOperation("delete")
	svc.invalidateStats(ctx, userID)
	return nil
}

// GetGoalDetail derives the full progress view of one goal from its
// task log.
func (svc *GoalsService) GetGoalDetail(ctx context.Context, goalID, userID string) (*GoalDetail, error) {
	goal, err := svc.GoalsRepo.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.New("goal not found")
	}

	tasks, err := svc.TasksRepo.GetGoalTasks(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range tasks {
		if t.IsCompleted {
			completed++
		}
	}

	current := progress.CurrentStreak(tasks)
	longest := current
	if goal.LongestStreak != nil && *goal.LongestStreak > longest {
		longest = *goal.LongestStreak
	}

	ratio, percent := progress.RecurrenceRatio(tasks)
	return &GoalDetail{
		Progress:         progress.Completion(tasks),
		CurrentStreak:    current,
		LongestStreak:    longest,
		TimeLeft:         progress.TimeLeft(goal.Deadline, time.Now()),
		RecurringRatio:   ratio,
		RecurringPercent: percent,
		TotalTasks:       len(tasks),
		CompletedTasks:   completed,
	}, nil
}

func (svc *GoalsService) invalidateStats(ctx context.Context, userID string) {
	if err := services.GlobalStatsCache.Invalidate(ctx, userID); err != nil {
		utils.TrackError("cache", "stats_invalidate_failed")
	}
}
