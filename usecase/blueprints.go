package usecase

import (
	"context"
	"errors"
	"time"

	"goalquest/model"
	"goalquest/progress"
	"goalquest/repository"
	"goalquest/services"
	"goalquest/utils"
)

type BlueprintsService struct {
	BlueprintsRepo *repository.BlueprintsRepo
	GoalsRepo      *repository.GoalsRepo
}

func NewBlueprintsService(blueprintsRepo *repository.BlueprintsRepo, goalsRepo *repository.GoalsRepo) *BlueprintsService {
	return &BlueprintsService{BlueprintsRepo: blueprintsRepo, GoalsRepo: goalsRepo}
}

// BlueprintAdvisory is the workload guidance for applying a whole
// blueprint batch. It uses the blueprint threshold policy, which is
// distinct from the single-goal creation policy.
type BlueprintAdvisory struct {
	WorkloadScore  float64               `json:"workload_score"`
	WorkloadTier   progress.WorkloadTier `json:"workload_tier"`
	WorkloadAdvice string                `json:"workload_advice"`
	GoalCount      int                   `json:"goal_count"`
}

// Built-in starter templates available to every user.
var builtinBlueprints = []*model.Blueprint{
	{
		BlueprintID: "builtin-fitness-kickstart",
		Name:        "Fitness Kickstart",
		Description: "A month of movement with a longer conditioning goal behind it",
		Goals: []model.BlueprintGoal{
			{Title: "Walk 20 minutes daily", Type: model.GoalTypeShort, DurationDays: 21},
			{Title: "Build a workout routine", Type: model.GoalTypeMedium, DurationDays: 60},
			{Title: "Reach baseline conditioning", Type: model.GoalTypeLong, DurationDays: 150},
		},
	},
	{
		BlueprintID: "builtin-reading-habit",
		Name:        "Reading Habit",
		Description: "From ten pages a day to a yearly reading list",
		Goals: []model.BlueprintGoal{
			{Title: "Read 10 pages daily", Type: model.GoalTypeShort, DurationDays: 14},
			{Title: "Finish three books", Type: model.GoalTypeMedium, DurationDays: 90},
		},
	},
	{
		BlueprintID: "builtin-learn-a-language",
		Name:        "Learn a Language",
		Description: "Daily practice plus milestone goals for a new language",
		Goals: []model.BlueprintGoal{
			{Title: "Practice vocabulary daily", Type: model.GoalTypeShort, DurationDays: 30},
			{Title: "Hold a five-minute conversation", Type: model.GoalTypeMedium, DurationDays: 90},
			{Title: "Reach conversational fluency", Type: model.GoalTypeLong, DurationDays: 365},
		},
	},
}

// List returns the built-in templates followed by the user's own.
func (svc *BlueprintsService) List(ctx context.Context, userID string) ([]*model.Blueprint, error) {
	own, err := svc.BlueprintsRepo.GetUserBlueprints(ctx, userID)
	if err != nil {
		return nil, err
	}

	blueprints := make([]*model.Blueprint, 0, len(builtinBlueprints)+len(own))
	blueprints = append(blueprints, builtinBlueprints...)
	blueprints = append(blueprints, own...)
	return blueprints, nil
}

func (svc *BlueprintsService) Create(ctx context.Context, blueprint *model.Blueprint) error {
	if blueprint.Name == "" {
		return errors.New("blueprint name is required")
	}
	if len(blueprint.Goals) == 0 {
		return errors.New("blueprint must contain at least one goal")
	}
	for _, bg := range blueprint.Goals {
		if bg.Title == "" {
			return errors.New("blueprint goal title is required")
		}
		if !model.ValidGoalType(bg.Type) {
			return errors.New("invalid goal type in blueprint")
		}
		if bg.DurationDays <= 0 {
			return errors.New("blueprint goal duration must be positive")
		}
	}

	if blueprint.BlueprintID == "" {
		blueprint.BlueprintID = utils.NewID()
	}
	if blueprint.CreatedAt.IsZero() {
		blueprint.CreatedAt = time.Now()
	}
	return svc.BlueprintsRepo.CreateBlueprint(ctx, blueprint)
}

func (svc *BlueprintsService) Delete(ctx context.Context, blueprintID, userID string) error {
	if isBuiltin(blueprintID) {
		return errors.New("built-in blueprints cannot be deleted")
	}
	return svc.BlueprintsRepo.DeleteBlueprint(ctx, blueprintID, userID)
}

func (svc *BlueprintsService) find(ctx context.Context, blueprintID, userID string) (*model.Blueprint, error) {
	for _, b := range builtinBlueprints {
		if b.BlueprintID == blueprintID {
			return b, nil
		}
	}
	return svc.BlueprintsRepo.GetBlueprint(ctx, blueprintID, userID)
}

func isBuiltin(blueprintID string) bool {
	for _, b := range builtinBlueprints {
		if b.BlueprintID == blueprintID {
			return true
		}
	}
	return false
}

// Preview computes the blueprint workload advisory: the existing open
// goals plus the blueprint's own prospective goals, classified with the
// blueprint thresholds. The overlap window runs to the batch's furthest
// prospective deadline.
func (svc *BlueprintsService) Preview(ctx context.Context, blueprintID, userID string) (*BlueprintAdvisory, error) {
	blueprint, err := svc.find(ctx, blueprintID, userID)
	if err != nil {
		return nil, err
	}
	if blueprint == nil {
		return nil, errors.New("blueprint not found")
	}

	open, err := svc.GoalsRepo.GetOpenGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	horizon := batchHorizon(blueprint, now)
	score := progress.BlueprintWorkload(horizon, open, blueprint.Goals, now)
	tier := progress.ClassifyBlueprintWorkload(score)

	return &BlueprintAdvisory{
		WorkloadScore:  score,
		WorkloadTier:   tier,
		WorkloadAdvice: tier.Advice(),
		GoalCount:      len(blueprint.Goals),
	}, nil
}

// Apply batch-creates the blueprint's goals for the user, with each
// deadline set from the goal's duration, and returns the created goals
// plus the same advisory Preview gives.
func (svc *BlueprintsService) Apply(ctx context.Context, blueprintID, userID string) ([]*model.Goal, *BlueprintAdvisory, error) {
	advisory, err := svc.Preview(ctx, blueprintID, userID)
	if err != nil {
		return nil, nil, err
	}

	blueprint, err := svc.find(ctx, blueprintID, userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	goals := make([]*model.Goal, len(blueprint.Goals))
	for i, bg := range blueprint.Goals {
		goals[i] = &model.Goal{
			GoalID:      utils.NewID(),
			UserID:      userID,
			Title:       bg.Title,
			Description: bg.Description,
			Type:        bg.Type,
			Deadline:    now.AddDate(0, 0, bg.DurationDays),
			CreatedAt:   now,
		}
	}

	if err := svc.GoalsRepo.CreateGoals(ctx, goals); err != nil {
		return nil, nil, err
	}

	utils.TrackBlueprintApply()
	if err := services.GlobalStatsCache.Invalidate(ctx, userID); err != nil {
		utils.TrackError("cache", "stats_invalidate_failed")
	}
	return goals, advisory, nil
}

func batchHorizon(blueprint *model.Blueprint, now time.Time) time.Time {
	maxDays := 0
	for _, bg := range blueprint.Goals {
		if bg.DurationDays > maxDays {
			maxDays = bg.DurationDays
		}
	}
	return now.AddDate(0, 0, maxDays)
}
