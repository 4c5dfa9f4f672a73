package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"goalquest/model"
	"goalquest/utils"
)

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(client *mongo.Client) *GoalsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("GOALS_COLLECTION")
	return &GoalsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if goal.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, goal); err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}

// CreateGoals inserts a batch of goals in one call; used when applying a
// blueprint.
func (r *GoalsRepo) CreateGoals(ctx context.Context, goals []*model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if len(goals) == 0 {
		return nil
	}

	docs := make([]interface{}, len(goals))
	for i, g := range goals {
		if g.UserID == "" {
			utils.TrackError("database", "missing_user_id")
			return errors.New("user ID is required")
		}
		docs[i] = g
	}

	if _, err := r.MongoCollection.InsertMany(ctx, docs); err != nil {
		utils.TrackError("database", "goal_batch_creation_failed")
		return err
	}
	return nil
}

func (r *GoalsRepo) GetGoal(ctx context.Context, goalID, userID string) (*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": goalID, "user_id": userID}).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

// GetActiveGoals returns the user's non-archived goals, completed or not.
func (r *GoalsRepo) GetActiveGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return r.findGoals(ctx, bson.M{"user_id": userID, "is_archived": false})
}

// GetOpenGoals returns active goals that are not yet completed; this is
// the input collection for workload analysis.
func (r *GoalsRepo) GetOpenGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return r.findGoals(ctx, bson.M{
		"user_id":      userID,
		"is_archived":  false,
		"is_completed": false,
	})
}

func (r *GoalsRepo) GetArchivedGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return r.findGoals(ctx, bson.M{"user_id": userID, "is_archived": true})
}

func (r *GoalsRepo) GetAllGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return r.findGoals(ctx, bson.M{"user_id": userID})
}

func (r *GoalsRepo) findGoals(ctx context.Context, filter bson.M) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []*model.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, err
	}
	return goals, nil
}

func (r *GoalsRepo) UpdateGoal(ctx context.Context, goalID, userID string, updates bson.M) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID, "user_id": userID},
		bson.M{"$set": updates})
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}

// CompleteGoal marks a goal completed with an optional reflection.
// Completion is explicit and never reverted automatically.
func (r *GoalsRepo) CompleteGoal(ctx context.Context, goalID, userID, reflection string) error {
	updates := bson.M{
		"is_completed": true,
		"completed_at": time.Now(),
	}
	if reflection != "" {
		updates["reflection"] = reflection
	}
	return r.UpdateGoal(ctx, goalID, userID, updates)
}

func (r *GoalsRepo) SetArchived(ctx context.Context, goalID, userID string, archived bool) error {
	return r.UpdateGoal(ctx, goalID, userID, bson.M{"is_archived": archived})
}

// UpdateLongestStreak raises the cached historical maximum. The cached
// value only ever grows; the current streak is always recomputed from
// the task log.
func (r *GoalsRepo) UpdateLongestStreak(ctx context.Context, goalID, userID string, streak int) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID, "user_id": userID},
		bson.M{"$max": bson.M{"longest_streak": streak}})
	if err != nil {
		utils.TrackError("database", "streak_update_failed")
	}
	return err
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID, userID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}

func (r *GoalsRepo) DeleteUserGoals(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
