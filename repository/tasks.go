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

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

func GetTasksRepo(client *mongo.Client) *TasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("TASKS_COLLECTION")
	return &TasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if task.GoalID == "" {
		utils.TrackError("database", "missing_goal_id")
		return errors.New("goal ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, task); err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

func (r *TasksRepo) GetTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": taskID, "user_id": userID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	return &task, nil
}

func (r *TasksRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return r.findTasks(ctx, bson.M{"user_id": userID})
}

func (r *TasksRepo) GetGoalTasks(ctx context.Context, goalID, userID string) ([]*model.Task, error) {
	return r.findTasks(ctx, bson.M{"goal_id": goalID, "user_id": userID})
}

// GetTasksForDay returns the user's tasks scheduled within the UTC day
// window [dayStart, dayEnd).
func (r *TasksRepo) GetTasksForDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) ([]*model.Task, error) {
	return r.findTasks(ctx, bson.M{
		"user_id":        userID,
		"scheduled_date": bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
}

func (r *TasksRepo) findTasks(ctx context.Context, filter bson.M) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}

func (r *TasksRepo) UpdateTask(ctx context.Context, taskID, userID string, updates bson.M) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": taskID, "user_id": userID},
		bson.M{"$set": updates})
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}
	return nil
}

// ClearCompletion reverts a completed task to pending, removing the
// completion timestamp entirely.
func (r *TasksRepo) ClearCompletion(ctx context.Context, taskID, userID string) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": taskID, "user_id": userID},
		bson.M{
			"$set":   bson.M{"is_completed": false, "completed_on_time": false},
			"$unset": bson.M{"completed_at": ""},
		})
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}
	return nil
}

func (r *TasksRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}
	return nil
}

// DeleteGoalTasks removes every task belonging to a goal; used when the
// goal itself is deleted.
func (r *TasksRepo) DeleteGoalTasks(ctx context.Context, goalID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"goal_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
	}
	return err
}

func (r *TasksRepo) DeleteUserTasks(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
