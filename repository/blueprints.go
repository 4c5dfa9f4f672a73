package repository

import (
	"context"
	"errors"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"goalquest/model"
	"goalquest/utils"
)

type BlueprintsRepo struct {
	MongoCollection *mongo.Collection
}

func GetBlueprintsRepo(client *mongo.Client) *BlueprintsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("BLUEPRINTS_COLLECTION")
	return &BlueprintsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *BlueprintsRepo) CreateBlueprint(ctx context.Context, blueprint *model.Blueprint) error {
	timer := utils.TrackDBOperation("insert", "blueprints")
	defer timer.ObserveDuration()

	if blueprint.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if len(blueprint.Goals) == 0 {
		return errors.New("blueprint must contain at least one goal")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, blueprint); err != nil {
		utils.TrackError("database", "blueprint_creation_failed")
		return err
	}
	return nil
}

func (r *BlueprintsRepo) GetBlueprint(ctx context.Context, blueprintID, userID string) (*model.Blueprint, error) {
	timer := utils.TrackDBOperation("find", "blueprints")
	defer timer.ObserveDuration()

	var blueprint model.Blueprint
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": blueprintID, "user_id": userID}).Decode(&blueprint)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "blueprint_fetch_failed")
		return nil, err
	}
	return &blueprint, nil
}

func (r *BlueprintsRepo) GetUserBlueprints(ctx context.Context, userID string) ([]*model.Blueprint, error) {
	timer := utils.TrackDBOperation("find", "blueprints")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "blueprint_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var blueprints []*model.Blueprint
	if err := cursor.All(ctx, &blueprints); err != nil {
		utils.TrackError("database", "blueprint_decode_failed")
		return nil, err
	}
	return blueprints, nil
}

func (r *BlueprintsRepo) DeleteBlueprint(ctx context.Context, blueprintID, userID string) error {
	timer := utils.TrackDBOperation("delete", "blueprints")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": blueprintID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "blueprint_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "blueprint_not_found")
		return errors.New("blueprint not found")
	}
	return nil
}

func (r *BlueprintsRepo) DeleteUserBlueprints(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "blueprints")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		utils.TrackError("database", "blueprint_deletion_failed")
		return err
	}
	return nil
}
