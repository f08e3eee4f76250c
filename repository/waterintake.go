package repository

import (
	"context"
	"os"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WaterIntakeRepo struct {
	MongoCollection *mongo.Collection
}

func GetWaterIntakeRepo(client *mongo.Client) *WaterIntakeRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("WATER_COLLECTION", "water_intake")
	return &WaterIntakeRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// FindByUserAndDate returns the single record for (userId, date).
func (r *WaterIntakeRepo) FindByUserAndDate(ctx context.Context, userID, date string) (*model.WaterIntake, error) {
	timer := utils.TrackDBOperation("find", "water_intake")
	defer timer.ObserveDuration()

	var intake model.WaterIntake
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&intake)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "water_fetch_failed")
		return nil, err
	}
	return &intake, nil
}

// FindLatestGoal returns the user's most recent goal from any previous
// date. ErrNotFound when the user has no records at all.
func (r *WaterIntakeRepo) FindLatestGoal(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("find", "water_intake")
	defer timer.ObserveDuration()

	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})

	var intake model.WaterIntake
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&intake)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, ErrNotFound
		}
		utils.TrackError("database", "water_fetch_failed")
		return 0, err
	}
	return intake.GoalIntake, nil
}

// Create inserts a new record. This entry point is create-only: a second
// create for the same (userId, date) is rejected with ErrDuplicate, the
// unique index serializing the check.
func (r *WaterIntakeRepo) Create(ctx context.Context, intake *model.WaterIntake) error {
	timer := utils.TrackDBOperation("insert", "water_intake")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, intake)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "water_duplicate")
			return ErrDuplicate
		}
		utils.TrackError("database", "water_creation_failed")
		return err
	}
	return nil
}

// IncrementIntake adds amount to currentIntake atomically. The goal is
// left untouched.
func (r *WaterIntakeRepo) IncrementIntake(ctx context.Context, userID, date string, amount int) error {
	timer := utils.TrackDBOperation("update", "water_intake")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"userId": userID, "date": date},
		bson.M{"$inc": bson.M{"currentIntake": amount}})
	if err != nil {
		utils.TrackError("database", "water_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "water_not_found")
		return ErrNotFound
	}
	return nil
}

// SetIntake sets currentIntake to an exact value (used for reset).
func (r *WaterIntakeRepo) SetIntake(ctx context.Context, userID, date string, value int) error {
	timer := utils.TrackDBOperation("update", "water_intake")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"userId": userID, "date": date},
		bson.M{"$set": bson.M{"currentIntake": value}})
	if err != nil {
		utils.TrackError("database", "water_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "water_not_found")
		return ErrNotFound
	}
	return nil
}

// SetGoal sets goalIntake to an exact value.
func (r *WaterIntakeRepo) SetGoal(ctx context.Context, userID, date string, goal int) error {
	timer := utils.TrackDBOperation("update", "water_intake")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"userId": userID, "date": date},
		bson.M{"$set": bson.M{"goalIntake": goal}})
	if err != nil {
		utils.TrackError("database", "water_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "water_not_found")
		return ErrNotFound
	}
	return nil
}

// Delete removes the record for (userId, date).
func (r *WaterIntakeRepo) Delete(ctx context.Context, userID, date string) error {
	timer := utils.TrackDBOperation("delete", "water_intake")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		utils.TrackError("database", "water_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "water_not_found")
		return ErrNotFound
	}
	return nil
}
