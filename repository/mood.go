package repository

import (
	"context"
	"os"
	"time"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodRepo struct {
	MongoCollection *mongo.Collection
}

func GetMoodRepo(client *mongo.Client) *MoodRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("MOOD_COLLECTION", "mood_tracking")
	return &MoodRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Create inserts a new mood entry. Mood values are validated at the
// handler boundary; storage stays schema-free.
func (r *MoodRepo) Create(ctx context.Context, record *model.MoodRecord) error {
	timer := utils.TrackDBOperation("insert", "mood_tracking")
	defer timer.ObserveDuration()

	record.CreatedAt = time.Now().UTC()

	_, err := r.MongoCollection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "mood_duplicate")
			return ErrDuplicate
		}
		utils.TrackError("database", "mood_creation_failed")
		return err
	}
	return nil
}

// FindByUserAndDate returns the single entry for (userId, date).
func (r *MoodRepo) FindByUserAndDate(ctx context.Context, userID, date string) (*model.MoodRecord, error) {
	timer := utils.TrackDBOperation("find", "mood_tracking")
	defer timer.ObserveDuration()

	var record model.MoodRecord
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "mood_fetch_failed")
		return nil, err
	}
	return &record, nil
}

// FindByUser returns the user's mood history, most recent date first.
func (r *MoodRepo) FindByUser(ctx context.Context, userID string, limit int64) ([]*model.MoodRecord, error) {
	timer := utils.TrackDBOperation("find", "mood_tracking")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		utils.TrackError("database", "mood_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.MoodRecord
	if err = cursor.All(ctx, &records); err != nil {
		utils.TrackError("database", "mood_decode_failed")
		return nil, err
	}
	return records, nil
}

// Update sets the mood value for an existing (userId, date) entry.
func (r *MoodRepo) Update(ctx context.Context, userID, date string, mood model.Mood) error {
	timer := utils.TrackDBOperation("update", "mood_tracking")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"mood":       mood,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"userId": userID, "date": date}, update)
	if err != nil {
		utils.TrackError("database", "mood_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "mood_not_found")
		return ErrNotFound
	}
	return nil
}

// Delete removes the entry for (userId, date).
func (r *MoodRepo) Delete(ctx context.Context, userID, date string) error {
	timer := utils.TrackDBOperation("delete", "mood_tracking")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		utils.TrackError("database", "mood_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "mood_not_found")
		return ErrNotFound
	}
	return nil
}
