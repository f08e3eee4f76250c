package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// AddUser inserts a new user and returns the generated id. The email
// uniqueness check belongs to the caller plus the unique index.
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) (string, error) {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Email == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return "", errors.New("email and password required")
	}

	result, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "duplicate_email")
			return "", ErrDuplicate
		}
		utils.TrackError("database", "user_creation_failed")
		return "", fmt.Errorf("failed to add user: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindUserByID(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var user model.User
	err = r.MongoCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindAllUsers(ctx context.Context) ([]*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "user_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		utils.TrackError("database", "user_decode_failed")
		return nil, err
	}
	return users, nil
}

// UpdateProfile replaces every profile field of the user identified by
// id. The profile update is wholesale, matching the exposed operation.
func (r *UserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, user *model.User) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"name":             user.Name,
			"pregnancyMonth":   user.PregnancyMonth,
			"working":          user.Working,
			"workHours":        user.WorkHours,
			"wakeTime":         user.WakeTime,
			"sleepTime":        user.SleepTime,
			"mealTime":         user.MealTime,
			"emergencyContact": user.EmergencyContact,
			"dueDate":          user.DueDate,
			"height":           user.Height,
			"weight":           user.Weight,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		utils.TrackError("database", "profile_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
