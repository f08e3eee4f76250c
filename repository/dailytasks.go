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

type DailyTaskRepo struct {
	MongoCollection *mongo.Collection
}

func GetDailyTaskRepo(client *mongo.Client) *DailyTaskRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("TASKS_COLLECTION", "daily_tasks")
	return &DailyTaskRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetTasks returns the task list for (userId, date). A missing document
// is an empty list, not an error.
func (r *DailyTaskRepo) GetTasks(ctx context.Context, userID, date string) ([]model.Task, error) {
	timer := utils.TrackDBOperation("find", "daily_tasks")
	defer timer.ObserveDuration()

	var doc model.DailyTaskDocument
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []model.Task{}, nil
		}
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	if doc.Tasks == nil {
		return []model.Task{}, nil
	}
	return doc.Tasks, nil
}

// AddTask appends a task to the day's document, creating the document if
// it does not exist. A single upsert keeps the "one document per
// (userId, date)" invariant under concurrent appends; a read-then-write
// sequence could create duplicate siblings.
func (r *DailyTaskRepo) AddTask(ctx context.Context, userID, date string, task model.Task) error {
	timer := utils.TrackDBOperation("update", "daily_tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID, "date": date}
	update := bson.M{"$push": bson.M{"tasks": task}}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

// FindTask returns one task of the day by its id.
func (r *DailyTaskRepo) FindTask(ctx context.Context, userID, date, taskID string) (*model.Task, error) {
	tasks, err := r.GetTasks(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			return &tasks[i], nil
		}
	}
	return nil, ErrNotFound
}

// SetTaskCompleted patches the completed flag of one task. Only the flag
// is touched; everything else in the task stays as stored.
func (r *DailyTaskRepo) SetTaskCompleted(ctx context.Context, userID, date, taskID string, completed bool) error {
	timer := utils.TrackDBOperation("update", "daily_tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID, "date": date, "tasks.id": taskID}
	update := bson.M{"$set": bson.M{"tasks.$.completed": completed}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return ErrNotFound
	}
	return nil
}

// RemoveTask pulls the task with the matching id out of the array.
// Reports ErrNotFound when the array was left unchanged.
func (r *DailyTaskRepo) RemoveTask(ctx context.Context, userID, date, taskID string) error {
	timer := utils.TrackDBOperation("update", "daily_tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID, "date": date}
	update := bson.M{"$pull": bson.M{"tasks": bson.M{"id": taskID}}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.ModifiedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return ErrNotFound
	}
	return nil
}

// MarkAllComplete flips every task's completed flag for the day in place
// and returns how many entries changed.
func (r *DailyTaskRepo) MarkAllComplete(ctx context.Context, userID, date string) (int64, error) {
	timer := utils.TrackDBOperation("update", "daily_tasks")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID, "date": date}
	update := bson.M{"$set": bson.M{"tasks.$[].completed": true}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	return result.ModifiedCount, nil
}
