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

type ReminderRepo struct {
	MongoCollection *mongo.Collection
}

func GetReminderRepo(client *mongo.Client) *ReminderRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("REMINDER_COLLECTION", "reminder")
	return &ReminderRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetReminders returns the user's reminder list; a missing document is
// an empty list.
func (r *ReminderRepo) GetReminders(ctx context.Context, userID string) ([]model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminder")
	defer timer.ObserveDuration()

	var doc model.ReminderDocument
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []model.Reminder{}, nil
		}
		utils.TrackError("database", "reminder_fetch_failed")
		return nil, err
	}
	if doc.Reminders == nil {
		return []model.Reminder{}, nil
	}
	return doc.Reminders, nil
}

// AddReminder appends to the user's single reminder document, creating
// it atomically on first use.
func (r *ReminderRepo) AddReminder(ctx context.Context, userID string, reminder model.Reminder) error {
	timer := utils.TrackDBOperation("update", "reminder")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID}
	update := bson.M{"$push": bson.M{"reminders": reminder}}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "reminder_creation_failed")
		return err
	}
	return nil
}

// FindReminder returns one reminder by id.
func (r *ReminderRepo) FindReminder(ctx context.Context, userID, reminderID string) (*model.Reminder, error) {
	reminders, err := r.GetReminders(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range reminders {
		if reminders[i].ID == reminderID {
			return &reminders[i], nil
		}
	}
	return nil, ErrNotFound
}

// UpdateReminder replaces the editable fields of one reminder in place.
// The reminder keeps its id and its position in the list.
func (r *ReminderRepo) UpdateReminder(ctx context.Context, userID, reminderID string, reminder model.Reminder) error {
	timer := utils.TrackDBOperation("update", "reminder")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID, "reminders.id": reminderID}
	update := bson.M{
		"$set": bson.M{
			"reminders.$.title":       reminder.Title,
			"reminders.$.description": reminder.Description,
			"reminders.$.date":        reminder.Date,
			"reminders.$.time":        reminder.Time,
			"reminders.$.category":    reminder.Category,
			"reminders.$.repeat":      reminder.Repeat,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "reminder_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "reminder_not_found")
		return ErrNotFound
	}
	return nil
}

// RemoveReminder pulls one reminder by id; ErrNotFound when nothing was
// removed.
func (r *ReminderRepo) RemoveReminder(ctx context.Context, userID, reminderID string) error {
	timer := utils.TrackDBOperation("update", "reminder")
	defer timer.ObserveDuration()

	filter := bson.M{"userId": userID}
	update := bson.M{"$pull": bson.M{"reminders": bson.M{"id": reminderID}}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "reminder_deletion_failed")
		return err
	}
	if result.ModifiedCount == 0 {
		utils.TrackError("database", "reminder_not_found")
		return ErrNotFound
	}
	return nil
}
