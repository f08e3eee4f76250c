package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes backing the repository invariants:
// unique (userId, date) keys for the per-day collections, a unique email
// for users, and lookup indexes for forum posts. The unique indexes are
// the backstop for the "one document per key" guarantee.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userDateUnique := func(name string) []mongo.IndexModel {
		return []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "userId", Value: 1},
					{Key: "date", Value: 1},
				},
				Options: options.Index().
					SetName(name).
					SetUnique(true),
			},
		}
	}

	collections := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().
					SetName("email_unique").
					SetUnique(true),
			},
		},
		"daily_tasks":   userDateUnique("user_date_unique_tasks"),
		"water_intake":  userDateUnique("user_date_unique_water"),
		"mood_tracking": userDateUnique("user_date_unique_mood"),
		"reminder": {
			{
				Keys: bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().
					SetName("user_unique_reminders").
					SetUnique(true),
			},
		},
		"forum_posts": {
			{
				Keys: bson.D{
					{Key: "userId", Value: 1},
					{Key: "created_at", Value: -1},
				},
				Options: options.Index().
					SetName("user_posts_date"),
			},
		},
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	return nil
}
