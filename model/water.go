package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultGoalIntake is used when a user has no previous goal on record.
const DefaultGoalIntake = 2000 // ml

// WaterIntake is the single record per (userId, date).
type WaterIntake struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID        string             `bson:"userId" json:"userId"`
	Date          string             `bson:"date" json:"date"` // "YYYY-MM-DD"
	GoalIntake    int                `bson:"goalIntake" json:"goalIntake"`
	CurrentIntake int                `bson:"currentIntake" json:"currentIntake"`
}
