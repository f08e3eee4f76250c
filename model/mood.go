package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodTired   Mood = "tired"
	MoodAnxious Mood = "anxious"
	MoodUnwell  Mood = "unwell"
)

// MoodRecord is the single record per (userId, date). The enum is
// enforced at the handler boundary, not here.
type MoodRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Date      string             `bson:"date" json:"date"` // "YYYY-MM-DD"
	Mood      Mood               `bson:"mood" json:"mood"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
