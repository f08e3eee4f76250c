package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Reminder struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
	Category    string `bson:"category" json:"category"`
	Repeat      string `bson:"repeat" json:"repeat"`
}

// ReminderDocument holds all reminders for one user, keyed by userId
// only (unlike tasks, which are keyed per day).
type ReminderDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Reminders []Reminder         `bson:"reminders" json:"reminders"`
}
