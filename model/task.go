package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Task is one entry in a day's task list. Its id is generated by the
// server, not by Mongo, so it stays stable across serialization.
type Task struct {
	ID        string `bson:"id" json:"id"`
	Emoji     string `bson:"emoji" json:"emoji"`
	Title     string `bson:"title" json:"title"`
	Time      string `bson:"time" json:"time"`
	Completed bool   `bson:"completed" json:"completed"`
	IsPreset  bool   `bson:"isPreset" json:"isPreset"`
}

// DailyTaskDocument holds all tasks for one (userId, date) pair. At most
// one document exists per pair; tasks keep insertion order.
type DailyTaskDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID string             `bson:"userId" json:"userId"`
	Date   string             `bson:"date" json:"date"` // "YYYY-MM-DD"
	Tasks  []Task             `bson:"tasks" json:"tasks"`
}
