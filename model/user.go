package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email            string             `bson:"email" json:"email"`
	Name             string             `bson:"name" json:"name"`
	Password         string             `bson:"password" json:"-"` // argon2id hash
	PregnancyMonth   int                `bson:"pregnancyMonth" json:"pregnancyMonth"`
	Working          bool               `bson:"working" json:"working"`
	WorkHours        int                `bson:"workHours" json:"workHours"`
	WakeTime         string             `bson:"wakeTime" json:"wakeTime"`
	SleepTime        string             `bson:"sleepTime" json:"sleepTime"`
	MealTime         string             `bson:"mealTime" json:"mealTime"`
	EmergencyContact string             `bson:"emergencyContact" json:"emergencyContact"`
	DueDate          string             `bson:"dueDate" json:"dueDate"` // "YYYY-MM-DD"
	Height           float64            `bson:"height" json:"height"`
	Weight           float64            `bson:"weight" json:"weight"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
