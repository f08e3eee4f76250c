package dto

import (
	"time"

	"github.com/Lasya-02/Mama-Sync/model"
)

// UserResponse exposes the Mongo object id as a plain string and never
// carries the password hash.
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	PregnancyMonth   int       `json:"pregnancyMonth"`
	Working          bool      `json:"working"`
	WorkHours        int       `json:"workHours"`
	WakeTime         string    `json:"wakeTime"`
	SleepTime        string    `json:"sleepTime"`
	MealTime         string    `json:"mealTime"`
	EmergencyContact string    `json:"emergencyContact"`
	DueDate          string    `json:"dueDate"`
	Height           float64   `json:"height"`
	Weight           float64   `json:"weight"`
	CreatedAt        time.Time `json:"createdAt"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:               user.ID.Hex(),
		Email:            user.Email,
		Name:             user.Name,
		PregnancyMonth:   user.PregnancyMonth,
		Working:          user.Working,
		WorkHours:        user.WorkHours,
		WakeTime:         user.WakeTime,
		SleepTime:        user.SleepTime,
		MealTime:         user.MealTime,
		EmergencyContact: user.EmergencyContact,
		DueDate:          user.DueDate,
		Height:           user.Height,
		Weight:           user.Weight,
		CreatedAt:        user.CreatedAt,
	}
}

func ToUserResponses(users []*model.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
