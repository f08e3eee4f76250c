package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new id for embedded items (tasks, reminders,
// forum replies). Ids are generated here rather than by the database so
// they stay stable across serialization to the client.
func GenerateID() string {
	return uuid.New().String()
}
