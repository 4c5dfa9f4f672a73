package utils

import "github.com/google/uuid"

// NewID returns a random UUID string used as the identifier for users,
// sessions, goals, tasks and blueprints.
func NewID() string {
	return uuid.New().String()
}
