package domain

import "github.com/google/uuid"

// NewInstanceID returns a unique identifier for a mounted countdown.
func NewInstanceID() string {
	return uuid.New().String()
}
