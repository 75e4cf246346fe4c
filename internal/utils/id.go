package utils

import "github.com/google/uuid"

// GenerateID returns a new request correlation ID.
func GenerateID() string {
	return uuid.NewString()
}
