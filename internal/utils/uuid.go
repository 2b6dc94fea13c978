package utils

import "github.com/google/uuid"

// UUIDGenerator produces UUID strings, preferring the time-ordered
// version 7 layout so that generated identifiers sort chronologically.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID string. Falls back to a random v4 UUID if
// version 7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
