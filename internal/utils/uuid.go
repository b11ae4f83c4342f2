package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace identifiers.
type TraceIDGenerator struct{}

// NewTraceIDGenerator returns a generator of time-ordered (v7) UUIDs.
func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 UUID when
// the clock-based generator fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
