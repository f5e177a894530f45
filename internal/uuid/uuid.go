// Package uuid wraps id generation so stores can be tested with fixed ids
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator hands out unique ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator issues random (v4) UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Valid reports whether id parses as a UUID
func Valid(id string) bool {
	return uuid.Validate(id) == nil
}
