// Package uuid wraps id generation so services can be tested with fixed ids
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique string ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates time-ordered UUIDv7 ids, so report ids sort
// by creation time. It falls back to a random v4 if the clock source fails.
type GoogleUUIDGenerator struct{}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// SequenceGenerator produces "<prefix>-1", "<prefix>-2", ... and is safe for
// concurrent use. Seeded simulations use it so combatant ids are reproducible.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a SequenceGenerator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
