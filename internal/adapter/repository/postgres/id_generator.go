package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID movement ids: 128 bits with a random
// component, globally unique for this system's purposes.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
