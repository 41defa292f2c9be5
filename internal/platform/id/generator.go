package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs used for request correlation.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Valid reports whether an inbound id looks like one of ours.
func Valid(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}
