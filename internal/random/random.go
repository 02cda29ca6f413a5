// Package random builds the game's seeded random source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Source is a PCG generator whose state can be saved and restored, so a
// loaded game continues the same random stream.
type Source struct {
	pcg *rand.PCG
	rng *rand.Rand
}

// New creates a source from seed. A zero seed draws one from crypto/rand.
func New(seed uint64) (*Source, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Source{pcg: pcg, rng: rand.New(pcg)}, nil
}

// Rand returns the generator. It stays valid across Restore.
func (s *Source) Rand() *rand.Rand {
	return s.rng
}

// State returns the serialized generator state.
func (s *Source) State() ([]byte, error) {
	return s.pcg.MarshalBinary()
}

// Restore replaces the generator state in place.
func (s *Source) Restore(state []byte) error {
	if err := s.pcg.UnmarshalBinary(state); err != nil {
		return fmt.Errorf("restore random state: %w", err)
	}
	return nil
}
