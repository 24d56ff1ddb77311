package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Roller supplies die faces. Injecting it keeps the engine deterministic
// under test: a stub roller can replay a fixed sequence of faces.
type Roller interface {
	NextFace() int
}

type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller backed by math/rand, seeded from
// crypto/rand so separate games do not share sequences.
func NewRandomRoller() Roller {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return NewSeededRoller(seed)
}

// NewSeededRoller creates a roller with a fixed seed for reproducible games.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) NextFace() int {
	return r.rng.Intn(Faces) + 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
