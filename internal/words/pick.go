package words

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the randomness Pick draws from. *rand.Rand satisfies it; tests
// hand in fixed sequences.
type Source interface {
	Intn(n int) int
}

// Pick returns one word from c, chosen uniformly by src.
func Pick(c Catalog, src Source) string {
	return c.words[src.Intn(len(c.words))]
}

// NewSource returns a seeded generator. A zero seed is replaced with one read
// from crypto/rand.
func NewSource(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		var err error
		seed, err = NewSeed()
		if err != nil {
			return nil, err
		}
	}
	return rand.New(rand.NewSource(seed)), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("words: read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
