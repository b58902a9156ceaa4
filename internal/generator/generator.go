// Package generator builds typing word sequences.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
)

// Generator draws random words from a vocabulary.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// RandomWord selects one word uniformly.
func (g *Generator) RandomWord(words []model.Word) model.Word {
	return words[g.rnd.Intn(len(words))]
}

// Generate selects count words uniformly. A non-positive count yields nil.
func (g *Generator) Generate(words []model.Word, count int) []model.Word {
	if count <= 0 || len(words) == 0 {
		return nil
	}
	result := make([]model.Word, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, g.RandomWord(words))
	}
	return result
}
