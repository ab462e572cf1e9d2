package summary

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// Picker chooses one of n phrase variants for a summary line.
// Implementations must return a value in [0, n).
type Picker interface {
	Pick(id uuid.UUID, line string, n int) int
}

// HashPicker picks by hashing the journey id with the line name, so a journey
// always reads the same way.
type HashPicker struct{}

func (HashPicker) Pick(id uuid.UUID, line string, n int) int {
	if n <= 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write(id[:])
	h.Write([]byte(line))
	return int(h.Sum32() % uint32(n))
}

// FirstPicker always picks the first variant.
type FirstPicker struct{}

func (FirstPicker) Pick(uuid.UUID, string, int) int { return 0 }
