package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// patternBytes produces deterministic pseudo-random data large enough for
// fuzzy hashing (ssdeep needs 4KiB or more).
func patternBytes(seed uint32, n int) []byte {
	out := make([]byte, n)
	state := seed
	for i := range out {
		state = state*1664525 + 1013904223
		out[i] = byte(state >> 24)
	}
	return out
}

func TestIsDuplicateSameData(t *testing.T) {
	idx := NewSimilarityIndex(96)
	data := patternBytes(1, 16*1024)

	assert.False(t, idx.IsDuplicate(data), "first sighting is never a duplicate")
	assert.True(t, idx.IsDuplicate(data), "identical data must be a duplicate")
}

func TestIsDuplicateDifferentData(t *testing.T) {
	idx := NewSimilarityIndex(96)

	assert.False(t, idx.IsDuplicate(patternBytes(1, 16*1024)))
	assert.False(t, idx.IsDuplicate(patternBytes(2, 16*1024)))
}

func TestIsDuplicateTinyData(t *testing.T) {
	idx := NewSimilarityIndex(1)

	// Below the fuzzy-hash minimum nothing is ever considered a duplicate.
	tiny := patternBytes(1, 128)
	assert.False(t, idx.IsDuplicate(tiny))
	assert.False(t, idx.IsDuplicate(tiny))
}
