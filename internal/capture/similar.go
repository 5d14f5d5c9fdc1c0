package capture

import (
	"github.com/glaslos/ssdeep"
	log "github.com/sirupsen/logrus"
)

// SimilarityIndex remembers fuzzy hashes of saved images so near-identical
// captures within a run can be dropped.
type SimilarityIndex struct {
	threshold int
	hashes    []string
}

// NewSimilarityIndex creates an index. threshold is a similarity score
// between 1 and 100; images scoring at or above it against any recorded
// image count as duplicates.
func NewSimilarityIndex(threshold int) *SimilarityIndex {
	return &SimilarityIndex{threshold: threshold}
}

// IsDuplicate reports whether data is similar to anything seen before and
// records it otherwise. Images too small to hash are never duplicates.
func (s *SimilarityIndex) IsDuplicate(data []byte) bool {
	hash, err := ssdeep.FuzzyBytes(data)
	if err != nil {
		log.Debugf("Could not hash image for duplicate check: %v", err)
		return false
	}

	for _, seen := range s.hashes {
		score, err := ssdeep.Distance(hash, seen)
		if err != nil {
			continue
		}
		if score >= s.threshold {
			log.Debugf("Image matches earlier capture with score %d", score)
			return true
		}
	}

	s.hashes = append(s.hashes, hash)
	return false
}
