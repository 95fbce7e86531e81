package split

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/menta2k/a2d2-coco/pkg/types"
)

// DefaultSeed is the fixed shuffle seed used by the converter. It is not
// exposed on the command line so repeated runs produce identical splits.
const DefaultSeed = 12

// ErrBadSplitCounts is returned when the requested split sizes cannot
// partition the sample set.
var ErrBadSplitCounts = errors.New("invalid split counts")

// Partition shuffles the sample list once with the given seed and slices it
// contiguously into train, val and test sublists. A negative trainN means
// "derive": trainN = len(samples) - valN - testN. The input slice is not
// mutated.
//
// The result is deterministic for a fixed seed and input ordering. Which
// sample lands in which split is not stable across different input orderings
// or shuffle implementations.
func Partition(samples []types.SamplePair, seed int64, trainN, valN, testN int) (train, val, test []types.SamplePair, err error) {
	total := len(samples)

	if valN < 0 || testN < 0 {
		return nil, nil, nil, fmt.Errorf("%w: val=%d test=%d must not be negative", ErrBadSplitCounts, valN, testN)
	}
	if trainN < 0 {
		trainN = total - valN - testN
		if trainN < 0 {
			return nil, nil, nil, fmt.Errorf("%w: val=%d and test=%d exceed %d samples", ErrBadSplitCounts, valN, testN, total)
		}
	}
	if trainN+valN+testN != total {
		return nil, nil, nil, fmt.Errorf("%w: train=%d val=%d test=%d do not sum to %d samples", ErrBadSplitCounts, trainN, valN, testN, total)
	}

	shuffled := append([]types.SamplePair(nil), samples...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	train = shuffled[:trainN]
	val = shuffled[trainN : trainN+valN]
	test = shuffled[trainN+valN:]
	return train, val, test, nil
}
