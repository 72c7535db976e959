package colony

import (
	_ "unsafe" // required by go:linkname
)

// cheapRandN returns a fast, low-quality random number in [0, n).
//
// Adapted from the teacher's linked.go, trimmed to the one linkname the
// colony package actually has a use for: picking a random operation and
// a random live index during the randomized model-based testing in
// fuzz_test.go. The teacher's memhash/strhash linknames had no consumer
// left once hashing was dropped from this domain (see DESIGN.md) and are
// not carried over.
//
//go:linkname cheapRandN runtime.fastrandn
//go:nosplit
func cheapRandN(n uint32) uint32
