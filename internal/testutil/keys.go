package testutil

import "github.com/opencoff/go-fasthash"

// BoundaryLengths is the set of input lengths §8.3 requires every hash's
// tests to cover, chosen to straddle the block boundaries (16, 32, 64,
// 112 bytes typical) that distinct code paths key off.
var BoundaryLengths = []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 255, 256}

// DeterministicKey derives a reproducible pseudo-random byte slice of the
// given length from an integer index, for use as test input across
// BoundaryLengths without requiring true randomness (which would make
// hash-mismatch failures unreproducible). Grounded on db_test.go's use of
// fasthash.Hash64 to derive test keys from a fixed seed.
func DeterministicKey(index int, length int) []byte {
	out := make([]byte, length)
	h := fasthash.Hash64(uint64(index)+1, []byte("go-hashzoo-boundary-key"))
	for i := range out {
		h = fasthash.Hash64(h, []byte{byte(i)})
		out[i] = byte(h)
	}
	return out
}
