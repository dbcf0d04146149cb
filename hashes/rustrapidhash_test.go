// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestRustRapidhashFamily(t *testing.T) {
	names := []string{
		"rust-rapidhash", "rust-rapidhash-seed",
		"rust-rapidhash-fast", "rust-rapidhash-fast-seed",
		"rust-rapidhash-p", "rust-rapidhash-p-seed",
		"rust-rapidhash-p-fast", "rust-rapidhash-p-fast-seed",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}
