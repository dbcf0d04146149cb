// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestRustFxHashFamily(t *testing.T) {
	names := []string{
		"rust-fxhash64", "rust-fxhash64-mix",
		"rust-fxhash64-mult32", "rust-fxhash64-mult32-mix",
		"rust-fxhash32", "rust-fxhash32-mix",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}
