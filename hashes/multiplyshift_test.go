// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestMultiplyShiftFamily(t *testing.T) {
	names := []string{
		"multiply-shift-32", "pair-multiply-shift-32",
		"multiply-shift", "pair-multiply-shift",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}
