// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestW1Hash(t *testing.T) {
	d := verifyDescriptor(t, "w1hash")
	smokeBoundaryLengths(t, d)
}
