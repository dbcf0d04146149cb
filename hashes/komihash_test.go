// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestKomihash(t *testing.T) {
	d := verifyDescriptor(t, "komihash")
	smokeBoundaryLengths(t, d)
}
