// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestRapidhashFamily(t *testing.T) {
	names := []string{
		"rapidhash", "rapidhash-protected",
		"rapidhash-micro", "rapidhash-micro-protected",
		"rapidhash-nano", "rapidhash-nano-protected",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}
