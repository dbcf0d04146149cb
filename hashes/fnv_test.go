// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import "testing"

func TestFNVFamily(t *testing.T) {
	names := []string{
		"fibonacci-32", "fibonacci-64",
		"fnv-1a-32", "fnv-1a-64", "fnv-1a-128",
		"fnv-yoshimitsu-triad", "fnv-totenschiff", "fnv-pippip-yurii", "fnv-mulvey",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}
