// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import (
	"testing"

	"github.com/opencoff/go-hashzoo/registry"
)

func TestPolyMersenneFamily(t *testing.T) {
	names := []string{
		"poly-mersenne-deg1", "poly-mersenne-deg2",
		"poly-mersenne-deg3", "poly-mersenne-deg4",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}

// TestPolyMersenneSeedFixIdempotent exercises §3.3's idempotence
// requirement for the two degrees that declare a bad seed.
func TestPolyMersenneSeedFixIdempotent(t *testing.T) {
	for _, name := range []string{"poly-mersenne-deg2", "poly-mersenne-deg3"} {
		d := registry.Lookup(name)
		if d == nil {
			t.Fatalf("hash %q is not registered", name)
		}
		bad := d.BadSeeds[0]
		fixed := d.SeedFix(d, bad)
		if fixed == bad {
			t.Fatalf("%s: seedfix did not move off the declared bad seed", name)
		}
		if again := d.SeedFix(d, fixed); again != fixed {
			t.Fatalf("%s: seedfix not idempotent: fixed=%d refixed=%d", name, fixed, again)
		}
	}
}
