// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import (
	"testing"

	"github.com/opencoff/go-hashzoo/internal/testutil"
	"github.com/opencoff/go-hashzoo/registry"
)

// verifyDescriptor asserts that d reproduces its recorded LE/BE
// verification digests, the cross-cutting correctness property every
// registered hash must satisfy (§8.1/§8.5).
func verifyDescriptor(t *testing.T, name string) *registry.Descriptor {
	t.Helper()
	assert := testutil.NewAsserter(t)

	d := registry.Lookup(name)
	assert(d != nil, "hash %q is not registered", name)

	mismatches := registry.VerifyAll(d)
	assert(len(mismatches) == 0, "%s: verification mismatches: %v", name, mismatches)
	return d
}

// smokeBoundaryLengths runs fn across every boundary length with a
// deterministic key, asserting only that two calls on the same input and
// seed agree -- i.e. that the hash is a pure function of its arguments,
// not that any particular digest results (covered by verifyDescriptor).
func smokeBoundaryLengths(t *testing.T, d *registry.Descriptor) {
	t.Helper()
	assert := testutil.NewAsserter(t)

	fn := registry.SelectHashFn(d, registry.EndianNative)
	n := d.OutputBytes()
	for _, length := range testutil.BoundaryLengths {
		key := testutil.DeterministicKey(length, length)
		seed := registry.EffectiveSeed(d, uint64(length))

		// 16 bytes of padding, matching registry.ComputeVerification,
		// so READ_PAST_EOB hashes (§4.8) never index past the slice.
		padded := make([]byte, length+16)
		copy(padded, key)

		out1 := make([]byte, n)
		out2 := make([]byte, n)
		fn(padded[:length], length, seed, out1)
		fn(padded[:length], length, seed, out2)
		assert(string(out1) == string(out2), "%s: non-deterministic output at length %d", d.Name, length)
	}
}
