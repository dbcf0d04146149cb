// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import (
	"testing"

	"github.com/opencoff/go-hashzoo/internal/testutil"
)

func TestT1haFamily(t *testing.T) {
	names := []string{"t1ha0", "t1ha1", "t1ha2-64", "t1ha2-128", "t1ha2-64-incr", "t1ha2-128-incr"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := verifyDescriptor(t, name)
			smokeBoundaryLengths(t, d)
		})
	}
}

// TestT1ha2IncrementalFeedSplits exercises t1ha2's incremental
// (t1ha2ContextUpdate) path across a fixed set of chunk splits of a
// fixed-length input: §4.2's streaming contract requires digest(whole) to be
// independent of how the caller chunks the feed, regardless of chunk
// boundaries. The incremental digest is deliberately not required to
// match the one-shot core's (registered under a distinct verification
// constant, per ImplIncrementalDifferent) since t1ha2_init always seeds
// c/d, which the one-shot core only does for inputs over 32 bytes.
func TestT1ha2IncrementalFeedSplits(t *testing.T) {
	const length = 200
	key := testutil.DeterministicKey(7, length)
	const seed = 0xdeadbeefcafef00d

	var whole t1ha2Context
	t1ha2ContextInit(&whole, seed)
	t1ha2ContextUpdate(&whole, key, false)
	want64, _ := t1ha2ContextFinal(&whole, false, false)

	for _, split := range []int{0, 1, 7, 8, 31, 32, 33, 64, 100, 199, 200} {
		var ctx t1ha2Context
		t1ha2ContextInit(&ctx, seed)
		t1ha2ContextUpdate(&ctx, key[:split], false)
		t1ha2ContextUpdate(&ctx, key[split:], false)
		got64, _ := t1ha2ContextFinal(&ctx, false, false)
		if got64 != want64 {
			t.Fatalf("split at %d: incremental(split)=%#x incremental(whole)=%#x", split, got64, want64)
		}
	}
}
