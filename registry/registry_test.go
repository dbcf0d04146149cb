package registry

import (
	"testing"

	"github.com/opencoff/go-hashzoo/internal/testutil"
)

// identityHash writes seed's low N bytes as output, letting tests assert
// on exactly which seed/bytes a dispatch produced without needing a real
// hash family wired up.
func identityHash(bswap bool) HashFn {
	return func(input []byte, length int, seed Seed, output []byte) {
		v := uint64(seed)
		for i := range output {
			if bswap {
				output[len(output)-1-i] = byte(v >> (8 * i))
			} else {
				output[i] = byte(v >> (8 * i))
			}
		}
	}
}

func TestSelectHashFnDefault(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d := &Descriptor{
		OutputBits:   32,
		ImplFlags:    ImplCanonicalLE,
		HashFnNative: identityHash(false),
		HashFnBSwap:  identityHash(true),
	}

	fn := SelectHashFn(d, EndianDefault)
	out := make([]byte, 4)
	fn(nil, 0, Seed(1), out)
	assert(out[0] == 1, "expected native dispatch on LE host for CANONICAL_LE hash")
}

func TestExcludeBadSeeds(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d := &Descriptor{BadSeeds: []uint64{5, 6, 7}}
	got := ExcludeBadSeeds(d, 5)
	assert(got == 8, "expected walk past contiguous bad seeds, got %d", got)

	got = ExcludeBadSeeds(d, 42)
	assert(got == 42, "non-bad seed must pass through unchanged, got %d", got)

	// idempotence, per §3.3
	fixed := ExcludeBadSeeds(d, 6)
	assert(ExcludeBadSeeds(d, fixed) == fixed, "seedfix must be idempotent")
}

func TestEffectiveSeedNoSeedPrep(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d := &Descriptor{}
	got := EffectiveSeed(d, 42)
	assert(uint64(got) == 42, "expected passthrough seed, got %d", got)
}

func TestEffectiveSeedSeedPrepZeroMeansAsIs(t *testing.T) {
	assert := testutil.NewAsserter(t)

	d := &Descriptor{SeedPrep: func(seed uint64) Seed { return 0 }}
	got := EffectiveSeed(d, 7)
	assert(uint64(got) == 7, "SeedPrep returning 0 must mean use-as-is, got %d", got)
}

func TestListAllOrdering(t *testing.T) {
	assert := testutil.NewAsserter(t)

	byName = make(map[string]*Descriptor)
	allDescs = nil
	familyOrder = make(map[string]int)

	Register(&Descriptor{Name: "b_one", Family: "fam1", HashFnNative: identityHash(false), HashFnBSwap: identityHash(true)})
	Register(&Descriptor{Name: "a_two", Family: "fam1", SortOrder: 1, HashFnNative: identityHash(false), HashFnBSwap: identityHash(true)})
	Register(&Descriptor{Name: "z_three", Family: "fam0", HashFnNative: identityHash(false), HashFnBSwap: identityHash(true)})

	all := ListAll()
	assert(len(all) == 3, "expected 3 registered descriptors, got %d", len(all))
	assert(all[0].Name == "z-three", "fam0 must sort before fam1 by family name, got %s", all[0].Name)
	assert(all[1].Name == "b-one", "within fam1, SortOrder 0 must precede SortOrder 1, got %s", all[1].Name)
	assert(all[2].Name == "a-two", "expected a_two (sort order 1) last within fam1, got %s", all[2].Name)
}
