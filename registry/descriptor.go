package registry

// Seed is wide enough to carry either a plain uint64 seed or a handle to
// per-hash-family seed-derived state (multiplier tables, expanded round
// keys, ...), matching the source's dual-use `seed_t`. The source returns
// the *address* of a thread_local struct as that handle; Go has no
// portable pointer<->integer cast and no per-goroutine storage, so hashzoo
// instead gives each stateful family exactly one package-level state
// variable (mirroring the source's "thread_local" being, in practice, one
// instance per hash module) and has SeedPrep write into it directly,
// returning the sentinel HandleReady to tell hashfn the state is valid.
// This reproduces the source's "seedprep writes, hashfn only reads"
// discipline without unsafe pointer arithmetic. Per §5, mixing SeedPrep
// and HashFn calls for the same family across goroutines is the caller's
// responsibility to avoid, exactly as the source requires for threads.
type Seed uint64

// HandleReady is the non-zero Seed a SeedPrepFn returns to mean "state was
// derived into this family's package-level variable; use it", per §4.6's
// "s1 if s1 != 0 else s0" rule.
const HandleReady Seed = 1

// HashFn is the uniform per-hash entry point: hash input[0:len] under seed,
// writing exactly len(output) bytes. len is carried separately from
// len(input) so that callers exercising the READ_PAST_EOB contract (§4.8)
// can pass a padded buffer while still declaring the logical length.
type HashFn func(input []byte, length int, seed Seed, output []byte)

// InitFn is a one-shot, idempotent startup hook. A false return means the
// hash is unavailable on this host and must not be registered (§4.8).
type InitFn func() bool

// SeedFixFn rewrites a user seed to avoid a declared bad seed. Must be
// idempotent: SeedFix(SeedFix(x)) == SeedFix(x).
type SeedFixFn func(d *Descriptor, seed uint64) uint64

// SeedPrepFn derives per-hash state from a fixed-up seed and returns an
// effective seed handle, or 0 to mean "use the input seed as-is".
type SeedPrepFn func(seed uint64) Seed

// Endianness selects which of a descriptor's two hashfn variants is
// dispatched, per §4.4.
type Endianness int

const (
	EndianDefault Endianness = iota
	EndianNondefault
	EndianNative
	EndianBSwapped
	EndianLittle
	EndianBig
)

// SrcStatus classifies the upstream maturity of a hash family, ported
// from HashFamilyInfo::SrcStatus.
type SrcStatus int

const (
	SrcUnknown SrcStatus = iota
	SrcFrozen
	SrcStableish
	SrcActive
)

// Family is the family-level metadata a descriptor's Family field names;
// it groups one or more Descriptors under one upstream source.
type Family struct {
	Name      string
	SrcURL    string
	SrcStatus SrcStatus
}

// Descriptor is immutable metadata for one registered hash, ported from
// HashInfo / §3.1's HashDescriptor entity.
type Descriptor struct {
	Name   string // canonicalised: underscores replaced with '-'
	Family string
	Desc   string
	Impl   string

	OutputBits int
	HashFlags  HashFlag
	ImplFlags  ImplFlag
	SortOrder  uint32

	VerificationLE uint32
	VerificationBE uint32

	Init     InitFn
	SeedFix  SeedFixFn
	SeedPrep SeedPrepFn

	HashFnNative HashFn
	HashFnBSwap  HashFn

	BadSeeds    []uint64
	BadSeedDesc string
}

// OutputBytes is OutputBits/8, the required length of a hashfn's output
// slice.
func (d *Descriptor) OutputBytes() int { return d.OutputBits / 8 }

// IsEndianIndependent reports the HASH_ENDIAN_INDEPENDENT flag.
func (d *Descriptor) IsEndianIndependent() bool {
	return d.HashFlags.Has(HashEndianIndependent)
}

// IsCanonicalBoth reports the IMPL_CANONICAL_BOTH flag.
func (d *Descriptor) IsCanonicalBoth() bool { return d.ImplFlags.Has(ImplCanonicalBoth) }

// IsCanonicalLE reports the IMPL_CANONICAL_LE flag.
func (d *Descriptor) IsCanonicalLE() bool { return d.ImplFlags.Has(ImplCanonicalLE) }

// IsCanonicalBE reports the IMPL_CANONICAL_BE flag.
func (d *Descriptor) IsCanonicalBE() bool { return d.ImplFlags.Has(ImplCanonicalBE) }
