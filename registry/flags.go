package registry

// HashFlag is one of the closed hash_flags vocabulary bits that describe
// properties of the hash *algorithm* (as opposed to this particular
// implementation of it).
type HashFlag uint32

// hash_flags vocabulary, ported verbatim from include/common/Hashinfo.h.
const (
	HashMock HashFlag = 1 << iota
	HashCryptographic
	HashCryptographicWeak
	HashCRCBased
	HashAESBased
	HashCLMULBased
	HashLookupTable
	HashXLSeed
	HashSmallSeed
	HashNoSeed
	HashSystemSpecific
	HashEndianIndependent
	HashFloatingPoint
)

// Has reports whether f includes every bit of want.
func (f HashFlag) Has(want HashFlag) bool { return f&want == want }

// ImplFlag is one of the closed impl_flags vocabulary bits that describe
// properties of this particular *implementation* of a hash.
type ImplFlag uint32

// impl_flags vocabulary, ported verbatim from include/common/Hashinfo.h.
const (
	ImplSanityFails ImplFlag = 1 << iota
	ImplSlow
	ImplVerySlow
	ImplReadPastEOB
	ImplTypePunning
	ImplIncremental
	ImplIncrementalDifferent
	Impl128Bit
	ImplMultiply
	ImplMultiply64x64
	ImplMultiply64x128
	ImplMultiply128x128
	ImplRotate
	ImplRotateVariable
	ImplShiftVariable
	ImplModulus
	ImplASM
	ImplCanonicalLE
	ImplCanonicalBE
	ImplCanonicalBoth
	ImplSeedWithHint

	// License tags. A descriptor carries exactly one.
	ImplLicensePublicDomain
	ImplLicenseBSD
	ImplLicenseMIT
	ImplLicenseApache2
	ImplLicenseZlib
	ImplLicenseGPL3
)

// Has reports whether f includes every bit of want.
func (f ImplFlag) Has(want ImplFlag) bool { return f&want == want }
