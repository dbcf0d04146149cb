package registry

import "github.com/opencoff/go-hashzoo/platform"

// isNative ports Hashinfo.h's `_is_native`: given a descriptor and the
// caller's requested endian variant, decide whether the *native* (as
// opposed to byte-swapped) hashfn should be dispatched.
func isNative(d *Descriptor, e Endianness) bool {
	switch e {
	case EndianNative:
		return true
	case EndianBSwapped:
		return false
	case EndianLittle:
		return platform.IsLE()
	case EndianBig:
		return platform.IsBE()
	case EndianNondefault:
		return !isNative(d, EndianDefault)
	case EndianDefault:
		fallthrough
	default:
		if d.IsEndianIndependent() && d.IsCanonicalBoth() {
			return true
		}
		if d.IsCanonicalLE() {
			return platform.IsLE()
		}
		if d.IsCanonicalBE() {
			return platform.IsBE()
		}
		return true
	}
}

// SelectHashFn returns the hashfn appropriate for endian request e against
// descriptor d, per §4.4.
func SelectHashFn(d *Descriptor, e Endianness) HashFn {
	if isNative(d, e) {
		return d.HashFnNative
	}
	return d.HashFnBSwap
}

// ExpectedVerification returns the LE or BE verification constant that
// should match compute_verification(d, e), consistent with whether the
// variant selected by e produces native-endian canonical output on this
// host. Ported from HashInfo::ExpectedVerify: wantLE = isBE() ^ is_native(e).
func ExpectedVerification(d *Descriptor, e Endianness) uint32 {
	wantLE := platform.IsBE() != isNative(d, e)
	if wantLE {
		return d.VerificationLE
	}
	return d.VerificationBE
}
