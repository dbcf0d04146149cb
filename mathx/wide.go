package mathx

import "math/bits"

// Mul32To64 computes the full-width product of two 32-bit values.
// Ported from Mathmult.h's mult32_64.
func Mul32To64(a, b uint32) uint64 {
	return uint64(a) * uint64(b)
}

// FMA32To64 computes r += a*b where the product is widened to 64 bits
// before the add. Ported from Mathmult.h's fma32_64.
func FMA32To64(r *uint64, a, b uint32) {
	*r += Mul32To64(a, b)
}

// Add96 computes the wraparound 96-bit sum (lo,mi,hi) += (lo2,mi2,hi2),
// each limb a uint32, carries propagating lo -> mi -> hi. Ported from
// Mathmult.h's add96.
func Add96(lo, mi, hi *uint32, lo2, mi2, hi2 uint32) {
	s := uint64(*lo) + uint64(lo2)
	*lo = uint32(s)
	c := uint32(s >> 32)

	s = uint64(*mi) + uint64(mi2) + uint64(c)
	*mi = uint32(s)
	c = uint32(s >> 32)

	*hi = *hi + hi2 + c
}

// FMA32To96 computes (lo,mi,hi) += a*b where a*b is widened to 64 bits
// before being added into the 96-bit accumulator. Ported from
// Mathmult.h's fma32_96.
func FMA32To96(lo, mi, hi *uint32, a, b uint32) {
	p := Mul32To64(a, b)
	Add96(lo, mi, hi, uint32(p), uint32(p>>32), 0)
}

// Mul64To128 computes the exact 128-bit product of a and b, returned as
// (lo, hi). Ported from Mathmult.h's mult64_128 -- on Go this is exactly
// math/bits.Mul64, which already guarantees the identical result on every
// platform the toolchain supports.
func Mul64To128(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Mul64To128NoCarry computes a deliberately "defective" 128-bit product:
// the four 32x32->64 cross products of a and b's halves are formed, the
// high two are summed into hi and the low two into lo, but the carry out
// of the lo accumulation is NOT propagated into hi. This does not compute
// a*b, but several legacy hashes (the MUM/MIR family's "inexact" variants)
// depend on this exact, reproducible misbehaviour. Ported from
// Mathmult.h's mult64_128_nocarry.
func Mul64To128NoCarry(a, b uint64) (lo, hi uint64) {
	alo, ahi := uint32(a), uint32(a>>32)
	blo, bhi := uint32(b), uint32(b>>32)

	p0 := Mul32To64(alo, blo)
	p1 := Mul32To64(alo, bhi)
	p2 := Mul32To64(ahi, blo)
	p3 := Mul32To64(ahi, bhi)

	lo = p0 + (p1 << 32) + (p2 << 32)
	hi = p3 + (p1 >> 32) + (p2 >> 32)
	return lo, hi
}

// Add128 computes the wraparound 128-bit sum (lo,hi) += (lo2,hi2). Ported
// from Mathmult.h's add128.
func Add128(lo, hi *uint64, lo2, hi2 uint64) {
	var c uint64
	*lo, c = bits.Add64(*lo, lo2, 0)
	*hi, _ = bits.Add64(*hi, hi2, c)
}

// Add192 computes the wraparound 192-bit sum (lo,mi,hi) += (lo2,mi2,hi2).
// Ported from Mathmult.h's add192.
func Add192(lo, mi, hi *uint64, lo2, mi2, hi2 uint64) {
	var c uint64
	*lo, c = bits.Add64(*lo, lo2, 0)
	*mi, c = bits.Add64(*mi, mi2, c)
	*hi, _ = bits.Add64(*hi, hi2, c)
}

// FMA64To128 computes (lo,hi) += a*b, the 128-bit product of a and b
// added into a 128-bit accumulator. Ported from Mathmult.h's fma64_128.
func FMA64To128(lo, hi *uint64, a, b uint64) {
	plo, phi := Mul64To128(a, b)
	Add128(lo, hi, plo, phi)
}

// FMA64To192 computes (lo,mi,hi) += a*b, the 128-bit product of a and b
// added into a 192-bit accumulator. Ported from Mathmult.h's fma64_192.
func FMA64To192(lo, mi, hi *uint64, a, b uint64) {
	plo, phi := Mul64To128(a, b)
	Add192(lo, mi, hi, plo, phi, 0)
}

// Mul128To128 computes the low 128 bits of the 256-bit product
// (ahi:alo)*(bhi:blo). Ported from Mathmult.h's mult128_128, which builds
// it from one exact 64x64->128 multiply plus the two cross terms that
// land in the low 128 bits.
func Mul128To128(alo, ahi, blo, bhi uint64) (lo, hi uint64) {
	lo, hi = Mul64To128(alo, blo)
	hi += bhi * alo
	hi += blo * ahi
	return lo, hi
}
