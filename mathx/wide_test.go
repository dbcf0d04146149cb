// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package mathx

import (
	"math/big"
	"testing"

	"github.com/opencoff/go-hashzoo/internal/testutil"
)

func big64(x uint64) *big.Int { return new(big.Int).SetUint64(x) }

func twoLimbs(lo, hi uint64) *big.Int {
	r := new(big.Int).Lsh(big64(hi), 64)
	r.Or(r, big64(lo))
	return r
}

var wideTestValues = []uint64{
	0, 1, 2, 0xFFFFFFFF, 0x100000000, 0xFFFFFFFFFFFFFFFF,
	0x0123456789ABCDEF, 0x9e3779b97f4a7c15, 0xC6A4A7935BD1E995,
}

func TestMul32To64(t *testing.T) {
	assert := testutil.NewAsserter(t)

	for _, a32 := range []uint32{0, 1, 0xFFFFFFFF, 0x12345678} {
		for _, b32 := range []uint32{0, 1, 0xFFFFFFFF, 0x87654321} {
			want := uint64(a32) * uint64(b32)
			got := Mul32To64(a32, b32)
			assert(got == want, "Mul32To64(%#x,%#x) = %#x, want %#x", a32, b32, got, want)
		}
	}
}

func TestFMA32To64(t *testing.T) {
	assert := testutil.NewAsserter(t)

	r := uint64(0x1122334455667788)
	want := r + uint64(0x12345678)*uint64(0x87654321)
	FMA32To64(&r, 0x12345678, 0x87654321)
	assert(r == want, "FMA32To64 = %#x, want %#x", r, want)
}

func TestAdd96Carry(t *testing.T) {
	assert := testutil.NewAsserter(t)

	// lo overflows into mi, mi overflows into hi.
	lo, mi, hi := uint32(0xFFFFFFFF), uint32(0xFFFFFFFF), uint32(0x00000001)
	Add96(&lo, &mi, &hi, 1, 0, 0)
	assert(lo == 0, "lo = %#x, want 0", lo)
	assert(mi == 0, "mi = %#x, want 0", mi)
	assert(hi == 2, "hi = %#x, want 2", hi)
}

func TestFMA32To96(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var lo, mi, hi uint32
	FMA32To96(&lo, &mi, &hi, 0xFFFFFFFF, 0xFFFFFFFF)
	// (2^32-1)^2 = 2^64 - 2^33 + 1 = 0xFFFFFFFE_00000001.
	assert(lo == 0x00000001, "lo = %#x, want 0x00000001", lo)
	assert(mi == 0xFFFFFFFE, "mi = %#x, want 0xFFFFFFFE", mi)
	assert(hi == 0, "hi = %#x, want 0", hi)

	// accumulate a second product into the same 96-bit register.
	FMA32To96(&lo, &mi, &hi, 2, 3)
	assert(lo == 0x00000007, "lo after second fma = %#x, want 0x00000007", lo)
}

func TestMul64To128(t *testing.T) {
	assert := testutil.NewAsserter(t)

	for _, a := range wideTestValues {
		for _, b := range wideTestValues {
			lo, hi := Mul64To128(a, b)
			want := new(big.Int).Mul(big64(a), big64(b))
			got := twoLimbs(lo, hi)
			assert(got.Cmp(want) == 0, "Mul64To128(%#x,%#x) = %s, want %s", a, b, got, want)
		}
	}
}

// TestMul64To128NoCarry pins the documented defective behaviour: the carry
// out of the low-limb accumulation is dropped, so the result's high limb
// comes out one less than the true product's for this all-ones input,
// while the low limb (unaffected by the dropped carry) still matches.
func TestMul64To128NoCarry(t *testing.T) {
	assert := testutil.NewAsserter(t)

	const allOnes = 0xFFFFFFFFFFFFFFFF
	lo, hi := Mul64To128NoCarry(allOnes, allOnes)
	trueLo, trueHi := Mul64To128(allOnes, allOnes)

	assert(lo == trueLo, "lo = %#x, want %#x (low limb is unaffected by the dropped carry)", lo, trueLo)
	assert(hi == trueHi-1, "hi = %#x, want %#x (one less than the exact product's high limb)", hi, trueHi-1)
}

func TestAdd128Wraparound(t *testing.T) {
	assert := testutil.NewAsserter(t)

	lo, hi := uint64(0xFFFFFFFFFFFFFFFF), uint64(0)
	Add128(&lo, &hi, 1, 0)
	assert(lo == 0, "lo = %#x, want 0", lo)
	assert(hi == 1, "hi = %#x, want 1", hi)

	// wrap clean off the top: (2^128-1) + 1 = 0 mod 2^128.
	lo, hi = 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF
	Add128(&lo, &hi, 1, 0)
	assert(lo == 0 && hi == 0, "expected wraparound to (0,0), got (%#x,%#x)", lo, hi)
}

func TestAdd192Carry(t *testing.T) {
	assert := testutil.NewAsserter(t)

	lo, mi, hi := uint64(0xFFFFFFFFFFFFFFFF), uint64(0xFFFFFFFFFFFFFFFF), uint64(0)
	Add192(&lo, &mi, &hi, 1, 0, 0)
	assert(lo == 0, "lo = %#x, want 0", lo)
	assert(mi == 0, "mi = %#x, want 0", mi)
	assert(hi == 1, "hi = %#x, want 1", hi)
}

func TestFMA64To128(t *testing.T) {
	assert := testutil.NewAsserter(t)

	for _, a := range wideTestValues {
		for _, b := range wideTestValues {
			lo, hi := uint64(0x1111111111111111), uint64(0x2222222222222222)
			FMA64To128(&lo, &hi, a, b)

			want := new(big.Int).Mul(big64(a), big64(b))
			want.Add(want, twoLimbs(0x1111111111111111, 0x2222222222222222))
			want.Mod(want, new(big.Int).Lsh(big.NewInt(1), 128))

			got := twoLimbs(lo, hi)
			assert(got.Cmp(want) == 0, "FMA64To128(%#x,%#x) = %s, want %s", a, b, got, want)
		}
	}
}

func TestFMA64To192(t *testing.T) {
	assert := testutil.NewAsserter(t)

	for _, a := range wideTestValues {
		for _, b := range wideTestValues {
			var lo, mi, hi uint64
			FMA64To192(&lo, &mi, &hi, a, b)

			want := new(big.Int).Mul(big64(a), big64(b))
			got := new(big.Int).Lsh(big64(hi), 128)
			got.Or(got, new(big.Int).Lsh(big64(mi), 64))
			got.Or(got, big64(lo))
			assert(got.Cmp(want) == 0, "FMA64To192(%#x,%#x) = %s, want %s", a, b, got, want)
		}
	}
}

func TestMul128To128(t *testing.T) {
	assert := testutil.NewAsserter(t)

	mask128 := new(big.Int).Lsh(big.NewInt(1), 128)

	cases := []struct{ alo, ahi, blo, bhi uint64 }{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{0xFFFFFFFFFFFFFFFF, 0, 0xFFFFFFFFFFFFFFFF, 0},
		{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
		{0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x9e3779b97f4a7c15, 0xC6A4A7935BD1E995},
	}
	for _, c := range cases {
		lo, hi := Mul128To128(c.alo, c.ahi, c.blo, c.bhi)

		a := twoLimbs(c.alo, c.ahi)
		b := twoLimbs(c.blo, c.bhi)
		want := new(big.Int).Mul(a, b)
		want.Mod(want, mask128)

		got := twoLimbs(lo, hi)
		assert(got.Cmp(want) == 0, "Mul128To128(%#x,%#x,%#x,%#x) = %s, want %s",
			c.alo, c.ahi, c.blo, c.bhi, got, want)
	}
}
