// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import (
	"github.com/opencoff/go-hashzoo/mathx"
	"github.com/opencoff/go-hashzoo/platform"
	"github.com/opencoff/go-hashzoo/registry"
)

// Tabulation hashing with a multiply-shift mixer, ported from
// original_source/hashes/tabulation.cpp (based on Thorup's "High Speed
// Hashing for Integers and Strings"). The upstream code originally seeded
// its tables from libc rand(), which made it unreproducible across hosts;
// SMHasher3 replaced that with a splitmix64-derived generator, which is
// what this port uses too.

func tabSplitmixRand(state *uint64) uint32 {
	*state += 0x9e3779b97f4a7c15
	r := *state
	r ^= r >> 30
	r *= 0xbf58476d1ce4e5b9
	r ^= r >> 27
	r *= 0x94d049bb133111eb
	r ^= r >> 31
	return uint32(r >> 16)
}

func tabRand64(state *uint64) uint64 {
	var r uint64
	for i := 0; i < 4; i++ {
		r <<= 16
		r ^= uint64(tabSplitmixRand(state))
	}
	return r
}

// tabRand128 mirrors tab_rand128's two sequential tab_rand64 calls: the
// first becomes the high 64 bits, the second the low 64 bits.
func tabRand128(state *uint64) (lo, hi uint64) {
	hi = tabRand64(state)
	lo = tabRand64(state)
	return lo, hi
}

// ---- 32-bit version ----

const tabMersenne31 = (uint64(1) << 31) - 1
const tabBlockSize32 = 1 << 8

type tabSeed32State struct {
	random [tabBlockSize32]uint64
	a      uint32
	b      uint64
	tab    [32 / 8][1 << 8]uint32
	seed   uint64
}

var tabSeed32Data tabSeed32State

func tabulation32Seed(seed uint64) registry.Seed {
	next := seed
	var haveBrokenRand bool

	tabSeed32Data.seed = seed
	// the lazy mersenne combination requires 30-bit values in the polynomial.
	a := uint32(tabRand64(&next) & ((1 << 30) - 1))
	if a == 0 {
		a = uint32(tabRand64(&next) & ((1 << 30) - 1))
	}
	if a == 0 {
		haveBrokenRand = true
		a = uint32(0xababababbeafcafe & ((1 << 30) - 1))
	}
	tabSeed32Data.a = a

	b := tabRand64(&next)
	if b == 0 {
		if haveBrokenRand {
			b = 0xdeadbeef
		} else {
			b = tabRand64(&next)
		}
	}
	tabSeed32Data.b = b

	for i := 0; i < tabBlockSize32; i++ {
		r := tabRand64(&next)
		if r == 0 {
			if haveBrokenRand {
				r = 0xdeadbeef
			} else {
				r = tabRand64(&next)
			}
		}
		tabSeed32Data.random[i] = r
	}
	for i := 0; i < 32/8; i++ {
		for j := 0; j < 1<<8; j++ {
			tabSeed32Data.tab[i][j] = uint32(tabRand64(&next))
		}
	}
	return registry.HandleReady
}

func tabCombine31(h, x, a uint32) uint32 {
	temp := uint64(h)*uint64(x) + uint64(a)
	return uint32(temp&tabMersenne31) + uint32(temp>>31)
}

func tabulation32Core(bswap bool, in []byte) uint32 {
	length := len(in)
	h := uint32(length) ^ uint32(tabSeed32Data.seed)
	buf := in

	lenWords := length / 4
	lenBlocks := lenWords / tabBlockSize32
	for b := 0; b < lenBlocks; b++ {
		var blockHash uint32
		for i := 0; i < tabBlockSize32; i++ {
			v := platform.GetU32(buf, 0, bswap)
			blockHash ^= uint32((tabSeed32Data.random[i] * uint64(v)) >> 32)
			buf = buf[4:]
		}
		h = tabCombine31(h, tabSeed32Data.a, blockHash>>2)
	}

	remainingWords := lenWords % tabBlockSize32
	for i := 0; i < remainingWords; i++ {
		v := platform.GetU32(buf, 0, bswap)
		h ^= uint32((tabSeed32Data.random[i] * uint64(v)) >> 32)
		buf = buf[4:]
	}

	remainingBytes := length % 4
	if remainingBytes != 0 {
		var last uint32
		if remainingBytes&2 != 0 {
			last = uint32(platform.GetU16(buf, 0, bswap))
			buf = buf[2:]
		}
		if remainingBytes&1 != 0 {
			last = last<<8 | uint32(buf[0])
		}
		h ^= uint32((tabSeed32Data.b * uint64(last)) >> 32)
	}

	var tab uint32
	for i := 0; i < 32/8; i++ {
		tab ^= tabSeed32Data.tab[i][h&0xFF]
		h >>= 8
	}
	return tab
}

// ---- 64-bit version ----

const tabBlockSize64 = 1 << 8

type tabSeed64State struct {
	random [tabBlockSize64][2]uint64 // [lo, hi]
	a      uint64
	b      [2]uint64 // [lo, hi]
	tab    [64 / 8][1 << 8]uint64
	seed   uint64
}

var tabSeed64Data tabSeed64State

// tab128x64Mid computes bits [64:128) of the wraparound 128-bit product
// (rhi:rlo)*v (v zero-extended to 128 bits), i.e. Mathmult's
// "128-bit times 64-bit, keep the middle word" idiom used by the block
// mixer. Any bits the true 192-bit product would carry above bit 127 are
// irrelevant here, since the source multiplies as uint128_t (mod 2^128).
func tab128x64Mid(rlo, rhi, v uint64) uint64 {
	var lo, mid, hi uint64
	mathx.FMA64To192(&lo, &mid, &hi, rlo, v)
	mathx.FMA64To128(&mid, &hi, rhi, v)
	return mid
}

func tabulation64Seed(seed uint64) registry.Seed {
	next := seed
	var haveBrokenRand bool

	tabSeed64Data.seed = seed
	const mask60 = (uint64(1) << 60) - 1

	// the lazy mersenne combination requires 60-bit values in the
	// polynomial; the masked value's high 64 bits are always zero, so
	// only the low limb of the 128-bit register is ever non-zero.
	aLo, _ := tabRand128(&next)
	a := aLo & mask60
	bLo, bHi := tabRand128(&next)
	if a == 0 {
		aLo, _ = tabRand128(&next)
		a = aLo & mask60
	}
	if a == 0 {
		haveBrokenRand = true
		a = 0xababababbeafcafe & mask60
	}
	if bLo == 0 && bHi == 0 {
		bLo, bHi = tabRand128(&next)
	}
	if bLo == 0 && bHi == 0 {
		haveBrokenRand = true
		bLo, bHi = 1, 0
	}
	tabSeed64Data.a = a
	tabSeed64Data.b = [2]uint64{bLo, bHi}

	for i := 0; i < tabBlockSize64; i++ {
		rLo, rHi := tabRand128(&next)
		if rLo == 0 && rHi == 0 {
			rLo, rHi = 0x12345678, 0
		}
		tabSeed64Data.random[i] = [2]uint64{rLo, rHi}
	}
	for i := 0; i < 64/8; i++ {
		for j := 0; j < 1<<8; j++ {
			if haveBrokenRand {
				tabSeed64Data.tab[i][j] = tabSeed64Data.random[i][0]
			} else {
				lo, _ := tabRand128(&next)
				tabSeed64Data.tab[i][j] = lo
			}
		}
	}
	return registry.HandleReady
}

func tabulation64Core(bswap bool, in []byte) uint64 {
	length := len(in)
	h := uint64(length) ^ tabSeed64Data.seed ^ (tabSeed64Data.seed << 8)
	buf := in

	if length >= 8 {
		lenWords := length / 8
		if lenWords >= tabBlockSize64 {
			lenBlocks := lenWords / tabBlockSize64
			for b := 0; b < lenBlocks; b++ {
				var blockHash uint64
				for i := 0; i < tabBlockSize64; i++ {
					v := platform.GetU64(buf, 0, bswap)
					r := tabSeed64Data.random[i]
					blockHash ^= tab128x64Mid(r[0], r[1], v)
					buf = buf[8:]
				}
				h = multCombine61(h, tabSeed64Data.a, blockHash>>4)
			}
		}

		remainingWords := lenWords % tabBlockSize64
		for i := 0; i < remainingWords; i++ {
			v := platform.GetU64(buf, 0, bswap)
			r := tabSeed64Data.random[i]
			h ^= tab128x64Mid(r[0], r[1], v)
			buf = buf[8:]
		}
	}

	remainingBytes := length % 8
	if remainingBytes != 0 {
		var last uint64
		if remainingBytes&4 != 0 {
			last = uint64(platform.GetU32(buf, 0, bswap))
			buf = buf[4:]
		}
		if remainingBytes&2 != 0 {
			last = last<<16 | uint64(platform.GetU16(buf, 0, bswap))
			buf = buf[2:]
		}
		if remainingBytes&1 != 0 {
			last = last<<8 | uint64(buf[0])
		}
		h ^= tab128x64Mid(tabSeed64Data.b[0], tabSeed64Data.b[1], last)
	}

	var tab uint64
	for i := 0; i < 64/8; i++ {
		tab ^= tabSeed64Data.tab[i][h&0xFF]
		h >>= 8
	}
	return tab
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "tabulation-32",
		Family:         "tabulation",
		Desc:           "32-bit Tabulation with Multiply-Shift Mixer",
		OutputBits:     32,
		HashFlags:      registry.HashLookupTable | registry.HashSystemSpecific,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseBSD,
		VerificationLE: 0x0D34E471,
		VerificationBE: 0x84CD19C4,
		SeedPrep:       tabulation32Seed,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(tabulation32Core(false, in[:length]), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(tabulation32Core(true, in[:length]), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "tabulation-64",
		Family:         "tabulation",
		Desc:           "64-bit Tabulation with Multiply-Shift Mixer",
		Impl:           "int128",
		OutputBits:     64,
		HashFlags:      registry.HashLookupTable | registry.HashSystemSpecific,
		ImplFlags:      registry.Impl128Bit | registry.ImplMultiply64x128 | registry.ImplLicenseBSD,
		VerificationLE: 0x53B08B2D,
		VerificationBE: 0x164CA53D,
		SeedPrep:       tabulation64Seed,
		BadSeedDesc:    "Many seeds can collide on keys of all zero bytes",
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(tabulation64Core(false, in[:length]), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(tabulation64Core(true, in[:length]), out, 0, true)
		},
	})
}
