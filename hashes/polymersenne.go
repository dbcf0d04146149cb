// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package hashes

import (
	"math/big"
	"strconv"

	"github.com/opencoff/go-hashzoo/mathx"
	"github.com/opencoff/go-hashzoo/platform"
	"github.com/opencoff/go-hashzoo/registry"
)

// Polynomial hashing mod the Mersenne prime 2^61-1, ported from
// original_source/hashes/poly_mersenne.cpp. The upstream RNG is FreeBSD's
// Park-Miller random(), reimplemented there (instead of calling libc) so
// the hash is reproducible across hosts; this port keeps that same
// reimplementation rather than reaching for Go's math/rand, since a
// different RNG would change every verification constant.

const mersenne61 = (uint64(1) << 61) - 1
const polyMersenneMaxK = 4

type polyMersenneState struct {
	random [polyMersenneMaxK + 1]uint64
	a, b   uint64
}

var polyMersenneData polyMersenneState

// bsdRand is FreeBSD's random(3) core: Park-Miller with modulus 2^31-1,
// Schrage's method to avoid overflow. The source's `if (x < 0)` branch can
// never fire since x is unsigned there; it is omitted here for the same
// reason rather than ported as dead code.
func bsdRand(next *uint64) uint32 {
	x := (*next % 0x7ffffffe) + 1
	hi := x / 127773
	lo := x % 127773
	x = 16807*lo - 2836*hi
	x--
	*next = x
	return uint32(x)
}

var mersenne128Mask = func() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), 128)
	return m.Sub(m, big.NewInt(1))
}()

// randU128 concatenates 8 rounds of bsdRand into a 128-bit accumulator,
// matching the source's uint128_t register (including the truncation once
// the shifted total would exceed 128 bits).
func randU128(next *uint64) *big.Int {
	r := big.NewInt(int64(bsdRand(next)))
	for i := 0; i < 7; i++ {
		r.Lsh(r, 16)
		r.Xor(r, big.NewInt(int64(bsdRand(next))))
		r.And(r, mersenne128Mask)
	}
	return r
}

// polyMersenneSeedInit is the shared seedfn for all 4 degrees; it derives
// the polynomial coefficients once into the package's state and hands back
// the HandleReady sentinel, per the Seed type's thread_local-replacement
// convention.
func polyMersenneSeedInit(seed uint64) registry.Seed {
	next := seed
	m61 := new(big.Int).SetUint64(mersenne61)
	halfM61 := new(big.Int).Rsh(m61, 1)

	a := new(big.Int).Mod(randU128(&next), halfM61)
	b := new(big.Int).Mod(randU128(&next), m61)
	polyMersenneData.a = a.Uint64()
	polyMersenneData.b = b.Uint64()
	for i := 0; i <= polyMersenneMaxK; i++ {
		r := new(big.Int).Mod(randU128(&next), m61)
		polyMersenneData.random[i] = r.Uint64()
	}
	return registry.HandleReady
}

// multCombine61 is the lazy modular reduction mod 2^61-1: (h*x + a) is
// formed in a 128-bit accumulator, then folded down to under 2^62 by
// shifting the high limb in by 3 bits (since a multiply-add of two <2^61
// values plus a <2^61 carry-in never exceeds what 3 extra high bits hold).
func multCombine61(h, x, a uint64) uint64 {
	rlo, rhi := a, uint64(0)
	mathx.FMA64To128(&rlo, &rhi, h, x)

	rhi <<= 64 - 61
	rhi |= rlo >> 61
	rlo &= mersenne61

	return rlo + rhi
}

// putNativeTruncated32 mirrors `h = COND_BSWAP(h, bswap); memcpy(out, &h, 4)`:
// the source takes the first 4 bytes of the host's in-memory 8-byte layout,
// which is the low word on little-endian hosts and the high word on
// big-endian hosts.
func putNativeTruncated32(h uint64, bswap bool, out []byte) {
	hh := platform.CondBswap64(h, bswap)
	if platform.IsLE() {
		platform.PutU32(uint32(hh), out, 0, false)
	} else {
		platform.PutU32(uint32(hh>>32), out, 0, true)
	}
}

func polyMersenne(deg int, bswap bool, in []byte) uint64 {
	a := polyMersenneData.a
	length := len(in)
	h := uint64(length)

	buf := in
	n := length / 4
	for i := 0; i < n; i++ {
		h = multCombine61(h, a, uint64(platform.GetU32(buf, 0, bswap)))
		buf = buf[4:]
	}

	remaining := length % 4
	if remaining != 0 {
		var last uint32
		if remaining&2 != 0 {
			last = uint32(platform.GetU16(buf, 0, bswap))
			buf = buf[2:]
		}
		if remaining&1 != 0 {
			last = last<<8 | uint32(buf[0])
		}
		h = multCombine61(h, a, uint64(last))
	}

	if deg != 0 {
		h0 := h
		h = polyMersenneData.random[0]
		k := deg
		if k > polyMersenneMaxK {
			k = polyMersenneMaxK
		}
		for i := 1; i <= k; i++ {
			h = multCombine61(h, h0, polyMersenneData.random[i])
		}
	}

	if h >= mersenne61 {
		h -= mersenne61
	}
	return h
}

func registerPolyMersenne(name string, deg int, verLE, verBE uint32, badSeeds []uint64) {
	d := &registry.Descriptor{
		Name:           name,
		Family:         "poly_mersenne",
		Desc:           "Degree-" + strconv.Itoa(deg) + " hashing mod 2^61-1",
		Impl:           "int128",
		OutputBits:     32,
		ImplFlags:      registry.Impl128Bit | registry.ImplMultiply64x128 | registry.ImplLicenseBSD | registry.ImplSlow,
		VerificationLE: verLE,
		VerificationBE: verBE,
		SeedPrep:       polyMersenneSeedInit,
		BadSeeds:       badSeeds,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			// seed carries HandleReady; state already lives in polyMersenneData.
			putNativeTruncated32(polyMersenne(deg, false, in[:length]), false, out)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			putNativeTruncated32(polyMersenne(deg, true, in[:length]), true, out)
		},
	}
	if deg == 1 || deg == 4 {
		d.HashFlags = registry.HashLookupTable | registry.HashSystemSpecific
	} else {
		d.HashFlags = registry.HashSystemSpecific
	}
	if len(badSeeds) > 0 {
		d.SeedFix = registry.ExcludeBadSeeds
	}
	registry.Register(d)
}

func init() {
	registerPolyMersenne("poly-mersenne-deg1", 1, 0x50526DA4, 0xBB8CF709, nil)
	registerPolyMersenne("poly-mersenne-deg2", 2, 0xCDDDA91B, 0x9507D811, []uint64{0x60e8512c})
	registerPolyMersenne("poly-mersenne-deg3", 3, 0x7D822707, 0x7273EB0A, []uint64{0x3d25f745})
	registerPolyMersenne("poly-mersenne-deg4", 4, 0xBF0273E6, 0xAA526413, nil)
}
