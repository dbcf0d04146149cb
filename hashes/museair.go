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

// MuseAir v0.3, ported from original_source/hashes/museair.cpp. Only the
// *input* read order varies between the native and bswap hashfn; the
// output epilogue is the source's `COND_BSWAP(out, isBE());
// PUT_U64<false>(...)`. With platform.PutU64's little-endian store, the
// output bytes are little-endian (ImplCanonicalLE) on a little-endian
// host and big-endian on a big-endian host.
var museairConstant = [7]uint64{
	0x5ae31e589c56e17a, 0x96d7bb04e64f6da9,
	0x7ab1006b26f9eb64, 0x21233394220b8457,
	0x047cb9557c9f3b43, 0xd24f2590c0bcee28,
	0x33ea8f71bb6016d8,
}

// museairReadShort ports museair_read_short. Called only with length<=16.
func museairReadShort(bswap bool, data []byte, length int) (i, j uint64) {
	switch {
	case length >= 4:
		off := 0
		if length >= 8 {
			off = 4
		}
		i = uint64(platform.GetU32(data, 0, bswap))<<32 | uint64(platform.GetU32(data, length-4, bswap))
		j = uint64(platform.GetU32(data, off, bswap))<<32 | uint64(platform.GetU32(data, length-4-off, bswap))
	case length > 0:
		i = uint64(data[0])<<48 | uint64(data[length>>1])<<24 | uint64(data[length-1])
	}
	return i, j
}

// museairMumix ports museair_mumix<bfast>.
func museairMumix(bfast bool, statep, stateq *uint64, inputP, inputQ uint64) {
	if !bfast {
		*statep ^= inputP
		*stateq ^= inputQ
		lo, hi := mathx.Mul64To128(*statep, *stateq)
		*statep ^= lo
		*stateq ^= hi
		return
	}
	lo, hi := mathx.Mul64To128(*statep^inputP, *stateq^inputQ)
	*statep = lo
	*stateq = hi
}

// museairHashShort ports museair_hash_short (length <= 32).
func museairHashShort(bswap, bfast, b128 bool, data []byte, length int, seed uint64) (outLo, outHi uint64) {
	lo2, hi2 := mathx.Mul64To128(seed^museairConstant[0], uint64(length)^museairConstant[1])

	shortLen := length
	if shortLen > 16 {
		shortLen = 16
	}
	i, j := museairReadShort(bswap, data, shortLen)
	i ^= uint64(length) ^ lo2
	j ^= seed ^ hi2

	if length > 16 {
		u, v := museairReadShort(bswap, data[16:], length-16)
		lo0, hi0 := mathx.Mul64To128(museairConstant[2], museairConstant[3]^u)
		lo1, hi1 := mathx.Mul64To128(museairConstant[4], museairConstant[5]^v)
		i ^= lo0 ^ hi1
		j ^= lo1 ^ hi0
	}

	if b128 {
		lo0, hi0 := mathx.Mul64To128(i, j)
		lo1, hi1 := mathx.Mul64To128(i^museairConstant[2], j^museairConstant[3])
		i = lo0 ^ hi1
		j = lo1 ^ hi0
		lo0, hi0 = mathx.Mul64To128(i, j)
		lo1, hi1 = mathx.Mul64To128(i^museairConstant[4], j^museairConstant[5])
		return lo0 ^ hi1, lo1 ^ hi0
	}

	lo2, hi2 = mathx.Mul64To128(i^museairConstant[2], j^museairConstant[3])
	if !bfast {
		i ^= lo2
		j ^= hi2
	} else {
		i = lo2
		j = hi2
	}
	lo2, hi2 = mathx.Mul64To128(i^museairConstant[4], j^museairConstant[5])
	if !bfast {
		return i ^ j ^ lo2 ^ hi2, 0
	}
	return lo2 ^ hi2, 0
}

// museairHashLoong ports museair_hash_loong (length > 32).
func museairHashLoong(bswap, bfast, b128 bool, data []byte, length int, seed uint64) (outLo, outHi uint64) {
	p := data
	q := length

	state := [6]uint64{
		museairConstant[0] + seed, museairConstant[1] - seed, museairConstant[2] ^ seed,
		museairConstant[3] + seed, museairConstant[4] - seed, museairConstant[5] ^ seed,
	}
	var lo0, lo1, lo2, lo3, lo4 uint64
	lo5 := museairConstant[6]
	var hi0, hi1, hi2, hi3, hi4, hi5 uint64

	if q >= 96 {
		for {
			if !bfast {
				state[0] ^= platform.GetU64(p, 0, bswap)
				state[1] ^= platform.GetU64(p, 8, bswap)
				lo0, hi0 = mathx.Mul64To128(state[0], state[1])
				state[0] += lo5 ^ hi0

				state[1] ^= platform.GetU64(p, 16, bswap)
				state[2] ^= platform.GetU64(p, 24, bswap)
				lo1, hi1 = mathx.Mul64To128(state[1], state[2])
				state[1] += lo0 ^ hi1

				state[2] ^= platform.GetU64(p, 32, bswap)
				state[3] ^= platform.GetU64(p, 40, bswap)
				lo2, hi2 = mathx.Mul64To128(state[2], state[3])
				state[2] += lo1 ^ hi2

				state[3] ^= platform.GetU64(p, 48, bswap)
				state[4] ^= platform.GetU64(p, 56, bswap)
				lo3, hi3 = mathx.Mul64To128(state[3], state[4])
				state[3] += lo2 ^ hi3

				state[4] ^= platform.GetU64(p, 64, bswap)
				state[5] ^= platform.GetU64(p, 72, bswap)
				lo4, hi4 = mathx.Mul64To128(state[4], state[5])
				state[4] += lo3 ^ hi4

				state[5] ^= platform.GetU64(p, 80, bswap)
				state[0] ^= platform.GetU64(p, 88, bswap)
				lo5, hi5 = mathx.Mul64To128(state[5], state[0])
				state[5] += lo4 ^ hi5
			} else {
				state[0] ^= platform.GetU64(p, 0, bswap)
				state[1] ^= platform.GetU64(p, 8, bswap)
				lo0, hi0 = mathx.Mul64To128(state[0], state[1])
				state[0] = lo5 ^ hi0

				state[1] ^= platform.GetU64(p, 16, bswap)
				state[2] ^= platform.GetU64(p, 24, bswap)
				lo1, hi1 = mathx.Mul64To128(state[1], state[2])
				state[1] = lo0 ^ hi1

				state[2] ^= platform.GetU64(p, 32, bswap)
				state[3] ^= platform.GetU64(p, 40, bswap)
				lo2, hi2 = mathx.Mul64To128(state[2], state[3])
				state[2] = lo1 ^ hi2

				state[3] ^= platform.GetU64(p, 48, bswap)
				state[4] ^= platform.GetU64(p, 56, bswap)
				lo3, hi3 = mathx.Mul64To128(state[3], state[4])
				state[3] = lo2 ^ hi3

				state[4] ^= platform.GetU64(p, 64, bswap)
				state[5] ^= platform.GetU64(p, 72, bswap)
				lo4, hi4 = mathx.Mul64To128(state[4], state[5])
				state[4] = lo3 ^ hi4

				state[5] ^= platform.GetU64(p, 80, bswap)
				state[0] ^= platform.GetU64(p, 88, bswap)
				lo5, hi5 = mathx.Mul64To128(state[5], state[0])
				state[5] = lo4 ^ hi5
			}

			p = p[96:]
			q -= 96
			if q < 96 {
				break
			}
		}
		state[0] ^= lo5
	}

	if q >= 48 {
		museairMumix(bfast, &state[0], &state[1], platform.GetU64(p, 0, bswap), platform.GetU64(p, 8, bswap))
		museairMumix(bfast, &state[2], &state[3], platform.GetU64(p, 16, bswap), platform.GetU64(p, 24, bswap))
		museairMumix(bfast, &state[4], &state[5], platform.GetU64(p, 32, bswap), platform.GetU64(p, 40, bswap))
		p = p[48:]
		q -= 48
	}

	if q >= 16 {
		museairMumix(bfast, &state[0], &state[3], platform.GetU64(p, 0, bswap), platform.GetU64(p, 8, bswap))
		if q >= 32 {
			museairMumix(bfast, &state[1], &state[4], platform.GetU64(p, 16, bswap), platform.GetU64(p, 24, bswap))
		}
	}

	// p+q is invariant (== &data[length]); the tail mumix reads the last
	// 16 bytes of the whole input, addressed from data directly rather
	// than through the (possibly already-advanced-past-it) p, since q
	// can be smaller than 16 at this point.
	museairMumix(bfast, &state[2], &state[5],
		platform.GetU64(data[length-16:], 0, bswap), platform.GetU64(data[length-8:], 0, bswap))

	i := state[0] - state[1]
	j := state[2] - state[3]
	k := state[4] - state[5]

	rot := uint(length & 63)
	i = platform.Rotl64(i, rot)
	j = platform.Rotr64(j, rot)
	k ^= uint64(length)

	lo0, hi0 = mathx.Mul64To128(i, j)
	lo1, hi1 = mathx.Mul64To128(j, k)
	lo2, hi2 = mathx.Mul64To128(k, i)

	i = lo0 ^ hi2
	j = lo1 ^ hi0
	k = lo2 ^ hi1

	lo0, hi0 = mathx.Mul64To128(i, j)
	lo1, hi1 = mathx.Mul64To128(j, k)
	lo2, hi2 = mathx.Mul64To128(k, i)

	if b128 {
		return lo0 ^ lo1 ^ hi2, hi0 ^ hi1 ^ lo2
	}
	return (lo0 ^ hi2) + (lo1 ^ hi0) + (lo2 ^ hi1), 0
}

func museairHash(bswap, bfast, b128 bool, data []byte, length int, seed uint64, out []byte) {
	var lo, hi uint64
	if length <= 32 {
		lo, hi = museairHashShort(bswap, bfast, b128, data, length, seed)
	} else {
		lo, hi = museairHashLoong(bswap, bfast, b128, data, length, seed)
	}

	lo = platform.CondBswap64(lo, platform.IsBE())
	platform.PutU64(lo, out, 0, false)
	if b128 {
		hi = platform.CondBswap64(hi, platform.IsBE())
		platform.PutU64(hi, out, 8, false)
	}
}

func init() {
	type variant struct {
		name         string
		bfast, b128  bool
		bits         int
		verLE, verBE uint32
	}
	variants := []variant{
		{"museair", false, false, 64, 0xF89F1683, 0xDFEF2570},
		{"museair-bfast", true, false, 64, 0xC61BEE56, 0x16186D00},
		{"museair-128", false, true, 128, 0xD3DFE238, 0x05EC3BE4},
		{"museair-128-bfast", true, true, 128, 0x27939BF1, 0xCB4AB283},
	}

	for _, v := range variants {
		v := v
		registry.Register(&registry.Descriptor{
			Name:           v.name,
			Family:         "museair",
			Desc:           "MuseAir v0.3, " + v.name,
			OutputBits:     v.bits,
			HashFlags:      registry.HashEndianIndependent,
			ImplFlags:      registry.ImplMultiply64x128 | registry.ImplRotateVariable | registry.ImplCanonicalLE | registry.ImplLicensePublicDomain,
			VerificationLE: v.verLE,
			VerificationBE: v.verBE,
			HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
				museairHash(false, v.bfast, v.b128, in[:length], length, uint64(seed), out)
			},
			HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
				museairHash(true, v.bfast, v.b128, in[:length], length, uint64(seed), out)
			},
		})
	}
}
