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

// Polymur hash, ported from original_source/hashes/polymur.cpp, itself a
// SMHasher3 adaptation of https://github.com/orlp/polymur-hash.

const polymurP611 = (uint64(1) << 61) - 1

const (
	polymurArb1 = 0x6a09e667f3bcc908
	polymurArb2 = 0xbb67ae8584caa73b
	polymurArb3 = 0x3c6ef372fe94f82b
	polymurArb4 = 0xa54ff53a5f1d36f1
)

func polymurMul128(a, b uint64) (lo, hi uint64) { return mathx.Mul64To128(a, b) }

func polymurAdd128(alo, ahi, blo, bhi uint64) (lo, hi uint64) {
	lo, hi = alo, ahi
	mathx.Add128(&lo, &hi, blo, bhi)
	return lo, hi
}

func polymurRed611(lo, hi uint64) uint64 {
	return (lo & polymurP611) + (lo>>61 | hi<<3)
}

func polymurExtraRed611(x uint64) uint64 {
	return (x & polymurP611) + (x >> 61)
}

// polymurMix is the avalanche from https://jonkagstrom.com/mx3/mx3_rev2.html.
func polymurMix(x uint64) uint64 {
	x ^= x >> 32
	x *= 0xe9846af9b1a615d
	x ^= x >> 32
	x *= 0xe9846af9b1a615d
	x ^= x >> 28
	return x
}

type polymurHashParams struct {
	k, k2, k7, s uint64
}

func polymurInitParams(kSeed, sSeed uint64) polymurHashParams {
	var p polymurHashParams
	p.s = sSeed ^ polymurArb1 // people love to pass zero.

	// pow37[i] = 37^(2^i) mod (2^61 - 1)
	var pow37 [64]uint64
	pow37[0] = 37
	pow37[32] = 559096694736811184
	for i := 0; i < 31; i++ {
		pow37[i+1] = polymurExtraRed611(polymurRed611(polymurMul128(pow37[i], pow37[i])))
		pow37[i+33] = polymurExtraRed611(polymurRed611(polymurMul128(pow37[i+32], pow37[i+32])))
	}

	for {
		// Choose a random exponent coprime to 2^61 - 2. ~35.3% success rate.
		kSeed += polymurArb2
		e := (kSeed >> 3) | 1 // e < 2^61, odd.
		if e%3 == 0 {
			continue
		}
		if !(e%5 != 0 && e%7 != 0) {
			continue
		}
		if !(e%11 != 0 && e%13 != 0 && e%31 != 0) {
			continue
		}
		if !(e%41 != 0 && e%61 != 0 && e%151 != 0 && e%331 != 0 && e%1321 != 0) {
			continue
		}

		// k = 37^e mod 2^61 - 1, another generator of the multiplicative group.
		ka, kb := uint64(1), uint64(1)
		for i := 0; e != 0; i, e = i+2, e>>2 {
			if e&1 != 0 {
				ka = polymurExtraRed611(polymurRed611(polymurMul128(ka, pow37[i])))
			}
			if e&2 != 0 {
				kb = polymurExtraRed611(polymurRed611(polymurMul128(kb, pow37[i+1])))
			}
		}
		k := polymurExtraRed611(polymurRed611(polymurMul128(ka, kb)))

		// ~46.875% success rate. Bound on k^7 needed for efficient reduction.
		p.k = polymurExtraRed611(k)
		p.k2 = polymurExtraRed611(polymurRed611(polymurMul128(p.k, p.k)))
		k3 := polymurRed611(polymurMul128(p.k, p.k2))
		k4 := polymurRed611(polymurMul128(p.k2, p.k2))
		p.k7 = polymurExtraRed611(polymurRed611(polymurMul128(k3, k4)))
		if p.k7 < (uint64(1)<<60)-(uint64(1)<<56) {
			break
		}
	}
	return p
}

var polymurTLParams polymurHashParams
var polymurZeroParams polymurHashParams

func polymurInitParamsFromSeed(seed uint64) registry.Seed {
	polymurTLParams = polymurInitParams(polymurMix(seed+polymurArb3), polymurMix(seed+polymurArb4))
	return registry.HandleReady
}

func polymurInitParamsFromZero() bool {
	polymurZeroParams = polymurInitParams(polymurMix(polymurArb3), polymurMix(polymurArb4))
	return true
}

// polymurLoadLE64 loads 8 bytes as a fixed little-endian value, independent
// of the hash's own bswap variant -- the source's polymur_load_le_u64 uses
// GET_U32<false> plus an isBE() correction to force this; our GetU64's
// byte-at-a-time composition is already host-independent, so bswap=false
// alone suffices.
func polymurLoadLE64(buf []byte) uint64 { return platform.GetU64(buf, 0, false) }

func polymurLoadLE64_0_8(buf []byte, length int) uint64 {
	if length < 4 {
		if length == 0 {
			return 0
		}
		v := uint64(buf[0])
		v |= uint64(buf[length/2]) << uint(8*(length/2))
		v |= uint64(buf[length-1]) << uint(8*(length-1))
		return v
	}
	lo := uint64(platform.GetU32(buf, 0, false))
	hi := uint64(platform.GetU32(buf[length-4:], 0, false))
	return lo | hi<<uint(8*(length-4))
}

func polymurHashPoly611(buf []byte, p *polymurHashParams, tweak uint64) uint64 {
	var m [7]uint64
	polyAcc := tweak
	length := len(buf)

	if length <= 7 {
		m[0] = polymurLoadLE64_0_8(buf, length)
		lo, hi := polymurMul128(p.k+m[0], p.k2+uint64(length))
		return polyAcc + polymurRed611(lo, hi)
	}

	k3 := polymurRed611(polymurMul128(p.k, p.k2))
	k4 := polymurRed611(polymurMul128(p.k2, p.k2))

	if length >= 50 {
		k5 := polymurExtraRed611(polymurRed611(polymurMul128(p.k, k4)))
		k6 := polymurExtraRed611(polymurRed611(polymurMul128(p.k2, k4)))
		k3 = polymurExtraRed611(k3)
		k4 = polymurExtraRed611(k4)
		var h uint64
		for {
			for i := 0; i < 7; i++ {
				m[i] = polymurLoadLE64(buf[7*i:]) & 0x00ffffffffffffff
			}
			t0lo, t0hi := polymurMul128(p.k+m[0], k6+m[1])
			t1lo, t1hi := polymurMul128(p.k2+m[2], k5+m[3])
			t2lo, t2hi := polymurMul128(k3+m[4], k4+m[5])
			t3lo, t3hi := polymurMul128(h+m[6], p.k7)
			slo, shi := polymurAdd128(t0lo, t0hi, t1lo, t1hi)
			s2lo, s2hi := polymurAdd128(t2lo, t2hi, t3lo, t3hi)
			slo, shi = polymurAdd128(slo, shi, s2lo, s2hi)
			h = polymurRed611(slo, shi)
			length -= 49
			buf = buf[49:]
			if length < 50 {
				break
			}
		}
		k14 := polymurRed611(polymurMul128(p.k7, p.k7))
		hk14 := polymurRed611(polymurMul128(polymurExtraRed611(h), k14))
		polyAcc += polymurExtraRed611(hk14)
	}

	if length >= 8 {
		m[0] = polymurLoadLE64(buf) & 0x00ffffffffffffff
		m[1] = polymurLoadLE64(buf[(length-7)/2:]) & 0x00ffffffffffffff
		m[2] = polymurLoadLE64(buf[length-8:]) >> 8
		t0lo, t0hi := polymurMul128(p.k2+m[0], p.k7+m[1])
		t1lo, t1hi := polymurMul128(p.k+m[2], k3+uint64(length))
		if length <= 21 {
			slo, shi := polymurAdd128(t0lo, t0hi, t1lo, t1hi)
			return polyAcc + polymurRed611(slo, shi)
		}
		m[3] = polymurLoadLE64(buf[7:]) & 0x00ffffffffffffff
		m[4] = polymurLoadLE64(buf[14:]) & 0x00ffffffffffffff
		m[5] = polymurLoadLE64(buf[length-21:]) & 0x00ffffffffffffff
		m[6] = polymurLoadLE64(buf[length-14:]) & 0x00ffffffffffffff
		t0r := polymurRed611(t0lo, t0hi)
		t2lo, t2hi := polymurMul128(p.k2+m[3], p.k7+m[4])
		t3lo, t3hi := polymurMul128(t0r+m[5], k4+m[6])
		slo, shi := polymurAdd128(t1lo, t1hi, t2lo, t2hi)
		slo, shi = polymurAdd128(slo, shi, t3lo, t3hi)
		return polyAcc + polymurRed611(slo, shi)
	}

	m[0] = polymurLoadLE64_0_8(buf, length)
	lo, hi := polymurMul128(p.k+m[0], p.k2+uint64(length))
	return polyAcc + polymurRed611(lo, hi)
}

func polymurHash(tweakSeed bool, in []byte, seed uint64) uint64 {
	var p *polymurHashParams
	var tweak uint64
	if tweakSeed {
		p = &polymurZeroParams
		tweak = seed
	} else {
		p = &polymurTLParams
	}
	hash := polymurHashPoly611(in, p, tweak)
	return polymurMix(hash) + p.s
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "polymurhash",
		Family:         "polymur",
		Desc:           "Polymur Hash (using polymur_init_params_from_seed)",
		OutputBits:     64,
		HashFlags:      registry.HashXLSeed,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseZlib,
		VerificationLE: 0x0722B1A7,
		VerificationBE: 0x830CF404,
		SeedPrep:       polymurInitParamsFromSeed,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(polymurHash(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(polymurHash(false, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "polymurhash-tweakseed",
		Family:         "polymur",
		Desc:           "Polymur Hash (using seed as tweak)",
		OutputBits:     64,
		HashFlags:      registry.HashXLSeed,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseZlib,
		VerificationLE: 0x95CFB54D,
		VerificationBE: 0xEE893701,
		Init:           polymurInitParamsFromZero,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(polymurHash(true, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(polymurHash(true, in[:length], uint64(seed)), out, 0, true)
		},
	})
}
