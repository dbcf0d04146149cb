// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package hashes holds every ported hash family. Each file registers its
// descriptors from an init() func, mirroring the source's REGISTER_FAMILY/
// REGISTER_HASH macro pairs.
package hashes

import (
	"github.com/opencoff/go-hashzoo/mathx"
	"github.com/opencoff/go-hashzoo/platform"
	"github.com/opencoff/go-hashzoo/registry"
)

// a5hash, ported from original_source/hashes/a5hash.cpp. Seeds are
// initialised to mantissa bits of PI, then mixed with the message length
// and a single 128-bit multiply before the main loop.
const (
	a5val01 = 0x5555555555555555
	a5val10 = 0xAAAAAAAAAAAAAAAA
)

func a5umul64(u, v uint32) (rl, rh uint32) {
	p := mathx.Mul32To64(u, v)
	return uint32(p), uint32(p >> 32)
}

func a5umul128(u, v uint64) (rl, rh uint64) {
	return mathx.Mul64To128(u, v)
}

func a5hash64(bswap bool, msg []byte, useSeed uint64) uint64 {
	msgLen := uint64(len(msg))
	val01 := uint64(a5val01)
	val10 := uint64(a5val10)

	seed1 := uint64(0x243F6A8885A308D3) ^ msgLen
	seed2 := uint64(0x452821E638D01377) ^ msgLen
	seed1, seed2 = a5umul128(seed2^(useSeed&val10), seed1^(useSeed&val01))

	if msgLen > 16 {
		val01 ^= seed1
		val10 ^= seed2
		for {
			seed1, seed2 = a5umul128(
				uint64(platform.GetU32(msg, 0, bswap))<<32^uint64(platform.GetU32(msg, 4, bswap))^seed1,
				uint64(platform.GetU32(msg, 8, bswap))<<32^uint64(platform.GetU32(msg, 12, bswap))^seed2,
			)
			msgLen -= 16
			msg = msg[16:]
			seed1 += val01
			seed2 += val10
			if msgLen <= 16 {
				break
			}
		}
	}

	fin := func() uint64 {
		seed1, seed2 = a5umul128(seed1, seed2)
		seed1, seed2 = a5umul128(seed1^val01, seed2)
		return seed1 ^ seed2
	}

	switch {
	case msgLen == 0:
		return fin()
	case msgLen > 3:
		mo := msgLen >> 3
		seed1 ^= uint64(platform.GetU32(msg, 0, bswap))<<32 | uint64(platform.GetU32(msg[msgLen-4:], 0, bswap))
		seed2 ^= uint64(platform.GetU32(msg[mo*4:], 0, bswap))<<32 | uint64(platform.GetU32(msg[msgLen-4-mo*4:], 0, bswap))
		return fin()
	default:
		seed1 ^= uint64(msg[0])
		msgLen--
		if msgLen != 0 {
			seed1 ^= uint64(msg[1]) << 8
			msgLen--
			if msgLen != 0 {
				seed1 ^= uint64(msg[2]) << 16
			}
		}
		return fin()
	}
}

func a5hash32(bswap bool, msg []byte, useSeed uint32) uint32 {
	msgLen := uint64(len(msg))
	val01 := uint32(a5val01)
	val10 := uint32(a5val10)

	seed1 := uint32(0x243F6A88) ^ uint32(msgLen)
	seed2 := uint32(0x85A308D3) ^ uint32(msgLen)
	// small_platform branch: MsgLen can't exceed 32 bits, so Seed3/4 are
	// the fixed constants rather than derived from MsgLen>>32.
	seed3 := uint32(0xFB0BD3EA)
	seed4 := uint32(0x0F58FD47)

	seed1, seed2 = a5umul64(seed2^(useSeed&val10), seed1^(useSeed&val01))

	var a, b, c, d uint32
	fin := func() uint32 {
		seed1 ^= seed3
		seed2 ^= seed4
		seed1, seed2 = a5umul64(a+seed1, b+seed2)
		ra, rb := a5umul64(val01^seed1, seed2)
		return ra ^ rb
	}

	if msgLen < 17 {
		if msgLen > 3 {
			a = platform.GetU32(msg, 0, bswap)
			b = platform.GetU32(msg[msgLen-4:], 0, bswap)
			if msgLen < 9 {
				return fin()
			}
			mo := msgLen >> 3
			c = platform.GetU32(msg[mo*4:], 0, bswap)
			d = platform.GetU32(msg[msgLen-4-mo*4:], 0, bswap)
			seed3, seed4 = a5umul64(c+seed3, d+seed4)
			return fin()
		}
		if msgLen != 0 {
			a = uint32(msg[0])
			if msgLen != 1 {
				a |= uint32(msg[1]) << 8
				if msgLen != 2 {
					a |= uint32(msg[2]) << 16
				}
			}
		}
		return fin()
	}

	val01 ^= seed1
	val10 ^= seed2
	for {
		s1 := seed1
		s4 := seed4
		seed1, seed2 = a5umul64(platform.GetU32(msg, 0, bswap)+seed1, platform.GetU32(msg, 4, bswap)+seed2)
		seed3, seed4 = a5umul64(platform.GetU32(msg, 8, bswap)+seed3, platform.GetU32(msg, 12, bswap)+seed4)
		msgLen -= 16
		msg = msg[16:]
		seed1 += val01
		seed2 += s4
		seed3 += s1
		seed4 += val10
		if msgLen <= 16 {
			break
		}
	}

	a = platform.GetU32(msg[msgLen-8:], 0, bswap)
	b = platform.GetU32(msg[msgLen-4:], 0, bswap)
	if msgLen < 9 {
		return fin()
	}
	c = platform.GetU32(msg[msgLen-16:], 0, bswap)
	d = platform.GetU32(msg[msgLen-12:], 0, bswap)
	seed3, seed4 = a5umul64(c+seed3, d+seed4)
	return fin()
}

// a5hash128 returns the low 64 bits of a5hash's 128-bit variant, plus the
// high 64 bits unless truncate is set (mirroring the C function's `rh ==
// NULL` convention for the 128-to-64 truncated registration).
func a5hash128(bswap, truncate bool, msg []byte, useSeed uint64) (lo, hi uint64) {
	msgLen := uint64(len(msg))
	val01 := uint64(a5val01)
	val10 := uint64(a5val10)

	seed1 := uint64(0x243F6A8885A308D3) ^ msgLen
	seed2 := uint64(0x452821E638D01377) ^ msgLen
	seed3 := uint64(0xA4093822299F31D0)
	seed4 := uint64(0xC0AC29B7C97C50DD)
	var a, b, c, d uint64

	seed1, seed2 = a5umul128(seed2^(useSeed&val10), seed1^(useSeed&val01))

	finSmall := func() (uint64, uint64) {
		seed1, seed2 = a5umul128(a+seed1, b+seed2)
		a, b = a5umul128(val01^seed1, seed2)
		a ^= b
		if truncate {
			return a, 0
		}
		seed3, seed4 = a5umul128(seed1^seed3, seed2^seed4)
		seed3 ^= seed4
		return a, seed3
	}
	finMid := func() (uint64, uint64) {
		seed3, seed4 = a5umul128(c+seed3, d+seed4)
		return finSmall()
	}

	if msgLen < 17 {
		if msgLen > 3 {
			mo := msgLen >> 3
			a = uint64(platform.GetU32(msg, 0, bswap))<<32 | uint64(platform.GetU32(msg[msgLen-4:], 0, bswap))
			b = uint64(platform.GetU32(msg[mo*4:], 0, bswap))<<32 | uint64(platform.GetU32(msg[msgLen-4-mo*4:], 0, bswap))
			return finSmall()
		}
		if msgLen != 0 {
			a = uint64(msg[0])
			ml := msgLen - 1
			if ml != 0 {
				a |= uint64(msg[1]) << 8
				ml--
				if ml != 0 {
					a |= uint64(msg[2]) << 16
				}
			}
		}
		return finSmall()
	}

	if msgLen < 33 {
		a = uint64(platform.GetU32(msg, 0, bswap))<<32 | uint64(platform.GetU32(msg, 4, bswap))
		b = uint64(platform.GetU32(msg, 8, bswap))<<32 | uint64(platform.GetU32(msg, 12, bswap))
		c = uint64(platform.GetU32(msg[msgLen-16:], 0, bswap))<<32 | uint64(platform.GetU32(msg[msgLen-12:], 0, bswap))
		d = uint64(platform.GetU32(msg[msgLen-8:], 0, bswap))<<32 | uint64(platform.GetU32(msg[msgLen-4:], 0, bswap))
		return finMid()
	}

	val01 ^= seed1
	val10 ^= seed2
	if msgLen > 64 {
		seed5 := uint64(0x082EFA98EC4E6C89)
		seed6 := uint64(0x3F84D5B5B5470917)
		seed7 := uint64(0x13198A2E03707344)
		seed8 := uint64(0xBE5466CF34E90C6C)

		for {
			s1, s3, s5 := seed1, seed3, seed5

			seed1, seed2 = a5umul128(platform.GetU64(msg, 0, bswap)+seed1, platform.GetU64(msg, 32, bswap)+seed2)
			seed1 += val01
			seed2 += seed8

			seed3, seed4 = a5umul128(platform.GetU64(msg, 8, bswap)+seed3, platform.GetU64(msg, 40, bswap)+seed4)
			seed3 += s1
			seed4 += val10

			seed5, seed6 = a5umul128(platform.GetU64(msg, 16, bswap)+seed5, platform.GetU64(msg, 48, bswap)+seed6)
			seed7, seed8 = a5umul128(platform.GetU64(msg, 24, bswap)+seed7, platform.GetU64(msg, 56, bswap)+seed8)

			msgLen -= 64
			msg = msg[64:]

			seed5 += s3
			seed6 += val10
			seed7 += s5
			seed8 += val10
			if msgLen <= 64 {
				break
			}
		}

		seed1 ^= seed5
		seed2 ^= seed6
		seed3 ^= seed7
		seed4 ^= seed8

		if msgLen > 32 {
			goto tail32
		}
	} else {
		goto tail32
	}
	goto after32

tail32:
	{
		s1 := seed1
		seed1, seed2 = a5umul128(platform.GetU64(msg, 0, bswap)+seed1, platform.GetU64(msg, 8, bswap)+seed2)
		seed1 += val01
		seed2 += seed4
		seed3, seed4 = a5umul128(platform.GetU64(msg, 16, bswap)+seed3, platform.GetU64(msg, 24, bswap)+seed4)
		msgLen -= 32
		msg = msg[32:]
		seed3 += s1
		seed4 += val10
	}

after32:
	a = platform.GetU64(msg[msgLen-16:], 0, bswap)
	b = platform.GetU64(msg[msgLen-8:], 0, bswap)
	if msgLen < 17 {
		return finSmall()
	}
	c = platform.GetU64(msg[msgLen-32:], 0, bswap)
	d = platform.GetU64(msg[msgLen-24:], 0, bswap)
	return finMid()
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "a5hash",
		Family:         "a5hash",
		Desc:           "a5hash v5.21, 64-bit version",
		OutputBits:     64,
		HashFlags:      registry.HashEndianIndependent,
		ImplFlags:      registry.ImplCanonicalLE | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0xADDE79B3,
		VerificationBE: 0x11A303D0,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(a5hash64(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(a5hash64(true, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "a5hash-32",
		Family:         "a5hash",
		Desc:           "a5hash v5.21, 32-bit version",
		OutputBits:     32,
		HashFlags:      registry.HashSmallSeed | registry.HashEndianIndependent,
		ImplFlags:      registry.ImplCanonicalLE | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0xA948D11B,
		VerificationBE: 0x9C6196A0,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(a5hash32(false, in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(a5hash32(true, in[:length], uint32(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "a5hash-128",
		Family:         "a5hash",
		Desc:           "a5hash v5.21, 128-bit version",
		OutputBits:     128,
		HashFlags:      registry.HashEndianIndependent,
		ImplFlags:      registry.ImplCanonicalLE | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0x89406B11,
		VerificationBE: 0x890F41CB,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			lo, hi := a5hash128(false, false, in[:length], uint64(seed))
			platform.PutU64(lo, out, 0, false)
			platform.PutU64(hi, out, 8, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			lo, hi := a5hash128(true, false, in[:length], uint64(seed))
			platform.PutU64(lo, out, 0, true)
			platform.PutU64(hi, out, 8, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "a5hash-128-64",
		Family:         "a5hash",
		Desc:           "a5hash v5.21, 128-bit version, 64-bit truncated (rh==NULL)",
		OutputBits:     64,
		HashFlags:      registry.HashEndianIndependent,
		ImplFlags:      registry.ImplCanonicalLE | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0x14AD402C,
		VerificationBE: 0xA500372C,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			lo, _ := a5hash128(false, true, in[:length], uint64(seed))
			platform.PutU64(lo, out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			lo, _ := a5hash128(true, true, in[:length], uint64(seed))
			platform.PutU64(lo, out, 0, true)
		},
	})
}
