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

// komihash v5.7, ported from original_source/hashes/komihash.cpp.

func khLpu64ecL3(bswap bool, msg []byte, msgLen int) uint64 {
	ml8 := uint(msgLen * 8)
	if msgLen < 4 {
		msg3 := msg[msgLen-3:]
		m := uint64(msg3[0]) | uint64(msg3[1])<<8 | uint64(msg3[2])<<16
		return uint64(1)<<ml8 | m>>(24-ml8)
	}
	mh := uint64(platform.GetU32(msg[msgLen-4:], 0, bswap))
	ml := uint64(platform.GetU32(msg, 0, bswap))
	return uint64(1)<<ml8 | ml | (mh >> (64 - ml8) << 32)
}

func khLpu64ecNz(bswap bool, msg []byte, msgLen int) uint64 {
	ml8 := uint(msgLen * 8)
	if msgLen < 4 {
		m := uint64(msg[0])
		if msgLen > 1 {
			m |= uint64(msg[1]) << 8
			if msgLen > 2 {
				m |= uint64(msg[2]) << 16
			}
		}
		return uint64(1)<<ml8 | m
	}
	mh := uint64(platform.GetU32(msg[msgLen-4:], 0, bswap))
	ml := uint64(platform.GetU32(msg, 0, bswap))
	return uint64(1)<<ml8 | ml | (mh >> (64 - ml8) << 32)
}

func khLpu64ecL4(bswap bool, msg []byte, msgLen int) uint64 {
	ml8 := uint(msgLen * 8)
	if msgLen < 5 {
		m := uint64(platform.GetU32(msg[msgLen-4:], 0, bswap))
		return uint64(1)<<ml8 | m>>(32-ml8)
	}
	m := platform.GetU64(msg[msgLen-8:], 0, bswap)
	return uint64(1)<<ml8 | m>>(64-ml8)
}

func khM128(m1, m2 uint64) (lo, hi uint64) { return mathx.Mul64To128(m1, m2) }

type komiState struct {
	seed1, seed5 uint64
}

func (s *komiState) hash16(bswap bool, m []byte) {
	lo, hi := khM128(s.seed1^platform.GetU64(m, 0, bswap), s.seed5^platform.GetU64(m, 8, bswap))
	s.seed1 = lo
	s.seed5 += hi
	s.seed1 ^= s.seed5
}

func (s *komiState) round() {
	lo, hi := khM128(s.seed1, s.seed5)
	s.seed1 = lo
	s.seed5 += hi
	s.seed1 ^= s.seed5
}

func (s *komiState) fin(r1h, r2h uint64) {
	lo, hi := khM128(r1h, r2h)
	s.seed1 = lo
	s.seed5 += hi
	s.seed1 ^= s.seed5
	s.round()
}

func komihashEpi(bswap bool, msg []byte, seed1, seed5 uint64) uint64 {
	s := &komiState{seed1, seed5}
	msgLen := len(msg)

	if msgLen > 31 {
		s.hash16(bswap, msg)
		s.hash16(bswap, msg[16:])
		msg = msg[32:]
		msgLen -= 32
	}
	if msgLen > 15 {
		s.hash16(bswap, msg)
		msg = msg[16:]
		msgLen -= 16
	}

	var r1h, r2h uint64
	if msgLen > 7 {
		r2h = s.seed5 ^ khLpu64ecL4(bswap, msg[8:], msgLen-8)
		r1h = s.seed1 ^ platform.GetU64(msg, 0, bswap)
	} else {
		r1h = s.seed1 ^ khLpu64ecL4(bswap, msg, msgLen)
		r2h = s.seed5
	}
	s.fin(r1h, r2h)
	return s.seed1
}

func komihashImpl(bswap bool, msg []byte, useSeed uint64) uint64 {
	s := &komiState{
		seed1: 0x243F6A8885A308D3 ^ (useSeed & 0x5555555555555555),
		seed5: 0x452821E638D01377 ^ (useSeed & 0xAAAAAAAAAAAAAAAA),
	}

	s.round()

	msgLen := len(msg)
	if msgLen < 16 {
		r1h, r2h := s.seed1, s.seed5
		switch {
		case msgLen > 7:
			r2h ^= khLpu64ecL3(bswap, msg[8:], msgLen-8)
			r1h ^= platform.GetU64(msg, 0, bswap)
		case msgLen != 0:
			r1h ^= khLpu64ecNz(bswap, msg, msgLen)
		}
		s.fin(r1h, r2h)
		return s.seed1
	}

	if msgLen < 32 {
		s.hash16(bswap, msg)
		var r1h, r2h uint64
		if msgLen > 23 {
			r2h = s.seed5 ^ khLpu64ecL4(bswap, msg[24:], msgLen-24)
			r1h = s.seed1 ^ platform.GetU64(msg, 16, bswap)
		} else {
			r1h = s.seed1 ^ khLpu64ecL4(bswap, msg[16:], msgLen-16)
			r2h = s.seed5
		}
		s.fin(r1h, r2h)
		return s.seed1
	}

	if msgLen > 63 {
		seed1, seed5 := s.seed1, s.seed5
		seed2 := 0x13198A2E03707344 ^ seed1
		seed3 := 0xA4093822299F31D0 ^ seed1
		seed4 := 0x082EFA98EC4E6C89 ^ seed1
		seed6 := 0xBE5466CF34E90C6C ^ seed5
		seed7 := 0xC0AC29B7C97C50DD ^ seed5
		seed8 := 0x3F84D5B5B5470917 ^ seed5

		for msgLen > 63 {
			var r1h, r2h, r3h, r4h uint64
			seed1, r1h = khM128(seed1^platform.GetU64(msg, 0, bswap), seed5^platform.GetU64(msg, 32, bswap))
			seed2, r2h = khM128(seed2^platform.GetU64(msg, 8, bswap), seed6^platform.GetU64(msg, 40, bswap))
			seed3, r3h = khM128(seed3^platform.GetU64(msg, 16, bswap), seed7^platform.GetU64(msg, 48, bswap))
			seed4, r4h = khM128(seed4^platform.GetU64(msg, 24, bswap), seed8^platform.GetU64(msg, 56, bswap))

			msg = msg[64:]
			msgLen -= 64

			seed5 += r1h
			seed6 += r2h
			seed7 += r3h
			seed8 += r4h
			seed2 ^= seed5
			seed3 ^= seed6
			seed4 ^= seed7
			seed1 ^= seed8
		}

		seed5 ^= seed6 ^ seed7 ^ seed8
		seed1 ^= seed2 ^ seed3 ^ seed4
		s.seed1, s.seed5 = seed1, seed5
	}

	return komihashEpi(bswap, msg, s.seed1, s.seed5)
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "komihash",
		Family:         "komihash",
		Desc:           "komihash v5.7",
		OutputBits:     64,
		HashFlags:      registry.HashEndianIndependent,
		ImplFlags:      registry.ImplCanonicalLE | registry.ImplMultiply64x128 | registry.ImplShiftVariable | registry.ImplLicenseMIT,
		VerificationLE: 0x8157FF6D,
		VerificationBE: 0x3A74F6E6,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(komihashImpl(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(komihashImpl(true, in[:length], uint64(seed)), out, 0, true)
		},
	})
}
