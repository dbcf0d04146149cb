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

// crap8, crapwow and crapwow64, ported from original_source/hashes/crap.cpp
// (noncryptohashzoo, frozen upstream).

func crap8Impl(bswap bool, key []byte, seed uint32) uint32 {
	const m, n = 0x83d2e73b, 0x97e1cc59
	length := len(key)
	h := uint32(length) + seed
	k := uint32(n) + uint32(length)

	mix := func(in uint32) {
		h *= m
		p := uint64(in) * uint64(m)
		k ^= uint32(p)
		h ^= uint32(p >> 32)
	}

	for length >= 8 {
		mix(platform.GetU32(key, 0, bswap))
		mix(platform.GetU32(key, 4, bswap))
		key = key[8:]
		length -= 8
	}
	if length >= 4 {
		mix(platform.GetU32(key, 0, bswap))
		key = key[4:]
		length -= 4
	}
	if length != 0 {
		v := platform.GetU32(key, 0, bswap)
		if platform.IsLE() != bswap {
			v &= (uint32(1) << (length * 8)) - 1
		} else {
			v >>= 32 - length*8
		}
		mix(v)
	}

	p := uint64(h^k) * uint64(n)
	k ^= uint32(p)
	k ^= uint32(p >> 32)
	return k
}

func crapWowImpl(bswap bool, key []byte, seed uint32) uint32 {
	const m, n = 0x57559429, 0x5052acdb
	length := len(key)
	h := uint32(length)
	k := uint32(length) + seed + n

	mixa := func(in uint32) {
		p := uint64(in) * uint64(m)
		k ^= uint32(p)
		h ^= uint32(p >> 32)
	}
	mixb := func(in uint32) {
		p := uint64(in) * uint64(n)
		h ^= uint32(p)
		k ^= uint32(p >> 32)
	}

	for length >= 8 {
		mixb(platform.GetU32(key, 0, bswap))
		mixa(platform.GetU32(key, 4, bswap))
		key = key[8:]
		length -= 8
	}
	if length >= 4 {
		mixb(platform.GetU32(key, 0, bswap))
		key = key[4:]
		length -= 4
	}
	if length != 0 {
		v := platform.GetU32(key, 0, bswap)
		if platform.IsLE() != bswap {
			v &= (uint32(1) << (length * 8)) - 1
		} else {
			v >>= 32 - length*8
		}
		mixa(v)
	}

	mixb(h ^ (k + n))
	return k ^ h
}

func crapWow64Impl(bswap bool, key []byte, seed uint64) uint64 {
	const m, n = 0x95b47aa3355ba1a1, 0x8a970be7488fda55
	length := len(key)
	h := uint64(length)
	k := uint64(length) + seed + n

	mixa := func(in uint64) {
		lo, hi := mathx.Mul64To128(in, m)
		k ^= lo
		h ^= hi
	}
	mixb := func(in uint64) {
		lo, hi := mathx.Mul64To128(in, n)
		h ^= lo
		k ^= hi
	}

	for length >= 16 {
		mixb(platform.GetU64(key, 0, bswap))
		mixa(platform.GetU64(key, 8, bswap))
		key = key[16:]
		length -= 16
	}
	if length >= 8 {
		mixb(platform.GetU64(key, 0, bswap))
		key = key[8:]
		length -= 8
	}
	if length != 0 {
		v := platform.GetU64(key, 0, bswap)
		if platform.IsLE() != bswap {
			v &= (uint64(1) << (length * 8)) - 1
		} else {
			v >>= 64 - length*8
		}
		mixa(v)
	}

	mixb(h ^ (k + n))
	return k ^ h
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "crap8",
		Family:         "crap",
		Desc:           "Noncryptohashzoo's Crap8 hash",
		OutputBits:     32,
		HashFlags:      registry.HashSmallSeed,
		ImplFlags:      registry.ImplReadPastEOB | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0x743E97A1,
		VerificationBE: 0xDFE06AD9,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(crap8Impl(false, in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(crap8Impl(true, in[:length], uint32(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "crapwow",
		Family:         "crap",
		Desc:           "Noncryptohashzoo's CrapWow hash",
		OutputBits:     32,
		HashFlags:      registry.HashSmallSeed,
		ImplFlags:      registry.ImplSanityFails | registry.ImplReadPastEOB | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0x49ECB015,
		VerificationBE: 0x4EF994DF,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(crapWowImpl(false, in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(crapWowImpl(true, in[:length], uint32(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "crapwow-64",
		Family:         "crap",
		Desc:           "Noncryptohashzoo's CrapWow64 hash",
		OutputBits:     64,
		ImplFlags:      registry.ImplSanityFails | registry.ImplReadPastEOB | registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x669D3A9B,
		VerificationBE: 0xCBB7690C,
		BadSeedDesc:    "Any keys of len==32*N consisting of repeated 16-byte blocks collide with any seed",
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(crapWow64Impl(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(crapWow64Impl(true, in[:length], uint64(seed)), out, 0, true)
		},
	})
}
