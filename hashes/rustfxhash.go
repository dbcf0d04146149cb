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

// Rust FxHash v2.1.1, ported from original_source/hashes/rust-fxhash.cpp
// (https://github.com/rust-lang/rustc-hash), rustc's non-cryptographic
// default hasher: a polynomial hash over a wyhash-style keystream, finished
// with either a single rotation or an unofficial extra avalanche.

const fxK64 = 0xf1357aea2e62a9c5
const fxK32 = 0x93d765dd
const fxSeed1 = 0x243f6a8885a308d3
const fxSeed2 = 0x13198a2e03707344
const fxPreventTrivialZeroCollapse = 0xa4093822299f31d0

func fxAddToHash64(hash uint64, val uint64) uint64 { return (hash + val) * fxK64 }
func fxAddToHash32(hash uint32, val uint32) uint32 { return (hash + val) * fxK32 }

func fxMultiplyMix(mul64 bool, x, y uint64) uint64 {
	if mul64 {
		lo, hi := mathx.Mul64To128(x, y)
		return lo ^ hi
	}
	lx, ly := uint64(uint32(x)), uint64(uint32(y))
	hx, hy := uint64(uint32(x>>32)), uint64(uint32(y>>32))
	afull := lx * hy
	bfull := hx * ly
	return afull ^ platform.Rotr64(bfull, 32)
}

func fxHashBytes(bswap, mul64 bool, bytes []byte) uint64 {
	s0, s1 := uint64(fxSeed1), uint64(fxSeed2)
	length := len(bytes)

	if length <= 16 {
		switch {
		case length >= 8:
			s0 ^= platform.GetU64(bytes, 0, bswap)
			s1 ^= platform.GetU64(bytes, length-8, bswap)
		case length >= 4:
			s0 ^= uint64(platform.GetU32(bytes, 0, bswap))
			s1 ^= uint64(platform.GetU32(bytes, length-4, bswap))
		case length > 0:
			lo := uint64(bytes[0])
			mid := uint64(bytes[length/2])
			hi := uint64(bytes[length-1])
			s0 ^= lo
			s1 ^= hi<<8 | mid
		}
	} else {
		off := 0
		for off < length-16 {
			x := platform.GetU64(bytes, off, bswap)
			y := platform.GetU64(bytes, off+8, bswap)
			t := fxMultiplyMix(mul64, s0^x, fxPreventTrivialZeroCollapse^y)
			s0 = s1
			s1 = t
			off += 16
		}
		s0 ^= platform.GetU64(bytes, length-16, bswap)
		s1 ^= platform.GetU64(bytes, length-8, bswap)
	}

	return fxMultiplyMix(mul64, s0, s1) ^ uint64(length)
}

// fxF64 and fxF32 are MurmurHash3-style avalanching permutations, used by
// FxHash's unofficial "extra mixing" variant.
func fxF64(val uint64) uint64 {
	val ^= val >> 33
	val *= 0xff51afd7ed558ccd
	val ^= val >> 33
	val *= 0xc4ceb9fe1a85ec53
	val ^= val >> 33
	return val
}

func fxF32(val uint32) uint32 {
	val ^= val >> 16
	val *= 0x85ebca6b
	val ^= val >> 13
	val *= 0xc2b2ae35
	val ^= val >> 16
	return val
}

func fxHash64(bswap, avalanche, mul64 bool, in []byte, seed uint64) uint64 {
	hash := seed
	hb := fxHashBytes(bswap, mul64, in)
	if avalanche {
		hash = fxF64(hash)
		hash ^= hb
		hash = fxF64(hash)
	} else {
		hash = fxAddToHash64(hash, hb)
		hash = platform.Rotl64(hash, 26)
	}
	return hash
}

func fxHash32(bswap, avalanche bool, in []byte, seed uint32) uint32 {
	hash := seed
	hb := fxHashBytes(bswap, false, in)
	if avalanche {
		hash = fxF32(hash)
		hash ^= uint32(hb)
		hash ^= uint32(hb >> 32)
		hash = fxF32(hash)
	} else {
		hash = fxAddToHash32(hash, uint32(hb))
		hash = fxAddToHash32(hash, uint32(hb>>32))
		hash = platform.Rotl32(hash, 15)
	}
	return hash
}

func registerFxHash64(name, desc string, avalanche, mul64 bool, verLE, verBE uint32) {
	implFlags := registry.ImplRotate | registry.ImplCanonicalLE | registry.ImplLicenseMIT
	if mul64 {
		implFlags |= registry.ImplMultiply64x128
	} else {
		implFlags |= registry.ImplMultiply64x64
	}
	registry.Register(&registry.Descriptor{
		Name:           name,
		Family:         "rust_fxhash",
		Desc:           desc,
		OutputBits:     64,
		HashFlags:      registry.HashEndianIndependent,
		ImplFlags:      implFlags,
		VerificationLE: verLE,
		VerificationBE: verBE,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(fxHash64(false, avalanche, mul64, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(fxHash64(true, avalanche, mul64, in[:length], uint64(seed)), out, 0, true)
		},
	})
}

func registerFxHash32(name, desc string, avalanche bool, verLE, verBE uint32) {
	registry.Register(&registry.Descriptor{
		Name:           name,
		Family:         "rust_fxhash",
		Desc:           desc,
		OutputBits:     32,
		HashFlags:      registry.HashSmallSeed | registry.HashEndianIndependent,
		ImplFlags:      registry.ImplMultiply | registry.ImplRotate | registry.ImplCanonicalLE | registry.ImplLicenseMIT,
		VerificationLE: verLE,
		VerificationBE: verBE,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fxHash32(false, avalanche, in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fxHash32(true, avalanche, in[:length], uint32(seed)), out, 0, true)
		},
	})
}

func init() {
	registerFxHash64("rust-fxhash64", "Rust FxHash v2.1.1 64-bit version", false, true, 0x8F177350, 0xDA24B5D0)
	registerFxHash64("rust-fxhash64-mix", "Rust FxHash v2.1.1 64-bit version, with unofficial extra mixing", true, true, 0xFC662413, 0x0B8B6821)
	registerFxHash64("rust-fxhash64-mult32", "Rust FxHash v2.1.1 64-bit version", false, false, 0x686292BD, 0xF10008B1)
	registerFxHash64("rust-fxhash64-mult32-mix", "Rust FxHash v2.1.1 64-bit version, with unofficial extra mixing", true, false, 0x9CF6B62E, 0x23CEDC0E)
	registerFxHash32("rust-fxhash32", "Rust FxHash v2.1.1 32-bit version", false, 0xC8D7717D, 0x0209B465)
	registerFxHash32("rust-fxhash32-mix", "Rust FxHash v2.1.1 32-bit version, with unofficial extra mixing", true, 0xD2DC6A74, 0x6202E4AD)
}
