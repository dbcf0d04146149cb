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

// FNV, the wordwise Fibonacci hash and Ivan "sanmayce"'s FNV variants,
// ported from original_source/hashes/fnv.cpp.

const fibonacciC64 = 0x9E3779B97F4A7C15 // 11400714819323198485
const fibonacciC32 = uint32(fibonacciC64 & 0xFFFFFFFF)

func excludeLow32Zero(d *registry.Descriptor, seed uint64) uint64 {
	_ = d
	if seed&0xFFFFFFFF == 0 {
		return seed ^ 0xA5A5A5A5
	}
	return seed
}

func fibonacci32(bswap bool, data []byte, seed uint32) uint32 {
	h := seed
	n := len(data) / 4
	for i := 0; i < n; i++ {
		w := platform.GetU32(data[i*4:], 0, bswap)
		h += w * fibonacciC32
	}
	data = data[n*4:]
	for _, b := range data {
		h += uint32(b) * fibonacciC32
	}
	return h
}

func fibonacci64(bswap bool, data []byte, seed uint64) uint64 {
	h := seed
	n := len(data) / 8
	for i := 0; i < n; i++ {
		w := platform.GetU64(data[i*8:], 0, bswap)
		h += w * fibonacciC64
	}
	data = data[n*8:]
	for _, b := range data {
		h += uint64(b) * fibonacciC64
	}
	return h
}

func fnv1a32(data []byte, seed uint32) uint32 {
	h := seed ^ 2166136261
	for _, b := range data {
		h ^= uint32(b)
		h *= 16777619
	}
	return h
}

func fnv1a64(data []byte, seed uint64) uint64 {
	h := seed ^ 0xcbf29ce484222325
	for _, b := range data {
		h ^= uint64(b)
		h *= 0x100000001b3
	}
	return h
}

func fnv1a128(data []byte, seed uint64) (hi, lo uint64) {
	const c1lo = 0x62b821756295c58d
	const c1hi = 0x6c62272e07bb0142
	const c2 = 0x13b

	hash0, hash1 := seed^c1hi, seed^c1lo
	for _, b := range data {
		hash1 ^= uint64(b)
		s1, s0 := mathx.Mul64To128(c2, hash1)
		s0 += (hash1 << 24) + c2*hash0
		hash0 = s0
		hash1 = s1
	}
	return hash0, hash1
}

// padRKaze implements the source's _PADr_KAZE<keeplsb>. With keepLsb false
// it right-shifts x by n bits; with keepLsb true it clears the top n bits of
// x via a left-then-right shift, leaving the low 64-n bits in place.
// n >= 64 always yields 0.
func padRKaze(x uint64, n int, keepLsb bool) uint64 {
	if n >= 64 {
		return 0
	}
	if keepLsb {
		return (x << uint(n)) >> uint(n)
	}
	return x >> uint(n)
}

func fnvYoshimitsuTriad(bswap bool, data []byte, seed uint32) uint32 {
	const prime = 709607
	hashA := uint32(2166136261) ^ seed
	hashB := uint32(2166136261) + uint32(len(data))
	hashC := uint32(2166136261)

	p := data
	for len(p) >= 3*2*4 {
		hashA = (hashA ^ (platform.Rotl32(platform.GetU32(p, 0, bswap), 5) ^ platform.GetU32(p, 4, bswap))) * prime
		hashB = (hashB ^ (platform.Rotl32(platform.GetU32(p, 8, bswap), 5) ^ platform.GetU32(p, 12, bswap))) * prime
		hashC = (hashC ^ (platform.Rotl32(platform.GetU32(p, 16, bswap), 5) ^ platform.GetU32(p, 20, bswap))) * prime
		p = p[24:]
	}
	if len(p) != len(data) {
		hashA = (hashA ^ platform.Rotl32(hashC, 5)) * prime
	}

	rem := len(p)
	if rem&16 != 0 {
		hashA = (hashA ^ (platform.Rotl32(platform.GetU32(p, 0, bswap), 5) ^ platform.GetU32(p, 4, bswap))) * prime
		hashB = (hashB ^ (platform.Rotl32(platform.GetU32(p, 8, bswap), 5) ^ platform.GetU32(p, 12, bswap))) * prime
		p = p[16:]
	}
	if rem&8 != 0 {
		hashA = (hashA ^ platform.GetU32(p, 0, bswap)) * prime
		hashB = (hashB ^ platform.GetU32(p, 4, bswap)) * prime
		p = p[8:]
	}
	if rem&4 != 0 {
		hashA = (hashA ^ uint32(platform.GetU16(p, 0, bswap))) * prime
		hashB = (hashB ^ uint32(platform.GetU16(p, 2, bswap))) * prime
		p = p[4:]
	}
	if rem&2 != 0 {
		hashA = (hashA ^ uint32(platform.GetU16(p, 0, bswap))) * prime
		p = p[2:]
	}
	if rem&1 != 0 {
		hashA = (hashA ^ uint32(p[0])) * prime
	}

	hashA = (hashA ^ platform.Rotl32(hashB, 5)) * prime
	hashA ^= hashA >> 16
	return hashA
}

// fnvTailWord reads up to the first 8 bytes of p (zero-filling any bytes
// beyond len(p)) the way a zero-padded buffer would, so Totenschiff and
// Pippip-Yurii's trailing full-word read never indexes past p's length —
// the source relies on 8 bytes of caller-supplied padding for this read
// instead.
func fnvTailWord(p []byte, bswap bool) uint64 {
	var buf [8]byte
	n := len(p)
	if n > 8 {
		n = 8
	}
	copy(buf[:n], p[:n])
	return platform.GetU64(buf[:], 0, bswap)
}

func fnvTotenschiff(bswap bool, data []byte, seed uint64) uint32 {
	const prime = 591798841
	hash64 := seed ^ 0xcbf29ce484222325

	p := data
	length := len(data)
	for length > 8 {
		hash64 = (hash64 ^ platform.GetU64(p, 0, bswap)) * prime
		p = p[8:]
		length -= 8
	}

	shift := (8 - length) << 3
	var padded uint64
	if platform.IsLE() != bswap {
		padded = padRKaze(fnvTailWord(p, bswap), shift, true)
	} else {
		padded = padRKaze(fnvTailWord(p, bswap), shift, false)
	}
	hash64 = (hash64 ^ padded) * prime

	h32 := uint32(hash64 ^ (hash64 >> 32))
	h32 ^= h32 >> 16
	return h32
}

func fnvPippipYurii(bswap bool, data []byte, seed uint64) uint32 {
	const prime = 591798841
	hash64 := seed ^ 0xcbf29ce484222325

	str := data
	length := len(data)
	if length > 8 {
		cycles := ((length - 1) >> 4) + 1
		ndhead := length - (cycles << 3)
		for ; cycles > 0; cycles-- {
			hash64 = (hash64 ^ platform.GetU64(str, 0, bswap)) * prime
			hash64 = (hash64 ^ platform.GetU64(str, ndhead, bswap)) * prime
			str = str[8:]
		}
	} else {
		shift := (8 - length) << 3
		if platform.IsLE() != bswap {
			hash64 = (hash64 ^ padRKaze(fnvTailWord(str, bswap), shift, true)) * prime
		} else {
			hash64 = (hash64 ^ padRKaze(fnvTailWord(str, bswap), shift, false)) * prime
		}
	}

	h32 := uint32(hash64 ^ (hash64 >> 32))
	h32 ^= h32 >> 16
	return h32
}

func fnvMulvey(data []byte, seed uint32) uint32 {
	h := seed ^ 2166136261
	for _, b := range data {
		h ^= uint32(b)
		h *= 16777619
	}
	h += h << 13
	h ^= h >> 7
	h += h << 3
	h ^= h >> 17
	h += h << 5
	return h
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "fibonacci-32",
		Family:         "fnv",
		Desc:           "32-bit wordwise Fibonacci hash (Knuth)",
		OutputBits:     32,
		HashFlags:      registry.HashSmallSeed,
		ImplFlags:      registry.ImplSanityFails | registry.ImplMultiply | registry.ImplLicenseMIT,
		VerificationLE: 0x09952480,
		VerificationBE: 0x006F7705,
		SeedFix:        excludeLow32Zero,
		BadSeeds:       []uint64{0, 0xffffffff00000000},
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fibonacci32(false, in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fibonacci32(true, in[:length], uint32(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "fibonacci-64",
		Family:         "fnv",
		Desc:           "64-bit wordwise Fibonacci hash (Knuth)",
		OutputBits:     64,
		ImplFlags:      registry.ImplSanityFails | registry.ImplMultiply64x64 | registry.ImplLicenseMIT,
		VerificationLE: 0xFE3BD380,
		VerificationBE: 0x3E67D58C,
		BadSeedDesc:    "All keys of zero bytes produce the seed as the hash.",
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(fibonacci64(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(fibonacci64(true, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "fnv-1a-32",
		Family:         "fnv",
		Desc:           "32-bit bytewise FNV-1a (Fowler-Noll-Vo)",
		OutputBits:     32,
		HashFlags:      registry.HashNoSeed | registry.HashSmallSeed,
		ImplFlags:      registry.ImplMultiply | registry.ImplLicenseMIT | registry.ImplVerySlow,
		VerificationLE: 0xE3CBBE91,
		VerificationBE: 0x656F95A0,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnv1a32(in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnv1a32(in[:length], uint32(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "fnv-1a-64",
		Family:         "fnv",
		Desc:           "64-bit bytewise FNV-1a (Fowler-Noll-Vo)",
		OutputBits:     64,
		HashFlags:      registry.HashNoSeed,
		ImplFlags:      registry.ImplMultiply64x64 | registry.ImplLicenseMIT | registry.ImplVerySlow,
		VerificationLE: 0x103455FC,
		VerificationBE: 0x4B032B63,
		SeedFix:        registry.ExcludeBadSeeds,
		BadSeeds:       []uint64{0xcbf29ce484222325},
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(fnv1a64(in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(fnv1a64(in[:length], uint64(seed)), out, 0, true)
		},
	})

	fnv128 := func(in []byte, length int, seed registry.Seed, out []byte) {
		hi, lo := fnv1a128(in[:length], uint64(seed))
		if platform.IsLE() {
			platform.PutU64(hi, out, 0, true)
			platform.PutU64(lo, out, 8, true)
		} else {
			platform.PutU64(hi, out, 0, false)
			platform.PutU64(lo, out, 8, false)
		}
	}
	registry.Register(&registry.Descriptor{
		Name:           "fnv-1a-128",
		Family:         "fnv",
		Desc:           "128-bit bytewise FNV-1a (Fowler-Noll-Vo), from Golang",
		OutputBits:     128,
		HashFlags:      registry.HashEndianIndependent | registry.HashNoSeed,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseBSD | registry.ImplVerySlow | registry.ImplCanonicalBoth,
		VerificationLE: 0x0269D36F,
		VerificationBE: 0x0269D36F,
		HashFnNative:   fnv128,
		HashFnBSwap:    fnv128,
	})

	registry.Register(&registry.Descriptor{
		Name:           "fnv-yoshimitsu-triad",
		Family:         "fnv",
		Desc:           "FNV-YoshimitsuTRIAD 32-bit (sanmayce)",
		OutputBits:     32,
		HashFlags:      registry.HashNoSeed | registry.HashSmallSeed,
		ImplFlags:      registry.ImplMultiply | registry.ImplRotate | registry.ImplLicenseMIT,
		VerificationLE: 0xD8AFFD71,
		VerificationBE: 0x85C2EC2F,
		SeedFix:        registry.ExcludeBadSeeds,
		BadSeeds:       []uint64{0x811c9dc5, 0x23d4a49d},
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvYoshimitsuTriad(false, in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvYoshimitsuTriad(true, in[:length], uint32(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "fnv-totenschiff",
		Family:         "fnv",
		Desc:           "FNV-Totenschiff 32-bit (sanmayce)",
		OutputBits:     32,
		HashFlags:      registry.HashNoSeed | registry.HashSmallSeed,
		ImplFlags:      registry.ImplSanityFails | registry.ImplMultiply | registry.ImplReadPastEOB | registry.ImplLicenseMIT,
		VerificationLE: 0x95D95ACF,
		VerificationBE: 0xC16E2C8F,
		SeedFix:        registry.ExcludeBadSeeds,
		BadSeeds:       []uint64{0x811c9dc5},
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvTotenschiff(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvTotenschiff(true, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "fnv-pippip-yurii",
		Family:         "fnv",
		Desc:           "FNV-Pippip-Yurii 32-bit (sanmayce)",
		OutputBits:     32,
		HashFlags:      registry.HashNoSeed | registry.HashSmallSeed,
		ImplFlags:      registry.ImplSanityFails | registry.ImplMultiply | registry.ImplReadPastEOB | registry.ImplLicenseMIT,
		VerificationLE: 0xE79AE3E4,
		VerificationBE: 0x90C8C706,
		SeedFix:        registry.ExcludeBadSeeds,
		BadSeeds:       []uint64{0x811c9dc5},
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvPippipYurii(false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvPippipYurii(true, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "fnv-mulvey",
		Family:         "fnv",
		Desc:           "FNV-Mulvey 32-bit",
		OutputBits:     32,
		HashFlags:      registry.HashNoSeed | registry.HashSmallSeed,
		ImplFlags:      registry.ImplMultiply | registry.ImplVerySlow | registry.ImplLicenseMIT,
		VerificationLE: 0x0E256555,
		VerificationBE: 0xAC12B951,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvMulvey(in[:length], uint32(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(fnvMulvey(in[:length], uint32(seed)), out, 0, true)
		},
	})
}
