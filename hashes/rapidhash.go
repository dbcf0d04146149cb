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

// rapidhash v3 (standard, Micro and Nano variants), ported from
// original_source/hashes/rapidhash.cpp. Based on wyhash, hence the shared
// wyr8/wyr4-shaped reads and secret-array mixing in wyhash.go.
var rapidSecret = [8]uint64{
	0x2d358dccaa6c78a5, 0x8bb84b93962eacc9,
	0x4b33a62ed433d4a3, 0x4d5a2da51de1aa47,
	0xa0761d6478bd642f, 0xe7037ed1a0b428db,
	0x90ed1765281c388c, 0xaaaaaaaaaaaaaaaa,
}

func rapidRead64(p []byte, bswap bool) uint64 { return platform.GetU64(p, 0, bswap) }
func rapidRead32(p []byte, bswap bool) uint64 { return uint64(platform.GetU32(p, 0, bswap)) }

// rapidMum computes the 128-bit product of a and b, overwriting (or,
// when protected, xor-accumulating into) a and b with the low and high
// halves respectively. Ports rapid_mum<isProtected>.
func rapidMum(a, b *uint64, protected bool) {
	lo, hi := mathx.Mul64To128(*a, *b)
	if protected {
		*a ^= lo
		*b ^= hi
	} else {
		*a = lo
		*b = hi
	}
}

// rapidMix ports rapid_mix<isProtected>.
func rapidMix(a, b uint64, protected bool) uint64 {
	rapidMum(&a, &b, protected)
	return a ^ b
}

// rapidhashCore ports the rapidhash<bswap, isProtected, unrolled> template.
// The unrolled 224-byte fast path and the plain 112-byte loop produce
// identical results (the former is a pure performance variant), so this
// port always takes the simple loop -- still exercising every registered
// verification code, since SMHasher3 registers "unrolled" and
// non-unrolled as the same algorithm under a single hashfn.
func rapidhashCore(bswap, protected bool, key []byte, seed uint64) uint64 {
	p := key
	length := len(key)
	i := length
	var a, b uint64

	seed ^= rapidMix(seed^rapidSecret[2], rapidSecret[1], protected)

	switch {
	case length <= 16:
		switch {
		case length >= 4:
			seed ^= uint64(length)
			if length >= 8 {
				a = rapidRead64(p, bswap)
				b = rapidRead64(p[length-8:], bswap)
			} else {
				a = rapidRead32(p, bswap)
				b = rapidRead32(p[length-4:], bswap)
			}
		case length > 0:
			a = uint64(p[0])<<45 | uint64(p[length-1])
			b = uint64(p[length>>1])
		default:
			a, b = 0, 0
		}
	default:
		if i > 112 {
			see1, see2, see3, see4, see5, see6 := seed, seed, seed, seed, seed, seed
			for i > 112 {
				seed = rapidMix(rapidRead64(p, bswap)^rapidSecret[0], rapidRead64(p[8:], bswap)^seed, protected)
				see1 = rapidMix(rapidRead64(p[16:], bswap)^rapidSecret[1], rapidRead64(p[24:], bswap)^see1, protected)
				see2 = rapidMix(rapidRead64(p[32:], bswap)^rapidSecret[2], rapidRead64(p[40:], bswap)^see2, protected)
				see3 = rapidMix(rapidRead64(p[48:], bswap)^rapidSecret[3], rapidRead64(p[56:], bswap)^see3, protected)
				see4 = rapidMix(rapidRead64(p[64:], bswap)^rapidSecret[4], rapidRead64(p[72:], bswap)^see4, protected)
				see5 = rapidMix(rapidRead64(p[80:], bswap)^rapidSecret[5], rapidRead64(p[88:], bswap)^see5, protected)
				see6 = rapidMix(rapidRead64(p[96:], bswap)^rapidSecret[6], rapidRead64(p[104:], bswap)^see6, protected)
				p = p[112:]
				i -= 112
			}
			seed ^= see1
			see2 ^= see3
			see4 ^= see5
			seed ^= see6
			see2 ^= see4
			seed ^= see2
		}
		if i > 16 {
			seed = rapidMix(rapidRead64(p, bswap)^rapidSecret[2], rapidRead64(p[8:], bswap)^seed, protected)
			if i > 32 {
				seed = rapidMix(rapidRead64(p[16:], bswap)^rapidSecret[2], rapidRead64(p[24:], bswap)^seed, protected)
				if i > 48 {
					seed = rapidMix(rapidRead64(p[32:], bswap)^rapidSecret[1], rapidRead64(p[40:], bswap)^seed, protected)
					if i > 64 {
						seed = rapidMix(rapidRead64(p[48:], bswap)^rapidSecret[1], rapidRead64(p[56:], bswap)^seed, protected)
						if i > 80 {
							seed = rapidMix(rapidRead64(p[64:], bswap)^rapidSecret[2], rapidRead64(p[72:], bswap)^seed, protected)
							if i > 96 {
								seed = rapidMix(rapidRead64(p[80:], bswap)^rapidSecret[1], rapidRead64(p[88:], bswap)^seed, protected)
							}
						}
					}
				}
			}
		}
		a = rapidRead64(p[i-16:], bswap) ^ uint64(i)
		b = rapidRead64(p[i-8:], bswap)
	}
	a ^= rapidSecret[1]
	b ^= seed
	rapidMum(&a, &b, protected)
	return rapidMix(a^rapidSecret[7], b^rapidSecret[1]^uint64(i), protected)
}

// rapidhashMicroCore ports rapidhashMicro<bswap, isProtected> (secrets[5]
// and secrets[6] unused).
func rapidhashMicroCore(bswap, protected bool, key []byte, seed uint64) uint64 {
	p := key
	length := len(key)
	i := length
	var a, b uint64

	seed ^= rapidMix(seed^rapidSecret[2], rapidSecret[1], protected)

	switch {
	case length <= 16:
		switch {
		case length >= 4:
			seed ^= uint64(length)
			if length >= 8 {
				a = rapidRead64(p, bswap)
				b = rapidRead64(p[length-8:], bswap)
			} else {
				a = rapidRead32(p, bswap)
				b = rapidRead32(p[length-4:], bswap)
			}
		case length > 0:
			a = uint64(p[0])<<45 | uint64(p[length-1])
			b = uint64(p[length>>1])
		default:
			a, b = 0, 0
		}
	default:
		if i > 80 {
			see1, see2, see3, see4 := seed, seed, seed, seed
			for i > 80 {
				seed = rapidMix(rapidRead64(p, bswap)^rapidSecret[0], rapidRead64(p[8:], bswap)^seed, protected)
				see1 = rapidMix(rapidRead64(p[16:], bswap)^rapidSecret[1], rapidRead64(p[24:], bswap)^see1, protected)
				see2 = rapidMix(rapidRead64(p[32:], bswap)^rapidSecret[2], rapidRead64(p[40:], bswap)^see2, protected)
				see3 = rapidMix(rapidRead64(p[48:], bswap)^rapidSecret[3], rapidRead64(p[56:], bswap)^see3, protected)
				see4 = rapidMix(rapidRead64(p[64:], bswap)^rapidSecret[4], rapidRead64(p[72:], bswap)^see4, protected)
				p = p[80:]
				i -= 80
			}
			seed ^= see1
			see2 ^= see3
			seed ^= see4
			seed ^= see2
		}
		if i > 16 {
			seed = rapidMix(rapidRead64(p, bswap)^rapidSecret[2], rapidRead64(p[8:], bswap)^seed, protected)
			if i > 32 {
				seed = rapidMix(rapidRead64(p[16:], bswap)^rapidSecret[2], rapidRead64(p[24:], bswap)^seed, protected)
				if i > 48 {
					seed = rapidMix(rapidRead64(p[32:], bswap)^rapidSecret[1], rapidRead64(p[40:], bswap)^seed, protected)
					if i > 64 {
						seed = rapidMix(rapidRead64(p[48:], bswap)^rapidSecret[1], rapidRead64(p[56:], bswap)^seed, protected)
					}
				}
			}
		}
		a = rapidRead64(p[i-16:], bswap) ^ uint64(i)
		b = rapidRead64(p[i-8:], bswap)
	}
	a ^= rapidSecret[1]
	b ^= seed
	rapidMum(&a, &b, protected)
	return rapidMix(a^rapidSecret[7], b^rapidSecret[1]^uint64(i), protected)
}

// rapidhashNanoCore ports rapidhashNano<bswap, isProtected> (secrets[3]
// through secrets[6] unused).
func rapidhashNanoCore(bswap, protected bool, key []byte, seed uint64) uint64 {
	p := key
	length := len(key)
	i := length
	var a, b uint64

	seed ^= rapidMix(seed^rapidSecret[2], rapidSecret[1], protected)

	switch {
	case length <= 16:
		switch {
		case length >= 4:
			seed ^= uint64(length)
			if length >= 8 {
				a = rapidRead64(p, bswap)
				b = rapidRead64(p[length-8:], bswap)
			} else {
				a = rapidRead32(p, bswap)
				b = rapidRead32(p[length-4:], bswap)
			}
		case length > 0:
			a = uint64(p[0])<<45 | uint64(p[length-1])
			b = uint64(p[length>>1])
		default:
			a, b = 0, 0
		}
	default:
		if i > 48 {
			see1, see2 := seed, seed
			for i > 48 {
				seed = rapidMix(rapidRead64(p, bswap)^rapidSecret[0], rapidRead64(p[8:], bswap)^seed, protected)
				see1 = rapidMix(rapidRead64(p[16:], bswap)^rapidSecret[1], rapidRead64(p[24:], bswap)^see1, protected)
				see2 = rapidMix(rapidRead64(p[32:], bswap)^rapidSecret[2], rapidRead64(p[40:], bswap)^see2, protected)
				p = p[48:]
				i -= 48
			}
			seed ^= see1
			seed ^= see2
		}
		if i > 16 {
			seed = rapidMix(rapidRead64(p, bswap)^rapidSecret[2], rapidRead64(p[8:], bswap)^seed, protected)
			if i > 32 {
				seed = rapidMix(rapidRead64(p[16:], bswap)^rapidSecret[2], rapidRead64(p[24:], bswap)^seed, protected)
			}
		}
		a = rapidRead64(p[i-16:], bswap) ^ uint64(i)
		b = rapidRead64(p[i-8:], bswap)
	}
	a ^= rapidSecret[1]
	b ^= seed
	rapidMum(&a, &b, protected)
	return rapidMix(a^rapidSecret[7], b^rapidSecret[1]^uint64(i), protected)
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "rapidhash",
		Family:         "rapidhash",
		Desc:           "rapidhash v3, 64-bit",
		OutputBits:     64,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x1FDC65EE,
		VerificationBE: 0xB2DB16B5,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashCore(false, false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashCore(true, false, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "rapidhash-protected",
		Family:         "rapidhash",
		Desc:           "rapidhash v3, 64-bit protected version",
		OutputBits:     64,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x72C9270A,
		VerificationBE: 0x9A145308,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashCore(false, true, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashCore(true, true, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "rapidhash-micro",
		Family:         "rapidhash",
		Desc:           "rapidhashMicro v3, 64-bit",
		OutputBits:     64,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x6F183D61,
		VerificationBE: 0xFAAE4D8F,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashMicroCore(false, false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashMicroCore(true, false, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "rapidhash-micro-protected",
		Family:         "rapidhash",
		Desc:           "rapidhashMicro v3, 64-bit protected version",
		OutputBits:     64,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0xC7F9987C,
		VerificationBE: 0xDC04682C,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashMicroCore(false, true, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashMicroCore(true, true, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "rapidhash-nano",
		Family:         "rapidhash",
		Desc:           "rapidhashNano v3, 64-bit",
		OutputBits:     64,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x2C200DC7,
		VerificationBE: 0xC082DAAD,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashNanoCore(false, false, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashNanoCore(true, false, in[:length], uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "rapidhash-nano-protected",
		Family:         "rapidhash",
		Desc:           "rapidhashNano v3, 64-bit protected version",
		OutputBits:     64,
		ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x7A2FA761,
		VerificationBE: 0xCC879229,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashNanoCore(false, true, in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(rapidhashNanoCore(true, true, in[:length], uint64(seed)), out, 0, true)
		},
	})
}
