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

// w1hash, a short-input-optimized wyhash variant, ported from
// original_source/hashes/w1hash.cpp (https://github.com/peterrk/w1hash).
// The source offers an unaligned-native-word-read fast path on amd64/arm64;
// this port always uses the portable byte-composition reads, since Go has
// no equivalent unaligned-pointer-cast trick and the two paths are defined
// to produce identical results.

func w1r1(p []byte) uint64 { return uint64(p[0]) }
func w1r2(p []byte) uint64 { return uint64(platform.GetU16(p, 0, false)) }
func w1r3(p []byte) uint64 { return w1r2(p) | w1r1(p[2:])<<16 }
func w1r4(p []byte) uint64 { return uint64(platform.GetU32(p, 0, false)) }
func w1r5(p []byte) uint64 { return w1r4(p) | w1r1(p[4:])<<32 }
func w1r6(p []byte) uint64 { return w1r4(p) | w1r2(p[4:])<<32 }
func w1r7(p []byte) uint64 { return w1r4(p) | w1r2(p[4:])<<32 | w1r1(p[6:])<<48 }
func w1r8(p []byte) uint64 { return platform.GetU64(p, 0, false) }

func w1mum(a, b uint64) (uint64, uint64) { return mathx.Mul64To128(a, b) }

func w1mix(a, b uint64) uint64 {
	lo, hi := w1mum(a, b)
	return lo ^ hi
}

func w1hashWithSeed(key []byte, seed uint64) uint64 {
	const s0 = 0x2d358dccaa6c78a5
	const s1 = 0x8bb84b93962eacc9
	const s2 = 0x4b33a62ed433d4a3
	const s3 = 0x4d5a2da51de1aa47

	length := len(key)
	seed ^= w1mix(seed^s0, uint64(length)^s1)

	p := key
	l := length
	var ta, tb uint64

tail:
	for {
		switch {
		case l == 0:
			ta, tb = 0, 0
		case l == 1:
			ta, tb = w1r1(p), 0
		case l == 2:
			ta, tb = w1r2(p), 0
		case l == 3:
			ta, tb = w1r3(p), 0
		case l == 4:
			ta, tb = w1r4(p), 0
		case l == 5:
			ta, tb = w1r5(p), 0
		case l == 6:
			ta, tb = w1r6(p), 0
		case l == 7:
			ta, tb = w1r7(p), 0
		case l == 8:
			ta, tb = w1r8(p), 0
		case l == 9:
			ta, tb = w1r8(p), w1r1(p[8:])
		case l == 10:
			ta, tb = w1r8(p), w1r2(p[8:])
		case l == 11:
			ta, tb = w1r8(p), w1r3(p[8:])
		case l == 12:
			ta, tb = w1r8(p), w1r4(p[8:])
		case l == 13:
			ta, tb = w1r8(p), w1r5(p[8:])
		case l == 14:
			ta, tb = w1r8(p), w1r6(p[8:])
		case l == 15:
			ta, tb = w1r8(p), w1r7(p[8:])
		case l == 16:
			ta, tb = w1r8(p), w1r8(p[8:])
		default:
			if l > 64 {
				x, y, z := seed, seed, seed
				for {
					seed = w1mix(w1r8(p)^s0, w1r8(p[8:])^seed)
					x = w1mix(w1r8(p[16:])^s1, w1r8(p[24:])^x)
					y = w1mix(w1r8(p[32:])^s2, w1r8(p[40:])^y)
					z = w1mix(w1r8(p[48:])^s3, w1r8(p[56:])^z)
					p = p[64:]
					l -= 64
					if l <= 64 {
						break
					}
				}
				seed ^= x ^ y ^ z
			}
			if l > 32 {
				x := seed
				seed = w1mix(w1r8(p)^s0, w1r8(p[8:])^seed)
				x = w1mix(w1r8(p[16:])^s1, w1r8(p[24:])^x)
				seed ^= x
				p = p[32:]
				l -= 32
			}
			if l > 16 {
				seed = w1mix(w1r8(p)^s0, w1r8(p[8:])^seed)
				p = p[16:]
				l -= 16
			}
			continue tail
		}
		break
	}

	ta, tb = w1mum(ta^s1, tb^seed)
	return w1mix(ta^(s0^uint64(length)), tb^s1)
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "w1hash",
		Family:         "w1hash",
		Desc:           "w1hash",
		OutputBits:     64,
		ImplFlags:      registry.ImplReadPastEOB | registry.ImplMultiply64x128 | registry.ImplLicenseBSD,
		VerificationLE: 0x648948F1,
		VerificationBE: 0xD69F31A0,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(w1hashWithSeed(in[:length], uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(w1hashWithSeed(in[:length], uint64(seed)), out, 0, true)
		},
	})
}
