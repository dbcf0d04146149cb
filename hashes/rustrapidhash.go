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

// rust-rapidhash, the hoxxep/rapidhash Rust port, ported from
// original_source/hashes/rust-rapidhash.cpp. Distinct from rapidhash.go's
// C reference port: this variant folds seeding through two different
// "profiles" (RapidHasher::new() vs SeedableState::new()) and offers a
// PORTABLE 32x32 fallback for rapid_mum, both exercised below.
var defaultRustRapidSecrets = [7]uint64{
	0x2d358dccaa6c78a5, 0x8bb84b93962eacc9,
	0x4b33a62ed433d4a3, 0x4d5a2da51de1aa47,
	0xa0761d6478bd642f, 0xe7037ed1a0b428db,
	0x90ed1765281c388c,
}

const rustRapidColdCutoff = 400

// rustRapidMum ports rapid_mum<PROTECTED, PORTABLE>. The portable branch
// approximates the 128-bit product with XOR instead of carry propagation,
// folding the two cross terms together with a rotate -- a deliberately
// "defective" multiply some callers register to measure quality without a
// real wide multiply.
func rustRapidMum(a, b *uint64, protected, portable bool) {
	if portable {
		lx, ly := uint64(uint32(*a)), uint64(uint32(*b))
		hx, hy := uint64(uint32(*a>>32)), uint64(uint32(*b>>32))
		ll := lx * ly
		lh := lx * hy
		hl := hx * ly
		hh := hx * hy
		if protected {
			*a ^= hh ^ ll
			*b ^= platform.Rotr64(hl^lh, 32)
		} else {
			*a = hh ^ ll
			*b = platform.Rotr64(hl ^ lh, 32)
		}
		return
	}
	lo, hi := mathx.Mul64To128(*a, *b)
	if protected {
		*a ^= lo
		*b ^= hi
	} else {
		*a = lo
		*b = hi
	}
}

func rustRapidMix(a, b uint64, protected, portable bool) uint64 {
	rustRapidMum(&a, &b, protected, portable)
	return a ^ b
}

// rustRapidhashSeed ports rapidhash_seed: the RapidHasher::new() profile's
// seed derivation, always PROTECTED=false, PORTABLE=false.
func rustRapidhashSeed(seed uint64) uint64 {
	s := seed
	s ^= rustRapidMix(s^defaultRustRapidSecrets[2], defaultRustRapidSecrets[1], false, false)
	return s
}

// rustRapidhashSeedPrep is the SeedPrep for the un-seeded (RapidHasher)
// profile: it only derives the working seed value, no package state.
func rustRapidhashSeedPrep(seed uint64) registry.Seed {
	return registry.Seed(rustRapidhashSeed(seed))
}

// rustRapidPremixSeed ports premix_seed, always PROTECTED=true, PORTABLE=false.
func rustRapidPremixSeed(seed uint64, i int) uint64 {
	const hiMask = uint64(0xFFFF) << 48
	const midMask = uint64(0xFFFF) << 24
	const loMask = uint64(0xFFFF)

	seed ^= rustRapidMix(seed^defaultRustRapidSecrets[0], defaultRustRapidSecrets[i], true, false)
	if seed&hiMask == 0 {
		seed |= 1 << 63
	}
	if seed&midMask == 0 {
		seed |= 1 << 31
	}
	if seed&loMask == 0 {
		seed |= 1
	}
	return seed
}

// rustRapidSeededState holds the SeedableState profile's 8 derived
// secrets, written by rustRapidCreateSecretsFromSeed and read by the
// hashfn closures of every SEEDED registration in init() -- the package-level
// substitute for the source's thread_local rapid_secrets array, per the
// Seed type's doc comment.
var rustRapidSeededState [8]uint64

// rustRapidCreateSecretsFromSeed ports create_secrets_from_seed, deriving
// the 8-entry secrets array (slot 7 holds the seed itself) into the
// package state and returning HandleReady.
func rustRapidCreateSecretsFromSeed(userSeed uint64) registry.Seed {
	seed := rustRapidhashSeed(userSeed)

	rustRapidSeededState[0] = rustRapidPremixSeed(seed, 0)
	for i := 1; i <= 6; i++ {
		rustRapidSeededState[i] = rustRapidPremixSeed(rustRapidSeededState[i-1], i)
	}
	rustRapidSeededState[7] = seed

	return registry.HandleReady
}

func rustRapidhashFinish(a, b, seed uint64, secrets []uint64, protected, portable, avalanche bool) uint64 {
	a ^= secrets[0]
	b ^= seed
	rustRapidMum(&a, &b, protected, portable)
	if avalanche {
		return rustRapidMix(a^0xaaaaaaaaaaaaaaaa^seed, b^secrets[1], protected, portable)
	}
	return a ^ b
}

// rustRapidhashFinal48 ports rapidhash_final_48; p must have exactly
// length bytes remaining (the source's read-before-&p[0] comment does not
// apply here since the caller always hands us the true tail slice).
func rustRapidhashFinal48(bswap bool, p []byte, length int, seed uint64, secrets []uint64, origlen int, protected, portable, avalanche bool) uint64 {
	if length > 16 {
		seed = rustRapidMix(rapidRead64(p, bswap)^secrets[0], rapidRead64(p[8:], bswap)^seed, protected, portable)
		if length > 32 {
			seed = rustRapidMix(rapidRead64(p[16:], bswap)^secrets[0], rapidRead64(p[24:], bswap)^seed, protected, portable)
		}
	}
	a := rapidRead64(p[length-16:], bswap)
	b := rapidRead64(p[length-8:], bswap)
	seed += uint64(origlen)
	return rustRapidhashFinish(a, b, seed, secrets, protected, portable, avalanche)
}

// rustRapidhashCold ports rapidhash_core_cold, always UNROLLED=true (every
// registration below sets UNROLLED_FLAG=true).
func rustRapidhashCold(bswap bool, p []byte, length int, seed uint64, secrets []uint64, protected, portable, avalanche bool) uint64 {
	see1, see2, see3, see4, see5, see6 := seed, seed, seed, seed, seed, seed
	i := length

	for i >= 224 {
		seed = rustRapidMix(rapidRead64(p, bswap)^secrets[0], rapidRead64(p[8:], bswap)^seed, protected, portable)
		see1 = rustRapidMix(rapidRead64(p[16:], bswap)^secrets[1], rapidRead64(p[24:], bswap)^see1, protected, portable)
		see2 = rustRapidMix(rapidRead64(p[32:], bswap)^secrets[2], rapidRead64(p[40:], bswap)^see2, protected, portable)
		see3 = rustRapidMix(rapidRead64(p[48:], bswap)^secrets[3], rapidRead64(p[56:], bswap)^see3, protected, portable)
		see4 = rustRapidMix(rapidRead64(p[64:], bswap)^secrets[4], rapidRead64(p[72:], bswap)^see4, protected, portable)
		see5 = rustRapidMix(rapidRead64(p[80:], bswap)^secrets[5], rapidRead64(p[88:], bswap)^see5, protected, portable)
		see6 = rustRapidMix(rapidRead64(p[96:], bswap)^secrets[6], rapidRead64(p[104:], bswap)^see6, protected, portable)

		seed = rustRapidMix(rapidRead64(p[112:], bswap)^secrets[0], rapidRead64(p[120:], bswap)^seed, protected, portable)
		see1 = rustRapidMix(rapidRead64(p[128:], bswap)^secrets[1], rapidRead64(p[136:], bswap)^see1, protected, portable)
		see2 = rustRapidMix(rapidRead64(p[144:], bswap)^secrets[2], rapidRead64(p[152:], bswap)^see2, protected, portable)
		see3 = rustRapidMix(rapidRead64(p[160:], bswap)^secrets[3], rapidRead64(p[168:], bswap)^see3, protected, portable)
		see4 = rustRapidMix(rapidRead64(p[176:], bswap)^secrets[4], rapidRead64(p[184:], bswap)^see4, protected, portable)
		see5 = rustRapidMix(rapidRead64(p[192:], bswap)^secrets[5], rapidRead64(p[200:], bswap)^see5, protected, portable)
		see6 = rustRapidMix(rapidRead64(p[208:], bswap)^secrets[6], rapidRead64(p[216:], bswap)^see6, protected, portable)
		p = p[224:]
		i -= 224
	}
	if i >= 112 {
		seed = rustRapidMix(rapidRead64(p, bswap)^secrets[0], rapidRead64(p[8:], bswap)^seed, protected, portable)
		see1 = rustRapidMix(rapidRead64(p[16:], bswap)^secrets[1], rapidRead64(p[24:], bswap)^see1, protected, portable)
		see2 = rustRapidMix(rapidRead64(p[32:], bswap)^secrets[2], rapidRead64(p[40:], bswap)^see2, protected, portable)
		see3 = rustRapidMix(rapidRead64(p[48:], bswap)^secrets[3], rapidRead64(p[56:], bswap)^see3, protected, portable)
		see4 = rustRapidMix(rapidRead64(p[64:], bswap)^secrets[4], rapidRead64(p[72:], bswap)^see4, protected, portable)
		see5 = rustRapidMix(rapidRead64(p[80:], bswap)^secrets[5], rapidRead64(p[88:], bswap)^see5, protected, portable)
		see6 = rustRapidMix(rapidRead64(p[96:], bswap)^secrets[6], rapidRead64(p[104:], bswap)^see6, protected, portable)
		p = p[112:]
		i -= 112
	}

	if i >= 48 {
		seed = rustRapidMix(rapidRead64(p, bswap)^secrets[0], rapidRead64(p[8:], bswap)^seed, protected, portable)
		see1 = rustRapidMix(rapidRead64(p[16:], bswap)^secrets[1], rapidRead64(p[24:], bswap)^see1, protected, portable)
		see2 = rustRapidMix(rapidRead64(p[32:], bswap)^secrets[2], rapidRead64(p[40:], bswap)^see2, protected, portable)
		p = p[48:]
		i -= 48

		if i >= 48 {
			seed = rustRapidMix(rapidRead64(p, bswap)^secrets[0], rapidRead64(p[8:], bswap)^seed, protected, portable)
			see1 = rustRapidMix(rapidRead64(p[16:], bswap)^secrets[1], rapidRead64(p[24:], bswap)^see1, protected, portable)
			see2 = rustRapidMix(rapidRead64(p[32:], bswap)^secrets[2], rapidRead64(p[40:], bswap)^see2, protected, portable)
			p = p[48:]
			i -= 48
		}
	}

	see3 ^= see4
	see5 ^= see6
	seed ^= see1
	see3 ^= see2
	seed ^= see5
	seed ^= see3

	return rustRapidhashFinal48(bswap, p, i, seed, secrets, length, protected, portable, avalanche)
}

// rustRapidhashCore17Plus ports rapidhash_core_17_plus.
func rustRapidhashCore17Plus(bswap bool, p []byte, length int, seed uint64, secrets []uint64, protected, portable, avalanche bool) uint64 {
	if length <= 48 {
		return rustRapidhashFinal48(bswap, p, length, seed, secrets, length, protected, portable, avalanche)
	}
	if length > rustRapidColdCutoff {
		return rustRapidhashCold(bswap, p, length, seed, secrets, protected, portable, avalanche)
	}

	see1, see2 := seed, seed
	remain := length
	q := p
	for {
		seed = rustRapidMix(rapidRead64(q, bswap)^secrets[0], rapidRead64(q[8:], bswap)^seed, protected, portable)
		see1 = rustRapidMix(rapidRead64(q[16:], bswap)^secrets[1], rapidRead64(q[24:], bswap)^see1, protected, portable)
		see2 = rustRapidMix(rapidRead64(q[32:], bswap)^secrets[2], rapidRead64(q[40:], bswap)^see2, protected, portable)
		q = q[48:]
		remain -= 48
		if remain < 48 {
			break
		}
	}
	seed ^= see1 ^ see2

	return rustRapidhashFinal48(bswap, q, remain, seed, secrets, length, protected, portable, avalanche)
}

// rustRapidhashCore ports rapidhash_core.
func rustRapidhashCore(bswap bool, p []byte, length int, seed uint64, secrets []uint64, protected, portable, avalanche bool) uint64 {
	if length <= 16 {
		var a, b uint64
		switch {
		case length >= 8:
			a = rapidRead64(p, bswap)
			b = rapidRead64(p[length-8:], bswap)
		case length >= 4:
			a = rapidRead32(p, bswap)
			b = rapidRead32(p[length-4:], bswap)
		case length > 0:
			a = uint64(p[0])<<45 | uint64(p[length-1])
			b = uint64(p[length>>1])
		default:
			a, b = 0, 0
		}
		seed += uint64(length)
		return rustRapidhashFinish(a, b, seed, secrets, protected, portable, avalanche)
	}
	return rustRapidhashCore17Plus(bswap, p, length, seed, secrets, protected, portable, avalanche)
}

func init() {
	type variant struct {
		name                      string
		portable, avalanche, seed bool
		verLE, verBE              uint32
	}
	variants := []variant{
		{"rust-rapidhash", false, true, false, 0x562EF848, 0x714A6798},
		{"rust-rapidhash-seed", false, true, true, 0x9E0838C9, 0x1C2AC079},
		{"rust-rapidhash-fast", false, false, false, 0xB891F260, 0x7B75C39E},
		{"rust-rapidhash-fast-seed", false, false, true, 0xC3100741, 0x62C5E469},
		{"rust-rapidhash-p", true, true, false, 0x77BCDA91, 0xF30CC344},
		{"rust-rapidhash-p-seed", true, true, true, 0xC31AF1C5, 0x617E996C},
		{"rust-rapidhash-p-fast", true, false, false, 0x2955B659, 0x9D0F120C},
		{"rust-rapidhash-p-fast-seed", true, false, true, 0xDB1D8A21, 0x64BAB88E},
	}

	for _, v := range variants {
		v := v
		desc := registry.Descriptor{
			Name:           v.name,
			Family:         "rust-rapidhash",
			Desc:           "rapidhash rust port, " + v.name,
			OutputBits:     64,
			ImplFlags:      registry.ImplMultiply64x128 | registry.ImplLicenseMIT,
			VerificationLE: v.verLE,
			VerificationBE: v.verBE,
			HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
				secrets := defaultRustRapidSecrets[:]
				seedval := uint64(seed)
				if v.seed {
					secrets = rustRapidSeededState[:]
					seedval = rustRapidSeededState[7]
				}
				h := rustRapidhashCore(false, in[:length], length, seedval, secrets, false, v.portable, v.avalanche)
				if v.avalanche {
					h = rustRapidMix(h, defaultRustRapidSecrets[1], false, v.portable)
				}
				platform.PutU64(h, out, 0, false)
			},
			HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
				secrets := defaultRustRapidSecrets[:]
				seedval := uint64(seed)
				if v.seed {
					secrets = rustRapidSeededState[:]
					seedval = rustRapidSeededState[7]
				}
				h := rustRapidhashCore(true, in[:length], length, seedval, secrets, false, v.portable, v.avalanche)
				if v.avalanche {
					h = rustRapidMix(h, defaultRustRapidSecrets[1], false, v.portable)
				}
				platform.PutU64(h, out, 0, true)
			},
		}
		if v.seed {
			desc.SeedPrep = rustRapidCreateSecretsFromSeed
		} else {
			desc.SeedPrep = rustRapidhashSeedPrep
		}
		if v.name == "rust-rapidhash-fast" {
			desc.BadSeedDesc = "many bad seeds; upstream rust-rapidhash.cpp carries an exhaustive ~430-entry list not reproduced here since it has no effect on this registry's 0..256 verification-schedule seeds"
		}
		registry.Register(&desc)
	}
}
