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

// Dietzfelbinger multiply-shift and pair-multiply-shift, ported from
// original_source/hashes/multiply_shift.cpp. Thorup, "High Speed Hashing
// for Integers and Strings", 2018 (https://arxiv.org/pdf/1504.06804.pdf).

const multiplyShiftRandomWords = 1 << 8

var multiplyShiftRandom [multiplyShiftRandomWords * 2]uint64

// msMix is the source's arbitrarily-chosen Xorshift RNG used to populate
// the multiplier table; the family is explicitly labeled system-dependent
// because of it.
func msMix(w, x, y, z *uint32) {
	t := *x ^ (*x << 11)
	*x = *y
	*y = *z
	*z = *w
	*w = *w ^ (*w >> 19) ^ t ^ (t >> 8)
}

func multiplyShiftSeedInitSlow(seed uint64) {
	var w, x, y, z uint32
	x = 0x498b3bc5 ^ uint32(seed)
	y = 0x5a05089a ^ uint32(seed>>32)
	w, z = 0, 0
	for i := 0; i < 10; i++ {
		msMix(&w, &x, &y, &z)
	}
	for i := 0; i < multiplyShiftRandomWords; i++ {
		msMix(&w, &x, &y, &z)
		multiplyShiftRandom[2*i+1] = uint64(x)<<32 | uint64(y)
		msMix(&w, &x, &y, &z)
		multiplyShiftRandom[2*i+0] = uint64(x)<<32 | uint64(y)
		if multiplyShiftRandom[2*i+0] == 0 {
			multiplyShiftRandom[2*i+0]++
		}
	}
}

var multiplyShiftInitDone bool

// multiplyShiftInit is the package's InitFn: the source always seeds the
// table with 0 (its seedfn is commented out upstream), so this only needs
// to run once regardless of which of the 4 registered hashes triggers it.
func multiplyShiftInit() bool {
	if !multiplyShiftInitDone {
		multiplyShiftSeedInitSlow(0)
		multiplyShiftInitDone = true
	}
	return true
}

func msLastBytes(bswap bool, buf []byte, remaining int) uint64 {
	var last uint64
	if remaining&4 != 0 {
		last = uint64(platform.GetU32(buf, 0, bswap))
		buf = buf[4:]
	}
	if remaining&2 != 0 {
		last = last<<16 | uint64(platform.GetU16(buf, 0, bswap))
		buf = buf[2:]
	}
	if remaining&1 != 0 {
		last = last<<8 | uint64(buf[0])
	}
	return last
}

func multiplyShift32(bswap bool, in []byte, lenBytes uint64, seed uint64) uint32 {
	buf := in
	length := lenBytes / 4

	h := uint64(uint32(seed))*multiplyShiftRandom[multiplyShiftRandomWords-1] +
		uint64(uint32(seed>>32))*multiplyShiftRandom[multiplyShiftRandomWords-2] +
		uint64(uint32(lenBytes))*multiplyShiftRandom[multiplyShiftRandomWords-3] +
		uint64(uint32(lenBytes>>32))*multiplyShiftRandom[multiplyShiftRandomWords-4]

	var i uint64
	for ; i < length; i++ {
		t := uint64(platform.GetU32(buf, 0, bswap)) * multiplyShiftRandom[i%multiplyShiftRandomWords]
		h += t
		buf = buf[4:]
	}

	remaining := int(lenBytes & 3)
	if remaining != 0 {
		last := msLastBytes2(bswap, buf, remaining)
		h += last * multiplyShiftRandom[length%multiplyShiftRandomWords]
	}

	return uint32(h >> 32)
}

// msLastBytes2 mirrors the 16/8-bit tail reader used by the 32-bit block
// variants (remaining is always < 4 here, so only bits 1 and 0 matter).
func msLastBytes2(bswap bool, buf []byte, remaining int) uint64 {
	var last uint64
	if remaining&2 != 0 {
		last = uint64(platform.GetU16(buf, 0, bswap))
		buf = buf[2:]
	}
	if remaining&1 != 0 {
		last = last<<8 | uint64(buf[0])
	}
	return last
}

func pairMultiplyShift32(bswap bool, in []byte, lenBytes uint64, seed uint64) uint32 {
	buf := in
	length := lenBytes / 4

	h := uint64(uint32(seed))*multiplyShiftRandom[multiplyShiftRandomWords-1] +
		uint64(uint32(seed>>32))*multiplyShiftRandom[multiplyShiftRandomWords-2] +
		uint64(uint32(lenBytes))*multiplyShiftRandom[multiplyShiftRandomWords-3] +
		uint64(uint32(lenBytes>>32))*multiplyShiftRandom[multiplyShiftRandomWords-4]

	var i uint64
	for ; i < length/2; i++ {
		t := platform.GetU64(buf, 0, bswap)
		a := uint64(uint32(t)) + multiplyShiftRandom[(2*i)%multiplyShiftRandomWords+1]
		b := uint64(uint32(t>>32)) + multiplyShiftRandom[(2*i)%multiplyShiftRandomWords+0]
		h += a * b
		buf = buf[8:]
	}

	if length&1 != 0 {
		t := uint64(platform.GetU32(buf, 0, bswap)) * multiplyShiftRandom[(length-1)%multiplyShiftRandomWords]
		h += t
		buf = buf[4:]
	}

	remaining := int(lenBytes & 3)
	if remaining != 0 {
		last := msLastBytes2(bswap, buf, remaining)
		h += last * multiplyShiftRandom[length%multiplyShiftRandomWords]
	}

	return uint32(h >> 32)
}

func multiplyShift64(bswap bool, in []byte, lenBytes uint64, seed uint64) uint64 {
	buf := in
	length := lenBytes / 8

	_, h := mathx.Mul128To128(seed, 0,
		multiplyShiftRandom[multiplyShiftRandomWords-1], multiplyShiftRandom[multiplyShiftRandomWords-2])
	_, t := mathx.Mul128To128(lenBytes, 0,
		multiplyShiftRandom[multiplyShiftRandomWords-3], multiplyShiftRandom[multiplyShiftRandomWords-4])
	h += t

	var i uint64
	for ; i < length; i++ {
		_, t := mathx.Mul128To128(platform.GetU64(buf, 0, bswap), 0,
			multiplyShiftRandom[(i%multiplyShiftRandomWords)*2+0],
			multiplyShiftRandom[(i%multiplyShiftRandomWords)*2+1])
		h += t
		buf = buf[8:]
	}

	remaining := int(lenBytes & 7)
	if remaining != 0 {
		last := msLastBytes(bswap, buf, remaining)
		_, t := mathx.Mul128To128(last, 0,
			multiplyShiftRandom[(length%multiplyShiftRandomWords)*2+0],
			multiplyShiftRandom[(length%multiplyShiftRandomWords)*2+1])
		h += t
	}

	return h
}

func pairMultiplyShift64(bswap bool, in []byte, lenBytes uint64, seed uint64) uint64 {
	buf := in
	length := lenBytes / 8

	_, h := mathx.Mul128To128(seed, 0,
		multiplyShiftRandom[multiplyShiftRandomWords-1], multiplyShiftRandom[multiplyShiftRandomWords-2])
	_, t := mathx.Mul128To128(lenBytes, 0,
		multiplyShiftRandom[multiplyShiftRandomWords-3], multiplyShiftRandom[multiplyShiftRandomWords-4])
	h += t

	var i uint64
	for ; i < length/2; i++ {
		blk1lo := multiplyShiftRandom[((2*i)%multiplyShiftRandomWords)*2+2]
		blk1hi := multiplyShiftRandom[((2*i)%multiplyShiftRandomWords)*2+3]
		blk2lo := multiplyShiftRandom[((2*i)%multiplyShiftRandomWords)*2+0]
		blk2hi := multiplyShiftRandom[((2*i)%multiplyShiftRandomWords)*2+1]
		mathx.Add128(&blk1lo, &blk1hi, platform.GetU64(buf, 0, bswap), 0)
		mathx.Add128(&blk2lo, &blk2hi, platform.GetU64(buf, 8, bswap), 0)
		_, t := mathx.Mul128To128(blk1lo, blk1hi, blk2lo, blk2hi)
		h += t
		buf = buf[16:]
	}

	if length&1 != 0 {
		_, t := mathx.Mul128To128(platform.GetU64(buf, 0, bswap), 0,
			multiplyShiftRandom[((length-1)%multiplyShiftRandomWords)*2+0],
			multiplyShiftRandom[((length-1)%multiplyShiftRandomWords)*2+1])
		h += t
		buf = buf[8:]
	}

	remaining := int(lenBytes & 7)
	if remaining != 0 {
		last := msLastBytes(bswap, buf, remaining)
		_, t := mathx.Mul128To128(last, 0,
			multiplyShiftRandom[(length%multiplyShiftRandomWords)*2+0],
			multiplyShiftRandom[(length%multiplyShiftRandomWords)*2+1])
		h += t
	}

	return h
}

func init() {
	registry.Register(&registry.Descriptor{
		Name:           "multiply-shift-32",
		Family:         "multiply_shift",
		Desc:           "Dietzfelbinger Multiply-shift on strings, 32-bit blocks",
		OutputBits:     32,
		HashFlags:      registry.HashLookupTable | registry.HashSystemSpecific,
		ImplFlags:      registry.ImplMultiply64x64 | registry.ImplLicenseMIT,
		VerificationLE: 0x34BAD85C,
		VerificationBE: 0x133CC3AC,
		Init:           multiplyShiftInit,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(multiplyShift32(false, in[:length], uint64(length), uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(multiplyShift32(true, in[:length], uint64(length), uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "pair-multiply-shift-32",
		Family:         "multiply_shift",
		Desc:           "Dietzfelbinger Pair-multiply-shift strings, 32-bit blocks",
		OutputBits:     32,
		HashFlags:      registry.HashLookupTable | registry.HashSystemSpecific,
		ImplFlags:      registry.ImplMultiply64x64 | registry.ImplLicenseMIT,
		VerificationLE: 0xFC284F0F,
		VerificationBE: 0x6E93B706,
		Init:           multiplyShiftInit,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(pairMultiplyShift32(false, in[:length], uint64(length), uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU32(pairMultiplyShift32(true, in[:length], uint64(length), uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "multiply-shift",
		Family:         "multiply_shift",
		Desc:           "Dietzfelbinger Multiply-shift on strings, 64-bit blocks",
		OutputBits:     64,
		HashFlags:      registry.HashLookupTable | registry.HashSystemSpecific,
		ImplFlags:      registry.ImplMultiply128x128 | registry.ImplLicenseMIT,
		VerificationLE: 0xB7A5E66D,
		VerificationBE: 0x6E3902A6,
		Init:           multiplyShiftInit,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(multiplyShift64(false, in[:length], uint64(length), uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(multiplyShift64(true, in[:length], uint64(length), uint64(seed)), out, 0, true)
		},
	})

	registry.Register(&registry.Descriptor{
		Name:           "pair-multiply-shift",
		Family:         "multiply_shift",
		Desc:           "Dietzfelbinger Pair-multiply-shift strings, 64-bit blocks",
		OutputBits:     64,
		HashFlags:      registry.HashLookupTable | registry.HashSystemSpecific,
		ImplFlags:      registry.ImplMultiply128x128 | registry.ImplLicenseMIT,
		VerificationLE: 0x4FBA804D,
		VerificationBE: 0x2B7F643B,
		Init:           multiplyShiftInit,
		HashFnNative: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(pairMultiplyShift64(false, in[:length], uint64(length), uint64(seed)), out, 0, false)
		},
		HashFnBSwap: func(in []byte, length int, seed registry.Seed, out []byte) {
			platform.PutU64(pairMultiplyShift64(true, in[:length], uint64(length), uint64(seed)), out, 0, true)
		},
	})
}
