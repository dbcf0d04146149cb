// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package platform

import (
	"testing"

	"github.com/opencoff/go-hashzoo/internal/testutil"
)

func TestCondBswap(t *testing.T) {
	assert := testutil.NewAsserter(t)

	assert(CondBswap16(0x1234, false) == 0x1234, "CondBswap16 false must be a no-op")
	assert(CondBswap16(0x1234, true) == 0x3412, "CondBswap16 true = %#x, want 0x3412", CondBswap16(0x1234, true))

	assert(CondBswap32(0x12345678, false) == 0x12345678, "CondBswap32 false must be a no-op")
	assert(CondBswap32(0x12345678, true) == 0x78563412, "CondBswap32 true = %#x, want 0x78563412", CondBswap32(0x12345678, true))

	assert(CondBswap64(0x0123456789ABCDEF, false) == 0x0123456789ABCDEF, "CondBswap64 false must be a no-op")
	want64 := uint64(0xEFCDAB8967452301)
	assert(CondBswap64(0x0123456789ABCDEF, true) == want64, "CondBswap64 true = %#x, want %#x", CondBswap64(0x0123456789ABCDEF, true), want64)
}

func TestRotate(t *testing.T) {
	assert := testutil.NewAsserter(t)

	assert(Rotl32(1, 1) == 2, "Rotl32(1,1) = %d, want 2", Rotl32(1, 1))
	assert(Rotl32(0x80000000, 1) == 1, "Rotl32 must wrap the top bit around")
	assert(Rotr32(1, 1) == 0x80000000, "Rotr32(1,1) must wrap into the top bit")
	assert(Rotl32(0xCAFEBABE, 0) == 0xCAFEBABE, "Rotl32(x,0) must be identity")

	assert(Rotl64(1, 1) == 2, "Rotl64(1,1) = %d, want 2", Rotl64(1, 1))
	assert(Rotl64(1<<63, 1) == 1, "Rotl64 must wrap the top bit around")
	assert(Rotr64(1, 1) == 1<<63, "Rotr64(1,1) must wrap into the top bit")

	for n := uint(0); n < 32; n++ {
		assert(Rotr32(Rotl32(0xDEADBEEF, n), n) == 0xDEADBEEF, "Rotr32(Rotl32(v,%d),%d) must round-trip", n, n)
	}
	for n := uint(0); n < 64; n++ {
		assert(Rotr64(Rotl64(0x0123456789ABCDEF, n), n) == 0x0123456789ABCDEF, "Rotr64(Rotl64(v,%d),%d) must round-trip", n, n)
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	assert := testutil.NewAsserter(t)

	buf := make([]byte, 8)
	for _, bswap := range []bool{false, true} {
		PutU16(0xBEEF, buf, 0, bswap)
		assert(GetU16(buf, 0, bswap) == 0xBEEF, "U16 round-trip failed for bswap=%v", bswap)

		PutU32(0xDEADBEEF, buf, 0, bswap)
		assert(GetU32(buf, 0, bswap) == 0xDEADBEEF, "U32 round-trip failed for bswap=%v", bswap)

		PutU64(0x0123456789ABCDEF, buf, 0, bswap)
		assert(GetU64(buf, 0, bswap) == 0x0123456789ABCDEF, "U64 round-trip failed for bswap=%v", bswap)
	}
}

func TestGetU32ByteOrder(t *testing.T) {
	assert := testutil.NewAsserter(t)

	buf := []byte{0x01, 0x02, 0x03, 0x04}
	assert(GetU32(buf, 0, false) == 0x04030201, "GetU32 non-swapped must read little-endian bytes")
	assert(GetU32(buf, 0, true) == 0x01020304, "GetU32 swapped must read big-endian bytes")
}

func TestIsLEIsBE(t *testing.T) {
	assert := testutil.NewAsserter(t)
	assert(IsLE() != IsBE(), "IsLE and IsBE must disagree")
	assert(IsBE() == NativeBigEndian, "IsBE must mirror NativeBigEndian")
}
