package registry

import "encoding/binary"

// ComputeVerification drives d through the schedule of §8.1 for endian
// variant e and returns the resulting 32-bit digest.
//
//  1. buf[0..255] = i mod 256.
//  2. results has 256*N bytes, N = d.OutputBytes().
//  3. for i in 0..255: seed = 256-i; hash(buf[0:i], seed) -> results[i*N:(i+1)*N].
//  4. final = hash(results, 0); digest = first 4 bytes of final, LE u32.
func ComputeVerification(d *Descriptor, e Endianness) uint32 {
	fn := SelectHashFn(d, e)
	n := d.OutputBytes()

	var buf [256]byte
	for i := range buf {
		buf[i] = byte(i)
	}

	results := make([]byte, 256*n)
	scratch := make([]byte, n)
	// 16 bytes of zero-filled padding lets READ_PAST_EOB hashes read up
	// to 7 bytes past the logical end without touching unmapped memory,
	// per §4.8/§8.3.
	padded := make([]byte, 256+16)
	copy(padded, buf[:])

	for i := 0; i < 256; i++ {
		seed := EffectiveSeed(d, uint64(256-i))
		fn(padded[:i], i, seed, scratch)
		copy(results[i*n:(i+1)*n], scratch)
	}

	final := make([]byte, n)
	finalPadded := make([]byte, len(results)+16)
	copy(finalPadded, results)
	fn(finalPadded[:len(results)], len(results), EffectiveSeed(d, 0), final)

	return binary.LittleEndian.Uint32(final[:4])
}

// VerifyAll runs Property V1 / §8.5's cross-hash invariant for d across
// both endian variants, returning a slice of mismatches (empty if the
// descriptor is fully consistent).
func VerifyAll(d *Descriptor) []string {
	var mismatches []string
	for _, e := range []Endianness{EndianLittle, EndianBig} {
		got := ComputeVerification(d, e)
		want := ExpectedVerification(d, e)
		if got != want {
			mismatches = append(mismatches, mismatchMsg(d, e, got, want))
		}
	}
	return mismatches
}
