package registry

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Fingerprint produces a single stable 64-bit siphash-2-4 checksum over
// the full §8.1 verification-schedule output buffer for d under endian
// e, keyed by key (exactly 16 bytes). Where ComputeVerification only
// looks at the first 4 bytes of the schedule's final round, Fingerprint
// covers the *entire* 256*N-byte results buffer, making it a much
// stronger porting-bug detector for use in `cmd/hashzoo verify
// --checksum`. Grounded on DBReader.verifyChecksum's siphash-based
// per-record checksum in dbreader.go.
func Fingerprint(d *Descriptor, e Endianness, key []byte) uint64 {
	fn := SelectHashFn(d, e)
	n := d.OutputBytes()

	var buf [256]byte
	for i := range buf {
		buf[i] = byte(i)
	}
	padded := make([]byte, 256+16)
	copy(padded, buf[:])

	results := make([]byte, 256*n)
	scratch := make([]byte, n)
	for i := 0; i < 256; i++ {
		seed := EffectiveSeed(d, uint64(256-i))
		fn(padded[:i], i, seed, scratch)
		copy(results[i*n:(i+1)*n], scratch)
	}

	h := siphash.New(key)
	h.Write(results)
	return binary.BigEndian.Uint64(h.Sum(nil))
}
