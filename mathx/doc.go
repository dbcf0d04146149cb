// Package mathx implements the wide-integer arithmetic primitives that
// hash bodies lean on when the target has no native 128-bit integer:
// widening multiplies and fused multiply-adds at 64, 96, 128 and 192 bits.
//
// Every operation here must produce the same result on any platform; Go's
// math/bits already guarantees that for Mul64/Add64, so this package is a
// thin, deliberately literal port of the portable (non-assembly) fallback
// paths in the reference Mathmult.h, rather than a fresh derivation.
//
// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package mathx
