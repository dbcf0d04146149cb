// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package hashzoo documents the go-hashzoo module: a portable Go port of a
// slice of SMHasher3's hash zoo and verification harness.
//
//   - platform provides endian-aware byte I/O and rotate/byteswap helpers.
//   - mathx provides the wide-multiplication primitives (32x32->64,
//     64x64->128, 128x64->192, ...) the ported hashes are built from.
//   - registry holds the hash descriptor type, the closed hash/impl flag
//     vocabularies, endian-variant dispatch, seed plumbing and the §8.1
//     verification schedule.
//   - hashes registers one family per file into registry via init().
//   - cmd/hashzoo is a small CLI over registry: list, verify, hash.
//
// Application code imports registry (and blank-imports hashes to populate
// it), not this package directly.
package hashzoo
