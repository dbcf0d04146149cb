// endian_be.go -- marks the native byte order for big-endian archs.
// We build this file into all arches that are BE; they are listed in the
// build constraint below, grounded on the teacher's endian_be.go.
//
// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build ppc64 || mips || mips64
// +build ppc64 mips mips64

package platform

// NativeBigEndian is true when the host's native byte order is big-endian.
// IsLE and IsBE are built on this single constant, so porting them to a
// new architecture only ever requires a new build-tagged file.
// GetU16/32/64 and PutU16/32/64 do not consult it (see GetU16).
const NativeBigEndian = true
