// endian_le.go -- marks the native byte order for little-endian archs
// (the default; everything not covered by endian_be.go).
//
// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build !(ppc64 || mips || mips64)
// +build !ppc64,!mips,!mips64

package platform

// NativeBigEndian is true when the host's native byte order is big-endian.
const NativeBigEndian = false
