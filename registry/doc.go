// Package registry implements the hash-descriptor registry: per-hash
// metadata, the closed hash_flags/impl_flags vocabularies, endian-variant
// selection, the seedfix/seedprep/hashfn plumbing pipeline, and the
// verification-digest schedule that is the acceptance test for every
// family in package hashes.
//
// Hash families do not call each other; they each register one or more
// *Descriptor values into this package's process-wide registry via
// Register, ordinarily from an init() func in their own file. Registration
// must complete (via Go's package-init ordering) before any hash is
// evaluated, matching the "write-once at startup, read-only thereafter"
// resource model.
//
// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package registry
