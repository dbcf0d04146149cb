// Package platform supplies the sized-integer load/store, rotate and
// byte-swap primitives that every hash body in hashzoo is built from.
//
// (c) 2026 go-hashzoo contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package platform
