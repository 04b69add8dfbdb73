// Package logicpad is the public entry point for the LogicPad constraint
// compiler: given a puzzle encoded in the wire schema of spec section 6, it
// compiles the puzzle's rules onto a csp.Solver (package rules) and returns
// either a decided coloring or the underclued solve's irrefutable facts
// (package session).
//
// Solve is the Go-idiomatic stand-in for the original's FFI shim (spec
// section 3's "Recovered/supplemented features"): where the original packed
// a length-prefixed buffer into a WASM host's shared memory, this module
// exposes a plain (context, []byte, bool, ...Option) -> []byte function a host can call
// directly, or drive over stdio via cmd/logicpadsolve.
package logicpad
