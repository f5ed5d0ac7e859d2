// Package secret wraps a value holding key material so that its backing
// bytes are zeroed both on an explicit Clear and, as a backstop, when the
// wrapper is garbage collected. It mirrors the opt-in "zeroize" feature of
// the original Rust sponge/cyclist crates: ordinary use of
// hazmat/cyclist.Keyed does not pay for this, a caller who wants it wraps
// the value in a State.
package secret

import "runtime"

// Zeroable is anything that can overwrite its own sensitive bytes in place.
// hazmat/cyclist.Keyed and hazmat/cyclist.Hash both implement it via Clear.
type Zeroable interface {
	Clear()
}

// State holds a Zeroable value. The caller may call Clear explicitly; as a
// backstop, the cleanup attached by Wrap calls Clear when the State is
// collected. The Go runtime does not promise to run such cleanups (for
// example, at program exit), so only an explicit Clear is certain to run.
type State[S Zeroable] struct {
	v S
}

// Wrap returns a State owning v. v must not be used directly after this
// call; all access must go through the returned State.
func Wrap[S Zeroable](v S) *State[S] {
	s := &State[S]{v: v}
	runtime.AddCleanup(s, func(v S) { v.Clear() }, s.v)
	return s
}

// Use calls fn with the wrapped value.
func (s *State[S]) Use(fn func(S)) {
	fn(s.v)
}

// Clear zeroes the wrapped value's backing bytes immediately. The State
// must not be used afterward; the cleanup attached by Wrap will call Clear
// again when the State is collected, which is safe since Clear is
// idempotent for every Zeroable in this module.
func (s *State[S]) Clear() {
	s.v.Clear()
}
