// Package sponge implements the rate/capacity absorb-then-squeeze
// construction over any permutable state, with multi-rate padding.
package sponge

// Permutable is the capability a sponge needs from its backing state: a
// byte-addressable view and an in-place permutation. hazmat/keccakp.State
// and hazmat/xoodoo.State both satisfy it.
type Permutable interface {
	Bytes() []byte
	Permute()
}

// Sponge is the absorb side of the construction: rate/capacity state
// machine with multi-rate padding, consumed once via IntoSqueezer.
type Sponge[T Permutable] struct {
	state     T
	capacity  int
	fullState bool
	index     int
}

// New returns a Sponge over state with the given capacity, in bytes. If
// fullState is true, the absorb rate is the entire state length rather than
// length-minus-capacity.
func New[T Permutable](state T, capacity int, fullState bool) *Sponge[T] {
	l := len(state.Bytes())
	if capacity <= 0 || capacity >= l {
		panic("sponge: capacity must satisfy 0 < capacity < state length")
	}
	return &Sponge[T]{state: state, capacity: capacity, fullState: fullState}
}

func (s *Sponge[T]) absorbRate() int {
	if s.fullState {
		return len(s.state.Bytes())
	}
	return len(s.state.Bytes()) - s.capacity
}

func (s *Sponge[T]) squeezeRate() int {
	return len(s.state.Bytes()) - s.capacity
}

// AbsorbByte xors a single byte into the state at the current index,
// permuting first if the absorb rate has been reached.
func (s *Sponge[T]) AbsorbByte(b byte) {
	rate := s.absorbRate()
	if s.index == rate {
		s.state.Permute()
		s.index = 0
	}
	s.state.Bytes()[s.index] ^= b
	s.index++
}

// Absorb xors buf into the state, permuting at each rate-sized boundary.
func (s *Sponge[T]) Absorb(buf []byte) {
	rate := s.absorbRate()
	for len(buf) > 0 {
		if s.index == rate {
			s.state.Permute()
			s.index = 0
		}
		n := min(len(buf), rate-s.index)
		data := s.state.Bytes()
		for i := 0; i < n; i++ {
			data[s.index+i] ^= buf[i]
		}
		s.index += n
		buf = buf[n:]
	}
}

// AbsorbZeroes advances the absorb index by n bytes, permuting across block
// boundaries, without modifying any state bytes.
func (s *Sponge[T]) AbsorbZeroes(n int) {
	rate := s.absorbRate()
	for n > 0 {
		if s.index == rate {
			s.state.Permute()
			s.index = 0
		}
		step := min(n, rate-s.index)
		s.index += step
		n -= step
	}
}

func (s *Sponge[T]) padSimple(suf byte) {
	rate := s.absorbRate()
	if s.index == rate {
		s.state.Permute()
		s.index = 0
	}
	s.state.Bytes()[s.index] ^= suf
	s.index = rate
}

func (s *Sponge[T]) padMultiRate(suf byte) {
	s.padSimple(suf)
	rate := s.absorbRate()
	s.state.Bytes()[rate-1] ^= 0x80
	s.index = rate
}

// IntoSqueezer pads with suf using multi-rate padding and returns a
// Squeezer. The Sponge must not be used after this call.
func (s *Sponge[T]) IntoSqueezer(suf byte) *Squeezer[T] {
	s.padMultiRate(suf)
	rate := s.squeezeRate()
	return &Squeezer[T]{state: s.state, rate: rate, index: rate}
}

// CloneWith returns a Sponge with the same capacity, full-state flag, and
// absorb index as s, but backed by state (typically a deep copy of s's
// underlying state obtained independently).
func (s *Sponge[T]) CloneWith(state T) *Sponge[T] {
	return &Sponge[T]{state: state, capacity: s.capacity, fullState: s.fullState, index: s.index}
}

// Squeezer produces XOF output from a finalized Sponge.
type Squeezer[T Permutable] struct {
	state T
	rate  int
	index int
}

// SqueezeInto fills dst, permuting whenever the squeeze rate is exhausted.
func (sq *Squeezer[T]) SqueezeInto(dst []byte) {
	for len(dst) > 0 {
		if sq.index == sq.rate {
			sq.state.Permute()
			sq.index = 0
		}
		n := min(len(dst), sq.rate-sq.index)
		copy(dst[:n], sq.state.Bytes()[sq.index:sq.index+n])
		sq.index += n
		dst = dst[n:]
	}
}

// CloneWith returns a Squeezer with the same rate and progress as sq, but
// backed by state (typically a deep copy of sq's underlying state obtained
// independently).
func (sq *Squeezer[T]) CloneWith(state T) *Squeezer[T] {
	return &Squeezer[T]{state: state, rate: sq.rate, index: sq.index}
}
