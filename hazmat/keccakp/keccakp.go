// Package keccakp implements the Keccak-p[R] permutation family over 25
// lanes of 8, 16, 32, or 64-bit unsigned integers, parameterized by round
// count. Round constants are derived from the standard Keccak LFSR and
// computed once per Permutation value rather than per call.
package keccakp

import "github.com/thornbury/duplex/hazmat/lane"

// rho is the rotation-offset table used by the combined rho/pi step.
var rho = [24]uint{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}

// pi is the lane-permutation table used by the combined rho/pi step.
var pi = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}

// Permutation holds the precomputed round constants for Keccak-p[R] at a
// given lane width.
type Permutation[T lane.Lane] struct {
	rcs  []T
	bits uint
}

// New precomputes a Permutation running the given number of rounds over
// lanes of type T.
func New[T lane.Lane](rounds int) *Permutation[T] {
	return &Permutation[T]{rcs: RoundConstants[T](rounds), bits: uint(lane.BitWidth[T]())}
}

// RoundConstants returns the round constants used by Keccak-p[rounds] at
// lane width T, in application order. Round index i uses the LFSR position
// 7*((12+2ℓ-rounds mod 255)+i mod 255)+j for each bit j of the lane.
func RoundConstants[T lane.Lane](rounds int) []T {
	return roundConstants[T](rounds)
}

// Apply runs the configured number of rounds over a 25-lane state in place.
func (p *Permutation[T]) Apply(a []T) {
	if len(a) != 25 {
		panic("keccakp: state must have 25 lanes")
	}

	for _, rc := range p.rcs {
		theta(a, p.bits)
		rhoPi(a, p.bits)
		chi(a)
		a[0] ^= rc
	}
}

func rotl[T lane.Lane](x T, n, bits uint) T {
	n %= bits
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (bits - n))
}

func theta[T lane.Lane](a []T, bits uint) {
	var c [5]T
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ rotl(c[(x+1)%5], 1, bits)
		for y := 0; y < 25; y += 5 {
			a[x+y] ^= d
		}
	}
}

func rhoPi[T lane.Lane](a []T, bits uint) {
	t1 := a[1]
	for i := 0; i < 24; i++ {
		j := pi[i]
		t2 := a[j]
		a[j] = rotl(t1, rho[i], bits)
		t1 = t2
	}
}

func chi[T lane.Lane](a []T) {
	var b [5]T
	for y := 0; y < 25; y += 5 {
		copy(b[:], a[y:y+5])
		for x := 0; x < 5; x++ {
			a[y+x] = b[x] ^ (^b[(x+1)%5] & b[(x+2)%5])
		}
	}
}

// rcBit evaluates the standard Keccak LFSR at position t mod 255.
func rcBit(t int) bool {
	t = emod(t, 255)

	r := byte(1)
	for i := 0; i < t; i++ {
		hi := r >> 7
		r <<= 1
		if hi == 1 {
			r ^= 0x71
		}
	}
	return r&1 == 1
}

func emod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ellFor returns log2(bits) for the four supported lane widths.
func ellFor(bits int) int {
	switch bits {
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	case 64:
		return 6
	default:
		panic("keccakp: unsupported lane width")
	}
}

func roundConstants[T lane.Lane](rounds int) []T {
	ell := ellFor(lane.BitWidth[T]())
	offset := emod(12+2*ell-emod(rounds, 255), 255)

	rcs := make([]T, rounds)
	for i := 0; i < rounds; i++ {
		round := emod(offset+i, 255)
		var rc T
		for j := 0; j <= ell; j++ {
			if rcBit(7*round + j) {
				rc |= T(1) << uint((1<<uint(j))-1)
			}
		}
		rcs[i] = rc
	}
	return rcs
}

// State is a 25-lane Keccak-p state with an attached permutation, satisfying
// the Permutable interface expected by the sponge and Cyclist engines.
type State[T lane.Lane] struct {
	*lane.State[T]
	perm *Permutation[T]
}

// NewState returns a fresh all-zero Keccak-p[rounds] state over lanes of
// type T.
func NewState[T lane.Lane](rounds int) *State[T] {
	return &State[T]{State: lane.New[T](25), perm: New[T](rounds)}
}

// Permute applies the configured permutation in place.
func (s *State[T]) Permute() {
	s.State.Permute(s.perm.Apply)
}

// Clone returns a deep copy sharing the same precomputed round constants.
func (s *State[T]) Clone() *State[T] {
	return &State[T]{State: s.State.Clone(), perm: s.perm}
}
