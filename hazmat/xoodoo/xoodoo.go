// Package xoodoo implements the Xoodoo permutation: 12 fixed rounds over a
// 12-lane, 32-bit-wide state arranged as three planes of four columns.
package xoodoo

import "github.com/thornbury/duplex/hazmat/lane"

// rcs are the 12 fixed Xoodoo round constants.
var rcs = [12]uint32{0x58, 0x38, 0x3C0, 0xD0, 0x120, 0x14, 0x60, 0x2C, 0x380, 0xF0, 0x1A0, 0x12}

func rotl(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// apply runs the 12 Xoodoo rounds over s in place. s must have length 12,
// arranged as plane0 = s[0:4], plane4 = s[4:8], plane8 = s[8:12].
func apply(s []uint32) {
	if len(s) != 12 {
		panic("xoodoo: state must have 12 lanes")
	}

	for _, rc := range rcs {
		// theta
		var p [4]uint32
		for j := 0; j < 4; j++ {
			v := s[j] ^ s[4+j] ^ s[8+j]
			p[j] = rotl(v, 5) ^ rotl(v, 14)
		}
		for j := 0; j < 4; j++ {
			d := p[(j+3)%4]
			s[j] ^= d
			s[4+j] ^= d
			s[8+j] ^= d
		}

		// rho-west
		s[8], s[9], s[10], s[11] = rotl(s[8], 11), rotl(s[9], 11), rotl(s[10], 11), rotl(s[11], 11)
		s[4], s[5], s[6], s[7] = s[7], s[4], s[5], s[6]

		// iota
		s[0] ^= rc

		// chi
		for j := 0; j < 4; j++ {
			s[j] ^= ^s[4+j] & s[8+j]
			s[4+j] ^= ^s[8+j] & s[j]
			s[8+j] ^= ^s[j] & s[4+j]
		}

		// rho-east
		s[4], s[5], s[6], s[7] = rotl(s[4], 1), rotl(s[5], 1), rotl(s[6], 1), rotl(s[7], 1)
		old8, old9, old10, old11 := s[8], s[9], s[10], s[11]
		s[8] = rotl(old10, 8)
		s[10] = rotl(old8, 8)
		s[9] = rotl(old11, 8)
		s[11] = rotl(old9, 8)
	}
}

// State is a 12-lane, 32-bit Xoodoo state satisfying the Permutable
// interface expected by the sponge and Cyclist engines.
type State struct {
	*lane.State[uint32]
}

// NewState returns a fresh all-zero Xoodoo state.
func NewState() *State {
	return &State{State: lane.New[uint32](12)}
}

// Permute applies the 12-round Xoodoo permutation in place.
func (s *State) Permute() {
	s.State.Permute(apply)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	return &State{State: s.State.Clone()}
}
