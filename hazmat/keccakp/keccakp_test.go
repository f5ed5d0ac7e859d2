package keccakp

import (
	"encoding/hex"
	"testing"
)

// Known-answer vectors for Keccak-p[1600,24] and Keccak-p[1600,12] applied to
// the all-zero state, matching the published Keccak-p test vectors.
func TestApplyKnownAnswers(t *testing.T) {
	cases := []struct {
		name   string
		rounds int
		want   string
	}{
		{
			"24 rounds",
			24,
			"1786a7b938545e8e1ed059f2506acdd9351fa952c6e7b887c5e0e4cd67e09310455ad9f290ab33b0451adda8722fa7e09c2f6714aa8037c51d075100f547dd3ecc8a170c311da3b3a0aa5792a586b5799bf9b1b33d7c4abc93678ae66340876866250e2e33036c5cda30f0b90212aa9c9f7acf2b789a3b5f2379ae61e0c136e5ec873cb718b6e96dc28a9170f1d1be2ab724edda53bdab6a5ae12e2c6a41c1bfaf5209b936e0cfc6d76070dc17365045e47a9fc2b21156627a64302cdb7136d41ca02c22760dfdcf",
		},
		{
			"12 rounds",
			12,
			"e7dde140798f25f18a47c033f9ccd584eea95aa61e2698d54d49806f304715bd57d05362054e288bd46f8e7f2da497ffc44746a4a0e5fe90762e19d60cda5b8c9c05191bf7a630ad64fc8fd0b75a933035d617233fa95aeb0321710d26e6a6a95f55cfdb167ca58126c84703cd31b8439f56a5111a2ff20161aed9215a63e505f270c98cf2febe641166c47b95703661cb0ed04f555a7cb8c832cf1c8ae83e8c14263aae22790c94e409c5a224f94118c26504e72635f5163ba1307fe944f67549a2ec5c7bfff1ea",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState[uint64](c.rounds)
			s.Permute()

			if got := hex.EncodeToString(s.Bytes()); got != c.want {
				t.Errorf("Keccak-p[1600,%d](0*200) = %s, want %s", c.rounds, got, c.want)
			}
		})
	}
}

func TestApplyPanicsOnWrongLaneCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a 24-lane state")
		}
	}()
	p := New[uint64](24)
	p.Apply(make([]uint64, 24))
}

func TestRoundConstantsLengthMatchesRounds(t *testing.T) {
	for _, rounds := range []int{1, 12, 24} {
		if got := len(RoundConstants[uint64](rounds)); got != rounds {
			t.Errorf("len(RoundConstants[uint64](%d)) = %d, want %d", rounds, got, rounds)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState[uint64](24)
	s.XORInByte(0, 1)

	clone := s.Clone()
	clone.Permute()

	if string(s.Bytes()) == string(clone.Bytes()) {
		t.Fatal("Clone shares state with the original")
	}
}
