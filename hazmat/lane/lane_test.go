package lane

import (
	"bytes"
	"testing"
)

func TestBitWidth(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"uint8", 8},
		{"uint16", 16},
		{"uint32", 32},
		{"uint64", 64},
	}
	if got := BitWidth[uint8](); got != cases[0].want {
		t.Errorf("BitWidth[uint8]() = %d, want %d", got, cases[0].want)
	}
	if got := BitWidth[uint16](); got != cases[1].want {
		t.Errorf("BitWidth[uint16]() = %d, want %d", got, cases[1].want)
	}
	if got := BitWidth[uint32](); got != cases[2].want {
		t.Errorf("BitWidth[uint32]() = %d, want %d", got, cases[2].want)
	}
	if got := BitWidth[uint64](); got != cases[3].want {
		t.Errorf("BitWidth[uint64]() = %d, want %d", got, cases[3].want)
	}
}

func TestPermuteRoundTripsLittleEndian(t *testing.T) {
	s := New[uint32](4)
	s.SetSlice(0, []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	var seen []uint32
	s.Permute(func(lanes []uint32) {
		seen = append(seen, lanes...)
		// Identity permutation: leave lanes untouched.
	})

	if want := []uint32{0x04030201, 0x08070605, 0, 0}; !eqSlice(seen, want) {
		t.Fatalf("Permute lanes = %#x, want %#x", seen, want)
	}

	// The byte buffer must be unchanged after an identity permutation.
	var back [16]byte
	s.GetSlice(0, back[:])
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(back[:], want) {
		t.Errorf("round-tripped bytes = %x, want %x", back, want)
	}
}

func TestPermuteAppliesLaneMutation(t *testing.T) {
	s := New[uint16](2)
	s.SetSlice(0, []byte{0x01, 0x00, 0x00, 0x00})

	s.Permute(func(lanes []uint16) {
		lanes[1] = lanes[0] + 1
	})

	var back [4]byte
	s.GetSlice(0, back[:])
	if want := []byte{0x01, 0x00, 0x02, 0x00}; !bytes.Equal(back[:], want) {
		t.Errorf("bytes after mutation = %x, want %x", back, want)
	}
}

func TestXORInSliceAndXOROutSlice(t *testing.T) {
	s := New[uint64](1)
	s.XORInSlice(0, []byte{0xff, 0x00, 0xff})

	dst := make([]byte, 3)
	s.XOROutSlice(0, dst)
	if want := []byte{0xff, 0x00, 0xff}; !bytes.Equal(dst, want) {
		t.Errorf("XOROutSlice = %x, want %x", dst, want)
	}

	// XORing twice with the same bytes cancels out.
	s.XORInSlice(0, []byte{0xff, 0x00, 0xff})
	dst2 := make([]byte, 3)
	s.XOROutSlice(0, dst2)
	if want := []byte{0, 0, 0}; !bytes.Equal(dst2, want) {
		t.Errorf("XOROutSlice after cancel = %x, want %x", dst2, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New[uint64](2)
	s.XORInByte(0, 0x42)

	clone := s.Clone()
	clone.XORInByte(0, 0xFF)

	if s.Bytes()[0] == clone.Bytes()[0] {
		t.Fatal("mutating a clone affected the original")
	}
}

func TestResetZeroes(t *testing.T) {
	s := New[uint64](1)
	s.Fill(0, 0xAA, 8)
	s.Reset()
	for i, b := range s.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = %#x after Reset, want 0", i, b)
		}
	}
}

func eqSlice(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
