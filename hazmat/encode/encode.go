// Package encode implements the NIST SP 800-185 style right-encoding used to
// frame lengths at the tail of an absorbed message.
package encode

// RightEncode returns the big-endian minimal byte representation of n
// followed by a final byte giving the length of that representation. Zero
// encodes as a single zero byte.
func RightEncode(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}

	var be [8]byte
	for i := range be {
		be[i] = byte(n >> (8 * uint(7-i)))
	}

	i := 0
	for i < 7 && be[i] == 0 {
		i++
	}

	out := make([]byte, 0, 9)
	out = append(out, be[i:]...)
	out = append(out, byte(len(be)-i))
	return out
}
