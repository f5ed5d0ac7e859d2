// Package mem provides the byte-slice xor primitives used by the Cyclist
// engine.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i, for i < len(dst).
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}

// XORAndCopy sets dst[i] = a[i] ^ b[i] and b[i] = dst[i] for each i. Used by
// Cyclist's encrypt: the plaintext is xored into the state and the state is
// overwritten with the resulting ciphertext in the same pass.
func XORAndCopy(dst, a, b []byte) {
	for i := range dst {
		d := a[i] ^ b[i]
		dst[i] = d
		b[i] = d
	}
}

// XORAndReplace sets dst[i] = src[i] ^ state[i] and state[i] = src[i] for each
// i, for i < len(dst). Used by Cyclist's decrypt: the plaintext is recovered
// by xoring the ciphertext against the state, then the state is overwritten
// with the ciphertext that produced it.
func XORAndReplace(dst, src, state []byte) {
	for i, c := range src[:len(dst)] {
		dst[i] = c ^ state[i]
		state[i] = c
	}
}
