// Package cyclist implements the Cyclist duplex construction over any
// permutable state, with an unkeyed Hash mode and a keyed mode supporting
// authenticated encryption and ratcheting.
package cyclist

import "github.com/thornbury/duplex/internal/mem"

// Permutable is the capability Cyclist needs from its backing state.
type Permutable interface {
	Bytes() []byte
	Permute()
}

type phase int

const (
	phaseUp phase = iota
	phaseDown
)

// absorbAny splits buf into rate-sized chunks and feeds them through down,
// permuting before the first chunk if the prior operation was not a
// squeeze, and before every subsequent chunk.
func absorbAny[T Permutable](st T, ph *phase, rate int, buf []byte, color byte, down func(buf []byte, color byte)) {
	if *ph != phaseUp {
		st.Permute()
	}

	first := buf
	if len(first) > rate {
		first = buf[:rate]
	}
	down(first, color)
	*ph = phaseDown
	buf = buf[len(first):]

	for len(buf) > 0 {
		st.Permute()
		chunk := buf
		if len(chunk) > rate {
			chunk = buf[:rate]
		}
		down(chunk, 0)
		buf = buf[len(chunk):]
	}
}

// squeezeAny splits dst into rate-sized chunks and fills them through up.
func squeezeAny[T Permutable](st T, ph *phase, rate int, dst []byte, color byte, up func(dst []byte, color byte)) {
	first := dst
	if len(first) > rate {
		first = dst[:rate]
	}
	up(first, color)
	*ph = phaseUp
	dst = dst[len(first):]

	for len(dst) > 0 {
		st.Bytes()[0] ^= 0x01
		chunk := dst
		if len(chunk) > rate {
			chunk = dst[:rate]
		}
		up(chunk, 0x00)
		dst = dst[len(chunk):]
	}
}

// Hash is Cyclist in unkeyed hash mode: a single rate governs both absorb
// and squeeze.
type Hash[T Permutable] struct {
	state T
	rate  int
	phase phase
}

// NewHash returns a Hash-mode Cyclist over state with the given rate, which
// must satisfy 0 < rate <= len(state.Bytes())-2.
func NewHash[T Permutable](state T, rate int) *Hash[T] {
	l := len(state.Bytes())
	if rate <= 0 || rate > l-2 {
		panic("cyclist: hash rate out of range")
	}
	return &Hash[T]{state: state, rate: rate, phase: phaseUp}
}

func (h *Hash[T]) down(buf []byte, color byte) {
	b := h.state.Bytes()
	mem.XORInPlace(b[:len(buf)], buf)
	b[len(buf)] ^= 0x01
	b[len(b)-1] ^= color & 0x01
	h.phase = phaseDown
}

func (h *Hash[T]) up(dst []byte, _ byte) {
	h.state.Permute()
	b := h.state.Bytes()
	for i := range dst {
		dst[i] ^= b[i]
	}
	h.phase = phaseUp
}

// Absorb feeds buf into the duplex.
func (h *Hash[T]) Absorb(buf []byte) {
	absorbAny(h.state, &h.phase, h.rate, buf, 0x03, h.down)
}

// SqueezeInto xors duplex output into dst, so a zeroed dst receives the
// output itself. dst must be non-empty.
func (h *Hash[T]) SqueezeInto(dst []byte) {
	if len(dst) == 0 {
		panic("cyclist: squeeze into empty buffer")
	}
	squeezeAny(h.state, &h.phase, h.rate, dst, 0x00, h.up)
}

// Clone returns a Hash with the same rate and phase as h, backed by state.
// It does not copy h's state; the caller passes in an independent copy.
func (h *Hash[T]) Clone(state T) *Hash[T] {
	return &Hash[T]{state: state, rate: h.rate, phase: h.phase}
}

// Clear zeroizes the duplex state in place. The Hash value must not be used
// afterward.
func (h *Hash[T]) Clear() {
	clear(h.state.Bytes())
}

// Keyed is Cyclist in keyed mode: separate absorb and squeeze rates plus a
// ratchet size, supporting authenticated encryption.
type Keyed[T Permutable] struct {
	state                         T
	rateAbsorb, rateSqueeze, ratchetLen int
	phase                         phase
}

// NewKeyed initializes a Keyed-mode Cyclist from a zeroed state and the
// given key, id, and counter. id and counter may be nil. rateAbsorb,
// rateSqueeze, and ratchetLen must each satisfy 0 < r <= len(state.Bytes())-2,
// and len(state.Bytes()) must be at most 256.
func NewKeyed[T Permutable](state T, rateAbsorb, rateSqueeze, ratchetLen int, key, id, counter []byte) *Keyed[T] {
	l := len(state.Bytes())
	if l > 256 {
		panic("cyclist: state too large for keyed mode")
	}
	if rateAbsorb <= 0 || rateAbsorb > l-2 {
		panic("cyclist: absorb rate out of range")
	}
	if rateSqueeze <= 0 || rateSqueeze > l-2 {
		panic("cyclist: squeeze rate out of range")
	}
	if ratchetLen <= 0 || ratchetLen > l-2 {
		panic("cyclist: ratchet length out of range")
	}
	if len(key) >= 256 || len(id) >= 256 {
		panic("cyclist: key or id too long")
	}
	if len(key)+len(id) > rateAbsorb-1 {
		panic("cyclist: key and id too long for absorb rate")
	}

	b := state.Bytes()
	for i, k := range key {
		b[i] ^= k
	}
	for i, v := range id {
		b[len(key)+i] ^= v
	}
	b[len(key)+len(id)] ^= byte(len(id))
	b[len(key)+len(id)+1] ^= 0x01
	b[l-1] ^= 0x02

	k := &Keyed[T]{state: state, rateAbsorb: rateAbsorb, rateSqueeze: rateSqueeze, ratchetLen: ratchetLen, phase: phaseDown}

	if len(counter) > 0 {
		absorbAny(k.state, &k.phase, 1, counter, 0x00, k.down)
	}

	return k
}

func (k *Keyed[T]) down(buf []byte, color byte) {
	b := k.state.Bytes()
	mem.XORInPlace(b[:len(buf)], buf)
	b[len(buf)] ^= 0x01
	b[len(b)-1] ^= color
	k.phase = phaseDown
}

func (k *Keyed[T]) up(dst []byte, color byte) {
	b := k.state.Bytes()
	b[len(b)-1] ^= color
	k.state.Permute()
	for i := range dst {
		dst[i] ^= k.state.Bytes()[i]
	}
	k.phase = phaseUp
}

// Absorb feeds associated data or plaintext framing into the duplex.
func (k *Keyed[T]) Absorb(buf []byte) {
	absorbAny(k.state, &k.phase, k.rateAbsorb, buf, 0x03, k.down)
}

// SqueezeInto produces duplex output (e.g. a tag). dst must be non-empty.
func (k *Keyed[T]) SqueezeInto(dst []byte) {
	if len(dst) == 0 {
		panic("cyclist: squeeze into empty buffer")
	}
	squeezeAny(k.state, &k.phase, k.rateSqueeze, dst, 0x40, k.up)
}

// SqueezeKeyInto produces a derived-key squeeze, distinct from SqueezeInto
// by its color byte. dst must be non-empty.
func (k *Keyed[T]) SqueezeKeyInto(dst []byte) {
	if len(dst) == 0 {
		panic("cyclist: squeeze key into empty buffer")
	}
	squeezeAny(k.state, &k.phase, k.rateSqueeze, dst, 0x20, k.up)
}

// crypt implements the shared chunking loop for Encrypt and Decrypt.
func (k *Keyed[T]) crypt(buf []byte, encrypt bool) {
	color := byte(0x80)
	b := k.state.Bytes()

	for {
		n := min(len(buf), k.rateSqueeze)
		chunk := buf[:n]
		buf = buf[n:]

		b[len(b)-1] ^= color
		color = 0x00
		k.state.Permute()

		if encrypt {
			mem.XORAndCopy(chunk, chunk, b[:n])
		} else {
			mem.XORAndReplace(chunk, chunk, b[:n])
		}

		b[n] ^= 0x01

		if len(buf) == 0 {
			break
		}
	}

	k.phase = phaseDown
}

// Encrypt transforms buf from plaintext to ciphertext in place.
func (k *Keyed[T]) Encrypt(buf []byte) { k.crypt(buf, true) }

// Decrypt transforms buf from ciphertext to plaintext in place.
func (k *Keyed[T]) Decrypt(buf []byte) { k.crypt(buf, false) }

// Ratchet destroys forward-secrecy-relevant state by squeezing and
// re-absorbing ratchetLen bytes.
func (k *Keyed[T]) Ratchet() {
	buf := make([]byte, k.ratchetLen)
	squeezeAny(k.state, &k.phase, k.rateSqueeze, buf, 0x10, k.up)
	absorbAny(k.state, &k.phase, k.rateAbsorb, buf, 0x00, k.down)
}

// Clear zeroizes the duplex state in place. The Keyed value must not be used
// afterward.
func (k *Keyed[T]) Clear() {
	clear(k.state.Bytes())
}
