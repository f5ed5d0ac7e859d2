// Package sha3x binds the sponge engine to Keccak-p[1600] to produce
// SHA-3, SHAKE, and TurboSHAKE front-ends, following the full-state-false
// sponge with FULL_STATE=false as specified for all three.
package sha3x

import (
	"github.com/thornbury/duplex/hazmat/keccakp"
	"github.com/thornbury/duplex/hazmat/sponge"
)

// StateLen is the byte length of a Keccak-p[1600] state.
const StateLen = 200

type state = *keccakp.State[uint64]

// Hasher is an absorb/squeeze Keccak-1600 sponge shared by SHA-3, SHAKE, and
// TurboSHAKE. It implements io.Writer (absorb) and io.Reader (squeeze); Read
// finalizes absorption on its first call.
type Hasher struct {
	rounds   int
	capacity int
	ds       byte
	root     state
	sp       *sponge.Sponge[state]
	sq       *sponge.Squeezer[state]
}

func newHasher(rounds, capacity int, ds byte) *Hasher {
	h := &Hasher{rounds: rounds, capacity: capacity, ds: ds}
	h.Reset()
	return h
}

// Reset restores the Hasher to its initial, pre-absorb state.
func (h *Hasher) Reset() {
	h.root = keccakp.NewState[uint64](h.rounds)
	h.sp = sponge.New[state](h.root, h.capacity, false)
	h.sq = nil
}

// Write absorbs message bytes. It must not be called once squeezing has
// started.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.sq != nil {
		panic("sha3x: write after squeeze started")
	}
	h.sp.Absorb(p)
	return len(p), nil
}

// Read squeezes output bytes, finalizing absorption on the first call.
func (h *Hasher) Read(p []byte) (int, error) {
	if h.sq == nil {
		h.sq = h.sp.IntoSqueezer(h.ds)
	}
	h.sq.SqueezeInto(p)
	return len(p), nil
}

// SqueezeInto is Read without the io.Reader error return.
func (h *Hasher) SqueezeInto(dst []byte) { _, _ = h.Read(dst) }

// Squeeze returns n freshly squeezed bytes.
func (h *Hasher) Squeeze(n int) []byte {
	out := make([]byte, n)
	h.SqueezeInto(out)
	return out
}

// Sum appends outLen freshly squeezed bytes to b without mutating the
// receiver.
func (h *Hasher) Sum(b []byte, outLen int) []byte {
	clone := h.Clone()
	return append(b, clone.Squeeze(outLen)...)
}

// BlockSize returns the sponge's absorb rate in bytes.
func (h *Hasher) BlockSize() int { return StateLen - h.capacity }

// Clone returns an independent copy of the Hasher's current state.
func (h *Hasher) Clone() *Hasher {
	clone := &Hasher{rounds: h.rounds, capacity: h.capacity, ds: h.ds, root: h.root.Clone()}
	if h.sq != nil {
		clone.sq = h.sq.CloneWith(clone.root)
	} else {
		clone.sp = h.sp.CloneWith(clone.root)
	}
	return clone
}

// Fixed is a fixed-output-length SHA-3 hash, implementing hash.Hash.
type Fixed struct {
	*Hasher
	outLen int
}

func newFixed(rounds, capacity int, ds byte, outLen int) *Fixed {
	return &Fixed{Hasher: newHasher(rounds, capacity, ds), outLen: outLen}
}

// Sum appends the fixed-length digest to b without mutating the receiver.
func (f *Fixed) Sum(b []byte) []byte { return f.Hasher.Sum(b, f.outLen) }

// Size returns the digest length in bytes.
func (f *Fixed) Size() int { return f.outLen }

// sha3Suffix is suffix.FromBits(0, 1), inlined as a constant since these
// domain bytes never vary.
const sha3Suffix = 0x06

// shakeSuffix is suffix.FromBits(1, 1, 1, 1).
const shakeSuffix = 0x1F

// NewSHA3_224 returns a new SHA3-224 hash.Hash.
func NewSHA3_224() *Fixed { return newFixed(24, 56, sha3Suffix, 28) }

// NewSHA3_256 returns a new SHA3-256 hash.Hash.
func NewSHA3_256() *Fixed { return newFixed(24, 64, sha3Suffix, 32) }

// NewSHA3_384 returns a new SHA3-384 hash.Hash.
func NewSHA3_384() *Fixed { return newFixed(24, 96, sha3Suffix, 48) }

// NewSHA3_512 returns a new SHA3-512 hash.Hash.
func NewSHA3_512() *Fixed { return newFixed(24, 128, sha3Suffix, 64) }

// NewShake128 returns a new SHAKE128 extendable-output function.
func NewShake128() *Hasher { return newHasher(24, 32, shakeSuffix) }

// NewShake256 returns a new SHAKE256 extendable-output function.
func NewShake256() *Hasher { return newHasher(24, 64, shakeSuffix) }

// NewTurboShake128 returns a new TurboSHAKE128 extendable-output function
// using the caller-supplied domain-separation byte ds.
func NewTurboShake128(ds byte) *Hasher { return newHasher(12, 32, ds) }

// NewTurboShake256 returns a new TurboSHAKE256 extendable-output function
// using the caller-supplied domain-separation byte ds.
func NewTurboShake256(ds byte) *Hasher { return newHasher(12, 64, ds) }
