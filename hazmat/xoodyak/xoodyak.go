// Package xoodyak binds the Cyclist duplex to the Xoodoo permutation, using
// the published Xoodyak rate parameters.
package xoodyak

import (
	"github.com/thornbury/duplex/hazmat/cyclist"
	"github.com/thornbury/duplex/hazmat/xoodoo"
)

const (
	// HashRate is the Cyclist rate used by Xoodyak-Hash.
	HashRate = 16

	// KeyedRateAbsorb is the Cyclist absorb rate used by Xoodyak-Keyed.
	KeyedRateAbsorb = 44

	// KeyedRateSqueeze is the Cyclist squeeze rate used by Xoodyak-Keyed.
	KeyedRateSqueeze = 24

	// KeyedRatchet is the Cyclist ratchet size used by Xoodyak-Keyed.
	KeyedRatchet = 16
)

// Hash is Xoodyak in unkeyed hash mode.
type Hash struct {
	*cyclist.Hash[*xoodoo.State]
}

// NewHash returns a fresh Xoodyak-Hash instance.
func NewHash() *Hash {
	return &Hash{Hash: cyclist.NewHash[*xoodoo.State](xoodoo.NewState(), HashRate)}
}

// Squeeze returns n freshly squeezed bytes.
func (h *Hash) Squeeze(n int) []byte {
	out := make([]byte, n)
	h.SqueezeInto(out)
	return out
}

// Keyed is Xoodyak in keyed mode, supporting authenticated encryption.
type Keyed struct {
	*cyclist.Keyed[*xoodoo.State]
}

// NewKeyed returns a fresh Xoodyak-Keyed instance initialized from key, id,
// and counter. id and counter may be nil.
func NewKeyed(key, id, counter []byte) *Keyed {
	return &Keyed{Keyed: cyclist.NewKeyed[*xoodoo.State](
		xoodoo.NewState(), KeyedRateAbsorb, KeyedRateSqueeze, KeyedRatchet, key, id, counter)}
}

// NewKeyedWithKey returns a fresh Xoodyak-Keyed instance with no id or
// counter.
func NewKeyedWithKey(key []byte) *Keyed { return NewKeyed(key, nil, nil) }

// NewKeyedWithKeyID returns a fresh Xoodyak-Keyed instance with no counter.
func NewKeyedWithKeyID(key, id []byte) *Keyed { return NewKeyed(key, id, nil) }

// Squeeze returns n freshly squeezed bytes.
func (k *Keyed) Squeeze(n int) []byte {
	out := make([]byte, n)
	k.SqueezeInto(out)
	return out
}

// SqueezeKey returns n freshly squeezed key-derivation bytes.
func (k *Keyed) SqueezeKey(n int) []byte {
	out := make([]byte, n)
	k.SqueezeKeyInto(out)
	return out
}
