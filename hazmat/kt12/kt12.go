// Package kt12 implements KangarooTwelve: a tree hash that feeds 8 KiB
// leaves into a TurboSHAKE128 root, parallelizable by construction even
// though this implementation processes leaves sequentially.
package kt12

import (
	"github.com/thornbury/duplex/hazmat/encode"
	"github.com/thornbury/duplex/hazmat/sha3x"
	"github.com/thornbury/duplex/hazmat/treehash"
)

const (
	// BlockSize is the KangarooTwelve chunk size in bytes.
	BlockSize = 8192

	cvSize = 32 // chaining value size

	leafDS   = 0x0B // from_bits(1,1,0)
	smallDS  = 0x07 // from_bits(1,1), single-node finalization
	treeDS   = 0x06 // from_bits(0,1), tree finalization
	chainDS  = 0x03 // from_bits(1), the inner-tree separator's first byte
)

// kt12Marker is the 8-byte separator absorbed into root on the transition
// into tree mode.
var kt12Marker = [8]byte{chainDS, 0, 0, 0, 0, 0, 0, 0}

// Hasher is an incremental KangarooTwelve instance.
type Hasher struct {
	suffix    []byte // customization || right_encode(len(customization))
	buf       []byte // buffered message/leaf data, not yet absorbed into root or a leaf
	root      *sha3x.Hasher
	leaf      *sha3x.Hasher
	leafCount int
	treeMode  bool
	finalized bool
}

// New returns a new Hasher with empty customization.
func New() *Hasher {
	return &Hasher{suffix: encode.RightEncode(0)}
}

// NewCustom returns a new Hasher with the given customization string.
func NewCustom(c []byte) *Hasher {
	suffix := make([]byte, 0, len(c)+9)
	suffix = append(suffix, c...)
	suffix = append(suffix, encode.RightEncode(uint64(len(c)))...)
	return &Hasher{suffix: suffix}
}

// Write absorbs message bytes. It must not be called after Read or Squeeze.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		panic("kt12: write after finalize")
	}

	n := len(p)

	if !h.treeMode {
		need := BlockSize + 1 - len(h.buf)
		if need > len(p) {
			h.buf = append(h.buf, p...)
			return n, nil
		}

		h.buf = append(h.buf, p[:need]...)
		p = p[need:]
		h.enterTreeMode(h.buf[:BlockSize])
		h.buf[0] = h.buf[BlockSize]
		h.buf = h.buf[:1]
	}

	h.buf = append(h.buf, p...)
	h.flushFullLeaves(true)

	return n, nil
}

func (h *Hasher) enterTreeMode(s0 []byte) {
	h.root = sha3x.NewTurboShake128(treeDS)
	_, _ = h.root.Write(s0)
	_, _ = h.root.Write(kt12Marker[:])
	h.treeMode = true
	h.leaf = sha3x.NewTurboShake128(leafDS)
}

func (h *Hasher) flushLeaf(chunk []byte) {
	h.leaf.Reset()
	_, _ = h.leaf.Write(chunk)
	cv := h.leaf.Squeeze(cvSize)
	_, _ = h.root.Write(cv)
	h.leafCount++
}

// flushFullLeaves absorbs every complete BlockSize leaf currently buffered
// into root, computing their chaining values via treehash.ChainingValues so
// that a large buffered write is grouped the way a SIMD-batched permutation
// backend would group it. If keepTail is true and the buffer holds an exact
// multiple of BlockSize, the last full leaf is left buffered rather than
// flushed, since a subsequent Write may still extend it.
func (h *Hasher) flushFullLeaves(keepTail bool) {
	n := len(h.buf) / BlockSize
	if keepTail && n > 0 && len(h.buf)%BlockSize == 0 {
		n--
	}
	if n == 0 {
		return
	}

	cvs := make([]byte, n*cvSize)
	treehash.ChainingValues(h.leaf, h.buf[:n*BlockSize], BlockSize, cvSize, cvs)
	_, _ = h.root.Write(cvs)
	h.leafCount += n

	h.buf = h.buf[:copy(h.buf, h.buf[n*BlockSize:])]
}

// Read squeezes output from the XOF, finalizing absorption on the first
// call.
func (h *Hasher) Read(p []byte) (int, error) {
	h.finalize()
	return h.root.Read(p)
}

// Squeeze returns n freshly squeezed bytes.
func (h *Hasher) Squeeze(n int) []byte {
	out := make([]byte, n)
	_, _ = h.Read(out)
	return out
}

// finalize appends the precomputed suffix (customization, if any, followed
// by its right-encoded length) to the buffered tail and closes out root.
func (h *Hasher) finalize() {
	if h.finalized {
		return
	}
	h.finalized = true

	h.buf = append(h.buf, h.suffix...)

	if !h.treeMode {
		if len(h.buf) <= BlockSize {
			h.root = sha3x.NewTurboShake128(smallDS)
			_, _ = h.root.Write(h.buf)
			return
		}
		h.enterTreeMode(h.buf[:BlockSize])
		h.buf = h.buf[:copy(h.buf, h.buf[BlockSize:])]
	}

	h.flushFullLeaves(false)
	h.flushLeaf(h.buf)

	_, _ = h.root.Write(encode.RightEncode(uint64(h.leafCount)))
	_, _ = h.root.Write([]byte{0xFF, 0xFF})
}
