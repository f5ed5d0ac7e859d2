// Package treehash factors out the leaf-chaining-value computation shared
// by tree-hash constructions (KangarooTwelve and, potentially, other
// Keccak-p[1600]-based tree hashes): absorb a fixed-size leaf, squeeze a
// chaining value, repeat. It is generic over the leaf absorber so that a
// caller's choice of domain-separation byte and capacity stays with the
// caller, not this package.
package treehash

import "github.com/thornbury/duplex/hazmat/keccakp"

// LeafSqueezer is the capability a tree-hash leaf needs: absorb bytes, then
// squeeze a fixed-length chaining value, then Reset for the next leaf.
type LeafSqueezer interface {
	Write(p []byte) (int, error)
	Squeeze(n int) []byte
	Reset()
}

// BatchSize reports the leaf-group width suggested by the host's detected
// Keccak-p[1600] batching support. It does not change the computed chaining
// values, only how many leaves ChainingValues considers per group.
func BatchSize() int {
	return keccakp.Lanes
}

// ChainingValues computes the chaining value of each consecutive blockSize
// chunk of data, writing them consecutively into dst (which must have
// length (len(data)/blockSize)*cvSize). leaf is reset before each chunk.
// Leaves are grouped by BatchSize to mirror a SIMD-batched permutation
// backend; each leaf within a group is still hashed sequentially.
func ChainingValues(leaf LeafSqueezer, data []byte, blockSize, cvSize int, dst []byte) {
	n := len(data) / blockSize
	batch := max(BatchSize(), 1)

	for idx := 0; idx < n; {
		groupEnd := min(idx+batch, n)
		for ; idx < groupEnd; idx++ {
			leaf.Reset()
			_, _ = leaf.Write(data[idx*blockSize : (idx+1)*blockSize])
			copy(dst[idx*cvSize:(idx+1)*cvSize], leaf.Squeeze(cvSize))
		}
	}
}
