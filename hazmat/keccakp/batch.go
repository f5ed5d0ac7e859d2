package keccakp

import "github.com/klauspost/cpuid/v2"

// Lanes reports how many Keccak-p[1600] permutations a batched caller
// (hazmat/treehash's leaf processing) should group together on this host.
// It is derived once from detected CPU features at init time; callers that
// don't batch can ignore it entirely; it never changes the result of a
// permutation, only how callers choose to buffer around it.
var Lanes = detectLanes()

func detectLanes() int {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512VL):
		return 4
	case cpuid.CPU.Has(cpuid.AVX2):
		return 4
	case cpuid.CPU.Has(cpuid.SSE2):
		return 2
	default:
		return 1
	}
}
