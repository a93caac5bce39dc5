package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Permutation returns a uniformly random permutation of [0, n).
// Every call draws from a fresh random stream backed by the system source.
func Permutation(n int) []int {
	return PermutationFrom(n, random.New())
}

// PermutationFrom is Permutation over a caller supplied stream, which lets
// tests replay a shuffle. Fisher-Yates: at step i the swap index is drawn
// uniformly from [0, i].
func PermutationFrom(n int, stream cipher.Stream) []int {
	if n <= 0 {
		return []int{}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		// random.Int draws from [1, mod), so shift [1, i+2) down to [0, i].
		j := int(random.Int(big.NewInt(int64(i+2)), stream).Int64()) - 1
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Apply reorders items in place so that items[i] becomes the old items[perm[i]].
// perm must be a permutation of [0, len(items)).
func Apply[T any](items []T, perm []int) {
	tmp := make([]T, len(items))
	copy(tmp, items)
	for i := range items {
		items[i] = tmp[perm[i]]
	}
}
