package deck

import (
	"crypto/aes"
	"crypto/cipher"
	"slices"
	"testing"
)

func fixedStream(t *testing.T, seed byte) cipher.Stream {
	t.Helper()
	key := make([]byte, 16)
	for i := range key {
		key[i] = seed
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	return cipher.NewCTR(block, make([]byte, aes.BlockSize))
}

func TestPermutationIsBijection(t *testing.T) {
	for _, n := range []int{1, 2, 7, 52} {
		perm := Permutation(n)
		if len(perm) != n {
			t.Fatalf("expected %d entries, got %d", n, len(perm))
		}
		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("permutation of %d is not a bijection: %v", n, perm)
			}
		}
	}
}

func TestPermutationEmpty(t *testing.T) {
	if p := Permutation(0); len(p) != 0 {
		t.Fatalf("expected empty permutation, got %v", p)
	}
	if p := Permutation(-3); len(p) != 0 {
		t.Fatalf("expected empty permutation, got %v", p)
	}
}

func TestPermutationFromReplays(t *testing.T) {
	a := PermutationFrom(52, fixedStream(t, 7))
	b := PermutationFrom(52, fixedStream(t, 7))
	if !slices.Equal(a, b) {
		t.Fatalf("expected identical permutations, got %v and %v", a, b)
	}
}

func TestPermutationFromMovesFirst(t *testing.T) {
	moved := false
	for seed := range 32 {
		if PermutationFrom(52, fixedStream(t, byte(seed)))[0] != 0 {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("element 0 never left position 0")
	}
}

func TestPermutationCoversPositions(t *testing.T) {
	// every element should land in every slot given enough draws
	const n = 4
	seen := [n][n]bool{}
	for range 2000 {
		perm := Permutation(n)
		for i, v := range perm {
			seen[v][i] = true
		}
	}
	for v := range n {
		for i := range n {
			if !seen[v][i] {
				t.Fatalf("element %d never reached position %d", v, i)
			}
		}
	}
}

func TestApply(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	Apply(items, []int{3, 2, 1, 0})
	if !slices.Equal(items, []string{"d", "c", "b", "a"}) {
		t.Fatalf("expected reversed items, got %v", items)
	}
}
