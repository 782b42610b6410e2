package llrb

import (
	"golang.org/x/exp/constraints"
)

type Tree[K any, V any] interface {
	// Insert stores value under key, replacing the value of an existing key.
	Insert(key K, value V)
	// Search returns the value stored under key and whether it was found.
	Search(key K) (V, bool)
	Size() int
	Validate() error
	Stats() Stats
}

// New returns an empty tree ordered by the natural order of K.
func New[K constraints.Ordered, V any]() Tree[K, V] {
	return &tree[K, V]{compare: compareOrdered[K]}
}

// NewFunc returns an empty tree ordered by compare, which must report
// a negative number when a < b, zero when a == b and a positive number
// when a > b.
func NewFunc[K any, V any](compare func(a, b K) int) Tree[K, V] {
	if compare == nil {
		panic("llrb: nil compare func")
	}
	return &tree[K, V]{compare: compare}
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
