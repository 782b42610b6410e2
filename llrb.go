package llrb

import (
	"errors"
)

const (
	// Red is the color of a new link. Only left links may stay red.
	Red Color = true
	// Black is the color of the root and of every empty position.
	Black Color = false
)

var (
	ErrRootNotBlack     = errors.New("root is not black")
	ErrRightLeaningRed  = errors.New("right leaning red link")
	ErrConsecutiveRed   = errors.New("consecutive red links")
	ErrUnbalancedBlacks = errors.New("unbalanced black height")
	ErrOutOfOrder       = errors.New("keys out of order")
	ErrSizeMismatch     = errors.New("node count does not match size")

	errMissingChild = errors.New("color flip on a node with a missing child")
)

type (
	// Color of the link from a node's parent to the node.
	Color bool

	tree[K any, V any] struct {
		size    int
		root    *node[K, V]
		compare func(a, b K) int
	}

	node[K any, V any] struct {
		key   K
		value V
		color Color

		left, right *node[K, V]
	}
)

func newNode[K any, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
		color: Red,
	}
}

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}
