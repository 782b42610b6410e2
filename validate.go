package llrb

import (
	"fmt"
)

// Validate checks the ordering and balance invariants of the whole tree
// and returns the first violation found. An empty tree is valid.
func (t *tree[K, V]) Validate() error {
	if t == nil || t.root == nil {
		return nil
	}
	if t.root.isRed() {
		return ErrRootNotBlack
	}

	count, _, err := t.validateNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d, size %d", ErrSizeMismatch, count, t.size)
	}
	return nil
}

// validateNode returns node count and black height of the subtree at n,
// with every key strictly between lo and hi when they are set.
func (t *tree[K, V]) validateNode(n, lo, hi *node[K, V]) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}

	if lo != nil && t.compare(lo.key, n.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v after %v", ErrOutOfOrder, n.key, lo.key)
	}
	if hi != nil && t.compare(n.key, hi.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v before %v", ErrOutOfOrder, n.key, hi.key)
	}
	if n.right.isRed() {
		return 0, 0, fmt.Errorf("%w: at %v", ErrRightLeaningRed, n.key)
	}
	if n.isRed() && n.left.isRed() {
		return 0, 0, fmt.Errorf("%w: at %v", ErrConsecutiveRed, n.key)
	}

	lcount, lblacks, err := t.validateNode(n.left, lo, n)
	if err != nil {
		return 0, 0, err
	}
	rcount, rblacks, err := t.validateNode(n.right, n, hi)
	if err != nil {
		return 0, 0, err
	}
	if lblacks != rblacks {
		return 0, 0, fmt.Errorf("%w: {%d,%d} at %v", ErrUnbalancedBlacks, lblacks, rblacks, n.key)
	}

	if !n.isRed() {
		lblacks++
	}
	return lcount + rcount + 1, lblacks, nil
}
