package llrb

import (
	"fmt"
)

// an empty position is black
func (n *node[K, V]) isRed() bool {
	return n != nil && n.color == Red
}

// both children present and red, a temporary 4-node
func (n *node[K, V]) shouldFlipColors() bool {
	return n.left.isRed() && n.right.isRed()
}

// red right link without a red left sibling
func (n *node[K, V]) shouldRotateLeft() bool {
	return n.right.isRed() && !n.left.isRed()
}

// two red left links in a row
func (n *node[K, V]) shouldRotateRight() bool {
	return n.left.isRed() && n.left.left.isRed()
}

/*
	    h                x
	   / \              / \
	  A   x     →      h   C
	     / \          / \
	    B   C        A   B
*/
func (n *node[K, V]) rotateLeft() *node[K, V] {
	x := n.right
	n.right = x.left
	x.left = n
	x.color = n.color
	n.color = Red
	return x
}

/*
	      h            x
	     / \          / \
	    x   C    →   A   h
	   / \              / \
	  A   B            B   C
*/
func (n *node[K, V]) rotateRight() *node[K, V] {
	x := n.left
	n.left = x.right
	x.right = n
	x.color = n.color
	n.color = Red
	return x
}

func (n *node[K, V]) flipColors() {
	if n.left == nil || n.right == nil {
		panic(fmt.Errorf("%w: key %v", errMissingChild, n.key))
	}
	n.color = !n.color
	n.left.color = !n.left.color
	n.right.color = !n.right.color
}
