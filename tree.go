package llrb

func (t *tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, V]) Insert(key K, value V) {
	t.root = t.recursiveInsert(t.root, key, value)
	t.root.color = Black
}

// recursiveInsert returns the root of the repaired subtree.
func (t *tree[K, V]) recursiveInsert(h *node[K, V], key K, value V) *node[K, V] {
	if h == nil {
		t.size++
		return newNode(key, value)
	}

	if h.shouldFlipColors() {
		h.flipColors()
	}

	switch c := t.compare(key, h.key); {
	case c == 0:
		h.value = value
	case c < 0:
		h.left = t.recursiveInsert(h.left, key, value)
	default:
		h.right = t.recursiveInsert(h.right, key, value)
	}

	// rotate left first, it may leave a left-left red chain for rotate right
	if h.shouldRotateLeft() {
		h = h.rotateLeft()
	}
	if h.shouldRotateRight() {
		h = h.rotateRight()
	}
	if h.shouldFlipColors() {
		h.flipColors()
	}
	return h
}

func (t *tree[K, V]) Search(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}

	for curr := t.root; curr != nil; {
		switch c := t.compare(key, curr.key); {
		case c == 0:
			return curr.value, true
		case c < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	return zero, false
}
