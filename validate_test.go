package llrb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func blackNode(key int, left, right *node[int, int]) *node[int, int] {
	return &node[int, int]{key: key, color: Black, left: left, right: right}
}

func redNode(key int, left, right *node[int, int]) *node[int, int] {
	return &node[int, int]{key: key, color: Red, left: left, right: right}
}

func TestValidateCorruption(t *testing.T) {
	dataSet := []struct {
		name     string
		root     *node[int, int]
		size     int
		expected error
	}{
		{
			"valid 3-node",
			blackNode(2, redNode(1, nil, nil), nil),
			2,
			nil,
		},
		{
			"red root",
			redNode(2, nil, nil),
			1,
			ErrRootNotBlack,
		},
		{
			"right leaning red",
			blackNode(1, nil, redNode(2, nil, nil)),
			2,
			ErrRightLeaningRed,
		},
		{
			"consecutive red",
			blackNode(3, redNode(2, redNode(1, nil, nil), nil), blackNode(4, nil, nil)),
			4,
			ErrConsecutiveRed,
		},
		{
			"unbalanced blacks",
			blackNode(2, blackNode(1, nil, nil), nil),
			2,
			ErrUnbalancedBlacks,
		},
		{
			"left key too big",
			blackNode(2, redNode(3, nil, nil), nil),
			2,
			ErrOutOfOrder,
		},
		{
			"duplicate key",
			blackNode(2, redNode(2, nil, nil), nil),
			2,
			ErrOutOfOrder,
		},
		{
			"deep order violation",
			blackNode(5, blackNode(2, nil, blackNode(6, nil, nil)), blackNode(8, nil, nil)),
			4,
			ErrOutOfOrder,
		},
		{
			"size mismatch",
			blackNode(2, redNode(1, nil, nil), nil),
			3,
			ErrSizeMismatch,
		},
	}

	for _, d := range dataSet {
		tr := &tree[int, int]{root: d.root, size: d.size, compare: compareOrdered[int]}
		err := tr.Validate()
		if d.expected == nil {
			assert.NoError(t, err, d.name)
			continue
		}
		assert.ErrorIs(t, err, d.expected, d.name)
	}
}
