package past_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/past"
)

func TestConcatAndOrBuildBinaryNodes(t *testing.T) {
	left := past.NamedTerminator("num")
	right := past.NamedTerminator("id")

	c := past.Concat(left, right)
	assert.Equal(t, model.AtomConcat, c.Kind)
	assert.Same(t, left, c.Left)
	assert.Same(t, right, c.Right)

	o := past.Or(left, right)
	assert.Equal(t, model.AtomOr, o.Kind)
}

func TestIsLeafDistinguishesNullaryKinds(t *testing.T) {
	assert.True(t, past.NamedTerminator("num").IsLeaf())
	assert.False(t, past.Concat(past.NamedTerminator("a"), past.NamedTerminator("b")).IsLeaf())
}

func TestDeepCopyProducesDistinctTree(t *testing.T) {
	leaf := past.NamedTerminator("num")
	tree := past.Concat(leaf, leaf)

	dup := tree.DeepCopy()
	assert.NotSame(t, tree, dup)
	assert.NotSame(t, tree.Left, dup.Left)
	assert.Equal(t, tree.Left.Name, dup.Left.Name)
}

func TestDeepCopyOfNilIsNil(t *testing.T) {
	var n *past.Node
	assert.Nil(t, n.DeepCopy())
}

func TestPostOrderVisitsChildrenBeforeParent(t *testing.T) {
	left := past.NamedTerminator("a")
	right := past.NamedTerminator("b")
	tree := past.Concat(left, right)

	var order []*past.Node
	tree.PostOrder(func(n *past.Node) {
		order = append(order, n)
	})
	require := assert.New(t)
	require.Len(order, 3)
	require.Same(left, order[0])
	require.Same(right, order[1])
	require.Same(tree, order[2])
}
