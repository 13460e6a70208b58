package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReleaseTreeResetsAndReturnsNodes(t *testing.T) {
	root, err := parse(t, `{"a":[1,2],"b":{"c":3}}`)
	require.NoError(t, err)

	obj, ok := root.(*ObjectNode)
	require.True(t, ok)
	require.Equal(t, 2, obj.Len())

	ReleaseTree(root)

	require.Nil(t, obj.children)
	require.Nil(t, obj.order)
	require.False(t, obj.built)
}

func TestObjectNodePoolGetAfterRelease(t *testing.T) {
	root, err := parse(t, `{"x":1}`)
	require.NoError(t, err)
	obj := root.(*ObjectNode)
	ReleaseTree(root)

	reused := objectNodePool.Get().(*ObjectNode)
	defer objectNodePool.Put(reused)

	// Not guaranteed to be the same instance (pool semantics), but the
	// pool must hand back a usable zero-ish value either way.
	require.NotNil(t, reused)
	_ = obj
}
