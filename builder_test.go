package staticindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/staticindex/index"
)

func TestBPTreeBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		tree, err := BPTree().Build()
		require.NoError(t, err)
		require.NoError(t, tree.Build([]uint64{1, 2, 3}))

		pos, found := tree.Search(2)
		require.True(t, found)
		assert.Equal(t, 1, pos)
	})

	t.Run("Order", func(t *testing.T) {
		tree, err := BPTree().Order(2).Build()
		require.NoError(t, err)
		require.NoError(t, tree.Build([]uint64{1, 2, 3, 4}))
		assert.Equal(t, 2, tree.Stats().Order)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := BPTree().Order(0).Build()
		assert.ErrorIs(t, err, index.ErrInvalidOrder)
	})

	t.Run("Immutable", func(t *testing.T) {
		base := BPTree()
		derived := base.Order(2)
		assert.NotEqual(t, base, derived)

		tree, err := base.Build()
		require.NoError(t, err)
		assert.Equal(t, 64, tree.Stats().Order)
	})
}

func TestRMIBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		learned, err := RMI().Build()
		require.NoError(t, err)
		require.NoError(t, learned.Train([]uint64{1, 2, 3}))

		pos, found := learned.Search(2)
		require.True(t, found)
		assert.Equal(t, 1, pos)
	})

	t.Run("LeafCount", func(t *testing.T) {
		learned, err := RMI().LeafCount(8).Build()
		require.NoError(t, err)
		require.NoError(t, learned.Train([]uint64{1, 2, 3}))
		assert.Equal(t, 8, learned.Stats().LeafCount)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := RMI().LeafCount(0).Build()
		assert.ErrorIs(t, err, index.ErrInvalidLeafCount)
	})
}
