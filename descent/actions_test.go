package descent_test

import (
	"testing"

	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestActions_OrderAndBounds verifies the catalogue size, its first and last
// entries and the (DX, DY) lexicographic order.
func TestActions_OrderAndBounds(t *testing.T) {
	acts := descent.Actions()
	require.Len(t, acts, descent.ActionCount)
	assert.Equal(t, 153, descent.ActionCount)
	assert.Equal(t, descent.Action{DX: 0, DY: -8}, acts[0], "index 0")
	assert.Equal(t, descent.Action{DX: 8, DY: 8}, acts[152], "last index")

	for i := 1; i < len(acts); i++ {
		prev, cur := acts[i-1], acts[i]
		ordered := prev.DX < cur.DX || (prev.DX == cur.DX && prev.DY < cur.DY)
		assert.Truef(t, ordered, "actions %d and %d out of order: %v %v", i-1, i, prev, cur)
	}
}

// TestActions_IndexRoundTrip checks ActionIndex against ActionAt for every
// entry and rejects displacements outside the catalogue.
func TestActions_IndexRoundTrip(t *testing.T) {
	for i := 0; i < descent.ActionCount; i++ {
		idx, ok := descent.ActionIndex(descent.ActionAt(i))
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	for _, a := range []descent.Action{{DX: -1, DY: 0}, {DX: 9, DY: 0}, {DX: 0, DY: 9}, {DX: 3, DY: -9}} {
		_, ok := descent.ActionIndex(a)
		assert.Falsef(t, ok, "%v must not be in the set", a)
	}
}

// TestActions_CopyIsolated ensures callers cannot mutate the shared catalogue.
func TestActions_CopyIsolated(t *testing.T) {
	acts := descent.Actions()
	acts[0] = descent.Action{DX: 42, DY: 42}
	assert.Equal(t, descent.Action{DX: 0, DY: -8}, descent.ActionAt(0))
}
