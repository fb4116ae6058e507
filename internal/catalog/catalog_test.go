package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllPartsHaveValidPolygons(t *testing.T) {
	parts := All()
	require.NotEmpty(t, parts)
	for _, p := range parts {
		require.NoErrorf(t, p.Polygon.Validate(), "part %s", p.Name)
		require.Greaterf(t, p.Polygon.Area(), 0.0, "part %s", p.Name)
	}
}

func TestByNameFound(t *testing.T) {
	p, ok := ByName("blank-small")
	require.True(t, ok)
	require.Equal(t, "blank-small", p.Name)
}

func TestByNameMissing(t *testing.T) {
	_, ok := ByName("does-not-exist")
	require.False(t, ok)
}
