package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromListUsesItemsAsKeysAndLabels(t *testing.T) {
	c, err := FromList([]string{"Red", "Green", "Blue"})
	require.NoError(t, err)

	assert.Equal(t, ShapeList, c.Shape())
	assert.Equal(t, 3, c.Len())
	for i, opt := range c.Options() {
		assert.Equal(t, opt.Key, opt.Label, "entry %d", i)
	}
	assert.Equal(t, []string{"Red", "Green", "Blue"}, c.Keys())
}

func TestFromPairsKeepsOrder(t *testing.T) {
	c, err := FromPairs([]Option{
		{Key: "z", Label: "Zed"},
		{Key: "a", Label: "Ay"},
	})
	require.NoError(t, err)

	assert.Equal(t, ShapeKeyed, c.Shape())
	assert.Equal(t, "z", c.KeyAt(0))
	assert.Equal(t, Option{Key: "a", Label: "Ay"}, c.At(1))

	label, ok := c.Label("a")
	assert.True(t, ok)
	assert.Equal(t, "Ay", label)

	_, ok = c.Label("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, c.IndexOf("missing"))
	assert.Equal(t, 1, c.IndexOf("a"))
}

func TestEmptyCatalogIsRejected(t *testing.T) {
	_, err := FromList(nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = FromPairs([]Option{})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestDuplicateKeysAreRejected(t *testing.T) {
	_, err := FromList([]string{"a", "b", "a"})
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), `"a"`)

	_, err = FromPairs([]Option{{Key: "x", Label: "1"}, {Key: "x", Label: "2"}})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCatalogIsNotAliasedToInput(t *testing.T) {
	pairs := []Option{{Key: "a", Label: "A"}}
	c := MustFromPairs(pairs...)

	pairs[0].Label = "changed"
	out := c.Options()
	out[0].Key = "mutated"

	assert.Equal(t, Option{Key: "a", Label: "A"}, c.At(0))
}

func TestNilCatalogLen(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
}

func TestMustFromListPanics(t *testing.T) {
	assert.Panics(t, func() { MustFromList() })
}
