package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomad-essentials/storefront/models"
)

func product(id string, price int) models.Product {
	return models.Product{ID: id, Name: "Item " + id, Price: price, Category: "Clothing"}
}

func TestAddLineOneTimePrice(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 120, lines[0].FinalPrice)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.False(t, lines[0].IsSubscription)
	assert.Empty(t, lines[0].SubscriptionFrequency)
}

func TestAddLineSubscriptionDiscount(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{120, 102}, // 102.0
		{185, 157}, // 157.25 rounds down
		{45, 38},   // 38.25 rounds down
		{155, 132}, // 131.75 rounds up
		{85, 72},   // 72.25 rounds down
		{210, 179}, // 178.5 rounds up
	}

	for _, tt := range tests {
		c := New()
		c.AddLine(product("1", tt.price), true, models.Frequency30Days)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, tt.want, lines[0].FinalPrice, "price %d", tt.price)
		assert.Equal(t, models.Frequency30Days, lines[0].SubscriptionFrequency)
	}
}

func TestAddLineMergesIdenticalTriple(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), true, models.Frequency30Days)
	c.AddLine(product("1", 120), true, models.Frequency30Days)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 102, lines[0].FinalPrice)
}

func TestAddLineMergeFreezesPrice(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")

	// The catalog price changed between adds; the existing line keeps the
	// price computed when it was first added.
	c.AddLine(product("1", 999), false, "")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 120, lines[0].FinalPrice)
	assert.Equal(t, 120, lines[0].Price)
}

func TestAddLineDistinctModesStayDistinct(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")
	c.AddLine(product("1", 120), true, models.Frequency30Days)
	c.AddLine(product("1", 120), true, models.Frequency60Days)

	assert.Len(t, c.Lines(), 3)
	assert.Equal(t, 3, c.LineCount())
}

func TestAddLineReportsOpenCart(t *testing.T) {
	c := New()
	assert.True(t, c.AddLine(product("1", 120), false, "").OpenCart)
	assert.True(t, c.AddLine(product("1", 120), false, "").OpenCart)
}

func TestSubtotal(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")
	c.AddLine(product("1", 120), false, "")
	c.AddLine(product("2", 185), true, models.Frequency90Days)

	assert.Equal(t, 120*2+157, c.Subtotal())

	c.RemoveLine("2", true, models.Frequency90Days)
	assert.Equal(t, 240, c.Subtotal())

	c.RemoveLine("1", false, "")
	assert.Equal(t, 0, c.Subtotal())
	assert.Equal(t, 0, c.LineCount())
}

func TestRemoveLineMatchesFullTriple(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")
	c.AddLine(product("1", 120), true, models.Frequency30Days)

	c.RemoveLine("1", true, models.Frequency30Days)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.False(t, lines[0].IsSubscription)
}

func TestRemoveLineAbsentIsNoop(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")

	c.RemoveLine("nope", false, "")
	c.RemoveLine("1", true, models.Frequency30Days)

	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 120, c.Subtotal())
}

func TestLineCountSumsQuantities(t *testing.T) {
	c := New()
	c.AddLine(product("1", 120), false, "")
	c.AddLine(product("1", 120), false, "")
	c.AddLine(product("2", 185), false, "")

	assert.Equal(t, 3, c.LineCount())
	assert.Len(t, c.Lines(), 2)
}
