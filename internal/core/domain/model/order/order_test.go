package order_test

import (
	"testing"
	"time"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func pendingItem(t *testing.T, menuItemID string, qty int) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(menuItemID, qty, nil)
	require.NoError(t, err)
	return li
}

func sentItem(t *testing.T, menuItemID string, qty int) order.LineItem {
	t.Helper()
	li, err := order.RestoreLineItem(menuItemID, qty, true, nil)
	require.NoError(t, err)
	return li
}

func newOrder(t *testing.T, items ...order.LineItem) *order.TableOrder {
	t.Helper()
	o, err := order.NewTableOrder(mustID(t, "1700000000000"), "Table 1", items, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewTableOrder(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("adopts first batch verbatim", func(t *testing.T) {
		items := []order.LineItem{pendingItem(t, "espresso", 2), pendingItem(t, "espresso", 1)}

		o, err := order.NewTableOrder(mustID(t, "1"), "Table 1", items, start)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "Table 1", o.TableName())
		assert.Equal(t, start, o.StartTime())
		// No coalescing on creation: two espresso lines stay two lines.
		require.Len(t, o.Items(), 2)
	})

	t.Run("accepts empty first batch", func(t *testing.T) {
		o, err := order.NewTableOrder(mustID(t, "1"), "Table 1", nil, start)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("fails with invalid table id", func(t *testing.T) {
		var invalidID kernel.ID

		o, err := order.NewTableOrder(invalidID, "Table 1", nil, start)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("fails with empty table name", func(t *testing.T) {
		o, err := order.NewTableOrder(mustID(t, "1"), "", nil, start)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("fails with zero start time", func(t *testing.T) {
		o, err := order.NewTableOrder(mustID(t, "1"), "Table 1", nil, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestTableOrder_MergeItems(t *testing.T) {
	t.Run("coalesces pending duplicate by quantity", func(t *testing.T) {
		o := newOrder(t, pendingItem(t, "espresso", 3))

		require.NoError(t, o.MergeItems([]order.LineItem{pendingItem(t, "espresso", 2)}))

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "espresso", items[0].MenuItemID())
		assert.Equal(t, 5, items[0].Quantity())
		assert.False(t, items[0].SentToKitchen())
	})

	t.Run("sent line stays immutable and repeat becomes new line", func(t *testing.T) {
		o := newOrder(t, sentItem(t, "espresso", 3))

		require.NoError(t, o.MergeItems([]order.LineItem{pendingItem(t, "espresso", 2)}))

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 3, items[0].Quantity())
		assert.True(t, items[0].SentToKitchen())
		assert.Equal(t, 2, items[1].Quantity())
		assert.False(t, items[1].SentToKitchen())
	})

	t.Run("unmatched item is appended", func(t *testing.T) {
		o := newOrder(t, pendingItem(t, "espresso", 1))

		require.NoError(t, o.MergeItems([]order.LineItem{pendingItem(t, "latte", 1)}))

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "latte", items[1].MenuItemID())
	})

	t.Run("first match in original order wins", func(t *testing.T) {
		// A sent espresso line precedes a pending one; the incoming item must
		// stop at the first match and append, not coalesce with the second.
		o := newOrder(t, sentItem(t, "espresso", 2), pendingItem(t, "espresso", 1))

		require.NoError(t, o.MergeItems([]order.LineItem{pendingItem(t, "espresso", 4)}))

		items := o.Items()
		require.Len(t, items, 3)
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, 1, items[1].Quantity())
		assert.Equal(t, 4, items[2].Quantity())
	})

	t.Run("batch is processed sequentially", func(t *testing.T) {
		// Two pending duplicates in one batch against an empty order: the
		// second sees the line appended for the first and coalesces into it.
		o := newOrder(t)

		require.NoError(t, o.MergeItems([]order.LineItem{
			pendingItem(t, "latte", 1),
			pendingItem(t, "latte", 2),
		}))

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity())
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		o := newOrder(t, pendingItem(t, "espresso", 1))

		require.NoError(t, o.MergeItems(nil))

		assert.Len(t, o.Items(), 1)
	})

	t.Run("fails on zero-value order", func(t *testing.T) {
		var o *order.TableOrder

		err := o.MergeItems(nil)

		require.Error(t, err)
		assert.Equal(t, order.ErrTableOrderIsNotConstructed, err)
	})
}

func TestTableOrder_MarkAllSent(t *testing.T) {
	t.Run("marks every line regardless of current flag", func(t *testing.T) {
		o := newOrder(t, pendingItem(t, "espresso", 1), sentItem(t, "latte", 2))

		require.NoError(t, o.MarkAllSent())

		for _, li := range o.Items() {
			assert.True(t, li.SentToKitchen())
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		o := newOrder(t, pendingItem(t, "espresso", 1))

		require.NoError(t, o.MarkAllSent())
		first := o.Items()
		require.NoError(t, o.MarkAllSent())

		assert.Equal(t, first, o.Items())
	})
}

func TestTableOrder_ItemsReturnsCopy(t *testing.T) {
	o := newOrder(t, pendingItem(t, "espresso", 1))

	items := o.Items()
	items[0] = pendingItem(t, "latte", 9)

	assert.Equal(t, "espresso", o.Items()[0].MenuItemID())
}
