package cart

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/saffron-menu/internal/models"
)

var (
	butterChicken = models.MenuItem{ID: "m1", Name: "Butter Chicken", Price: 380}
	dalMakhani    = models.MenuItem{ID: "m2", Name: "Dal Makhani", Price: 280, IsVeg: true}
	itemA         = models.MenuItem{ID: "a", Name: "A", Price: 100}
	itemB         = models.MenuItem{ID: "b", Name: "B", Price: 50}
)

func TestCart_Empty(t *testing.T) {
	c := New()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalCount())
	assert.Equal(t, 0, c.TotalPrice())
	assert.Empty(t, c.Entries())
}

func TestCart_TotalPrice(t *testing.T) {
	c := New()

	c.Add(butterChicken)
	assert.Equal(t, 380, c.TotalPrice())

	c.Add(butterChicken)
	assert.Equal(t, 760, c.TotalPrice())
	assert.Equal(t, 1, c.Len())
}

func TestCart_Totals(t *testing.T) {
	c := New()
	c.Add(itemA)
	c.Add(itemB)
	c.Add(itemA)

	assert.Equal(t, 3, c.TotalCount())
	assert.Equal(t, 250, c.TotalPrice())
}

func TestCart_AddTwiceRemoveOnce(t *testing.T) {
	c := New()
	c.Add(butterChicken)
	c.Add(butterChicken)
	c.Remove("m1")

	assert.Equal(t, 1, c.Quantity("m1"))
	assert.Equal(t, 380, c.TotalPrice())
	assert.Equal(t, 1, c.TotalCount())
}

func TestCart_RemoveAbsent(t *testing.T) {
	c := New()
	c.Remove("m1")
	assert.True(t, c.IsEmpty())

	c.Add(dalMakhani)
	before := c.Entries()
	c.Remove("m1")
	assert.Empty(t, cmp.Diff(before, c.Entries()))
}

func TestCart_RemoveLastUnitDeletesEntry(t *testing.T) {
	c := New()
	c.Add(butterChicken)
	c.Remove("m1")

	assert.Equal(t, 0, c.Quantity("m1"))
	assert.True(t, c.IsEmpty())
	for _, e := range c.Entries() {
		assert.NotEqual(t, "m1", e.Item.ID)
	}
}

func TestCart_AddRemoveRoundTrip(t *testing.T) {
	c := New()
	c.Add(itemA)
	c.Add(itemB)
	c.Add(itemB)
	before := c.Entries()

	for _, item := range []models.MenuItem{itemA, itemB, butterChicken} {
		c.Add(item)
		c.Remove(item.ID)
		if diff := cmp.Diff(before, c.Entries()); diff != "" {
			t.Errorf("round trip of %s changed cart (-want +got):\n%s", item.ID, diff)
		}
	}
}

func TestCart_SnapshotKeptOnReAdd(t *testing.T) {
	c := New()
	c.Add(butterChicken)

	repriced := butterChicken
	repriced.Price = 999
	repriced.Name = "Renamed"
	c.Add(repriced)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, butterChicken, entries[0].Item)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, 760, c.TotalPrice())
}

func TestCart_EntriesInFirstAddOrder(t *testing.T) {
	c := New()
	c.Add(dalMakhani)
	c.Add(itemA)
	c.Add(butterChicken)
	c.Add(itemA)
	c.Remove("a")
	c.Remove("a")
	c.Add(itemA)

	want := []Entry{
		{Item: dalMakhani, Quantity: 1},
		{Item: butterChicken, Quantity: 1},
		{Item: itemA, Quantity: 1},
	}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestCart_EntriesIsCopy(t *testing.T) {
	c := New()
	c.Add(itemA)

	entries := c.Entries()
	entries[0].Quantity = 42

	assert.Equal(t, 1, c.Quantity("a"))
}

func TestCart_Reset(t *testing.T) {
	c := New()
	c.Add(itemA)
	c.Add(itemB)
	c.Reset()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalPrice())

	c.Add(itemB)
	assert.Equal(t, []Entry{{Item: itemB, Quantity: 1}}, c.Entries())
}

func TestCart_AddN(t *testing.T) {
	c := New()

	c.AddN(butterChicken, 3)
	c.Add(butterChicken)
	c.AddN(itemB, 0)
	c.AddN(itemB, -2)

	assert.Equal(t, 4, c.Quantity("m1"))
	assert.Equal(t, 1, c.Len(), "non-positive counts add nothing")
	assert.Equal(t, 4*380, c.TotalPrice())

	c.Remove("m1")
	assert.Equal(t, 3, c.Quantity("m1"))
}

func TestEntry_Subtotal(t *testing.T) {
	assert.Equal(t, 1140, Entry{Item: butterChicken, Quantity: 3}.Subtotal())
}

// Random add/remove sequences keep the totals consistent with a plain
// quantity map.
func TestCart_RandomSequences(t *testing.T) {
	items := []models.MenuItem{itemA, itemB, butterChicken, dalMakhani}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		c := New()
		want := make(map[string]int)

		for step := 0; step < 200; step++ {
			item := items[rng.Intn(len(items))]
			if rng.Intn(2) == 0 {
				c.Add(item)
				want[item.ID]++
			} else {
				c.Remove(item.ID)
				if want[item.ID] > 0 {
					want[item.ID]--
				}
			}

			count, price := 0, 0
			for _, it := range items {
				count += want[it.ID]
				price += want[it.ID] * it.Price
				require.Equal(t, want[it.ID], c.Quantity(it.ID))
			}
			require.Equal(t, count, c.TotalCount())
			require.Equal(t, price, c.TotalPrice())
			require.GreaterOrEqual(t, c.TotalCount(), 0)

			for _, e := range c.Entries() {
				require.GreaterOrEqual(t, e.Quantity, 1)
			}
		}
	}
}
