package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureShape(t *testing.T) {
	store := Fixture()

	assert.True(t, store.Synthetic)
	assert.Equal(t, 3, store.DistributionCenters.Len())
	assert.Equal(t, 5, store.Products.Len())
	assert.Equal(t, 1000, store.InventoryItems.Len(), "5 products x 4 sizes x 50 rows")
	assert.Equal(t, 3, store.Orders.Len())
	assert.Equal(t, 5, store.OrderItems.Len())
	assert.Equal(t, 3, store.Users.Len())

	require.NoError(t, store.validate())
}

func TestStoreEmpty(t *testing.T) {
	assert.True(t, (*Store)(nil).Empty())
	assert.True(t, (&Store{}).Empty())
	assert.False(t, Fixture().Empty())
}

func TestFixtureEveryThirdInventoryRowSold(t *testing.T) {
	store := Fixture()

	sold := store.InventoryItems.Filter(func(r Row) bool {
		return !r.Get("sold_at").IsNull()
	})
	assert.Equal(t, 334, sold.Len())
	assert.Equal(t, 666, store.InventoryItems.Len()-sold.Len())
}

func TestTopProductsRanking(t *testing.T) {
	store := Fixture()

	top := store.TopProducts(3)
	require.Len(t, top, 3)

	assert.Equal(t, "Classic White T-Shirt", top[0].Name)
	assert.Equal(t, 2, top[0].UnitsSold)
	assert.InDelta(t, 29.99, top[0].UnitPrice, 0.001)
	assert.InDelta(t, 59.98, top[0].TotalRevenue, 0.001)

	// Ties keep first-appearance order of the join.
	assert.Equal(t, "Slim Fit Jeans", top[1].Name)
	assert.Equal(t, "Summer Dress", top[2].Name)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].UnitsSold, top[i].UnitsSold)
	}
}

func TestOrderByID(t *testing.T) {
	store := Fixture()

	status, found := store.OrderByID(12345)
	require.True(t, found)

	assert.Equal(t, "shipped", status.Status)
	assert.Equal(t, "John Doe", status.UserName)
	assert.Equal(t, int64(2), status.NumItems)
	assert.False(t, status.ShippedAt.IsNull())
	assert.True(t, status.DeliveredAt.IsNull())

	require.Len(t, status.Items, 2)
	assert.Equal(t, "Classic White T-Shirt", status.Items[0].Name)
	assert.InDelta(t, 109.98, status.TotalAmount, 0.001)
}

func TestOrderByIDNotFound(t *testing.T) {
	store := Fixture()

	_, found := store.OrderByID(99999)
	assert.False(t, found)
}

func TestInventoryStatusByName(t *testing.T) {
	store := Fixture()

	levels := store.InventoryStatus("shirt", "")
	require.Len(t, levels, 1, "only the t-shirt matches the shirt substring")

	level := levels[0]
	assert.Equal(t, "Classic White T-Shirt", level.ProductName)
	assert.Equal(t, "shirts", level.Category)
	assert.Equal(t, "New York DC", level.DistributionCenter)
	assert.Equal(t, 133, level.AvailableQuantity)
}

func TestInventoryStatusByCategory(t *testing.T) {
	store := Fixture()

	levels := store.InventoryStatus("", "dresses")
	require.Len(t, levels, 1)
	assert.Equal(t, "Summer Dress", levels[0].ProductName)
}

func TestSearchProducts(t *testing.T) {
	store := Fixture()

	rows := store.SearchProducts("shoes")
	require.Len(t, rows, 1)
	assert.Equal(t, "Running Shoes", rows[0].Text("name"))

	rows = store.SearchProducts("fashionbrand")
	assert.Len(t, rows, 5, "brand search is case-insensitive")
}

func TestUserOrders(t *testing.T) {
	store := Fixture()

	orders := store.UserOrders(1)
	require.Len(t, orders, 1)
	assert.Equal(t, "12345", orders[0].Text("order_id"))
}
