package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueNullHandling(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.False(t, String("x").IsNull())

	_, ok := Null().Float64()
	assert.False(t, ok, "null should not parse as a number")

	f, ok := String("29.99").Float64()
	require.True(t, ok)
	assert.InDelta(t, 29.99, f, 0.0001)

	i, ok := String("12345").Int64()
	require.True(t, ok)
	assert.Equal(t, int64(12345), i)

	_, ok = String("not a number").Float64()
	assert.False(t, ok)
}

func TestAggregationsSkipNulls(t *testing.T) {
	table := NewTable("prices", "price")
	table.Append(Row{"price": Float(10)})
	table.Append(Row{"price": Null()})
	table.Append(Row{"price": Float(20)})
	table.Append(Row{"price": String("garbage")})

	assert.Equal(t, 3, table.Count("price"), "count includes non-null but unparseable cells")
	assert.InDelta(t, 30.0, table.Sum("price"), 0.0001)

	mean, ok := table.Mean("price")
	require.True(t, ok)
	assert.InDelta(t, 15.0, mean, 0.0001)

	min, ok := table.Min("price")
	require.True(t, ok)
	assert.InDelta(t, 10.0, min, 0.0001)

	max, ok := table.Max("price")
	require.True(t, ok)
	assert.InDelta(t, 20.0, max, 0.0001)
}

func TestMeanOfEmptyColumn(t *testing.T) {
	table := NewTable("empty", "price")
	table.Append(Row{"price": Null()})

	_, ok := table.Mean("price")
	assert.False(t, ok, "mean over only nulls must report not-ok, not NaN")
}

func TestFilterAndFirst(t *testing.T) {
	table := NewTable("orders", "status")
	table.Append(Row{"status": String("shipped")})
	table.Append(Row{"status": String("processing")})
	table.Append(Row{"status": String("shipped")})

	shipped := table.Filter(func(r Row) bool { return r.Text("status") == "shipped" })
	assert.Equal(t, 2, shipped.Len())

	row, found := table.First(func(r Row) bool { return r.Text("status") == "processing" })
	require.True(t, found)
	assert.Equal(t, "processing", row.Text("status"))

	_, found = table.First(func(r Row) bool { return r.Text("status") == "returned" })
	assert.False(t, found)
}

func TestInnerJoinDropsNullKeysAndPrefixesCollisions(t *testing.T) {
	left := NewTable("order_items", "id", "product_id")
	left.Append(Row{"id": Int(1), "product_id": Int(10)})
	left.Append(Row{"id": Int(2), "product_id": Null()})
	left.Append(Row{"id": Int(3), "product_id": Int(99)})

	right := NewTable("products", "id", "name")
	right.Append(Row{"id": Int(10), "name": String("Summer Dress")})

	joined := InnerJoin(left, right, "product_id", "id")
	require.Equal(t, 1, joined.Len(), "null keys and unmatched keys drop out")

	row := joined.Rows[0]
	assert.Equal(t, "Summer Dress", row.Text("name"))
	assert.Equal(t, "1", row.Text("id"), "left id wins the bare column name")
	assert.Equal(t, "10", row.Text("products_id"), "right id gets prefixed")
}

func TestGroupByIsSortedAndSkipsNulls(t *testing.T) {
	table := NewTable("users", "state")
	table.Append(Row{"state": String("NY")})
	table.Append(Row{"state": String("CA")})
	table.Append(Row{"state": Null()})
	table.Append(Row{"state": String("NY")})

	groups := table.GroupBy("state")
	require.Len(t, groups, 2)
	assert.Equal(t, "CA", groups[0].Key)
	assert.Equal(t, "NY", groups[1].Key)
	assert.Equal(t, 2, groups[1].Rows.Len())
}

func TestValidateRejectsDuplicatePrimaryKeys(t *testing.T) {
	store := Fixture()
	store.Products.Append(Row{"id": Int(1), "name": String("Duplicate")})

	err := store.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
