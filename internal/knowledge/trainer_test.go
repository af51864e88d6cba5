package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylebot-ai/support-engine/internal/observability"
	"github.com/stylebot-ai/support-engine/internal/tabular"
)

func fixtureKnowledge(t *testing.T) (*Knowledge, Result) {
	t.Helper()
	trainer := NewTrainer(observability.NopLogger())
	return trainer.Train(tabular.Fixture())
}

func TestTrainIsIdempotent(t *testing.T) {
	trainer := NewTrainer(observability.NopLogger())
	store := tabular.Fixture()

	first, _ := trainer.Train(store)
	second, _ := trainer.Train(store)

	assert.Equal(t, first, second, "training twice on unchanged data must yield identical knowledge")
}

func TestTrainProductKnowledge(t *testing.T) {
	k, result := fixtureKnowledge(t)

	require.True(t, result.Success)
	require.Len(t, k.Products.Categories, 5)

	shirts := k.Products.Categories["shirts"]
	assert.Equal(t, 1, shirts.Count)
	assert.InDelta(t, 29.99, shirts.AvgPrice, 0.001)
	assert.InDelta(t, 29.99, shirts.PriceRange.Min, 0.001)
	assert.Equal(t, []string{"FashionBrand"}, shirts.Brands)
	assert.Equal(t, []string{"men"}, shirts.Departments)

	assert.Len(t, k.Products.Brands, 1)
	assert.InDelta(t, 29.99, k.Products.Pricing.OverallMin, 0.001)
	assert.InDelta(t, 129.99, k.Products.Pricing.OverallMax, 0.001)
}

func TestPriceTierThresholds(t *testing.T) {
	k, _ := fixtureKnowledge(t)

	tiers := k.Products.Pricing.PriceTiers
	assert.InDelta(t, 29.99, tiers["budget"], 0.001, "only the t-shirt is at or under $30")
	assert.InDelta(t, 59.99, tiers["mid_range"], 0.001, "jeans, dress and wallet average")
	assert.InDelta(t, 129.99, tiers["premium"], 0.001, "only the shoes are over $80")
}

func TestTrainOrderPatterns(t *testing.T) {
	k, _ := fixtureKnowledge(t)

	assert.Equal(t, map[string]int{"shipped": 1, "processing": 1, "delivered": 1}, k.Orders.StatusDistribution)
	assert.InDelta(t, 2.0, k.Orders.OrderSizes.AvgItems, 0.001)
	assert.Equal(t, 1, k.Orders.OrderSizes.LargeOrders, "only the 3-item order is large")
	assert.Equal(t, 2, k.Orders.OrderSizes.SmallOrders)

	require.NotNil(t, k.Orders.TimePatterns)
	assert.Equal(t, 3, k.Orders.TimePatterns.TotalOrders)

	require.NotEmpty(t, k.Orders.PopularProducts)
	assert.Equal(t, "Classic White T-Shirt", k.Orders.PopularProducts[0].Name)
	assert.Equal(t, 2, k.Orders.PopularProducts[0].Count)
	for i := 1; i < len(k.Orders.PopularProducts); i++ {
		assert.GreaterOrEqual(t, k.Orders.PopularProducts[i-1].Count, k.Orders.PopularProducts[i].Count)
	}
}

func TestInventoryAvailabilityInvariants(t *testing.T) {
	k, _ := fixtureKnowledge(t)

	sa := k.Inventory.StockAnalysis
	assert.Equal(t, sa.TotalItems, sa.AvailableItems+sa.SoldItems)
	assert.GreaterOrEqual(t, sa.AvailabilityRate, 0.0)
	assert.LessOrEqual(t, sa.AvailabilityRate, 100.0)
	assert.InDelta(t, 66.6, sa.AvailabilityRate, 0.001)

	require.NotEmpty(t, k.Inventory.CategoryAvailability)
	for i := 1; i < len(k.Inventory.CategoryAvailability); i++ {
		assert.GreaterOrEqual(t,
			k.Inventory.CategoryAvailability[i-1].Available,
			k.Inventory.CategoryAvailability[i].Available,
			"category availability must be sorted descending")
	}
}

func TestTrainUserPreferences(t *testing.T) {
	k, _ := fixtureKnowledge(t)

	assert.Equal(t, 3, k.Users.Demographics.TotalUsers)
	assert.Equal(t, map[string]int{"M": 2, "F": 1}, k.Users.Demographics.GenderDistribution)

	require.NotNil(t, k.Users.Demographics.Age)
	assert.InDelta(t, 28.333, k.Users.Demographics.Age.AvgAge, 0.01)

	require.NotNil(t, k.Users.Geographic)
	assert.Len(t, k.Users.Geographic.TopStates, 3)

	assert.InDelta(t, 1.0, k.Users.OrderPatterns.AvgOrdersPerUser, 0.001)
	assert.Equal(t, 3, k.Users.OrderPatterns.SingleOrderUsers)
	assert.Equal(t, 0, k.Users.OrderPatterns.RepeatCustomers)
}

func TestTemplatesEmbedTrainedNumbers(t *testing.T) {
	k, _ := fixtureKnowledge(t)

	assert.Equal(t,
		"We have 1 shirts available, with prices ranging from $29.99 to $29.99.",
		k.Templates.CategoryInfo["shirts"])
	assert.Contains(t, k.Templates.PriceInfo["budget"], "$29.99")
	assert.Contains(t, k.Templates.InventoryAvailability, "66.6%")
	assert.Contains(t, k.Templates.OrderStatusInfo, "1 orders are typically shipped")
}

func TestScenarioGeneration(t *testing.T) {
	k, _ := fixtureKnowledge(t)

	byType := map[string]int{}
	for _, sc := range k.Scenarios {
		byType[sc.Type]++
	}
	assert.Equal(t, 5, byType["product_inquiry"], "one per category")
	assert.Equal(t, 3, byType["order_status"], "first three orders")
	assert.Equal(t, 5, byType["inventory_inquiry"], "one per category with stock")
}

func TestTrainEmptyStoreUsesFixture(t *testing.T) {
	trainer := NewTrainer(observability.NopLogger())

	k, result := trainer.Train(&tabular.Store{})

	assert.True(t, result.Success, "an empty table set must train on the synthetic fixture")
	assert.Len(t, k.Products.Categories, 5)
}

func TestTrainSkipsStepsWithMissingCollections(t *testing.T) {
	trainer := NewTrainer(observability.NopLogger())

	store := tabular.Fixture()
	store.Users = tabular.NewTable("users")

	k, result := trainer.Train(store)

	assert.True(t, result.Success)
	assert.Contains(t, result.StepsSkipped, "user_preferences")
	assert.Zero(t, k.Users.Demographics.TotalUsers, "skipped section stays empty")
	assert.NotEmpty(t, k.Products.Categories, "other sections still train")
}

func TestSummaryCounts(t *testing.T) {
	k, result := fixtureKnowledge(t)

	s := result.Summary
	assert.Equal(t, 5, s.CategoriesAnalyzed)
	assert.Equal(t, 1, s.BrandsAnalyzed)
	assert.Equal(t, 3, s.StatusTypes)
	assert.Equal(t, 4, s.PopularProducts)
	assert.Equal(t, len(k.Scenarios), s.TrainingScenarios)
}
