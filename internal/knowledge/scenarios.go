package knowledge

import (
	"fmt"
	"sort"

	"github.com/stylebot-ai/support-engine/internal/tabular"
)

// generateScenarios emits conversation examples grounded in the
// trained knowledge: one product inquiry per category, an order status
// question for up to the first 3 orders, and one inventory inquiry per
// category with available stock.
func (t *Trainer) generateScenarios(store *tabular.Store, k *Knowledge) bool {
	scenarios := make([]Scenario, 0)

	categories := make([]string, 0, len(k.Products.Categories))
	for name := range k.Products.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		stats := k.Products.Categories[name]
		scenarios = append(scenarios, Scenario{
			Type:                 "product_inquiry",
			UserInput:            fmt.Sprintf("I'm looking for %s", name),
			ExpectedResponseType: "product_info",
			Context: map[string]any{
				"category":    name,
				"count":       stats.Count,
				"price_range": stats.PriceRange,
			},
		})
	}

	for i, row := range store.Orders.Rows {
		if i >= 3 {
			break
		}
		orderID, ok := row.Int64("order_id")
		if !ok {
			continue
		}
		numItems, _ := row.Int64("num_of_item")
		scenarios = append(scenarios, Scenario{
			Type:                 "order_status",
			UserInput:            fmt.Sprintf("What's the status of order #%d?", orderID),
			ExpectedResponseType: "order_info",
			Context: map[string]any{
				"order_id":  orderID,
				"status":    row.Text("status"),
				"num_items": numItems,
			},
		})
	}

	for _, ca := range k.Inventory.CategoryAvailability {
		scenarios = append(scenarios, Scenario{
			Type:                 "inventory_inquiry",
			UserInput:            fmt.Sprintf("How many %s do you have in stock?", ca.Category),
			ExpectedResponseType: "inventory_info",
			Context: map[string]any{
				"category":  ca.Category,
				"available": ca.Available,
			},
		})
	}

	k.Scenarios = scenarios
	return len(scenarios) > 0
}
