package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// categoryPhrasings are the sentence shapes per known category.
// Unknown categories fall back to a generic phrasing.
var categoryPhrasings = map[string]string{
	"shirts":      "We have %d shirts available, with prices ranging from $%.2f to $%.2f.",
	"pants":       "Our pants collection includes %d items, priced between $%.2f and $%.2f.",
	"dresses":     "We offer %d beautiful dresses, with prices from $%.2f to $%.2f.",
	"shoes":       "Our shoe collection features %d styles, ranging from $%.2f to $%.2f.",
	"accessories": "We have %d accessories available, priced from $%.2f to $%.2f.",
}

// buildTemplates pre-renders the response sentences from the numbers
// the earlier steps computed. Rendered once, reused verbatim per
// message.
func (t *Trainer) buildTemplates(k *Knowledge) bool {
	categoryInfo := make(map[string]string, len(k.Products.Categories))
	names := make([]string, 0, len(k.Products.Categories))
	for name := range k.Products.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats := k.Products.Categories[name]
		phrasing, ok := categoryPhrasings[name]
		if ok {
			categoryInfo[name] = fmt.Sprintf(phrasing, stats.Count, stats.PriceRange.Min, stats.PriceRange.Max)
		} else {
			categoryInfo[name] = fmt.Sprintf("We have %d great %s available, with prices ranging from $%.2f to $%.2f.",
				stats.Count, name, stats.PriceRange.Min, stats.PriceRange.Max)
		}
	}

	priceInfo := map[string]string{
		"budget":    fmt.Sprintf("We have budget-friendly options starting at $%.2f.", k.Products.Pricing.PriceTiers["budget"]),
		"mid_range": fmt.Sprintf("Our mid-range products average around $%.2f.", k.Products.Pricing.PriceTiers["mid_range"]),
		"premium":   fmt.Sprintf("For premium quality, our products range up to $%.2f.", k.Products.Pricing.PriceTiers["premium"]),
	}

	statusInfo := fmt.Sprintf("Based on our data, %d orders are typically shipped, with an average of %.1f items per order.",
		k.Orders.StatusDistribution["shipped"], k.Orders.OrderSizes.AvgItems)

	popular := "We have a variety of popular products available."
	if len(k.Orders.PopularProducts) > 0 {
		top := k.Orders.PopularProducts
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, 0, len(top))
		for _, p := range top {
			names = append(names, p.Name)
		}
		popular = "Our most popular products based on order data include: " + strings.Join(names, ", ")
	}

	availability := fmt.Sprintf("Currently, %.1f%% of our inventory is available for purchase.",
		k.Inventory.StockAnalysis.AvailabilityRate)

	categoryAvailability := "We have good availability across all categories."
	if len(k.Inventory.CategoryAvailability) > 0 {
		top := k.Inventory.CategoryAvailability
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, 0, len(top))
		for _, c := range top {
			names = append(names, c.Category)
		}
		categoryAvailability = "Our most available categories are: " + strings.Join(names, ", ")
	}

	k.Templates = Templates{
		CategoryInfo:          categoryInfo,
		PriceInfo:             priceInfo,
		OrderStatusInfo:       statusInfo,
		PopularProducts:       popular,
		InventoryAvailability: availability,
		CategoryAvailability:  categoryAvailability,
	}
	return true
}
