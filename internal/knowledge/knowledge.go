// Package knowledge aggregates descriptive statistics from the tabular
// store into immutable knowledge maps, pre-rendered response templates
// and training scenarios. A training run rebuilds everything from
// scratch; nothing is updated incrementally.
package knowledge

// PriceRange is a min/max price span.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CategoryStats describes one product category.
type CategoryStats struct {
	Count       int        `json:"count"`
	AvgPrice    float64    `json:"avg_price"`
	PriceRange  PriceRange `json:"price_range"`
	Brands      []string   `json:"brands"`
	Departments []string   `json:"departments"`
}

// BrandStats describes one brand across its products.
type BrandStats struct {
	ProductCount int        `json:"product_count"`
	Categories   []string   `json:"categories"`
	AvgPrice     float64    `json:"avg_price"`
	PriceRange   PriceRange `json:"price_range"`
}

// DepartmentStats describes one department.
type DepartmentStats struct {
	ProductCount int      `json:"product_count"`
	Categories   []string `json:"categories"`
	AvgPrice     float64  `json:"avg_price"`
}

// Pricing holds global price statistics. Tier averages use fixed
// thresholds: price <= 30 budget, <= 80 mid_range, above premium.
type Pricing struct {
	OverallAvg float64            `json:"overall_avg"`
	OverallMin float64            `json:"overall_min"`
	OverallMax float64            `json:"overall_max"`
	PriceTiers map[string]float64 `json:"price_tiers"`
}

// ProductKnowledge is the product aggregation section.
type ProductKnowledge struct {
	Categories  map[string]CategoryStats   `json:"categories"`
	Brands      map[string]BrandStats      `json:"brands"`
	Pricing     Pricing                    `json:"pricing"`
	Departments map[string]DepartmentStats `json:"departments"`
}

// OrderSizes describes the num_of_item distribution.
type OrderSizes struct {
	AvgItems         float64       `json:"avg_items"`
	SizeDistribution map[int64]int `json:"size_distribution"`
	LargeOrders      int           `json:"large_orders"`
	SmallOrders      int           `json:"small_orders"`
}

// GenderPatterns is the optional gender breakdown of orders.
type GenderPatterns struct {
	Distribution         map[string]int     `json:"distribution"`
	AvgOrderSizeByGender map[string]float64 `json:"avg_order_size_by_gender"`
}

// TimePatterns is the optional created_at date range of orders.
type TimePatterns struct {
	TotalOrders int    `json:"total_orders"`
	Earliest    string `json:"earliest"`
	Latest      string `json:"latest"`
}

// PopularProduct is one ranked entry of the top-ordered products.
type PopularProduct struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Count     int    `json:"count"`
}

// OrderPatterns is the order aggregation section.
type OrderPatterns struct {
	StatusDistribution map[string]int   `json:"status_distribution"`
	OrderSizes         OrderSizes       `json:"order_sizes"`
	GenderPatterns     *GenderPatterns  `json:"gender_patterns,omitempty"`
	TimePatterns       *TimePatterns    `json:"time_patterns,omitempty"`
	PopularProducts    []PopularProduct `json:"popular_products"`
}

// StockAnalysis partitions inventory into available and sold items.
type StockAnalysis struct {
	TotalItems       int     `json:"total_items"`
	AvailableItems   int     `json:"available_items"`
	SoldItems        int     `json:"sold_items"`
	AvailabilityRate float64 `json:"availability_rate"`
}

// CategoryAvailability is one category's available count, part of a
// descending-sorted list.
type CategoryAvailability struct {
	Category  string `json:"category"`
	Available int    `json:"available"`
}

// DCAvailability is one distribution center's available count.
type DCAvailability struct {
	DistributionCenterID int64 `json:"distribution_center_id"`
	Available            int   `json:"available"`
}

// PriceAvailability counts available items per price tier.
type PriceAvailability struct {
	BudgetItems   int `json:"budget_items"`
	MidRangeItems int `json:"mid_range_items"`
	PremiumItems  int `json:"premium_items"`
}

// InventoryPatterns is the inventory aggregation section.
type InventoryPatterns struct {
	StockAnalysis        StockAnalysis          `json:"stock_analysis"`
	CategoryAvailability []CategoryAvailability `json:"category_availability"`
	DCAvailability       []DCAvailability       `json:"dc_availability"`
	PriceAvailability    PriceAvailability      `json:"price_availability"`
}

// AgeAnalysis summarizes the user age column.
type AgeAnalysis struct {
	AvgAge float64 `json:"avg_age"`
	MinAge int64   `json:"min_age"`
	MaxAge int64   `json:"max_age"`
}

// Demographics summarizes the user base.
type Demographics struct {
	TotalUsers         int            `json:"total_users"`
	GenderDistribution map[string]int `json:"gender_distribution"`
	Age                *AgeAnalysis   `json:"age_analysis,omitempty"`
}

// StateCount is one state's user count, part of a top-5 list.
type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// Geographic summarizes user locations.
type Geographic struct {
	TopStates  []StateCount `json:"top_states"`
	StateCount int          `json:"state_count"`
}

// UserOrderCount is one user's order count, part of a top-5 list.
type UserOrderCount struct {
	UserID int64 `json:"user_id"`
	Orders int   `json:"orders"`
}

// UserOrderPatterns summarizes per-user ordering behavior. A user with
// more than one order counts as a repeat customer.
type UserOrderPatterns struct {
	AvgOrdersPerUser float64          `json:"avg_orders_per_user"`
	MostActiveUsers  []UserOrderCount `json:"most_active_users"`
	SingleOrderUsers int              `json:"single_order_users"`
	RepeatCustomers  int              `json:"repeat_customers"`
}

// UserPreferences is the user aggregation section.
type UserPreferences struct {
	Demographics   Demographics      `json:"demographics"`
	Geographic     *Geographic       `json:"geographic,omitempty"`
	TrafficSources map[string]int    `json:"traffic_sources"`
	OrderPatterns  UserOrderPatterns `json:"order_patterns"`
}

// Templates holds the pre-rendered response sentences. They embed the
// numbers computed at training time and are reused verbatim at
// response time.
type Templates struct {
	CategoryInfo          map[string]string `json:"category_info"`
	PriceInfo             map[string]string `json:"price_info"`
	OrderStatusInfo       string            `json:"status_info"`
	PopularProducts       string            `json:"popular_products"`
	InventoryAvailability string            `json:"availability"`
	CategoryAvailability  string            `json:"category_availability"`
}

// Scenario is one generated conversation example.
type Scenario struct {
	Type                 string         `json:"type"`
	UserInput            string         `json:"user_input"`
	ExpectedResponseType string         `json:"expected_response_type"`
	Context              map[string]any `json:"data_context"`
}

// Knowledge is the complete output of one training run. It is
// immutable once built; retraining produces a fresh value that
// callers swap in atomically.
type Knowledge struct {
	Products  ProductKnowledge  `json:"product_knowledge"`
	Orders    OrderPatterns     `json:"order_patterns"`
	Inventory InventoryPatterns `json:"inventory_patterns"`
	Users     UserPreferences   `json:"user_preferences"`
	Templates Templates         `json:"response_templates"`
	Scenarios []Scenario        `json:"scenarios"`
}

// Summary condenses a training run for status endpoints.
type Summary struct {
	CategoriesAnalyzed  int     `json:"categories_analyzed"`
	BrandsAnalyzed      int     `json:"brands_analyzed"`
	PriceTiers          int     `json:"price_tiers"`
	StatusTypes         int     `json:"status_types"`
	PopularProducts     int     `json:"popular_products"`
	AvailabilityRate    float64 `json:"availability_rate"`
	CategoriesAvailable int     `json:"categories_available"`
	TotalUsers          int     `json:"total_users"`
	RepeatCustomers     int     `json:"repeat_customers"`
	TrainingScenarios   int     `json:"training_scenarios"`
	ResponseTemplates   int     `json:"response_templates"`
}

// Summary computes the condensed view of this knowledge.
func (k *Knowledge) Summary() Summary {
	return Summary{
		CategoriesAnalyzed:  len(k.Products.Categories),
		BrandsAnalyzed:      len(k.Products.Brands),
		PriceTiers:          len(k.Products.Pricing.PriceTiers),
		StatusTypes:         len(k.Orders.StatusDistribution),
		PopularProducts:     len(k.Orders.PopularProducts),
		AvailabilityRate:    k.Inventory.StockAnalysis.AvailabilityRate,
		CategoriesAvailable: len(k.Inventory.CategoryAvailability),
		TotalUsers:          k.Users.Demographics.TotalUsers,
		RepeatCustomers:     k.Users.OrderPatterns.RepeatCustomers,
		TrainingScenarios:   len(k.Scenarios),
		ResponseTemplates:   len(k.Templates.CategoryInfo),
	}
}
