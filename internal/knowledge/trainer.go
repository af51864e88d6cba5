package knowledge

import (
	"sort"

	"github.com/stylebot-ai/support-engine/internal/observability"
	"github.com/stylebot-ai/support-engine/internal/tabular"
)

// Price tier thresholds, fixed constants shared by product pricing and
// inventory availability.
const (
	budgetCeiling   = 30.0
	midRangeCeiling = 80.0
)

// Result reports the outcome of one training run. Success is false
// only when every step was skipped.
type Result struct {
	Success      bool     `json:"success"`
	StepsRun     []string `json:"steps_run"`
	StepsSkipped []string `json:"steps_skipped"`
	Summary      Summary  `json:"summary"`
}

// Trainer rebuilds the knowledge maps from a tabular store.
type Trainer struct {
	logger *observability.Logger
}

// NewTrainer creates a trainer.
func NewTrainer(logger *observability.Logger) *Trainer {
	return &Trainer{logger: logger}
}

// Train runs every aggregation step over the store and returns the
// resulting knowledge. Training is total: a step whose source
// collection is empty leaves its section empty and the run carries on.
// Running twice over unchanged data yields identical knowledge.
func (t *Trainer) Train(store *tabular.Store) (*Knowledge, Result) {
	if store.Empty() {
		t.logger.Warn().Msg("No source collections provided, training on synthetic fixture")
		store = tabular.Fixture()
	}

	t.logger.Info().Bool("synthetic", store.Synthetic).Msg("Starting training run")

	k := &Knowledge{}
	result := Result{}

	step := func(name string, ran bool) {
		if ran {
			result.StepsRun = append(result.StepsRun, name)
		} else {
			result.StepsSkipped = append(result.StepsSkipped, name)
			t.logger.Warn().Str("step", name).Msg("Training step skipped, source collection empty")
		}
	}

	step("product_knowledge", t.trainProductKnowledge(store, k))
	step("order_patterns", t.trainOrderPatterns(store, k))
	step("inventory_patterns", t.trainInventoryPatterns(store, k))
	step("user_preferences", t.trainUserPreferences(store, k))
	step("response_templates", t.buildTemplates(k))
	step("scenarios", t.generateScenarios(store, k))

	result.Success = len(result.StepsRun) > 0
	result.Summary = k.Summary()

	t.logger.Info().
		Int("steps_run", len(result.StepsRun)).
		Int("steps_skipped", len(result.StepsSkipped)).
		Int("categories", result.Summary.CategoriesAnalyzed).
		Int("scenarios", result.Summary.TrainingScenarios).
		Msg("Training run completed")

	return k, result
}

func (t *Trainer) trainProductKnowledge(store *tabular.Store, k *Knowledge) bool {
	products := store.Products
	if products.Len() == 0 {
		return false
	}

	categories := make(map[string]CategoryStats)
	for _, g := range products.GroupBy("category") {
		mean, _ := g.Rows.Mean("retail_price")
		min, _ := g.Rows.Min("retail_price")
		max, _ := g.Rows.Max("retail_price")
		categories[g.Key] = CategoryStats{
			Count:       g.Rows.Len(),
			AvgPrice:    mean,
			PriceRange:  PriceRange{Min: min, Max: max},
			Brands:      uniqueValues(g.Rows, "brand"),
			Departments: uniqueValues(g.Rows, "department"),
		}
	}

	brands := make(map[string]BrandStats)
	for _, g := range products.GroupBy("brand") {
		mean, _ := g.Rows.Mean("retail_price")
		min, _ := g.Rows.Min("retail_price")
		max, _ := g.Rows.Max("retail_price")
		brands[g.Key] = BrandStats{
			ProductCount: g.Rows.Len(),
			Categories:   uniqueValues(g.Rows, "category"),
			AvgPrice:     mean,
			PriceRange:   PriceRange{Min: min, Max: max},
		}
	}

	overallAvg, _ := products.Mean("retail_price")
	overallMin, _ := products.Min("retail_price")
	overallMax, _ := products.Max("retail_price")
	tierAvg := func(lo, hi float64) float64 {
		mean, _ := products.Filter(func(r tabular.Row) bool {
			p, ok := r.Float64("retail_price")
			return ok && p > lo && p <= hi
		}).Mean("retail_price")
		return mean
	}
	pricing := Pricing{
		OverallAvg: overallAvg,
		OverallMin: overallMin,
		OverallMax: overallMax,
		PriceTiers: map[string]float64{
			"budget":    tierAvg(0, budgetCeiling),
			"mid_range": tierAvg(budgetCeiling, midRangeCeiling),
			"premium":   tierAvg(midRangeCeiling, 1e18),
		},
	}

	departments := make(map[string]DepartmentStats)
	for _, g := range products.GroupBy("department") {
		mean, _ := g.Rows.Mean("retail_price")
		departments[g.Key] = DepartmentStats{
			ProductCount: g.Rows.Len(),
			Categories:   uniqueValues(g.Rows, "category"),
			AvgPrice:     mean,
		}
	}

	k.Products = ProductKnowledge{
		Categories:  categories,
		Brands:      brands,
		Pricing:     pricing,
		Departments: departments,
	}
	return true
}

func (t *Trainer) trainOrderPatterns(store *tabular.Store, k *Knowledge) bool {
	orders := store.Orders
	if orders.Len() == 0 || store.OrderItems.Len() == 0 {
		return false
	}

	statusDist := make(map[string]int)
	for _, g := range orders.GroupBy("status") {
		statusDist[g.Key] = g.Rows.Len()
	}

	avgItems, _ := orders.Mean("num_of_item")
	sizeDist := make(map[int64]int)
	large, small := 0, 0
	for _, row := range orders.Rows {
		n, ok := row.Int64("num_of_item")
		if !ok {
			continue
		}
		sizeDist[n]++
		if n > 2 {
			large++
		} else {
			small++
		}
	}

	patterns := OrderPatterns{
		StatusDistribution: statusDist,
		OrderSizes: OrderSizes{
			AvgItems:         avgItems,
			SizeDistribution: sizeDist,
			LargeOrders:      large,
			SmallOrders:      small,
		},
	}

	if orders.Count("gender") > 0 {
		gp := &GenderPatterns{
			Distribution:         make(map[string]int),
			AvgOrderSizeByGender: make(map[string]float64),
		}
		for _, g := range orders.GroupBy("gender") {
			gp.Distribution[g.Key] = g.Rows.Len()
			mean, _ := g.Rows.Mean("num_of_item")
			gp.AvgOrderSizeByGender[g.Key] = mean
		}
		patterns.GenderPatterns = gp
	}

	if orders.Count("created_at") > 0 {
		earliest, latest := "", ""
		for _, row := range orders.Rows {
			v := row.Get("created_at")
			if v.IsNull() {
				continue
			}
			ts := v.Text()
			if earliest == "" || ts < earliest {
				earliest = ts
			}
			if ts > latest {
				latest = ts
			}
		}
		patterns.TimePatterns = &TimePatterns{
			TotalOrders: orders.Len(),
			Earliest:    earliest,
			Latest:      latest,
		}
	}

	if store.Products.Len() > 0 {
		joined := tabular.InnerJoin(store.OrderItems, store.Products, "product_id", "id")
		type agg struct {
			entry PopularProduct
			first int
		}
		byProduct := make(map[int64]*agg)
		order := make([]int64, 0)
		for i, row := range joined.Rows {
			pid, ok := row.Int64("product_id")
			if !ok {
				continue
			}
			a, seen := byProduct[pid]
			if !seen {
				a = &agg{
					entry: PopularProduct{
						ProductID: pid,
						Name:      row.Text("name"),
						Category:  row.Text("category"),
					},
					first: i,
				}
				byProduct[pid] = a
				order = append(order, pid)
			}
			a.entry.Count++
		}
		popular := make([]PopularProduct, 0, len(order))
		for _, pid := range order {
			popular = append(popular, byProduct[pid].entry)
		}
		sort.SliceStable(popular, func(i, j int) bool {
			return popular[i].Count > popular[j].Count
		})
		if len(popular) > 10 {
			popular = popular[:10]
		}
		patterns.PopularProducts = popular
	}

	k.Orders = patterns
	return true
}

func (t *Trainer) trainInventoryPatterns(store *tabular.Store, k *Knowledge) bool {
	inventory := store.InventoryItems
	if inventory.Len() == 0 {
		return false
	}

	available := inventory.Filter(func(r tabular.Row) bool {
		return r.Get("sold_at").IsNull()
	})
	total := inventory.Len()
	rate := 0.0
	if total > 0 {
		rate = float64(available.Len()) / float64(total) * 100
	}

	patterns := InventoryPatterns{
		StockAnalysis: StockAnalysis{
			TotalItems:       total,
			AvailableItems:   available.Len(),
			SoldItems:        total - available.Len(),
			AvailabilityRate: rate,
		},
	}

	for _, g := range available.GroupBy("product_category") {
		patterns.CategoryAvailability = append(patterns.CategoryAvailability, CategoryAvailability{
			Category:  g.Key,
			Available: g.Rows.Len(),
		})
	}
	sort.SliceStable(patterns.CategoryAvailability, func(i, j int) bool {
		return patterns.CategoryAvailability[i].Available > patterns.CategoryAvailability[j].Available
	})

	for _, g := range available.GroupBy("product_distribution_center_id") {
		dcID, _ := tabular.String(g.Key).Int64()
		patterns.DCAvailability = append(patterns.DCAvailability, DCAvailability{
			DistributionCenterID: dcID,
			Available:            g.Rows.Len(),
		})
	}
	sort.SliceStable(patterns.DCAvailability, func(i, j int) bool {
		return patterns.DCAvailability[i].Available > patterns.DCAvailability[j].Available
	})

	inTier := func(lo, hi float64) int {
		return available.Filter(func(r tabular.Row) bool {
			p, ok := r.Float64("product_retail_price")
			return ok && p > lo && p <= hi
		}).Len()
	}
	patterns.PriceAvailability = PriceAvailability{
		BudgetItems:   inTier(0, budgetCeiling),
		MidRangeItems: inTier(budgetCeiling, midRangeCeiling),
		PremiumItems:  inTier(midRangeCeiling, 1e18),
	}

	k.Inventory = patterns
	return true
}

func (t *Trainer) trainUserPreferences(store *tabular.Store, k *Knowledge) bool {
	users := store.Users
	orders := store.Orders
	if users.Len() == 0 || orders.Len() == 0 {
		return false
	}

	prefs := UserPreferences{
		Demographics: Demographics{
			TotalUsers:         users.Len(),
			GenderDistribution: make(map[string]int),
		},
	}
	for _, g := range users.GroupBy("gender") {
		prefs.Demographics.GenderDistribution[g.Key] = g.Rows.Len()
	}
	if users.Count("age") > 0 {
		avg, _ := users.Mean("age")
		min, _ := users.Min("age")
		max, _ := users.Max("age")
		prefs.Demographics.Age = &AgeAnalysis{
			AvgAge: avg,
			MinAge: int64(min),
			MaxAge: int64(max),
		}
	}

	if users.Count("state") > 0 {
		states := make([]StateCount, 0)
		for _, g := range users.GroupBy("state") {
			states = append(states, StateCount{State: g.Key, Count: g.Rows.Len()})
		}
		total := len(states)
		sort.SliceStable(states, func(i, j int) bool {
			return states[i].Count > states[j].Count
		})
		if len(states) > 5 {
			states = states[:5]
		}
		prefs.Geographic = &Geographic{TopStates: states, StateCount: total}
	}

	if users.Count("traffic_source") > 0 {
		prefs.TrafficSources = make(map[string]int)
		for _, g := range users.GroupBy("traffic_source") {
			prefs.TrafficSources[g.Key] = g.Rows.Len()
		}
	}

	counts := make([]UserOrderCount, 0)
	totalOrders := 0
	for _, g := range orders.GroupBy("user_id") {
		uid, _ := tabular.String(g.Key).Int64()
		counts = append(counts, UserOrderCount{UserID: uid, Orders: g.Rows.Len()})
		totalOrders += g.Rows.Len()
	}
	op := UserOrderPatterns{}
	if len(counts) > 0 {
		op.AvgOrdersPerUser = float64(totalOrders) / float64(len(counts))
	}
	for _, c := range counts {
		if c.Orders > 1 {
			op.RepeatCustomers++
		} else {
			op.SingleOrderUsers++
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Orders > counts[j].Orders
	})
	if len(counts) > 5 {
		counts = counts[:5]
	}
	op.MostActiveUsers = counts
	prefs.OrderPatterns = op

	k.Users = prefs
	return true
}

// uniqueValues returns the distinct non-null values of a column in
// order of first appearance.
func uniqueValues(t *tabular.Table, col string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range t.Rows {
		v := row.Get(col)
		if v.IsNull() {
			continue
		}
		if _, dup := seen[v.Text()]; dup {
			continue
		}
		seen[v.Text()] = struct{}{}
		out = append(out, v.Text())
	}
	return out
}
